package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	// MaxRecordSize is the largest encoded sequence ReadRecord accepts
	MaxRecordSize = 16 * 1024 * 1024
	recordLenSize = 4
)

var (
	// ErrNotNumeric error returns when a list carries a value which is not a number
	ErrNotNumeric = errors.New("value is not a number")
	// ErrInvalidMergeRequest error returns when a merge request is not a list of exactly two lists
	ErrInvalidMergeRequest = errors.New("merge request must carry two lists")
	// ErrRecordTooLarge error returns when a record length exceeds MaxRecordSize
	ErrRecordTooLarge = errors.New("record is too large")
)

// Encode converts a numeric sequence into a protobuf list of number values.
func Encode(xs []float64) *structpb.ListValue {
	lv := &structpb.ListValue{
		Values: make([]*structpb.Value, len(xs)),
	}
	for i, x := range xs {
		lv.Values[i] = structpb.NewNumberValue(x)
	}
	return lv
}

// Decode converts a protobuf list back into a numeric sequence, every element must be a number.
func Decode(lv *structpb.ListValue) ([]float64, error) {
	xs := make([]float64, len(lv.GetValues()))
	for i, v := range lv.GetValues() {
		n, ok := v.GetKind().(*structpb.Value_NumberValue)
		if !ok {
			return nil, fmt.Errorf("element %d: %w", i, ErrNotNumeric)
		}
		xs[i] = n.NumberValue
	}
	return xs, nil
}

// EncodePair builds a merge request, a list of two lists.
func EncodePair(xs, ys []float64) *structpb.ListValue {
	return &structpb.ListValue{
		Values: []*structpb.Value{
			structpb.NewListValue(Encode(xs)),
			structpb.NewListValue(Encode(ys)),
		},
	}
}

// DecodePair splits a merge request into its two sequences.
func DecodePair(lv *structpb.ListValue) ([]float64, []float64, error) {
	if len(lv.GetValues()) != 2 {
		return nil, nil, fmt.Errorf("got %d values: %w", len(lv.GetValues()), ErrInvalidMergeRequest)
	}
	pair := make([][]float64, 2)
	for i, v := range lv.GetValues() {
		l, ok := v.GetKind().(*structpb.Value_ListValue)
		if !ok {
			return nil, nil, fmt.Errorf("value %d is not a list: %w", i, ErrInvalidMergeRequest)
		}
		xs, err := Decode(l.ListValue)
		if err != nil {
			return nil, nil, fmt.Errorf("list %d: %w", i, err)
		}
		pair[i] = xs
	}
	return pair[0], pair[1], nil
}

func Marshal(xs []float64) ([]byte, error) {
	return proto.Marshal(Encode(xs))
}

func Unmarshal(b []byte) ([]float64, error) {
	lv := &structpb.ListValue{}
	if err := proto.Unmarshal(b, lv); err != nil {
		return nil, err
	}
	return Decode(lv)
}

// WriteRecord writes xs as a 4 bytes big endian length followed by the marshaled list.
func WriteRecord(w io.Writer, xs []float64) error {
	b, err := Marshal(xs)
	if err != nil {
		return err
	}
	if len(b) > MaxRecordSize {
		return ErrRecordTooLarge
	}
	rec := make([]byte, recordLenSize+len(b))
	binary.BigEndian.PutUint32(rec[:recordLenSize], uint32(len(b)))
	copy(rec[recordLenSize:], b)
	_, err = w.Write(rec)

	return err
}

// ReadRecord reads a single record written by WriteRecord and returns its raw payload.
// io.EOF is returned only when r ends on a record boundary.
func ReadRecord(r io.Reader) ([]byte, error) {
	lb := make([]byte, recordLenSize)
	if _, err := io.ReadFull(r, lb); err != nil {
		return nil, err
	}
	l := binary.BigEndian.Uint32(lb)
	if l > MaxRecordSize {
		return nil, fmt.Errorf("record length %d: %w", l, ErrRecordTooLarge)
	}
	b := make([]byte, l)
	if _, err := io.ReadFull(r, b); err != nil {
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return b, nil
}
