package offline_feeder

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/golang/glog"
	"github.com/sbezverk/seqtools/feeder"
	"github.com/sbezverk/seqtools/wire"
)

type offFeeder struct {
	src    io.Reader
	closer io.Closer
	feed   chan *feeder.Feed
	stop   chan struct{}
	once   sync.Once
}

func (o *offFeeder) GetFeed() chan *feeder.Feed {
	return o.feed
}

func (o *offFeeder) send(f *feeder.Feed) bool {
	select {
	case <-o.stop:
		return false
	case o.feed <- f:
		return true
	}
}

type record struct {
	b   []byte
	err error
}

// read runs the blocking reads, so retrieve can give up on a reader which never returns.
func (o *offFeeder) read(recs chan<- record) {
	defer close(recs)
	for {
		b, err := wire.ReadRecord(o.src)
		select {
		case recs <- record{b: b, err: err}:
		case <-o.stop:
			return
		}
		if err != nil {
			return
		}
	}
}

func (o *offFeeder) retrieve() {
	defer close(o.feed)
	recs := make(chan record)
	go o.read(recs)
	for n := 0; ; n++ {
		select {
		case <-o.stop:
			return
		default:
		}
		var rec record
		select {
		case <-o.stop:
			return
		case r, ok := <-recs:
			if !ok {
				return
			}
			rec = r
		}
		if rec.err != nil {
			if rec.err == io.EOF {
				glog.Infof("processing offline sequence file completed, %d records", n)
				return
			}
			glog.Errorf("failed to read record %d with error: %+v", n, rec.err)
			o.send(&feeder.Feed{
				Err: fmt.Errorf("%w %d: %v", feeder.ErrReadRecord, n, rec.err),
			})
			return
		}
		glog.V(6).Infof("record %d length %d", n, len(rec.b))
		f := &feeder.Feed{}
		var err error
		f.Values, err = wire.Unmarshal(rec.b)
		if err != nil {
			f.Err = fmt.Errorf("%w %d: %v", feeder.ErrUnmarshalRecord, n, err)
		}
		if !o.send(f) {
			return
		}
	}
}

func (o *offFeeder) Stop() {
	o.once.Do(func() {
		close(o.stop)
		if o.closer != nil {
			o.closer.Close()
		}
	})
}

// New returns a Feeder streaming the records of the sequence file fn.
func New(fn string) (feeder.Feeder, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, fmt.Errorf("failed to open offline sequence file %s with error: %+v", fn, err)
	}
	o := newFeeder(f)
	o.closer = f
	go o.retrieve()

	return o, nil
}

// NewFromReader returns a Feeder streaming the records read from r, Stop closes r
// when it is an io.Closer.
func NewFromReader(r io.Reader) feeder.Feeder {
	o := newFeeder(r)
	if c, ok := r.(io.Closer); ok {
		o.closer = c
	}
	go o.retrieve()

	return o
}

func newFeeder(r io.Reader) *offFeeder {
	return &offFeeder{
		src:  r,
		feed: make(chan *feeder.Feed),
		stop: make(chan struct{}),
	}
}
