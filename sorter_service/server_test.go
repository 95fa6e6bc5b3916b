package sorter_service

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/go-test/deep"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/sbezverk/seqtools/wire"
)

func setup(t *testing.T, opts ...Option) *Client {
	t.Helper()
	lis := bufconn.Listen(1024 * 1024)
	srv := NewWithListener(lis, opts...)
	t.Cleanup(srv.Stop)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	c, err := Dial(ctx, "bufnet", grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
		return lis.Dial()
	}))
	if err != nil {
		t.Fatalf("supposed to succeed but failed with error: %+v", err)
	}
	t.Cleanup(func() { c.Close() })

	return c
}

func TestSort(t *testing.T) {
	tests := []struct {
		name   string
		opts   []Option
		input  []float64
		expect []float64
	}{
		{
			name:   "sequential",
			input:  []float64{5, 3, 8, 1, 9, 2},
			expect: []float64{1, 2, 3, 5, 8, 9},
		},
		{
			name:   "parallel",
			opts:   []Option{WithParallelCutoff(2)},
			input:  []float64{3, 3, 1, 1, -4, 7.5},
			expect: []float64{-4, 1, 1, 3, 3, 7.5},
		},
		{
			name:   "empty",
			input:  []float64{},
			expect: []float64{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := setup(t, tt.opts...)
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			got, err := c.Sort(ctx, tt.input)
			if err != nil {
				t.Fatalf("supposed to succeed but failed with error: %+v", err)
			}
			if diff := deep.Equal(got, tt.expect); diff != nil {
				t.Errorf("%+v", diff)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	c := setup(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	got, err := c.Merge(ctx, []float64{2, 9}, []float64{2, 3})
	if err != nil {
		t.Fatalf("supposed to succeed but failed with error: %+v", err)
	}
	if diff := deep.Equal(got, []float64{2, 2, 3, 9}); diff != nil {
		t.Errorf("%+v", diff)
	}
}

func TestInvalidRequests(t *testing.T) {
	c := setup(t)
	tests := []struct {
		name   string
		method string
		input  *structpb.ListValue
	}{
		{
			name:   "sort non numeric",
			method: sortMethod,
			input:  &structpb.ListValue{Values: []*structpb.Value{structpb.NewStringValue("a")}},
		},
		{
			name:   "merge single list",
			method: mergeMethod,
			input:  &structpb.ListValue{Values: []*structpb.Value{structpb.NewListValue(wire.Encode([]float64{1}))}},
		},
		{
			name:   "merge numbers",
			method: mergeMethod,
			input:  wire.Encode([]float64{1, 2}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			err := c.conn.Invoke(ctx, tt.method, tt.input, &structpb.ListValue{})
			if err == nil {
				t.Fatalf("supposed to fail but succeeded")
			}
			if code := status.Code(err); code != codes.InvalidArgument {
				t.Fatalf("expected code %s, got %s", codes.InvalidArgument, code)
			}
		})
	}
}
