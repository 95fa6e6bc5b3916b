package sorter_service

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/sbezverk/seqtools/wire"
)

// Client calls a remote seqtools.Sorter service
type Client struct {
	conn *grpc.ClientConn
}

// Dial connects to the sorter at addr, extra options are applied after the insecure transport credentials.
func Dial(ctx context.Context, addr string, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.MaxCallRecvMsgSize(MaxRcvMsgSize)),
	}, opts...)
	conn, err := grpc.DialContext(ctx, addr, opts...)
	if err != nil {
		return nil, err
	}

	return &Client{conn: conn}, nil
}

func (c *Client) Sort(ctx context.Context, xs []float64) ([]float64, error) {
	out := &structpb.ListValue{}
	if err := c.conn.Invoke(ctx, sortMethod, wire.Encode(xs), out); err != nil {
		return nil, err
	}
	return wire.Decode(out)
}

func (c *Client) Merge(ctx context.Context, xs, ys []float64) ([]float64, error) {
	out := &structpb.ListValue{}
	if err := c.conn.Invoke(ctx, mergeMethod, wire.EncodePair(xs, ys), out); err != nil {
		return nil, err
	}
	return wire.Decode(out)
}

func (c *Client) Close() error {
	return c.conn.Close()
}
