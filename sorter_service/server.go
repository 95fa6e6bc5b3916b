package sorter_service

import (
	"context"
	"net"
	"time"

	"github.com/golang/glog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/sbezverk/seqtools/sort"
	"github.com/sbezverk/seqtools/wire"
)

const (
	MaxRcvMsgSize = 1024 * 1024
)

// Server is a running seqtools.Sorter gRPC server
type Server interface {
	Addr() net.Addr
	Stop()
}

// Option configures a sorter server
type Option func(*sorterSrv)

// WithParallelCutoff makes Sort use sort.ParallelSort with the given cutoff, 0 keeps the sequential sort.
func WithParallelCutoff(cutoff int) Option {
	return func(srv *sorterSrv) {
		srv.cutoff = cutoff
	}
}

var _ SorterServer = &sorterSrv{}

type sorterSrv struct {
	conn   net.Listener
	gSrv   *grpc.Server
	cutoff int
}

func (srv *sorterSrv) Addr() net.Addr {
	return srv.conn.Addr()
}

func (srv *sorterSrv) Stop() {
	glog.Infof("Stopping sorter server on %s", srv.conn.Addr())
	srv.gSrv.Stop()
}

func (srv *sorterSrv) sort(xs []float64) []float64 {
	if srv.cutoff > 0 {
		return sort.ParallelSort(xs, srv.cutoff)
	}
	return sort.Sort(xs)
}

func (srv *sorterSrv) Sort(ctx context.Context, in *structpb.ListValue) (*structpb.ListValue, error) {
	xs, err := wire.Decode(in)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid sort request: %v", err)
	}
	glog.V(5).Infof("Sort request with %d elements from %s", len(xs), remote(ctx))

	return wire.Encode(srv.sort(xs)), nil
}

func (srv *sorterSrv) Merge(ctx context.Context, in *structpb.ListValue) (*structpb.ListValue, error) {
	xs, ys, err := wire.DecodePair(in)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid merge request: %v", err)
	}
	glog.V(5).Infof("Merge request with %d and %d elements from %s", len(xs), len(ys), remote(ctx))

	return wire.Encode(sort.Merge(xs, ys)), nil
}

func remote(ctx context.Context) string {
	if p, ok := peer.FromContext(ctx); ok {
		return p.Addr.String()
	}
	return "unknown peer"
}

// New starts a sorter server listening on tcp address addr.
func New(addr string, opts ...Option) (Server, error) {
	conn, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	return NewWithListener(conn, opts...), nil
}

// NewWithListener starts a sorter server serving connections accepted on conn.
func NewWithListener(conn net.Listener, opts ...Option) Server {
	srv := &sorterSrv{
		conn: conn,
		gSrv: grpc.NewServer(
			grpc.MaxRecvMsgSize(MaxRcvMsgSize),
			grpc.KeepaliveParams(keepalive.ServerParameters{Time: time.Second * 30, Timeout: time.Second * 10}),
			grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{MinTime: time.Second * 10, PermitWithoutStream: true}),
		),
	}
	for _, o := range opts {
		o(srv)
	}
	RegisterSorterServer(srv.gSrv, srv)
	glog.Infof("Starting sorter server on %s", conn.Addr())

	go func() {
		if err := srv.gSrv.Serve(conn); err != nil {
			glog.Errorf("sorter server on %s failed with error: %+v", conn.Addr(), err)
		}
	}()

	return srv
}
