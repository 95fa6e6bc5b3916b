package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/golang/glog"
	"google.golang.org/grpc"

	tools "github.com/sbezverk/seqtools"
	"github.com/sbezverk/seqtools/feeder/offline_feeder"
	"github.com/sbezverk/seqtools/sort"
	"github.com/sbezverk/seqtools/sorter_service"
)

const callTimeout = 10 * time.Second

type config struct {
	file           string
	write          string
	serve          string
	remote         string
	parallelCutoff int
	dialOpts       []grpc.DialOption
}

func (c *config) registerFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.file, "file", "", "sort every record of the sequence file")
	fs.StringVar(&c.write, "write", "", "append the numbers given as arguments as a record to the sequence file")
	fs.StringVar(&c.serve, "serve", "", "address to serve the gRPC sorter on, for example :50051")
	fs.StringVar(&c.remote, "remote", "", "address of a gRPC sorter to sort with instead of sorting locally")
	fs.IntVar(&c.parallelCutoff, "parallel-cutoff", 0, "sort halves longer than this in parallel, 0 disables")
}

type sorter func([]float64) ([]float64, error)

func localSorter(cutoff int) sorter {
	return func(xs []float64) ([]float64, error) {
		if cutoff > 0 {
			return sort.ParallelSort(xs, cutoff), nil
		}
		return sort.Sort(xs), nil
	}
}

func remoteSorter(c *sorter_service.Client) sorter {
	return func(xs []float64) ([]float64, error) {
		ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
		defer cancel()
		return c.Sort(ctx, xs)
	}
}

func main() {
	cfg := &config{}
	cfg.registerFlags(flag.CommandLine)
	_ = flag.Set("logtostderr", "true")
	flag.Parse()

	var err error
	if cfg.serve != "" {
		err = serve(cfg)
	} else {
		err = run(cfg, flag.Args(), os.Stdout)
	}
	glog.Flush()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}

func serve(cfg *config) error {
	srv, err := sorter_service.New(cfg.serve, sorter_service.WithParallelCutoff(cfg.parallelCutoff))
	if err != nil {
		return fmt.Errorf("failed to start sorter on %s with error: %w", cfg.serve, err)
	}
	s := <-tools.SetupSignalHandler()
	glog.Infof("sorter on %s stopped by signal %s", srv.Addr(), s)
	srv.Stop()

	return nil
}

// run executes every mode except serving, sorted sequences are printed to out one per line.
func run(cfg *config, args []string, out io.Writer) error {
	xs, err := tools.ParseSequence(args...)
	if err != nil {
		return err
	}
	if cfg.write != "" {
		return offline_feeder.AppendRecords(cfg.write, xs)
	}

	sortFn := localSorter(cfg.parallelCutoff)
	if cfg.remote != "" {
		ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
		defer cancel()
		c, err := sorter_service.Dial(ctx, cfg.remote, cfg.dialOpts...)
		if err != nil {
			return fmt.Errorf("failed to connect to sorter %s with error: %w", cfg.remote, err)
		}
		defer c.Close()
		sortFn = remoteSorter(c)
	}

	if cfg.file == "" {
		sorted, err := sortFn(xs)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, tools.FormatSequence(sorted))
		return err
	}

	f, err := offline_feeder.New(cfg.file)
	if err != nil {
		return err
	}
	defer f.Stop()
	for fd := range f.GetFeed() {
		if fd.Err != nil {
			glog.Errorf("skipping record: %+v", fd.Err)
			continue
		}
		sorted, err := sortFn(fd.Values)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, tools.FormatSequence(sorted)); err != nil {
			return err
		}
	}

	return nil
}
