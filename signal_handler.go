package tools

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/golang/glog"
)

var (
	onlyOneSignalHandler = make(chan struct{})
	shutdownSignals      = []os.Signal{os.Interrupt, syscall.SIGTERM}
)

// SetupSignalHandler returns a channel which receives the first of the given signals,
// SIGINT and SIGTERM when none are given, and is closed right after it. Receivers which
// come late get the zero value from the closed channel. A second signal terminates the
// program with exit code 1.
func SetupSignalHandler(signals ...os.Signal) <-chan os.Signal {
	close(onlyOneSignalHandler) // panics when called twice

	if len(signals) == 0 {
		signals = shutdownSignals
	}
	stop := make(chan os.Signal, 1)
	c := make(chan os.Signal, 2)
	signal.Notify(c, signals...)
	go func() {
		s := <-c
		glog.V(5).Infof("signal handler got %s", s)
		stop <- s
		close(stop)
		s = <-c
		glog.Errorf("second signal %s, terminating", s)
		glog.Flush()
		os.Exit(1)
	}()

	return stop
}
