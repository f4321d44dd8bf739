// Package runtimebp holds process level helpers for long running binaries.
package runtimebp

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// ShutdownHandler is called with the signal that triggered the shutdown.
type ShutdownHandler func(signal os.Signal)

// DefaultSignals are always handled by HandleShutdown:
// os.Interrupt for ^C and SIGTERM for container runtimes.
var DefaultSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
}

// HandleShutdown blocks until either one of DefaultSignals or signals is
// received, or ctx is done.
//
// On a signal, handler is called before HandleShutdown returns.
// On ctx being done handler is not called.
// It should usually be started in its own goroutine.
func HandleShutdown(ctx context.Context, handler ShutdownHandler, signals ...os.Signal) {
	sig := make([]os.Signal, 0, len(DefaultSignals)+len(signals))
	sig = append(sig, DefaultSignals...)
	sig = append(sig, signals...)

	c := make(chan os.Signal, 1)
	signal.Notify(c, sig...)
	defer signal.Stop(c)

	select {
	case s := <-c:
		handler(s)
	case <-ctx.Done():
	}
}
