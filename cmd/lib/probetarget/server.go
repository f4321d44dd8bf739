package probetarget

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"runtime/debug"
	"time"

	"github.com/probekit/customprobe/batchcloser"
	"github.com/probekit/customprobe/errorsbp"
	"github.com/probekit/customprobe/internal/prometheusbpint"
	"github.com/probekit/customprobe/log"
	"github.com/probekit/customprobe/runtimebp"
)

// Run runs the probe target service until it is stopped by a signal.
//
// It returns 0 after a clean shutdown and 1 otherwise.
func Run() int {
	if err := RunArgs(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// RunArgs is the more customizable version of Run.
//
// In production code it expects os.Args as args.
func RunArgs(args []string) (err error) {
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	configPath := fs.String(
		"config",
		"",
		"Path to the YAML config file. Defaults are used when empty.",
	)
	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("failed to parse args: %w", err)
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		return err
	}

	var closers batchcloser.BatchCloser
	defer func() {
		var batch errorsbp.Batch
		batch.Add(err, closers.Close())
		err = batch.Compile()
	}()

	logCloser, err := log.InitFromConfig(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	closers.Add("log", logCloser)
	// Sync fails on terminals, ignore it.
	closers.Add("log sync", batchcloser.Func(func() error {
		log.Sync()
		return nil
	}))

	sentryCloser, err := log.InitSentry(cfg.Sentry)
	if err != nil {
		return fmt.Errorf("failed to init sentry: %w", err)
	}
	closers.Add("sentry", sentryCloser)

	if info, ok := debug.ReadBuildInfo(); ok {
		prometheusbpint.RecordModuleVersions(info)
	}

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %q: %w", cfg.Addr, err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go runtimebp.HandleShutdown(ctx, func(sig os.Signal) {
		log.Infow("Received shutdown signal", "signal", sig)
		cancel()
	})

	if err := Serve(ctx, cfg, ln); err != nil {
		log.ErrorWithSentry(ctx, "Serve failed", err, "addr", cfg.Addr)
		return err
	}
	return nil
}

// Serve serves the probe target on ln until ctx is done, then shuts the
// server down gracefully within cfg.StopTimeout.
//
// ln is closed when Serve returns.
func Serve(ctx context.Context, cfg Config, ln net.Listener) error {
	state := NewState(cfg.Countdown, os.Getenv("HOSTNAME"))
	go state.RunCountdown(ctx, cfg.Tick)

	server := &http.Server{
		Handler:           Handler(state),
		ReadHeaderTimeout: 10 * time.Second,
	}
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve(ln)
	}()
	log.Infof("Live at %s", ln.Addr())

	select {
	case err := <-serveErr:
		return fmt.Errorf("probetarget: serve: %w", err)
	case <-ctx.Done():
	}

	stopTimeout := cfg.StopTimeout
	if stopTimeout <= 0 {
		stopTimeout = DefaultStopTimeout
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), stopTimeout)
	defer cancel()

	var batch errorsbp.Batch
	batch.AddPrefix("probetarget: shutdown", server.Shutdown(shutdownCtx))
	if err := <-serveErr; !errors.Is(err, http.ErrServerClosed) {
		batch.AddPrefix("probetarget: serve", err)
	}
	return batch.Compile()
}
