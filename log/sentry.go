package log

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	sentry "github.com/getsentry/sentry-go"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultSentryFlushTimeout is the timeout used to call sentry.Flush().
const DefaultSentryFlushTimeout = time.Second * 2

// ErrSentryFlushFailed is wrapped by the error returned from the Closer of
// InitSentry when flushing did not finish in time.
var ErrSentryFlushFailed = errors.New("log: sentry flushing failed")

// SentryConfig is the config to be passed into InitSentry.
//
// All fields are optional. With an empty DSN (and no SENTRY_DSN in the
// environment) every sentry operation is a no-op.
type SentryConfig struct {
	DSN         string `yaml:"dsn"`
	ServerName  string `yaml:"server_name"`
	Environment string `yaml:"environment"`

	// SampleRate between 0 and 1, default is 1.
	SampleRate *float64 `yaml:"sample_rate" validate:"omitempty,min=0,max=1"`

	// If <=0, DefaultSentryFlushTimeout will be used.
	FlushTimeout time.Duration `yaml:"flush_timeout"`
}

// InitSentry initializes sentry reporting.
//
// The io.Closer returned flushes pending events.
func InitSentry(cfg SentryConfig) (io.Closer, error) {
	var sampleRate float64 = 1
	if cfg.SampleRate != nil && *cfg.SampleRate >= 0 && *cfg.SampleRate <= 1 {
		sampleRate = *cfg.SampleRate
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		SampleRate:  sampleRate,
		ServerName:  cfg.ServerName,
		Environment: cfg.Environment,
	}); err != nil {
		return nil, err
	}
	return sentryCloser(cfg.FlushTimeout), nil
}

type sentryCloser time.Duration

func (c sentryCloser) Close() error {
	timeout := time.Duration(c)
	if timeout <= 0 {
		timeout = DefaultSentryFlushTimeout
	}
	if sentry.Flush(timeout) {
		return nil
	}
	return fmt.Errorf("log: failed to flush sentry after %v: %w", timeout, ErrSentryFlushFailed)
}

// ErrorWithSentry logs a message with some additional context,
// then sends the error to Sentry.
//
// String-able key-value pairs are also set as tags on the sentry event.
// The hub attached to ctx is used when present, the global one otherwise.
func ErrorWithSentry(ctx context.Context, msg string, err error, keysAndValues ...interface{}) {
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	if len(keysAndValues) > 0 {
		hub = hub.Clone()
		hub.ConfigureScope(func(scope *sentry.Scope) {
			forEachPair(keysAndValues, scope.SetTag)
		})
	}
	C(ctx).Desugar().WithOptions(zap.AddCallerSkip(1)).Sugar().Errorw(msg, append(keysAndValues, "err", err)...)
	hub.CaptureException(err)
}

func forEachPair(keysAndValues []interface{}, f func(key, value string)) {
	for i := 0; i < len(keysAndValues); i++ {
		if _, ok := keysAndValues[i].(zapcore.Field); ok {
			continue
		}
		if i == len(keysAndValues)-1 {
			// dangling key
			return
		}
		key := fmt.Sprint(keysAndValues[i])
		i++
		f(key, fmt.Sprint(keysAndValues[i]))
	}
}
