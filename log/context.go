package log

import (
	"context"

	"go.uber.org/zap"
)

type contextKeyType struct{}

var contextKey contextKeyType

// AttachArgs are the key-value pairs to pre-fill on the logger attached to a
// context object.
type AttachArgs struct {
	AdditionalPairs map[string]interface{}
}

// Attach attaches a logger with the pairs from args into the context object.
func Attach(ctx context.Context, args AttachArgs) context.Context {
	logger := C(ctx)
	if len(args.AdditionalPairs) == 0 {
		// Attaching unchanged still makes the next C(ctx) skip the fallback.
		return context.WithValue(ctx, contextKey, logger)
	}
	kv := make([]interface{}, 0, len(args.AdditionalPairs)*2)
	for k, v := range args.AdditionalPairs {
		kv = append(kv, k, v)
	}
	return context.WithValue(ctx, contextKey, logger.With(kv...))
}

// C is short for Context.
//
// It returns the logger attached to ctx,
// falling back to the global logger when none is attached.
// Either way the logger reports the line calling it as the caller.
// The return value is never nil.
func C(ctx context.Context) *zap.SugaredLogger {
	if logger, ok := ctx.Value(contextKey).(*zap.SugaredLogger); ok && logger != nil {
		return logger
	}
	return contextLogger
}

// ContextWithLogger returns a child of ctx carrying logger, which C(ctx)
// then returns. A nil logger detaches, making C fall back to the global one.
func ContextWithLogger(ctx context.Context, logger *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, contextKey, logger)
}
