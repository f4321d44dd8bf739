package httpbp

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/probekit/customprobe/log"
)

// AllowHeader is the "Allow" header, set on 405 responses.
const AllowHeader = "Allow"

// Middleware wraps the given HandlerFunc and returns a new, wrapped, HandlerFunc.
type Middleware func(name string, next HandlerFunc) HandlerFunc

// Wrap wraps the given HandlerFunc with the given Middlewares and returns the
// wrapped HandlerFunc passing the given name to each middleware in the chain.
//
// Middlewares will be called in the order that they are defined:
//
//	1. Middlewares[0]
//	2. Middlewares[1]
//	...
//	N. Middlewares[n]
func Wrap(name string, handle HandlerFunc, middlewares ...Middleware) HandlerFunc {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handle = middlewares[i](name, handle)
	}
	return handle
}

// SupportedMethods returns a middleware that answers 405 with an "Allow"
// header for any request method not listed.
//
// If GET is supported, HEAD is supported as well.
func SupportedMethods(method string, additional ...string) Middleware {
	supported := make(map[string]bool, len(additional)+1)
	supported[strings.ToUpper(method)] = true
	for _, m := range additional {
		supported[strings.ToUpper(m)] = true
	}
	if supported[http.MethodGet] {
		supported[http.MethodHead] = true
	}

	allowed := make([]string, 0, len(supported))
	for m := range supported {
		allowed = append(allowed, m)
	}
	sort.Strings(allowed)
	allowedHeader := strings.Join(allowed, ",")

	return func(name string, next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			if !supported[r.Method] {
				w.Header().Set(AllowHeader, allowedHeader)
				return WriteRawContent(w, Response{
					Code: http.StatusMethodNotAllowed,
					Body: fmt.Sprintf("method %s is not supported by %s\n", r.Method, name),
				}, PlainTextContentType)
			}
			return next(ctx, w, r)
		}
	}
}

// AccessLog returns a middleware that attaches a request scoped logger to
// the context and writes one info line per request after it was handled.
func AccessLog() Middleware {
	return func(name string, next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			ctx = log.Attach(ctx, log.AttachArgs{
				AdditionalPairs: map[string]interface{}{
					"endpoint": name,
				},
			})
			rec := &statusRecorder{ResponseWriter: w}
			err := next(ctx, rec, r)
			log.C(ctx).Infow(
				"access",
				"method", r.Method,
				"path", r.URL.RequestURI(),
				"code", rec.statusCode(err),
			)
			return err
		}
	}
}
