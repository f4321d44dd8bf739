package httpbp

import (
	"context"
	"net/http"

	"github.com/probekit/customprobe/log"
)

// HandlerFunc handles a single HTTP request and can be wrapped in Middleware.
//
// The context passed in is the request context, possibly decorated by
// middlewares, and should be used rather than r.Context().
//
// Returning an error makes the handler write a plain-text 500 response,
// unless the HandlerFunc already wrote a status or body, in which case the
// error is only logged.
type HandlerFunc func(context.Context, http.ResponseWriter, *http.Request) error

type handler struct {
	handle HandlerFunc
}

var (
	_ http.Handler = handler{}
	_ http.Handler = (*handler)(nil)
)

func (h handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	rec := &statusRecorder{ResponseWriter: w}
	if err := h.handle(ctx, rec, r); err != nil {
		log.C(ctx).Errorw("Unhandled server error", "err", err, "wrote", rec.code)
		// A response already under way can't become a 500.
		if rec.code == 0 {
			code := http.StatusInternalServerError
			http.Error(w, http.StatusText(code), code)
		}
	}
}

// NewHandler returns a new http.Handler with the given HandlerFunc wrapped
// with the given Middleware. The name is passed to all of the middlewares.
func NewHandler(name string, handle HandlerFunc, middlewares ...Middleware) http.Handler {
	return handler{handle: Wrap(name, handle, middlewares...)}
}
