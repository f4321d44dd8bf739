package probetarget

import (
	"context"
	"net/http"

	"github.com/probekit/customprobe/httpbp"
	"github.com/probekit/customprobe/internal/prometheusbpint"
)

// Paths served by Handler.
const (
	PathHelp        = "/"
	PathDie         = "/please-die"
	PathResuscitate = "/please-resuscitate"
	PathReadiness   = "/probe/readiness"
	PathLiveness    = "/probe/liveness"
	PathCustom      = "/probe/custom"
	PathMetrics     = "/metrics"
)

// DeadBody is the body of /probe/custom while not alive or not ready.
const DeadBody = "<h1>I'm dead... X-)</h1>"

var helpPaths = map[string]string{
	PathDie:         "This app will die very soon !",
	PathResuscitate: "This app will come back to life !",
	PathHelp:        "This message",
	PathReadiness:   "Standard readiness probe",
	PathLiveness:    "Standard liveness probe",
	PathCustom:      "A strange custom probe...",
}

type helpResponse struct {
	Paths map[string]string `json:"paths"`
	State Snapshot          `json:"state"`
}

type handlers struct {
	state *State
}

// Handler returns the http.Handler serving state.
func Handler(state *State) http.Handler {
	h := handlers{state: state}
	middlewares := []httpbp.Middleware{
		httpbp.ServerMetrics(),
		httpbp.AccessLog(),
		httpbp.SupportedMethods(http.MethodGet),
	}

	mux := http.NewServeMux()
	for _, route := range []struct {
		path   string
		name   string
		handle httpbp.HandlerFunc
	}{
		{path: PathHelp, name: "help", handle: h.help},
		{path: PathDie, name: "die", handle: h.die},
		{path: PathResuscitate, name: "resuscitate", handle: h.resuscitate},
		{path: PathReadiness, name: "readiness", handle: h.readiness},
		{path: PathLiveness, name: "liveness", handle: h.liveness},
		{path: PathCustom, name: "custom", handle: h.custom},
	} {
		mux.Handle(route.path, httpbp.NewHandler(route.name, route.handle, middlewares...))
	}
	mux.Handle(PathMetrics, prometheusbpint.Handler())
	return mux
}

// help also serves every path nothing else matches, as a 404.
func (h handlers) help(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	if r.URL.Path != PathHelp {
		return httpbp.WriteRawContent(w, httpbp.Response{
			Code: http.StatusNotFound,
			Body: "Not found",
		}, httpbp.PlainTextContentType)
	}
	return httpbp.WriteJSON(w, httpbp.Response{
		Body: helpResponse{
			Paths: helpPaths,
			State: h.state.Snapshot(),
		},
	})
}

func (h handlers) die(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return httpbp.WriteJSON(w, httpbp.Response{Body: h.state.SetAlive(false)})
}

func (h handlers) resuscitate(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return httpbp.WriteJSON(w, httpbp.Response{Body: h.state.SetAlive(true)})
}

func (h handlers) readiness(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	state := h.state.Snapshot()
	code := http.StatusOK
	if !state.Ready {
		code = http.StatusServiceUnavailable
	}
	return httpbp.WriteJSON(w, httpbp.Response{Code: code, Body: state})
}

func (h handlers) liveness(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	state := h.state.Snapshot()
	code := http.StatusOK
	if !state.Alive {
		code = http.StatusInternalServerError
	}
	return httpbp.WriteJSON(w, httpbp.Response{Code: code, Body: state})
}

func (h handlers) custom(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	state := h.state.Snapshot()
	if state.Alive && state.Ready {
		return httpbp.WriteJSON(w, httpbp.Response{Code: http.StatusTeapot, Body: state})
	}
	return httpbp.WriteRawContent(w, httpbp.Response{
		Code: http.StatusInternalServerError,
		Body: DeadBody,
	}, httpbp.HTMLContentType)
}
