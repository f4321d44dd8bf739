package httpbp

import (
	"net/http"
)

// statusRecorder remembers the status code written through it.
type statusRecorder struct {
	http.ResponseWriter

	code int
}

func (r *statusRecorder) WriteHeader(code int) {
	if r.code == 0 {
		r.code = code
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.code == 0 {
		r.code = http.StatusOK
	}
	return r.ResponseWriter.Write(b)
}

// statusCode returns the code a handler wrote, or the code the server will
// write on its behalf: 500 when it returned err, 200 otherwise.
func (r *statusRecorder) statusCode(err error) int {
	if r.code != 0 {
		return r.code
	}
	if err != nil {
		return http.StatusInternalServerError
	}
	return http.StatusOK
}

// Flush keeps streaming handlers working behind the recorder.
func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

var _ http.Flusher = (*statusRecorder)(nil)
