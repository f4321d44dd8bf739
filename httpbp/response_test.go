package httpbp_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/probekit/customprobe/httpbp"
)

func TestWriteRawContent(t *testing.T) {
	for _, c := range []struct {
		label    string
		resp     httpbp.Response
		wantCode int
		wantBody string
		wantErr  bool
	}{
		{
			label:    "string",
			resp:     httpbp.Response{Code: http.StatusInternalServerError, Body: "<h1>dead</h1>"},
			wantCode: http.StatusInternalServerError,
			wantBody: "<h1>dead</h1>",
		},
		{
			label:    "bytes",
			resp:     httpbp.Response{Body: []byte("Not found")},
			wantCode: http.StatusOK,
			wantBody: "Not found",
		},
		{
			label:    "reader",
			resp:     httpbp.Response{Code: http.StatusNotFound, Body: bytes.NewBufferString("Not found")},
			wantCode: http.StatusNotFound,
			wantBody: "Not found",
		},
		{
			label:    "nil",
			resp:     httpbp.Response{Code: http.StatusNoContent},
			wantCode: http.StatusNoContent,
		},
		{
			label:    "unsupported",
			resp:     httpbp.Response{Body: 42},
			wantCode: http.StatusOK,
			wantErr:  true,
		},
	} {
		t.Run(c.label, func(t *testing.T) {
			w := httptest.NewRecorder()
			err := httpbp.WriteRawContent(w, c.resp, httpbp.HTMLContentType)
			if c.wantErr {
				if err == nil {
					t.Fatal("Expected error, got nil")
				}
				if w.Body.Len() != 0 || w.Header().Get(httpbp.ContentTypeHeader) != "" {
					t.Errorf("Expected nothing written, got header %v body %q", w.Header(), w.Body.String())
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if w.Code != c.wantCode {
				t.Errorf("code = %d, want %d", w.Code, c.wantCode)
			}
			if got := w.Body.String(); got != c.wantBody {
				t.Errorf("body = %q, want %q", got, c.wantBody)
			}
			if got := w.Header().Get(httpbp.ContentTypeHeader); got != httpbp.HTMLContentType {
				t.Errorf("Content-Type = %q", got)
			}
		})
	}
}

func TestWriteJSONError(t *testing.T) {
	w := httptest.NewRecorder()
	if err := httpbp.WriteJSON(w, httpbp.Response{Body: make(chan int)}); err == nil {
		t.Error("Expected encoding error, got nil")
	}
	if w.Body.Len() != 0 {
		t.Errorf("Expected empty body, got %q", w.Body.String())
	}
}
