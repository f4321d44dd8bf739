package httpbp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Content-Type values used by the helpers in this package.
const (
	ContentTypeHeader = "Content-Type"

	JSONContentType      = "application/json; charset=utf-8"
	HTMLContentType      = "text/html; charset=utf-8"
	PlainTextContentType = "text/plain; charset=utf-8"
)

// Response is the status code and body to write.
//
// A zero Code is written as 200.
type Response struct {
	Code int
	Body interface{}
}

func (r Response) code() int {
	if r.Code == 0 {
		return http.StatusOK
	}
	return r.Code
}

// WriteJSON writes resp.Body encoded as JSON with resp.Code.
//
// Nothing is written when encoding fails.
func WriteJSON(w http.ResponseWriter, resp Response) error {
	body, err := json.Marshal(resp.Body)
	if err != nil {
		return fmt.Errorf("httpbp: encoding JSON response: %w", err)
	}
	w.Header().Set(ContentTypeHeader, JSONContentType)
	w.WriteHeader(resp.code())
	_, err = w.Write(body)
	return err
}

// WriteRawContent writes resp.Body as-is with the given content type.
//
// resp.Body must be nil, a string, a []byte or an io.Reader,
// otherwise nothing is written and an error is returned.
func WriteRawContent(w http.ResponseWriter, resp Response, contentType string) error {
	var r io.Reader
	switch body := resp.Body.(type) {
	case nil:
		r = strings.NewReader("")
	case string:
		r = strings.NewReader(body)
	case []byte:
		r = bytes.NewReader(body)
	case io.Reader:
		r = body
	default:
		return fmt.Errorf("httpbp: unsupported raw body type %T", body)
	}
	w.Header().Set(ContentTypeHeader, contentType)
	w.WriteHeader(resp.code())
	_, err := io.Copy(w, r)
	return err
}
