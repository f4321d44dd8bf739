package probe

import (
	"fmt"
	"net/http"
	"strings"
)

// JSONContentTypePrefix is the prefix a successful response's Content-Type
// must start with. The comparison is case sensitive.
const JSONContentTypePrefix = "application/json"

// Result is what the probe observed in a response.
type Result struct {
	StatusCode int
	// ContentType is the first Content-Type header value, or empty.
	ContentType string
}

// OK reports whether r is a 418 with a JSON content type.
func (r Result) OK() bool {
	return r.StatusCode == http.StatusTeapot && strings.HasPrefix(r.ContentType, JSONContentTypePrefix)
}

// Verdict is the line the probe prints for r:
// "OK", or "KO <status> <content type>".
//
// The space before the content type is kept when it is empty.
func (r Result) Verdict() string {
	if r.OK() {
		return "OK"
	}
	return fmt.Sprintf("KO %d %s", r.StatusCode, r.ContentType)
}
