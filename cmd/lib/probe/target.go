package probe

import (
	"errors"
	"net/url"
	"strings"
)

// ErrNoHost is wrapped by the error ParseTarget returns for URLs without
// a network location, for example "localhost:8080/probe" (parsed as a
// scheme and an opaque part) or "/probe/custom".
var ErrNoHost = errors.New("url has no host")

// Target is the part of a URL the probe uses.
//
// The scheme, query and fragment are ignored: the probe always talks plain
// HTTP to Host and requests Path. Parameters of the last path segment
// (";params") are dropped too.
type Target struct {
	// Host is "host" or "host:port".
	Host string
	// Path is the escaped path, possibly empty.
	Path string
}

// ParseTarget parses rawURL into a Target.
//
// The error returned is of type *Error with StageParse.
func ParseTarget(rawURL string) (Target, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return Target{}, &Error{Stage: StageParse, URL: rawURL, Err: err}
	}
	if u.Host == "" {
		return Target{}, &Error{Stage: StageParse, URL: rawURL, Err: ErrNoHost}
	}
	return Target{
		Host: u.Host,
		Path: stripParams(u.EscapedPath()),
	}, nil
}

// stripParams drops everything from the first ';' of the last segment.
func stripParams(path string) string {
	last := strings.LastIndexByte(path, '/') + 1
	if i := strings.IndexByte(path[last:], ';'); i >= 0 {
		return path[:last+i]
	}
	return path
}
