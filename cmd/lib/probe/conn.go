package probe

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"time"
)

// DefaultConnectTimeout bounds establishing the TCP connection.
// Nothing else in a probe has a deadline.
const DefaultConnectTimeout = 5 * time.Second

// Conn sends requests to a single host.
type Conn interface {
	// Get sends a GET request for the escaped path.
	// An empty path is sent as "/".
	Get(path string) (*http.Response, error)

	// Close releases the connection.
	Close() error
}

// Dialer creates a Conn for host.
type Dialer interface {
	Dial(host string, connectTimeout time.Duration) (Conn, error)
}

// HTTPDialer is the Dialer used by Run.
//
// Dial does not connect, the first Get does. The Conns it returns never
// follow redirects, never use a proxy and never ask for compressed bodies.
type HTTPDialer struct{}

var _ Dialer = HTTPDialer{}

// Dial implements Dialer.
func (HTTPDialer) Dial(host string, connectTimeout time.Duration) (Conn, error) {
	transport := &http.Transport{
		Proxy: nil,
		DialContext: (&net.Dialer{
			Timeout: connectTimeout,
		}).DialContext,
		DisableCompression: true,
		MaxConnsPerHost:    1,
		MaxIdleConns:       1,
	}
	return &httpConn{
		host:      host,
		transport: transport,
		client: &http.Client{
			Transport: transport,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}, nil
}

type httpConn struct {
	host      string
	transport *http.Transport
	client    *http.Client
}

func (c *httpConn) Get(path string) (*http.Response, error) {
	unescaped, err := url.PathUnescape(path)
	if err != nil {
		return nil, err
	}
	u := &url.URL{
		Scheme:  "http",
		Host:    c.host,
		Path:    unescaped,
		RawPath: path,
	}
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	return c.client.Do(req)
}

func (c *httpConn) Close() error {
	c.transport.CloseIdleConnections()
	return nil
}
