package provider

import (
	"net"
	"net/http"
	"strings"
	"time"
)

const (
	defaultConnectTimeout = 10 * time.Second

	// GenerateTimeout bounds one whole generate call, streaming
	// included, to protect against a hung peer.
	GenerateTimeout = 5 * time.Minute
)

// Client talks to a single Ollama server.
type Client struct {
	host       string
	httpClient *http.Client
}

// NewClient creates a client for the given base URL.
func NewClient(host string) *Client {
	return &Client{
		host:       strings.TrimSuffix(host, "/"),
		httpClient: newHTTPClient(),
	}
}

// Host returns the server base URL.
func (c *Client) Host() string {
	return c.host
}

// newHTTPClient creates an HTTP client for LLM API requests.
// Client-level timeout is disabled (0) to allow long-running streaming
// responses; timeouts are controlled via context instead.
func newHTTPClient() *http.Client {
	return &http.Client{
		Timeout: 0,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   defaultConnectTimeout,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        10,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 10 * time.Second,
		},
	}
}
