package todolists

import (
	"io"
	"io/ioutil"
	"net/http"
	"os"
	"strings"
)

// DefaultEndpoint is the todo-lists resource of the backend used when no WithEndpoint option is given.
const DefaultEndpoint = "https://social-network.samuraijs.com/api/1.1/todo-lists"

// ClientOption configures a Client built with NewClient.
type ClientOption func(*Client) error

// WithEndpoint is a client option to set the todo-lists resource URL when building a client with NewClient.
// Mostly useful in tests, pointing the client to an httptest server.
func WithEndpoint(endpoint string) ClientOption {
	return func(c *Client) error {
		c.endpoint = strings.TrimSuffix(endpoint, "/")
		return nil
	}
}

// WithHTTPClient replaces http.DefaultClient, e.g., to set timeouts or to share cookies with other clients.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) error {
		c.hc = hc
		return nil
	}
}

// WithWireLog is a client option to be passed to NewClient in order to log all requests and responses to the
// specified log file. Useful for debugging the client itself, shouldn't be needed in normal operation.
func WithWireLog(pathname string) ClientOption {
	return func(c *Client) error {
		f, err := os.OpenFile(pathname, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600)
		if err == nil {
			c.wlog = f
		}
		return err
	}
}

// Client talks to the todo-lists REST backend. It implements Backend, and is stateless: the collection itself is
// held by a Store, which the coordinators (LoadTodolists etc.) update after each call.
type Client struct {
	endpoint string

	// The secret key to authenticate and authorize API calls, sent in the API-KEY header.
	apiKey string

	hc *http.Client

	// If non-nil, log all requests and responses to this file, one per line, in JSON format.
	wlog io.Writer
}

// NewClient creates a new client authenticated and authorized by the given API key. An empty key is allowed
// for backends that don't require one.
func NewClient(apiKey string, opts ...ClientOption) (*Client, error) {
	c := &Client{
		endpoint: DefaultEndpoint,
		apiKey:   apiKey,
		hc:       http.DefaultClient,
		wlog:     ioutil.Discard,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}
