package todolists

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"

	log "github.com/sirupsen/logrus"
)

// ErrStatusCode is returned in case the response from the API contains a status code that the client can't handle.
var ErrStatusCode = errors.New("unhandled status code")

// Backend is the subset of the todo-lists API the coordinators need. Client is the HTTP implementation.
type Backend interface {
	Todolists(ctx context.Context) ([]Todolist, error)
	CreateTodolist(ctx context.Context, title string) (*CreateTodolistResponse, error)
	DeleteTodolist(ctx context.Context, id string) (*Response, error)
	UpdateTodolistTitle(ctx context.Context, id string, title string) (*Response, error)
}

// Response is the envelope the backend wraps the outcome of mutating calls in. A result code of zero means
// success; otherwise Messages explains what went wrong.
type Response struct {
	ResultCode int      `json:"resultCode"`
	Messages   []string `json:"messages"`
}

// CreateTodolistResponse carries the created todo-list. Item is nil when the backend did not create one,
// e.g., a rejected request answered with an empty data object.
type CreateTodolistResponse struct {
	Response
	Data struct {
		Item *Todolist `json:"item"`
	} `json:"data"`
}

type titleRequest struct {
	Title string `json:"title"`
}

// Todolists fetches all the todo-lists, in the order determined by the backend.
func (c *Client) Todolists(ctx context.Context) ([]Todolist, error) {
	var todolists []Todolist
	if err := c.do(ctx, "get todolists", http.MethodGet, c.endpoint, nil, &todolists); err != nil {
		return nil, err
	}
	return todolists, nil
}

func (c *Client) CreateTodolist(ctx context.Context, title string) (*CreateTodolistResponse, error) {
	var r CreateTodolistResponse
	if err := c.do(ctx, "create todolist", http.MethodPost, c.endpoint, titleRequest{Title: title}, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *Client) DeleteTodolist(ctx context.Context, id string) (*Response, error) {
	var r Response
	if err := c.do(ctx, "delete todolist", http.MethodDelete, c.todolistURL(id), nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *Client) UpdateTodolistTitle(ctx context.Context, id string, title string) (*Response, error) {
	var r Response
	if err := c.do(ctx, "update todolist", http.MethodPut, c.todolistURL(id), titleRequest{Title: title}, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *Client) todolistURL(id string) string {
	return c.endpoint + "/" + url.PathEscape(id)
}

// do sends a request with in, if non-nil, as the JSON body, and decodes the JSON response into out.
func (c *Client) do(ctx context.Context, op string, method string, target string, in interface{}, out interface{}) error {
	var body io.Reader
	var payload []byte
	if in != nil {
		var err error
		payload, err = json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s, marshal: %w", op, err)
		}
		body = bytes.NewReader(payload)
	}
	if payload == nil {
		payload = []byte("null")
	}
	_, _ = fmt.Fprintf(c.wlog, `{"type": "request", "method": %q, "url": %q, "body": `, method, target)
	_, _ = c.wlog.Write(payload)
	_, _ = c.wlog.Write([]byte("}\n"))

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("API-KEY", c.apiKey)
	}
	r, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			log.WithFields(log.Fields{
				"op":    op,
				"cause": err,
			}).Warning("Could not close response body")
		}
	}()
	if r.StatusCode < 200 || r.StatusCode > 299 {
		var responseText string
		b, err := ioutil.ReadAll(r.Body)
		if err != nil {
			responseText = fmt.Sprintf("unknown, because of error reading body: %v", err)
		} else {
			responseText = string(b)
		}
		log.WithFields(log.Fields{
			"op":   op,
			"code": r.StatusCode,
			"text": responseText,
		}).Error("Unhandled response status code")
		return fmt.Errorf("%s: %d: %w", op, r.StatusCode, ErrStatusCode)
	}
	b, err := ioutil.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("%s, read body: %w", op, err)
	}
	_, _ = c.wlog.Write([]byte(`{"type": "response", "response": `))
	_, _ = c.wlog.Write(bytes.TrimSpace(b))
	_, _ = c.wlog.Write([]byte("}\n"))
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("%s, unmarshal: %w", op, err)
	}
	return nil
}
