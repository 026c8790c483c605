package todolists_test

import (
	"context"
	"encoding/json"
	"errors"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/nicolagi/todolists"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backendServer mimics the todo-lists REST resource, serving from an in-memory list.
type backendServer struct {
	t         *testing.T
	todolists []todolists.Todolist
	nextID    int

	// If non-zero, mutating calls answer with this result code and don't change anything.
	resultCode int
}

func (b *backendServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	assert.Equal(b.t, "secret", r.Header.Get("API-KEY"))
	id := strings.TrimPrefix(r.URL.Path, "/todo-lists")
	id = strings.TrimPrefix(id, "/")
	var in struct {
		Title string `json:"title"`
	}
	if r.Method == http.MethodPost || r.Method == http.MethodPut {
		assert.Equal(b.t, "application/json", r.Header.Get("Content-Type"))
		assert.Nil(b.t, json.NewDecoder(r.Body).Decode(&in))
	}
	reply := func(v interface{}) {
		w.Header().Set("Content-Type", "application/json")
		assert.Nil(b.t, json.NewEncoder(w).Encode(v))
	}
	envelope := map[string]interface{}{
		"resultCode": b.resultCode,
		"messages":   []string{},
		"data":       map[string]interface{}{},
	}
	switch {
	case r.Method == http.MethodGet && id == "":
		reply(b.todolists)
	case r.Method == http.MethodPost && id == "":
		b.nextID++
		item := todolists.Todolist{ID: "srv" + strconv.Itoa(b.nextID), Title: in.Title, AddedDate: "2020-05-01T10:00:00", Order: -b.nextID}
		if b.resultCode == 0 {
			b.todolists = append([]todolists.Todolist{item}, b.todolists...)
		}
		envelope["data"] = map[string]interface{}{"item": item}
		reply(envelope)
	case r.Method == http.MethodDelete && id != "":
		if b.resultCode == 0 {
			for i, tl := range b.todolists {
				if tl.ID == id {
					b.todolists = append(b.todolists[:i], b.todolists[i+1:]...)
					break
				}
			}
		}
		reply(envelope)
	case r.Method == http.MethodPut && id != "":
		if b.resultCode == 0 {
			for i := range b.todolists {
				if b.todolists[i].ID == id {
					b.todolists[i].Title = in.Title
				}
			}
		}
		reply(envelope)
	default:
		http.Error(w, "not found", http.StatusNotFound)
	}
}

func newTestClient(t *testing.T, handler http.Handler) *todolists.Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := todolists.NewClient("secret", todolists.WithEndpoint(srv.URL+"/todo-lists/"))
	require.Nil(t, err)
	return c
}

func TestClientRoundTrip(t *testing.T) {
	backend := &backendServer{t: t, todolists: []todolists.Todolist{
		{ID: "x1", Title: "What to learn", AddedDate: "2020-04-01T10:00:00", Order: 0},
	}}
	c := newTestClient(t, backend)
	ctx := context.Background()

	all, err := c.Todolists(ctx)
	require.Nil(t, err)
	assert.Equal(t, backend.todolists, all)

	created, err := c.CreateTodolist(ctx, "What to buy")
	require.Nil(t, err)
	assert.Equal(t, 0, created.ResultCode)
	require.NotNil(t, created.Data.Item)
	assert.Equal(t, "srv1", created.Data.Item.ID)
	assert.Equal(t, "What to buy", created.Data.Item.Title)

	r, err := c.UpdateTodolistTitle(ctx, "x1", "What to read")
	require.Nil(t, err)
	assert.Equal(t, 0, r.ResultCode)
	assert.Equal(t, "What to read", backend.todolists[1].Title)

	r, err = c.DeleteTodolist(ctx, "srv1")
	require.Nil(t, err)
	assert.Equal(t, 0, r.ResultCode)
	assert.Len(t, backend.todolists, 1)
}

func TestClientCreateWithoutItem(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"resultCode":1,"messages":["Todolist title too long"],"data":{}}`))
	}))
	r, err := c.CreateTodolist(context.Background(), "x")
	require.Nil(t, err)
	assert.Equal(t, 1, r.ResultCode)
	assert.Nil(t, r.Data.Item)

	s := todolists.NewStore()
	for i := 0; i < 2; i++ {
		err := s.Run(context.Background(), todolists.CreateTodolist(c, "x"))
		assert.True(t, errors.Is(err, todolists.ErrNoItem))
	}
	assert.Empty(t, s.State())
}

func TestClientStatusCode(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	_, err := c.Todolists(context.Background())
	assert.True(t, errors.Is(err, todolists.ErrStatusCode))
	assert.Contains(t, err.Error(), "401")
}

func TestClientBadJSON(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>"))
	}))
	_, err := c.DeleteTodolist(context.Background(), "x1")
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "unmarshal")
}

func TestClientEscapesID(t *testing.T) {
	var path string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.EscapedPath()
		_, _ = w.Write([]byte(`{"resultCode":0,"messages":[],"data":{}}`))
	}))
	_, err := c.DeleteTodolist(context.Background(), "a/b c")
	require.Nil(t, err)
	assert.Equal(t, "/todo-lists/a%2Fb%20c", path)
}

func TestClientWireLog(t *testing.T) {
	srv := httptest.NewServer(&backendServer{t: t})
	defer srv.Close()
	pathname := filepath.Join(t.TempDir(), "wire.log")
	c, err := todolists.NewClient("secret", todolists.WithEndpoint(srv.URL+"/todo-lists"), todolists.WithWireLog(pathname))
	require.Nil(t, err)
	_, err = c.CreateTodolist(context.Background(), "logged")
	require.Nil(t, err)

	b, err := ioutil.ReadFile(pathname)
	require.Nil(t, err)
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		var entry map[string]interface{}
		require.Nil(t, json.Unmarshal([]byte(line), &entry), line)
	}
	assert.Contains(t, lines[0], `"type": "request"`)
	assert.Contains(t, lines[0], `{"title":"logged"}`)
	assert.Contains(t, lines[1], `"type": "response"`)
}

func TestCoordinatorsAgainstServer(t *testing.T) {
	backend := &backendServer{t: t, todolists: []todolists.Todolist{
		{ID: "x1", Title: "What to learn", AddedDate: "2020-04-01T10:00:00", Order: 0},
	}}
	c := newTestClient(t, backend)
	s := todolists.NewStore()
	ctx := context.Background()

	require.Nil(t, s.Run(ctx, todolists.LoadTodolists(c)))
	require.Len(t, s.State(), 1)
	s.Dispatch(todolists.ChangeTodolistFilter("x1", todolists.FilterCompleted))

	require.Nil(t, s.Run(ctx, todolists.CreateTodolist(c, "What to buy")))
	require.Len(t, s.State(), 2)
	assert.Equal(t, "srv1", s.State()[0].ID)
	assert.Equal(t, todolists.FilterCompleted, s.State()[1].Filter)

	require.Nil(t, s.Run(ctx, todolists.UpdateTodolistTitle(c, "x1", "What to read")))
	assert.Equal(t, "What to read", s.State()[1].Title)

	backend.resultCode = 1
	err := s.Run(ctx, todolists.DeleteTodolist(c, "x1"))
	assert.True(t, errors.Is(err, todolists.ErrRejected))
	assert.Len(t, s.State(), 2)

	backend.resultCode = 0
	require.Nil(t, s.Run(ctx, todolists.DeleteTodolist(c, "x1")))
	assert.Len(t, s.State(), 1)

	// Reloading resets filters.
	require.Nil(t, s.Run(ctx, todolists.LoadTodolists(c)))
	for _, tl := range s.State() {
		assert.Equal(t, todolists.FilterAll, tl.Filter)
	}
}
