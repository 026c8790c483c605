package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"9fans.net/go/acme"
	"github.com/nicolagi/todolists"
	log "github.com/sirupsen/logrus"
)

type windowMode int

const (
	modeAll    windowMode = iota // /todolists/all
	modeNew                      // /todolists/new
	modeSearch                   // /todolists/search/$expr
)

func (mode windowMode) String() string {
	switch mode {
	case modeAll:
		return "all"
	case modeNew:
		return "new"
	case modeSearch:
		return "search"
	default:
		log.WithField("mode", int(mode)).Error("Missing mode string, returning as number")
		return fmt.Sprintf("%d", int(mode))
	}
}

var all struct {
	sync.Mutex
	m map[*acme.Win]*window
}

type window struct {
	*acme.Win

	mode windowMode

	expr string // For modeSearch

	// If false, keep the backend's order.  Not used for the new todo-list window.
	sortAlphabetically bool
}

// resetTag is used when a new window is created.
func (w *window) resetTag() {
	var tag string
	switch w.mode {
	case modeAll:
		tag = " New Get Put PutDel Sort Search Filter Zap "
	case modeNew:
		tag = " Put PutDel "
	case modeSearch:
		tag = " Get Put Sort Search Filter Zap "
	}
	_ = w.Ctl("cleartag")
	_ = w.Fprintf("tag", tag)
}

// exit is called after the window's event loop is over, i.e., the window has been closed in acme.  If it's the
// last window, the process terminates.
func (w *window) exit() {
	all.Lock()
	defer all.Unlock()
	if all.m[w.Win] == w {
		delete(all.m, w.Win)
	}
	if len(all.m) == 0 {
		os.Exit(0)
	}
}

// newWindow creates a window in acme without a specific purpose, and registers it in the global map of windows.
func newWindow(pathname string) *window {
	all.Lock()
	defer all.Unlock()
	if all.m == nil {
		all.m = make(map[*acme.Win]*window)
	}

	logEntry := log.WithField("path", pathname)
	aw, err := acme.New()
	if err != nil {
		logEntry.WithField("cause", err).Warning("Could not create acme window")
		time.Sleep(10 * time.Millisecond)
		aw, err = acme.New()
		if err != nil {
			logEntry.WithField("cause", err).Fatal("Could not create acme window again")
		}
	}
	aw.SetErrorPrefix(pathname)
	_ = aw.Name(pathname)

	w := &window{Win: aw}
	all.m[w.Win] = w
	return w
}

func newAllTodolistsWindow() {
	title := "/todolists/all"
	if acme.Show(title) != nil {
		return
	}
	w := newWindow(title)
	w.mode = modeAll
	w.resetTag()
	go w.reload()
	go w.loop()
}

func newSearchWindow(expr string) {
	title := "/todolists/search/" + expr
	if acme.Show(title) != nil {
		return
	}
	w := newWindow(title)
	w.mode = modeSearch
	w.expr = expr
	w.resetTag()
	go w.reload()
	go w.loop()
}

func newTodolistWindow() {
	title := "/todolists/new"
	if acme.Show(title) != nil {
		return
	}
	w := newWindow(title)
	w.mode = modeNew
	w.resetTag()
	go w.loop()
}

// Look is invoked via button-3 click in acme. Clicking on a filter value opens a search for the todo-lists with
// that filter. Returns false for anything else, to defer to other handlers.
func (w *window) Look(text string) bool {
	if w.mode == modeNew {
		return false
	}
	if filter, err := todolists.ParseFilter(strings.TrimSpace(text)); err == nil {
		newSearchWindow("=" + string(filter))
		return true
	}
	return false
}

// fetch replaces the store's collection with what the backend has. Windows are redrawn by onStateChange.
func (w *window) fetch() {
	if err := store.Run(context.Background(), todolists.LoadTodolists(client)); err != nil {
		w.Errf("Could not load todo-lists: %v", err)
	}
}

// reload redraws the window.  The windows lock serializes it with the redraws done by onStateChange.
func (w *window) reload() {
	all.Lock()
	defer all.Unlock()
	w.load()
}

func (w *window) toggleSort() {
	all.Lock()
	defer all.Unlock()
	w.sortAlphabetically = !w.sortAlphabetically
	w.load()
}

// load must be called with the windows lock held.
func (w *window) load() {
	var buf bytes.Buffer
	var err error
	switch w.mode {
	case modeNew:
		return
	case modeAll:
		err = printAllTodolists(&buf, w.sortAlphabetically)
	case modeSearch:
		err = printSearch(&buf, w.expr, w.sortAlphabetically)
	}
	w.Clear()
	if err != nil {
		_, _ = w.Write("body", []byte(err.Error()))
	} else {
		w.PrintTabbed(buf.String())
		_ = w.Ctl("clean")
	}
	_ = w.Addr("0")
	_ = w.Ctl("dot=addr")
	_ = w.Ctl("show")
}

// Execute is triggered by button-2 click in acme.
func (w *window) Execute(cmd string) bool {
	if strings.HasPrefix(cmd, "Search ") {
		expr := strings.TrimSpace(strings.TrimPrefix(cmd, "Search "))
		newSearchWindow(expr)
		return true
	}
	if strings.HasPrefix(cmd, "Zap ") {
		id := strings.TrimSpace(strings.TrimPrefix(cmd, "Zap "))
		tl, ok := todolists.TodolistByID(store.State(), id)
		if !ok {
			return false
		}
		if err := store.Run(context.Background(), todolists.DeleteTodolist(client, id)); err != nil {
			w.Errf("Could not delete %q: %v", tl.Title, err)
		}
		return true
	}
	if strings.HasPrefix(cmd, "Filter ") {
		// Filter $id $value
		args := strings.Fields(strings.TrimPrefix(cmd, "Filter "))
		if len(args) != 2 {
			w.Err("usage: Filter id all|active|completed")
			return true
		}
		filter, err := todolists.ParseFilter(args[1])
		if err != nil {
			w.Errf("%v", err)
			return true
		}
		if _, ok := todolists.TodolistByID(store.State(), args[0]); !ok {
			w.Errf("Todo-list not found: %s", args[0])
			return true
		}
		store.Dispatch(todolists.ChangeTodolistFilter(args[0], filter))
		return true
	}
	switch cmd {
	case "Get":
		w.fetch()
		return true
	case "Put", "PutDel":
		del := cmd == "PutDel"
		var err error
		switch w.mode {
		case modeNew:
			err = w.putNew()
		case modeAll, modeSearch:
			err = w.putLines()
		}
		if err != nil {
			w.Errf("Put failed: %v", err)
			return true
		}
		if w.mode == modeNew {
			_ = w.Ctl("clean")
		}
		if del {
			_ = w.Del(true)
		}
		return true
	case "Del":
		_ = w.Del(false)
		return true
	case "New":
		newTodolistWindow()
		return true
	case "Sort":
		if w.mode == modeNew {
			w.Errf("Window mode does not allow sorting: %v", w.mode)
			return true
		}
		w.toggleSort()
		return true
	default:
		return false
	}
}

// putNew creates a todo-list titled after the window's body.
func (w *window) putNew() error {
	body, err := w.ReadAll("body")
	if err != nil {
		return err
	}
	title := strings.TrimSpace(string(body))
	if title == "" {
		return fmt.Errorf("empty title")
	}
	return store.Run(context.Background(), todolists.CreateTodolist(client, title))
}

// putLines reads up the body and compares each line to the todo-list it refers to: changed titles are sent to
// the backend, changed filters are applied locally.
func (w *window) putLines() error {
	data, err := w.ReadAll("body")
	if err != nil {
		return err
	}
	var failed []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		id, filter, title, ok := parseLine(line)
		if !ok {
			log.WithField("line", line).Warning("Ignoring line that does not look like id, filter, title")
			continue
		}
		tl, ok := todolists.TodolistByID(store.State(), id)
		if !ok {
			log.WithField("line", line).Warning("Ignoring line that refers to an unknown todo-list")
			continue
		}
		if tl.Filter != filter {
			store.Dispatch(todolists.ChangeTodolistFilter(id, filter))
		}
		if title != "" && tl.Title != title {
			if err := store.Run(context.Background(), todolists.UpdateTodolistTitle(client, id, title)); err != nil {
				log.WithFields(log.Fields{
					"id":    id,
					"cause": err,
				}).Warning("Could not rename todo-list")
				failed = append(failed, id)
			}
		}
	}
	if len(failed) != 0 {
		return fmt.Errorf("could not rename %s", strings.Join(failed, ", "))
	}
	return nil
}

func (w *window) loop() {
	defer w.exit()
	w.EventLoop(w)
}

// onStateChange is subscribed to the store and redraws every window showing todo-lists.
func onStateChange([]todolists.TodolistDomain) {
	all.Lock()
	defer all.Unlock()
	for _, w := range all.m {
		switch w.mode {
		case modeAll, modeSearch:
			w.load()
		}
	}
}
