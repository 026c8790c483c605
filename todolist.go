package todolists

import (
	"errors"
	"fmt"
)

// ErrInvalidFilter is returned by ParseFilter for anything other than all, active or completed.
var ErrInvalidFilter = errors.New("invalid filter value")

// Todolist partially describes a todo-list as the backend returns it. AddedDate and Order are backend metadata,
// this package never interprets them, only passes them through.
type Todolist struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	AddedDate string `json:"addedDate"`
	Order     int    `json:"order"`
}

// FilterValue selects which tasks of a todo-list the user interface shows. It is local state only and is never
// sent to the backend.
type FilterValue string

const (
	FilterAll       FilterValue = "all"
	FilterActive    FilterValue = "active"
	FilterCompleted FilterValue = "completed"
)

func (f FilterValue) Valid() bool {
	switch f {
	case FilterAll, FilterActive, FilterCompleted:
		return true
	default:
		return false
	}
}

func ParseFilter(s string) (FilterValue, error) {
	f := FilterValue(s)
	if !f.Valid() {
		return "", fmt.Errorf("%q: %w", s, ErrInvalidFilter)
	}
	return f, nil
}

// TodolistDomain is a todo-list as held in the store: the backend record plus the display filter.
type TodolistDomain struct {
	Todolist
	Filter FilterValue `json:"filter"`
}

// TodolistByID looks up the todo-list by id in the given collection (no remote call is made).
func TodolistByID(state []TodolistDomain, id string) (TodolistDomain, bool) {
	for _, tl := range state {
		if tl.ID == id {
			return tl, true
		}
	}
	return TodolistDomain{}, false
}
