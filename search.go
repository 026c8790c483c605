package todolists

import "strings"

type todolistPredicate func(*TodolistDomain) bool

func negate(p todolistPredicate) todolistPredicate {
	return func(tl *TodolistDomain) bool {
		return !p(tl)
	}
}

// TodolistScan looks for todo-lists in a collection matching all the predicates added with the With* methods.
type TodolistScan struct {
	state      []TodolistDomain
	predicates []todolistPredicate
}

// SearchTodolists starts a scan over the given collection, e.g., the result of Store.State.
func SearchTodolists(state []TodolistDomain) *TodolistScan {
	return &TodolistScan{
		state: state,
	}
}

// Not negates the last predicate added.  It will panic if no predicates were added.
func (s *TodolistScan) Not() *TodolistScan {
	i := len(s.predicates) - 1
	s.predicates[i] = negate(s.predicates[i])
	return s
}

// WithTitle looks for todo-lists whose title contains the given substring, case-insensitive.
func (s *TodolistScan) WithTitle(needle string) *TodolistScan {
	needle = strings.ToLower(needle)
	s.predicates = append(s.predicates, func(tl *TodolistDomain) bool {
		return strings.Contains(strings.ToLower(tl.Title), needle)
	})
	return s
}

func (s *TodolistScan) WithFilter(value FilterValue) *TodolistScan {
	s.predicates = append(s.predicates, func(tl *TodolistDomain) bool {
		return tl.Filter == value
	})
	return s
}

// Results returns the matching todo-lists in collection order.
func (s *TodolistScan) Results() []TodolistDomain {
	var results []TodolistDomain
	for i := range s.state {
		if s.match(&s.state[i]) {
			results = append(results, s.state[i])
		}
	}
	return results
}

func (s *TodolistScan) match(tl *TodolistDomain) bool {
	for _, match := range s.predicates {
		if !match(tl) {
			return false
		}
	}
	return true
}
