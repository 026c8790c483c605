package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/nicolagi/todolists"
)

func printAllTodolists(w io.Writer, alphabetically bool) error {
	return printTodolists(w, store.State(), alphabetically)
}

func printSearch(w io.Writer, expr string, alphabetically bool) error {
	search := todolists.SearchTodolists(store.State())
	for _, term := range strings.Split(expr, ":") {
		if err := addSearchTerm(search, strings.TrimSpace(term)); err != nil {
			return fmt.Errorf("search %q: %w", expr, err)
		}
	}
	return printTodolists(w, search.Results(), alphabetically)
}

func printTodolists(w io.Writer, lists []todolists.TodolistDomain, alphabetically bool) error {
	if alphabetically {
		// Don't sort the store's collection in place.
		sorted := make([]todolists.TodolistDomain, len(lists))
		copy(sorted, lists)
		sort.Stable(todolistsByTitle(sorted))
		lists = sorted
	}
	for _, tl := range lists {
		_, _ = fmt.Fprintf(w, "%v\t%v\t%v\n", tl.ID, tl.Filter, tl.Title)
	}
	return nil
}

func addSearchTerm(s *todolists.TodolistScan, term string) error {
	if term == "" {
		return nil
	}
	switch term[0] {
	case '-':
		if err := addSearchTerm(s, term[1:]); err != nil {
			return err
		}
		s.Not()
	case '=':
		filter, err := todolists.ParseFilter(term[1:])
		if err != nil {
			return err
		}
		s.WithFilter(filter)
	default:
		s.WithTitle(term)
	}
	return nil
}

// parseLine splits a line as printed by printTodolists. Columns may be separated by runs of tabs (see
// acme.Win.PrintTabbed); the title is everything after the filter column.
func parseLine(line string) (id string, filter todolists.FilterValue, title string, ok bool) {
	fields := strings.FieldsFunc(line, func(r rune) bool { return r == '\t' })
	if len(fields) < 3 {
		return "", "", "", false
	}
	filter, err := todolists.ParseFilter(strings.TrimSpace(fields[1]))
	if err != nil {
		return "", "", "", false
	}
	return strings.TrimSpace(fields[0]), filter, strings.TrimSpace(strings.Join(fields[2:], " ")), true
}
