package main

import (
	"strings"

	"github.com/nicolagi/todolists"
)

type todolistsByTitle []todolists.TodolistDomain

func (lists todolistsByTitle) Len() int {
	return len(lists)
}

func (lists todolistsByTitle) Swap(i, j int) {
	lists[i], lists[j] = lists[j], lists[i]
}

func (lists todolistsByTitle) Less(i, j int) bool {
	return strings.ToLower(lists[i].Title) < strings.ToLower(lists[j].Title)
}
