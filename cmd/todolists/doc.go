// The todolists program is an acme user interface to a todo-lists backend.
//
// The API key is expected at the file lib/todolists/key within the user's home directory. If the file
// lib/todolists/endpoint exists, its content is used as the URL of the todo-lists resource instead of the default
// one. Requests and responses are logged to lib/todolists/wire.log.
//
// When launched, it creates an initial window listing all todo-lists, one per line: id, filter, title. Edit titles
// or filters in place and Put to save; titles go to the backend, filters only live in the program. New opens a
// window where the body is the title of the list to create. Zap followed by an id deletes that list.
//
// Example arguments to Search: all lists whose title contains "work":  work.  All lists showing completed tasks:
// =completed.  Lists containing "home" not showing all tasks:  home:-=all.
//
// So, in summary, prepending minus negates a condition; the colon combines conditions (i.e., represents the
// boolean AND); the = symbol introduces a condition on the filter, while the default condition looks for a
// substring in titles.
package main // import "github.com/nicolagi/todolists/cmd/todolists"
