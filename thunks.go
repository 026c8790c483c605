package todolists

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrRejected is returned by coordinators when the backend answered with a non-zero result code.
var ErrRejected = errors.New("rejected by backend")

// ErrNoItem is returned by CreateTodolist when the response does not contain the created todo-list.
var ErrNoItem = errors.New("no todo-list in response")

const resultCodeSuccess = 0

// Dispatch applies an action to the state, e.g., Store.Dispatch.
type Dispatch func(Action)

// Thunk is a coordinator: it makes one call to the backend and dispatches the action folding the outcome into the
// state. If the call fails nothing is dispatched, so the state stays as it was, and the error is returned.
type Thunk func(ctx context.Context, dispatch Dispatch) error

// LoadTodolists fetches all todo-lists and replaces the collection with them. Every filter goes back to all.
func LoadTodolists(api Backend) Thunk {
	return func(ctx context.Context, dispatch Dispatch) error {
		todolists, err := api.Todolists(ctx)
		if err != nil {
			return fmt.Errorf("load todolists: %w", err)
		}
		dispatch(SetTodolists(todolists))
		return nil
	}
}

// CreateTodolist creates a todo-list and prepends it with the id the backend assigned. Unlike DeleteTodolist and
// UpdateTodolistTitle, the result code is not checked: a response carrying the created item is taken as success.
// Without an item there is no id to add the list under, so nothing is dispatched.
func CreateTodolist(api Backend, title string) Thunk {
	return func(ctx context.Context, dispatch Dispatch) error {
		r, err := api.CreateTodolist(ctx, title)
		if err != nil {
			return fmt.Errorf("create todolist: %w", err)
		}
		if r.Data.Item == nil {
			if len(r.Messages) != 0 {
				return fmt.Errorf("create todolist: %s: %w", strings.Join(r.Messages, "; "), ErrNoItem)
			}
			return fmt.Errorf("create todolist: %w", ErrNoItem)
		}
		dispatch(AddTodolist(title, r.Data.Item.ID))
		return nil
	}
}

// DeleteTodolist deletes the todo-list and, if the backend reports success, removes it from the collection.
func DeleteTodolist(api Backend, todolistID string) Thunk {
	return func(ctx context.Context, dispatch Dispatch) error {
		r, err := api.DeleteTodolist(ctx, todolistID)
		if err != nil {
			return fmt.Errorf("delete todolist %s: %w", todolistID, err)
		}
		if r.ResultCode != resultCodeSuccess {
			return fmt.Errorf("delete todolist %s: %w", todolistID, rejection(r))
		}
		dispatch(RemoveTodolist(todolistID))
		return nil
	}
}

// UpdateTodolistTitle renames the todo-list and, if the backend reports success, in the collection too.
func UpdateTodolistTitle(api Backend, todolistID string, title string) Thunk {
	return func(ctx context.Context, dispatch Dispatch) error {
		r, err := api.UpdateTodolistTitle(ctx, todolistID, title)
		if err != nil {
			return fmt.Errorf("update todolist %s: %w", todolistID, err)
		}
		if r.ResultCode != resultCodeSuccess {
			return fmt.Errorf("update todolist %s: %w", todolistID, rejection(r))
		}
		dispatch(ChangeTodolistTitle(todolistID, title))
		return nil
	}
}

func rejection(r *Response) error {
	if len(r.Messages) == 0 {
		return fmt.Errorf("result code %d: %w", r.ResultCode, ErrRejected)
	}
	return fmt.Errorf("result code %d: %s: %w", r.ResultCode, strings.Join(r.Messages, "; "), ErrRejected)
}
