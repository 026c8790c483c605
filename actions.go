package todolists

// ActionType identifies the kind of an Action.
type ActionType string

// These constants are the possible values returned by Action.Type for the actions defined in this package.
const (
	removeTodolist       ActionType = "REMOVE-TODOLIST"
	addTodolist          ActionType = "ADD-TODOLIST"
	changeTodolistTitle  ActionType = "CHANGE-TODOLIST-TITLE"
	changeTodolistFilter ActionType = "CHANGE-TODOLIST-FILTER"
	setTodolists         ActionType = "SET-TODOLISTS"
)

// Action describes an intended change to the todo-lists collection. Actions are consumed by Reduce, usually via
// Store.Dispatch. Treat them as immutable.
type Action interface {
	Type() ActionType
}

type RemoveTodolistAction struct {
	ID string
}

func (RemoveTodolistAction) Type() ActionType { return removeTodolist }

func RemoveTodolist(todolistID string) RemoveTodolistAction {
	return RemoveTodolistAction{ID: todolistID}
}

type AddTodolistAction struct {
	Title      string
	TodolistID string
}

func (AddTodolistAction) Type() ActionType { return addTodolist }

// AddTodolist builds the action to prepend a new todo-list. The id is normally assigned by the backend (see
// CreateTodolist); NewTemporaryID can be used for lists that only exist locally.
func AddTodolist(title string, todolistID string) AddTodolistAction {
	return AddTodolistAction{Title: title, TodolistID: todolistID}
}

type ChangeTodolistTitleAction struct {
	ID    string
	Title string
}

func (ChangeTodolistTitleAction) Type() ActionType { return changeTodolistTitle }

func ChangeTodolistTitle(id string, title string) ChangeTodolistTitleAction {
	return ChangeTodolistTitleAction{ID: id, Title: title}
}

type ChangeTodolistFilterAction struct {
	ID     string
	Filter FilterValue
}

func (ChangeTodolistFilterAction) Type() ActionType { return changeTodolistFilter }

func ChangeTodolistFilter(id string, filter FilterValue) ChangeTodolistFilterAction {
	return ChangeTodolistFilterAction{ID: id, Filter: filter}
}

type SetTodolistsAction struct {
	Todolists []Todolist
}

func (SetTodolistsAction) Type() ActionType { return setTodolists }

// SetTodolists builds the action replacing the whole collection. The records are copied, so the caller may
// reuse the slice.
func SetTodolists(todolists []Todolist) SetTodolistsAction {
	records := make([]Todolist, len(todolists))
	copy(records, todolists)
	return SetTodolistsAction{Todolists: records}
}
