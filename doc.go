// The todolists package holds the client-side state of a todo-lists application and keeps it in sync with the
// todo-lists REST backend.
//
// The state is an ordered collection of todo-lists, each with a display filter (all, active, completed) that only
// exists locally. It changes exclusively through actions (RemoveTodolist, AddTodolist, ChangeTodolistTitle,
// ChangeTodolistFilter, SetTodolists) applied by Reduce, typically via Store.Dispatch.
//
// Talking to the backend is the job of the coordinators LoadTodolists, CreateTodolist, DeleteTodolist and
// UpdateTodolistTitle. Each makes one call using a Backend (Client is the HTTP implementation) and, on success,
// dispatches one action. Run them with Store.Run. Deleting and renaming only touch the state if the backend
// answers with result code zero; creating assumes success as soon as a response is parsed.
//
// Methods that query the data, e.g., TodolistByID or SearchTodolists, only look at a collection already in
// memory.
package todolists // import "github.com/nicolagi/todolists"
