package todolists

// InitialState is the collection before anything was loaded or added.
func InitialState() []TodolistDomain {
	return []TodolistDomain{}
}

// Reduce computes the collection resulting from applying the action to state. It never writes to the backing
// array of state: every recognized action yields a fresh slice, even when no entry changed, so consumers can
// detect updates by comparing slices by identity. Unknown actions return state as is. Targeting an id that is
// not in the collection is not an error, the result just has the same content.
func Reduce(state []TodolistDomain, action Action) []TodolistDomain {
	switch a := action.(type) {
	case RemoveTodolistAction:
		next := make([]TodolistDomain, 0, len(state))
		for _, tl := range state {
			if tl.ID != a.ID {
				next = append(next, tl)
			}
		}
		return next
	case AddTodolistAction:
		next := make([]TodolistDomain, 0, len(state)+1)
		next = append(next, TodolistDomain{
			Todolist: Todolist{
				ID:        a.TodolistID,
				Title:     a.Title,
				AddedDate: "",
				Order:     0,
			},
			Filter: FilterAll,
		})
		return append(next, state...)
	case ChangeTodolistTitleAction:
		return replace(state, a.ID, func(tl TodolistDomain) TodolistDomain {
			tl.Title = a.Title
			return tl
		})
	case ChangeTodolistFilterAction:
		return replace(state, a.ID, func(tl TodolistDomain) TodolistDomain {
			tl.Filter = a.Filter
			return tl
		})
	case SetTodolistsAction:
		next := make([]TodolistDomain, len(a.Todolists))
		for i, tl := range a.Todolists {
			next[i] = TodolistDomain{Todolist: tl, Filter: FilterAll}
		}
		return next
	default:
		return state
	}
}

// replace copies state, substituting the entry with the given id by what update returns for it.
func replace(state []TodolistDomain, id string, update func(TodolistDomain) TodolistDomain) []TodolistDomain {
	next := make([]TodolistDomain, len(state))
	for i, tl := range state {
		if tl.ID == id {
			tl = update(tl)
		}
		next[i] = tl
	}
	return next
}
