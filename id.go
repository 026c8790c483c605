package todolists

import (
	"fmt"

	uuid "github.com/nu7hatch/gouuid"
)

// NewTemporaryID returns a random (version 4) UUID to be used as the id of a todo-list that was not created by
// the backend, e.g., to build an AddTodolist action in tests or for a list that should only exist locally. Ids of
// lists created with CreateTodolist are always the ones assigned by the backend. An error means the system's
// random source failed; no id is returned then.
func NewTemporaryID() (string, error) {
	u, err := uuid.NewV4()
	if err != nil {
		return "", fmt.Errorf("temporary id: %w", err)
	}
	return u.String(), nil
}
