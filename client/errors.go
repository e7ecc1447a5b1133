// mediahub/client/errors.go
package client

import (
	"errors"
	"fmt"
)

// ErrAlreadyLiked is returned when a viewer likes the same content twice.
var ErrAlreadyLiked = errors.New("already liked")

// ErrConfirmationDeclined is returned when a cascading delete needs
// confirmation and the confirm hook declines or is not configured.
var ErrConfirmationDeclined = errors.New("delete not confirmed")

// ValidationError reports a locally rejected mutation. Nothing was changed,
// locally or remotely.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Reason
}

// PermissionError reports a mutation refused for an insufficient role level,
// either by the local guard or by the remote store.
type PermissionError struct {
	Message string
}

func (e *PermissionError) Error() string {
	return e.Message
}

// NotFoundError reports a missing entity, locally or remotely.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return e.Kind + " not found"
	}
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// RemoteError carries a non-2xx response from the remote store. Any
// optimistic local change has been rolled back by the time it surfaces.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote store error (%d): %s", e.Status, e.Message)
}
