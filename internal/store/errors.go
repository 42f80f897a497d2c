package store

import "errors"

var (
	// ErrNotFound is returned when a record with the requested ID does not exist.
	ErrNotFound = errors.New("there is no record with this ID")

	// ErrNoNamespace is returned for mutations attempted while no user is signed in.
	ErrNoNamespace = errors.New("no user namespace is active")

	// ErrRemote wraps failures of the remote store. The optimistic local
	// mutation has been rolled back when this is returned.
	ErrRemote = errors.New("persisting to the remote store failed")

	// ErrCategoryNotFound is returned for edits to unknown catalog entries.
	ErrCategoryNotFound = errors.New("there is no category with this ID")
)
