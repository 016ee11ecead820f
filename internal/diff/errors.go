package diff

import "errors"

var (
	// ErrPermissionDenied indicates an instruction's action is disallowed
	// by the apply permissions.
	ErrPermissionDenied = errors.New("action not allowed")

	// ErrKeyNotFound indicates a delete instruction targeted a key absent
	// from the working copy.
	ErrKeyNotFound = errors.New("key not found")

	// ErrUnrecognizedInstruction indicates an instruction carried an
	// action code outside the four known actions.
	ErrUnrecognizedInstruction = errors.New("unrecognized instruction")
)
