package catalog

import "errors"

// Sentinel errors for workspace loading and reference resolution.
var (
	// ErrNoWorkspace indicates the workspace directory does not exist.
	ErrNoWorkspace = errors.New("workspace directory not found")
	// ErrDuplicateName indicates two declarations share the same name.
	ErrDuplicateName = errors.New("duplicate declaration name")
	// ErrUnknownObject indicates a reference to an undeclared object name.
	ErrUnknownObject = errors.New("reference to unknown object")
	// ErrUnknownArrow indicates a reference to an undeclared arrow name.
	ErrUnknownArrow = errors.New("reference to unknown arrow")
	// ErrMissingField indicates a required field (e.g. name, dom) is empty.
	ErrMissingField = errors.New("required field missing")
	// ErrNotFound indicates a lookup by name matched no declaration.
	ErrNotFound = errors.New("no declaration with that name")
)
