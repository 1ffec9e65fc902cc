package document

import (
	"errors"

	"cxxdecl/pkg/ast"
)

var (
	// ErrNotFound is returned when no file defines the requested name
	ErrNotFound = errors.New("declaration not found")
	// ErrWrongKind is returned when a name resolves to the other kind of
	// declaration, such as an enum looked up as a struct
	ErrWrongKind = errors.New("declaration has the wrong kind")
)

// LookupError describes a failed lookup. Kind is the kind that was asked
// for and is only meaningful with ErrWrongKind.
type LookupError struct {
	Name string
	Kind ast.DeclarationKind
	Err  error
}

func (e *LookupError) Error() string {
	if errors.Is(e.Err, ErrWrongKind) {
		return e.Name + " is not declared as " + e.Kind.String()
	}
	return e.Name + ": " + e.Err.Error()
}

func (e *LookupError) Unwrap() error {
	return e.Err
}
