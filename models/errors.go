package models

import "fmt"

// AuthError a credential or session construction failure, nothing was
// executed against the warehouse.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string { return fmt.Sprintf("warehouse auth: %v", e.Err) }
func (e *AuthError) Unwrap() error { return e.Err }

// ExecError a query submission or execution failure, carries the
// underlying warehouse error.  No retry is attempted.
type ExecError struct {
	Err error
}

func (e *ExecError) Error() string { return fmt.Sprintf("query execution: %v", e.Err) }
func (e *ExecError) Unwrap() error { return e.Err }

// ExportError a store or filesystem failure while writing an output
// file.  A partial file may remain.
type ExportError struct {
	Err error
}

func (e *ExportError) Error() string { return fmt.Sprintf("export: %v", e.Err) }
func (e *ExportError) Unwrap() error { return e.Err }
