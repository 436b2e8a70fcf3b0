package database

import "fmt"

// ConnectionError reports that the database could not be reached.
// It is fatal for the current invocation; nothing retries it.
type ConnectionError struct {
	Driver string
	Err    error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("error connecting to %s database: %v", e.Driver, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// PersistenceError reports a failed statement against a live connection.
// The message names only the operation; the driver error is kept for
// diagnostics and reachable through errors.Unwrap.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return "error trying to " + e.Op
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
