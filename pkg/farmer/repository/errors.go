package repository

// PersistenceError wraps any failure inside a write transaction. The
// transaction was rolled back in full; no partial state was committed. The
// store never retries — the caller decides what to do with the failure.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return "farmer store: " + e.Op + ": " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error { return e.Err }
