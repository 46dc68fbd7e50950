package journal

import "fmt"

// PersistenceError indicates that backing storage could not be written on the
// append path. Appends fail hard: the error is surfaced to the caller and the
// prior persisted state is left in place.
type PersistenceError struct {
	Document string
	Err      error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persisting %s document: %v", e.Document, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// DataIntegrityError indicates a malformed entry encountered during pattern
// recomputation. The whole recomputation fails rather than silently skipping
// entries, so the previously persisted snapshot stays authoritative.
type DataIntegrityError struct {
	EntryID string
	Reason  string
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("entry %s: %s", e.EntryID, e.Reason)
}
