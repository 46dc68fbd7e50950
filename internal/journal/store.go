package journal

import "errors"

// Names of the three per-user documents. Each is an independent JSON
// document: entries and timeline are arrays, patterns is a single object.
const (
	DocEntries  = "entries"
	DocPatterns = "patterns"
	DocTimeline = "timeline"
)

// ErrDocumentNotFound is returned by DocumentStore.ReadDocument when no
// document has been written yet for the given user and name. Read paths
// treat it as an empty default.
var ErrDocumentNotFound = errors.New("document not found")

// DocumentStore provides an interface for per-user document storage backends.
// Writes must be atomic at the granularity of one document: a crash mid-write
// may lose that write but must never leave a torn document visible to readers.
type DocumentStore interface {
	// ReadDocument returns the current contents of a named document.
	// Returns ErrDocumentNotFound if the document has never been written.
	ReadDocument(user, name string) ([]byte, error)

	// WriteDocument atomically replaces a named document's contents.
	WriteDocument(user, name string, data []byte) error

	// ValidateSetup verifies that the store is accessible and properly configured.
	ValidateSetup() error
}
