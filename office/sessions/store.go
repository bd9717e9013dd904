// Package sessions holds in-progress artifact compositions.
//
// A session lives between its create call and its save call; save pops it
// from the store, so a session id is never valid twice. Stores are plain
// maps with no locking: one session lifecycle is driven by a single
// in-flight task (see the concurrency notes in DESIGN.md).
package sessions

import (
	"errors"
	"fmt"

	"github.com/gourav1211/officeagent/office/files"
)

// UnknownSessionError reports an operation against a session id that is not
// (or no longer) in its store.
type UnknownSessionError struct {
	Field string // doc_id, presentation_id or workbook_id
	ID    string
}

func (e *UnknownSessionError) Error() string {
	return fmt.Sprintf("unknown %s: %s", e.Field, e.ID)
}

// InvalidIndexError reports a 1-based slide index outside the slide range.
type InvalidIndexError struct {
	Index int
}

func (e *InvalidIndexError) Error() string {
	return fmt.Sprintf("slide_index out of range: %d", e.Index)
}

// ErrInvalidCoordinate reports a workbook address below row/col 1.
var ErrInvalidCoordinate = errors.New("row and col must be >= 1")

// IsUnknownSession reports whether err is an UnknownSessionError.
func IsUnknownSession(err error) bool {
	var e *UnknownSessionError
	return errors.As(err, &e)
}

// nextID derives a session id from the slugified title, resolving collisions
// with the smallest free _N suffix.
func nextID(title string, taken func(string) bool) string {
	id := files.Slugify(title)
	if !taken(id) {
		return id
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s_%d", id, i)
		if !taken(candidate) {
			return candidate
		}
	}
}
