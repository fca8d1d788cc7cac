// Package collision detects identifier reuse while a document is walked.
package collision

import (
	"fmt"

	"github.com/arloliu/cadbin/errs"
)

// Tracker records every identifier seen in one scope together with the location where it
// first appeared, so a duplicate can be reported against both sites.
type Tracker struct {
	seen  map[string]string // id -> location of first occurrence
	order []string          // ids in first-seen order
	dups  int
}

// NewTracker creates a new tracker.
func NewTracker() *Tracker {
	return &Tracker{
		seen:  make(map[string]string),
		order: make([]string, 0),
	}
}

// Track records id found at location.
//
// Returns:
//   - error: ErrMissingRequiredField if id is empty, ErrDuplicateID if id was already tracked
func (t *Tracker) Track(id, location string) error {
	if id == "" {
		return fmt.Errorf("%w: empty id at %s", errs.ErrMissingRequiredField, location)
	}

	if first, exists := t.seen[id]; exists {
		t.dups++
		return fmt.Errorf("%w: %q at %s (first seen at %s)", errs.ErrDuplicateID, id, location, first)
	}

	t.seen[id] = location
	t.order = append(t.order, id)

	return nil
}

// Has reports whether id was tracked.
func (t *Tracker) Has(id string) bool {
	_, ok := t.seen[id]
	return ok
}

// HasCollision returns true if at least one duplicate was reported.
func (t *Tracker) HasCollision() bool {
	return t.dups > 0
}

// IDs returns the tracked ids in first-seen order.
func (t *Tracker) IDs() []string {
	return t.order
}

// Count returns the number of distinct ids tracked.
func (t *Tracker) Count() int {
	return len(t.order)
}

// Reset clears all tracked ids, preserving allocated capacity.
func (t *Tracker) Reset() {
	for k := range t.seen {
		delete(t.seen, k)
	}
	t.order = t.order[:0]
	t.dups = 0
}
