// Package doc models the text document side of an editor session: the
// document proxy interface, its change events, and the persistence layer
// behind the standalone host.
package doc

import (
	"context"
	"errors"
)

// Host-level change reason codes as delivered on change events. Zero means
// an ordinary edit; undo and redo carry distinct codes because their
// resulting content cannot be predicted from the last state a pane saw.
const (
	ReasonCodeUnspecified = 0
	ReasonCodeUndo        = 1
	ReasonCodeRedo        = 2
)

// ChangeEvent notifies subscribers that a document mutated. It carries no
// text; consumers re-read the document so a late observer always sees the
// live content.
type ChangeEvent struct {
	URI        string
	Version    uint64
	ReasonCode int
}

var (
	// ErrDocumentClosed is returned by operations on a closed document.
	ErrDocumentClosed = errors.New("document is closed")
	// ErrNotFound is returned by the store when a URI has no saved document.
	ErrNotFound = errors.New("document not found")
)

// Document is the host-owned text document an editor session mediates.
// Implementations must deliver change events serially, in mutation order.
type Document interface {
	// URI returns the document identity, immutable for the document lifetime.
	URI() string
	// Version returns a counter incremented on every mutation.
	Version() uint64
	// Text returns the current full text.
	Text() string
	// Replace performs a full-range replace of the document text.
	Replace(ctx context.Context, text string) error
	// Subscribe registers a change observer and returns its release function.
	// The release function is idempotent.
	Subscribe(fn func(ChangeEvent)) (release func())
}
