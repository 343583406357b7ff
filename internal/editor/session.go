// Package editor implements the synchronization core between a JSON
// document and its editor panes: echo suppression, update buffering while a
// pane is hidden, content validation, and single-pane-per-document
// enforcement.
package editor

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/avckr/jsonpane/internal/doc"
)

// ErrSessionClosed is returned by operations on a closed session.
var ErrSessionClosed = errors.New("session is closed")

// Session ties one document to one editor pane. All methods must be invoked
// from the host's serial event loop; the session holds no lock of its own.
type Session struct {
	log      zerolog.Logger
	doc      doc.Document
	pane     Pane
	norm     *Normalizer
	reg      *Registry
	notifier Notifier

	visible bool
	pending bool
	// originIsView is a one-shot flag set right before a pane-submitted edit
	// is applied to the document. It suppresses at most one plain-origin
	// echo back to the originating pane.
	originIsView bool
	// dismissNotice is non-nil while an invalid-content notice is active.
	dismissNotice func()

	release func()
	closed  bool
}

// handleDocumentChanged reacts to a document mutation. Undo and redo always
// resync the pane; a plain change is dropped once after a pane-submitted
// commit, buffered while the pane is hidden, and forwarded otherwise.
func (s *Session) handleDocumentChanged(ev doc.ChangeEvent) {
	if s.closed {
		return
	}

	reason := Classify(ev)
	switch reason {
	case ReasonUndo, ReasonRedo:
		s.forward(reason)
	case ReasonPlain:
		if s.originIsView {
			s.originIsView = false
			s.log.Debug().Msg("suppressed echo of pane-submitted edit")
			return
		}
		s.forward(reason)
	}
}

// forward pushes the live document text to the pane, or marks an update
// pending when the pane cannot currently render it.
func (s *Session) forward(reason ChangeReason) {
	if !s.visible {
		s.pending = true
		return
	}
	s.log.Debug().Stringer("reason", reason).Msg("forwarding document change to pane")
	s.post(HostUpdate{Text: s.doc.Text()})
}

// HandleVisibilityChanged records the pane's visibility. Regaining
// visibility flushes at most one buffered update carrying the document's
// current text, never a snapshot from buffering time.
func (s *Session) HandleVisibilityChanged(visible bool) {
	if s.closed {
		return
	}

	s.visible = visible
	s.reg.EnforceSingle(s.doc.URI())

	if visible && s.pending {
		s.pending = false
		s.log.Debug().Msg("flushing buffered update to pane")
		s.post(HostUpdate{Text: s.doc.Text()})
	}
}

// HandleViewMessage processes a message received from the pane.
func (s *Session) HandleViewMessage(ctx context.Context, msg Message) error {
	if s.closed {
		return ErrSessionClosed
	}

	switch m := msg.(type) {
	case ViewUpdate:
		s.originIsView = true
		normalized, err := s.norm.Normalize(m.Content)
		if err != nil {
			// Fail closed: the document stays untouched and originIsView
			// stays set; no mutation follows, so there is no echo to
			// suppress.
			s.log.Warn().Err(err).Msg("rejected pane content")
			return err
		}
		if err := s.doc.Replace(ctx, normalized); err != nil {
			return fmt.Errorf("failed to apply pane content: %w", err)
		}
		s.clearNotice()
		return nil

	case InvalidJSON:
		// Idempotent while a notice is already active.
		if s.dismissNotice == nil {
			s.dismissNotice = s.notifier.NotifyInvalidJSON(s.doc.URI())
		}
		return nil

	case HostUpdate:
		return fmt.Errorf("protocol violation: %s received from pane", m.WireType())

	default:
		return fmt.Errorf("unhandled message type %T", msg)
	}
}

// Close releases the document subscription, closes the session's pane, and
// closes any other pane still visible for the same document identity.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true

	// The subscription is released on every exit path.
	defer func() {
		if s.release != nil {
			s.release()
		}
	}()

	uri := s.doc.URI()
	s.reg.Forget(uri, s.pane)
	if err := s.pane.Close(); err != nil {
		s.log.Warn().Err(err).Msg("failed to close pane")
	}
	if closed := s.reg.CloseAll(uri); closed > 0 {
		s.log.Debug().Int("closed", closed).Msg("closed sibling panes on session shutdown")
	}
}

// InvalidNoticeActive reports whether an invalid-content notice is showing.
func (s *Session) InvalidNoticeActive() bool {
	return s.dismissNotice != nil
}

func (s *Session) clearNotice() {
	if s.dismissNotice != nil {
		s.dismissNotice()
		s.dismissNotice = nil
	}
}

func (s *Session) post(msg Message) {
	if err := s.pane.Post(msg); err != nil {
		s.log.Warn().Err(err).Msg("failed to post message to pane")
	}
}
