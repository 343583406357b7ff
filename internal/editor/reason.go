package editor

import "github.com/avckr/jsonpane/internal/doc"

// ChangeReason classifies the origin of a document mutation. Undo and redo
// bypass echo suppression because their resulting content cannot be
// predicted from the last state the pane saw.
type ChangeReason int

const (
	// ReasonPlain is an ordinary edit, including edits echoed back from a
	// pane-submitted commit.
	ReasonPlain ChangeReason = iota
	// ReasonUndo is a host-driven undo.
	ReasonUndo
	// ReasonRedo is a host-driven redo.
	ReasonRedo
)

// String returns the reason name for logging.
func (r ChangeReason) String() string {
	switch r {
	case ReasonUndo:
		return "undo"
	case ReasonRedo:
		return "redo"
	default:
		return "plain"
	}
}

// Classify maps a change event's host-level reason code to a ChangeReason.
// Unknown codes classify as plain.
func Classify(ev doc.ChangeEvent) ChangeReason {
	switch ev.ReasonCode {
	case doc.ReasonCodeUndo:
		return ReasonUndo
	case doc.ReasonCodeRedo:
		return ReasonRedo
	default:
		return ReasonPlain
	}
}
