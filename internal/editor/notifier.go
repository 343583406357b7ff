package editor

import "github.com/rs/zerolog"

// Notifier surfaces non-blocking user-visible notices raised by a session.
type Notifier interface {
	// NotifyInvalidJSON shows a notice that a pane's content is not valid
	// JSON and returns a function that dismisses it. The session dismisses
	// the notice on the next successful validation.
	NotifyInvalidJSON(uri string) (dismiss func())
}

// LogNotifier is the default Notifier; it surfaces notices through the log.
type LogNotifier struct {
	Log zerolog.Logger
}

// NotifyInvalidJSON implements Notifier.
func (n LogNotifier) NotifyInvalidJSON(uri string) func() {
	n.Log.Warn().Str("document", uri).Msg("pane content is not valid JSON; edits are not applied")
	return func() {
		n.Log.Debug().Str("document", uri).Msg("pane content is valid again")
	}
}
