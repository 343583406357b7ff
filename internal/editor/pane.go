package editor

//go:generate mockgen -source=pane.go -destination=pane_mock_test.go -package=editor

// Pane is an isolated editor surface a session pushes messages to. The host
// owns rendering and transport; the session only needs to post messages,
// query visibility, and close the surface.
type Pane interface {
	// Post delivers a message to the pane. Fire-and-forget from the
	// session's perspective; delivery failures are the transport's concern.
	Post(msg Message) error
	// Visible reports whether the pane can currently render updates.
	Visible() bool
	// Close tears the pane down. Idempotent.
	Close() error
}
