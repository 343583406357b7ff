package editor

import (
	"sync"

	"github.com/rs/zerolog"
)

// entry is a registered pane plus its role. Companions are secondary surfaces
// shown alongside a primary pane; they are never candidates for collapse.
type entry struct {
	pane      Pane
	companion bool
}

// Registry tracks the panes opened per document URI and collapses duplicate
// visible primary panes down to one. Panes are kept in registration order;
// when more than one primary is visible the most recently opened survives.
type Registry struct {
	mu    sync.Mutex
	log   zerolog.Logger
	panes map[string][]entry
}

// NewRegistry creates an empty pane registry.
func NewRegistry(log zerolog.Logger) *Registry {
	return &Registry{
		log:   log.With().Str("component", "dedup").Logger(),
		panes: make(map[string][]entry),
	}
}

// Track registers a primary pane for a document URI.
func (r *Registry) Track(uri string, p Pane) {
	r.track(uri, p, false)
}

// TrackCompanion registers a secondary pane shown alongside a primary one,
// such as the plain text pane. Companions are exempt from EnforceSingle: the
// single-pane invariant collapses duplicate primaries, not the pair a session
// opens deliberately.
func (r *Registry) TrackCompanion(uri string, p Pane) {
	r.track(uri, p, true)
}

func (r *Registry) track(uri string, p Pane, companion bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.panes[uri] = append(r.panes[uri], entry{pane: p, companion: companion})
}

// Forget removes a pane from a document URI without closing it.
func (r *Registry) Forget(uri string, p Pane) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.forgetLocked(uri, p)
}

// VisibleCount returns the number of currently visible panes for a URI,
// companions included.
func (r *Registry) VisibleCount(uri string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, e := range r.panes[uri] {
		if e.pane.Visible() {
			count++
		}
	}
	return count
}

// EnforceSingle closes all but one visible primary pane for a URI, keeping
// the most recently opened. Companion panes are left alone. It returns the
// number of panes closed.
func (r *Registry) EnforceSingle(uri string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	visible := make([]Pane, 0, len(r.panes[uri]))
	for _, e := range r.panes[uri] {
		if !e.companion && e.pane.Visible() {
			visible = append(visible, e.pane)
		}
	}
	if len(visible) <= 1 {
		return 0
	}

	// Registration order is the open order; keep the newest.
	keep := visible[len(visible)-1]
	closed := 0
	for _, p := range visible {
		if p == keep {
			continue
		}
		r.closePaneLocked(uri, p)
		closed++
	}
	if closed > 0 {
		r.log.Debug().Str("document", uri).Int("closed", closed).Msg("collapsed duplicate panes")
	}
	return closed
}

// CloseAll closes every remaining visible pane for a URI, companions
// included. Used when a session shuts down and takes sibling panes of the
// document with it.
func (r *Registry) CloseAll(uri string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	closed := 0
	for _, e := range append([]entry(nil), r.panes[uri]...) {
		if e.pane.Visible() {
			r.closePaneLocked(uri, e.pane)
			closed++
		}
	}
	return closed
}

func (r *Registry) closePaneLocked(uri string, p Pane) {
	if err := p.Close(); err != nil {
		r.log.Warn().Err(err).Str("document", uri).Msg("failed to close duplicate pane")
	}
	r.forgetLocked(uri, p)
}

func (r *Registry) forgetLocked(uri string, p Pane) {
	panes := r.panes[uri]
	for i, e := range panes {
		if e.pane == p {
			r.panes[uri] = append(panes[:i], panes[i+1:]...)
			break
		}
	}
	if len(r.panes[uri]) == 0 {
		delete(r.panes, uri)
	}
}
