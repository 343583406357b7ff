package editor

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/avckr/jsonpane/internal/doc"
)

// PaneFactory opens an additional pane for a document, such as the optional
// plain text pane shown alongside the rich editor.
type PaneFactory func(d doc.Document) (Pane, error)

// ManagerOptions configures a session manager.
type ManagerOptions struct {
	Logger zerolog.Logger
	// IndentWidth is the number of spaces used to normalize committed JSON.
	IndentWidth int
	// Notifier surfaces invalid-content notices; defaults to LogNotifier.
	Notifier Notifier
	// OpenPlainTextAlongside opens a plain text pane next to the rich pane
	// on session open, when no other pane of the document is visible.
	OpenPlainTextAlongside bool
	// PlainPaneFactory opens the plain text pane. Ignored when nil.
	PlainPaneFactory PaneFactory
}

// Manager opens editor sessions and owns the state shared between them: the
// pane registry, the normalizer, and the configuration snapshot.
type Manager struct {
	log      zerolog.Logger
	reg      *Registry
	norm     *Normalizer
	notifier Notifier

	mu           sync.Mutex
	plainAside   bool
	plainFactory PaneFactory
}

// NewManager creates a session manager.
func NewManager(opts ManagerOptions) *Manager {
	if opts.IndentWidth == 0 {
		opts.IndentWidth = 4
	}
	if opts.Notifier == nil {
		opts.Notifier = LogNotifier{Log: opts.Logger}
	}
	return &Manager{
		log:          opts.Logger,
		reg:          NewRegistry(opts.Logger),
		norm:         NewNormalizer(opts.IndentWidth),
		notifier:     opts.Notifier,
		plainAside:   opts.OpenPlainTextAlongside,
		plainFactory: opts.PlainPaneFactory,
	}
}

// SetOpenPlainTextAlongside updates the plain-pane option. Wired to config
// change notifications; affects sessions opened afterwards.
func (m *Manager) SetOpenPlainTextAlongside(v bool) {
	m.mu.Lock()
	m.plainAside = v
	m.mu.Unlock()
}

// Registry exposes the pane registry, for hosts that track pane visibility
// changes outside of sessions.
func (m *Manager) Registry() *Registry {
	return m.reg
}

// Normalizer exposes the manager's content normalizer.
func (m *Manager) Normalizer() *Normalizer {
	return m.norm
}

// Open starts a session for a document and its pane. It pushes the initial
// content to the pane and, if configured, opens a plain text pane alongside
// when no other pane of the document is visible.
func (m *Manager) Open(ctx context.Context, d doc.Document, pane Pane) (*Session, error) {
	log := m.log.With().Str("document", d.URI()).Logger()

	s := &Session{
		log:      log,
		doc:      d,
		pane:     pane,
		norm:     m.norm,
		reg:      m.reg,
		notifier: m.notifier,
		visible:  pane.Visible(),
	}

	m.reg.Track(d.URI(), pane)
	m.reg.EnforceSingle(d.URI())
	s.release = d.Subscribe(s.handleDocumentChanged)

	initial := m.initialText(d)
	s.post(HostUpdate{Text: initial})

	m.mu.Lock()
	plainAside := m.plainAside
	factory := m.plainFactory
	m.mu.Unlock()

	if plainAside && factory != nil && m.reg.VisibleCount(d.URI()) == 1 {
		if plain, err := factory(d); err != nil {
			log.Warn().Err(err).Msg("failed to open plain text pane")
		} else {
			m.reg.TrackCompanion(d.URI(), plain)
			if err := plain.Post(HostUpdate{Text: initial}); err != nil {
				log.Warn().Err(err).Msg("failed to post initial text to plain pane")
			}
		}
	}

	log.Debug().Msg("session opened")
	return s, nil
}

// initialText returns the text pushed to a freshly opened pane: the
// normalized document content, or the raw text when it does not parse (the
// pane will surface its own validation state).
func (m *Manager) initialText(d doc.Document) string {
	text := d.Text()
	normalized, err := m.norm.Normalize(text)
	if err != nil {
		return text
	}
	return normalized
}
