package doc

import (
	"context"
	"sync"
)

// Memory is an in-memory Document with undo/redo support. It backs the
// standalone binary and tests; an embedding host may substitute its own
// Document implementation.
type Memory struct {
	mu      sync.Mutex
	uri     string
	text    string
	version uint64
	undo    []string
	redo    []string
	subs    map[int]func(ChangeEvent)
	nextSub int
	closed  bool
}

// NewMemory creates an in-memory document with the given identity and text.
func NewMemory(uri, text string) *Memory {
	return &Memory{
		uri:  uri,
		text: text,
		subs: make(map[int]func(ChangeEvent)),
	}
}

// URI returns the document identity.
func (m *Memory) URI() string { return m.uri }

// Version returns the mutation counter.
func (m *Memory) Version() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.version
}

// Text returns the current full text.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// Replace performs a full-range replace and notifies subscribers with an
// unspecified (plain) reason code. A new edit clears the redo stack.
func (m *Memory) Replace(_ context.Context, text string) error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrDocumentClosed
	}
	m.undo = append(m.undo, m.text)
	m.redo = nil
	ev := m.applyLocked(text, ReasonCodeUnspecified)
	subs := m.snapshotSubsLocked()
	m.mu.Unlock()

	notify(subs, ev)
	return nil
}

// Undo restores the previous text, if any, and notifies subscribers with the
// undo reason code. It reports whether anything was undone.
func (m *Memory) Undo() bool {
	m.mu.Lock()
	if m.closed || len(m.undo) == 0 {
		m.mu.Unlock()
		return false
	}
	prev := m.undo[len(m.undo)-1]
	m.undo = m.undo[:len(m.undo)-1]
	m.redo = append(m.redo, m.text)
	ev := m.applyLocked(prev, ReasonCodeUndo)
	subs := m.snapshotSubsLocked()
	m.mu.Unlock()

	notify(subs, ev)
	return true
}

// Redo re-applies the last undone text, if any, and notifies subscribers with
// the redo reason code. It reports whether anything was redone.
func (m *Memory) Redo() bool {
	m.mu.Lock()
	if m.closed || len(m.redo) == 0 {
		m.mu.Unlock()
		return false
	}
	next := m.redo[len(m.redo)-1]
	m.redo = m.redo[:len(m.redo)-1]
	m.undo = append(m.undo, m.text)
	ev := m.applyLocked(next, ReasonCodeRedo)
	subs := m.snapshotSubsLocked()
	m.mu.Unlock()

	notify(subs, ev)
	return true
}

// Subscribe registers a change observer. The returned release function is
// idempotent and safe to call after Close.
func (m *Memory) Subscribe(fn func(ChangeEvent)) func() {
	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.subs, id)
			m.mu.Unlock()
		})
	}
}

// Close marks the document closed and drops all subscribers.
func (m *Memory) Close() {
	m.mu.Lock()
	m.closed = true
	m.subs = make(map[int]func(ChangeEvent))
	m.mu.Unlock()
}

func (m *Memory) applyLocked(text string, reason int) ChangeEvent {
	m.text = text
	m.version++
	return ChangeEvent{URI: m.uri, Version: m.version, ReasonCode: reason}
}

func (m *Memory) snapshotSubsLocked() []func(ChangeEvent) {
	subs := make([]func(ChangeEvent), 0, len(m.subs))
	for _, fn := range m.subs {
		subs = append(subs, fn)
	}
	return subs
}

func notify(subs []func(ChangeEvent), ev ChangeEvent) {
	for _, fn := range subs {
		fn(ev)
	}
}
