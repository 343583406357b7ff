// Package view provides pane transports and the bootstrap shell for editor
// surfaces. Panes deliver protocol messages; rendering belongs to the host.
package view

import (
	"errors"
	"sync"

	"github.com/avckr/jsonpane/internal/editor"
)

// ErrPaneClosed is returned when posting to a closed pane.
var ErrPaneClosed = errors.New("pane is closed")

// ChannelPane is an in-process pane delivering messages over a buffered
// channel. It backs the disk mirror companion the CLI opens alongside the
// rich pane, and in-process panes in tests.
type ChannelPane struct {
	mu      sync.Mutex
	msgs    chan editor.Message
	visible bool
	closed  bool
	onClose func()
}

// NewChannelPane creates a visible pane with the given delivery buffer.
func NewChannelPane(buffer int) *ChannelPane {
	if buffer <= 0 {
		buffer = 16
	}
	return &ChannelPane{
		msgs:    make(chan editor.Message, buffer),
		visible: true,
	}
}

// Post implements editor.Pane. A full buffer drops the message rather than
// blocking the host loop.
func (p *ChannelPane) Post(msg editor.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrPaneClosed
	}
	select {
	case p.msgs <- msg:
		return nil
	default:
		return errors.New("pane delivery buffer is full")
	}
}

// Visible implements editor.Pane.
func (p *ChannelPane) Visible() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.visible && !p.closed
}

// SetVisible marks the pane renderable or hidden.
func (p *ChannelPane) SetVisible(visible bool) {
	p.mu.Lock()
	p.visible = visible
	p.mu.Unlock()
}

// OnClose registers a callback invoked once when the pane closes.
func (p *ChannelPane) OnClose(fn func()) {
	p.mu.Lock()
	p.onClose = fn
	p.mu.Unlock()
}

// Close implements editor.Pane. Idempotent.
func (p *ChannelPane) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	fn := p.onClose
	close(p.msgs)
	p.mu.Unlock()

	if fn != nil {
		fn()
	}
	return nil
}

// Messages returns the delivery channel. It is closed when the pane closes.
func (p *ChannelPane) Messages() <-chan editor.Message {
	return p.msgs
}
