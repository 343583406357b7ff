package plainview

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avckr/jsonpane/internal/editor"
	"github.com/avckr/jsonpane/internal/view"
)

// Pane adapts a bubbletea program to the editor pane interface. HostUpdate
// messages replace the displayed text; other protocol messages are ignored
// since the plain view never edits.
type Pane struct {
	prog *tea.Program

	mu     sync.Mutex
	closed bool
}

// NewPane creates a plain text pane with its own program.
func NewPane(title string) *Pane {
	return &Pane{prog: tea.NewProgram(NewModel(title), tea.WithAltScreen())}
}

// Run runs the pane's program until it quits. Blocking; run it on its own
// goroutine.
func (p *Pane) Run() error {
	_, err := p.prog.Run()
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	return err
}

// Post implements editor.Pane.
func (p *Pane) Post(msg editor.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return view.ErrPaneClosed
	}
	if update, ok := msg.(editor.HostUpdate); ok {
		p.prog.Send(setTextMsg(update.Text))
	}
	return nil
}

// Visible implements editor.Pane. The terminal pane renders for as long as
// its program runs.
func (p *Pane) Visible() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return !p.closed
}

// Close implements editor.Pane. Idempotent.
func (p *Pane) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		p.prog.Quit()
	}
	return nil
}
