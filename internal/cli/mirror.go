package cli

import (
	"context"
	"os"

	"github.com/avckr/jsonpane/internal/doc"
	"github.com/avckr/jsonpane/internal/editor"
	"github.com/avckr/jsonpane/internal/logging"
	"github.com/avckr/jsonpane/internal/view"
)

// newMirrorFactory builds the plain text companion pane for the terminal
// host: a channel pane whose updates are written through to the file at path,
// so the on-disk plain form tracks the document while the rich pane is open.
func newMirrorFactory(ctx context.Context, path string) editor.PaneFactory {
	log := logging.FromContext(logging.WithComponent(ctx, "mirror"))

	return func(d doc.Document) (editor.Pane, error) {
		pane := view.NewChannelPane(16)

		release := d.Subscribe(func(doc.ChangeEvent) {
			if err := pane.Post(editor.HostUpdate{Text: d.Text()}); err != nil {
				log.Debug().Err(err).Msg("dropped mirror update")
			}
		})
		pane.OnClose(release)

		go func() {
			for msg := range pane.Messages() {
				update, ok := msg.(editor.HostUpdate)
				if !ok {
					continue
				}
				if err := os.WriteFile(path, []byte(update.Text+"\n"), 0644); err != nil {
					log.Warn().Err(err).Str("path", path).Msg("failed to mirror document to disk")
				}
			}
		}()

		return pane, nil
	}
}
