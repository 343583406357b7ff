package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/avckr/jsonpane/internal/config"
	"github.com/avckr/jsonpane/internal/doc"
	"github.com/avckr/jsonpane/internal/editor"
	"github.com/avckr/jsonpane/internal/host"
	"github.com/avckr/jsonpane/internal/logging"
	"github.com/avckr/jsonpane/internal/plainview"
)

// NewEditCmd creates the edit command
func NewEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <file>",
		Short: "Open a JSON document in an editor pane",
		Long: `Open a JSON document in an editor pane. The document is loaded from the
file if it exists, otherwise from the document store, otherwise it starts as
an empty object. Committed content is normalized, persisted to the document
store, and written back to the file on exit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cli, err := NewCLI()
			if err != nil {
				return fmt.Errorf("failed to initialize CLI: %w", err)
			}
			defer func() {
				if closeErr := cli.Close(); closeErr != nil {
					fmt.Fprintf(os.Stderr, "Warning: failed to close document store: %v\n", closeErr)
				}
			}()

			return runEdit(cli, args[0])
		},
	}

	return cmd
}

func runEdit(cli *CLI, path string) error {
	cfg := cli.Config

	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: time.RFC3339,
	})

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	uri := "file://" + abs

	ctx, cancel := context.WithCancel(logging.WithContext(context.Background(), logger))
	defer cancel()
	ctx = logging.WithDocument(ctx, uri)

	text, err := loadInitialText(ctx, cli.Store, abs, uri)
	if err != nil {
		return err
	}

	document := doc.NewMemory(uri, text)
	defer document.Close()

	// Persist every committed mutation. Store failures are logged, never
	// surfaced into the session.
	releaseAutosave := document.Subscribe(func(_ doc.ChangeEvent) {
		if saveErr := cli.Store.Save(ctx, uri, document.Text()); saveErr != nil {
			logger.Warn().Err(saveErr).Str("document", uri).Msg("failed to autosave document")
		}
	})
	defer releaseAutosave()

	manager := editor.NewManager(editor.ManagerOptions{
		Logger:                 logger,
		IndentWidth:            cfg.Editor.IndentWidth,
		OpenPlainTextAlongside: cfg.Editor.OpenPlainTextAlongside,
		PlainPaneFactory:       newMirrorFactory(ctx, abs),
	})

	config.OnConfigChange(func(c *config.Config) {
		manager.SetOpenPlainTextAlongside(c.Editor.OpenPlainTextAlongside)
	})
	if err := config.Watch(); err != nil {
		logger.Warn().Err(err).Msg("failed to watch configuration")
	}

	pane := plainview.NewPane(filepath.Base(abs))
	loop := host.NewLoop(64)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return loop.Run(ctx)
	})
	g.Go(func() error {
		defer cancel()
		return pane.Run()
	})

	var session *editor.Session
	if postErr := loop.Post(func() {
		var openErr error
		session, openErr = manager.Open(ctx, document, pane)
		if openErr != nil {
			logger.Error().Err(openErr).Msg("failed to open session")
			cancel()
		}
	}); postErr != nil {
		return postErr
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if session != nil {
		session.Close()
	}

	return writeBack(manager, document, abs)
}

// loadInitialText resolves the document's starting content: the file on
// disk, then the store, then the empty object.
func loadInitialText(ctx context.Context, store *doc.Store, path, uri string) (string, error) {
	if data, err := os.ReadFile(path); err == nil {
		return string(data), nil
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	text, _, err := store.Load(ctx, uri)
	if err == nil {
		return text, nil
	}
	if errors.Is(err, doc.ErrNotFound) {
		return "{}", nil
	}
	return "", err
}

// writeBack saves the final normalized content to the file. Content that no
// longer parses is left on disk untouched.
func writeBack(manager *editor.Manager, document *doc.Memory, path string) error {
	normalized, err := manager.Normalizer().Normalize(document.Text())
	if err != nil {
		return nil
	}
	if err := os.WriteFile(path, []byte(normalized+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
