package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avckr/jsonpane/internal/config"
	"github.com/avckr/jsonpane/internal/editor"
)

// NewFmtCmd creates the fmt command
func NewFmtCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "fmt <file>",
		Short: "Normalize a JSON document",
		Long: `Normalize a JSON document to its canonical indented form. Prints the
result to stdout, or rewrites the file in place with --write. Blank files
normalize to the empty object.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runFmt(args[0], write)
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Rewrite the file instead of printing to stdout")

	return cmd
}

func runFmt(path string, write bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg := config.Get()
	norm := editor.NewNormalizer(cfg.Editor.IndentWidth)

	normalized, err := norm.Normalize(string(data))
	if err != nil {
		if errors.Is(err, editor.ErrContentInvalid) {
			return fmt.Errorf("%s: %w", path, err)
		}
		return err
	}

	if write {
		return os.WriteFile(path, []byte(normalized+"\n"), 0644)
	}

	fmt.Println(normalized)
	return nil
}
