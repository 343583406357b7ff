// Package cli provides the command-line interface for jsonpane.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avckr/jsonpane/internal/config"
	"github.com/avckr/jsonpane/internal/doc"
)

// CLI holds the document store and configuration for the CLI commands
type CLI struct {
	Store  *doc.Store
	Config *config.Config
}

// NewCLI creates a new CLI instance with an open document store
func NewCLI() (*CLI, error) {
	cfg := config.Get()

	store, err := doc.OpenStore(cfg.Database.Path, cfg.Database.QueryTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to open document store: %w", err)
	}

	return &CLI{
		Store:  store,
		Config: cfg,
	}, nil
}

// Close closes the document store
func (c *CLI) Close() error {
	if c.Store != nil {
		return c.Store.Close()
	}
	return nil
}

// NewRootCmd creates the root command for jsonpane
func NewRootCmd(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "jsonpane",
		Short: "A host for rich JSON editor panes",
		Long:  `jsonpane keeps a JSON document and its editor panes convergent: it validates and normalizes submitted content, suppresses echoes, buffers updates for hidden panes, and keeps a single visible pane per document.`,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return config.Init()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	// Version command
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("jsonpane %s\n", version)
			fmt.Printf("commit: %s\n", commit)
			fmt.Printf("built: %s\n", buildDate)
		},
	}

	// Init command
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize jsonpane database and configuration",
		RunE: func(_ *cobra.Command, _ []string) error {
			cli, err := NewCLI()
			if err != nil {
				return fmt.Errorf("failed to initialize CLI: %w", err)
			}
			defer func() {
				if closeErr := cli.Close(); closeErr != nil {
					fmt.Fprintf(os.Stderr, "Warning: failed to close document store: %v\n", closeErr)
				}
			}()

			fmt.Printf("jsonpane %s - Initialization complete!\n", version)
			fmt.Println("Document store initialized at:", cli.Config.Database.Path)

			xdgDirs, err := config.GetXDGDirs()
			if err == nil {
				fmt.Println("Configuration directories:")
				fmt.Printf("- Config: %s\n", xdgDirs.ConfigHome)
				fmt.Printf("- Data: %s\n", xdgDirs.DataHome)
				fmt.Printf("- State: %s\n", xdgDirs.StateHome)
			}
			return nil
		},
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(NewEditCmd())
	rootCmd.AddCommand(NewFmtCmd())
	rootCmd.AddCommand(NewConfigCmd())

	return rootCmd
}
