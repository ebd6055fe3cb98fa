package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/swatchbook/internal/client"
	"github.com/lehigh-university-libraries/swatchbook/internal/tui"
)

func newBrowseCmd(opts *options) *cobra.Command {
	var serverURL string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse a running server's sets in the terminal",
		Long: `Opens a terminal coverflow over the sets served by a swatchbook server.

Use the arrow keys to move through a set, tab and shift+tab to switch sets,
r to reload the current set and q to quit.`,
		Example: `  # Browse the local server
  swatchbook browse

  # Browse a remote server
  swatchbook browse --server https://swatches.example.edu`,
		RunE: func(cmd *cobra.Command, args []string) error {
			url := opts.cfg.ServerURL
			if cmd.Flags().Changed("server") {
				url = serverURL
			}

			model := tui.New(cmd.Context(), client.New(url))
			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("failed to run browser: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&serverURL, "server", "http://localhost:8080", "Base URL of the swatchbook server")

	return cmd
}
