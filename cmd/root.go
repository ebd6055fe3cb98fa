package cmd

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/swatchbook/internal/config"
)

// options carries the resolved configuration to subcommands
type options struct {
	configPath string
	logLevel   string
	imagesDir  string
	cfg        config.Config
}

func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "swatchbook",
		Short: "Browse swatch and room image sets",
		Long: `Swatchbook pairs swatch photographs with the room photographs that show them
in context, and lets you browse each set through a circular coverflow.

Sets live under <images-dir>/Styles/<set>/{Swatches,Rooms}.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()

			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = opts.logLevel
			}
			if cmd.Flags().Changed("images-dir") {
				cfg.ImagesDir = opts.imagesDir
			}

			level, err := config.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

			opts.cfg = cfg
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to a YAML config file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.imagesDir, "images-dir", "Images", "Directory holding the Styles tree")

	// Add subcommands
	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newBrowseCmd(opts))
	cmd.AddCommand(newSetsCmd(opts))
	cmd.AddCommand(newManifestCmd(opts))

	return cmd
}
