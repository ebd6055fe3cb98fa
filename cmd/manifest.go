package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/swatchbook/internal/manifest"
)

func newManifestCmd(opts *options) *cobra.Command {
	var output string
	var format string

	cmd := &cobra.Command{
		Use:   "manifest <set>",
		Short: "Export the correlated images of a set",
		Long: `Writes the swatch to room pairing of a set, with display titles, as JSON,
YAML or Parquet. The format follows the output file extension unless
--format is given.`,
		Example: `  # Print a YAML manifest
  swatchbook manifest Modern --format yaml

  # Write a Parquet file for analysis
  swatchbook manifest Modern --output modern.parquet`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set := args[0]

			if format == "" {
				format = "json"
				if output != "" {
					var err error
					if format, err = manifest.FormatFromPath(output); err != nil {
						return err
					}
				}
			}
			if !slices.Contains(manifest.Formats, format) {
				return fmt.Errorf("unsupported format: %s (supported: %s)", format, strings.Join(manifest.Formats, ", "))
			}

			images, err := newCatalog(opts).Images(cmd.Context(), set)
			if err != nil {
				return err
			}
			m := manifest.Build(set, images, time.Now())

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", output, err)
				}
				defer f.Close()
				w = f
			}

			if err := manifest.Write(w, m, format); err != nil {
				return err
			}
			if output != "" {
				slog.Info("Manifest written", "set", set, "path", output, "format", format, "images", m.Summary.Total)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: json, yaml or parquet")

	return cmd
}
