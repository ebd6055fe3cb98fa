package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/swatchbook/internal/catalog"
	"github.com/lehigh-university-libraries/swatchbook/internal/correlate"
	"github.com/lehigh-university-libraries/swatchbook/internal/storage"
)

func newCatalog(opts *options) *catalog.Catalog {
	return catalog.New(storage.NewLibrary(os.DirFS(opts.cfg.ImagesDir)))
}

func newSetsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sets",
		Short: "List the image sets and how many swatches found a room",
		Example: `  swatchbook sets --images-dir ./Images`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newCatalog(opts)
			sets := c.ListSets(cmd.Context())
			if len(sets) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No image sets found in %s/Styles\n", opts.cfg.ImagesDir)
				return nil
			}

			for _, set := range sets {
				images, err := c.Images(cmd.Context(), set)
				if err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%-30s  no swatches\n", set)
					continue
				}
				s := correlate.Stats(images)
				fmt.Fprintf(cmd.OutOrStdout(), "%-30s  %3d swatches  %3d matched  %3d fallback\n", set, s.Total, s.Matched, s.Fallback)
			}
			return nil
		},
	}

	return cmd
}
