package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/lehigh-university-libraries/swatchbook/internal/correlate"
	"github.com/lehigh-university-libraries/swatchbook/internal/models"
	"github.com/lehigh-university-libraries/swatchbook/internal/storage"
)

// ErrSetNotFound is returned when a set's swatches cannot be read
var ErrSetNotFound = errors.New("set not found or no swatches")

// Catalog answers set and image queries from a fresh read of the library on
// every call.
type Catalog struct {
	library *storage.Library
}

func New(library *storage.Library) *Catalog {
	return &Catalog{library: library}
}

// ListSets returns the available set names. Enumeration failures yield an
// empty list.
func (c *Catalog) ListSets(ctx context.Context) []string {
	if err := ctx.Err(); err != nil {
		return []string{}
	}

	sets, err := c.library.Sets()
	if err != nil {
		slog.Warn("Unable to list sets", "err", err)
		return []string{}
	}
	return sets
}

// Images correlates a set's swatches with its rooms. Unreadable rooms are
// treated as an empty listing.
func (c *Catalog) Images(ctx context.Context, set string) ([]models.Image, error) {
	if !ValidSetName(set) {
		return nil, fmt.Errorf("%w: %q", ErrSetNotFound, set)
	}

	var swatches, rooms []string
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		var err error
		swatches, err = c.library.Swatches(set)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrSetNotFound, err)
		}
		return nil
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		var err error
		rooms, err = c.library.Rooms(set)
		if err != nil {
			slog.Debug("No rooms for set", "set", set, "err", err)
			rooms = nil
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	images := correlate.Correlate(swatches, rooms, correlate.SetLocator{Set: set})
	stats := correlate.Stats(images)
	slog.Debug("Correlated set", "set", set, "images", stats.Total, "matched", stats.Matched, "fallback", stats.Fallback)
	return images, nil
}

// ValidSetName reports whether name can only refer to a directory directly
// under Styles.
func ValidSetName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}
