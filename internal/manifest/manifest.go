package manifest

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/parquet-go/parquet-go"
	"gopkg.in/yaml.v3"

	"github.com/lehigh-university-libraries/swatchbook/internal/correlate"
	"github.com/lehigh-university-libraries/swatchbook/internal/models"
	"github.com/lehigh-university-libraries/swatchbook/internal/title"
)

// Entry is one correlated image with its display title
type Entry struct {
	Position int    `json:"position" yaml:"position" parquet:"position"`
	Name     string `json:"name" yaml:"name" parquet:"name"`
	Swatch   string `json:"swatch" yaml:"swatch" parquet:"swatch"`
	Room     string `json:"room" yaml:"room" parquet:"room"`
	Fallback bool   `json:"fallback" yaml:"fallback" parquet:"fallback"`
	Title    string `json:"title" yaml:"title" parquet:"title"`
	Subtitle string `json:"subtitle,omitempty" yaml:"subtitle,omitempty" parquet:"subtitle"`
}

// Manifest describes the correlation of one set
type Manifest struct {
	Set         string            `json:"set" yaml:"set"`
	GeneratedAt string            `json:"generated_at" yaml:"generated_at"`
	Summary     correlate.Summary `json:"summary" yaml:"summary"`
	Entries     []Entry           `json:"entries" yaml:"entries"`
}

// Build turns correlated images into a manifest
func Build(set string, images []models.Image, now time.Time) Manifest {
	m := Manifest{
		Set:         set,
		GeneratedAt: now.UTC().Format(time.RFC3339),
		Summary:     correlate.Stats(images),
		Entries:     make([]Entry, 0, len(images)),
	}
	for i, img := range images {
		t := title.Format(img.Name)
		m.Entries = append(m.Entries, Entry{
			Position: i,
			Name:     img.Name,
			Swatch:   img.Swatch,
			Room:     img.Room,
			Fallback: img.UsesFallback(),
			Title:    t.Main,
			Subtitle: t.Sub,
		})
	}
	return m
}

// Formats lists the supported output formats
var Formats = []string{"json", "yaml", "parquet"}

// FormatFromPath guesses the output format from a file extension
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json", nil
	case ".yaml", ".yml":
		return "yaml", nil
	case ".parquet":
		return "parquet", nil
	default:
		return "", fmt.Errorf("unsupported file format: %s (supported: .json, .yaml, .parquet)", filepath.Ext(path))
	}
}

// Write encodes m in the given format. Parquet output holds only the
// entries, one row per image.
func Write(w io.Writer, m Manifest, format string) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(m)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(&m); err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return encoder.Close()
	case "parquet":
		if err := parquet.Write(w, m.Entries); err != nil {
			return fmt.Errorf("failed to write parquet: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}
