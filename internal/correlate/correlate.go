package correlate

import (
	"net/url"
	"path"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lehigh-university-libraries/swatchbook/internal/models"
)

// Locator builds the public location of a swatch or room file
type Locator interface {
	SwatchURL(file string) string
	RoomURL(file string) string
}

// SetLocator places files under /images/Styles/{set}/Swatches and
// /images/Styles/{set}/Rooms. Set and file names are path-escaped.
type SetLocator struct {
	Set string
}

func (l SetLocator) SwatchURL(file string) string {
	return path.Join("/images", "Styles", url.PathEscape(l.Set), "Swatches", url.PathEscape(file))
}

func (l SetLocator) RoomURL(file string) string {
	return path.Join("/images", "Styles", url.PathEscape(l.Set), "Rooms", url.PathEscape(file))
}

// Key returns the matching key for a filename: the name without its final
// extension, lowercased.
func Key(filename string) string {
	if i := strings.LastIndex(filename, "."); i != -1 {
		filename = filename[:i]
	}
	return cases.Lower(language.Und).String(filename)
}

// roomIndex is an insertion-ordered key to filename mapping. A repeated key
// keeps its original position and takes the later filename.
type roomIndex struct {
	keys  []string
	files map[string]string
}

func newRoomIndex(rooms []string) *roomIndex {
	idx := &roomIndex{
		keys:  make([]string, 0, len(rooms)),
		files: make(map[string]string, len(rooms)),
	}
	for _, room := range rooms {
		k := Key(room)
		if _, seen := idx.files[k]; !seen {
			idx.keys = append(idx.keys, k)
		}
		idx.files[k] = room
	}
	return idx
}

func (idx *roomIndex) lookup(key string) (string, bool) {
	if room, ok := idx.files[key]; ok {
		return room, true
	}
	for _, k := range idx.keys {
		if strings.HasPrefix(k, key) {
			return idx.files[k], true
		}
	}
	return "", false
}

// Correlate pairs every swatch with a room photograph. An exact key match
// wins; otherwise the first room, in listing order, whose key starts with the
// swatch key is used; otherwise the swatch stands in for its own room.
// Output order follows swatches.
func Correlate(swatches, rooms []string, loc Locator) []models.Image {
	idx := newRoomIndex(rooms)

	images := make([]models.Image, 0, len(swatches))
	for _, name := range swatches {
		swatchURL := loc.SwatchURL(name)
		roomURL := swatchURL
		if room, ok := idx.lookup(Key(name)); ok {
			roomURL = loc.RoomURL(room)
		}
		images = append(images, models.Image{
			Name:   name,
			Swatch: swatchURL,
			Room:   roomURL,
		})
	}
	return images
}

// Summary counts how many images found a room photograph
type Summary struct {
	Total    int `json:"total" yaml:"total"`
	Matched  int `json:"matched" yaml:"matched"`
	Fallback int `json:"fallback" yaml:"fallback"`
}

func Stats(images []models.Image) Summary {
	s := Summary{Total: len(images)}
	for _, img := range images {
		if img.UsesFallback() {
			s.Fallback++
		} else {
			s.Matched++
		}
	}
	return s
}
