package correlate

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lehigh-university-libraries/swatchbook/internal/models"
)

// plainLocator keeps file names unescaped so expectations stay readable
type plainLocator struct{}

func (plainLocator) SwatchURL(file string) string { return "s/" + file }
func (plainLocator) RoomURL(file string) string   { return "r/" + file }

func TestKey(t *testing.T) {
	tests := []struct {
		filename string
		expected string
	}{
		{"a_1.jpg", "a_1"},
		{"A_1_Room.JPG", "a_1_room"},
		{"archive.tar.gz", "archive.tar"},
		{"noext", "noext"},
		{".hidden", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := Key(tt.filename); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestCorrelate(t *testing.T) {
	tests := []struct {
		name     string
		swatches []string
		rooms    []string
		expected []models.Image
	}{
		{
			name:     "prefix match and self fallback",
			swatches: []string{"a_1.jpg", "b_2.jpg"},
			rooms:    []string{"a_1_room.jpg"},
			expected: []models.Image{
				{Name: "a_1.jpg", Swatch: "s/a_1.jpg", Room: "r/a_1_room.jpg"},
				{Name: "b_2.jpg", Swatch: "s/b_2.jpg", Room: "s/b_2.jpg"},
			},
		},
		{
			name:     "exact match beats an earlier prefix match",
			swatches: []string{"oak.jpg"},
			rooms:    []string{"oak_kitchen.jpg", "OAK.png"},
			expected: []models.Image{
				{Name: "oak.jpg", Swatch: "s/oak.jpg", Room: "r/OAK.png"},
			},
		},
		{
			name:     "first prefix match in room order",
			swatches: []string{"elm.jpg"},
			rooms:    []string{"birch.jpg", "elm_z.jpg", "elm_a.jpg"},
			expected: []models.Image{
				{Name: "elm.jpg", Swatch: "s/elm.jpg", Room: "r/elm_z.jpg"},
			},
		},
		{
			name:     "duplicate room keys keep first position and last file",
			swatches: []string{"ash.jpg", "ash_1.jpg"},
			rooms:    []string{"ash_1_x.jpg", "ash_2.jpg", "ASH_1_X.png"},
			expected: []models.Image{
				{Name: "ash.jpg", Swatch: "s/ash.jpg", Room: "r/ASH_1_X.png"},
				{Name: "ash_1.jpg", Swatch: "s/ash_1.jpg", Room: "r/ASH_1_X.png"},
			},
		},
		{
			name:     "no rooms",
			swatches: []string{"b.jpg", "a.jpg"},
			rooms:    nil,
			expected: []models.Image{
				{Name: "b.jpg", Swatch: "s/b.jpg", Room: "s/b.jpg"},
				{Name: "a.jpg", Swatch: "s/a.jpg", Room: "s/a.jpg"},
			},
		},
		{
			name:     "no swatches",
			swatches: nil,
			rooms:    []string{"a.jpg"},
			expected: []models.Image{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Correlate(tt.swatches, tt.rooms, plainLocator{})
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Correlate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCorrelateRoomIsNeverEmpty(t *testing.T) {
	swatches := []string{"a.jpg", "ab.jpg", "abc.jpg", "z.jpg", ".jpg", "noext"}
	rooms := []string{"abcd.jpg", "ab.png", "zz", "q.jpg"}

	for _, img := range Correlate(swatches, rooms, plainLocator{}) {
		if img.Room == "" {
			t.Fatalf("Empty room for %s", img.Name)
		}
		if img.Room != img.Swatch && !strings.HasPrefix(img.Room, "r/") {
			t.Errorf("Room %q for %s is neither a room path nor the swatch", img.Room, img.Name)
		}
	}
}

func TestSetLocator(t *testing.T) {
	loc := SetLocator{Set: "Warm Tones"}

	if got := loc.SwatchURL("a 1.jpg"); got != "/images/Styles/Warm%20Tones/Swatches/a%201.jpg" {
		t.Errorf("Unexpected swatch URL %q", got)
	}
	if got := loc.RoomURL("a_1_room.jpg"); got != "/images/Styles/Warm%20Tones/Rooms/a_1_room.jpg" {
		t.Errorf("Unexpected room URL %q", got)
	}
}

func TestStats(t *testing.T) {
	images := Correlate([]string{"a_1.jpg", "b_2.jpg", "c.jpg"}, []string{"a_1_room.jpg", "c.png"}, plainLocator{})

	got := Stats(images)
	want := Summary{Total: 3, Matched: 2, Fallback: 1}
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}
