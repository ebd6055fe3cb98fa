package storage

import (
	"fmt"
	"io/fs"
	"path"
)

const (
	stylesDir   = "Styles"
	swatchesDir = "Swatches"
	roomsDir    = "Rooms"
)

// Library reads the image tree:
//
//	Styles/{set}/Swatches/*
//	Styles/{set}/Rooms/*
//
// Listings come back in fs.ReadDir order, which is sorted by filename.
type Library struct {
	fsys fs.FS
}

func NewLibrary(fsys fs.FS) *Library {
	return &Library{fsys: fsys}
}

// Sets lists the directories directly under Styles
func (l *Library) Sets() ([]string, error) {
	entries, err := fs.ReadDir(l.fsys, stylesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", stylesDir, err)
	}

	sets := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			sets = append(sets, e.Name())
		}
	}
	return sets, nil
}

// Swatches lists the regular files in a set's Swatches directory
func (l *Library) Swatches(set string) ([]string, error) {
	return l.files(path.Join(stylesDir, set, swatchesDir))
}

// Rooms lists the regular files in a set's Rooms directory
func (l *Library) Rooms(set string) ([]string, error) {
	return l.files(path.Join(stylesDir, set, roomsDir))
}

func (l *Library) files(dir string) ([]string, error) {
	entries, err := fs.ReadDir(l.fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}
