package web

import (
	"embed"
	"io/fs"
)

//go:embed static/*
var static embed.FS

// StaticFS returns the embedded web client
func StaticFS() (fs.FS, error) {
	return fs.Sub(static, "static")
}
