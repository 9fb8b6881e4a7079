// Package web embeds the static upload UI served at the site root.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static/*
var EmbedFS embed.FS

// GetFileSystem returns the embedded static assets as an http.FileSystem
// rooted at the static directory.
func GetFileSystem() http.FileSystem {
	fsys, err := fs.Sub(EmbedFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(fsys)
}
