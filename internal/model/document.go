package model

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// DocumentEntry represents a single PDF found in the document library
type DocumentEntry struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Path    string    `json:"path"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"mod_time"`
}

// NewDocumentEntry creates an entry for the file at path, titled after its base name
func NewDocumentEntry(id, path string, size int64, modTime time.Time) *DocumentEntry {
	return &DocumentEntry{
		ID:      id,
		Title:   TitleFromPath(path),
		Path:    path,
		Size:    size,
		ModTime: modTime,
	}
}

// TitleFromPath derives a display title from a file path or URI.
// Separators and underscores become spaces and the extension is dropped.
func TitleFromPath(path string) string {
	parts := strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	if len(parts) == 0 {
		return ""
	}
	name := parts[len(parts)-1]
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.ReplaceAll(name, "_", " ")
	return strings.TrimSpace(name)
}

// GetDisplaySize returns the file size in human readable form
func (d *DocumentEntry) GetDisplaySize() string {
	return FormatSize(d.Size)
}

// FormatSize renders a byte count as B, KB or MB
func FormatSize(size int64) string {
	const (
		kb = 1024
		mb = 1024 * kb
	)
	switch {
	case size >= mb:
		return fmt.Sprintf("%.1f MB", float64(size)/mb)
	case size >= kb:
		return fmt.Sprintf("%.1f KB", float64(size)/kb)
	default:
		return fmt.Sprintf("%d B", size)
	}
}
