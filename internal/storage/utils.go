package storage

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// GenerateExportFolderPath generates a dated folder path for an export.
// Format: YYYY/MM/DD/munchies-YYYY-MM-DD-HH-MM-SS
func GenerateExportFolderPath(timestamp time.Time) string {
	ts := timestamp.UTC()
	return fmt.Sprintf("%s/munchies-%s", ts.Format("2006/01/02"), ts.Format("2006-01-02-15-04-05"))
}

var contentTypes = map[string]string{
	".json": "application/json",
	".txt":  "text/plain",
	".html": "text/html; charset=utf-8",
	".css":  "text/css",
	".js":   "application/javascript",
	".md":   "text/markdown",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".svg":  "image/svg+xml",
}

// GetContentType determines the MIME content type based on file extension
func GetContentType(filename string) string {
	if ct, ok := contentTypes[strings.ToLower(filepath.Ext(filename))]; ok {
		return ct
	}
	return "application/octet-stream"
}
