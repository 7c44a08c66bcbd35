package config

import (
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
)

const defaultVersion = "0.1.0"

// GetVersion returns the version from APP_VERSION, a VERSION file or the
// module build info, in that order
func GetVersion() string {
	if envVersion := strings.TrimSpace(os.Getenv("APP_VERSION")); envVersion != "" {
		return envVersion
	}
	if v := readVersionFile("."); v != "" {
		return v
	}
	if v := readVersionFile(".."); v != "" {
		return v
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return strings.TrimPrefix(v, "v")
		}
	}
	return defaultVersion
}

// readVersionFile returns the trimmed VERSION file in dir, or ""
func readVersionFile(dir string) string {
	content, err := os.ReadFile(filepath.Join(dir, "VERSION"))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(content))
}
