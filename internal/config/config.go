package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/sethvargo/go-envconfig"
)

// Config holds all configuration for the munchies dashboard service
type Config struct {
	// Server configuration
	Port string `env:"PORT,default=8981"`

	// Page assets
	SpoonImagePath string `env:"SPOON_IMAGE_PATH,default=assets/grey_spoon.png"`
	EChartsCDNURL  string `env:"ECHARTS_CDN_URL,default=https://cdn.jsdelivr.net/npm/echarts@5.4.3/dist/echarts.min.js"`
	DebugAssets    bool   `env:"DEBUG_ASSETS,default=false"`

	// Export target for the CLI
	ExportDir string `env:"EXPORT_DIR,default=./reports"`

	// Service configuration
	Environment string `env:"ENVIRONMENT,default=development"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`
	LogFormat   string `env:"LOG_FORMAT,default=auto"`
}

var (
	logLevels  = []string{"debug", "info", "warn", "warning", "error", "fatal"}
	logFormats = []string{"auto", "json", "text"}
)

// Load loads configuration from environment variables
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.SpoonImagePath = resolveAssetPath(cfg.SpoonImagePath, executableDir())
	return &cfg, nil
}

// resolveAssetPath keeps absolute paths and paths found from the working
// directory; otherwise it looks next to the binary, so the service can be
// started from any directory
func resolveAssetPath(p, exeDir string) string {
	if filepath.IsAbs(p) || fileExists(p) || exeDir == "" {
		return p
	}
	if candidate := filepath.Join(exeDir, p); fileExists(candidate) {
		return candidate
	}
	return p
}

func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

func fileExists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}

// Validate rejects values that would only fail later at startup
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("invalid PORT %q", c.Port)
	}
	if strings.TrimSpace(c.SpoonImagePath) == "" {
		return fmt.Errorf("SPOON_IMAGE_PATH must not be empty")
	}
	if !lo.Contains(logLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid LOG_LEVEL %q", c.LogLevel)
	}
	if !lo.Contains(logFormats, strings.ToLower(c.LogFormat)) {
		return fmt.Errorf("invalid LOG_FORMAT %q", c.LogFormat)
	}
	return nil
}

// IsProduction reports whether the service runs in production
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}
