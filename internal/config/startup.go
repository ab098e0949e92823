package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. PDFVIEWER_RENDER_BACKEND
const EnvPrefix = "PDFVIEWER"

// DefaultCacheTTL is how long rendered pages stay cached
const DefaultCacheTTL = 2 * time.Minute

// Startup holds settings read once at process start
type Startup struct {
	Render  RenderConfig
	Library LibraryConfig
	// Document is opened right after the window appears
	Document string
}

// RenderConfig selects and tunes the page renderer
type RenderConfig struct {
	Backend  string
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// LibraryConfig overrides the library folder stored in preferences
type LibraryConfig struct {
	Dir string
}

// StartupConfigPath returns the config file location, honouring PDFVIEWER_CONFIG
func StartupConfigPath() string {
	if path := os.Getenv(EnvPrefix + "_CONFIG"); path != "" {
		return path
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "pdf-viewer", "config.toml")
}

// LoadStartup reads configuration from file and env. A missing file is not an error.
func LoadStartup() (Startup, error) {
	v := viper.New()

	v.SetDefault("render.backend", "")
	v.SetDefault("render.cache_ttl", DefaultCacheTTL)
	v.SetDefault("library.dir", "")
	v.SetDefault("document", "")

	v.SetConfigType("toml")

	if path := os.Getenv(EnvPrefix + "_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "pdf-viewer"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Startup{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Startup
	if err := v.Unmarshal(&c); err != nil {
		return Startup{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Render.CacheTTL < 0 {
		c.Render.CacheTTL = 0
	}
	return c, nil
}
