package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// applyDefaults seeds Viper with defaults defined in GetConfigOptions.
func applyDefaults(v *viper.Viper) {
	for _, o := range GetConfigOptions() {
		v.SetDefault(o.Key, o.Default)
	}
}

// Load resolves configuration with precedence: defaults < file < env.
// The provided Viper instance is mutated with defaults, file contents, and env.
func Load(ctx context.Context, v *viper.Viper) error {
	// An explicit SetConfigFile upstream wins over the search paths.
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "mdiu"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "mdiu"))
		}
		v.AddConfigPath(".")
	}

	applyDefaults(v)

	// A missing file is fine; a broken one is not.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	// Environment variables: MDIU_* (highest among these sources)
	v.SetEnvPrefix("mdiu")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.Set("format", strings.ToLower(strings.TrimSpace(v.GetString("format"))))
	if dir := v.GetString("output_dir"); strings.HasPrefix(dir, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			v.Set("output_dir", filepath.Join(home, dir[1:]))
		}
	}
	return nil
}

// DefaultConfigPath resolves the standard config.toml location.
func DefaultConfigPath() string {
	xdg := os.Getenv("XDG_CONFIG_HOME")
	if xdg == "" {
		home, _ := os.UserHomeDir()
		xdg = filepath.Join(home, ".config")
	}
	return filepath.Join(xdg, "mdiu", "config.toml")
}

type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// GetConfigOptions returns the default configuration options and their meanings.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		{Key: "format", Default: "gemtext", Comment: "Output format used when --format is not given: gemtext, html or markdown"},
		{Key: "output_dir", Default: "", Comment: "Directory for rendered files; empty writes to stdout"},
		{Key: "pager", Default: true, Comment: "Page terminal output through $PAGER"},
		{Key: "verbose", Default: false, Comment: "Log what each command does to stderr"},

		{Key: "preview.style", Default: "dracula", Comment: "Glamour style for preview: dark, light, dracula, notty, ..."},
		{Key: "preview.word_wrap", Default: 80, Comment: "Preview wrap width; 0 uses the terminal width"},
	}
}
