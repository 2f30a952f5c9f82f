package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"colorized/models"
)

const (
	// AppID must match the fyne app ID and the packaging metadata.
	AppID = "com.backyard.colorized"

	// DefaultInitialColor is shown on the main screen when no config sets one.
	DefaultInitialColor = "#7367f0"

	configDirPath = "~/.config/colorized"
)

// Config holds application configuration.
type Config struct {
	Display DisplayConfig
	Window  WindowConfig
	Log     LogConfig
}

// DisplayConfig holds settings for the main color screen.
type DisplayConfig struct {
	InitialColor string `mapstructure:"initial_color"`
}

// WindowConfig holds the initial window size on desktop targets.
type WindowConfig struct {
	Width  float32
	Height float32
}

// LogConfig holds rotation settings for the application log.
type LogConfig struct {
	MaxSizeMB  int `mapstructure:"max_size_mb"`
	MaxBackups int `mapstructure:"max_backups"`
}

// Load reads configuration from file and env. Env var overrides use prefix COLORIZED_.
// A missing config file is not an error; defaults apply.
// On any other error the returned Config still carries the defaults (plus env
// overrides where the file could not be read), so callers can keep going.
func Load() (Config, error) {
	v := newViper()

	v.SetConfigType("toml")

	cfgPath := os.Getenv("COLORIZED_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		dir, err := ExpandPath(configDirPath)
		if err != nil {
			return Defaults(), fmt.Errorf("cannot resolve configuration directory: %w", err)
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("COLORIZED")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present; a broken file leaves the defaults in place
	var readErr error
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			readErr = fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Defaults(), fmt.Errorf("unmarshal config: %w", err)
	}
	return c, readErr
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	var c Config
	// only the built-in defaults are set, which always decode
	_ = newViper().Unmarshal(&c)
	return c
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("display.initial_color", DefaultInitialColor)
	v.SetDefault("window.width", 420)
	v.SetDefault("window.height", 760)
	v.SetDefault("log.max_size_mb", 5)
	v.SetDefault("log.max_backups", 3)
	return v
}

// InitialColor parses the configured start color.
// An unparseable value falls back to DefaultInitialColor with a warning.
func (c Config) InitialColor() models.Color {
	color, err := models.ParseHex(c.Display.InitialColor)
	if err != nil {
		log.Printf("[CONFIG] %v, using %s", err, DefaultInitialColor)
		color, _ = models.ParseHex(DefaultInitialColor)
	}
	return color
}

// Dir returns the configuration directory, creating it if needed.
func Dir() (string, error) {
	return verifyConfigDirectory()
}

// check config directory exists or create it
func verifyConfigDirectory() (string, error) {
	configDirectory, expandError := ExpandPath(configDirPath)
	if expandError != nil {
		return "", fmt.Errorf("cannot verify local configuration directory: %w", expandError)
	}

	_, err := os.Stat(configDirectory)

	if os.IsNotExist(err) {
		// Create the directory with read/write/execute permissions for owner, and read/execute for others
		err := os.MkdirAll(configDirectory, 0755)
		if err != nil {
			return "", fmt.Errorf("error creating directory %s: %w", configDirectory, err)
		}
		log.Printf("Directory %s created successfully.\n", configDirectory)
	} else if err != nil {
		return "", fmt.Errorf("error checking directory %s: %w", configDirectory, err)
	}

	return configDirectory, nil
}

// ExpandPath expands ~ to the user's home directory, or returns the path as-is
func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(homeDir, path[2:]), nil
	}
	return path, nil
}

// Lines renders the effective configuration as "section.key = value" lines,
// in the same layout as config.toml.
func (c Config) Lines() []string {
	return []string{
		"[display]",
		fmt.Sprintf("initial_color = %q", c.Display.InitialColor),
		"",
		"[window]",
		fmt.Sprintf("width = %g", c.Window.Width),
		fmt.Sprintf("height = %g", c.Window.Height),
		"",
		"[log]",
		fmt.Sprintf("max_size_mb = %d", c.Log.MaxSizeMB),
		fmt.Sprintf("max_backups = %d", c.Log.MaxBackups),
	}
}
