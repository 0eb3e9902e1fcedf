// /internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

// LoggingSettings controls the game-output log pipeline.
type LoggingSettings struct {
	Enabled        bool   `mapstructure:"enabled"`
	Dir            string `mapstructure:"dir"`
	RemoveUsername bool   `mapstructure:"remove_username"`
	RemoveUUIDs    bool   `mapstructure:"remove_uuids"`
}

// Settings holds the validated launcher configuration.
type Settings struct {
	VersionsDir    string            `mapstructure:"versions_dir"`
	ModsDir        string            `mapstructure:"mods_dir"`
	CustomVersions map[string]string `mapstructure:"custom_versions"`
	JvmArgs        []string          `mapstructure:"jvm_args"`
	GameArgs       []string          `mapstructure:"game_args"`
	ExternalMods   []string          `mapstructure:"external_mods"`

	RestartOnModUpdate         bool `mapstructure:"restart_on_mod_update"`
	WatchWholeJavaModDirectory bool `mapstructure:"watch_whole_java_mod_directory"`
	BuildModsConcurrently      bool `mapstructure:"build_mods_concurrently"`

	Logging LoggingSettings `mapstructure:"logging"`

	LogLevel string `mapstructure:"log_level"`

	// Passthrough arguments from the command line, appended after the
	// settings-configured lists when the game is launched.
	CLIJvmArgs  []string `mapstructure:"-"`
	CLIGameArgs []string `mapstructure:"-"`
}

// DataDir returns the launcher's data directory using platform conventions:
// %APPDATA% on Windows, ~/Library/Application Support on macOS, and
// $XDG_DATA_HOME (defaulting to ~/.local/share) elsewhere.
func DataDir() (string, error) {
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("APPDATA")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not determine user home directory: %w", err)
		}
		base = filepath.Join(home, "Library", "Application Support")
	default:
		base = os.Getenv("XDG_DATA_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("could not determine user home directory: %w", err)
			}
			base = filepath.Join(home, ".local", "share")
		}
	}
	return filepath.Join(base, "mindustry-launcher"), nil
}

// Load reads the settings file (config.yaml in the launcher data directory,
// or cfgFile if non-empty), applies defaults, and bootstraps the directories
// the launcher needs.
func Load(cfgFile string) (*Settings, error) {
	dataDir, err := DataDir()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetDefault("versions_dir", filepath.Join(dataDir, "versions"))
	v.SetDefault("mods_dir", filepath.Join(dataDir, "mods"))
	v.SetDefault("custom_versions", map[string]string{})
	v.SetDefault("jvm_args", []string{})
	v.SetDefault("game_args", []string{})
	v.SetDefault("external_mods", []string{})
	v.SetDefault("restart_on_mod_update", true)
	v.SetDefault("watch_whole_java_mod_directory", false)
	v.SetDefault("build_mods_concurrently", false)
	v.SetDefault("logging.enabled", true)
	v.SetDefault("logging.dir", filepath.Join(dataDir, "logs"))
	v.SetDefault("logging.remove_username", true)
	v.SetDefault("logging.remove_uuids", true)
	v.SetDefault("log_level", "info")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(dataDir)
	}

	if err := v.ReadInConfig(); err != nil {
		// A missing default settings file is fine; defaults apply. An
		// explicitly named file must exist.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("could not read settings file: %w", err)
		}
	}

	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("invalid settings file: %w", err)
	}

	for _, dir := range []string{settings.VersionsDir, settings.ModsDir, settings.Logging.Dir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("could not create launcher directory %s: %w", dir, err)
		}
	}

	return settings, nil
}

// SplitPassthrough separates the arguments after the first "--" into JVM
// arguments and, after a second "--", game arguments.
func SplitPassthrough(args []string) (jvmArgs, gameArgs []string) {
	for i, arg := range args {
		if arg == "--" {
			return args[:i], args[i+1:]
		}
	}
	return args, nil
}
