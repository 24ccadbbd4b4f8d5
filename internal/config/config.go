package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Simulation SimulationConfig `mapstructure:"simulation"`
	UI         UIConfig         `mapstructure:"ui"`
	Colors     ColorsConfig     `mapstructure:"colors"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// SimulationConfig holds the automaton parameters
type SimulationConfig struct {
	Width         int `mapstructure:"width"`
	Height        int `mapstructure:"height"`
	StepsPerFrame int `mapstructure:"steps_per_frame"`
	// MaxFrames caps headless runs; 0 runs until the ant freezes
	MaxFrames int `mapstructure:"max_frames"`
}

// UIConfig holds driver settings
type UIConfig struct {
	Window WindowConfig `mapstructure:"window"`
}

// WindowConfig holds window settings
type WindowConfig struct {
	Title    string `mapstructure:"title"`
	CellSize int    `mapstructure:"cell_size"`
	FPS      int    `mapstructure:"fps"`
	ShowHUD  bool   `mapstructure:"show_hud"`
}

// ColorsConfig holds RGB triples for the palette
type ColorsConfig struct {
	On  [3]int `mapstructure:"on"`
	Off [3]int `mapstructure:"off"`
	Ant [3]int `mapstructure:"ant"`
}

// LoggingConfig holds zerolog settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
	// set only when a file was actually read
	loadedFile string
	// keys pinned through Set; viper ranks them above the file
	overridden map[string]bool
)

// setViperDefaults sets all default values using Viper's SetDefault.
// A 1280x720 window of 5px cells gives the 256x144 grid.
func setViperDefaults(v *viper.Viper) {
	v.SetDefault("simulation.width", 256)
	v.SetDefault("simulation.height", 144)
	v.SetDefault("simulation.steps_per_frame", 50)
	v.SetDefault("simulation.max_frames", 0)

	v.SetDefault("ui.window.title", "Langton's ant")
	v.SetDefault("ui.window.cell_size", 5)
	v.SetDefault("ui.window.fps", 30)
	v.SetDefault("ui.window.show_hud", false)

	v.SetDefault("colors.on", []int{255, 255, 255})
	v.SetDefault("colors.off", []int{0, 0, 0})
	v.SetDefault("colors.ant", []int{255, 0, 0})

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// Init initializes the configuration. An explicit configPath that does not
// exist is not an error; defaults and environment apply.
func Init(configPath string) error {
	v = viper.New()
	overridden = make(map[string]bool)

	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/langtons-ant")
	}

	// LANGTON_SIMULATION_WIDTH=64 overrides simulation.width
	v.SetEnvPrefix("LANGTON")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	loadedFile = ""
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound):
		case configPath != "" && errors.Is(err, fs.ErrNotExist):
		default:
			return fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		loadedFile = v.ConfigFileUsed()
	}

	next := &Config{}
	if err := v.Unmarshal(next); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := Validate(next); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	cfg = next
	return nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// GetViper returns the viper instance for advanced usage
func GetViper() *viper.Viper {
	if v == nil {
		panic("config not initialized - call Init() first")
	}
	return v
}

// Set allows runtime config updates; the value is validated with the rest of
// the config and rejected if invalid.
func Set(key string, value interface{}) error {
	prev := v.Get(key)
	v.Set(key, value)
	// viper keeps an override even when the value is rolled back below
	overridden[key] = true
	if err := reload(); err != nil {
		v.Set(key, prev)
		return err
	}
	return nil
}

func reload() error {
	next := &Config{}
	if err := v.Unmarshal(next); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := Validate(next); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	cfg = next
	return nil
}

func GetString(key string) string { return v.GetString(key) }
func GetInt(key string) int       { return v.GetInt(key) }
func GetBool(key string) bool     { return v.GetBool(key) }

// ConfigFilePath returns the path of the loaded config file, or "" when
// only defaults and environment are in use.
func ConfigFilePath() string {
	return loadedFile
}

// Overridden reports whether key was pinned with Set, in which case config
// file edits to it have no effect.
func Overridden(key string) bool {
	return overridden[key]
}

// WatchConfig enables hot-reloading of the config file. onChange receives
// the new config, or the error that kept the previous one in place.
func WatchConfig(onChange func(*Config, error)) {
	v.OnConfigChange(func(e fsnotify.Event) {
		err := reload()
		if onChange != nil {
			onChange(cfg, err)
		}
	})
	v.WatchConfig()
}

// Validate validates the configuration values
func Validate(c *Config) error {
	if c.Simulation.Width <= 0 || c.Simulation.Height <= 0 {
		return fmt.Errorf("simulation dimensions must be positive")
	}
	if c.Simulation.StepsPerFrame <= 0 {
		return fmt.Errorf("simulation.steps_per_frame must be positive")
	}
	if c.Simulation.MaxFrames < 0 {
		return fmt.Errorf("simulation.max_frames must be non-negative")
	}

	if c.UI.Window.CellSize <= 0 {
		return fmt.Errorf("ui.window.cell_size must be positive")
	}
	if c.UI.Window.FPS <= 0 {
		return fmt.Errorf("ui.window.fps must be positive")
	}

	validateRGB := func(rgb [3]int, name string) error {
		for i, v := range rgb {
			if v < 0 || v > 255 {
				return fmt.Errorf("%s[%d] must be between 0 and 255", name, i)
			}
		}
		return nil
	}
	if err := validateRGB(c.Colors.On, "colors.on"); err != nil {
		return err
	}
	if err := validateRGB(c.Colors.Off, "colors.off"); err != nil {
		return err
	}
	if err := validateRGB(c.Colors.Ant, "colors.ant"); err != nil {
		return err
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}

	return nil
}
