package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestInitDefaults(t *testing.T) {
	err := Init(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	c := Get()
	assert.Equal(t, 256, c.Simulation.Width)
	assert.Equal(t, 144, c.Simulation.Height)
	assert.Equal(t, 50, c.Simulation.StepsPerFrame)
	assert.Equal(t, 0, c.Simulation.MaxFrames)
	assert.Equal(t, "Langton's ant", c.UI.Window.Title)
	assert.Equal(t, 5, c.UI.Window.CellSize)
	assert.Equal(t, 30, c.UI.Window.FPS)
	assert.False(t, c.UI.Window.ShowHUD)
	assert.Equal(t, [3]int{255, 0, 0}, c.Colors.Ant)
	assert.Equal(t, [3]int{255, 255, 255}, c.Colors.On)
	assert.Equal(t, [3]int{0, 0, 0}, c.Colors.Off)
	assert.Equal(t, "info", c.Logging.Level)
	assert.Equal(t, "console", c.Logging.Format)
	assert.Empty(t, ConfigFilePath())
}

func TestInitFromFile(t *testing.T) {
	path := writeConfig(t, `
simulation:
  width: 64
  height: 48
  steps_per_frame: 10
ui:
  window:
    title: "ant"
    fps: 60
colors:
  ant: [0, 255, 0]
logging:
  level: debug
  format: json
`)
	require.NoError(t, Init(path))

	c := Get()
	assert.Equal(t, 64, c.Simulation.Width)
	assert.Equal(t, 48, c.Simulation.Height)
	assert.Equal(t, 10, c.Simulation.StepsPerFrame)
	assert.Equal(t, "ant", c.UI.Window.Title)
	assert.Equal(t, 60, c.UI.Window.FPS)
	assert.Equal(t, 5, c.UI.Window.CellSize, "unset keys keep defaults")
	assert.Equal(t, [3]int{0, 255, 0}, c.Colors.Ant)
	assert.Equal(t, "debug", c.Logging.Level)
	assert.Equal(t, "json", c.Logging.Format)
	assert.Equal(t, path, ConfigFilePath())
}

func TestInitRejectsInvalidFile(t *testing.T) {
	t.Run("bad yaml", func(t *testing.T) {
		path := writeConfig(t, "simulation: [width\n")
		assert.Error(t, Init(path))
	})

	t.Run("invalid values", func(t *testing.T) {
		path := writeConfig(t, "simulation:\n  steps_per_frame: 0\n")
		err := Init(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "steps_per_frame")
	})
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("LANGTON_SIMULATION_WIDTH", "32")
	t.Setenv("LANGTON_UI_WINDOW_SHOW_HUD", "true")
	t.Setenv("LANGTON_LOGGING_LEVEL", "warn")

	require.NoError(t, Init(filepath.Join(t.TempDir(), "missing.yaml")))

	c := Get()
	assert.Equal(t, 32, c.Simulation.Width)
	assert.True(t, c.UI.Window.ShowHUD)
	assert.Equal(t, "warn", c.Logging.Level)
}

func TestSet(t *testing.T) {
	require.NoError(t, Init(filepath.Join(t.TempDir(), "missing.yaml")))

	require.NoError(t, Set("simulation.steps_per_frame", 7))
	assert.Equal(t, 7, Get().Simulation.StepsPerFrame)
	assert.Equal(t, 7, GetInt("simulation.steps_per_frame"))

	err := Set("simulation.steps_per_frame", -1)
	assert.Error(t, err)
	assert.Equal(t, 7, Get().Simulation.StepsPerFrame, "rejected value leaves config unchanged")
	assert.Equal(t, 7, GetInt("simulation.steps_per_frame"))
}

func TestGetHelpers(t *testing.T) {
	require.NoError(t, Init(filepath.Join(t.TempDir(), "missing.yaml")))

	assert.Equal(t, "Langton's ant", GetString("ui.window.title"))
	assert.Equal(t, 30, GetInt("ui.window.fps"))
	assert.False(t, GetBool("ui.window.show_hud"))
	assert.NotNil(t, GetViper())
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Simulation: SimulationConfig{Width: 10, Height: 10, StepsPerFrame: 1},
			UI:         UIConfig{Window: WindowConfig{CellSize: 1, FPS: 30}},
			Colors:     ColorsConfig{On: [3]int{255, 255, 255}, Ant: [3]int{255, 0, 0}},
			Logging:    LoggingConfig{Level: "info", Format: "console"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "zero width", mutate: func(c *Config) { c.Simulation.Width = 0 }, wantErr: "dimensions"},
		{name: "negative height", mutate: func(c *Config) { c.Simulation.Height = -3 }, wantErr: "dimensions"},
		{name: "zero steps", mutate: func(c *Config) { c.Simulation.StepsPerFrame = 0 }, wantErr: "steps_per_frame"},
		{name: "negative max frames", mutate: func(c *Config) { c.Simulation.MaxFrames = -1 }, wantErr: "max_frames"},
		{name: "zero cell size", mutate: func(c *Config) { c.UI.Window.CellSize = 0 }, wantErr: "cell_size"},
		{name: "zero fps", mutate: func(c *Config) { c.UI.Window.FPS = 0 }, wantErr: "fps"},
		{name: "colour out of range", mutate: func(c *Config) { c.Colors.Ant[1] = 256 }, wantErr: "colors.ant[1]"},
		{name: "negative colour", mutate: func(c *Config) { c.Colors.Off[0] = -1 }, wantErr: "colors.off[0]"},
		{name: "bad format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := Validate(c)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestOverridden(t *testing.T) {
	require.NoError(t, Init(filepath.Join(t.TempDir(), "missing.yaml")))
	assert.False(t, Overridden("simulation.steps_per_frame"))

	require.NoError(t, Set("simulation.steps_per_frame", 5))
	assert.True(t, Overridden("simulation.steps_per_frame"))
	assert.False(t, Overridden("simulation.width"))

	require.NoError(t, Init(filepath.Join(t.TempDir(), "missing.yaml")))
	assert.False(t, Overridden("simulation.steps_per_frame"), "Init starts clean")
}

func trySend(ch chan<- int, v int) {
	select {
	case ch <- v:
	default:
	}
}

// waitForReload drains reload values until one equals want. An editor
// write can fire several events, some seeing a half-written file.
func waitForReload(t *testing.T, reloads <-chan int, want int) {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case got := <-reloads:
			if got == want {
				return
			}
		case <-deadline:
			t.Fatalf("no reload carried %d", want)
		}
	}
}

func TestWatchConfigReloadsFile(t *testing.T) {
	path := writeConfig(t, "simulation:\n  steps_per_frame: 10\n")
	require.NoError(t, Init(path))
	require.Equal(t, 10, Get().Simulation.StepsPerFrame)

	reloads := make(chan int, 16)
	WatchConfig(func(c *Config, err error) {
		if err == nil {
			trySend(reloads, c.Simulation.StepsPerFrame)
		}
	})

	require.NoError(t, os.WriteFile(path, []byte("simulation:\n  steps_per_frame: 99\n"), 0o644))
	waitForReload(t, reloads, 99)
	assert.False(t, Overridden("simulation.steps_per_frame"))
}

func TestWatchConfigKeepsOverride(t *testing.T) {
	path := writeConfig(t, "simulation:\n  steps_per_frame: 10\n  width: 20\n")
	require.NoError(t, Init(path))
	require.NoError(t, Set("simulation.steps_per_frame", 7))

	widths := make(chan int, 16)
	WatchConfig(func(c *Config, err error) {
		if err == nil {
			trySend(widths, c.Simulation.Width)
		}
	})

	require.NoError(t, os.WriteFile(path, []byte("simulation:\n  steps_per_frame: 99\n  width: 40\n"), 0o644))
	waitForReload(t, widths, 40)
	assert.Equal(t, 7, Get().Simulation.StepsPerFrame, "override outranks the file")
	assert.True(t, Overridden("simulation.steps_per_frame"))
}
