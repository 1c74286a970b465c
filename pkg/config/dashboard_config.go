package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/decker502/cardash/pkg/types"
	"gopkg.in/yaml.v3"
)

// DashboardConfigPath is the embedded default configuration.
const DashboardConfigPath = "data/dashboard.yaml"

// DashboardConfig is the complete dashboard configuration.
//
// Config file: data/dashboard.yaml (embedded), or any .yaml/.yml/.toml
// file passed with --config. Fields missing from a file keep their
// DefaultDashboardConfig value.
type DashboardConfig struct {
	// InitialPanel is the panel shown at startup ("lock", "charge", "climate", "tyre").
	InitialPanel string `yaml:"initialPanel" toml:"initialPanel"`

	Window    WindowConfig    `yaml:"window" toml:"window"`
	Animation AnimationConfig `yaml:"animation" toml:"animation"`
	Charge    ChargeDisplay   `yaml:"charge" toml:"charge"`
	Climate   ClimateDisplay  `yaml:"climate" toml:"climate"`
	Tyres     TyreDisplay     `yaml:"tyres" toml:"tyres"`
}

// WindowConfig is the logical screen of the desktop window.
type WindowConfig struct {
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
	Title  string `yaml:"title" toml:"title"`
}

// AnimationConfig holds the fixed duration of every animation timer.
// A zero duration completes on the first sample.
type AnimationConfig struct {
	Switch      Duration `yaml:"switch" toml:"switch"`           // lock icon morph
	Bounce      Duration `yaml:"bounce" toml:"bounce"`           // lock show/hide slide
	Charge      Duration `yaml:"charge" toml:"charge"`           // charge panel reveal
	ClimateMain Duration `yaml:"climateMain" toml:"climateMain"` // climate panel and car slide
	ClimateIcon Duration `yaml:"climateIcon" toml:"climateIcon"` // mode icon grow/shrink
	ClimateGlow Duration `yaml:"climateGlow" toml:"climateGlow"` // glow reveal mask
	ClimateFade Duration `yaml:"climateFade" toml:"climateFade"` // climate text fade
	TyreSlot    Duration `yaml:"tyreSlot" toml:"tyreSlot"`       // each tyre relay slot

	// PanelSwitch delays the tyre reveal until the car has slid back.
	PanelSwitch Duration `yaml:"panelSwitch" toml:"panelSwitch"`
}

// ChargeDisplay holds the static charge panel texts.
type ChargeDisplay struct {
	Range     string `yaml:"range" toml:"range"`
	Percent   string `yaml:"percent" toml:"percent"`
	Status    string `yaml:"status" toml:"status"`
	Remaining string `yaml:"remaining" toml:"remaining"`
	Rate      string `yaml:"rate" toml:"rate"`
	Voltage   string `yaml:"voltage" toml:"voltage"`
}

// ClimateDisplay holds the climate panel start value and static readings.
type ClimateDisplay struct {
	InitialTemperature int    `yaml:"initialTemperature" toml:"initialTemperature"`
	InsideTemperature  string `yaml:"insideTemperature" toml:"insideTemperature"`
	OutsideTemperature string `yaml:"outsideTemperature" toml:"outsideTemperature"`
}

// TyreReading is the static telemetry shown in one tyre slot.
type TyreReading struct {
	Pressure    string `yaml:"pressure" toml:"pressure"`
	Temperature string `yaml:"temperature" toml:"temperature"`
}

// TyreDisplay holds the tyre panel telemetry texts.
type TyreDisplay struct {
	Status    string      `yaml:"status" toml:"status"`
	LeftUp    TyreReading `yaml:"leftUp" toml:"leftUp"`
	RightUp   TyreReading `yaml:"rightUp" toml:"rightUp"`
	RightDown TyreReading `yaml:"rightDown" toml:"rightDown"`
	LeftDown  TyreReading `yaml:"leftDown" toml:"leftDown"`
}

// Reading returns the telemetry for a slot.
func (t TyreDisplay) Reading(slot types.TyreSlot) TyreReading {
	switch slot {
	case types.TyreRightUp:
		return t.RightUp
	case types.TyreRightDown:
		return t.RightDown
	case types.TyreLeftDown:
		return t.LeftDown
	default:
		return t.LeftUp
	}
}

// DefaultDashboardConfig returns the built-in configuration.
func DefaultDashboardConfig() *DashboardConfig {
	return &DashboardConfig{
		InitialPanel: types.PanelLock.String(),
		Window: WindowConfig{
			Width:  480,
			Height: 800,
			Title:  "Car Dashboard",
		},
		Animation: AnimationConfig{
			Switch:      Millis(300),
			Bounce:      Millis(500),
			Charge:      Millis(700),
			ClimateMain: Millis(300),
			ClimateIcon: Millis(200),
			ClimateGlow: Millis(300),
			ClimateFade: Millis(300),
			TyreSlot:    Millis(300),
			PanelSwitch: Millis(300),
		},
		Charge: ChargeDisplay{
			Range:     "220 mi",
			Percent:   "62%",
			Status:    "CHARGING",
			Remaining: "18 min remaining",
			Rate:      "22 min/hr",
			Voltage:   "232 v",
		},
		Climate: ClimateDisplay{
			InitialTemperature: 29,
			InsideTemperature:  "20°C",
			OutsideTemperature: "35°C",
		},
		Tyres: TyreDisplay{
			Status:    "LOW PRESSURE",
			LeftUp:    TyreReading{Pressure: "23.6psi", Temperature: "56°C"},
			RightUp:   TyreReading{Pressure: "35.0psi", Temperature: "41°C"},
			RightDown: TyreReading{Pressure: "34.8psi", Temperature: "42°C"},
			LeftDown:  TyreReading{Pressure: "34.6psi", Temperature: "41°C"},
		},
	}
}

// Format is a config file encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

// FormatFromPath picks the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return FormatYAML, fmt.Errorf("unsupported config extension %q (want .yaml, .yml or .toml)", filepath.Ext(path))
}

// ParseDashboardConfig decodes data on top of the defaults and validates the result.
func ParseDashboardConfig(data []byte, format Format) (*DashboardConfig, error) {
	cfg := DefaultDashboardConfig()

	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(cfg); err != nil {
			return nil, fmt.Errorf("failed to parse dashboard config: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse dashboard config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dashboard config: %w", err)
	}
	return cfg, nil
}

// LoadDashboardConfig reads a config file from disk.
//
// Parameters:
//   - path: a .yaml, .yml or .toml file
//
// Returns:
//   - *DashboardConfig: defaults overlaid with the file contents
//   - error: read, parse or validation failure
func LoadDashboardConfig(path string) (*DashboardConfig, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dashboard config: %w", err)
	}

	return ParseDashboardConfig(data, format)
}

// Validate checks the configuration for values the dashboard cannot use.
func (c *DashboardConfig) Validate() error {
	if _, err := types.ParsePanel(c.InitialPanel); err != nil {
		return fmt.Errorf("initialPanel: %w", err)
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	durations := []struct {
		name string
		d    Duration
	}{
		{"switch", c.Animation.Switch},
		{"bounce", c.Animation.Bounce},
		{"charge", c.Animation.Charge},
		{"climateMain", c.Animation.ClimateMain},
		{"climateIcon", c.Animation.ClimateIcon},
		{"climateGlow", c.Animation.ClimateGlow},
		{"climateFade", c.Animation.ClimateFade},
		{"tyreSlot", c.Animation.TyreSlot},
		{"panelSwitch", c.Animation.PanelSwitch},
	}
	for _, entry := range durations {
		if entry.d.Duration < 0 {
			return fmt.Errorf("animation.%s must not be negative, got %v", entry.name, entry.d.Duration)
		}
	}

	return nil
}

// Panel returns the parsed initial panel. Validate guarantees it parses.
func (c *DashboardConfig) Panel() types.Panel {
	p, _ := types.ParsePanel(c.InitialPanel)
	return p
}
