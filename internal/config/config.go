package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/chute/internal/chute"
	"github.com/iburimskiy/chute/internal/theme"
)

const (
	WindowWidth  = 960
	WindowHeight = 540
	WindowTitle  = "Chute - Space: doors, D: direction, T: theme, M: sound, Esc/Q: quit"
	TicksPerSec  = 60

	TerminalFPS = 30

	// Sound parameters
	HumFrequency = 55.0
	HumVolume    = 0.2
)

// Config is the on-disk configuration. Zero fields take defaults.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Engine   EngineConfig   `yaml:"engine"`
	Doors    DoorsConfig    `yaml:"doors"`
	Theme    ThemeConfig    `yaml:"theme"`
	Sound    SoundConfig    `yaml:"sound"`
	Terminal TerminalConfig `yaml:"terminal"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

// EngineConfig mirrors chute.Params; colours are "#rrggbb" strings.
type EngineConfig struct {
	LerpFactor    float64 `yaml:"lerpFactor"`
	SnapEpsilon   float64 `yaml:"snapEpsilon"`
	TunnelSpeed   float64 `yaml:"tunnelSpeed"`
	RingCount     int     `yaml:"ringCount"`
	BaseRings     int     `yaml:"baseRings"`
	MinGap        float64 `yaml:"minGap"`
	CornerRadius  float64 `yaml:"cornerRadius"`
	RingLineWidth float64 `yaml:"ringLineWidth"`
	OffAlpha      float64 `yaml:"offAlpha"`
	ParticleCount int     `yaml:"particleCount"`
	SpawnRate     float64 `yaml:"spawnRate"`
	ParticleScale float64 `yaml:"particleScale"`
	Direction     string  `yaml:"direction"`

	Background  string `yaml:"background"`
	Glow        string `yaml:"glow"`
	ParticleIn  string `yaml:"particleIn"`
	ParticleOut string `yaml:"particleOut"`
}

type DoorsConfig struct {
	// Target and Progress are pointers so an explicit 0 survives defaults.
	Target      *int     `yaml:"target"`
	Progress    *float64 `yaml:"progress"`
	OpenOnStart *bool    `yaml:"openOnStart"`
}

type ThemeConfig struct {
	Mode  string        `yaml:"mode"`
	Light theme.Palette `yaml:"light"`
	Dark  theme.Palette `yaml:"dark"`
}

type SoundConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Frequency float64 `yaml:"frequency"`
	Volume    float64 `yaml:"volume"`
}

type TerminalConfig struct {
	FPS int `yaml:"fps"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads a YAML configuration file. An empty path yields Default().
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid config in %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML data, fills defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	applyDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	p := chute.DefaultParams()

	if cfg.Window.Width == 0 {
		cfg.Window.Width = WindowWidth
	}
	if cfg.Window.Height == 0 {
		cfg.Window.Height = WindowHeight
	}
	if cfg.Window.Title == "" {
		cfg.Window.Title = WindowTitle
	}
	if cfg.Window.TPS == 0 {
		cfg.Window.TPS = TicksPerSec
	}

	e := &cfg.Engine
	setFloat(&e.LerpFactor, p.LerpFactor)
	setFloat(&e.SnapEpsilon, p.SnapEpsilon)
	setFloat(&e.TunnelSpeed, p.TunnelSpeed)
	setInt(&e.RingCount, p.RingCount)
	setInt(&e.BaseRings, p.BaseRings)
	setFloat(&e.MinGap, p.MinGap)
	setFloat(&e.CornerRadius, p.CornerRadius)
	setFloat(&e.RingLineWidth, p.RingLineWidth)
	setFloat(&e.OffAlpha, p.OffAlpha)
	setInt(&e.ParticleCount, p.ParticleCount)
	setFloat(&e.SpawnRate, p.SpawnRate)
	setFloat(&e.ParticleScale, p.ParticleScale)
	if e.Direction == "" {
		e.Direction = string(chute.In)
	}
	setString(&e.Background, hex(p.Background))
	setString(&e.Glow, hex(p.Glow))
	setString(&e.ParticleIn, hex(p.ParticleIn))
	setString(&e.ParticleOut, hex(p.ParticleOut))

	if cfg.Doors.Target == nil {
		t := int(chute.DoorClosed)
		cfg.Doors.Target = &t
	}
	if cfg.Doors.Progress == nil {
		pr := 1.0
		cfg.Doors.Progress = &pr
	}
	if cfg.Doors.OpenOnStart == nil {
		open := true
		cfg.Doors.OpenOnStart = &open
	}

	if cfg.Theme.Mode == "" {
		cfg.Theme.Mode = string(theme.Light)
	}
	if cfg.Theme.Light == nil {
		cfg.Theme.Light = theme.DefaultLight()
	}
	if cfg.Theme.Dark == nil {
		cfg.Theme.Dark = theme.DefaultDark()
	}

	setFloat(&cfg.Sound.Frequency, HumFrequency)
	setFloat(&cfg.Sound.Volume, HumVolume)

	setInt(&cfg.Terminal.FPS, TerminalFPS)
}

func validate(cfg *Config) error {
	if cfg.Window.Width < 0 || cfg.Window.Height < 0 || cfg.Window.TPS < 0 {
		return errors.New("window dimensions and tps must not be negative")
	}
	if _, err := chute.ParseDirection(cfg.Engine.Direction); err != nil {
		return err
	}
	if _, err := theme.ParseMode(cfg.Theme.Mode); err != nil {
		return err
	}
	if t := *cfg.Doors.Target; t != 0 && t != 1 {
		return fmt.Errorf("door target must be 0 or 1, got %d", t)
	}
	if pr := *cfg.Doors.Progress; pr < 0 || pr > 1 {
		return fmt.Errorf("door progress %v out of range [0, 1]", pr)
	}
	if cfg.Sound.Volume < 0 || cfg.Sound.Volume > 1 {
		return fmt.Errorf("sound volume %v out of range [0, 1]", cfg.Sound.Volume)
	}
	if cfg.Terminal.FPS < 0 {
		return fmt.Errorf("terminal fps must not be negative, got %d", cfg.Terminal.FPS)
	}
	if _, err := cfg.EngineParams(); err != nil {
		return err
	}
	return nil
}

// EngineParams converts the engine section into chute.Params.
func (c *Config) EngineParams() (chute.Params, error) {
	p := chute.DefaultParams()
	e := c.Engine
	p.LerpFactor = e.LerpFactor
	p.SnapEpsilon = e.SnapEpsilon
	p.TunnelSpeed = e.TunnelSpeed
	p.RingCount = e.RingCount
	p.BaseRings = e.BaseRings
	p.MinGap = e.MinGap
	p.CornerRadius = e.CornerRadius
	p.RingLineWidth = e.RingLineWidth
	p.OffAlpha = e.OffAlpha
	p.ParticleCount = e.ParticleCount
	p.SpawnRate = e.SpawnRate
	p.ParticleScale = e.ParticleScale

	colours := []struct {
		name string
		src  string
		dst  *color.NRGBA
	}{
		{"background", e.Background, &p.Background},
		{"glow", e.Glow, &p.Glow},
		{"particleIn", e.ParticleIn, &p.ParticleIn},
		{"particleOut", e.ParticleOut, &p.ParticleOut},
	}
	for _, c := range colours {
		v, err := chute.ParseHex(c.src)
		if err != nil {
			return p, fmt.Errorf("engine.%s: %w", c.name, err)
		}
		*c.dst = v
	}

	if err := p.Validate(); err != nil {
		return p, fmt.Errorf("engine: %w", err)
	}
	return p, nil
}

// EngineOptions returns the initial door and direction settings.
func (c *Config) EngineOptions() []chute.Option {
	dir, err := chute.ParseDirection(c.Engine.Direction)
	if err != nil {
		dir = chute.In
	}
	return []chute.Option{
		chute.WithDirection(dir),
		chute.WithDoor(chute.DoorTarget(*c.Doors.Target), *c.Doors.Progress),
	}
}

// OpenOnStart reports whether the doors should open once the engine starts.
func (c *Config) OpenOnStart() bool {
	return c.Doors.OpenOnStart != nil && *c.Doors.OpenOnStart
}

// ThemeProvider builds the theme provider described by the theme section.
func (c *Config) ThemeProvider() *theme.Provider {
	mode, err := theme.ParseMode(c.Theme.Mode)
	if err != nil {
		mode = theme.Light
	}
	return theme.New(mode, c.Theme.Light, c.Theme.Dark)
}

func setFloat(v *float64, def float64) {
	if *v == 0 {
		*v = def
	}
}

func setInt(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}

func setString(v *string, def string) {
	if *v == "" {
		*v = def
	}
}

func hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
