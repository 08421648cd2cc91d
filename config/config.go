// Package config loads installation settings from a TOML file with SWARM_ environment overrides
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/swarm-installation/installation"
	"github.com/lixenwraith/swarm-installation/parameter"
	"github.com/lixenwraith/swarm-installation/room"
	"github.com/lixenwraith/swarm-installation/scene"
	"github.com/lixenwraith/swarm-installation/seed"
	"github.com/lixenwraith/swarm-installation/vmath"
)

// EnvPrefix namespaces environment overrides, SWARM_INSTALLATION_COUNT sets installation.count
const EnvPrefix = "SWARM"

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the complete runtime configuration
type Config struct {
	Installation InstallationConfig `mapstructure:"installation"`
	Scene        SceneConfig        `mapstructure:"scene"`
	Engine       EngineConfig       `mapstructure:"engine"`
	Audio        AudioConfig        `mapstructure:"audio"`
	Metrics      MetricsConfig      `mapstructure:"metrics"`
}

type InstallationConfig struct {
	Count         int           `mapstructure:"count"`
	Parent        []float64     `mapstructure:"parent"`
	Normalization string        `mapstructure:"normalization"`
	Windows       WindowsConfig `mapstructure:"windows"`
}

type WindowsConfig struct {
	Shape    seed.Window `mapstructure:"shape"`
	Motion   seed.Window `mapstructure:"motion"`
	Color    seed.Window `mapstructure:"color"`
	Ambience seed.Window `mapstructure:"ambience"`
}

type SceneConfig struct {
	Revisit  string         `mapstructure:"revisit"`
	Snapshot SnapshotConfig `mapstructure:"snapshot"`
}

// SnapshotConfig picks the restore store, Path is only read by the sqlite driver
type SnapshotConfig struct {
	Driver string `mapstructure:"driver"`
	Path   string `mapstructure:"path"`
}

type EngineConfig struct {
	FrameRate int `mapstructure:"frame_rate"`
}

type AudioConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// MetricsConfig enables the Prometheus endpoint when Addr is set
type MetricsConfig struct {
	Addr string `mapstructure:"addr"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("installation.count", parameter.EntityCount)
	v.SetDefault("installation.parent", []float64{parameter.ParentX, parameter.ParentY, parameter.ParentZ})
	v.SetDefault("installation.normalization", seed.NormalizeParsedWidth.String())

	windows := map[string]seed.Window{
		"shape":    seed.ShapeWindow,
		"motion":   seed.MotionWindow,
		"color":    seed.ColorWindow,
		"ambience": seed.AmbienceWindow,
	}
	for name, w := range windows {
		v.SetDefault("installation.windows."+name+".start", w.Start)
		v.SetDefault("installation.windows."+name+".end", w.End)
	}

	v.SetDefault("scene.revisit", scene.Regenerate.String())
	v.SetDefault("scene.snapshot.driver", "memory")
	v.SetDefault("scene.snapshot.path", "")
	v.SetDefault("engine.frame_rate", parameter.FrameRate)
	v.SetDefault("audio.enabled", true)
	v.SetDefault("metrics.addr", "")
}

// Default returns the built-in configuration
func Default() Config {
	cfg, err := decode(newViper())
	if err != nil {
		// Defaults are static, a decode failure is a programming error
		panic(err)
	}
	return cfg
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Load reads path over the defaults, an empty path uses defaults and environment only
func Load(path string) (Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg, err := decode(v)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and enumerations, every failure wraps ErrInvalid
func (c Config) Validate() error {
	if c.Installation.Count <= 0 {
		return fmt.Errorf("%w: installation.count must be positive, got %d", ErrInvalid, c.Installation.Count)
	}
	if len(c.Installation.Parent) != 3 {
		return fmt.Errorf("%w: installation.parent needs 3 components, got %d", ErrInvalid, len(c.Installation.Parent))
	}
	if _, err := seed.ParseNormalization(c.Installation.Normalization); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	w := c.Installation.Windows
	for name, win := range map[string]seed.Window{"shape": w.Shape, "motion": w.Motion, "color": w.Color, "ambience": w.Ambience} {
		if win.Start < 0 || win.End <= win.Start || win.End > room.IDLength {
			return fmt.Errorf("%w: installation.windows.%s [%d,%d) outside the identity", ErrInvalid, name, win.Start, win.End)
		}
	}
	if _, err := scene.ParseRevisit(c.Scene.Revisit); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	switch c.Scene.Snapshot.Driver {
	case "memory", "sqlite":
	default:
		return fmt.Errorf("%w: unknown snapshot driver %q", ErrInvalid, c.Scene.Snapshot.Driver)
	}
	if c.Engine.FrameRate <= 0 || c.Engine.FrameRate > 240 {
		return fmt.Errorf("%w: engine.frame_rate %d out of range (1-240)", ErrInvalid, c.Engine.FrameRate)
	}
	return nil
}

// ToInstallation converts the installation section
func (c Config) ToInstallation() (installation.Config, error) {
	if err := c.Validate(); err != nil {
		return installation.Config{}, err
	}
	norm, _ := seed.ParseNormalization(c.Installation.Normalization)
	p := c.Installation.Parent
	w := c.Installation.Windows
	return installation.Config{
		Count:         c.Installation.Count,
		Parent:        vmath.V3(p[0], p[1], p[2]),
		Normalization: norm,
		Windows: installation.Windows{
			Shape:    w.Shape,
			Motion:   w.Motion,
			Color:    w.Color,
			Ambience: w.Ambience,
		},
	}, nil
}

// Revisit returns the parsed revisit policy
func (c Config) Revisit() scene.Revisit {
	r, err := scene.ParseRevisit(c.Scene.Revisit)
	if err != nil {
		return scene.Regenerate
	}
	return r
}

// FrameInterval is the wall time between frames
func (c Config) FrameInterval() time.Duration {
	if c.Engine.FrameRate <= 0 {
		return parameter.FrameInterval
	}
	return time.Second / time.Duration(c.Engine.FrameRate)
}
