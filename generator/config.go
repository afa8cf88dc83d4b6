package generator

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pacmaze/rng"
)

// Size and budget limits.
const (
	MinWidth  = 12
	MinHeight = 12
)

// Bounds is the full map size.
type Bounds struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Span is a closed integer range. For Path a zero end means unbounded.
type Span struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

func (s Span) rng() rng.Range { return rng.Range{Min: s.Min, Max: s.Max} }

// PoolConfig controls how many builder pools carve the skeleton.
type PoolConfig struct {
	ManagerCount Span `yaml:"managerCount"`
}

// BuilderConfig controls a single builder's walk.
type BuilderConfig struct {
	TurnDistance Span `yaml:"turnDistance"`
}

// Constraints bound the attempt loop. Zero values mean "no limit".
type Constraints struct {
	MaxAttempts   int   `yaml:"maxAttempts"`
	MaxTimeMillis int64 `yaml:"maxTimeMillis"`
}

// Config is the complete generator input.
type Config struct {
	Bounds      Bounds        `yaml:"bounds"`
	Path        Span          `yaml:"path"`
	Teleporter  Span          `yaml:"teleporter"`
	BuilderPool PoolConfig    `yaml:"builderPool"`
	Builder     BuilderConfig `yaml:"builder"`
	Debug       bool          `yaml:"debug"`

	GenerationConstraints Constraints `yaml:"generationConstraints"`
}

// DefaultConfig returns the classic 28×31 arcade layout with no budget.
func DefaultConfig() Config {
	return Config{
		Bounds:      Bounds{Width: 28, Height: 31},
		Path:        Span{Min: 300},
		Teleporter:  Span{Min: 1, Max: 4},
		BuilderPool: PoolConfig{ManagerCount: Span{Min: 6, Max: 10}},
		Builder:     BuilderConfig{TurnDistance: Span{Min: 4, Max: 12}},
	}
}

// LoadConfig decodes a YAML document over DefaultConfig and validates it.
// Keys the Config does not declare are rejected. A path section replaces
// the default path bounds as a whole, so an omitted bound is unbounded.
func LoadConfig(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("LoadConfig: %w", err)
	}
	cfg := DefaultConfig()
	var top map[string]yaml.Node
	if yaml.Unmarshal(data, &top) == nil {
		if _, ok := top["path"]; ok {
			cfg.Path = Span{}
		}
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("LoadConfig: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// HasPathBounds reports whether both path bounds are set.
func (c Config) HasPathBounds() bool { return c.Path.Min > 0 && c.Path.Max > 0 }

// Validate returns the first rule c breaks as a *ConfigError, or nil.
func (c Config) Validate() error {
	w, h := c.Bounds.Width, c.Bounds.Height
	switch {
	case w < MinWidth:
		return configErrorf("bounds.width", "must be ≥ %d, got %d", MinWidth, w)
	case w%2 != 0:
		return configErrorf("bounds.width", "must be even, got %d", w)
	case h < MinHeight:
		return configErrorf("bounds.height", "must be ≥ %d, got %d", MinHeight, h)
	case h%2 == 0:
		return configErrorf("bounds.height", "must be odd, got %d", h)
	}

	cells := w * h
	switch {
	case c.Path.Min < 0 || c.Path.Max < 0:
		return configErrorf("path", "bounds must be ≥ 0, got [%d,%d]", c.Path.Min, c.Path.Max)
	case 2*c.Path.Min >= cells:
		return configErrorf("path.min", "must be < %d, got %d", cells/2, c.Path.Min)
	case 2*c.Path.Max >= cells:
		return configErrorf("path.max", "must be < %d, got %d", cells/2, c.Path.Max)
	case c.HasPathBounds() && c.Path.Min >= c.Path.Max:
		return configErrorf("path", "min must be < max, got [%d,%d]", c.Path.Min, c.Path.Max)
	}

	t := c.Teleporter
	switch {
	case t.Min < 0:
		return configErrorf("teleporter.min", "must be ≥ 0, got %d", t.Min)
	case t.Max < 1:
		return configErrorf("teleporter.max", "must be ≥ 1, got %d", t.Max)
	case 2*t.Max >= h:
		return configErrorf("teleporter.max", "must be < height/2, got %d", t.Max)
	case t.Min > t.Max:
		return configErrorf("teleporter", "min must be ≤ max, got [%d,%d]", t.Min, t.Max)
	}

	if err := validateSpan("builderPool.managerCount", c.BuilderPool.ManagerCount); err != nil {
		return err
	}
	if err := validateSpan("builder.turnDistance", c.Builder.TurnDistance); err != nil {
		return err
	}

	gc := c.GenerationConstraints
	if gc.MaxAttempts < 0 {
		return configErrorf("generationConstraints.maxAttempts", "must be ≥ 0, got %d", gc.MaxAttempts)
	}
	if gc.MaxTimeMillis < 0 {
		return configErrorf("generationConstraints.maxTimeMillis", "must be ≥ 0, got %d", gc.MaxTimeMillis)
	}
	return nil
}

func validateSpan(field string, s Span) error {
	if s.Min < 1 {
		return configErrorf(field+".min", "must be ≥ 1, got %d", s.Min)
	}
	if s.Max < 1 {
		return configErrorf(field+".max", "must be ≥ 1, got %d", s.Max)
	}
	if s.Min > s.Max {
		return configErrorf(field, "min must be ≤ max, got [%d,%d]", s.Min, s.Max)
	}
	return nil
}
