// Package config loads and saves the settings of the biglist demo.
//
// Settings live in a TOML file at <profileDir>/biglist.toml unless a path is
// given explicitly. A missing or blank file yields Default().
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/miosa/osa-biglist/ui/biglist"
)

// Filename is the settings file inside a profile directory.
const Filename = "biglist.toml"

// ErrInvalidConfig is wrapped by every error returned from Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the demo settings.
type Config struct {
	// Theme names a style theme. Empty follows the terminal background.
	Theme string `toml:"theme"`
	// Title is markdown rendered as the list header. Empty means no header.
	Title      string           `toml:"title"`
	Collection CollectionConfig `toml:"collection"`
	Heights    HeightsConfig    `toml:"heights"`
	View       ViewConfig       `toml:"view"`
	Batching   BatchingConfig   `toml:"batching"`
}

// CollectionConfig is the shape of the generated data set.
type CollectionConfig struct {
	Sections []int `toml:"sections"`
	// Infinite appends a section of PageSize rows each time the end is
	// reached, up to MaxSections.
	Infinite    bool `toml:"infinite"`
	PageSize    int  `toml:"page_size"`
	MaxSections int  `toml:"max_sections"`
}

// HeightsConfig holds heights in terminal lines as numeric strings.
type HeightsConfig struct {
	Header        string `toml:"header"`
	Footer        string `toml:"footer"`
	SectionHeader string `toml:"section_header"`
	SectionFooter string `toml:"section_footer"`
	Item          string `toml:"item"`
	// ItemPattern, when set, overrides Item with heights cycled by item
	// index.
	ItemPattern []string `toml:"item_pattern"`
}

// ViewConfig controls rendering.
type ViewConfig struct {
	Columns              int     `toml:"columns"`
	InsetTop             float64 `toml:"inset_top"`
	InsetBottom          float64 `toml:"inset_bottom"`
	StickyHeaders        bool    `toml:"sticky_headers"`
	Scrollbar            bool    `toml:"scrollbar"`
	Placeholder          string  `toml:"placeholder"`
	AnimationMS          int     `toml:"animation_ms"`
	HideHeaderOnEmpty    bool    `toml:"hide_header_on_empty"`
	HideFooterOnEmpty    bool    `toml:"hide_footer_on_empty"`
	HideMarginalsOnEmpty bool    `toml:"hide_marginals_on_empty"`
}

// BatchingConfig tunes recomputation and end-reached detection.
type BatchingConfig struct {
	BatchSizeThreshold  float64 `toml:"batch_size_threshold"`
	EndReachedThreshold float64 `toml:"end_reached_threshold"`
}

// Default returns the settings used when no file exists.
func Default() Config {
	return Config{
		Title: "# biglist\n\nTen thousand rows, a few dozen drawn.",
		Collection: CollectionConfig{
			Sections:    []int{1000, 250, 0, 4000, 4750},
			PageSize:    500,
			MaxSections: 50,
		},
		Heights: HeightsConfig{
			Footer:        "1",
			SectionHeader: "1",
			SectionFooter: "1",
			Item:          "1",
		},
		View: ViewConfig{
			Columns:       1,
			StickyHeaders: true,
			Scrollbar:     true,
			Placeholder:   "·",
			AnimationMS:   200,
		},
		Batching: BatchingConfig{
			BatchSizeThreshold:  0.5,
			EndReachedThreshold: 0.5,
		},
	}
}

// Path returns the settings file of profileDir.
func Path(profileDir string) string {
	return filepath.Join(profileDir, Filename)
}

// Load reads path on top of Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if err := readTOML(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes cfg to path, creating the parent directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func readTOML(path string, out any) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	return toml.Unmarshal(data, out)
}

// Validate reports the first setting the demo cannot run with.
func (c Config) Validate() error {
	for i, rows := range c.Collection.Sections {
		if rows < 0 {
			return fmt.Errorf("%w: section %d has %d rows", ErrInvalidConfig, i, rows)
		}
	}
	if c.Collection.Infinite && c.Collection.PageSize <= 0 {
		return fmt.Errorf("%w: page_size must be positive when infinite", ErrInvalidConfig)
	}
	if _, err := c.Layout(); err != nil {
		return err
	}
	if c.View.Columns < 0 {
		return fmt.Errorf("%w: columns %d", ErrInvalidConfig, c.View.Columns)
	}
	if c.View.InsetTop < 0 || c.View.InsetBottom < 0 {
		return fmt.Errorf("%w: insets must not be negative", ErrInvalidConfig)
	}
	if c.View.AnimationMS < 0 {
		return fmt.Errorf("%w: animation_ms %d", ErrInvalidConfig, c.View.AnimationMS)
	}
	if c.Batching.BatchSizeThreshold < 0 || c.Batching.EndReachedThreshold < 0 {
		return fmt.Errorf("%w: thresholds must not be negative", ErrInvalidConfig)
	}
	return nil
}

// Layout converts the settings into an engine layout.
func (c Config) Layout() (biglist.Layout, error) {
	l := biglist.Layout{
		Sections:    append([]int(nil), c.Collection.Sections...),
		InsetTop:    c.View.InsetTop,
		InsetBottom: c.View.InsetBottom,
		NumColumns:  c.View.Columns,
	}
	fields := []struct {
		name string
		raw  string
		dst  *biglist.Height
	}{
		{"header", c.Heights.Header, &l.HeaderHeight},
		{"footer", c.Heights.Footer, &l.FooterHeight},
		{"section_header", c.Heights.SectionHeader, &l.SectionHeaderHeight},
		{"section_footer", c.Heights.SectionFooter, &l.SectionFooterHeight},
		{"item", c.Heights.Item, &l.ItemHeight},
	}
	for _, f := range fields {
		h, err := parseHeight(f.raw)
		if err != nil {
			return biglist.Layout{}, fmt.Errorf("%w: heights.%s: %w", ErrInvalidConfig, f.name, err)
		}
		*f.dst = h
	}

	if len(c.Heights.ItemPattern) > 0 {
		pattern := make([]float64, len(c.Heights.ItemPattern))
		for i, raw := range c.Heights.ItemPattern {
			h, err := parseHeight(raw)
			if err != nil {
				return biglist.Layout{}, fmt.Errorf("%w: heights.item_pattern[%d]: %w", ErrInvalidConfig, i, err)
			}
			pattern[i] = h.Resolve(0, 0)
		}
		l.ItemHeight = biglist.PerItem(func(_, index int) float64 {
			return pattern[index%len(pattern)]
		})
	}
	return l, nil
}

// parseHeight treats a blank value as zero and rejects negative heights.
func parseHeight(raw string) (biglist.Height, error) {
	if strings.TrimSpace(raw) == "" {
		return biglist.Fixed(0), nil
	}
	h, err := biglist.ParseHeight(raw)
	if err != nil {
		return biglist.Height{}, err
	}
	if h.Resolve(0, 0) < 0 {
		return biglist.Height{}, fmt.Errorf("%w: %q is negative", biglist.ErrInvalidHeight, raw)
	}
	return h, nil
}
