// Package config loads CLI configuration from TOML files and environment
// variables.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	textchunk "github.com/nvalent/textchunk"
)

type Config struct {
	Chunker  ChunkerConfig  `toml:"chunker"`
	Observer ObserverConfig `toml:"observer"`
}

type ChunkerConfig struct {
	// Kind selects the chunker: window, recursive, markdown, or snapping.
	Kind    string `toml:"kind"`
	Size    int    `toml:"size"`
	Overlap int    `toml:"overlap"`

	// Delims overrides the delimiter hierarchy for recursive chunkers.
	Delims []string `toml:"delims"`

	// Sentence delimiter and skip patterns for the snapping chunker.
	Delimiter   string   `toml:"delimiter"`
	SkipForward []string `toml:"skip_forward"`
	SkipBack    []string `toml:"skip_back"`
}

type ObserverConfig struct {
	Enabled bool   `toml:"enabled"`
	Service string `toml:"service"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Chunker: ChunkerConfig{
			Kind:    "recursive",
			Size:    textchunk.DefaultSize,
			Overlap: textchunk.DefaultOverlap,
		},
		Observer: ObserverConfig{Service: "textchunk"},
	}
}

// Load reads config: defaults, then TOML file, then env vars (env wins).
func Load(path string) Config {
	cfg := Default()

	if path == "" {
		path = "textchunk.toml"
	}

	if data, err := os.ReadFile(path); err == nil {
		_ = toml.Unmarshal(data, &cfg)
	}

	// Env overrides
	if v := os.Getenv("TEXTCHUNK_CHUNKER"); v != "" {
		cfg.Chunker.Kind = v
	}
	if v := os.Getenv("TEXTCHUNK_OBSERVER_ENABLED"); v == "true" || v == "1" {
		cfg.Observer.Enabled = true
	}
	if v := os.Getenv("TEXTCHUNK_SERVICE"); v != "" {
		cfg.Observer.Service = v
	}

	return cfg
}

// Chunker builds the configured chunker.
func (c ChunkerConfig) Chunker() (textchunk.Chunker, error) {
	size := c.Size
	if size == 0 {
		size = textchunk.DefaultSize
	}

	// Byte-overlap chunkers default to half the chunk size.
	switch c.Kind {
	case "", "recursive":
		return textchunk.NewRecursive(size, c.overlapOr(size/2), c.Delims)
	case "markdown":
		return textchunk.MarkdownRecursive(size, c.overlapOr(size/2))
	case "window":
		return textchunk.NewSlidingWindow(size, c.overlapOr(size/2))
	case "snapping":
		var opts []textchunk.SnapOption
		if c.Delimiter != "" {
			opts = append(opts, textchunk.WithDelimiter([]rune(c.Delimiter)[0]))
		}
		if len(c.SkipForward) > 0 {
			opts = append(opts, textchunk.WithSkipForward(c.SkipForward...))
		}
		if len(c.SkipBack) > 0 {
			opts = append(opts, textchunk.WithSkipBack(c.SkipBack...))
		}
		return textchunk.NewSnappingSlidingWindow(size, c.overlapOr(textchunk.DefaultSentenceOverlap), opts...)
	default:
		return nil, fmt.Errorf("unknown chunker kind %q", c.Kind)
	}
}

func (c ChunkerConfig) overlapOr(def int) int {
	if c.Overlap == 0 {
		return def
	}
	return c.Overlap
}
