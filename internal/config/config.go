// Package config holds runtime configuration: defaults, CLI flag parsing,
// and validation. All encoder defaults match the legacy shell script for
// parity.
package config

import (
	"errors"
	"fmt"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Input (set from the positional arg).
	InputPath string

	// Palette quantizer (pngquant).
	PNGQualityMin int // Default: 65.
	PNGQualityMax int // Default: 80.

	// Encoder qualities.
	JPEGQuality         int // Default: 85. magick/convert -quality.
	WebPQuality         int // Default: 80. cwebp -q.
	AvifQuality         int // Default: 60. avifenc -q.
	AvifSpeed           int // Default: 6. avifenc -s (0 slowest .. 10 fastest).
	AvifFallbackQuality int // Default: 50. magick -quality when avifenc is missing.

	// Behavior flags.
	SkipAvif bool // --no-avif: never attempt AVIF generation.
	DryRun   bool

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with all defaults matching the legacy
// script's fixed encoder settings. Used as the base before [ParseFlags]
// applies CLI overrides.
func DefaultConfig() Config {
	return Config{
		PNGQualityMin:       65,
		PNGQualityMax:       80,
		JPEGQuality:         85,
		WebPQuality:         80,
		AvifQuality:         60,
		AvifSpeed:           6,
		AvifFallbackQuality: 50,
		SkipAvif:            false,
		DryRun:              false,
		Verbose:             false,
		ColorMode:           ColorAuto,
		CheckOnly:           false,
	}
}

// Validate checks quality bounds and the color mode enum. When not in
// CheckOnly mode, it also requires a non-empty input path.
func (c *Config) Validate() error {
	if err := checkRange("PNG quality min", c.PNGQualityMin, 0, 100); err != nil {
		return err
	}
	if err := checkRange("PNG quality max", c.PNGQualityMax, 0, 100); err != nil {
		return err
	}
	if c.PNGQualityMin > c.PNGQualityMax {
		return fmt.Errorf("PNG quality range is inverted (%d-%d)", c.PNGQualityMin, c.PNGQualityMax)
	}
	if err := checkRange("JPEG quality", c.JPEGQuality, 1, 100); err != nil {
		return err
	}
	if err := checkRange("WEBP quality", c.WebPQuality, 0, 100); err != nil {
		return err
	}
	if err := checkRange("AVIF quality", c.AvifQuality, 0, 100); err != nil {
		return err
	}
	if err := checkRange("AVIF fallback quality", c.AvifFallbackQuality, 1, 100); err != nil {
		return err
	}
	if err := checkRange("AVIF speed", c.AvifSpeed, 0, 10); err != nil {
		return err
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.CheckOnly {
		return nil
	}
	if c.InputPath == "" {
		return errors.New("need exactly one input file (.png)")
	}
	return nil
}

// checkRange returns an error when v is outside [min, max].
func checkRange(name string, v, min, max int) error {
	if v < min || v > max {
		return fmt.Errorf("%s must be between %d and %d (got %d)", name, min, max, v)
	}
	return nil
}
