package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into encoding, behavior, display, and utility.
// Negated flags (e.g. --no-avif) are applied after Parse so Config defaults
// hold unless set.

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ParseFlags parses os.Args into cfg. On --help or --version it prints and
// exits. On error it returns non-nil (e.g. unknown flag, missing positional
// arg).
func ParseFlags(cfg *Config, version string) error {
	fs := flag.NewFlagSet("webpick", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs, version) }

	// Negated/override flags: we capture bools then apply to cfg after Parse,
	// so that defaults from DefaultConfig() hold unless the user passes the flag.
	var negated negatedFlags

	defineEncodingFlags(fs, cfg, &negated)
	defineBehaviorFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &negated)
	defineUtilityFlags(fs, &negated)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	applyNegatedFlags(cfg, &negated)

	if negated.showHelp {
		printUsage(fs, version)
		os.Exit(0)
	}
	if negated.showVersion {
		fmt.Fprintln(os.Stdout, "webpick v"+version)
		os.Exit(0)
	}

	return parsePositionalArgs(fs, cfg)
}

// negatedFlags holds boolean flags that are applied after Parse.
// These either invert a default (e.g. noAvif -> SkipAvif=true) or trigger
// exit (showHelp, showVersion).
type negatedFlags struct {
	noAvif      bool
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineEncodingFlags registers the per-target quality flags.
func defineEncodingFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.Var(&qualityRangeValue{&cfg.PNGQualityMin, &cfg.PNGQualityMax}, "png-quality",
		"pngquant quality range, min-max")
	fs.IntVar(&cfg.JPEGQuality, "jpeg-quality", cfg.JPEGQuality, "JPEG quality (1-100)")
	fs.IntVar(&cfg.WebPQuality, "webp-quality", cfg.WebPQuality, "WEBP quality (0-100)")
	fs.IntVar(&cfg.AvifQuality, "avif-quality", cfg.AvifQuality, "avifenc quality (0-100)")
	fs.IntVar(&cfg.AvifSpeed, "avif-speed", cfg.AvifSpeed, "avifenc speed (0-10)")
	fs.IntVar(&cfg.AvifFallbackQuality, "avif-fallback-quality", cfg.AvifFallbackQuality,
		"Fallback converter AVIF quality (1-100)")
	fs.BoolVar(&n.noAvif, "no-avif", false, "Skip AVIF generation entirely")
}

// defineBehaviorFlags registers -d/--dry-run.
func defineBehaviorFlags(fs *flag.FlagSet, cfg *Config) {
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Preview commands; do not write files")
	fs.BoolVar(&cfg.DryRun, "d", false, "Same as --dry-run")
}

// defineDisplayFlags registers --color, --no-color, verbose, --check, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output (echo commands, encoder stderr)")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run encoder diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --version and --help (exit after printing).
func defineUtilityFlags(fs *flag.FlagSet, n *negatedFlags) {
	fs.BoolVar(&n.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&n.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&n.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as --help")
}

// applyNegatedFlags copies negated flag values into cfg (e.g. noAvif -> SkipAvif=true).
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noAvif {
		cfg.SkipAvif = true
	}
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs sets InputPath from the single positional arg when not
// in CheckOnly mode.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	if cfg.CheckOnly {
		return nil
	}
	if len(args) != 1 {
		return fmt.Errorf("need exactly one input file (.png)")
	}
	cfg.InputPath = args[0]
	return nil
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet, version string) {
	const col1 = 32 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "Webpick v" + version + " — web image variant generator"},
		{"", ""},
		{"  webpick [OPTIONS] <input.png>", ""},
		{"", ""},
		{"", "Converts one PNG into optimized web-delivery variants (quantized"},
		{"", "PNG, JPEG, WEBP, AVIF) and prints <picture> and image-set() snippets."},
		{"", ""},
		{"Encoding", ""},
		{"  --png-quality <min-max>", "pngquant quality range (default: 65-80)"},
		{"  --jpeg-quality <n>", "JPEG quality (default: 85)"},
		{"  --webp-quality <n>", "WEBP quality (default: 80)"},
		{"  --avif-quality <n>", "avifenc quality (default: 60)"},
		{"  --avif-speed <n>", "avifenc speed, 0-10 (default: 6)"},
		{"  --avif-fallback-quality <n>", "Converter AVIF quality (default: 50)"},
		{"  --no-avif", "Skip AVIF generation"},
		{"", ""},
		{"Output & behavior", ""},
		{"  -d, --dry-run", "Preview commands; do not write files"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "Encoder diagnostics (pngquant, cwebp, avifenc, magick)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

// qualityRangeValue is a flag.Value adapter for the pngquant "min-max"
// quality range. A single number sets both bounds.
type qualityRangeValue struct {
	min *int
	max *int
}

func (q *qualityRangeValue) String() string {
	if q.min == nil || q.max == nil {
		return ""
	}
	return fmt.Sprintf("%d-%d", *q.min, *q.max)
}

func (q *qualityRangeValue) Set(s string) error {
	lo, hi, ok := splitRange(strings.TrimSpace(s))
	if !ok {
		return fmt.Errorf("invalid quality range %q (use min-max, e.g. 65-80)", s)
	}
	*q.min = lo
	*q.max = hi
	return nil
}

// splitRange parses "min-max" or a bare number into quality bounds.
func splitRange(s string) (lo, hi int, ok bool) {
	if s == "" {
		return 0, 0, false
	}
	parts := strings.SplitN(s, "-", 2)
	lo, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false
	}
	if len(parts) == 1 {
		return lo, lo, true
	}
	hi, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, false
	}
	return lo, hi, true
}
