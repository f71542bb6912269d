// Package check provides encoder diagnostics (--check mode) and pre-pipeline
// dependency validation for pngquant, cwebp, avifenc, and the ImageMagick
// converter.
package check

import (
	"errors"
	"os/exec"
	"strings"
)

// Sentinel errors returned by CheckDeps when a required encoder is missing.
var (
	ErrPngquantNotFound = errors.New("pngquant not found on PATH")
	ErrCwebpNotFound    = errors.New("cwebp not found on PATH")
)

// Tools records which external encoders are resolvable on PATH. It is built
// once at startup by [Resolve] and treated as immutable afterwards.
type Tools struct {
	Pngquant bool
	Cwebp    bool
	Avifenc  bool

	// Converter is the resolved raster converter command ("magick" or the
	// legacy "convert" name), or empty when neither is on PATH. It encodes
	// JPEG and serves as the AVIF fallback.
	Converter string
}

// Resolve looks up every encoder once and returns the availability set.
func Resolve() Tools {
	return Tools{
		Pngquant:  onPath("pngquant"),
		Cwebp:     onPath("cwebp"),
		Avifenc:   onPath("avifenc"),
		Converter: resolveConverter(),
	}
}

// CanAvif reports whether any AVIF path is available (dedicated encoder or
// converter fallback).
func (t Tools) CanAvif() bool {
	return t.Avifenc || t.Converter != ""
}

// CheckDeps is the pre-pipeline validation: pngquant and cwebp are required;
// everything else degrades gracefully. Returns a sentinel error on failure.
func CheckDeps(t Tools) error {
	if !t.Pngquant {
		return ErrPngquantNotFound
	}
	if !t.Cwebp {
		return ErrCwebpNotFound
	}
	return nil
}

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck runs the interactive --check flow: prints availability and version
// of each encoder. Returns false when a required encoder is missing.
func RunCheck(log Logger) bool {
	log.Info("=== Encoder Check ===")

	ok := checkTool(log, "pngquant", []string{"--version"}, true)
	ok = checkTool(log, "cwebp", []string{"-version"}, true) && ok

	checkTool(log, "avifenc", []string{"--version"}, false)

	if conv := resolveConverter(); conv != "" {
		reportVersion(log, conv, []string{"-version"})
	} else {
		log.Warn("magick/convert not found (JPEG step and AVIF fallback unavailable)")
	}

	if !ok {
		log.Error("Required encoders missing")
	}
	return ok
}

// checkTool verifies the tool is on PATH and logs its version line.
// Required tools log an error when missing; optional ones a warning.
func checkTool(log Logger, name string, versionArgs []string, required bool) bool {
	if !onPath(name) {
		if required {
			log.Error("%s not found (required)", name)
		} else {
			log.Warn("%s not found (optional)", name)
		}
		return false
	}
	reportVersion(log, name, versionArgs)
	return true
}

// reportVersion runs the tool's version command and logs the first line.
// Version banners land on stdout or stderr depending on the tool, so both
// are combined.
func reportVersion(log Logger, name string, args []string) {
	out, err := exec.Command(name, args...).CombinedOutput()
	if err != nil {
		log.Warn("%s found but version query failed: %v", name, err)
		return
	}
	log.Success("%s: %s", name, firstLine(string(out)))
}

// firstLine returns s up to the first newline, trimmed.
func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.Index(s, "\n"); idx > 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}

// resolveConverter returns the first available raster converter command,
// preferring the ImageMagick 7 "magick" entry point over the legacy name.
func resolveConverter() string {
	for _, name := range []string{"magick", "convert"} {
		if onPath(name) {
			return name
		}
	}
	return ""
}

// onPath reports whether the named command resolves via PATH lookup.
func onPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
