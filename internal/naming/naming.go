// Package naming derives output paths for the conversion targets and
// validates the input argument.
package naming

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputSet holds the derived output paths for one input image. All paths
// live in the input's directory and share the input's basename.
type OutputSet struct {
	Base string // basename without extension, e.g. "photo"
	Dir  string // input's directory

	Candidate string // quantized PNG candidate (B-fs8.png), kept only if smaller
	JPEG      string // B.jpg
	WEBP      string // B.webp
	AVIF      string // B.avif
}

// Outputs builds the OutputSet for inputPath. The candidate name matches
// pngquant's default "-fs8" suffix so the quantizer writes it without an
// explicit output flag.
func Outputs(inputPath string) OutputSet {
	dir := filepath.Dir(inputPath)
	base := filepath.Base(inputPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	return OutputSet{
		Base:      base,
		Dir:       dir,
		Candidate: filepath.Join(dir, base+"-fs8.png"),
		JPEG:      filepath.Join(dir, base+".jpg"),
		WEBP:      filepath.Join(dir, base+".webp"),
		AVIF:      filepath.Join(dir, base+".avif"),
	}
}

// ValidateInput checks the input argument: non-empty, an existing regular
// file, with a .png extension (case-insensitive).
func ValidateInput(path string) error {
	if path == "" {
		return fmt.Errorf("missing input file argument")
	}

	fi, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("input file not found: %s", path)
	}
	if !fi.Mode().IsRegular() {
		return fmt.Errorf("input is not a regular file: %s", path)
	}

	if ext := strings.ToLower(filepath.Ext(path)); ext != ".png" {
		return fmt.Errorf("input must be a .png file (got %q)", filepath.Base(path))
	}
	return nil
}
