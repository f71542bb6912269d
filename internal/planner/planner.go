// Package planner turns the resolved tool availability and configuration
// into the fixed conversion sequence for one input file. Each step names
// the tool to invoke and the output it should produce; the encode package
// builds the actual argument lists.
package planner

import (
	"github.com/pixelfold/webpick/internal/check"
	"github.com/pixelfold/webpick/internal/config"
	"github.com/pixelfold/webpick/internal/naming"
)

// Target identifies one conversion output format.
type Target string

const (
	TargetPNG  Target = "PNG"
	TargetJPEG Target = "JPEG"
	TargetWEBP Target = "WEBP"
	TargetAVIF Target = "AVIF"
)

// Step describes one planned encoder invocation.
type Step struct {
	Target     Target
	Tool       string // command to invoke; empty means no tool is available
	OutputPath string

	// Fallback marks the AVIF step as using the raster converter instead
	// of avifenc (different quality parameter, see encode.Build).
	Fallback bool

	// Skip marks a step that is deliberately not attempted. Skipped steps
	// are not failures.
	Skip       bool
	SkipReason string
}

// Plan holds the complete conversion sequence for one input file.
type Plan struct {
	InputPath string
	Outputs   naming.OutputSet
	Steps     []Step
}

// BuildPlan derives the output set and the four conversion steps in their
// fixed order: PNG quantization first (its result feeds the size
// comparison), then JPEG, WEBP, and AVIF.
func BuildPlan(cfg *config.Config, tools check.Tools, inputPath string) *Plan {
	outs := naming.Outputs(inputPath)

	steps := []Step{
		{Target: TargetPNG, Tool: "pngquant", OutputPath: outs.Candidate},
		{Target: TargetJPEG, Tool: tools.Converter, OutputPath: outs.JPEG},
		{Target: TargetWEBP, Tool: "cwebp", OutputPath: outs.WEBP},
		avifStep(cfg, tools, outs),
	}

	return &Plan{
		InputPath: inputPath,
		Outputs:   outs,
		Steps:     steps,
	}
}

// avifStep selects the AVIF encoding path: avifenc when present, the raster
// converter as fallback, or a non-fatal skip.
func avifStep(cfg *config.Config, tools check.Tools, outs naming.OutputSet) Step {
	s := Step{Target: TargetAVIF, OutputPath: outs.AVIF}

	switch {
	case cfg.SkipAvif:
		s.Skip = true
		s.SkipReason = "disabled (--no-avif)"
	case tools.Avifenc:
		s.Tool = "avifenc"
	case tools.Converter != "":
		s.Tool = tools.Converter
		s.Fallback = true
	default:
		s.Skip = true
		s.SkipReason = "no AVIF encoder on PATH (avifenc or magick/convert)"
	}
	return s
}
