// Package encode builds and executes the external encoder commands planned
// by the planner package.
package encode

import (
	"fmt"
	"strconv"

	"github.com/pixelfold/webpick/internal/config"
	"github.com/pixelfold/webpick/internal/planner"
)

// Build constructs the complete argument slice (including the command name)
// for one planned step.
//
// pngquant gets no explicit output flag: its default "-fs8.png" suffix
// matches the candidate path the naming package derives. The converter
// argument order (input, options, output) works for both the "magick" and
// legacy "convert" entry points.
func Build(cfg *config.Config, plan *planner.Plan, step planner.Step) []string {
	switch step.Target {
	case planner.TargetPNG:
		return []string{
			step.Tool, "--force",
			"--quality", fmt.Sprintf("%d-%d", cfg.PNGQualityMin, cfg.PNGQualityMax),
			"--", plan.InputPath,
		}

	case planner.TargetJPEG:
		return []string{
			step.Tool, plan.InputPath,
			"-quality", strconv.Itoa(cfg.JPEGQuality),
			step.OutputPath,
		}

	case planner.TargetWEBP:
		args := []string{step.Tool, "-q", strconv.Itoa(cfg.WebPQuality)}
		if !cfg.Verbose {
			args = append(args, "-quiet")
		}
		return append(args, plan.InputPath, "-o", step.OutputPath)

	case planner.TargetAVIF:
		if step.Fallback {
			return []string{
				step.Tool, plan.InputPath,
				"-quality", strconv.Itoa(cfg.AvifFallbackQuality),
				step.OutputPath,
			}
		}
		return []string{
			step.Tool,
			"-q", strconv.Itoa(cfg.AvifQuality),
			"-s", strconv.Itoa(cfg.AvifSpeed),
			plan.InputPath, step.OutputPath,
		}
	}
	return nil
}
