// Package pipeline orchestrates one conversion run: input validation, the
// fixed encoder sequence (PNG quantization, JPEG, WEBP, AVIF), and snippet
// emission.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pixelfold/webpick/internal/check"
	"github.com/pixelfold/webpick/internal/config"
	"github.com/pixelfold/webpick/internal/display"
	"github.com/pixelfold/webpick/internal/encode"
	"github.com/pixelfold/webpick/internal/fsutil"
	"github.com/pixelfold/webpick/internal/logging"
	"github.com/pixelfold/webpick/internal/naming"
	"github.com/pixelfold/webpick/internal/planner"
	"github.com/pixelfold/webpick/internal/probe"
	"github.com/pixelfold/webpick/internal/snippet"
)

// pngquant exits 99 when the result would fall below the minimum quality
// and 98 with --skip-if-larger; in both cases no candidate is written and
// the original is kept.
const (
	pngquantSkipLarger  = 98
	pngquantQualityMiss = 99
)

// Run executes the full conversion for cfg.InputPath: validate, probe, plan,
// run each step in order, emit snippets, and log the summary.
func Run(ctx context.Context, cfg *config.Config, tools check.Tools, log *logging.Logger) RunStats {
	var stats RunStats

	if err := naming.ValidateInput(cfg.InputPath); err != nil {
		log.Error("%v", err)
		stats.Failed++
		return stats
	}

	info, err := probe.Probe(cfg.InputPath)
	if err != nil {
		log.Error("Cannot read PNG header (possibly corrupt): %v", err)
		stats.Failed++
		return stats
	}
	stats.SourceBytes = info.Size

	log.Info("Source: %s (%s %s, %d-bit, %s)",
		filepath.Base(cfg.InputPath), info.Resolution(), info.ColorTypeName(),
		info.BitDepth, display.FormatBytes(info.Size))
	if !tools.CanAvif() && !cfg.SkipAvif {
		log.Warn("No AVIF encoder found; the AVIF variant will be skipped")
	}
	fmt.Println()

	plan := planner.BuildPlan(cfg, tools, cfg.InputPath)

	for _, step := range plan.Steps {
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			stats.Failed++
			break
		}
		stats.add(runStep(ctx, cfg, log, plan, step, info.Size))
	}

	emitSnippets(cfg, log, &stats, plan)
	logSummary(cfg, log, &stats)
	return stats
}

// runStep executes one planned step and classifies its outcome.
func runStep(
	ctx context.Context,
	cfg *config.Config,
	log *logging.Logger,
	plan *planner.Plan,
	step planner.Step,
	sourceBytes int64,
) StepResult {
	if step.Skip {
		log.Warn("%s: skipped (%s)", step.Target, step.SkipReason)
		return StepResult{Target: step.Target, Outcome: OutcomeSkipped, Reason: step.SkipReason}
	}
	if step.Tool == "" {
		reason := "no raster converter (magick or convert) on PATH"
		log.Error("%s: %s", step.Target, reason)
		return StepResult{Target: step.Target, Outcome: OutcomeFailed, Reason: reason}
	}

	argv := encode.Build(cfg, plan, step)
	log.Debug(cfg.Verbose, "  $ %s", strings.Join(argv, " "))

	if cfg.DryRun {
		log.Success("[DRY] %s: would run: %s", step.Target, strings.Join(argv, " "))
		return StepResult{Target: step.Target, Outcome: OutcomeProduced, Reason: "dry run"}
	}

	res := encode.Execute(ctx, cfg.Verbose, argv)

	if step.Target == planner.TargetPNG {
		return finishPNG(log, plan, res, sourceBytes)
	}

	if res.Err != nil {
		log.Error("%s: %s failed: %v", step.Target, step.Tool, res.Err)
		logStderr(log, res.Stderr)
		// Some encoders leave a partial output behind on failure.
		_ = os.Remove(step.OutputPath)
		return StepResult{Target: step.Target, Outcome: OutcomeFailed, Reason: res.Err.Error()}
	}

	size, err := fsutil.FileSize(step.OutputPath)
	if err != nil {
		reason := fmt.Sprintf("%s reported success but wrote no output", step.Tool)
		log.Error("%s: %s", step.Target, reason)
		return StepResult{Target: step.Target, Outcome: OutcomeFailed, Reason: reason}
	}

	log.Success("%s: %s (%s, %d%% of source)",
		step.Target, filepath.Base(step.OutputPath),
		display.FormatBytes(size), display.PercentOf(size, sourceBytes))
	return StepResult{
		Target:     step.Target,
		Outcome:    OutcomeProduced,
		OutputPath: step.OutputPath,
		Bytes:      size,
	}
}

// finishPNG resolves the quantization step: keep the candidate only when it
// is strictly smaller than the source (ties favor the original). A quality
// miss from pngquant keeps the original and is not a failure.
func finishPNG(log *logging.Logger, plan *planner.Plan, res encode.ExecResult, sourceBytes int64) StepResult {
	keepOriginal := func(reason string) StepResult {
		_ = os.Remove(plan.Outputs.Candidate)
		log.Info("PNG: keeping original (%s)", reason)
		return StepResult{
			Target:     planner.TargetPNG,
			Outcome:    OutcomeProduced,
			OutputPath: plan.InputPath,
			Bytes:      sourceBytes,
		}
	}

	if res.Err != nil {
		switch res.ExitCode() {
		case pngquantQualityMiss:
			return keepOriginal("quantization fell below the quality floor")
		case pngquantSkipLarger:
			return keepOriginal("quantized candidate was larger")
		}
		log.Error("PNG: pngquant failed: %v", res.Err)
		logStderr(log, res.Stderr)
		_ = os.Remove(plan.Outputs.Candidate)
		return StepResult{Target: planner.TargetPNG, Outcome: OutcomeFailed, Reason: res.Err.Error()}
	}

	candBytes, err := fsutil.FileSize(plan.Outputs.Candidate)
	if err != nil {
		reason := "pngquant reported success but wrote no candidate"
		log.Error("PNG: %s", reason)
		return StepResult{Target: planner.TargetPNG, Outcome: OutcomeFailed, Reason: reason}
	}

	if candBytes >= sourceBytes {
		return keepOriginal(fmt.Sprintf("quantized candidate not smaller: %s vs %s",
			display.FormatBytes(candBytes), display.FormatBytes(sourceBytes)))
	}

	log.Success("PNG: %s (%s, %d%% of source)",
		filepath.Base(plan.Outputs.Candidate),
		display.FormatBytes(candBytes), display.PercentOf(candBytes, sourceBytes))
	return StepResult{
		Target:     planner.TargetPNG,
		Outcome:    OutcomeProduced,
		OutputPath: plan.Outputs.Candidate,
		Bytes:      candBytes,
	}
}

// emitSnippets prints the HTML and CSS snippets when the universal variants
// (JPEG and WEBP) were produced. AVIF entries appear only when the AVIF
// file exists.
func emitSnippets(cfg *config.Config, log *logging.Logger, stats *RunStats, plan *planner.Plan) {
	if cfg.DryRun {
		return
	}

	jpeg := stats.Result(planner.TargetJPEG)
	webp := stats.Result(planner.TargetWEBP)
	if jpeg == nil || jpeg.Outcome != OutcomeProduced ||
		webp == nil || webp.Outcome != OutcomeProduced {
		log.Warn("Skipping snippet output (JPEG or WEBP variant missing)")
		return
	}

	avif := stats.Result(planner.TargetAVIF)
	d := snippet.Data{
		Base:        plan.Outputs.Base,
		IncludeAVIF: avif != nil && avif.Outcome == OutcomeProduced,
	}

	fmt.Println()
	log.Info("HTML <picture> snippet:")
	fmt.Println(snippet.Picture(d))
	log.Info("CSS image-set() snippet:")
	fmt.Println(snippet.ImageSet(d))
}

// logStderr logs the tail of an encoder's stderr for failure diagnosis.
func logStderr(log *logging.Logger, stderr string) {
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	const maxLines = 6
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	for _, line := range lines {
		if line != "" {
			log.Error("  %s", line)
		}
	}
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Info("Done: %d produced, %d skipped, %d failed", stats.Produced, stats.Skipped, stats.Failed)

	if cfg.DryRun {
		log.Info("  Variants written: none (dry run)")
		return
	}
	if stats.Produced == 0 {
		return
	}

	avg := stats.OutputBytes / int64(stats.Produced)
	log.Info("  Source size: %s", display.FormatBytes(stats.SourceBytes))
	log.Info("  Variants total: %s (average %s, %d%% of source)",
		display.FormatBytes(stats.OutputBytes),
		display.FormatBytes(avg),
		display.PercentOf(avg, stats.SourceBytes))
}
