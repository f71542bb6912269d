package encode

import (
	"context"
	"os/exec"
	"reflect"
	"strings"
	"testing"

	"github.com/pixelfold/webpick/internal/check"
	"github.com/pixelfold/webpick/internal/config"
	"github.com/pixelfold/webpick/internal/planner"
)

func testPlan(t *testing.T, cfg *config.Config, tools check.Tools) *planner.Plan {
	t.Helper()
	return planner.BuildPlan(cfg, tools, "/img/photo.png")
}

func fullTools() check.Tools {
	return check.Tools{Pngquant: true, Cwebp: true, Avifenc: true, Converter: "magick"}
}

func TestBuild_PNG(t *testing.T) {
	cfg := config.DefaultConfig()
	plan := testPlan(t, &cfg, fullTools())

	got := Build(&cfg, plan, plan.Steps[0])
	want := []string{"pngquant", "--force", "--quality", "65-80", "--", "/img/photo.png"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Build(PNG) = %v, want %v", got, want)
	}
}

func TestBuild_PNG_CustomRange(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.PNGQualityMin, cfg.PNGQualityMax = 40, 60
	plan := testPlan(t, &cfg, fullTools())

	got := strings.Join(Build(&cfg, plan, plan.Steps[0]), " ")
	if !strings.Contains(got, "--quality 40-60") {
		t.Errorf("Build(PNG) = %q, want custom quality range", got)
	}
}

func TestBuild_JPEG(t *testing.T) {
	cfg := config.DefaultConfig()
	plan := testPlan(t, &cfg, fullTools())

	got := Build(&cfg, plan, plan.Steps[1])
	want := []string{"magick", "/img/photo.png", "-quality", "85", "/img/photo.jpg"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Build(JPEG) = %v, want %v", got, want)
	}
}

func TestBuild_WEBP(t *testing.T) {
	cfg := config.DefaultConfig()
	plan := testPlan(t, &cfg, fullTools())

	got := Build(&cfg, plan, plan.Steps[2])
	want := []string{"cwebp", "-q", "80", "-quiet", "/img/photo.png", "-o", "/img/photo.webp"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Build(WEBP) = %v, want %v", got, want)
	}
}

func TestBuild_WEBP_VerboseDropsQuiet(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Verbose = true
	plan := testPlan(t, &cfg, fullTools())

	for _, arg := range Build(&cfg, plan, plan.Steps[2]) {
		if arg == "-quiet" {
			t.Error("Build(WEBP) should omit -quiet in verbose mode")
		}
	}
}

func TestBuild_AVIF_Primary(t *testing.T) {
	cfg := config.DefaultConfig()
	plan := testPlan(t, &cfg, fullTools())

	got := Build(&cfg, plan, plan.Steps[3])
	want := []string{"avifenc", "-q", "60", "-s", "6", "/img/photo.png", "/img/photo.avif"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Build(AVIF) = %v, want %v", got, want)
	}
}

func TestBuild_AVIF_Fallback(t *testing.T) {
	cfg := config.DefaultConfig()
	tools := fullTools()
	tools.Avifenc = false
	plan := testPlan(t, &cfg, tools)

	got := Build(&cfg, plan, plan.Steps[3])
	want := []string{"magick", "/img/photo.png", "-quality", "50", "/img/photo.avif"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Build(AVIF fallback) = %v, want %v", got, want)
	}
}

func TestExecute_CapturesStderr(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	res := Execute(context.Background(), false, []string{"sh", "-c", "echo boom >&2; exit 3"})
	if res.Err == nil {
		t.Fatal("Execute should report the non-zero exit")
	}
	if !strings.Contains(res.Stderr, "boom") {
		t.Errorf("Stderr = %q, want to contain %q", res.Stderr, "boom")
	}
	if res.ExitCode() != 3 {
		t.Errorf("ExitCode() = %d, want 3", res.ExitCode())
	}
}

func TestExecute_Success(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	res := Execute(context.Background(), false, []string{"sh", "-c", "exit 0"})
	if res.Err != nil {
		t.Errorf("Execute unexpected error: %v", res.Err)
	}
	if res.ExitCode() != -1 {
		t.Errorf("ExitCode() on success = %d, want -1", res.ExitCode())
	}
}
