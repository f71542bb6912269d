package pipeline

import "github.com/pixelfold/webpick/internal/planner"

// Outcome classifies the result of one conversion step.
type Outcome int

const (
	OutcomeProduced Outcome = iota
	OutcomeSkipped
	OutcomeFailed
)

// StepResult records the outcome of one conversion step. For the PNG step,
// OutputPath is the final PNG (the quantized candidate when it won the size
// comparison, otherwise the original input).
type StepResult struct {
	Target     planner.Target
	Outcome    Outcome
	OutputPath string
	Bytes      int64
	Reason     string // skip or failure reason
}

// RunStats aggregates step results and byte totals for one conversion run.
type RunStats struct {
	Results []StepResult

	Produced int
	Skipped  int
	Failed   int

	SourceBytes int64
	OutputBytes int64
}

// add records a step result and updates the counters.
func (s *RunStats) add(r StepResult) {
	s.Results = append(s.Results, r)
	switch r.Outcome {
	case OutcomeProduced:
		s.Produced++
		s.OutputBytes += r.Bytes
	case OutcomeSkipped:
		s.Skipped++
	case OutcomeFailed:
		s.Failed++
	}
}

// Result returns the recorded result for target, or nil if the step never ran.
func (s *RunStats) Result(target planner.Target) *StepResult {
	for i := range s.Results {
		if s.Results[i].Target == target {
			return &s.Results[i]
		}
	}
	return nil
}
