package main

import (
	"context"
	"fmt"
	"io"
	"time"

	json "github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"

	"github.com/vanderheijden86/stepview/pkg/algorithms"
	"github.com/vanderheijden86/stepview/pkg/scenario"
	"github.com/vanderheijden86/stepview/pkg/trace"
)

// robotTraceOutput is the machine-readable form of one generated trace.
type robotTraceOutput struct {
	GeneratedAt string        `json:"generated_at"`
	Algorithm   trace.Kind    `json:"algorithm"`
	Run         string        `json:"run,omitempty"`
	Input       trace.Input   `json:"input"`
	FrameCount  int           `json:"frame_count"`
	Frames      []trace.Frame `json:"frames"`
}

// robotTraceMeta is the header line of jsonl output; the frames follow
// one per line.
type robotTraceMeta struct {
	GeneratedAt string      `json:"generated_at"`
	Algorithm   trace.Kind  `json:"algorithm"`
	Run         string      `json:"run,omitempty"`
	Input       trace.Input `json:"input"`
	FrameCount  int         `json:"frame_count"`
}

type robotRunResult struct {
	Name       string        `json:"name"`
	Algorithm  trace.Kind    `json:"algorithm"`
	Input      trace.Input   `json:"input"`
	FrameCount int           `json:"frame_count"`
	Frames     []trace.Frame `json:"frames"`
}

type robotScenarioOutput struct {
	GeneratedAt string           `json:"generated_at"`
	Scenario    string           `json:"scenario"`
	Runs        []robotRunResult `json:"runs"`
}

func robotTimestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func writeRobotTrace(w io.Writer, out robotTraceOutput, format string) error {
	enc := json.NewEncoder(w)
	if format == "jsonl" {
		meta := robotTraceMeta{
			GeneratedAt: out.GeneratedAt,
			Algorithm:   out.Algorithm,
			Run:         out.Run,
			Input:       out.Input,
			FrameCount:  out.FrameCount,
		}
		if err := enc.Encode(meta); err != nil {
			return err
		}
		for _, f := range out.Frames {
			if err := enc.Encode(f); err != nil {
				return err
			}
		}
		return nil
	}
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeRobotScenario(w io.Writer, out robotScenarioOutput, format string) error {
	enc := json.NewEncoder(w)
	if format == "jsonl" {
		for _, r := range out.Runs {
			if err := enc.Encode(r); err != nil {
				return err
			}
		}
		return nil
	}
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// generateScenarioRuns materializes every run in the file concurrently.
// Results keep file order regardless of completion order; the first
// failure cancels the remaining generators.
func generateScenarioRuns(ctx context.Context, file *scenario.File) ([]robotRunResult, error) {
	results := make([]robotRunResult, len(file.Runs))
	g, ctx := errgroup.WithContext(ctx)
	for i, run := range file.Runs {
		g.Go(func() error {
			req, err := requestFromRun(run)
			if err != nil {
				return fmt.Errorf("run %q: %w", run.Name, err)
			}
			tr, err := algorithms.Generate(ctx, req.spec.Kind, req.input)
			if err != nil {
				return fmt.Errorf("run %q: %w", run.Name, err)
			}
			results[i] = robotRunResult{
				Name:       run.Name,
				Algorithm:  req.spec.Kind,
				Input:      req.input,
				FrameCount: tr.Len(),
				Frames:     tr.Frames,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
