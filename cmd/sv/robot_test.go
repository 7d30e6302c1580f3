package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/vanderheijden86/stepview/pkg/algorithms"
	"github.com/vanderheijden86/stepview/pkg/scenario"
	"github.com/vanderheijden86/stepview/pkg/trace"
)

func robotFixture(t *testing.T) robotTraceOutput {
	t.Helper()
	in := trace.Input{Array: []int{1, 3, 5, 7, 9, 11}, Target: 7}
	tr, err := algorithms.Generate(context.Background(), trace.BinarySearch, in)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return robotTraceOutput{
		GeneratedAt: robotTimestamp(),
		Algorithm:   trace.BinarySearch,
		Input:       in,
		FrameCount:  tr.Len(),
		Frames:      tr.Frames,
	}
}

func TestWriteRobotTraceJSON(t *testing.T) {
	out := robotFixture(t)

	var buf bytes.Buffer
	if err := writeRobotTrace(&buf, out, "json"); err != nil {
		t.Fatalf("writeRobotTrace: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["algorithm"] != "binary-search" {
		t.Errorf("algorithm = %v, want binary-search", decoded["algorithm"])
	}
	frames, ok := decoded["frames"].([]any)
	if !ok || len(frames) != out.FrameCount {
		t.Errorf("frames = %d entries, want %d", len(frames), out.FrameCount)
	}
	if int(decoded["frame_count"].(float64)) != out.FrameCount {
		t.Errorf("frame_count = %v, want %d", decoded["frame_count"], out.FrameCount)
	}
}

func TestWriteRobotTraceJSONL(t *testing.T) {
	out := robotFixture(t)

	var buf bytes.Buffer
	if err := writeRobotTrace(&buf, out, "jsonl"); err != nil {
		t.Fatalf("writeRobotTrace: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != out.FrameCount+1 {
		t.Fatalf("got %d lines, want %d (meta line plus one per frame)", len(lines), out.FrameCount+1)
	}
	for i, line := range lines {
		if !json.Valid([]byte(line)) {
			t.Fatalf("line %d is not valid JSON: %s", i, line)
		}
	}
	if !strings.Contains(lines[0], `"frame_count"`) {
		t.Error("first line should be the metadata header")
	}
	if strings.Contains(lines[0], `"pcLine"`) {
		t.Error("metadata header should not carry frame fields")
	}
}

func TestGenerateScenarioRunsKeepsFileOrder(t *testing.T) {
	file := &scenario.File{Runs: []scenario.Run{
		{Name: "sort", Algorithm: "bubble-sort", Array: []int{3, 1, 2}},
		{Name: "walk", Algorithm: "bfs", Graph: [][]int{{1, 2}, {0}, {0}}},
	}}

	results, err := generateScenarioRuns(context.Background(), file)
	if err != nil {
		t.Fatalf("generateScenarioRuns: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Name != "sort" || results[1].Name != "walk" {
		t.Errorf("order = %s, %s; want sort, walk", results[0].Name, results[1].Name)
	}
	for _, r := range results {
		if r.FrameCount < 2 {
			t.Errorf("run %s has %d frames, want at least 2", r.Name, r.FrameCount)
		}
	}

	visitOrder := results[1].Frames[len(results[1].Frames)-1].Array
	if got := trace.FormatArray(visitOrder); got != "0,1,2" {
		t.Errorf("bfs visit order = %s, want 0,1,2", got)
	}
}

func TestGenerateScenarioRunsFailsOnBadRun(t *testing.T) {
	file := &scenario.File{Runs: []scenario.Run{
		{Name: "good", Algorithm: "bubble-sort", Array: []int{2, 1}},
		{Name: "bad", Algorithm: "binary-search", Array: []int{5, 1}, Target: 1},
	}}

	_, err := generateScenarioRuns(context.Background(), file)
	if !errors.Is(err, trace.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput (unsorted binary search input)", err)
	}
	if !strings.Contains(err.Error(), `"bad"`) {
		t.Errorf("err = %q, want the failing run named", err)
	}
}

func TestWriteRobotScenarioJSONL(t *testing.T) {
	file := &scenario.File{Runs: []scenario.Run{
		{Name: "a", Algorithm: "linear-search", Array: []int{4, 2}, Target: 2},
		{Name: "b", Algorithm: "dfs", Graph: [][]int{{1}, {0}}},
	}}
	results, err := generateScenarioRuns(context.Background(), file)
	if err != nil {
		t.Fatalf("generateScenarioRuns: %v", err)
	}

	var buf bytes.Buffer
	out := robotScenarioOutput{GeneratedAt: robotTimestamp(), Scenario: "inline", Runs: results}
	if err := writeRobotScenario(&buf, out, "jsonl"); err != nil {
		t.Fatalf("writeRobotScenario: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want one per run", len(lines))
	}
	var first map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("line 0 not valid JSON: %v", err)
	}
	if first["name"] != "a" {
		t.Errorf("first line name = %v, want a", first["name"])
	}
}

func TestWriteRobotScenarioJSON(t *testing.T) {
	out := robotScenarioOutput{
		GeneratedAt: robotTimestamp(),
		Scenario:    "demo.yaml",
		Runs:        []robotRunResult{},
	}
	var buf bytes.Buffer
	if err := writeRobotScenario(&buf, out, "json"); err != nil {
		t.Fatalf("writeRobotScenario: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["scenario"] != "demo.yaml" {
		t.Errorf("scenario = %v, want demo.yaml", decoded["scenario"])
	}
}
