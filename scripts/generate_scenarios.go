//go:build ignore

// generate_scenarios.go installs starter scenario files for sv.
// Usage: go run scripts/generate_scenarios.go [dir]
//
// Without an argument the files land in the user scenario directory, so
// they are immediately runnable by bare name:
//
//	sv --scenario demo
//	sv --scenario classics --run binary-search
//	sv --scenario sorting-shootout --watch
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vanderheijden86/stepview/pkg/algorithms"
	"github.com/vanderheijden86/stepview/pkg/config"
	"github.com/vanderheijden86/stepview/pkg/scenario"
	"github.com/vanderheijden86/stepview/pkg/trace"
)

type fileSpec struct {
	name  string
	desc  string
	build func() scenario.File
}

var files = []fileSpec{
	{"demo", "every cataloged algorithm on a small seeded input", buildDemo},
	{"classics", "textbook payloads for each algorithm family", buildClassics},
	{"sorting-shootout", "all five sorts racing the same shuffled array", buildShootout},
}

func main() {
	outputDir := config.ScenarioDir()
	if len(os.Args) > 1 {
		outputDir = os.Args[1]
	}
	if outputDir == "" {
		fmt.Fprintln(os.Stderr, "No scenario directory resolved; pass one explicitly.")
		os.Exit(1)
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create scenario directory: %v\n", err)
		os.Exit(1)
	}

	for _, fs := range files {
		f := fs.build()
		fmt.Printf("Generating %s scenario (%d runs)...\n", fs.name, len(f.Runs))

		if err := f.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid %s scenario: %v\n", fs.name, err)
			os.Exit(1)
		}

		body, err := yaml.Marshal(f)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to marshal %s: %v\n", fs.name, err)
			os.Exit(1)
		}
		header := fmt.Sprintf("# %s: %s\n# run with: sv --scenario %s\n", fs.name, fs.desc, fs.name)

		outputPath := filepath.Join(outputDir, fs.name+".yaml")
		if err := os.WriteFile(outputPath, append([]byte(header), body...), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write %s: %v\n", outputPath, err)
			os.Exit(1)
		}

		fmt.Printf("  Written %s (%d bytes)\n", outputPath, len(header)+len(body))
	}

	fmt.Println("\nDone! Scenario files created in", outputDir)
}

// buildDemo covers the whole catalog with reproducible generated inputs,
// one run per algorithm, so the file stays current as the catalog grows.
func buildDemo() scenario.File {
	var f scenario.File
	for i, s := range algorithms.Specs() {
		size := 8
		if s.Family == trace.FamilyGraph {
			size = 6
		}
		f.Runs = append(f.Runs, scenario.Run{
			Name:      string(s.Kind),
			Algorithm: string(s.Kind),
			Size:      size,
			Seed:      int64(i + 1),
		})
	}
	return f
}

// buildClassics pins the payloads most walkthroughs use, so the rendered
// steps match what readers have seen in textbooks.
func buildClassics() scenario.File {
	return scenario.File{Runs: []scenario.Run{
		{Name: "bubble-sort", Algorithm: string(trace.BubbleSort), Array: []int{5, 1, 4, 2, 8}},
		{Name: "insertion-sort", Algorithm: string(trace.InsertionSort), Array: []int{7, 3, 5, 1}},
		{Name: "selection-sort", Algorithm: string(trace.SelectionSort), Array: []int{4, 2, 9, 1}},
		{Name: "merge-sort", Algorithm: string(trace.MergeSort), Array: []int{6, 2, 8, 4, 1, 5}},
		{Name: "quick-sort", Algorithm: string(trace.QuickSort), Array: []int{3, 8, 2, 5, 1}},
		{Name: "linear-search", Algorithm: string(trace.LinearSearch), Array: []int{4, 2, 7, 1}, Target: 7},
		{Name: "binary-search", Algorithm: string(trace.BinarySearch), Array: []int{1, 3, 5, 7, 9, 11}, Target: 7},
		{Name: "bfs", Algorithm: string(trace.BFS), Graph: [][]int{{1, 2}, {0}, {0}}, Start: 0},
		{Name: "dfs", Algorithm: string(trace.DFS), Graph: [][]int{{1, 2}, {3}, {3}, {}}, Start: 0},
	}}
}

// buildShootout runs every sort over the same materialized array so the
// step counts are directly comparable.
func buildShootout() scenario.File {
	shuffled := algorithms.RandomInput(trace.BubbleSort, 16, 42).Array
	sorts := []trace.Kind{
		trace.BubbleSort, trace.InsertionSort, trace.SelectionSort,
		trace.MergeSort, trace.QuickSort,
	}
	var f scenario.File
	for _, k := range sorts {
		f.Runs = append(f.Runs, scenario.Run{
			Name:      string(k),
			Algorithm: string(k),
			Array:     append([]int(nil), shuffled...),
		})
	}
	return f
}
