package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vanderheijden86/stepview/internal/history"
	"github.com/vanderheijden86/stepview/pkg/algorithms"
	"github.com/vanderheijden86/stepview/pkg/config"
	"github.com/vanderheijden86/stepview/pkg/debug"
	"github.com/vanderheijden86/stepview/pkg/metrics"
	"github.com/vanderheijden86/stepview/pkg/scenario"
	"github.com/vanderheijden86/stepview/pkg/trace"
	"github.com/vanderheijden86/stepview/pkg/ui"
	"github.com/vanderheijden86/stepview/pkg/version"
	"github.com/vanderheijden86/stepview/pkg/watcher"
)

func main() {
	algorithmFlag := flag.String("algorithm", "", "Algorithm to visualize (see --list)")
	inputFlag := flag.String("input", "", "Comma-separated array, e.g. 5,3,8,1 (sorting and searching)")
	targetFlag := flag.Int("target", 0, "Search target (searching algorithms)")
	graphFlag := flag.String("graph", "", "Adjacency list, ';' per node, e.g. 1,2;0;0 (graph algorithms)")
	startFlag := flag.Int("start", 0, "Start node (graph algorithms)")
	sizeFlag := flag.Int("size", 0, "Size of generated inputs (default from config)")
	seedFlag := flag.Int64("seed", 0, "Seed for generated inputs (0 picks one)")
	speedFlag := flag.Float64("speed", 0, "Initial playback speed multiplier")
	scenarioFlag := flag.String("scenario", "", "Scenario file: a path, or a bare name under the data dir")
	runFlag := flag.String("run", "", "Run name inside the scenario file (default: first run)")
	watchFlag := flag.Bool("watch", false, "Reload the scenario file when it changes on disk")
	listFlag := flag.Bool("list", false, "List available algorithms")
	recentFlag := flag.Bool("recent", false, "Show recent sessions")
	noHistoryFlag := flag.Bool("no-history", false, "Do not record this session")
	robotTrace := flag.Bool("robot-trace", false, "Print the resolved trace as JSON and exit")
	robotScenario := flag.Bool("robot-scenario", false, "Generate every run in the scenario file and print JSON")
	formatFlag := flag.String("format", "json", "Robot output format: json or jsonl")
	help := flag.Bool("help", false, "Show help")
	versionFlag := flag.Bool("version", false, "Show version")
	flag.Parse()

	if *help {
		fmt.Println("Usage: sv [options]")
		fmt.Println("\nA terminal step viewer for classic algorithms.")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *versionFlag {
		fmt.Printf("sv %s\n", version.Version)
		os.Exit(0)
	}

	if *listFlag {
		printList()
		os.Exit(0)
	}

	if *formatFlag != "json" && *formatFlag != "jsonl" {
		fmt.Fprintf(os.Stderr, "Error: invalid --format %q (expected json|jsonl)\n", *formatFlag)
		os.Exit(2)
	}

	if *recentFlag {
		showRecent()
		os.Exit(0)
	}

	appCfg, cfgErr := config.Load()
	if cfgErr != nil {
		// Non-fatal: continue with defaults.
		appCfg = config.DefaultConfig()
	}
	if *speedFlag > 0 {
		appCfg.Speed = *speedFlag
	}
	if *sizeFlag > 0 {
		appCfg.InputSize = *sizeFlag
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	if *scenarioFlag != "" && (*algorithmFlag != "" || *inputFlag != "" || *graphFlag != "") {
		fmt.Fprintln(os.Stderr, "Error: --scenario and direct input flags are mutually exclusive")
		os.Exit(2)
	}
	if *robotScenario && *scenarioFlag == "" {
		fmt.Fprintln(os.Stderr, "Error: --robot-scenario requires --scenario")
		os.Exit(2)
	}
	if *watchFlag && *scenarioFlag == "" {
		fmt.Fprintln(os.Stderr, "Error: --watch requires --scenario")
		os.Exit(2)
	}

	var (
		req          runRequest
		scenarioPath string
	)
	if *scenarioFlag != "" {
		scenarioPath = resolveScenarioPath(*scenarioFlag)
		file, err := scenario.Load(scenarioPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if *robotScenario {
			results, err := generateScenarioRuns(context.Background(), file)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			out := robotScenarioOutput{
				GeneratedAt: robotTimestamp(),
				Scenario:    scenarioPath,
				Runs:        results,
			}
			if err := writeRobotScenario(os.Stdout, out, *formatFlag); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			logTimings()
			os.Exit(0)
		}

		run, err := scenarioRun(file, *runFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		req, err = requestFromRun(run)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	} else {
		kindName := *algorithmFlag
		if kindName == "" {
			kindName = appCfg.DefaultAlgorithm
			if !*robotTrace && isTerminal() {
				k, err := promptAlgorithm(trace.Kind(kindName))
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error: %v\n", err)
					os.Exit(1)
				}
				kindName = string(k)
			}
		}
		kind, err := trace.ParseKind(kindName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		spec, err := algorithms.Lookup(kind)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		in, err := parseInputFlags(kind, inputFlags{
			array:  *inputFlag,
			target: *targetFlag,
			graph:  *graphFlag,
			start:  *startFlag,
			size:   appCfg.InputSize,
			seed:   seed,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		req = runRequest{spec: spec, input: in}
	}
	if req.speed > 0 {
		appCfg.Speed = req.speed
	}

	tr, err := algorithms.Generate(context.Background(), req.spec.Kind, req.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *robotTrace {
		out := robotTraceOutput{
			GeneratedAt: robotTimestamp(),
			Algorithm:   req.spec.Kind,
			Run:         req.runName,
			Input:       req.input,
			FrameCount:  tr.Len(),
			Frames:      tr.Frames,
		}
		if err := writeRobotTrace(os.Stdout, out, *formatFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logTimings()
		os.Exit(0)
	}

	opts := []ui.ModelOption{ui.WithSeed(seed)}
	if *watchFlag {
		w, err := watcher.New(scenarioPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error watching scenario: %v\n", err)
			os.Exit(1)
		}
		if err := w.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Error watching scenario: %v\n", err)
			os.Exit(1)
		}
		defer w.Stop()
		debug.Log("watching %s (polling=%v)", w.Path(), w.IsPolling())
		opts = append(opts, ui.WithScenarioReload(w, scenarioPath, req.runName))
	}

	m := ui.NewModel(req.spec, req.input, tr, appCfg, opts...)

	start := time.Now()
	finalModel, err := runTUIProgram(m)
	if err != nil {
		fmt.Printf("Error running step viewer: %v\n", err)
		os.Exit(1)
	}

	if !*noHistoryFlag && appCfg.HistoryEnabled() {
		recordSession(finalModel.Stats(), start)
	}
	logTimings()
}

func runTUIProgram(m ui.Model) (ui.Model, error) {
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithoutSignalHandler(),
	)

	runDone := make(chan struct{})
	defer close(runDone)

	// Graceful shutdown on SIGINT/SIGTERM.
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-runDone:
			return
		case <-sigCh:
		}

		p.Quit()

		select {
		case <-runDone:
			return
		case <-sigCh:
		case <-time.After(5 * time.Second):
		}

		p.Kill()
	}()

	// Optional auto-quit for automated tests: set SV_TUI_AUTOCLOSE_MS.
	if v := os.Getenv("SV_TUI_AUTOCLOSE_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			go func() {
				timer := time.NewTimer(time.Duration(ms) * time.Millisecond)
				defer timer.Stop()

				select {
				case <-runDone:
					return
				case <-timer.C:
				}

				p.Quit()

				select {
				case <-runDone:
					return
				case <-time.After(2 * time.Second):
				}

				p.Kill()
			}()
		}
	}

	finalModel, err := p.Run()
	if err != nil && (errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted)) {
		err = nil
	}
	out, ok := finalModel.(ui.Model)
	if !ok {
		out = m
	}
	return out, err
}

// runRequest is a fully resolved (algorithm, input) pair ready to
// generate.
type runRequest struct {
	spec    algorithms.Spec
	input   trace.Input
	speed   float64
	runName string
}

func requestFromRun(run scenario.Run) (runRequest, error) {
	kind, err := run.Kind()
	if err != nil {
		return runRequest{}, err
	}
	spec, err := algorithms.Lookup(kind)
	if err != nil {
		return runRequest{}, err
	}
	in, err := run.Input()
	if err != nil {
		return runRequest{}, err
	}
	return runRequest{spec: spec, input: in, speed: run.Speed, runName: run.Name}, nil
}

// scenarioRun picks the named run, or the file's first when no name is
// given.
func scenarioRun(f *scenario.File, name string) (scenario.Run, error) {
	if name == "" {
		return f.Runs[0], nil
	}
	return f.Find(name)
}

// inputFlags carries the raw payload flags before family resolution.
type inputFlags struct {
	array  string
	target int
	graph  string
	start  int
	size   int
	seed   int64
}

// parseInputFlags materializes the input for kind: explicit payload
// flags win, anything else is generated from (size, seed).
func parseInputFlags(kind trace.Kind, f inputFlags) (trace.Input, error) {
	switch kind.Family() {
	case trace.FamilyGraph:
		if f.array != "" {
			return trace.Input{}, fmt.Errorf("--input does not apply to %s; use --graph", kind)
		}
		if f.graph != "" {
			g, err := trace.ParseGraph(f.graph)
			if err != nil {
				return trace.Input{}, err
			}
			return trace.Input{Graph: g, Start: f.start}, nil
		}
	default:
		if f.graph != "" {
			return trace.Input{}, fmt.Errorf("--graph does not apply to %s; use --input", kind)
		}
		if f.array != "" {
			arr, err := trace.ParseArray(f.array)
			if err != nil {
				return trace.Input{}, err
			}
			return trace.Input{Array: arr, Target: f.target}, nil
		}
	}
	return algorithms.RandomInput(kind, f.size, f.seed), nil
}

// resolveScenarioPath resolves --scenario: anything that looks like a
// path is used as given; a bare name is looked up under the scenario
// data directory.
func resolveScenarioPath(arg string) string {
	if strings.ContainsRune(arg, os.PathSeparator) || filepath.Ext(arg) != "" {
		return arg
	}
	if _, err := os.Stat(arg); err == nil {
		return arg
	}
	if dir := config.ScenarioDir(); dir != "" {
		return filepath.Join(dir, arg+".yaml")
	}
	return arg
}

func printList() {
	fmt.Println("Available algorithms:")
	fmt.Println()
	for _, s := range algorithms.Specs() {
		fmt.Printf("  %-16s %-22s %s\n", s.Kind, s.Name, s.Family)
	}
}

func showRecent() {
	path := historyPath()
	if path == "" {
		fmt.Fprintln(os.Stderr, "Error: cannot determine state directory")
		os.Exit(1)
	}
	store, err := history.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history: %v\n", err)
		os.Exit(1)
	}
	sessions, err := store.Recent(0)
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading history: %v\n", err)
		os.Exit(1)
	}
	writeRecent(os.Stdout, sessions)
}

func writeRecent(w io.Writer, sessions []history.Session) {
	if len(sessions) == 0 {
		fmt.Fprintln(w, "No recorded sessions yet.")
		return
	}
	for _, s := range sessions {
		state := fmt.Sprintf("stopped at %d/%d", s.LastIndex+1, s.Frames)
		if s.Completed {
			state = "completed"
		}
		fmt.Fprintf(w, "  %s  %-16s %-30s %4d frames  %s\n",
			s.StartedAt.Local().Format("2006-01-02 15:04"),
			s.Algorithm, s.InputSummary, s.Frames, state)
	}
}

func historyPath() string {
	dir := config.StateDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "history.db")
}

// logTimings reports the timing metrics collected over the process
// lifetime through the debug log.
func logTimings() {
	if !debug.Enabled() {
		return
	}
	for _, s := range metrics.AllTimingStats() {
		debug.Log("timing %s: n=%d avg=%.2fms max=%.2fms", s.Name, s.Count, s.AvgMs, s.MaxMs)
	}
}

// recordSession persists the finished session. Best effort: a broken
// history database never turns a clean exit into an error.
func recordSession(stats ui.SessionStats, startedAt time.Time) {
	path := historyPath()
	if path == "" {
		return
	}
	store, err := history.Open(path)
	if err != nil {
		debug.Log("history: %v", err)
		return
	}
	defer store.Close()

	_, err = store.Record(history.Session{
		StartedAt:    startedAt,
		Algorithm:    stats.Algorithm,
		InputSummary: stats.InputSummary,
		InputSize:    stats.InputSize,
		Frames:       stats.Frames,
		LastIndex:    stats.LastIndex,
		Completed:    stats.Completed,
		DurationMS:   time.Since(startedAt).Milliseconds(),
	})
	if err != nil {
		debug.Log("history: %v", err)
	}
}
