// Package scenario loads replayable run definitions from YAML files. A
// scenario file names a set of runs, each binding an algorithm to either
// an explicit payload or a (size, seed) pair that materializes one
// reproducibly. Scenario files are the unit the file watcher reloads and
// the robot scenario mode executes.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vanderheijden86/stepview/pkg/algorithms"
	"github.com/vanderheijden86/stepview/pkg/metrics"
	"github.com/vanderheijden86/stepview/pkg/trace"
)

// ErrUnknownRun is returned when a run name has no entry in the file.
var ErrUnknownRun = errors.New("unknown run")

// Run binds one algorithm to one input. Array/Target/Graph/Start carry
// an explicit payload; when the payload fields for the family are left
// empty, Size and Seed materialize a reproducible random one.
type Run struct {
	Name      string  `yaml:"name"`
	Algorithm string  `yaml:"algorithm"`
	Array     []int   `yaml:"array,omitempty"`
	Target    int     `yaml:"target,omitempty"`
	Graph     [][]int `yaml:"graph,omitempty"`
	Start     int     `yaml:"start,omitempty"`
	Size      int     `yaml:"size,omitempty"`
	Seed      int64   `yaml:"seed,omitempty"`
	Speed     float64 `yaml:"speed,omitempty"`
}

// File is one parsed scenario file.
type File struct {
	Runs []Run `yaml:"runs"`
}

// Load reads and validates a scenario file. Unknown keys are rejected,
// so a typo like `algorihm:` fails the load instead of silently running
// the default.
func Load(path string) (*File, error) {
	defer metrics.Timer(metrics.ScenarioLoad)()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &f, nil
}

// Validate checks the file as a whole: at least one run, unique names,
// known algorithms.
func (f *File) Validate() error {
	if len(f.Runs) == 0 {
		return errors.New("no runs defined")
	}
	seen := make(map[string]bool, len(f.Runs))
	for i, r := range f.Runs {
		if r.Name == "" {
			return fmt.Errorf("run %d has no name", i)
		}
		if seen[r.Name] {
			return fmt.Errorf("run name %q used twice", r.Name)
		}
		seen[r.Name] = true
		if _, err := r.Kind(); err != nil {
			return fmt.Errorf("run %q: %w", r.Name, err)
		}
	}
	return nil
}

// Kind resolves the run's algorithm identifier.
func (r Run) Kind() (trace.Kind, error) {
	return trace.ParseKind(r.Algorithm)
}

// Input materializes the run's payload. An explicit payload passes
// through as written; otherwise Size and Seed generate one, so the same
// file always replays the same traces.
func (r Run) Input() (trace.Input, error) {
	kind, err := r.Kind()
	if err != nil {
		return trace.Input{}, err
	}
	switch kind.Family() {
	case trace.FamilyGraph:
		if len(r.Graph) > 0 {
			return trace.Input{Graph: r.Graph, Start: r.Start}, nil
		}
	default:
		if len(r.Array) > 0 {
			return trace.Input{Array: r.Array, Target: r.Target}, nil
		}
	}
	return algorithms.RandomInput(kind, r.Size, r.Seed), nil
}

// Find returns the named run.
func (f *File) Find(name string) (Run, error) {
	for _, r := range f.Runs {
		if r.Name == name {
			return r, nil
		}
	}
	return Run{}, fmt.Errorf("%w %q (file defines %s)", ErrUnknownRun, name, strings.Join(f.Names(), ", "))
}

// Names lists the run names in file order.
func (f *File) Names() []string {
	out := make([]string, len(f.Runs))
	for i, r := range f.Runs {
		out[i] = r.Name
	}
	return out
}
