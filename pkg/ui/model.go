// Package ui implements the interactive step viewer: a bubbletea
// program that plays algorithm traces frame by frame, with an array
// board, a pseudocode listing, and overlays for switching algorithms
// and editing inputs.
package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	json "github.com/goccy/go-json"

	"github.com/vanderheijden86/stepview/pkg/algorithms"
	"github.com/vanderheijden86/stepview/pkg/config"
	"github.com/vanderheijden86/stepview/pkg/debug"
	"github.com/vanderheijden86/stepview/pkg/playback"
	"github.com/vanderheijden86/stepview/pkg/scenario"
	"github.com/vanderheijden86/stepview/pkg/trace"
	"github.com/vanderheijden86/stepview/pkg/watcher"
)

// frameTickMsg drives playback. gen ties the tick to the trace it was
// scheduled for; a tick that outlives its trace is dropped on arrival.
type frameTickMsg struct {
	gen int
	at  time.Time
}

// ScenarioChangedMsg reports that the watched scenario file was
// rewritten on disk.
type ScenarioChangedMsg struct{}

// frameTickCmd schedules the next playback tick.
func frameTickCmd(gen int, every time.Duration) tea.Cmd {
	return tea.Tick(every, func(at time.Time) tea.Msg {
		return frameTickMsg{gen: gen, at: at}
	})
}

// WatchScenarioCmd blocks until the watcher reports a change and
// surfaces it as a message. The handler re-arms it after every
// delivery.
func WatchScenarioCmd(w *watcher.Watcher) tea.Cmd {
	return func() tea.Msg {
		<-w.Changed()
		return ScenarioChangedMsg{}
	}
}

// focusArea names which surface consumes key presses.
type focusArea int

const (
	focusBoard focusArea = iota
	focusPicker
	focusEditor
	focusInfo
)

// Model is the bubbletea model for the viewer.
type Model struct {
	spec   algorithms.Spec
	input  trace.Input
	tr     *trace.Trace
	runner *playback.Runner

	// gen tags outstanding tick commands. swapTrace bumps it, so ticks
	// scheduled against a replaced trace can never advance the new one.
	gen       int
	lastTick  time.Time
	tickEvery time.Duration
	seed      int64

	// Live reload of the scenario the current run came from. Nil when
	// the input did not come from a watched file.
	watcher      *watcher.Watcher
	scenarioPath string
	runName      string

	theme  Theme
	picker PickerModel
	editor EditorModel

	focus      focusArea
	showPseudo bool
	infoView   string // glamour-rendered description, cached until the algorithm changes

	ready    bool
	width    int
	height   int
	quitting bool

	statusMsg string
	statusErr bool
}

// ModelOption configures a Model at construction.
type ModelOption func(*Model)

// WithScenarioReload wires a started watcher so edits to the scenario
// file swap a fresh trace in without restarting the viewer.
func WithScenarioReload(w *watcher.Watcher, path, runName string) ModelOption {
	return func(m *Model) {
		m.watcher = w
		m.scenarioPath = path
		m.runName = runName
	}
}

// WithSeed fixes the seed the regenerate key derives new inputs from.
func WithSeed(seed int64) ModelOption {
	return func(m *Model) { m.seed = seed }
}

// WithTheme overrides the default theme.
func WithTheme(t Theme) ModelOption {
	return func(m *Model) {
		m.theme = t
		m.picker = NewPickerModel(t)
		m.editor = NewEditorModel(t)
	}
}

// NewModel builds the viewer over an already generated trace.
func NewModel(spec algorithms.Spec, in trace.Input, tr *trace.Trace, cfg config.Config, opts ...ModelOption) Model {
	tickEvery := time.Duration(cfg.UI.TickMillis) * time.Millisecond
	if tickEvery <= 0 {
		tickEvery = time.Duration(config.DefaultConfig().UI.TickMillis) * time.Millisecond
	}

	theme := DefaultTheme(lipgloss.DefaultRenderer())
	m := Model{
		spec:       spec,
		input:      in.Clone(),
		tr:         tr,
		runner:     playback.NewRunner(tr.Len(), playback.WithSpeed(cfg.Speed)),
		tickEvery:  tickEvery,
		seed:       time.Now().UnixNano(),
		theme:      theme,
		picker:     NewPickerModel(theme),
		editor:     NewEditorModel(theme),
		showPseudo: !cfg.UI.HidePseudocode,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init arms the scenario watcher when one is attached.
func (m Model) Init() tea.Cmd {
	if m.watcher != nil {
		return WatchScenarioCmd(m.watcher)
	}
	return nil
}

// Update routes messages. Overlay focus consumes key presses before the
// board bindings see them, so typing a filter never scrubs the trace.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.picker.SetSize(msg.Width, msg.Height)
		m.editor.SetSize(msg.Width, msg.Height)
		m.infoView = ""
		if m.focus == focusInfo {
			m.infoView = renderDescription(m.spec, infoWidth(m.width))
		}
		return m, nil

	case frameTickMsg:
		return m.handleFrameTick(msg)

	case ScenarioChangedMsg:
		if m.watcher == nil {
			return m, nil
		}
		return m.handleScenarioChange()

	case tea.KeyMsg:
		switch m.focus {
		case focusPicker:
			return m.handlePickerKey(msg)
		case focusEditor:
			return m.handleEditorKey(msg)
		case focusInfo:
			return m.handleInfoKey(msg)
		default:
			return m.handleBoardKey(msg)
		}
	}
	return m, nil
}

func (m Model) handleFrameTick(msg frameTickMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.gen || !m.runner.Playing() {
		return m, nil
	}
	dt := msg.at.Sub(m.lastTick)
	m.lastTick = msg.at
	if dt > 0 {
		m.runner.Tick(dt)
	}
	if m.runner.Playing() {
		return m, frameTickCmd(m.gen, m.tickEvery)
	}
	// The runner paused itself on a boundary; the chain ends here and a
	// play key starts a fresh one.
	return m, nil
}

func (m Model) handleBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case " ":
		was := m.runner.Playing()
		m.runner.TogglePlay()
		return m, m.resumeTick(was)

	case "f":
		was := m.runner.Playing()
		m.runner.PlayForward()
		return m, m.resumeTick(was)

	case "b":
		was := m.runner.Playing()
		m.runner.PlayBackward()
		return m, m.resumeTick(was)

	case "l", "right":
		m.runner.StepNext()

	case "h", "left":
		m.runner.StepPrev()

	case "g", "home":
		m.runner.ToStart()

	case "G", "end":
		m.runner.ToEnd()

	case "[":
		m.runner.SetSpeed(m.runner.Speed() / 2)
		m.setStatus("speed "+formatSpeed(m.runner.Speed()), false)

	case "]":
		m.runner.SetSpeed(m.runner.Speed() * 2)
		m.setStatus("speed "+formatSpeed(m.runner.Speed()), false)

	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.runner.SeekFraction(float64(key[0]-'0') / 10)

	case "a":
		m.focus = focusPicker
		m.picker.Reset()

	case "i":
		m.focus = focusEditor
		m.editor.Load(m.spec, m.input)

	case "d":
		if m.infoView == "" {
			m.infoView = renderDescription(m.spec, infoWidth(m.width))
		}
		m.focus = focusInfo

	case "tab":
		m.showPseudo = !m.showPseudo

	case "r":
		return m.regenerate()

	case "y":
		return m.yankTrace()
	}
	return m, nil
}

func (m Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.focus = focusBoard
		return m, nil
	case "enter":
		m.focus = focusBoard
		spec, ok := m.picker.Selected()
		if !ok {
			return m, nil
		}
		return m.applyAlgorithm(spec)
	case "up", "ctrl+k":
		m.picker.MoveUp()
	case "down", "ctrl+j":
		m.picker.MoveDown()
	default:
		m.picker.UpdateInput(msg)
	}
	return m, nil
}

func (m Model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.focus = focusBoard
		return m, nil
	case "enter":
		in, err := m.editor.Parse()
		if err != nil {
			m.editor.SetError(err)
			return m, nil
		}
		if err := m.swapTrace(m.spec, in); err != nil {
			m.editor.SetError(err)
			return m, nil
		}
		m.focus = focusBoard
		m.setStatus("input: "+in.Summary(m.spec.Family), false)
	default:
		m.editor.UpdateInput(msg)
	}
	return m, nil
}

func (m Model) handleInfoKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "d", "q", "enter":
		m.focus = focusBoard
	}
	return m, nil
}

func (m Model) handleScenarioChange() (tea.Model, tea.Cmd) {
	rearm := WatchScenarioCmd(m.watcher)

	file, err := scenario.Load(m.scenarioPath)
	if err != nil {
		m.setStatus("reload: "+err.Error(), true)
		return m, rearm
	}
	run := file.Runs[0]
	if m.runName != "" {
		if run, err = file.Find(m.runName); err != nil {
			m.setStatus("reload: "+err.Error(), true)
			return m, rearm
		}
	}

	kind, err := run.Kind()
	if err != nil {
		m.setStatus("reload: "+err.Error(), true)
		return m, rearm
	}
	spec, err := algorithms.Lookup(kind)
	if err != nil {
		m.setStatus("reload: "+err.Error(), true)
		return m, rearm
	}
	in, err := run.Input()
	if err != nil {
		m.setStatus("reload: "+err.Error(), true)
		return m, rearm
	}

	if err := m.swapTrace(spec, in); err != nil {
		m.setStatus("reload: "+err.Error(), true)
		return m, rearm
	}
	if run.Speed > 0 {
		m.runner.SetSpeed(run.Speed)
	}
	debug.Log("scenario %s reloaded: %s over %s", m.scenarioPath, spec.Name, in.Summary(spec.Family))
	m.setStatus(fmt.Sprintf("scenario reloaded: %s, %d frames", spec.Name, m.tr.Len()), false)
	return m, rearm
}

// resumeTick starts a tick chain when a key just moved the runner from
// paused to playing. was is the playing state before the key applied.
func (m *Model) resumeTick(was bool) tea.Cmd {
	if was || !m.runner.Playing() {
		return nil
	}
	m.lastTick = time.Now()
	return frameTickCmd(m.gen, m.tickEvery)
}

// swapTrace regenerates and replaces the loaded trace. The generation
// counter invalidates ticks still in flight for the old one; the runner
// resets to frame 0 paused, keeping the chosen speed.
func (m *Model) swapTrace(spec algorithms.Spec, in trace.Input) error {
	tr, err := algorithms.Generate(context.Background(), spec.Kind, in)
	if err != nil {
		return err
	}
	m.spec = spec
	m.input = in.Clone()
	m.tr = tr
	m.gen++
	m.runner.Reset(tr.Len())
	m.infoView = ""
	debug.Log("trace swapped: %s, %d frames", spec.Kind, tr.Len())
	return nil
}

// applyAlgorithm switches to a picker selection. The current input is
// kept when the new generator accepts it; otherwise a fresh random
// input is drawn, which also covers family switches.
func (m Model) applyAlgorithm(spec algorithms.Spec) (tea.Model, tea.Cmd) {
	in := m.input
	size := m.input.Size(m.spec.Family)
	if spec.Family != m.spec.Family || size == 0 {
		if size == 0 {
			size = algorithms.DefaultInputSize
		}
		m.seed++
		in = algorithms.RandomInput(spec.Kind, size, m.seed)
	}
	if err := m.swapTrace(spec, in); err != nil {
		m.seed++
		in = algorithms.RandomInput(spec.Kind, size, m.seed)
		if err := m.swapTrace(spec, in); err != nil {
			m.setStatus(err.Error(), true)
			return m, nil
		}
	}
	m.setStatus(spec.Name+" over "+in.Summary(spec.Family), false)
	return m, nil
}

func (m Model) regenerate() (tea.Model, tea.Cmd) {
	m.seed++
	size := m.input.Size(m.spec.Family)
	in := algorithms.RandomInput(m.spec.Kind, size, m.seed)
	if err := m.swapTrace(m.spec, in); err != nil {
		m.setStatus(err.Error(), true)
		return m, nil
	}
	m.setStatus("new input: "+in.Summary(m.spec.Family), false)
	return m, nil
}

func (m Model) yankTrace() (tea.Model, tea.Cmd) {
	data, err := json.MarshalIndent(m.tr, "", "  ")
	if err != nil {
		m.setStatus("encode trace: "+err.Error(), true)
		return m, nil
	}
	if err := clipboard.WriteAll(string(data)); err != nil {
		m.setStatus("clipboard unavailable: "+err.Error(), true)
		return m, nil
	}
	m.setStatus(fmt.Sprintf("copied %d frames as JSON", m.tr.Len()), false)
	return m, nil
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.statusMsg = msg
	m.statusErr = isErr
}

// SessionStats summarizes a finished viewer session for the caller that
// records it.
type SessionStats struct {
	Algorithm    trace.Kind
	InputSummary string
	InputSize    int
	Frames       int
	LastIndex    int
	Completed    bool
}

// Stats reports where the session ended up. Completed means the cursor
// sat on the terminal frame when the viewer closed.
func (m Model) Stats() SessionStats {
	return SessionStats{
		Algorithm:    m.spec.Kind,
		InputSummary: m.input.Summary(m.spec.Family),
		InputSize:    m.input.Size(m.spec.Family),
		Frames:       m.tr.Len(),
		LastIndex:    m.runner.Idx(),
		Completed:    m.runner.AtEnd(),
	}
}

// currentFrame returns the frame under the cursor.
func (m Model) currentFrame() trace.Frame {
	return m.tr.At(m.runner.Idx())
}
