package main

import (
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/vanderheijden86/stepview/pkg/algorithms"
	"github.com/vanderheijden86/stepview/pkg/trace"
)

// isTerminal checks if stdin is connected to a terminal
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// newForm creates a form with appropriate settings based on TTY detection
func newForm(groups ...*huh.Group) *huh.Form {
	form := huh.NewForm(groups...).WithTheme(huh.ThemeDracula())
	if !isTerminal() {
		form = form.WithAccessible(true)
	}
	return form
}

// promptAlgorithm asks which algorithm to open when none was named on
// the command line. def preselects the config default.
func promptAlgorithm(def trace.Kind) (trace.Kind, error) {
	specs := algorithms.Specs()
	options := make([]huh.Option[string], 0, len(specs))
	for _, s := range specs {
		options = append(options, huh.NewOption(s.Name+"  ["+string(s.Family)+"]", string(s.Kind)))
	}

	selected := string(def)
	form := newForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which algorithm?").
				Options(options...).
				Value(&selected),
		),
	)

	if err := form.Run(); err != nil {
		return "", err
	}
	return trace.ParseKind(selected)
}
