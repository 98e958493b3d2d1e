package wizard

import (
	"fmt"

	"github.com/internetdata/create-my-internet/internal/prompt"
)

// CompanionState is the companion wizard's outcome.
type CompanionState int

const (
	// CompanionMissing means the app is absent and the user declined help.
	CompanionMissing CompanionState = iota
	// CompanionAcknowledged means the user was guided and pressed enter.
	// Nothing verifies that the install actually happened.
	CompanionAcknowledged
	// CompanionPresent means the app was already installed.
	CompanionPresent
)

func (s CompanionState) String() string {
	switch s {
	case CompanionPresent:
		return "present"
	case CompanionAcknowledged:
		return "acknowledged"
	default:
		return "missing"
	}
}

// Prompt texts for the companion wizard.
const (
	CompanionAssistPrompt = "Would you like to download the Bicycle browser (Y)es/(N)o? [Y]: "
	DonePrompt            = "Hit enter when you're done: "
)

// CompanionChecker reports whether the companion app is installed.
type CompanionChecker interface {
	CompanionAppInstalled() bool
}

// Companion guides installation of the companion browser.
type Companion struct {
	Probe   CompanionChecker
	Prompts *prompt.Engine
	URL     string
}

// Run probes for the app and, when it is missing, offers download guidance.
func (w *Companion) Run() (CompanionState, error) {
	if w.Probe.CompanionAppInstalled() {
		return CompanionPresent, nil
	}

	answer, err := prompt.YesNo(w.Prompts, CompanionAssistPrompt)
	if err != nil {
		return CompanionMissing, fmt.Errorf("asking about companion browser: %w", err)
	}
	if answer == prompt.No {
		return CompanionMissing, nil
	}

	fmt.Fprintf(w.Prompts.Out(), "Click on the following URL to download the Bicycle\nbrowser and hit enter when you're done.\n\n%s\n", w.URL)
	if err := prompt.Acknowledge(w.Prompts, DonePrompt); err != nil {
		return CompanionMissing, fmt.Errorf("waiting for companion install: %w", err)
	}
	return CompanionAcknowledged, nil
}
