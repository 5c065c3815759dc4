package survey

import (
	"errors"
	"fmt"
)

// Screen is the page a session is currently showing.
type Screen int

const (
	// ScreenForm shows the questionnaire.
	ScreenForm Screen = iota
	// ScreenResults shows the scores after a submission.
	ScreenResults
)

func (s Screen) String() string {
	switch s {
	case ScreenForm:
		return "form"
	case ScreenResults:
		return "results"
	default:
		return fmt.Sprintf("Screen(%d)", int(s))
	}
}

// ErrInvalidTransition is returned for an action the current screen does not
// accept.
var ErrInvalidTransition = errors.New("invalid screen transition")

// Navigator holds the current screen of one session. Each session owns its
// own Navigator; it starts on the form.
//
//	Form --submit--> Results
//	Results --back--> Form
type Navigator struct {
	screen Screen
}

// NewNavigator returns a navigator showing the form.
func NewNavigator() *Navigator {
	return &Navigator{screen: ScreenForm}
}

// Screen returns the current screen.
func (n *Navigator) Screen() Screen {
	return n.screen
}

// Back returns from the results to the form. Nothing is cleared.
func (n *Navigator) Back() error {
	if n.screen != ScreenResults {
		return fmt.Errorf("%w: back from %s", ErrInvalidTransition, n.screen)
	}
	n.screen = ScreenForm
	return nil
}

func (n *Navigator) canSubmit() error {
	if n.screen != ScreenForm {
		return fmt.Errorf("%w: submit from %s", ErrInvalidTransition, n.screen)
	}
	return nil
}

func (n *Navigator) submitted() {
	n.screen = ScreenResults
}
