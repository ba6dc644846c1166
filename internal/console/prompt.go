package console

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(message string) (bool, error)
}

// SurveyConfirmer asks on the terminal via survey.
type SurveyConfirmer struct{}

func (SurveyConfirmer) Confirm(message string) (bool, error) {
	ok := false
	err := survey.AskOne(&survey.Confirm{Message: message}, &ok)
	if err != nil {
		// Ctrl-C on a prompt is a refusal, not a failure.
		if errors.Is(err, terminal.InterruptErr) {
			return false, nil
		}
		return false, err
	}
	return ok, nil
}

// AutoConfirmer answers yes to every prompt, for --yes mode.
type AutoConfirmer struct{}

func (AutoConfirmer) Confirm(string) (bool, error) { return true, nil }
