package actions

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
)

// ErrInteractiveDisabled is returned when interactive prompts are disabled via CLASSTREE_TEST_NO_INTERACTIVE
var ErrInteractiveDisabled = fmt.Errorf("interactive prompts are disabled (CLASSTREE_TEST_NO_INTERACTIVE is set)")

// checkInteractiveAllowed returns an error if interactive mode is disabled for testing
func checkInteractiveAllowed() error {
	if os.Getenv("CLASSTREE_TEST_NO_INTERACTIVE") != "" {
		return ErrInteractiveDisabled
	}
	return nil
}

// promptLabel asks the user for a category label
func promptLabel(message, defaultLabel string) (string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return "", err
	}

	var label string
	prompt := &survey.Input{
		Message: message,
		Default: defaultLabel,
	}
	if err := survey.AskOne(prompt, &label); err != nil {
		return "", fmt.Errorf("canceled")
	}

	return label, nil
}

// promptConfirm asks the user a yes/no question, defaulting to no
func promptConfirm(message string) (bool, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return false, err
	}

	var confirmed bool
	prompt := &survey.Confirm{
		Message: message,
	}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, fmt.Errorf("canceled")
	}

	return confirmed, nil
}
