package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
	"golang.org/x/term"

	"github.com/blackridgelabs/rangewalker/internal/errx"
	"github.com/blackridgelabs/rangewalker/pkg/netctl"
)

// InteractivePrompter is the production ConfigPrompter, backed by promptui
// on the controlling terminal.
type InteractivePrompter struct{}

func wrapPromptErr(err error) error {
	if err == nil {
		return nil
	}
	return errx.Wrap(ErrPromptFailed, err)
}

// requireTerminal fails fast instead of letting promptui hang reading from
// a pipe or /dev/null, matching cmd_run's interactive-exec guard.
func requireTerminal() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ErrNotInteractive
	}
	return nil
}

func (InteractivePrompter) SelectAdapter(adapters []netctl.Adapter) (netctl.Adapter, error) {
	if err := requireTerminal(); err != nil {
		return netctl.Adapter{}, err
	}
	items := make([]string, len(adapters))
	for i, a := range adapters {
		state := "DOWN"
		if a.Up {
			state = "UP"
		}
		items[i] = fmt.Sprintf("%d. %s (%s, %s)", i+1, a.Name, a.MAC, state)
	}
	prompt := promptui.Select{Label: "Select network adapter", Items: items, Size: 10}
	i, _, err := prompt.Run()
	if err != nil {
		return netctl.Adapter{}, wrapPromptErr(err)
	}
	return adapters[i], nil
}

func validateNonEmpty(label string) func(string) error {
	return func(input string) error {
		if input == "" {
			return errx.With(ErrParseUserInput, " %s is required", label)
		}
		return nil
	}
}

func (InteractivePrompter) PromptCIDR() (string, error) {
	if err := requireTerminal(); err != nil {
		return "", err
	}
	prompt := promptui.Prompt{
		Label:    "CIDR block for rotation (e.g. 10.0.0.0/24)",
		Validate: validateNonEmpty("CIDR"),
	}
	result, err := prompt.Run()
	return result, wrapPromptErr(err)
}

func (InteractivePrompter) PromptDNS() (string, error) {
	if err := requireTerminal(); err != nil {
		return "", err
	}
	prompt := promptui.Prompt{Label: "DNS server IPv4"}
	result, err := prompt.Run()
	return result, wrapPromptErr(err)
}

func (InteractivePrompter) PromptGateway() (string, error) {
	if err := requireTerminal(); err != nil {
		return "", err
	}
	prompt := promptui.Prompt{Label: "Default gateway IPv4"}
	result, err := prompt.Run()
	return result, wrapPromptErr(err)
}

func (InteractivePrompter) PromptRotationIntervalMins() (int, error) {
	if err := requireTerminal(); err != nil {
		return 0, err
	}
	return promptInt("Rotation interval (minutes)", DefaultRotationIntervalMins)
}

func (InteractivePrompter) PromptRequestDelayMins() (float64, error) {
	if err := requireTerminal(); err != nil {
		return 0, err
	}
	prompt := promptui.Prompt{
		Label:    "Request delay (minutes, fractional)",
		Default:  strconv.FormatFloat(DefaultRequestDelayMins, 'f', -1, 64),
		Validate: validatePositiveFloat,
	}
	result, err := prompt.Run()
	if err != nil {
		return 0, wrapPromptErr(err)
	}
	value, _ := strconv.ParseFloat(result, 64)
	return value, nil
}

func validatePositiveFloat(input string) error {
	v, err := strconv.ParseFloat(input, 64)
	if err != nil || v <= 0 {
		return errx.With(ErrParseUserInput, " must be a positive number")
	}
	return nil
}

func (InteractivePrompter) PromptSiteSwitchMins() (int, error) {
	if err := requireTerminal(); err != nil {
		return 0, err
	}
	return promptInt("Site-switch interval (minutes)", DefaultSiteSwitchMins)
}

func (InteractivePrompter) PromptNumUsers() (int, error) {
	if err := requireTerminal(); err != nil {
		return 0, err
	}
	return promptInt("Number of virtual users", DefaultNumUsers)
}

func promptInt(label string, def int) (int, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Default:  strconv.Itoa(def),
		Validate: validatePositiveInt,
	}
	result, err := prompt.Run()
	if err != nil {
		return 0, wrapPromptErr(err)
	}
	value, _ := strconv.Atoi(result)
	return value, nil
}

func validatePositiveInt(input string) error {
	v, err := strconv.Atoi(input)
	if err != nil || v < 1 {
		return errx.With(ErrParseUserInput, " must be a positive integer")
	}
	return nil
}
