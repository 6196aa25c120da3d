package config

import "github.com/blackridgelabs/rangewalker/pkg/netctl"

// ConfigPrompter is the interactive-input collaborator the core never
// talks to directly: it's wired in by the CLI and satisfied in production
// by a promptui-backed implementation.
type ConfigPrompter interface {
	SelectAdapter(adapters []netctl.Adapter) (netctl.Adapter, error)
	PromptCIDR() (string, error)
	PromptDNS() (string, error)
	PromptGateway() (string, error)
	PromptRotationIntervalMins() (int, error)
	PromptRequestDelayMins() (float64, error)
	PromptSiteSwitchMins() (int, error)
	PromptNumUsers() (int, error)
}

// SelectAdapter rejects an empty adapter list with ErrNoAdapters and
// otherwise delegates the choice to prompter, which presents the numbered
// list. It is a thin wrapper so callers never have to know the prompter's
// presentation details.
func SelectAdapter(prompter ConfigPrompter, adapters []netctl.Adapter) (netctl.Adapter, error) {
	if len(adapters) == 0 {
		return netctl.Adapter{}, ErrNoAdapters
	}
	return prompter.SelectAdapter(adapters)
}
