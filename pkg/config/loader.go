package config

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/blackridgelabs/rangewalker/pkg/netctl"
)

// LoadConfig assembles a Config from Viper-bound flags and environment
// variables (no config file is read), prompting
// the operator through prompter for any field left unset, enumerating
// adapters through runner, and loading the site list from sitesPath.
// Warnings collects invalid site-list lines skipped per LoadSites; the
// caller is expected to log them, not fail on them.
func LoadConfig(ctx context.Context, cmd *cobra.Command, runner netctl.Runner, prompter ConfigPrompter, sitesPath string) (cfg *Config, warnings []string, err error) {
	sites, warnings, err := LoadSites(sitesPath)
	if err != nil {
		return nil, warnings, err
	}

	adapters, err := netctl.EnumerateAdapters(ctx, runner)
	if err != nil {
		return nil, warnings, err
	}

	adapterName := viper.GetString("adapter")
	if adapterName == "" {
		chosen, selErr := SelectAdapter(prompter, adapters)
		if selErr != nil {
			return nil, warnings, selErr
		}
		adapterName = chosen.Name
	}

	cidr := viper.GetString("cidr")
	if cidr == "" {
		if cidr, err = prompter.PromptCIDR(); err != nil {
			return nil, warnings, err
		}
	}

	dns := viper.GetString("dns")
	if dns == "" {
		if dns, err = prompter.PromptDNS(); err != nil {
			return nil, warnings, err
		}
	}

	gateway := viper.GetString("gateway")
	if gateway == "" {
		if gateway, err = prompter.PromptGateway(); err != nil {
			return nil, warnings, err
		}
	}

	rotationIntervalMins := viper.GetInt("rotation-interval-mins")
	if !cmd.Flags().Changed("rotation-interval-mins") && rotationIntervalMins == DefaultRotationIntervalMins {
		if rotationIntervalMins, err = prompter.PromptRotationIntervalMins(); err != nil {
			return nil, warnings, err
		}
	}

	requestDelayMins := viper.GetFloat64("request-delay-mins")
	if !cmd.Flags().Changed("request-delay-mins") && requestDelayMins == DefaultRequestDelayMins {
		if requestDelayMins, err = prompter.PromptRequestDelayMins(); err != nil {
			return nil, warnings, err
		}
	}

	siteSwitchMins := viper.GetInt("site-switch-mins")
	if !cmd.Flags().Changed("site-switch-mins") && siteSwitchMins == DefaultSiteSwitchMins {
		if siteSwitchMins, err = prompter.PromptSiteSwitchMins(); err != nil {
			return nil, warnings, err
		}
	}

	numUsers := viper.GetInt("num-users")
	if !cmd.Flags().Changed("num-users") && numUsers == DefaultNumUsers {
		if numUsers, err = prompter.PromptNumUsers(); err != nil {
			return nil, warnings, err
		}
	}

	cfg = &Config{
		Sites:                sites,
		Adapter:              adapterName,
		CIDR:                 cidr,
		DNS:                  dns,
		Gateway:              gateway,
		RotationIntervalMins: rotationIntervalMins,
		RequestDelayMins:     requestDelayMins,
		SiteSwitchMins:       siteSwitchMins,
		NumUsers:             numUsers,
		MaxDepth:             MaxDepth,
	}

	if err := Validate(cfg); err != nil {
		return nil, warnings, err
	}
	return cfg, warnings, nil
}
