package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blackridgelabs/rangewalker/pkg/netctl"
)

type fakePrompter struct {
	chosen netctl.Adapter
}

func (f fakePrompter) SelectAdapter(adapters []netctl.Adapter) (netctl.Adapter, error) {
	return f.chosen, nil
}
func (fakePrompter) PromptCIDR() (string, error)                { return "10.0.0.0/24", nil }
func (fakePrompter) PromptDNS() (string, error)                 { return "8.8.8.8", nil }
func (fakePrompter) PromptGateway() (string, error)             { return "10.0.0.1", nil }
func (fakePrompter) PromptRotationIntervalMins() (int, error)   { return 15, nil }
func (fakePrompter) PromptRequestDelayMins() (float64, error)   { return 2.0, nil }
func (fakePrompter) PromptSiteSwitchMins() (int, error)         { return 30, nil }
func (fakePrompter) PromptNumUsers() (int, error)               { return 3, nil }

func TestSelectAdapter_NoneEligibleIsError(t *testing.T) {
	_, err := SelectAdapter(fakePrompter{}, nil)
	assert.ErrorIs(t, err, ErrNoAdapters)
}

func TestSelectAdapter_DelegatesToPrompter(t *testing.T) {
	want := netctl.Adapter{Name: "eth0"}
	got, err := SelectAdapter(fakePrompter{chosen: want}, []netctl.Adapter{want})
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}
