package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackridgelabs/rangewalker/pkg/netctl"
)

type fakeRunner struct{}

func (fakeRunner) Run(_ context.Context, name string, args ...string) (string, string, error) {
	return "1: eth0: <UP>\n    link/ether aa:bb:cc:dd:ee:ff brd ff:ff:ff:ff:ff:ff\n", "", nil
}

func sitesFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sites.txt")
	require.NoError(t, os.WriteFile(path, []byte("https://example.com\n"), 0o644))
	return path
}

func newFlaggedCmd(t *testing.T) *cobra.Command {
	t.Helper()
	viper.Reset()
	cmd := &cobra.Command{Use: "run"}
	cmd.Flags().String("adapter", "", "")
	cmd.Flags().String("cidr", "", "")
	cmd.Flags().String("dns", "", "")
	cmd.Flags().String("gateway", "", "")
	cmd.Flags().Int("rotation-interval-mins", DefaultRotationIntervalMins, "")
	cmd.Flags().Float64("request-delay-mins", DefaultRequestDelayMins, "")
	cmd.Flags().Int("site-switch-mins", DefaultSiteSwitchMins, "")
	cmd.Flags().Int("num-users", DefaultNumUsers, "")
	for _, name := range []string{"adapter", "cidr", "dns", "gateway", "rotation-interval-mins", "request-delay-mins", "site-switch-mins", "num-users"} {
		require.NoError(t, viper.BindPFlag(name, cmd.Flags().Lookup(name)))
	}
	return cmd
}

func TestLoadConfig_UsesFlagsWithoutPrompting(t *testing.T) {
	cmd := newFlaggedCmd(t)
	require.NoError(t, cmd.Flags().Set("adapter", "eth0"))
	require.NoError(t, cmd.Flags().Set("cidr", "10.0.0.0/28"))
	require.NoError(t, cmd.Flags().Set("dns", "8.8.8.8"))
	require.NoError(t, cmd.Flags().Set("gateway", "10.0.0.1"))

	cfg, warnings, err := LoadConfig(context.Background(), cmd, fakeRunner{}, fakePrompter{}, sitesFile(t))
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, "eth0", cfg.Adapter)
	assert.Equal(t, "10.0.0.0/28", cfg.CIDR)
	assert.Equal(t, DefaultRotationIntervalMins, cfg.RotationIntervalMins)
	assert.Equal(t, MaxDepth, cfg.MaxDepth)
}

func TestLoadConfig_PromptsForUnsetFields(t *testing.T) {
	cmd := newFlaggedCmd(t)

	cfg, _, err := LoadConfig(context.Background(), cmd, fakeRunner{}, fakePrompter{chosen: netctl.Adapter{Name: "eth0"}}, sitesFile(t))
	require.NoError(t, err)
	assert.Equal(t, "eth0", cfg.Adapter)
	assert.Equal(t, "10.0.0.0/24", cfg.CIDR)
	assert.Equal(t, "8.8.8.8", cfg.DNS)
	assert.Equal(t, "10.0.0.1", cfg.Gateway)
}

func TestLoadConfig_FailsOnEmptySiteList(t *testing.T) {
	cmd := newFlaggedCmd(t)
	path := filepath.Join(t.TempDir(), "sites.txt")
	require.NoError(t, os.WriteFile(path, []byte("not-a-url\n"), 0o644))

	_, _, err := LoadConfig(context.Background(), cmd, fakeRunner{}, fakePrompter{}, path)
	assert.ErrorIs(t, err, ErrEmptySiteList)
}
