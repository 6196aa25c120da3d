package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/blackridgelabs/rangewalker/internal/errx"
	"github.com/blackridgelabs/rangewalker/pkg/config"
	"github.com/blackridgelabs/rangewalker/pkg/engine"
	"github.com/blackridgelabs/rangewalker/pkg/logging"
	"github.com/blackridgelabs/rangewalker/pkg/netctl"
	"github.com/blackridgelabs/rangewalker/pkg/shutdown"
)

func runRangewalker(cmd *cobra.Command, args []string) error {
	if os.Geteuid() != 0 {
		return ErrNotRoot
	}

	runID := viper.GetString("run-id")
	if runID == "" {
		runID = uuid.New().String()
	}

	sinks := []logging.Sink{logging.NewSlogSink(slog.Default())}
	if logFile := viper.GetString("log-file"); logFile != "" {
		writer, err := logging.NewJSONLWriter(logFile)
		if err != nil {
			return errx.Wrap(ErrOpenLogFile, err)
		}
		sinks = append(sinks, writer)
	}
	emitter := logging.NewEmitter(logging.EmitterConfig{RunID: runID}, sinks...)

	ctx, cancel := shutdown.ContextWithSignal(cmd.Context())
	defer cancel()

	runner := netctl.ExecRunner{}
	cfg, warnings, err := config.LoadConfig(ctx, cmd, runner, config.InteractivePrompter{}, viper.GetString("sites-file"))
	if err != nil {
		return errx.Wrap(ErrLoadConfig, err)
	}
	for _, w := range warnings {
		_ = emitter.Emit(logging.EventSiteListWarning, "skipping invalid site list entry", "", logging.SiteWarningData{Line: w})
	}

	adapters, err := netctl.EnumerateAdapters(ctx, runner)
	if err != nil {
		return errx.Wrap(ErrSnapshotOrRotation, err)
	}
	adapter, found := findAdapter(adapters, cfg.Adapter)
	if !found {
		return errx.With(ErrSnapshotOrRotation, " adapter %q no longer present", cfg.Adapter)
	}

	eng, err := engine.New(ctx, engine.Options{
		Config:     cfg,
		Adapter:    adapter,
		Gateway:    cfg.Gateway,
		DNS:        cfg.DNS,
		RunID:      runID,
		StatusAddr: viper.GetString("status-addr"),
		Sinks:      sinks,
	})
	if err != nil {
		return errx.Wrap(ErrSnapshotOrRotation, err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "rangewalker run %s starting on %s (%d users, rotating every %dm)\n",
		runID, adapter.Name, cfg.NumUsers, cfg.RotationIntervalMins)

	return eng.Run(ctx)
}

func findAdapter(adapters []netctl.Adapter, name string) (netctl.Adapter, bool) {
	for _, a := range adapters {
		if a.Name == name {
			return a, true
		}
	}
	return netctl.Adapter{}, false
}
