// Package cli wires configuration flags to the dashboard and owns process
// startup and fatal-error reporting.
package cli

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pingdeck/internal/logger"
	"pingdeck/internal/probe"
	"pingdeck/internal/ui"
)

var version = "dev"

// SetVersionInfo records the build version injected via ldflags.
func SetVersionInfo(v string) {
	if v != "" {
		version = v
	}
}

// NewRootCmd builds the pingdeck command. Every flag can also be set via a
// PINGDECK_-prefixed environment variable (e.g. PINGDECK_INTERVAL=5s).
func NewRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("PINGDECK")
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "pingdeck [address]",
		Short: "terminal dashboard of ping history",
		Long: "pingdeck periodically pings a target and renders the history of\n" +
			"probe batches as a colorized grid, newest first. Arrow keys select\n" +
			"an entry for inspection.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(v, args)
		},
	}

	cmd.Flags().IntP("count", "c", 5, "probes per batch")
	cmd.Flags().DurationP("interval", "i", 2*time.Second, "time between batches")
	cmd.Flags().DurationP("timeout", "t", time.Second, "per-probe timeout")
	cmd.Flags().IntP("history", "n", 128, "retained history entries")
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		panic(err)
	}

	cmd.Version = version
	return cmd
}

func run(v *viper.Viper, args []string) error {
	cfg := ui.Config{
		Address:  "8.8.8.8",
		Count:    v.GetInt("count"),
		Interval: v.GetDuration("interval"),
		Timeout:  v.GetDuration("timeout"),
		Capacity: v.GetInt("history"),
	}
	if len(args) == 1 {
		cfg.Address = args[0]
	}
	if err := validate(cfg); err != nil {
		return err
	}

	log := logger.NewEnvLogger("[cli]")
	if os.Getenv("PINGDECK_DEBUG") != "" {
		f, err := tea.LogToFile("pingdeck.log", "debug")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
	}
	log.Debug("config: %+v", cfg)

	pinger := probe.New(cfg.Address, cfg.Timeout)
	p := tea.NewProgram(ui.New(cfg, pinger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}
	return nil
}

// validate rejects knob values the dashboard cannot run with.
func validate(cfg ui.Config) error {
	if cfg.Address == "" {
		return fmt.Errorf("address must not be empty")
	}
	if cfg.Count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", cfg.Count)
	}
	if cfg.Capacity < 1 {
		return fmt.Errorf("history must be at least 1, got %d", cfg.Capacity)
	}
	if cfg.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %s", cfg.Interval)
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", cfg.Timeout)
	}
	return nil
}

// Execute runs the root command, exiting non-zero on any fatal error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
