package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"focusd/internal/bootstrap"
	nightwatchoutadapter "focusd/internal/modules/nightwatch/adapter/out"
	sessionoutadapter "focusd/internal/modules/session/adapter/out"
	"focusd/internal/platform/config"
	uipresenter "focusd/internal/ui/presenter"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "focusd",
		Short:         "Focus session enforcer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "focusd.yaml", "config file path")

	root.AddCommand(newRunCmd(&configPath))
	root.AddCommand(newStartCmd(&configPath))
	root.AddCommand(newSyncCmd(&configPath))
	root.AddCommand(newNightCmd(&configPath))
	root.AddCommand(newDoctorCmd(&configPath))
	return root
}

func newRunCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the focus timer UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			bridge := uipresenter.NewBridge()
			app, err := bootstrap.New(cfg, bridge, bridge)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app, bridge)
		},
	}
}

func newStartCmd(configPath *string) *cobra.Command {
	var work, brk time.Duration

	start := &cobra.Command{
		Use:   "start",
		Short: "Run a focus session in the foreground (Ctrl-C is the emergency stop)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if work > 0 {
				cfg.WorkDuration = work
			}
			if brk > 0 {
				cfg.BreakDuration = brk
			}
			app, err := bootstrap.New(
				cfg,
				sessionoutadapter.NewConsolePresenter(cmd.OutOrStdout()),
				nightwatchoutadapter.NewConsolePresenter(cmd.OutOrStdout()),
			)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return bootstrap.RunHeadless(ctx, app, cfg.WorkDuration, cfg.BreakDuration)
		},
	}
	start.Flags().DurationVar(&work, "work", 0, "work duration (default from config)")
	start.Flags().DurationVar(&brk, "break", 0, "break duration (default from config)")
	return start
}

func newSyncCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Reconcile the local clock against the configured time servers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			app, err := bootstrap.New(
				cfg,
				sessionoutadapter.NewConsolePresenter(cmd.OutOrStdout()),
				nightwatchoutadapter.NewConsolePresenter(cmd.OutOrStdout()),
			)
			if err != nil {
				return err
			}
			out := app.TimeSyncCLI.Sync(cmd.Context())
			if !out.Synced {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "sync failed, trusting local clock")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "synced with %s offset=%s\n", out.Server, out.Offset)
			return nil
		},
	}
}

func newNightCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "night",
		Short: "Show whether the night window is active right now",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			app, err := bootstrap.New(
				cfg,
				sessionoutadapter.NewConsolePresenter(cmd.OutOrStdout()),
				nightwatchoutadapter.NewConsolePresenter(cmd.OutOrStdout()),
			)
			if err != nil {
				return err
			}
			out := app.NightCLI.Check(cmd.Context())
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "night=%t window=[%d,%d) now=%s\n",
				out.Night, out.StartHour, out.EndHour, out.Now.Format("15:04:05"))
			return nil
		},
	}
}

func newDoctorCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Verify the enforcer helper responds",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			app, err := bootstrap.New(
				cfg,
				sessionoutadapter.NewConsolePresenter(cmd.OutOrStdout()),
				nightwatchoutadapter.NewConsolePresenter(cmd.OutOrStdout()),
			)
			if err != nil {
				return err
			}
			defer app.Shutdown(cmd.Context())
			out, err := app.EnforceCLI.Doctor(cmd.Context())
			if err != nil {
				return fmt.Errorf("enforcer check failed: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "enforcer ok: %s %s platform=%s\n", out.Name, out.Version, out.Platform)
			return nil
		},
	}
}
