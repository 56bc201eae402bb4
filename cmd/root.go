package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/pomo/internal/config"
	"github.com/Tiliavir/pomo/internal/logger"
	"github.com/Tiliavir/pomo/internal/menu"
	"github.com/Tiliavir/pomo/internal/sessionlog"
	"github.com/Tiliavir/pomo/internal/storage"
	"github.com/Tiliavir/pomo/internal/timer"
)

var rootCmd = &cobra.Command{
	Use:   "pomo",
	Short: "pomo – a Pomodoro study timer",
	Long: `pomo runs 25-minute work and 5-minute break intervals from an interactive menu.
Completed sessions are stored as human-readable JSON in ~/.pomo/.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPomo,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logger.Error("command failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runPomo(cmd *cobra.Command, args []string) error {
	base, err := storage.BaseDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg, err := config.Load(base)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := logger.Init(logger.Config{Debug: cfg.Debug, BaseDir: base}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}

	store := storage.File{Path: cfg.DataFile}
	log, err := sessionlog.Open(store)
	if err != nil {
		if errors.Is(err, storage.ErrCorrupt) {
			logger.Error("session file is corrupt", "path", store.Path, "error", err)
			fmt.Fprintf(os.Stderr, "Error: %v\nFix or remove the file to continue; nothing was overwritten.\n", err)
		} else {
			logger.Error("loading sessions failed", "path", store.Path, "error", err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(2)
	}
	logger.Info("sessions loaded", "path", store.Path, "count", log.Len())

	out := cmd.OutOrStdout()
	router := newInterruptRouter(func() {
		fmt.Fprintln(out, "\n✓ Sessions saved! Keep studying! 📚")
		os.Exit(0)
	})
	stop := router.listen(os.Interrupt)
	defer stop()

	runner := timer.New(out, cfg.BellEnabled())
	return menu.New(cmd.InOrStdin(), out, log, runner, router).Run(cmd.Context())
}
