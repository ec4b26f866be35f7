package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"hotserve/core/config"
	"hotserve/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "hotserve [dir]",
	Short: "Serve a static website with live reload",
	Long: `hotserve serves a directory over http://127.0.0.1 and reloads connected
browsers whenever a file below that directory changes.

HTML pages get a small script appended that polls /hot and reloads the page
when the reported version changes.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runServer,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := RootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		// Use the application's standard logger for error reporting
		// We default to console format to match user expectations (CLI tool)
		cfg := &logger.Config{
			Level:  "info",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	config.RegisterFlags(RootCmd.Flags())
}
