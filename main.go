package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/boolean-maybe/trialscope/config"
	"github.com/boolean-maybe/trialscope/internal/app"
	"github.com/boolean-maybe/trialscope/internal/bootstrap"
	"github.com/boolean-maybe/trialscope/internal/report"
)

// main runs the application bootstrap and starts the TUI.
func main() {
	// Handle version flag
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v") {
		fmt.Printf("trialscope version %s\ncommit: %s\nbuilt: %s\n",
			config.Version, config.GitCommit, config.BuildDate)
		os.Exit(0)
	}

	// Initialize paths early - this must succeed for the application to function
	if err := config.InitPaths(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	// Handle report mode (standalone insight report viewer)
	if len(os.Args) > 1 && os.Args[1] == "report" {
		if len(os.Args) < 3 {
			_, _ = fmt.Fprintln(os.Stderr, "usage: trialscope report <file.md|->")
			os.Exit(2)
		}
		if err := report.Run(os.Args[2]); err != nil {
			_, _ = fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		return
	}

	// Bootstrap application
	result, err := bootstrap.Bootstrap()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	if result == nil {
		// User aborted first-run setup
		return
	}

	// Cleanup on exit
	defer result.App.Stop()

	// Run application
	if err := app.Run(result.App, result.RootLayout); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}

	// Save user preferences on shutdown
	if err := config.SaveHeaderVisible(result.RootLayout.IsHeaderVisible()); err != nil {
		slog.Warn("failed to save header visibility preference", "error", err)
	}

	// Keep logLevel referenced so it isn't optimized away in some builds
	_ = result.LogLevel
}
