package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dverhagen/gpx-splitter/internal/config"
	"github.com/dverhagen/gpx-splitter/internal/split"
)

func printUsage() {
	fmt.Println("GPX Splitter - Split multi-route GPX files into single-route files")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  gpx-split -input <file.gpx>")
	fmt.Println("  gpx-split -i <file.gpx>")
	fmt.Println()
	fmt.Println("For interactive mode, use: gpx-split-tui")
	fmt.Println()
	flag.PrintDefaults()
}

func main() {
	// Command line flags
	var input string
	flag.StringVar(&input, "input", "", "GPX file(s) to split (comma-separated or newline-separated)")
	flag.StringVar(&input, "i", "", "Shorthand for -input")

	flag.Parse()

	if input == "" {
		printUsage()
		return
	}

	// Load config from the default path; a missing file yields defaults
	settings := config.DefaultSettings()
	if path, perr := config.DefaultPath(); perr == nil {
		loaded, err := config.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		settings = loaded
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	// Create manager with progress callback
	manager := split.NewManager(settings, func(event split.ProgressEvent) {
		if event.Level == split.LevelVerbose && !settings.Verbose {
			return
		}

		prefix := ""
		switch event.Level {
		case split.LevelError:
			prefix = "❌ "
		case split.LevelWarning:
			prefix = "⚠️  "
		case split.LevelSuccess:
			prefix = "✅ "
		case split.LevelInfo:
			prefix = "ℹ️  "
		default:
			prefix = "   "
		}

		fmt.Println(prefix + event.Message)
	})

	// Initialize
	fmt.Println("🗺  GPX Splitter")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println()

	if err := manager.Initialize(ctx, input); err != nil {
		if errors.Is(err, split.ErrNoInputs) {
			fmt.Println()
			printUsage()
			return
		}
		fmt.Fprintf(os.Stderr, "Error initializing: %v\n", err)
		os.Exit(1)
	}

	// Start splits
	fmt.Println("\n✂️  Starting split...")
	fmt.Println()

	if err := manager.StartSplits(ctx); err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nSplit cancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error during split: %v\n", err)
		os.Exit(1)
	}

	completed, failed, total := manager.GetProgress()
	var routes int
	for _, result := range manager.Results() {
		routes += result.TracksWritten
	}

	fmt.Println()
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("✨ Complete! Split %d/%d file(s) into %d route file(s)\n", completed, total, routes)
	if failed > 0 {
		fmt.Printf("   (%d file(s) failed)\n", failed)
	}
}
