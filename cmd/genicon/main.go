// Command genicon draws the application icon and writes appicon-<size>.png
// for every size plus the canonical appicon.png.
//
// Usage:
//
//	genicon [-config appicon.yaml] [-dir DIR] [-v]
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/postgo/appicon"
	"github.com/postgo/appicon/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("genicon", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "config file (default "+config.DefaultFile+" if present)")
		dir        = fs.String("dir", "", "output directory (overrides config)")
		verbose    = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if *dir != "" {
		cfg.OutputDir = *dir
	}
	setupLogging(stderr, cfg, *verbose)

	g := appicon.NewGenerator(appicon.WithFontPaths(cfg.Fonts...))
	defer func() { _ = g.Close() }()

	fmt.Fprintln(stdout, "Generating icons...")
	for _, size := range appicon.GenerateSizes {
		fmt.Fprintf(stdout, "Creating %dx%d icon...\n", size, size)
		if _, err := g.WriteSet(cfg.OutputDir, []int{size}); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Icons generated successfully!")
	fmt.Fprintf(stdout, "Main icon saved as: %s\n", appicon.CanonicalName)
	fmt.Fprintf(stdout, "Font: %s\n", g.FontName())
	return 0
}

func setupLogging(w io.Writer, cfg *config.Config, verbose bool) {
	level, _ := cfg.Level()
	if verbose {
		level = slog.LevelDebug
	}
	appicon.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})))
}
