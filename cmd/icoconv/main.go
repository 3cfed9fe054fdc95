// Command icoconv packages appicon.png into windows/icon.ico with embedded
// sizes 256, 128, 64, 48, 32 and 16.
//
// Usage:
//
//	icoconv [-config appicon.yaml] [-src PNG] [-dst ICO] [-syso FILE] [-arch ARCH] [-verify] [-v]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/postgo/appicon"
	"github.com/postgo/appicon/ico"
	"github.com/postgo/appicon/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("icoconv", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "config file (default "+config.DefaultFile+" if present)")
		src        = fs.String("src", "", "source PNG (overrides config)")
		dst        = fs.String("dst", "", "destination ICO (overrides config)")
		syso       = fs.String("syso", "", "also write a Windows resource object to this path")
		arch       = fs.String("arch", "", "resource object architecture (overrides config)")
		verify     = fs.Bool("verify", false, "read the container back and list its sizes")
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
	override(&cfg.Source, *src)
	override(&cfg.ICO, *dst)
	override(&cfg.Syso, *syso)
	override(&cfg.SysoArch, *arch)
	setupLogging(stderr, cfg, *verbose)

	fmt.Fprintln(stdout, "Converting PNG to ICO format...")
	fmt.Fprintf(stdout, "Creating ICO with multiple sizes %v...\n", ico.ContainerSizes)
	if err := ico.Convert(cfg.Source, cfg.ICO); errors.Is(err, ico.ErrSourceNotFound) {
		fmt.Fprintf(stderr, "Error: %s not found!\n", cfg.Source)
		fmt.Fprintln(stderr, "Please run genicon first.")
		return 1
	} else if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "\nSuccess! Icon saved to: %s\n", cfg.ICO)

	if cfg.Syso != "" {
		img, err := ico.Load(cfg.Source)
		if err == nil {
			err = ico.WriteSyso(cfg.Syso, img, cfg.SysoArch)
		}
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "Resource object saved to: %s (%s)\n", cfg.Syso, cfg.SysoArch)
	}

	if *verify {
		entries, err := ico.InspectFile(cfg.ICO)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		for _, e := range entries {
			fmt.Fprintf(stdout, "  %dx%d %d-bit, %d bytes\n", e.Width, e.Height, e.BitCount, e.Size)
		}
	}
	return 0
}

func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
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
