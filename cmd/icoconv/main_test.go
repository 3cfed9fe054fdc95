package main

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/postgo/appicon"
	"github.com/postgo/appicon/ico"
)

func TestRunMissingSource(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	var stdout, stderr bytes.Buffer
	code := run(nil, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("run() = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "appicon.png not found") {
		t.Errorf("stderr = %q, want it to name appicon.png", stderr.String())
	}
	if _, err := os.Stat(filepath.Join(dir, "windows")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("output directory created (stat err = %v)", err)
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	var buf bytes.Buffer
	if err := png.Encode(&buf, appicon.Background(512)); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile("appicon.png", buf.Bytes(), 0o600); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	code := run([]string{"-verify", "-syso", "rsrc_windows_amd64.syso"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run() = %d, stderr:\n%s", code, stderr.String())
	}
	if _, err := os.Stat(filepath.Join("windows", "icon.ico")); err != nil {
		t.Errorf("icon.ico: %v", err)
	}
	if _, err := os.Stat("rsrc_windows_amd64.syso"); err != nil {
		t.Errorf("syso: %v", err)
	}
	for _, want := range []string{"256x256", "128x128", "64x64", "48x48", "32x32", "16x16"} {
		if !strings.Contains(stdout.String(), want) {
			t.Errorf("verify output missing %s:\n%s", want, stdout.String())
		}
	}
	if stderr.Len() != 0 {
		t.Errorf("stderr not empty on a clean run:\n%s", stderr.String())
	}
}

func TestRunSharedOutputDir(t *testing.T) {
	t.Chdir(t.TempDir())
	if err := os.WriteFile("appicon.yaml", []byte("output_dir: build\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir("build", 0o755); err != nil {
		t.Fatal(err)
	}

	g := appicon.NewGenerator(appicon.WithFontLoaders(appicon.EmbeddedFont()))
	defer func() { _ = g.Close() }()
	if _, err := g.WriteSet("build", []int{appicon.CanonicalSize}); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	if code := run(nil, &stdout, &stderr); code != 0 {
		t.Fatalf("run() = %d, stderr:\n%s", code, stderr.String())
	}
	if _, err := ico.InspectFile(filepath.Join("windows", "icon.ico")); err != nil {
		t.Errorf("icon.ico: %v", err)
	}
}

func TestRunCustomPaths(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(t.TempDir())

	src := filepath.Join(dir, "logo.png")
	var buf bytes.Buffer
	if err := png.Encode(&buf, appicon.Background(64)); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(src, buf.Bytes(), 0o600); err != nil {
		t.Fatal(err)
	}
	dst := filepath.Join(dir, "out", "app.ico")

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-src", src, "-dst", dst}, &stdout, &stderr); code != 0 {
		t.Fatalf("run() = %d, stderr:\n%s", code, stderr.String())
	}
	if _, err := os.Stat(dst); err != nil {
		t.Error(err)
	}
}
