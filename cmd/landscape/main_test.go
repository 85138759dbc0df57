package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/fractal-landscape/internal/config"
	"github.com/Faultbox/fractal-landscape/internal/landscape"
)

func TestCmdGenerate(t *testing.T) {
	cfg := config.Default()
	cfg.Terrain.Seed = 42

	var out bytes.Buffer
	if err := cmdGenerate(&out, cfg, []string{"-depth", "3", "-randomness", "0,5"}); err != nil {
		t.Fatalf("cmdGenerate failed: %v", err)
	}

	text := out.String()
	for _, want := range []string{
		"Seed:       42",
		"Depth:      3 (9x9 grid)",
		"Randomness: 0.5",
		"Triangles:  448 (384 cell, 64 perimeter)",
		"water",
		"rock",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("summary missing %q:\n%s", want, text)
		}
	}
}

func TestCmdGenerateDefaults(t *testing.T) {
	cfg := config.Default()
	cfg.Terrain.Seed = 7

	var out bytes.Buffer
	if err := cmdGenerate(&out, cfg, nil); err != nil {
		t.Fatalf("cmdGenerate failed: %v", err)
	}
	if !strings.Contains(out.String(), "6144 cell") {
		t.Errorf("default summary should report 6144 cell triangles:\n%s", out.String())
	}
}

func TestCmdGenerateInvalidInput(t *testing.T) {
	cfg := config.Default()

	var out bytes.Buffer
	err := cmdGenerate(&out, cfg, []string{"-depth", "zero"})

	var inputErr *landscape.InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("cmdGenerate() error = %v, want *landscape.InputError", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no summary on invalid input, got:\n%s", out.String())
	}
}

func TestCmdClassify(t *testing.T) {
	var out bytes.Buffer
	if err := cmdClassify(&out, []string{"0.1", "0,35", "0.5", "0.9"}); err != nil {
		t.Fatalf("cmdClassify failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	want := []string{"water", "sand", "grass", "rock"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), out.String())
	}
	for i, line := range lines {
		if !strings.HasSuffix(line, want[i]) {
			t.Errorf("line %d = %q, want suffix %q", i, line, want[i])
		}
	}

	if err := cmdClassify(&out, []string{"tall"}); err == nil {
		t.Error("expected error for non-numeric height")
	}
	if err := cmdClassify(&out, nil); err == nil {
		t.Error("expected error with no heights")
	}
}

func TestCmdConfig(t *testing.T) {
	cfg := config.Default()

	var out bytes.Buffer
	if err := cmdConfig(&out, cfg, []string{"-"}); err != nil {
		t.Fatalf("cmdConfig(-) failed: %v", err)
	}
	if !strings.Contains(out.String(), "footprint_size: 50") {
		t.Errorf("YAML output missing terrain section:\n%s", out.String())
	}

	path := filepath.Join(t.TempDir(), "landscape.yaml")
	out.Reset()
	if err := cmdConfig(&out, cfg, []string{path}); err != nil {
		t.Fatalf("cmdConfig(path) failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config not written: %v", err)
	}
}
