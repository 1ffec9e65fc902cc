package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, defaultConfigName)
	writeFile(t, path, `
headers:
  - include/*.h
ignore:
  - "*_generated.h"
declarations:
  - Widget
  - Color
`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if len(config.Headers) != 1 || config.Headers[0] != filepath.Join(dir, "include", "*.h") {
		t.Errorf("Unexpected headers: %v", config.Headers)
	}
	if len(config.Ignore) != 1 || config.Ignore[0] != "*_generated.h" {
		t.Errorf("Unexpected ignore list: %v", config.Ignore)
	}
	if len(config.Declarations) != 2 {
		t.Errorf("Unexpected declarations: %v", config.Declarations)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Expected error for a missing explicit config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "headers: [unclosed")
	if _, err := LoadConfig(bad); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestConfigWants(t *testing.T) {
	all := &Config{}
	if !all.Wants("Anything") {
		t.Error("Expected an empty declarations list to select everything")
	}

	some := &Config{Declarations: []string{"Widget"}}
	if !some.Wants("Widget") {
		t.Error("Expected Widget to be wanted")
	}
	if some.Wants("Gadget") {
		t.Error("Expected Gadget not to be wanted")
	}
}

func TestResolveHeaders(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.h"), "")
	writeFile(t, filepath.Join(dir, "b.hpp"), "")
	writeFile(t, filepath.Join(dir, "notes.txt"), "")
	writeFile(t, filepath.Join(dir, "sub", "c.hxx"), "")
	writeFile(t, filepath.Join(dir, "sub", "skip_generated.h"), "")
	writeFile(t, filepath.Join(dir, "build", "d.h"), "")

	config := &Config{
		Headers: []string{dir},
		Ignore:  []string{"*_generated.h"},
	}

	t.Run("configured directory", func(t *testing.T) {
		files, err := config.ResolveHeaders(nil)
		if err != nil {
			t.Fatalf("Failed to resolve headers: %v", err)
		}
		expected := []string{
			filepath.Join(dir, "a.h"),
			filepath.Join(dir, "b.hpp"),
			filepath.Join(dir, "sub", "c.hxx"),
		}
		if len(files) != len(expected) {
			t.Fatalf("Expected %v, got %v", expected, files)
		}
		for i := range expected {
			if files[i] != expected[i] {
				t.Errorf("Expected %v, got %v", expected, files)
				break
			}
		}
	})

	t.Run("arguments override", func(t *testing.T) {
		files, err := config.ResolveHeaders([]string{filepath.Join(dir, "*.h")})
		if err != nil {
			t.Fatalf("Failed to resolve headers: %v", err)
		}
		if len(files) != 1 || files[0] != filepath.Join(dir, "a.h") {
			t.Errorf("Expected only a.h, got %v", files)
		}
	})

	t.Run("missing file kept", func(t *testing.T) {
		missing := filepath.Join(dir, "missing.h")
		files, err := config.ResolveHeaders([]string{missing})
		if err != nil {
			t.Fatalf("Failed to resolve headers: %v", err)
		}
		if len(files) != 1 || files[0] != missing {
			t.Errorf("Expected %s, got %v", missing, files)
		}
	})

	t.Run("invalid pattern", func(t *testing.T) {
		if _, err := config.ResolveHeaders([]string{"[invalid"}); err == nil {
			t.Error("Expected error for an invalid pattern")
		}
	})
}

func TestIsHeader(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"a.h", true},
		{"a.HPP", true},
		{"a.hh", true},
		{"a.hxx", true},
		{"a.cpp", false},
		{"Makefile", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isHeader(tt.name); got != tt.expected {
				t.Errorf("isHeader(%q) = %v, expected %v", tt.name, got, tt.expected)
			}
		})
	}
}
