package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"
)

const defaultConfigName = ".cxxdecl.yaml"

// directories never searched for headers
var excludeDirs = []string{".git", "build", "node_modules", "vendor"}

// Config represents the structure of a .cxxdecl.yaml configuration file
type Config struct {
	Headers      []string `yaml:"headers,omitempty"`
	Ignore       []string `yaml:"ignore,omitempty"`
	Declarations []string `yaml:"declarations,omitempty"`
}

// LoadConfig reads the configuration at path. An empty path looks for
// .cxxdecl.yaml in the working directory, which may be absent. Relative
// header patterns are resolved against the directory of the file.
func LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigName
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var loaded Config
	if err := yaml.Unmarshal(content, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	for i, header := range loaded.Headers {
		if !filepath.IsAbs(header) {
			loaded.Headers[i] = filepath.Join(filepath.Dir(path), header)
		}
	}
	return &loaded, nil
}

// ResolveHeaders expands args, or the configured headers when args is
// empty, into header paths. Directories are searched recursively, globs
// are expanded and ignored file names are dropped.
func (c *Config) ResolveHeaders(args []string) ([]string, error) {
	patterns := args
	if len(patterns) == 0 {
		patterns = c.Headers
	}

	var files []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			// reported as a read error when the registry loads it
			matches = []string{pattern}
		}

		for _, match := range matches {
			if info, err := os.Stat(match); err == nil && info.IsDir() {
				found, err := findHeaders(match)
				if err != nil {
					return nil, err
				}
				files = append(files, found...)
				continue
			}
			files = append(files, match)
		}
	}

	result := files[:0]
	for _, file := range files {
		if !c.ShouldIgnore(file) {
			result = append(result, file)
		}
	}
	return result, nil
}

// ShouldIgnore checks if a file should be skipped based on its base name
func (c *Config) ShouldIgnore(path string) bool {
	fileName := filepath.Base(path)
	for _, ignorePattern := range c.Ignore {
		if matched, _ := filepath.Match(ignorePattern, fileName); matched {
			return true
		}
	}
	return false
}

// Wants reports whether a declaration should be reported. An empty
// declarations list selects everything.
func (c *Config) Wants(name string) bool {
	if len(c.Declarations) == 0 {
		return true
	}
	for _, wanted := range c.Declarations {
		if wanted == name {
			return true
		}
	}
	return false
}

// findHeaders finds C++ header files below dir
func findHeaders(dir string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			for _, excludeDir := range excludeDirs {
				if info.Name() == excludeDir && path != dir {
					return filepath.SkipDir
				}
			}
			return nil
		}

		if isHeader(path) {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// isHeader checks if a file is a C++ header file
func isHeader(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".h", ".hh", ".hpp", ".hxx":
		return true
	}
	return false
}
