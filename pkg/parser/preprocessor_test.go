package parser

import (
	"testing"
)

func TestStripMacroDefinitions(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"single line", "#define A 1\nint x;", "int x;"},
		{"continued", "#define B \\\n  2 \\\n  3\nint y;", "int y;"},
		{"indented", "  #  define C\nint z;", "int z;"},
		{"other directives kept", "#include <vector>\n#pragma once", "#include <vector>\n#pragma once"},
		{"similar name kept", "#defined\n#define_x", "#defined\n#define_x"},
		{"no directives", "struct A {};", "struct A {};"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripMacroDefinitions(tt.input); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}
