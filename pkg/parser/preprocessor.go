package parser

import (
	"strings"
)

// StripMacroDefinitions removes #define lines, including bodies continued
// with a trailing backslash. Other directives are left for the tokenizer,
// which skips them.
func StripMacroDefinitions(text string) string {
	lines := strings.Split(text, "\n")
	result := make([]string, 0, len(lines))
	continued := false

	for _, line := range lines {
		if continued {
			continued = endsWithBackslash(line)
			continue
		}
		if isDefine(line) {
			continued = endsWithBackslash(line)
			continue
		}
		result = append(result, line)
	}

	return strings.Join(result, "\n")
}

// isDefine reports whether line is a #define directive
func isDefine(line string) bool {
	directive, ok := strings.CutPrefix(strings.TrimLeft(line, " \t"), "#")
	if !ok {
		return false
	}
	rest, ok := strings.CutPrefix(strings.TrimLeft(directive, " \t"), "define")
	if !ok {
		return false
	}
	return rest == "" || rest[0] == ' ' || rest[0] == '\t' || rest[0] == '\r'
}

func endsWithBackslash(line string) bool {
	return strings.HasSuffix(strings.TrimRight(line, " \t\r"), "\\")
}
