package parser

import (
	"strings"
)

type docPlacement int

const (
	docNone     docPlacement = iota
	docLeading               // documents the next member
	docTrailing              // ///< documents the previous member
)

// cleanDocComment classifies a comment token and strips its markers.
// Line comments lose the /// prefix; block comments are de-indented with
// the leading * of each line removed.
func cleanDocComment(text string) (string, docPlacement) {
	switch {
	case strings.HasPrefix(text, "////"):
		return "", docNone
	case strings.HasPrefix(text, "///<"), strings.HasPrefix(text, "//!<"):
		return strings.TrimSpace(text[4:]), docTrailing
	case strings.HasPrefix(text, "///"), strings.HasPrefix(text, "//!"):
		return strings.TrimSpace(text[3:]), docLeading
	case text == "/**/":
		return "", docNone
	case strings.HasPrefix(text, "/**<"), strings.HasPrefix(text, "/*!<"):
		return cleanBlock(text[4:]), docTrailing
	case strings.HasPrefix(text, "/**"), strings.HasPrefix(text, "/*!"):
		return cleanBlock(text[3:]), docLeading
	}
	return "", docNone
}

// cleanBlock de-indents the inside of a /** */ comment
func cleanBlock(body string) string {
	body = strings.TrimSpace(strings.TrimSuffix(body, "*/"))
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		line = strings.TrimLeft(line, " \t")
		line = strings.TrimPrefix(line, "*")
		lines[i] = strings.TrimSpace(line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// docBuffer collects leading documentation until a member claims it
type docBuffer struct {
	text strings.Builder
}

func (d *docBuffer) add(doc string) {
	d.text.WriteString(doc)
	d.text.WriteString("\n")
}

// take returns the pending docstring and clears the buffer
func (d *docBuffer) take() string {
	doc := strings.TrimSpace(d.text.String())
	d.text.Reset()
	return doc
}

// appendDoc joins a trailing comment onto an existing docstring
func appendDoc(existing, doc string) string {
	if existing == "" {
		return doc
	}
	if doc == "" {
		return existing
	}
	return existing + "\n" + doc
}
