// Package formatter renders parsed declarations back into C++ text
package formatter

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"cxxdecl/pkg/ast"
)

// Formatter handles code reconstruction and formatting
type Formatter struct {
	indentSize int
	useSpaces  bool
}

// New creates a new formatter
func New() *Formatter {
	return &Formatter{
		indentSize: 4,
		useSpaces:  true,
	}
}

// ReconstructDeclarations renders every declaration, separated by blank lines
func (f *Formatter) ReconstructDeclarations(decls []ast.Declaration) string {
	parts := make([]string, 0, len(decls))
	for _, decl := range decls {
		parts = append(parts, f.ReconstructDeclaration(decl))
	}
	return strings.Join(parts, "\n")
}

// ReconstructDeclaration renders one struct or enum
func (f *Formatter) ReconstructDeclaration(decl ast.Declaration) string {
	switch d := decl.(type) {
	case *ast.Struct:
		return f.ReconstructStruct(d)
	case *ast.Enum:
		return f.ReconstructEnum(d)
	}
	return ""
}

// ReconstructStruct renders a struct with an access label before every
// change of accessibility. The class/struct keyword is not kept by the
// model, so members start out public.
func (f *Formatter) ReconstructStruct(s *ast.Struct) string {
	var result strings.Builder

	result.WriteString("struct " + s.Name)
	if len(s.Bases) > 0 {
		bases := make([]string, 0, len(s.Bases))
		for _, base := range s.Bases {
			entry := base.Accessibility.String() + " " + base.Name
			if base.Virtual {
				entry = "virtual " + entry
			}
			bases = append(bases, entry)
		}
		result.WriteString(" : " + strings.Join(bases, ", "))
	}
	result.WriteString(" {\n")

	access := ast.AccessPublic
	for _, member := range s.Members {
		if member.MemberAccessibility() != access {
			access = member.MemberAccessibility()
			result.WriteString(access.String() + ":\n")
		}

		if doc := f.formatDocComment(member.Doc(), 1); doc != "" {
			result.WriteString(doc + "\n")
		}

		var signature string
		switch m := member.(type) {
		case *ast.Field:
			signature = m.Signature()
		case *ast.Method:
			signature = m.Signature(s.Name)
		}
		result.WriteString(f.getIndent(1) + signature + ";\n")
	}

	result.WriteString("};\n")
	return result.String()
}

// ReconstructEnum renders an enum. Enumerator values are not kept by the
// model and are not written.
func (f *Formatter) ReconstructEnum(e *ast.Enum) string {
	var result strings.Builder

	result.WriteString("enum " + e.Name + " {\n")
	for _, variant := range e.Members {
		if doc := f.formatDocComment(variant.Docstring, 1); doc != "" {
			result.WriteString(doc + "\n")
		}
		result.WriteString(f.getIndent(1) + variant.Name + ",\n")
	}
	result.WriteString("};\n")
	return result.String()
}

// formatDocComment renders a docstring as a /// line, or as a /** */ block
// when it spans several lines
func (f *Formatter) formatDocComment(doc string, depth int) string {
	if doc == "" {
		return ""
	}

	indent := f.getIndent(depth)
	lines := strings.Split(doc, "\n")
	if len(lines) == 1 {
		return indent + "/// " + doc
	}

	var result strings.Builder
	result.WriteString(indent + "/**\n")
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			result.WriteString(indent + " * " + strings.TrimSpace(line) + "\n")
		} else {
			result.WriteString(indent + " *\n")
		}
	}
	result.WriteString(indent + " */")
	return result.String()
}

// getIndent returns the indentation string for the given depth
func (f *Formatter) getIndent(depth int) string {
	if f.useSpaces {
		return strings.Repeat(" ", depth*f.indentSize)
	}
	return strings.Repeat("\t", depth)
}

// FormatWithClang formats the code using clang-format
func (f *Formatter) FormatWithClang(code string) (string, error) {
	tmpFile, err := os.CreateTemp("", "cxxdecl-*.h")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name())
	defer tmpFile.Close()

	if _, err := tmpFile.WriteString(code); err != nil {
		return "", fmt.Errorf("failed to write to temp file: %w", err)
	}
	tmpFile.Close()

	cmd := exec.Command("clang-format", tmpFile.Name())
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("clang-format failed: %w", err)
	}

	return string(output), nil
}

// GetDeclarationSummary returns a short multi-line description of a
// declaration
func (f *Formatter) GetDeclarationSummary(decl ast.Declaration) string {
	var result strings.Builder

	result.WriteString(fmt.Sprintf("Kind: %s\n", decl.Kind()))
	result.WriteString(fmt.Sprintf("Name: %s\n", decl.DeclName()))

	switch d := decl.(type) {
	case *ast.Struct:
		if len(d.Bases) > 0 {
			names := make([]string, 0, len(d.Bases))
			for _, base := range d.Bases {
				names = append(names, base.Name)
			}
			result.WriteString(fmt.Sprintf("Bases: %s\n", strings.Join(names, ", ")))
		}
		result.WriteString(fmt.Sprintf("Fields: %d\n", len(d.Fields)))
		result.WriteString(fmt.Sprintf("Methods: %d\n", len(d.Methods)))
		if overloaded := len(d.Members) - len(d.Fields) - len(d.Methods); overloaded > 0 {
			result.WriteString(fmt.Sprintf("Shadowed: %d\n", overloaded))
		}
	case *ast.Enum:
		result.WriteString(fmt.Sprintf("Variants: %d\n", len(d.Members)))
	}

	return result.String()
}
