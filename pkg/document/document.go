// Package document wraps parsed C++ headers: a SourceFile holds the
// declarations of one header and a Registry looks names up across many.
package document

import (
	"fmt"
	"os"
	"path/filepath"

	"cxxdecl/pkg/ast"
	"cxxdecl/pkg/parser"
)

// SourceFile is one parsed header. It is read-only after construction.
type SourceFile struct {
	filename     string                     // path the text was read from
	text         string                     // original header text
	declarations []ast.Declaration          // source order, duplicates kept
	index        map[string]ast.Declaration // last definition of each name
}

// NewFromFile reads and parses a header file
func NewFromFile(filename string, opts ...parser.Option) (*SourceFile, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	absPath, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for %s: %w", filename, err)
	}

	return NewFromContent(absPath, string(content), opts...)
}

// NewFromContent parses content under the given file name
func NewFromContent(name, content string, opts ...parser.Option) (*SourceFile, error) {
	decls, err := parser.New(opts...).Parse(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}

	file := &SourceFile{
		filename:     name,
		text:         content,
		declarations: decls,
		index:        make(map[string]ast.Declaration, len(decls)),
	}
	for _, decl := range decls {
		file.index[decl.DeclName()] = decl
	}
	return file, nil
}

// Filename returns the path of the header
func (f *SourceFile) Filename() string {
	return f.filename
}

// Text returns the header text as read
func (f *SourceFile) Text() string {
	return f.text
}

// Declarations returns every declaration in source order
func (f *SourceFile) Declarations() []ast.Declaration {
	return f.declarations
}

// Declaration looks up a struct, class or enum by name
func (f *SourceFile) Declaration(name string) (ast.Declaration, error) {
	decl, ok := f.index[name]
	if !ok {
		return nil, &LookupError{Name: name, Err: ErrNotFound}
	}
	return decl, nil
}

// Structure looks up a struct or class by name
func (f *SourceFile) Structure(name string) (*ast.Struct, error) {
	decl, err := f.Declaration(name)
	if err != nil {
		return nil, err
	}
	return asStruct(decl)
}

// Enum looks up an enum by name
func (f *SourceFile) Enum(name string) (*ast.Enum, error) {
	decl, err := f.Declaration(name)
	if err != nil {
		return nil, err
	}
	return asEnum(decl)
}

func asStruct(decl ast.Declaration) (*ast.Struct, error) {
	s, ok := decl.(*ast.Struct)
	if !ok {
		return nil, &LookupError{Name: decl.DeclName(), Kind: ast.KindStruct, Err: ErrWrongKind}
	}
	return s, nil
}

func asEnum(decl ast.Declaration) (*ast.Enum, error) {
	e, ok := decl.(*ast.Enum)
	if !ok {
		return nil, &LookupError{Name: decl.DeclName(), Kind: ast.KindEnum, Err: ErrWrongKind}
	}
	return e, nil
}

// DocumentationStats counts documented members and enum variants
type DocumentationStats struct {
	Declarations          int
	TotalMembers          int
	DocumentedMembers     int
	DocumentationCoverage float64
}

// Stats returns documentation statistics for the file
func (f *SourceFile) Stats() *DocumentationStats {
	stats := &DocumentationStats{Declarations: len(f.declarations)}

	for _, decl := range f.declarations {
		switch d := decl.(type) {
		case *ast.Struct:
			for _, member := range d.Members {
				stats.TotalMembers++
				if member.Doc() != "" {
					stats.DocumentedMembers++
				}
			}
		case *ast.Enum:
			for _, variant := range d.Members {
				stats.TotalMembers++
				if variant.Docstring != "" {
					stats.DocumentedMembers++
				}
			}
		}
	}

	if stats.TotalMembers > 0 {
		stats.DocumentationCoverage = float64(stats.DocumentedMembers) / float64(stats.TotalMembers) * 100.0
	}
	return stats
}

// String returns a one-line summary of the file
func (f *SourceFile) String() string {
	stats := f.Stats()
	return fmt.Sprintf("SourceFile[%s]: %d declarations, %d members, %.1f%% documented",
		filepath.Base(f.filename), stats.Declarations, stats.TotalMembers, stats.DocumentationCoverage)
}
