package document

import (
	"fmt"
	"path/filepath"
	"sort"

	"cxxdecl/pkg/ast"
	"cxxdecl/pkg/parser"
)

// Registry is an ordered set of parsed headers. Lookups search the files
// in registration order and return the first match.
type Registry struct {
	files  []*SourceFile
	byName map[string]*SourceFile
	opts   []parser.Option
}

// NewRegistry parses every file matched by patterns. A pattern is either a
// path or a filepath.Glob pattern; files are added in pattern order and,
// within one glob, in lexical order.
func NewRegistry(patterns []string, opts ...parser.Option) (*Registry, error) {
	r := &Registry{
		byName: make(map[string]*SourceFile),
		opts:   opts,
	}

	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			// not a glob, or a glob without matches: reported by the read
			matches = []string{pattern}
		}
		for _, path := range matches {
			if _, err := r.AddFile(path); err != nil {
				return nil, err
			}
		}
	}

	return r, nil
}

// AddFile reads and parses path. A file already registered is returned
// without being parsed again.
func (r *Registry) AddFile(path string) (*SourceFile, error) {
	if absPath, err := filepath.Abs(path); err == nil {
		if file, ok := r.byName[absPath]; ok {
			return file, nil
		}
	}

	file, err := NewFromFile(path, r.opts...)
	if err != nil {
		return nil, err
	}
	r.Add(file)
	return file, nil
}

// Add registers an already parsed file
func (r *Registry) Add(file *SourceFile) {
	if r.byName == nil {
		r.byName = make(map[string]*SourceFile)
	}
	if _, ok := r.byName[file.Filename()]; ok {
		return
	}
	r.files = append(r.files, file)
	r.byName[file.Filename()] = file
}

// Files returns the registered files in registration order
func (r *Registry) Files() []*SourceFile {
	return r.files
}

// Get returns the file registered under filename
func (r *Registry) Get(filename string) (*SourceFile, bool) {
	if file, ok := r.byName[filename]; ok {
		return file, true
	}
	absPath, err := filepath.Abs(filename)
	if err != nil {
		return nil, false
	}
	file, ok := r.byName[absPath]
	return file, ok
}

// Declaration returns the first definition of name across all files
func (r *Registry) Declaration(name string) (ast.Declaration, error) {
	for _, file := range r.files {
		if decl, err := file.Declaration(name); err == nil {
			return decl, nil
		}
	}
	return nil, &LookupError{Name: name, Err: ErrNotFound}
}

// Structure returns the first definition of name, which must be a struct
// or class
func (r *Registry) Structure(name string) (*ast.Struct, error) {
	decl, err := r.Declaration(name)
	if err != nil {
		return nil, err
	}
	return asStruct(decl)
}

// Enum returns the first definition of name, which must be an enum
func (r *Registry) Enum(name string) (*ast.Enum, error) {
	decl, err := r.Declaration(name)
	if err != nil {
		return nil, err
	}
	return asEnum(decl)
}

// Names returns every declared name, sorted
func (r *Registry) Names() []string {
	seen := make(map[string]bool)
	var names []string
	for _, file := range r.files {
		for _, decl := range file.Declarations() {
			if !seen[decl.DeclName()] {
				seen[decl.DeclName()] = true
				names = append(names, decl.DeclName())
			}
		}
	}
	sort.Strings(names)
	return names
}
