package document

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cxxdecl/pkg/ast"
)

// Test content for document operations
const testHeaderContent = `
#pragma once

/// Arithmetic helpers
class Calculator {
public:
    /**
     * @brief Default constructor
     */
    Calculator();

    /// Adds two numbers
    int add(int a, int b);
    int multiply(int a, int b);
};

enum Operation {
    ADD, ///< Addition
    MULTIPLY
};

struct Calculator {
    int replaced;
};
`

func newTestFile(t *testing.T) *SourceFile {
	t.Helper()
	file, err := NewFromContent("calc.h", testHeaderContent)
	if err != nil {
		t.Fatalf("Failed to create document: %v", err)
	}
	return file
}

func TestNewFromContent(t *testing.T) {
	file := newTestFile(t)

	if file.Filename() != "calc.h" {
		t.Errorf("Expected filename calc.h, got %s", file.Filename())
	}
	if file.Text() != testHeaderContent {
		t.Error("Expected the original text to be kept")
	}

	decls := file.Declarations()
	if len(decls) != 3 {
		t.Fatalf("Expected 3 declarations, got %d", len(decls))
	}
	expected := []string{"Calculator", "Operation", "Calculator"}
	for i, decl := range decls {
		if decl.DeclName() != expected[i] {
			t.Errorf("Declaration %d: expected %s, got %s", i, expected[i], decl.DeclName())
		}
	}
}

func TestSourceFileLookup(t *testing.T) {
	file := newTestFile(t)

	calc, err := file.Structure("Calculator")
	if err != nil {
		t.Fatalf("Failed to look up Calculator: %v", err)
	}
	if _, ok := calc.Fields["replaced"]; !ok {
		t.Error("Expected the last definition of Calculator in one file to win")
	}

	op, err := file.Enum("Operation")
	if err != nil {
		t.Fatalf("Failed to look up Operation: %v", err)
	}
	if len(op.Members) != 2 || op.Variants["ADD"].Docstring != "Addition" {
		t.Errorf("Unexpected enum %+v", op)
	}

	if _, err := file.Declaration("Missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestLookupKindErrors(t *testing.T) {
	file := newTestFile(t)

	_, err := file.Structure("Operation")
	if !errors.Is(err, ErrWrongKind) {
		t.Fatalf("Expected ErrWrongKind, got %v", err)
	}
	var lookupErr *LookupError
	if !errors.As(err, &lookupErr) {
		t.Fatalf("Expected *LookupError, got %T", err)
	}
	if lookupErr.Name != "Operation" || lookupErr.Kind != ast.KindStruct {
		t.Errorf("Unexpected lookup error %+v", lookupErr)
	}
	if err.Error() != "Operation is not declared as struct" {
		t.Errorf("Unexpected message %q", err.Error())
	}

	if _, err := file.Enum("Calculator"); !errors.Is(err, ErrWrongKind) {
		t.Errorf("Expected ErrWrongKind, got %v", err)
	}
	if _, err := file.Enum("Missing"); !errors.Is(err, ErrNotFound) || errors.Is(err, ErrWrongKind) {
		t.Errorf("Expected only ErrNotFound, got %v", err)
	}
}

func TestNewFromContentErrors(t *testing.T) {
	if _, err := NewFromContent("broken.h", "struct Broken {"); err == nil {
		t.Fatal("Expected error for unbalanced braces")
	} else if !strings.Contains(err.Error(), "broken.h") {
		t.Errorf("Expected the file name in %q", err.Error())
	}
}

func TestNewFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "calc.h")
	if err := os.WriteFile(path, []byte(testHeaderContent), 0644); err != nil {
		t.Fatalf("Failed to write header: %v", err)
	}

	file, err := NewFromFile(path)
	if err != nil {
		t.Fatalf("Failed to load file: %v", err)
	}
	if !filepath.IsAbs(file.Filename()) {
		t.Errorf("Expected an absolute path, got %s", file.Filename())
	}

	if _, err := NewFromFile(filepath.Join(dir, "missing.h")); err == nil {
		t.Error("Expected error for a missing file")
	}
}

func TestDocumentationStats(t *testing.T) {
	stats := newTestFile(t).Stats()

	// constructor, add, multiply, ADD, MULTIPLY, replaced
	if stats.TotalMembers != 6 {
		t.Errorf("Expected 6 members, got %d", stats.TotalMembers)
	}
	// constructor, add, ADD
	if stats.DocumentedMembers != 3 {
		t.Errorf("Expected 3 documented members, got %d", stats.DocumentedMembers)
	}
	if stats.DocumentationCoverage != 50.0 {
		t.Errorf("Expected 50%% coverage, got %.1f", stats.DocumentationCoverage)
	}

	summary := newTestFile(t).String()
	if !strings.Contains(summary, "calc.h") || !strings.Contains(summary, "3 declarations") {
		t.Errorf("Unexpected summary %q", summary)
	}
}
