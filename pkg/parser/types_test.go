package parser

import (
	"errors"
	"testing"

	"cxxdecl/pkg/ast"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"int", "int"},
		{"const int", "int const"},
		{"int const", "int const"},
		{"volatile int", "int volatile"},
		{"unsigned", "unsigned"},
		{"unsigned int", "unsigned int"},
		{"int unsigned", "unsigned int"},
		{"signed char", "signed char"},
		{"unsigned long", "unsigned long"},
		{"long", "long"},
		{"long int", "long"},
		{"long long", "long long"},
		{"long long int", "long long"},
		{"unsigned long long", "unsigned long long"},
		{"long double", "long double"},
		{"struct Foo", "Foo"},
		{"std::string", "std::string"},
		{"::std::string", "::std::string"},
		{"std::vector<int>", "std::vector<int>"},
		{"std::map<std::string, int>", "std::map<std::string, int>"},
		{"std::vector<std::vector<int>>", "std::vector<std::vector<int>>"},
		{"std::array<int, 4>", "std::array<int, 4>"},
		{"Foo<>", "Foo<>"},
		{"char*", "char*"},
		{"const char*", "char const*"},
		{"const char* const", "char const* const"},
		{"int**", "int**"},
		{"int&", "int&"},
		{"int&&", "int&&"},
		{"const std::vector<int>&", "std::vector<int> const&"},
		{"std::unique_ptr<Foo const>", "std::unique_ptr<Foo const>"},
		{"int /* comment */ *", "int*"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			typ, err := ParseType(tt.input)
			if err != nil {
				t.Fatalf("Failed to parse %q: %v", tt.input, err)
			}
			if got := typ.String(); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestParseTypeStructure(t *testing.T) {
	typ, err := ParseType("const std::map<int, char*>* const")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	expected := ast.PointerType{
		Inner: ast.SimpleType{
			Name: "std::map",
			TypeArgs: []ast.Type{
				ast.Simple("int"),
				ast.PointerType{Inner: ast.Simple("char"), Kind: ast.Pointer},
			},
			Const: true,
		},
		Kind:  ast.Pointer,
		Const: true,
	}
	if !ast.TypesEqual(typ, expected) {
		t.Errorf("Expected %s, got %s", expected, typ)
	}
}

func TestParseTypeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"trailing name", "int x"},
		{"punctuation", "*int"},
		{"unclosed template", "std::vector<int"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if typ, err := ParseType(tt.input); err == nil {
				t.Errorf("Expected error for %q, got %s", tt.input, typ)
			}
		})
	}

	if _, err := ParseType("std::vector<int"); !errors.Is(err, ErrUnbalanced) {
		t.Errorf("Expected ErrUnbalanced, got %v", err)
	}
}

func TestTakeTypeRest(t *testing.T) {
	typ, rest, err := TakeType(mustTokenize(t, "const Foo& other = Foo()"))
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if typ.String() != "Foo const&" {
		t.Errorf("Expected Foo const&, got %s", typ)
	}
	if got := JoinTokens(rest); got != "other = Foo()" {
		t.Errorf("Expected rest %q, got %q", "other = Foo()", got)
	}
}

func TestTakeTypeList(t *testing.T) {
	types, err := TakeTypeList(mustTokenize(t, "int, std::string const&, char"))
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	expected := []string{"int", "std::string const&", "char"}
	if len(types) != len(expected) {
		t.Fatalf("Expected %d types, got %d", len(expected), len(types))
	}
	for i, typ := range types {
		if typ.String() != expected[i] {
			t.Errorf("Type %d: expected %q, got %q", i, expected[i], typ)
		}
	}
}
