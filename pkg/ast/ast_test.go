package ast

import (
	"testing"
)

func TestTypeString(t *testing.T) {
	tests := []struct {
		name     string
		typ      Type
		expected string
	}{
		{"simple", Simple("int"), "int"},
		{"const simple", SimpleType{Name: "int", Const: true}, "int const"},
		{
			"template",
			SimpleType{Name: "std::map", TypeArgs: []Type{Simple("int"), Simple("std::string")}},
			"std::map<int, std::string>",
		},
		{"empty template", SimpleType{Name: "Foo", TypeArgs: []Type{}}, "Foo<>"},
		{
			"const pointer to const",
			PointerType{Inner: SimpleType{Name: "char", Const: true}, Kind: Pointer, Const: true},
			"char const* const",
		},
		{"reference", PointerType{Inner: Simple("Number"), Kind: Reference}, "Number&"},
		{"array", ArrayType{Inner: Simple("int"), Size: 4}, "int[4]"},
		{"unbounded array", ArrayType{Inner: Simple("int"), Size: UnknownSize}, "int[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestTypesEqual(t *testing.T) {
	a := PointerType{Inner: SimpleType{Name: "std::vector", TypeArgs: []Type{Simple("int")}}, Kind: Reference}
	b := PointerType{Inner: SimpleType{Name: "std::vector", TypeArgs: []Type{Simple("int")}}, Kind: Reference}
	if !TypesEqual(a, b) {
		t.Error("Expected structurally identical types to be equal")
	}

	c := PointerType{Inner: SimpleType{Name: "std::vector", TypeArgs: []Type{Simple("long")}}, Kind: Reference}
	if TypesEqual(a, c) {
		t.Error("Expected types with different template arguments to differ")
	}

	if TypesEqual(SimpleType{Name: "Foo"}, SimpleType{Name: "Foo", TypeArgs: []Type{}}) {
		t.Error("Expected missing and empty template argument lists to differ")
	}

	if TypesEqual(Simple("int"), ArrayType{Inner: Simple("int"), Size: 1}) {
		t.Error("Expected different variants to differ")
	}
}

func TestRemoveCV(t *testing.T) {
	ptr := PointerType{Inner: SimpleType{Name: "int", Const: true}, Kind: Pointer, Const: true, Volatile: true}
	stripped := RemoveCV(ptr).(PointerType)
	if stripped.Const || stripped.Volatile {
		t.Errorf("Expected pointer cv flags removed, got %s", stripped)
	}
	if !stripped.Inner.IsConst() {
		t.Error("Expected inner const to be preserved")
	}
}

func TestIsPrimitiveInteger(t *testing.T) {
	for _, name := range []string{"int", "unsigned int", "long", "long long", "unsigned long"} {
		if !Simple(name).IsPrimitiveInteger() {
			t.Errorf("Expected %q to be a primitive integer", name)
		}
	}
	for _, name := range []string{"double", "char", "Number"} {
		if Simple(name).IsPrimitiveInteger() {
			t.Errorf("Expected %q not to be a primitive integer", name)
		}
	}
	if (SimpleType{Name: "int", TypeArgs: []Type{}}).IsPrimitiveInteger() {
		t.Error("Expected templated type not to be a primitive integer")
	}
}

func TestMethodPredicates(t *testing.T) {
	tests := []struct {
		name        string
		operator    bool
		constructor bool
		destructor  bool
	}{
		{"operator==", true, false, false},
		{"operator()", true, false, false},
		{"operator bool", false, false, false},
		{"operator", false, false, false},
		{"operatorName", false, false, false},
		{ConstructorName, false, true, false},
		{DestructorName, false, false, true},
		{"add", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Method{Name: tt.name, ReturnType: Simple("void")}
			if m.IsOperator() != tt.operator {
				t.Errorf("IsOperator: expected %v", tt.operator)
			}
			if m.IsConstructor() != tt.constructor {
				t.Errorf("IsConstructor: expected %v", tt.constructor)
			}
			if m.IsDestructor() != tt.destructor {
				t.Errorf("IsDestructor: expected %v", tt.destructor)
			}
		})
	}
}

func TestStructLastWriteWins(t *testing.T) {
	s := NewStruct("S", nil)
	first := &Method{Name: "f", ReturnType: Simple("void")}
	second := &Method{Name: "f", ReturnType: Simple("int")}
	s.AddMethod(first)
	s.AddField(&Field{Name: "x", Type: Simple("int")})
	s.AddMethod(second)

	if len(s.Members) != 3 {
		t.Fatalf("Expected 3 members, got %d", len(s.Members))
	}
	if s.Methods["f"] != second {
		t.Error("Expected the name index to hold the last method parsed")
	}
	overloads := s.Overloads("f")
	if len(overloads) != 2 || overloads[0] != first || overloads[1] != second {
		t.Errorf("Expected both overloads in order, got %v", overloads)
	}
}

func TestAccessibility(t *testing.T) {
	for _, s := range []string{"public", "protected", "private"} {
		a, ok := ParseAccessibility(s)
		if !ok {
			t.Fatalf("Expected %q to parse", s)
		}
		if a.String() != s {
			t.Errorf("Expected %q, got %q", s, a.String())
		}
	}
	if _, ok := ParseAccessibility("virtual"); ok {
		t.Error("Expected virtual not to be an accessibility")
	}
}

func TestSignatures(t *testing.T) {
	tests := []struct {
		name     string
		member   Member
		expected string
	}{
		{
			"method",
			&Method{
				ReturnType: Simple("int"),
				Name:       "get",
				Params:     []Parameter{{Type: Simple("int"), Name: "i", Default: "0"}},
				Const:      true,
			},
			"int get(int i = 0) const",
		},
		{
			"pure virtual",
			&Method{ReturnType: Simple("void"), Name: "draw", Virtual: true, Pure: true},
			"virtual void draw() = 0",
		},
		{
			"variadic",
			&Method{
				ReturnType: Simple("void"),
				Name:       "log",
				Params:     []Parameter{{Type: PointerType{Inner: SimpleType{Name: "char", Const: true}, Kind: Pointer}}},
				Variadic:   true,
				Static:     true,
			},
			"static void log(char const*, ...)",
		},
		{"constructor", &Method{ReturnType: Simple("void"), Name: ConstructorName}, "Widget()"},
		{"destructor", &Method{ReturnType: Simple("void"), Name: DestructorName, Virtual: true}, "virtual ~Widget()"},
		{"field", &Field{Type: Simple("int"), Name: "x"}, "int x"},
		{"static field", &Field{Type: Simple("int"), Name: "count", Static: true}, "static int count"},
		{
			"array field",
			&Field{Type: ArrayType{Inner: ArrayType{Inner: Simple("int"), Size: 3}, Size: 2}, Name: "grid"},
			"int grid[2][3]",
		},
		{"unsized array", &Field{Type: ArrayType{Inner: Simple("char"), Size: UnknownSize}, Name: "buf"}, "char buf[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			switch m := tt.member.(type) {
			case *Method:
				got = m.Signature("Widget")
			case *Field:
				got = m.Signature()
			}
			if got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}
