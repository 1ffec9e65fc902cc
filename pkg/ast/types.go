package ast

import (
	"strconv"
	"strings"
)

// Type is a parsed C++ type expression
type Type interface {
	implType()
	String() string
	IsConst() bool
	IsVolatile() bool
}

// PointerKind is the declarator token of a PointerType
type PointerKind string

const (
	Pointer         PointerKind = "*"
	Reference       PointerKind = "&"
	RValueReference PointerKind = "&&"
)

// UnknownSize marks an array whose bound is missing or not an integer literal
const UnknownSize = -1

// SimpleType is a (possibly namespace-qualified) named type with optional
// template arguments. TypeArgs is nil when no argument list was written.
type SimpleType struct {
	Name     string
	TypeArgs []Type
	Const    bool
	Volatile bool
}

// PointerType wraps Inner in a pointer or reference. Const and Volatile
// qualify the pointer itself.
type PointerType struct {
	Inner    Type
	Kind     PointerKind
	Const    bool
	Volatile bool
}

// ArrayType is a fixed-size array of Inner
type ArrayType struct {
	Inner    Type
	Size     int
	Const    bool
	Volatile bool
}

func (SimpleType) implType()  {}
func (PointerType) implType() {}
func (ArrayType) implType()   {}

func (t SimpleType) IsConst() bool     { return t.Const }
func (t SimpleType) IsVolatile() bool  { return t.Volatile }
func (t PointerType) IsConst() bool    { return t.Const }
func (t PointerType) IsVolatile() bool { return t.Volatile }
func (t ArrayType) IsConst() bool      { return t.Const }
func (t ArrayType) IsVolatile() bool   { return t.Volatile }

// Simple returns an unqualified SimpleType
func Simple(name string) SimpleType {
	return SimpleType{Name: name}
}

func (t SimpleType) String() string {
	var b strings.Builder
	b.WriteString(t.Name)
	if t.TypeArgs != nil {
		b.WriteString("<")
		for i, arg := range t.TypeArgs {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(arg.String())
		}
		b.WriteString(">")
	}
	writeCV(&b, t.Const, t.Volatile)
	return b.String()
}

func (t PointerType) String() string {
	var b strings.Builder
	b.WriteString(t.Inner.String())
	b.WriteString(string(t.Kind))
	writeCV(&b, t.Const, t.Volatile)
	return b.String()
}

// String writes the outermost bound first, so an array of 2 arrays of 3
// ints renders as int[2][3]
func (t ArrayType) String() string {
	var dims strings.Builder
	var inner Type = t
	for {
		array, ok := inner.(ArrayType)
		if !ok {
			break
		}
		dims.WriteString("[")
		if array.Size != UnknownSize {
			dims.WriteString(strconv.Itoa(array.Size))
		}
		dims.WriteString("]")
		inner = array.Inner
	}
	return inner.String() + dims.String()
}

func writeCV(b *strings.Builder, isConst, isVolatile bool) {
	if isConst {
		b.WriteString(" const")
	}
	if isVolatile {
		b.WriteString(" volatile")
	}
}

// IsPrimitiveInteger reports whether t names a builtin integer type
func (t SimpleType) IsPrimitiveInteger() bool {
	if t.TypeArgs != nil {
		return false
	}
	switch {
	case t.Name == "int" || strings.HasSuffix(t.Name, " int"):
		return true
	case t.Name == "long" || strings.HasSuffix(t.Name, " long"):
		return true
	}
	return false
}

// RemoveCV returns t without its top-level const and volatile flags
func RemoveCV(t Type) Type {
	switch v := t.(type) {
	case SimpleType:
		v.Const, v.Volatile = false, false
		return v
	case PointerType:
		v.Const, v.Volatile = false, false
		return v
	case ArrayType:
		v.Const, v.Volatile = false, false
		return v
	}
	return t
}

// TypesEqual compares two types structurally
func TypesEqual(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case SimpleType:
		y, ok := b.(SimpleType)
		if !ok || x.Name != y.Name || x.Const != y.Const || x.Volatile != y.Volatile {
			return false
		}
		if (x.TypeArgs == nil) != (y.TypeArgs == nil) || len(x.TypeArgs) != len(y.TypeArgs) {
			return false
		}
		for i := range x.TypeArgs {
			if !TypesEqual(x.TypeArgs[i], y.TypeArgs[i]) {
				return false
			}
		}
		return true
	case PointerType:
		y, ok := b.(PointerType)
		return ok && x.Kind == y.Kind && x.Const == y.Const && x.Volatile == y.Volatile &&
			TypesEqual(x.Inner, y.Inner)
	case ArrayType:
		y, ok := b.(ArrayType)
		return ok && x.Size == y.Size && x.Const == y.Const && x.Volatile == y.Volatile &&
			TypesEqual(x.Inner, y.Inner)
	}
	return false
}
