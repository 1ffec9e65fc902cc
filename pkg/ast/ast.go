// Package ast defines the declaration model produced from C++ headers:
// types, structs/classes, enums and their members.
package ast

import (
	"strings"
)

// Accessibility represents C++ member visibility
type Accessibility int

const (
	AccessPrivate Accessibility = iota
	AccessProtected
	AccessPublic
)

func (a Accessibility) String() string {
	switch a {
	case AccessPublic:
		return "public"
	case AccessProtected:
		return "protected"
	default:
		return "private"
	}
}

// ParseAccessibility parses an access specifier keyword
func ParseAccessibility(s string) (Accessibility, bool) {
	switch s {
	case "public":
		return AccessPublic, true
	case "protected":
		return AccessProtected, true
	case "private":
		return AccessPrivate, true
	}
	return AccessPrivate, false
}

// Sentinel member names for special methods
const (
	ConstructorName = "<constructor>"
	DestructorName  = "<destructor>"
)

// Base is one entry of a struct's base-class list
type Base struct {
	Accessibility Accessibility
	Virtual       bool
	Name          string
}

// Parameter is a single function parameter. Default holds the raw
// source text of the default argument, or "" when there is none.
type Parameter struct {
	Type    Type
	Name    string
	Default string
}

// HasName reports whether the parameter is named
func (p Parameter) HasName() bool {
	return p.Name != ""
}

// HasDefault reports whether the parameter has a default argument
func (p Parameter) HasDefault() bool {
	return p.Default != ""
}

func (p Parameter) String() string {
	var b strings.Builder
	b.WriteString(p.Type.String())
	if p.Name != "" {
		b.WriteString(" ")
		b.WriteString(p.Name)
	}
	if p.Default != "" {
		b.WriteString(" = ")
		b.WriteString(p.Default)
	}
	return b.String()
}

// Member is a field or a method of a struct
type Member interface {
	implMember()
	MemberName() string
	MemberAccessibility() Accessibility
	Doc() string
}

// Field is a data member
type Field struct {
	Accessibility Accessibility
	Docstring     string
	Type          Type
	Name          string
	Static        bool
}

func (*Field) implMember() {}

func (f *Field) MemberName() string                 { return f.Name }
func (f *Field) MemberAccessibility() Accessibility { return f.Accessibility }
func (f *Field) Doc() string                        { return f.Docstring }

// Signature renders the field as a C++ declaration, with array bounds
// after the name
func (f *Field) Signature() string {
	typ, bounds := f.Type, ""
	if _, ok := typ.(ArrayType); ok {
		full := typ.String()
		for {
			inner, ok := typ.(ArrayType)
			if !ok {
				break
			}
			typ = inner.Inner
		}
		bounds = strings.TrimPrefix(full, typ.String())
	}

	signature := typ.String() + " " + f.Name + bounds
	if f.Static {
		signature = "static " + signature
	}
	return signature
}

// Method is a member function, constructor or destructor
type Method struct {
	Accessibility Accessibility
	Docstring     string
	ReturnType    Type
	Name          string
	Params        []Parameter
	Variadic      bool
	Const         bool
	Virtual       bool
	Static        bool
	Pure          bool
}

func (*Method) implMember() {}

func (m *Method) MemberName() string                 { return m.Name }
func (m *Method) MemberAccessibility() Accessibility { return m.Accessibility }
func (m *Method) Doc() string                        { return m.Docstring }

// IsOperator reports whether the method is an operator overload such as
// operator== or operator(). Conversion operators are not included.
func (m *Method) IsOperator() bool {
	rest, ok := strings.CutPrefix(m.Name, "operator")
	if !ok || rest == "" {
		return false
	}
	return strings.ContainsRune(punctuation, rune(rest[0]))
}

// Signature renders the method as a C++ member declaration. structName
// spells constructors and destructors.
func (m *Method) Signature(structName string) string {
	var b strings.Builder
	if m.Static {
		b.WriteString("static ")
	}
	if m.Virtual {
		b.WriteString("virtual ")
	}
	switch {
	case m.IsConstructor():
		b.WriteString(structName)
	case m.IsDestructor():
		b.WriteString("~" + structName)
	case m.IsConversion():
		b.WriteString(m.Name)
	default:
		if m.ReturnType != nil {
			b.WriteString(m.ReturnType.String())
			b.WriteString(" ")
		}
		b.WriteString(m.Name)
	}

	params := make([]string, 0, len(m.Params)+1)
	for _, p := range m.Params {
		params = append(params, p.String())
	}
	if m.Variadic {
		params = append(params, "...")
	}
	b.WriteString("(" + strings.Join(params, ", ") + ")")

	if m.Const {
		b.WriteString(" const")
	}
	if m.Pure {
		b.WriteString(" = 0")
	}
	return b.String()
}

// IsConversion reports whether the method is a conversion operator such
// as operator bool
func (m *Method) IsConversion() bool {
	return m.ReturnType != nil && m.Name == "operator "+m.ReturnType.String()
}

// IsConstructor reports whether the method is a constructor
func (m *Method) IsConstructor() bool {
	return m.Name == ConstructorName
}

// IsDestructor reports whether the method is a destructor
func (m *Method) IsDestructor() bool {
	return m.Name == DestructorName
}

// punctuation is the ASCII punctuation set
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Declaration is a parsed struct/class or enum
type Declaration interface {
	implDeclaration()
	DeclName() string
	Kind() DeclarationKind
}

// DeclarationKind distinguishes the declaration variants
type DeclarationKind int

const (
	KindStruct DeclarationKind = iota
	KindEnum
)

func (k DeclarationKind) String() string {
	if k == KindEnum {
		return "enum"
	}
	return "struct"
}

// Struct is a parsed struct or class. Fields and Methods are keyed by
// name and keep only the last member parsed under that name; Members
// keeps every member in declaration order.
type Struct struct {
	Name    string
	Bases   []Base
	Fields  map[string]*Field
	Methods map[string]*Method
	Members []Member
}

// NewStruct creates an empty struct declaration
func NewStruct(name string, bases []Base) *Struct {
	return &Struct{
		Name:    name,
		Bases:   bases,
		Fields:  make(map[string]*Field),
		Methods: make(map[string]*Method),
		Members: make([]Member, 0),
	}
}

func (*Struct) implDeclaration() {}

func (s *Struct) DeclName() string      { return s.Name }
func (s *Struct) Kind() DeclarationKind { return KindStruct }

// AddField appends a field and indexes it by name
func (s *Struct) AddField(f *Field) {
	s.Fields[f.Name] = f
	s.Members = append(s.Members, f)
}

// AddMethod appends a method and indexes it by name
func (s *Struct) AddMethod(m *Method) {
	s.Methods[m.Name] = m
	s.Members = append(s.Members, m)
}

// Overloads returns every method named name in declaration order
func (s *Struct) Overloads(name string) []*Method {
	var result []*Method
	for _, member := range s.Members {
		if m, ok := member.(*Method); ok && m.Name == name {
			result = append(result, m)
		}
	}
	return result
}

// EnumVariant is a single enumerator
type EnumVariant struct {
	Docstring string
	Name      string
}

// Enum is a parsed enum declaration
type Enum struct {
	Name     string
	Variants map[string]*EnumVariant
	Members  []*EnumVariant
}

// NewEnum creates an empty enum declaration
func NewEnum(name string) *Enum {
	return &Enum{
		Name:     name,
		Variants: make(map[string]*EnumVariant),
		Members:  make([]*EnumVariant, 0),
	}
}

func (*Enum) implDeclaration() {}

func (e *Enum) DeclName() string      { return e.Name }
func (e *Enum) Kind() DeclarationKind { return KindEnum }

// AddVariant appends a variant and indexes it by name
func (e *Enum) AddVariant(v *EnumVariant) {
	e.Variants[v.Name] = v
	e.Members = append(e.Members, v)
}
