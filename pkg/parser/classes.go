package parser

import (
	"fmt"

	"cxxdecl/pkg/ast"
)

// bodyState is the state of one struct body parse
type bodyState struct {
	structName string
	access     ast.Accessibility
	doc        docBuffer
	last       ast.Member // receives trailing ///< comments
}

// comment routes a comment token to the pending docstring or, for a
// trailing comment, to the member just parsed
func (s *bodyState) comment(token Token) {
	doc, placement := cleanDocComment(token.Text)
	switch placement {
	case docLeading:
		s.doc.add(doc)
	case docTrailing:
		switch m := s.last.(type) {
		case *ast.Field:
			m.Docstring = appendDoc(m.Docstring, doc)
		case *ast.Method:
			m.Docstring = appendDoc(m.Docstring, doc)
		}
	}
}

// nonMemberKeywords start runs that declare no field or method
var nonMemberKeywords = map[string]bool{
	"using":         true,
	"typedef":       true,
	"friend":        true,
	"static_assert": true,
	"template":      true,
}

// ParseStructBody parses the tokens between the braces of a struct or
// class. initial is the accessibility in effect before the first label.
func (p *Parser) ParseStructBody(name string, body []Token, initial ast.Accessibility, bases []ast.Base) (*ast.Struct, error) {
	result := ast.NewStruct(name, bases)
	state := &bodyState{structName: name, access: initial}
	ts := NewTokenStream(body)

	for {
		token, ok := ts.Next()
		if !ok {
			break
		}

		switch {
		case token.Kind == TokenComment:
			state.comment(token)
		case token.Kind == TokenWhitespace, token.IsPunct(";"):
		case p.parseAccessLabel(ts, token, state):
		default:
			run, err := takeMemberRun(ts, token)
			if err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", name, err)
			}
			// set again only when the run yields a member
			state.last = nil
			p.parseMember(result, run, state)
		}
	}

	return result, nil
}

// takeMemberRun collects a member declaration starting with first, up to a
// ; or a { outside parentheses. An inline body is consumed and dropped, as
// are the brace initializers of a constructor initializer list.
func takeMemberRun(ts *TokenStream, first Token) ([]Token, error) {
	run := []Token{first}
	depth := 0
	initList := false
	var prev Token // last meaningful token before token
	token := first
	for {
		switch {
		case token.IsPunct("("):
			depth++
		case token.IsPunct(")"):
			if depth > 0 {
				depth--
			}
		case depth == 0 && token.IsPunct(";"):
			return run[:len(run)-1], nil
		case depth == 0 && token.IsPunct(":") && (prev.IsPunct(")") || prev.Is(TokenIdentifier, "noexcept")):
			initList = true
		case depth == 0 && token.IsPunct("{"):
			if _, err := ConsumeBlock(ts, "{", "}"); err != nil {
				return nil, err
			}
			// a{1} or Base<T>{} inside an initializer list
			if !initList || !(prev.Kind == TokenIdentifier || prev.IsPunct(">")) {
				return run[:len(run)-1], nil
			}
			token = Token{Kind: TokenPunctuation, Text: "}"}
		}
		if !token.IsNoncode() {
			prev = token
		}

		var ok bool
		if token, ok = ts.Next(); !ok {
			// unterminated trailing declaration
			return run, nil
		}
		run = append(run, token)
	}
}

// memberSpecifiers are the leading keywords stripped from a member run
type memberSpecifiers struct {
	virtual bool
	static  bool
}

func takeSpecifiers(ts *TokenStream) memberSpecifiers {
	var spec memberSpecifiers
	for {
		peeker := ts.Peeker()
		token, err := TakeMeaningful(peeker)
		if err != nil || token.Kind != TokenIdentifier {
			return spec
		}
		switch token.Text {
		case "virtual":
			spec.virtual = true
		case "static":
			spec.static = true
		case "inline", "explicit", "constexpr", "mutable", "extern":
		default:
			return spec
		}
		peeker.Commit()
	}
}

// parseMember turns one member run into a field or method of result.
// Runs that declare something else are skipped.
func (p *Parser) parseMember(result *ast.Struct, run []Token, state *bodyState) {
	code := FilterNoncode(run)
	if len(code) == 0 {
		return
	}
	if nonMemberKeywords[code[0].Text] {
		p.logger.Debug("skipping non-member declaration", "struct", state.structName, "text", JoinTokens(run))
		return
	}

	ts := NewTokenStream(dropComments(run))
	spec := takeSpecifiers(ts)

	var (
		returnType ast.Type
		name       string
		rest       []Token
	)

	first, _ := PeekMeaningful(ts)
	switch {
	case first.IsPunct("~"):
		TakeMeaningful(ts)
		returnType, name, rest = ast.Simple("void"), ast.DestructorName, ts.Rest()
	case first.Is(TokenIdentifier, state.structName) && nextIsParen(ts, 1):
		returnType, name, rest = ast.Simple("void"), ast.ConstructorName, ts.Rest()
	case first.Is(TokenIdentifier, "operator"):
		// conversion operator
		TakeMeaningful(ts)
		target, remaining, err := TakeType(ts.Rest())
		if err != nil {
			p.logger.Warn("skipping member", "struct", state.structName, "error", err)
			return
		}
		returnType, name, rest = target, "operator "+target.String(), remaining
	default:
		typ, remaining, err := TakeType(ts.Rest())
		if err != nil {
			p.logger.Warn("skipping member", "struct", state.structName, "text", JoinTokens(run), "error", err)
			return
		}
		returnType = typ
		if name, rest = takeMemberName(remaining); name == "" {
			// function pointer fields and unnamed declarations
			p.logger.Debug("skipping unnamed member", "struct", state.structName, "text", JoinTokens(run))
			return
		}
	}

	shape, isMethod, err := findMethodShape(rest)
	if err != nil {
		p.logger.Warn("skipping member", "struct", state.structName, "member", name, "error", err)
		return
	}

	if !isMethod {
		if name == ast.ConstructorName || name == ast.DestructorName {
			return
		}
		p.addField(result, state, returnType, name, rest, spec)
		return
	}

	params, err := ParseParameters(shape.params)
	if err != nil {
		state.doc.take()
		p.logger.Warn("skipping method", "struct", state.structName, "method", name, "error", err)
		return
	}
	if params.Unsupported {
		state.doc.take()
		p.logger.Warn("ignoring method with function pointer parameter", "struct", state.structName, "method", name)
		return
	}

	method := &ast.Method{
		Accessibility: state.access,
		Docstring:     state.doc.take(),
		ReturnType:    returnType,
		Name:          name,
		Params:        params.Params,
		Variadic:      params.Variadic,
		Const:         shape.isConst,
		Virtual:       spec.virtual,
		Static:        spec.static,
		Pure:          shape.isPure,
	}
	result.AddMethod(method)
	state.last = method
}

func (p *Parser) addField(result *ast.Struct, state *bodyState, typ ast.Type, name string, rest []Token, spec memberSpecifiers) {
	ts := NewTokenStream(rest)
	var dims []ast.ArrayType
	for {
		SkipNoncode(ts)
		token, ok := ts.Peek()
		if !ok || !token.IsPunct("[") {
			break
		}
		ts.Next()
		array, err := takeArraySuffix(ts, nil)
		if err != nil {
			p.logger.Warn("skipping field", "struct", state.structName, "field", name, "error", err)
			return
		}
		dims = append(dims, array.(ast.ArrayType))
	}
	// int m[2][3] is an array of 2 arrays of 3 ints
	for i := len(dims) - 1; i >= 0; i-- {
		typ = ast.ArrayType{Inner: typ, Size: dims[i].Size}
	}

	field := &ast.Field{
		Accessibility: state.access,
		Docstring:     state.doc.take(),
		Type:          typ,
		Name:          name,
		Static:        spec.static,
	}
	result.AddField(field)
	state.last = field
}

// nextIsParen reports whether the meaningful token after skip meaningful
// tokens is an opening parenthesis
func nextIsParen(ts *TokenStream, skip int) bool {
	peeker := ts.Peeker()
	for i := 0; i < skip; i++ {
		if _, err := TakeMeaningful(peeker); err != nil {
			return false
		}
	}
	token, err := TakeMeaningful(peeker)
	return err == nil && token.IsPunct("(")
}

// takeMemberName reads the member name following a type, joining operator
// symbols onto "operator". It returns "" when no name is present.
func takeMemberName(tokens []Token) (string, []Token) {
	ts := NewTokenStream(tokens)
	token, err := TakeMeaningful(ts)
	if err != nil || token.Kind != TokenIdentifier {
		return "", nil
	}
	if token.Text != "operator" {
		return token.Text, ts.Rest()
	}
	return "operator" + takeOperatorSymbol(ts), ts.Rest()
}

// takeOperatorSymbol reads the symbol of an operator function name
func takeOperatorSymbol(ts *TokenStream) string {
	token, err := TakeMeaningful(ts)
	if err != nil {
		return ""
	}
	symbol := token.Text
	switch {
	case token.Kind == TokenIdentifier:
		// operator new, operator delete
		symbol = " " + token.Text
	case token.IsPunct("("):
		if closer, err := TakeMeaningful(ts); err == nil {
			symbol += closer.Text
		}
		return symbol
	}

	for {
		peeker := ts.Peeker()
		next, err := TakeMeaningful(peeker)
		if err != nil || next.Kind != TokenPunctuation || next.IsPunct("(") {
			return symbol
		}
		peeker.Commit()
		symbol += next.Text
	}
}
