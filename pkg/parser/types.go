package parser

import (
	"fmt"

	"cxxdecl/pkg/ast"
)

// multiWordTypes are builtin spellings made of several identifiers, tried
// in order; the first element is the normalized name
var multiWordTypes = [][]string{
	{"long double", "long", "double"},
	{"long long", "long", "long", "int"},
	{"long long", "long", "long"},
	{"long", "long", "int"},
	{"long", "long"},
}

// TakeType parses a type from the front of tokens and returns it together
// with the unconsumed tokens
func TakeType(tokens []Token) (ast.Type, []Token, error) {
	ts := NewTokenStream(tokens)
	result, err := takeSimpleType(ts)
	if err != nil {
		return nil, nil, err
	}

	for {
		peeker := ts.Peeker()
		token, err := TakeMeaningful(peeker)
		if err != nil || token.Kind != TokenPunctuation {
			break
		}
		kind := ast.PointerKind(token.Text)
		if kind != ast.Pointer && kind != ast.Reference && kind != ast.RValueReference {
			break
		}
		peeker.Commit()

		isConst, isVolatile := takeCV(ts)
		result = ast.PointerType{Inner: result, Kind: kind, Const: isConst, Volatile: isVolatile}
	}

	return result, ts.Rest(), nil
}

// TakeTypeList parses a comma separated list of types, as found between
// the angle brackets of a template argument list
func TakeTypeList(tokens []Token) ([]ast.Type, error) {
	result := make([]ast.Type, 0)
	for {
		typ, rest, err := TakeType(tokens)
		if err != nil {
			return nil, err
		}
		result = append(result, typ)

		ts := NewTokenStream(rest)
		token, err := TakeMeaningful(ts)
		if err != nil {
			return result, nil
		}
		if !token.IsPunct(",") {
			return nil, fmt.Errorf("unexpected %s in type list", token)
		}
		tokens = ts.Rest()
	}
}

// ParseType parses text as a single complete type
func ParseType(text string) (ast.Type, error) {
	tokens, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	typ, rest, err := TakeType(tokens)
	if err != nil {
		return nil, err
	}
	if trailing := FilterNoncode(rest); len(trailing) > 0 {
		return nil, fmt.Errorf("trailing tokens after type: %s", JoinTokens(rest))
	}
	return typ, nil
}

// takeCV consumes a run of const/volatile qualifiers
func takeCV(ts *TokenStream) (isConst, isVolatile bool) {
	peeker := ts.Peeker()
	for {
		token, err := TakeMeaningful(peeker)
		if err != nil || token.Kind != TokenIdentifier {
			return
		}
		switch token.Text {
		case "const":
			isConst = true
		case "volatile":
			isVolatile = true
		default:
			return
		}
		peeker.Commit()
	}
}

// takeSimpleType parses qualifiers, the type name and template arguments
func takeSimpleType(ts *TokenStream) (ast.Type, error) {
	result := ast.SimpleType{}
	name := ""

	for {
		token, err := TakeMeaningful(ts)
		if err != nil {
			break
		}
		if token.Kind != TokenIdentifier {
			ts.PutBack(token)
			break
		}
		switch token.Text {
		case "class", "struct", "enum":
			continue
		case "const":
			result.Const = true
			continue
		case "volatile":
			result.Volatile = true
			continue
		case "unsigned", "signed":
			name += token.Text + " "
			continue
		}
		ts.PutBack(token)
		break
	}

	if builtin, ok := matchMultiWord(ts); ok {
		name += builtin
	} else if name == "" || nextIsIntegerWord(ts) {
		name += takeNamespacedName(ts)
	}
	if name == "" {
		token, _ := PeekMeaningful(ts)
		return nil, fmt.Errorf("expected type name, got %s", token)
	}
	if name[len(name)-1] == ' ' {
		// "unsigned" or "signed" alone
		name = name[:len(name)-1]
	}

	SkipNoncode(ts)
	if token, ok := ts.Peek(); ok && token.IsPunct("<") {
		ts.Next()
		block, err := ConsumeBlock(ts, "<", ">")
		if err != nil {
			return nil, fmt.Errorf("template arguments of %s: %w", name, err)
		}
		result.TypeArgs = make([]ast.Type, 0)
		if len(FilterNoncode(block)) > 0 {
			args, err := TakeTypeList(block)
			if err != nil {
				return nil, fmt.Errorf("template arguments of %s: %w", name, err)
			}
			result.TypeArgs = args
		}
	}

	peeker := ts.Peeker()
	for {
		token, err := TakeMeaningful(peeker)
		if err != nil || token.Kind != TokenIdentifier {
			break
		}
		switch token.Text {
		case "const":
			result.Const = true
		case "volatile":
			result.Volatile = true
		case "unsigned", "signed":
			name = token.Text + " " + name
		default:
			result.Name = name
			return result, nil
		}
		peeker.Commit()
	}

	result.Name = name
	return result, nil
}

// nextIsIntegerWord reports whether the next identifier may follow
// "signed"/"unsigned" as part of the type name
func nextIsIntegerWord(ts *TokenStream) bool {
	token, ok := PeekMeaningful(ts)
	if !ok || token.Kind != TokenIdentifier {
		return false
	}
	switch token.Text {
	case "char", "short", "int", "__int64":
		return true
	}
	return false
}

// matchMultiWord tries the multi-identifier builtin spellings
func matchMultiWord(ts *TokenStream) (string, bool) {
	for _, candidate := range multiWordTypes {
		if matchIdents(ts, candidate[1:]...) {
			return candidate[0], true
		}
	}
	return "", false
}

// matchIdents consumes the given identifiers if they come next, in order
func matchIdents(ts *TokenStream, idents ...string) bool {
	peeker := ts.Peeker()
	for _, ident := range idents {
		token, err := TakeMeaningful(peeker)
		if err != nil || !token.Is(TokenIdentifier, ident) {
			return false
		}
	}
	peeker.Commit()
	return true
}

// takeNamespacedName reads an identifier followed by any number of
// ::identifier pairs. A literal is accepted as a non-type template argument.
func takeNamespacedName(ts *TokenStream) string {
	SkipNoncode(ts)
	token, ok := ts.Peek()
	if !ok {
		return ""
	}

	result := ""
	switch {
	case token.Kind == TokenLiteral:
		ts.Next()
		return token.Text
	case token.Kind == TokenIdentifier:
		ts.Next()
		result = token.Text
	case token.IsPunct("::"):
		// a leading :: names the global namespace
	default:
		return ""
	}

	for {
		peeker := ts.Peeker()
		token, err := TakeMeaningful(peeker)
		if err != nil || !token.IsPunct("::") {
			return result
		}
		ident, err := TakeMeaningful(peeker)
		if err != nil || ident.Kind != TokenIdentifier {
			return result
		}
		peeker.Commit()
		result += "::" + ident.Text
	}
}
