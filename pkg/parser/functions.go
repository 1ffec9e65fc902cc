package parser

import (
	"errors"
	"fmt"

	"cxxdecl/pkg/ast"
)

// ErrFunctionPointer is returned when a parameter has a function pointer
// type, which the model does not represent
var ErrFunctionPointer = errors.New("function pointer parameters are not supported")

// ParameterList is the parsed parameter list of a method. Unsupported is
// set when a parameter has a function pointer type; Params is then empty.
type ParameterList struct {
	Params      []ast.Parameter
	Variadic    bool
	Unsupported bool
}

// ParseParameters parses the tokens between a method's parentheses
func ParseParameters(tokens []Token) (ParameterList, error) {
	result := ParameterList{Params: make([]ast.Parameter, 0)}

	rest := dropComments(tokens)
	code := FilterNoncode(rest)

	// C-style no-argument declaration
	if len(code) == 1 && code[0].Is(TokenIdentifier, "void") {
		return result, nil
	}

	for len(FilterNoncode(rest)) > 0 {
		ts := NewTokenStream(rest)
		if first, _ := PeekMeaningful(ts); first.IsPunct("...") {
			TakeMeaningful(ts)
			if trailing := FilterNoncode(ts.Rest()); len(trailing) > 0 {
				return result, fmt.Errorf("unexpected %s after ...", trailing[0])
			}
			result.Variadic = true
			return result, nil
		}

		param, remaining, err := takeParameter(rest)
		if errors.Is(err, ErrFunctionPointer) {
			return ParameterList{Unsupported: true}, nil
		}
		if err != nil {
			return result, err
		}
		result.Params = append(result.Params, param)

		ts = NewTokenStream(remaining)
		token, err := TakeMeaningful(ts)
		if err != nil {
			break
		}
		if !token.IsPunct(",") {
			return result, fmt.Errorf("unexpected %s in parameter list", token)
		}
		rest = ts.Rest()
	}

	return result, nil
}

// ParseParameter parses text as a single parameter declaration
func ParseParameter(text string) (ast.Parameter, error) {
	tokens, err := Tokenize(text)
	if err != nil {
		return ast.Parameter{}, err
	}
	param, rest, err := takeParameter(dropComments(tokens))
	if err != nil {
		return ast.Parameter{}, err
	}
	if trailing := FilterNoncode(rest); len(trailing) > 0 {
		return ast.Parameter{}, fmt.Errorf("trailing tokens after parameter: %s", JoinTokens(rest))
	}
	return param, nil
}

// takeParameter parses "type [name] [[size]] [= default]" and returns the
// tokens following it
func takeParameter(tokens []Token) (ast.Parameter, []Token, error) {
	typ, rest, err := TakeType(tokens)
	if err != nil {
		return ast.Parameter{}, nil, err
	}
	param := ast.Parameter{Type: typ}

	ts := NewTokenStream(rest)
	SkipNoncode(ts)
	if token, ok := ts.Peek(); ok && token.IsPunct("(") {
		return ast.Parameter{}, nil, ErrFunctionPointer
	}
	if token, ok := ts.Peek(); ok && token.Kind == TokenIdentifier {
		param.Name = token.Text
		ts.Next()
	}

	SkipNoncode(ts)
	if token, ok := ts.Peek(); ok && token.IsPunct("[") {
		ts.Next()
		array, err := takeArraySuffix(ts, param.Type)
		if err != nil {
			return ast.Parameter{}, nil, err
		}
		param.Type = array
	}

	SkipNoncode(ts)
	if token, ok := ts.Peek(); ok && token.IsPunct("=") {
		ts.Next()
		rest := ts.Rest()
		end := topLevelIndex(rest, 0, isPunctText(","))
		if end == -1 {
			end = len(rest)
		}
		param.Default = JoinTokens(rest[:end])
		return param, rest[end:], nil
	}

	return param, ts.Rest(), nil
}

// takeArraySuffix reads the bound after an already consumed [
func takeArraySuffix(ts *TokenStream, inner ast.Type) (ast.Type, error) {
	block, err := ConsumeBlock(ts, "[", "]")
	if err != nil {
		return nil, fmt.Errorf("array bound: %w", err)
	}
	size := ast.UnknownSize
	if code := FilterNoncode(block); len(code) == 1 {
		if n, err := code[0].ParseInt(); err == nil {
			size = n
		}
	}
	return ast.ArrayType{Inner: inner, Size: size}, nil
}

// methodShape locates the parameter list in the tokens following a member
// name. ok is false when the member is not a method.
type methodShape struct {
	params  []Token
	isConst bool
	isPure  bool
}

func findMethodShape(rest []Token) (methodShape, bool, error) {
	open := topLevelIndex(rest, 0, func(t Token) bool { return t.IsPunct("(") || t.IsPunct("=") })
	if open == -1 || !rest[open].IsPunct("(") {
		return methodShape{}, false, nil
	}
	end := matchingClose(rest, open)
	if end == -1 {
		return methodShape{}, false, fmt.Errorf("parameter list: %w", ErrUnbalanced)
	}

	// qualifiers sit between the parameter list and an initializer list
	tail := rest[end+1:]
	if colon := topLevelIndex(tail, 0, isPunctText(":")); colon != -1 {
		tail = tail[:colon]
	}
	shape := methodShape{params: rest[open+1 : end]}
	shape.isConst = indexOf(tail, 0, func(t Token) bool { return t.Is(TokenIdentifier, "const") }) != -1
	if eq := indexOf(tail, 0, isPunctText("=")); eq != -1 {
		if code := FilterNoncode(tail[eq+1:]); len(code) > 0 && code[0].Is(TokenLiteral, "0") {
			shape.isPure = true
		}
	}
	return shape, true, nil
}

// dropComments removes comment tokens but keeps whitespace
func dropComments(tokens []Token) []Token {
	result := make([]Token, 0, len(tokens))
	for _, token := range tokens {
		if token.Kind != TokenComment {
			result = append(result, token)
		}
	}
	return result
}
