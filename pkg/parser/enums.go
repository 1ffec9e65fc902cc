package parser

import (
	"cxxdecl/pkg/ast"
)

// ParseEnumBody parses the tokens between the braces of an enum. Every
// identifier at the top level becomes a variant; initializers are skipped.
func (p *Parser) ParseEnumBody(name string, body []Token) (*ast.Enum, error) {
	result := ast.NewEnum(name)
	ts := NewTokenStream(body)

	var (
		doc  docBuffer
		last *ast.EnumVariant
	)

	for {
		token, ok := ts.Next()
		if !ok {
			break
		}

		switch token.Kind {
		case TokenComment:
			text, placement := cleanDocComment(token.Text)
			switch placement {
			case docLeading:
				doc.add(text)
			case docTrailing:
				if last != nil {
					last.Docstring = appendDoc(last.Docstring, text)
				}
			}
		case TokenIdentifier:
			variant := &ast.EnumVariant{Docstring: doc.take(), Name: token.Text}
			result.AddVariant(variant)
			last = variant
			skipEnumValue(ts)
		default:
			// whitespace and stray separators
		}
	}

	p.logger.Debug("parsed enum", "enum", name, "variants", len(result.Members))
	return result, nil
}

// skipEnumValue consumes "= value," or "," after a variant name. A value
// runs to the next comma outside parentheses, brackets and braces.
func skipEnumValue(ts *TokenStream) {
	peeker := ts.Peeker()
	token, err := TakeMeaningful(peeker)
	if err != nil {
		return
	}
	if token.IsPunct(",") {
		peeker.Commit()
		return
	}
	if !token.IsPunct("=") {
		return
	}
	peeker.Commit()

	depth := 0
	for {
		token, ok := ts.Next()
		if !ok {
			return
		}
		if token.Kind != TokenPunctuation {
			continue
		}
		switch token.Text {
		case "(", "[", "{":
			depth++
		case ")", "]", "}":
			depth--
		case ",":
			if depth == 0 {
				return
			}
		}
	}
}
