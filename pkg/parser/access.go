package parser

import (
	"cxxdecl/pkg/ast"
)

// parseAccessLabel handles a "public:", "protected:" or "private:" label
// whose keyword token has already been read. It reports whether the token
// started a label.
func (p *Parser) parseAccessLabel(ts *TokenStream, token Token, state *bodyState) bool {
	if token.Kind != TokenIdentifier {
		return false
	}
	access, ok := ast.ParseAccessibility(token.Text)
	if !ok {
		return false
	}

	peeker := ts.Peeker()
	colon, err := TakeMeaningful(peeker)
	if err != nil || !colon.IsPunct(":") {
		return false
	}
	peeker.Commit()

	state.access = access
	p.logger.Debug("access label", "struct", state.structName, "access", access.String())
	return true
}
