// Package parser implements a token-driven extractor for the struct, class
// and enum definitions of C++ headers
package parser

import (
	"fmt"
	"log/slog"

	"cxxdecl/pkg/ast"
)

// Parser turns header text into declarations. A Parser holds no per-file
// state and may be shared between goroutines.
type Parser struct {
	logger *slog.Logger
}

// Option configures a Parser
type Option func(*Parser)

// WithLogger sets the logger receiving skipped-member diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New creates a parser
func New(opts ...Option) *Parser {
	p := &Parser{logger: slog.Default()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse extracts every struct, class and enum definition in content, in
// source order. A name defined twice appears twice.
func (p *Parser) Parse(content string) ([]ast.Declaration, error) {
	raws, err := ExtractDeclarations(StripMacroDefinitions(content))
	if err != nil {
		return nil, err
	}

	result := make([]ast.Declaration, 0, len(raws))
	for _, raw := range raws {
		decl, err := p.ParseDeclaration(raw)
		if err != nil {
			return nil, err
		}
		result = append(result, decl)
	}
	return result, nil
}

// ParseDeclaration parses the body of one extracted declaration. Class
// members start out private, struct members public.
func (p *Parser) ParseDeclaration(raw RawDeclaration) (ast.Declaration, error) {
	p.logger.Debug("parsing declaration", "keyword", raw.Keyword, "name", raw.Name)

	switch raw.Keyword {
	case "class":
		return p.ParseStructBody(raw.Name, raw.Body, ast.AccessPrivate, raw.Bases)
	case "struct":
		return p.ParseStructBody(raw.Name, raw.Body, ast.AccessPublic, raw.Bases)
	case "enum":
		return p.ParseEnumBody(raw.Name, raw.Body)
	}
	return nil, fmt.Errorf("unknown declaration keyword %q", raw.Keyword)
}
