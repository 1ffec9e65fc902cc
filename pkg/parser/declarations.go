package parser

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"cxxdecl/pkg/ast"
)

// RawDeclaration is a declaration located in header text whose body has
// not been parsed yet
type RawDeclaration struct {
	Keyword string // "struct", "class" or "enum"
	Name    string
	Body    []Token // tokens strictly between the braces
	Bases   []ast.Base
	Offset  int // byte offset of the match in the text
}

const baseSpec = `(?:(?:public|protected|private|virtual)\s+)*(?:::)?\w+(?:::\w+)*`

var (
	classRe = regexp.MustCompile(
		`\b(struct|class)\s+(\w+)(?:\s+final)?\s*(?::\s*(` + baseSpec + `(?:\s*,\s*` + baseSpec + `)*))?\s*\{`)
	enumRe    = regexp.MustCompile(`\benum(?:\s+(?:class|struct))?\s+(\w+)\s*(?::\s*[\w:\s]*?)?\s*\{`)
	typedefRe = regexp.MustCompile(`\btypedef\s+(struct|class|enum)\s*(\w+)?\s*\{`)
)

// ExtractDeclarations finds the struct, class and enum definitions in text
// and returns them in source order. The text must already have its macro
// definitions stripped (see StripMacroDefinitions).
func ExtractDeclarations(text string) ([]RawDeclaration, error) {
	tokens, err := Tokenize(text)
	if err != nil {
		return nil, err
	}

	var result []RawDeclaration

	enumMatches := enumRe.FindAllStringSubmatchIndex(text, -1)
	for _, m := range enumMatches {
		idx, ok := braceTokenAt(tokens, m[1]-1)
		if !ok {
			continue
		}
		decl := RawDeclaration{Keyword: "enum", Name: text[m[2]:m[3]], Offset: m[0]}
		if decl.Body, _, err = blockAt(tokens, idx); err != nil {
			return nil, fmt.Errorf("enum %s: %w", decl.Name, err)
		}
		result = append(result, decl)
	}

	for _, m := range classRe.FindAllStringSubmatchIndex(text, -1) {
		if insideAny(enumMatches, m[0]) {
			// "class Name {" of a scoped enum
			continue
		}
		idx, ok := braceTokenAt(tokens, m[1]-1)
		if !ok {
			continue
		}
		decl := RawDeclaration{Keyword: text[m[2]:m[3]], Name: text[m[4]:m[5]], Offset: m[0]}
		if m[6] >= 0 {
			decl.Bases = parseBases(text[m[6]:m[7]])
		}
		if decl.Body, _, err = blockAt(tokens, idx); err != nil {
			return nil, fmt.Errorf("%s %s: %w", decl.Keyword, decl.Name, err)
		}
		result = append(result, decl)
	}

	for _, m := range typedefRe.FindAllStringSubmatchIndex(text, -1) {
		idx, ok := braceTokenAt(tokens, m[1]-1)
		if !ok {
			continue
		}
		keyword := text[m[2]:m[3]]
		body, end, err := blockAt(tokens, idx)
		if err != nil {
			return nil, fmt.Errorf("typedef %s: %w", keyword, err)
		}
		name, err := TakeMeaningful(NewTokenStream(tokens[end+1:]))
		if err != nil || name.Kind != TokenIdentifier {
			continue
		}
		result = append(result, RawDeclaration{Keyword: keyword, Name: name.Text, Body: body, Offset: m[0]})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Offset < result[j].Offset
	})
	return result, nil
}

// braceTokenAt returns the index of the { token starting at offset. It
// fails when the brace lies inside a comment, literal or directive.
func braceTokenAt(tokens []Token, offset int) (int, bool) {
	idx := sort.Search(len(tokens), func(i int) bool { return tokens[i].Offset >= offset })
	if idx >= len(tokens) || tokens[idx].Offset != offset || !tokens[idx].IsPunct("{") {
		return 0, false
	}
	return idx, true
}

// blockAt returns the tokens inside the brace block opening at open and
// the index of its closing brace
func blockAt(tokens []Token, open int) ([]Token, int, error) {
	body, err := ConsumeBlock(NewTokenStream(tokens[open+1:]), "{", "}")
	if err != nil {
		return nil, 0, err
	}
	return body, open + 1 + len(body), nil
}

func insideAny(spans [][]int, offset int) bool {
	for _, span := range spans {
		if offset >= span[0] && offset < span[1] {
			return true
		}
	}
	return false
}

// parseBases parses a base-class list such as "public A, virtual private B"
func parseBases(list string) []ast.Base {
	var bases []ast.Base
	for _, entry := range strings.Split(list, ",") {
		base := ast.Base{Accessibility: ast.AccessPrivate}
		for _, word := range strings.Fields(entry) {
			if access, ok := ast.ParseAccessibility(word); ok {
				base.Accessibility = access
			} else if word == "virtual" {
				base.Virtual = true
			} else {
				base.Name = word
				break
			}
		}
		if base.Name == "" {
			break
		}
		bases = append(bases, base)
	}
	return bases
}
