package parser

import (
	"strings"
)

// JoinTokens renders tokens back to text, dropping comments and collapsing
// each whitespace run to a single space
func JoinTokens(tokens []Token) string {
	var b strings.Builder
	space := false
	for _, token := range tokens {
		switch token.Kind {
		case TokenWhitespace:
			space = true
		case TokenComment:
		default:
			if space && b.Len() > 0 {
				b.WriteString(" ")
			}
			space = false
			b.WriteString(token.Text)
		}
	}
	return b.String()
}

// FilterNoncode drops comments and whitespace
func FilterNoncode(tokens []Token) []Token {
	result := make([]Token, 0, len(tokens))
	for _, token := range tokens {
		if !token.IsNoncode() {
			result = append(result, token)
		}
	}
	return result
}

// trimNoncode drops leading and trailing comments and whitespace
func trimNoncode(tokens []Token) []Token {
	for len(tokens) > 0 && tokens[0].IsNoncode() {
		tokens = tokens[1:]
	}
	for len(tokens) > 0 && tokens[len(tokens)-1].IsNoncode() {
		tokens = tokens[:len(tokens)-1]
	}
	return tokens
}

// indexOf returns the index of the first token at or after start matching fn
func indexOf(tokens []Token, start int, fn func(Token) bool) int {
	for i := start; i < len(tokens); i++ {
		if fn(tokens[i]) {
			return i
		}
	}
	return -1
}

// matchingClose returns the index of the closer balancing the opener at open
func matchingClose(tokens []Token, open int) int {
	opener, closer := tokens[open].Text, closerFor(tokens[open].Text)
	depth := 0
	for i := open; i < len(tokens); i++ {
		switch {
		case tokens[i].IsPunct(opener):
			depth++
		case tokens[i].IsPunct(closer):
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func closerFor(opener string) string {
	switch opener {
	case "(":
		return ")"
	case "[":
		return "]"
	case "{":
		return "}"
	case "<":
		return ">"
	}
	return ""
}

// topLevelIndex returns the index of the first token at or after start
// matching fn that is not nested inside parentheses, brackets or braces
func topLevelIndex(tokens []Token, start int, fn func(Token) bool) int {
	depth := 0
	for i := start; i < len(tokens); i++ {
		token := tokens[i]
		if depth == 0 && fn(token) {
			return i
		}
		if token.Kind != TokenPunctuation {
			continue
		}
		switch token.Text {
		case "(", "[", "{":
			depth++
		case ")", "]", "}":
			if depth > 0 {
				depth--
			}
		}
	}
	return -1
}

func isPunctText(text string) func(Token) bool {
	return func(t Token) bool { return t.IsPunct(text) }
}

func isIdent(t Token) bool {
	return t.Kind == TokenIdentifier
}
