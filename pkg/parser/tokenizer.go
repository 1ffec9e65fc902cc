// Package parser - tokenizer implementation for C++ header files
package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenKind represents the lexical class of a token
type TokenKind int

const (
	TokenComment TokenKind = iota
	TokenPunctuation
	TokenLiteral
	TokenIdentifier
	TokenWhitespace
)

func (k TokenKind) String() string {
	switch k {
	case TokenComment:
		return "COMMENT"
	case TokenPunctuation:
		return "PUNCT"
	case TokenLiteral:
		return "LITERAL"
	case TokenIdentifier:
		return "IDENTIFIER"
	case TokenWhitespace:
		return "WHITESPACE"
	default:
		return "UNKNOWN"
	}
}

// Token represents a single token
type Token struct {
	Kind   TokenKind
	Text   string
	Line   int
	Column int
	Offset int
}

// String returns a string representation of the token
func (t Token) String() string {
	if t.Kind == TokenWhitespace {
		return "WHITESPACE"
	}
	return fmt.Sprintf("%s:%s", t.Kind, t.Text)
}

// Is reports whether the token has the given kind and text
func (t Token) Is(kind TokenKind, text string) bool {
	return t.Kind == kind && t.Text == text
}

// IsPunct reports whether the token is the given punctuation
func (t Token) IsPunct(text string) bool {
	return t.Is(TokenPunctuation, text)
}

// IsNoncode reports whether the token is a comment or whitespace
func (t Token) IsNoncode() bool {
	return t.Kind == TokenComment || t.Kind == TokenWhitespace
}

// ParseInt parses an integer literal made of decimal digits with an
// optional U/L suffix. Digit separators are ignored.
func (t Token) ParseInt() (int, error) {
	if t.Kind != TokenLiteral {
		return 0, fmt.Errorf("expected integer literal, got %s", t)
	}
	digits := strings.ReplaceAll(strings.TrimRight(t.Text, "uUlL"), "'", "")
	if digits == "" {
		return 0, fmt.Errorf("invalid integer literal %q", t.Text)
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("invalid integer literal %q", t.Text)
		}
	}
	return strconv.Atoi(digits)
}

var (
	// ErrUnterminatedString is returned for a string literal without a
	// closing quote
	ErrUnterminatedString = errors.New("unterminated string literal")
)

// punctuation is the set of characters that end an identifier
const punctuation = "!\"#%&'()*+,-./:;<=>?@[\\]^`{|}~"

var len2Punct = map[string]bool{
	"::": true, "->": true,
	"==": true, "!=": true, "<=": true, ">=": true,
	"&&": true, "||": true, "++": true, "--": true,
	"+=": true, "-=": true, "*=": true, "/=": true,
	"%=": true, "&=": true, "|=": true, "^=": true,
}

var len3Punct = map[string]bool{
	"...": true,
}

func isPunct(r rune) bool {
	return r < utf8.RuneSelf && strings.ContainsRune(punctuation, r)
}

// isIdentTerminator reports whether r ends an identifier or number
func isIdentTerminator(r rune) bool {
	return unicode.IsSpace(r) || isPunct(r)
}

// Tokenizer represents the tokenizer state
type Tokenizer struct {
	input  string
	pos    int // current position in input
	start  int // start position of current token
	line   int // line of the token start
	column int // column of the token start
	tokens []Token
}

// NewTokenizer creates a new tokenizer
func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{
		input:  input,
		line:   1,
		column: 1,
		tokens: make([]Token, 0, len(input)/4+1),
	}
}

// Tokenize splits text into tokens
func Tokenize(text string) ([]Token, error) {
	return NewTokenizer(text).Tokenize()
}

// Tokenize processes the input and returns all tokens in source order
func (t *Tokenizer) Tokenize() ([]Token, error) {
	for t.pos < len(t.input) {
		r, _ := utf8.DecodeRuneInString(t.input[t.pos:])

		switch {
		case unicode.IsSpace(r):
			t.scanWhitespace()

		case strings.HasPrefix(t.input[t.pos:], "//"):
			t.scanLineComment()

		case strings.HasPrefix(t.input[t.pos:], "/*"):
			t.scanBlockComment()

		case r == '#':
			t.skipDirective()

		case r == '"':
			if err := t.scanString(); err != nil {
				return nil, err
			}

		case r == '\'':
			t.scanCharacter()

		case r >= '0' && r <= '9':
			t.scanNumber()

		case isPunct(r):
			t.scanPunctuation()

		default:
			t.scanIdentifier()
		}
	}

	return t.tokens, nil
}

// emit creates a token from the pending input and adds it to the tokens slice
func (t *Tokenizer) emit(kind TokenKind) {
	text := t.input[t.start:t.pos]
	t.tokens = append(t.tokens, Token{
		Kind:   kind,
		Text:   text,
		Line:   t.line,
		Column: t.column,
		Offset: t.start,
	})
	t.ignore()
}

// ignore discards the pending input while keeping line/column current
func (t *Tokenizer) ignore() {
	text := t.input[t.start:t.pos]
	if n := strings.Count(text, "\n"); n > 0 {
		t.line += n
		t.column = utf8.RuneCountInString(text[strings.LastIndexByte(text, '\n')+1:]) + 1
	} else {
		t.column += utf8.RuneCountInString(text)
	}
	t.start = t.pos
}

// advanceWhile moves past runes matching fn
func (t *Tokenizer) advanceWhile(fn func(rune) bool) {
	for t.pos < len(t.input) {
		r, w := utf8.DecodeRuneInString(t.input[t.pos:])
		if !fn(r) {
			return
		}
		t.pos += w
	}
}

// scanWhitespace scans a whitespace run
func (t *Tokenizer) scanWhitespace() {
	t.advanceWhile(unicode.IsSpace)
	t.emit(TokenWhitespace)
}

// scanLineComment scans until end of line, leaving the newline
func (t *Tokenizer) scanLineComment() {
	if end := strings.IndexByte(t.input[t.pos:], '\n'); end >= 0 {
		t.pos += end
	} else {
		t.pos = len(t.input)
	}
	t.emit(TokenComment)
}

// scanBlockComment scans until */ or the end of input
func (t *Tokenizer) scanBlockComment() {
	if end := strings.Index(t.input[t.pos+2:], "*/"); end >= 0 {
		t.pos += 2 + end + 2
	} else {
		t.pos = len(t.input)
	}
	t.emit(TokenComment)
}

// skipDirective drops a preprocessor line and its backslash continuations
func (t *Tokenizer) skipDirective() {
	for {
		end := strings.IndexByte(t.input[t.pos:], '\n')
		if end < 0 {
			t.pos = len(t.input)
			break
		}
		line := strings.TrimRight(t.input[t.pos:t.pos+end], " \t\r")
		t.pos += end
		if !strings.HasSuffix(line, "\\") {
			break
		}
		t.pos++ // continuation: consume the newline and keep going
	}
	t.ignore()
}

// closingQuote returns the index just past the quote closing the literal
// at t.pos, or -1. A newline ends the search when stopAtNewline is set.
func (t *Tokenizer) closingQuote(quote byte, stopAtNewline bool) int {
	for i := t.pos + 1; i < len(t.input); i++ {
		switch t.input[i] {
		case '\\':
			i++
		case '\n':
			if stopAtNewline {
				return -1
			}
		case quote:
			return i + 1
		}
	}
	return -1
}

// scanString scans a double-quoted string literal
func (t *Tokenizer) scanString() error {
	end := t.closingQuote('"', false)
	if end < 0 {
		return fmt.Errorf("%w at line %d, column %d", ErrUnterminatedString, t.line, t.column)
	}
	t.pos = end
	t.emit(TokenLiteral)
	return nil
}

// scanCharacter scans a character literal. A quote with no closing quote
// on the same line is plain punctuation.
func (t *Tokenizer) scanCharacter() {
	end := t.closingQuote('\'', true)
	if end < 0 {
		t.pos++
		t.emit(TokenPunctuation)
		return
	}
	t.pos = end
	t.emit(TokenLiteral)
}

// scanNumber scans a numeric literal up to the next identifier terminator.
// Digit separators (1'000, 0xFF'FF) stay inside the literal.
func (t *Tokenizer) scanNumber() {
	for t.pos < len(t.input) {
		r, w := utf8.DecodeRuneInString(t.input[t.pos:])
		if r == '\'' && t.atDigitSeparator() {
			t.pos += w
			continue
		}
		if isIdentTerminator(r) {
			break
		}
		t.pos += w
	}
	t.emit(TokenLiteral)
}

// atDigitSeparator reports whether the quote at t.pos sits between two
// digits of the literal being scanned
func (t *Tokenizer) atDigitSeparator() bool {
	return t.pos > t.start && t.pos+1 < len(t.input) &&
		isHexDigit(t.input[t.pos-1]) && isHexDigit(t.input[t.pos+1])
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// scanIdentifier scans an identifier or keyword
func (t *Tokenizer) scanIdentifier() {
	t.advanceWhile(func(r rune) bool { return !isIdentTerminator(r) })
	t.emit(TokenIdentifier)
}

// scanPunctuation scans the longest matching operator
func (t *Tokenizer) scanPunctuation() {
	rest := t.input[t.pos:]
	switch {
	case len(rest) >= 3 && len3Punct[rest[:3]]:
		t.pos += 3
	case len(rest) >= 2 && len2Punct[rest[:2]]:
		t.pos += 2
	default:
		t.pos++
	}
	t.emit(TokenPunctuation)
}
