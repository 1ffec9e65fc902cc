package parser

import (
	"errors"
)

var (
	// ErrExhausted is returned when a meaningful token was required but
	// the stream ran out
	ErrExhausted = errors.New("token stream exhausted")
	// ErrUnbalanced is returned when a block has no matching closer
	ErrUnbalanced = errors.New("unbalanced block")
)

// TokenReader is the read side shared by TokenStream and Peeker
type TokenReader interface {
	Next() (Token, bool)
}

// TokenStream is a cursor over a token slice with push-back support
type TokenStream struct {
	tokens  []Token // underlying tokens
	current int     // index of the next unread token in tokens
	queue   []Token // pushed back tokens, read before tokens[current:]
}

// NewTokenStream creates a stream over tokens
func NewTokenStream(tokens []Token) *TokenStream {
	return &TokenStream{tokens: tokens}
}

// Next consumes and returns the next token
func (ts *TokenStream) Next() (Token, bool) {
	if len(ts.queue) > 0 {
		token := ts.queue[0]
		ts.queue = ts.queue[1:]
		return token, true
	}
	if ts.current >= len(ts.tokens) {
		return Token{}, false
	}
	token := ts.tokens[ts.current]
	ts.current++
	return token, true
}

// Peek returns the next token without consuming it
func (ts *TokenStream) Peek() (Token, bool) {
	token, ok := ts.Next()
	if ok {
		ts.PutBack(token)
	}
	return token, ok
}

// PutBack pushes token in front of the stream so it is read next
func (ts *TokenStream) PutBack(token Token) {
	ts.queue = append([]Token{token}, ts.queue...)
}

// Empty reports whether every token has been consumed
func (ts *TokenStream) Empty() bool {
	return len(ts.queue) == 0 && ts.current >= len(ts.tokens)
}

// Rest returns the unread tokens without consuming them
func (ts *TokenStream) Rest() []Token {
	rest := make([]Token, 0, ts.remaining())
	rest = append(rest, ts.queue...)
	return append(rest, ts.tokens[ts.current:]...)
}

func (ts *TokenStream) remaining() int {
	return len(ts.queue) + len(ts.tokens) - ts.current
}

// at returns the i-th unread token
func (ts *TokenStream) at(i int) (Token, bool) {
	if i < len(ts.queue) {
		return ts.queue[i], true
	}
	i = ts.current + i - len(ts.queue)
	if i >= len(ts.tokens) {
		return Token{}, false
	}
	return ts.tokens[i], true
}

// skip consumes n tokens
func (ts *TokenStream) skip(n int) {
	if n <= len(ts.queue) {
		ts.queue = ts.queue[n:]
		return
	}
	ts.current += n - len(ts.queue)
	ts.queue = nil
}

// Peeker returns a lookahead cursor over the stream
func (ts *TokenStream) Peeker() *Peeker {
	return &Peeker{stream: ts}
}

// Peeker reads ahead of a TokenStream without consuming from it until
// Commit is called
type Peeker struct {
	stream *TokenStream
	read   int
}

// Next returns the next token after the ones already read by the peeker
func (p *Peeker) Next() (Token, bool) {
	token, ok := p.stream.at(p.read)
	if ok {
		p.read++
	}
	return token, ok
}

// Commit consumes every token the peeker has read from the stream
func (p *Peeker) Commit() {
	p.stream.skip(p.read)
	p.read = 0
}

// SkipNoncode consumes comments and whitespace up to the next meaningful token
func SkipNoncode(ts *TokenStream) {
	for {
		token, ok := ts.Peek()
		if !ok || !token.IsNoncode() {
			return
		}
		ts.Next()
	}
}

// TakeMeaningful consumes and returns the next token that is not a
// comment or whitespace
func TakeMeaningful(r TokenReader) (Token, error) {
	for {
		token, ok := r.Next()
		if !ok {
			return Token{}, ErrExhausted
		}
		if !token.IsNoncode() {
			return token, nil
		}
	}
}

// PeekMeaningful returns the next meaningful token without consuming anything
func PeekMeaningful(ts *TokenStream) (Token, bool) {
	token, err := TakeMeaningful(ts.Peeker())
	return token, err == nil
}

// ConsumeBlock reads up to the closer matching an already consumed opener.
// It returns the tokens in between, nested pairs included, and consumes
// the closer.
func ConsumeBlock(r TokenReader, opener, closer string) ([]Token, error) {
	var block []Token
	depth := 1
	for {
		token, ok := r.Next()
		if !ok {
			return block, ErrUnbalanced
		}
		if token.IsPunct(opener) {
			depth++
		} else if token.IsPunct(closer) {
			depth--
			if depth == 0 {
				return block, nil
			}
		}
		block = append(block, token)
	}
}
