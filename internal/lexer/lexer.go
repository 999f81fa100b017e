// Package lexer turns a formula string into a flat stream of tokens.
//
// The lexer is the first phase of evaluation. Its responsibilities are:
//  1. Break the formula into tokens (numbers, the variable x, constants,
//     function names, operators, parentheses)
//  2. Track byte offsets for error reporting
//  3. Reject anything outside the formula grammar's alphabet
//
// The lexer does NOT parse syntax (that is the evaluator's job) and does not
// validate numeric ranges; it only recognizes token shapes.
package lexer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// LexError reports an invalid character or substring in a formula, together
// with its byte offset.
type LexError struct {
	// Text is the offending character or substring.
	Text string

	// Pos is the byte offset of Text in the formula.
	Pos int

	// Message describes what went wrong.
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("invalid formula at offset %d: %s %q", e.Pos, e.Message, e.Text)
}

// Lexer scans a formula left to right. A Lexer is used for exactly one
// formula and one pass; no state survives past the End token.
type Lexer struct {
	// formula is the complete formula being lexed. Formulas are short
	// single-line strings, so holding the whole input makes lookahead and
	// position tracking trivial.
	formula string

	// start is the byte offset of the token currently being scanned.
	start int

	// current is the byte offset being examined. The current token's lexeme
	// is formula[start:current].
	current int
}

// New creates a new Lexer for the given formula.
func New(formula string) *Lexer {
	return &Lexer{formula: formula}
}

// Tokenize scans the whole formula and returns the token stream. The
// returned slice always ends with a TokenEnd token. On the first lexical
// error it stops and returns a *LexError.
func Tokenize(formula string) ([]Token, error) {
	l := New(formula)
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == TokenEnd {
			return tokens, nil
		}
	}
}

// NextToken returns the next token from the formula.
//
// Whitespace is skipped before each token. After the formula is exhausted,
// NextToken keeps returning TokenEnd.
func (l *Lexer) NextToken() (Token, error) {
	l.skipWhitespace()
	l.start = l.current

	if l.isAtEnd() {
		return l.makeToken(TokenEnd, ""), nil
	}

	ch, _ := l.advance()

	// A run of letters is the variable, a constant, or a function name.
	if isLetter(ch) {
		return l.scanWord()
	}

	// A run of digits (with at most one decimal point) is a number. A
	// leading '.' is also allowed to start a number, but a lone '.' is an
	// error, handled inside scanNumber.
	if isDigit(ch) || ch == '.' {
		return l.scanNumber()
	}

	switch ch {
	case '+':
		return l.makeToken(TokenPlus, "+"), nil
	case '-':
		return l.makeToken(TokenMinus, "-"), nil
	case '*':
		return l.makeToken(TokenStar, "*"), nil
	case '/':
		return l.makeToken(TokenSlash, "/"), nil
	case '^':
		return l.makeToken(TokenCaret, "^"), nil
	case '(':
		return l.makeToken(TokenLeftParen, "("), nil
	case ')':
		return l.makeToken(TokenRightParen, ")"), nil
	default:
		return l.makeToken(TokenInvalid, string(ch)),
			l.errorf(string(ch), "unexpected character")
	}
}

// scanWord scans a run of letters and classifies it as the variable x, a
// constant, or a function name. Any other word is an unknown identifier.
func (l *Lexer) scanWord() (Token, error) {
	for !l.isAtEnd() && isLetter(l.peek()) {
		l.advance()
	}

	word := l.formula[l.start:l.current]
	tokenType := LookupWord(word)
	if tokenType == TokenInvalid {
		return l.makeToken(TokenInvalid, word),
			l.errorf(word, "unknown identifier")
	}
	return l.makeToken(tokenType, word), nil
}

// scanNumber scans a numeric literal: a run of digits containing at most one
// decimal point. Accepted shapes are "42", "3.14", "1." and ".5"; a lone "."
// or a second decimal point is a malformed number.
func (l *Lexer) scanNumber() (Token, error) {
	for !l.isAtEnd() && isDigit(l.peek()) {
		l.advance()
	}

	// At most one decimal point; the first character may already have been
	// the dot.
	if strings.IndexByte(l.formula[l.start:l.current], '.') < 0 &&
		!l.isAtEnd() && l.peek() == '.' {
		l.advance()
		for !l.isAtEnd() && isDigit(l.peek()) {
			l.advance()
		}
	}

	text := l.formula[l.start:l.current]
	if text == "." {
		return l.makeToken(TokenInvalid, text),
			l.errorf(text, "malformed number")
	}
	if !l.isAtEnd() && l.peek() == '.' {
		// A second decimal point, as in "1.2.3".
		return l.makeToken(TokenInvalid, text+"."),
			l.errorf(text+".", "malformed number")
	}
	return l.makeToken(TokenNumber, text), nil
}

// advance reads and returns the next character, advancing the current
// position. Returns the rune and its byte size.
func (l *Lexer) advance() (rune, int) {
	if l.isAtEnd() {
		return 0, 0
	}
	ch, size := utf8.DecodeRuneInString(l.formula[l.current:])
	l.current += size
	return ch, size
}

// peek returns the current character without advancing. Returns 0 at the end
// of the formula.
func (l *Lexer) peek() rune {
	if l.isAtEnd() {
		return 0
	}
	ch, _ := utf8.DecodeRuneInString(l.formula[l.current:])
	return ch
}

// isAtEnd returns true if the whole formula has been consumed.
func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.formula)
}

// skipWhitespace skips over whitespace. Whitespace carries no meaning in a
// formula; it is stripped before scanning each token.
func (l *Lexer) skipWhitespace() {
	for !l.isAtEnd() {
		switch l.peek() {
		case ' ', '\t', '\r', '\n':
			l.advance()
		default:
			return
		}
	}
}

// makeToken creates a token for the current scan range.
func (l *Lexer) makeToken(tokenType TokenType, lexeme string) Token {
	return Token{
		Type:   tokenType,
		Lexeme: lexeme,
		Pos:    l.start,
	}
}

// errorf creates a *LexError at the start of the current token.
func (l *Lexer) errorf(text, message string) error {
	return &LexError{Text: text, Pos: l.start, Message: message}
}

// isLetter returns true if the rune is a letter. Identifiers in a formula
// are plain words (x, pi, sin, ...), so there is no underscore case.
func isLetter(ch rune) bool {
	return unicode.IsLetter(ch)
}

// isDigit returns true if the rune is a decimal digit (0-9). Numeric
// literals are ASCII only.
func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
