// Package eval evaluates a formula in the single free variable x at one
// bound value of x.
//
// The evaluator is a single-pass recursive descent walk over the token
// stream: each grammar level computes its numeric value directly while
// consuming tokens, so no syntax tree is ever built. The grammar, lowest to
// highest precedence:
//
//	expr    := term (('+'|'-') term)*
//	term    := power (('*'|'/') power)*
//	power   := unary ('^' power)?          right-associative
//	unary   := ('+'|'-') unary | primary
//	primary := NUMBER | 'x' | CONST | FUNC '(' expr ')' | '(' expr ')'
//
// Every call re-lexes and re-parses the formula text. The formula string is
// the only compiled artifact; no state outlives a call, so concurrent
// callers never interfere.
package eval

import (
	"math"
	"strconv"

	"github.com/hassan/mathengine/internal/lexer"
)

// evaluator holds the per-call state: the token stream, a cursor into it,
// and the value bound to x. One evaluator serves exactly one Evaluate call.
type evaluator struct {
	tokens []lexer.Token
	pos    int
	x      float64
}

// Evaluate computes the value of formula with the variable x bound to the
// given value. It fails with an *EvalError wrapping the underlying lexical,
// syntactic, or domain failure.
func Evaluate(formula string, x float64) (float64, error) {
	tokens, err := lexer.Tokenize(formula)
	if err != nil {
		return 0, &EvalError{Formula: formula, Err: err}
	}

	ev := &evaluator{tokens: tokens, x: x}
	value, err := ev.parseExpr()
	if err != nil {
		return 0, &EvalError{Formula: formula, Err: err}
	}

	// The whole stream must be consumed. A leftover token means trailing
	// input, e.g. "2x": there is no implicit multiplication, so the x after
	// the complete expression "2" is an error rather than a product.
	if tok := ev.peek(); tok.Type != lexer.TokenEnd {
		return 0, &EvalError{
			Formula: formula,
			Err:     &ParseError{Pos: tok.Pos, Message: "unexpected " + tok.Type.String() + " after expression"},
		}
	}
	return value, nil
}

// IsValid reports whether formula is a well-formed expression, defined as:
// does evaluating it at x = 1 succeed. A formula that only fails on a domain
// error at other points (such as "1/x" at zero) is still valid.
func IsValid(formula string) bool {
	_, err := Evaluate(formula, 1.0)
	return err == nil
}

// parseExpr parses addition and subtraction, left-associative.
func (ev *evaluator) parseExpr() (float64, error) {
	value, err := ev.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		switch ev.peek().Type {
		case lexer.TokenPlus:
			ev.advance()
			rhs, err := ev.parseTerm()
			if err != nil {
				return 0, err
			}
			value += rhs
		case lexer.TokenMinus:
			ev.advance()
			rhs, err := ev.parseTerm()
			if err != nil {
				return 0, err
			}
			value -= rhs
		default:
			return value, nil
		}
	}
}

// parseTerm parses multiplication and division, left-associative. Division
// by exactly zero is a domain error.
func (ev *evaluator) parseTerm() (float64, error) {
	value, err := ev.parsePower()
	if err != nil {
		return 0, err
	}
	for {
		switch ev.peek().Type {
		case lexer.TokenStar:
			ev.advance()
			rhs, err := ev.parsePower()
			if err != nil {
				return 0, err
			}
			value *= rhs
		case lexer.TokenSlash:
			ev.advance()
			rhs, err := ev.parsePower()
			if err != nil {
				return 0, err
			}
			if rhs == 0 {
				return 0, &DomainError{Message: "division by zero"}
			}
			value /= rhs
		default:
			return value, nil
		}
	}
}

// parsePower parses exponentiation. '^' is right-associative: a^b^c is
// a^(b^c), which the recursion on the right operand produces directly.
func (ev *evaluator) parsePower() (float64, error) {
	base, err := ev.parseUnary()
	if err != nil {
		return 0, err
	}
	if ev.peek().Type != lexer.TokenCaret {
		return base, nil
	}
	ev.advance()
	exponent, err := ev.parsePower()
	if err != nil {
		return 0, err
	}
	return math.Pow(base, exponent), nil
}

// parseUnary parses prefix sign operators.
func (ev *evaluator) parseUnary() (float64, error) {
	switch ev.peek().Type {
	case lexer.TokenPlus:
		ev.advance()
		return ev.parseUnary()
	case lexer.TokenMinus:
		ev.advance()
		value, err := ev.parseUnary()
		if err != nil {
			return 0, err
		}
		return -value, nil
	default:
		return ev.parsePrimary()
	}
}

// parsePrimary parses a number literal, the variable x, a named constant, a
// function application, or a parenthesized sub-expression.
func (ev *evaluator) parsePrimary() (float64, error) {
	tok := ev.peek()
	switch tok.Type {
	case lexer.TokenNumber:
		ev.advance()
		value, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil {
			return 0, &ParseError{Pos: tok.Pos, Message: "invalid number " + strconv.Quote(tok.Lexeme)}
		}
		return value, nil

	case lexer.TokenVariable:
		ev.advance()
		return ev.x, nil

	case lexer.TokenConstant:
		ev.advance()
		if tok.Lexeme == "e" {
			return math.E, nil
		}
		return math.Pi, nil

	case lexer.TokenFunction:
		ev.advance()
		// A function name must be followed by a parenthesized argument;
		// "sin x" is not accepted.
		if ev.peek().Type != lexer.TokenLeftParen {
			return 0, &ParseError{Pos: ev.peek().Pos, Message: "expected '(' after " + tok.Lexeme}
		}
		ev.advance()
		arg, err := ev.parseExpr()
		if err != nil {
			return 0, err
		}
		if ev.peek().Type != lexer.TokenRightParen {
			return 0, &ParseError{Pos: ev.peek().Pos, Message: "expected ')' to close " + tok.Lexeme + " argument"}
		}
		ev.advance()
		return applyFunction(tok.Lexeme, arg)

	case lexer.TokenLeftParen:
		ev.advance()
		value, err := ev.parseExpr()
		if err != nil {
			return 0, err
		}
		if ev.peek().Type != lexer.TokenRightParen {
			return 0, &ParseError{Pos: ev.peek().Pos, Message: "expected ')'"}
		}
		ev.advance()
		return value, nil

	case lexer.TokenEnd:
		return 0, &ParseError{Pos: tok.Pos, Message: "unexpected end of formula"}

	default:
		return 0, &ParseError{Pos: tok.Pos, Message: "unexpected " + tok.Type.String()}
	}
}

// applyFunction dispatches a function application over the closed
// allow-list. ln and log take the natural and base-10 logarithm
// respectively; both require a positive argument. sqrt requires a
// non-negative argument.
func applyFunction(name string, arg float64) (float64, error) {
	switch name {
	case "sin":
		return math.Sin(arg), nil
	case "cos":
		return math.Cos(arg), nil
	case "tan":
		return math.Tan(arg), nil
	case "ln":
		if arg <= 0 {
			return 0, &DomainError{Message: "ln of non-positive argument"}
		}
		return math.Log(arg), nil
	case "log":
		if arg <= 0 {
			return 0, &DomainError{Message: "log of non-positive argument"}
		}
		return math.Log10(arg), nil
	case "sqrt":
		if arg < 0 {
			return 0, &DomainError{Message: "square root of negative argument"}
		}
		return math.Sqrt(arg), nil
	case "abs":
		return math.Abs(arg), nil
	case "exp":
		return math.Exp(arg), nil
	default:
		// Unreachable: the lexer only emits TokenFunction for names on the
		// allow-list.
		return 0, &ParseError{Message: "unknown function " + name}
	}
}

// peek returns the current token without consuming it. The stream always
// ends with TokenEnd, so peek never runs past the slice.
func (ev *evaluator) peek() lexer.Token {
	if ev.pos >= len(ev.tokens) {
		return lexer.Token{Type: lexer.TokenEnd, Pos: ev.posEnd()}
	}
	return ev.tokens[ev.pos]
}

// advance consumes the current token.
func (ev *evaluator) advance() {
	if ev.pos < len(ev.tokens) {
		ev.pos++
	}
}

// posEnd returns the offset just past the last real token.
func (ev *evaluator) posEnd() int {
	if len(ev.tokens) == 0 {
		return 0
	}
	last := ev.tokens[len(ev.tokens)-1]
	return last.Pos + len(last.Lexeme)
}
