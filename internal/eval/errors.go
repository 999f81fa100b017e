package eval

import "fmt"

// ParseError reports a syntactic failure: a missing parenthesis, an
// unexpected token, or trailing input after a complete expression.
type ParseError struct {
	// Pos is the byte offset of the offending token in the formula.
	Pos int

	// Message describes what the evaluator expected.
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Pos, e.Message)
}

// DomainError reports a mathematically invalid operation: division by zero,
// the logarithm of a non-positive argument, or the square root of a negative
// argument.
type DomainError struct {
	// Message describes the invalid operation.
	Message string
}

func (e *DomainError) Error() string {
	return "domain error: " + e.Message
}

// EvalError wraps any failure inside Evaluate (lexical, syntactic, or
// domain) together with the formula text for context. Callers that care
// about the failure class unwrap with errors.As.
type EvalError struct {
	// Formula is the formula text that failed to evaluate.
	Formula string

	// Err is the underlying *lexer.LexError, *ParseError, or *DomainError.
	Err error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("cannot evaluate %q: %v", e.Formula, e.Err)
}

func (e *EvalError) Unwrap() error {
	return e.Err
}
