package lexer

import "strconv"

// TokenType represents the type of a token.
//
// We use an int-based enum (via iota) rather than strings because comparisons
// are cheaper and the compiler catches typos. The String() method covers
// debugging and error messages, which are the only places the name matters.
type TokenType int

// Token type enumeration.
//
// Tokens are grouped logically: special tokens first, then literals and
// identifiers, then operators in precedence order, then delimiters. The
// operator block must stay contiguous so IsOperator can use a range check.
const (
	// TokenEnd marks the end of the formula. Using a token instead of an
	// error simplifies the evaluator: there is no special case for end of
	// input, and the token carries a position for "unexpected end of
	// formula" messages.
	TokenEnd TokenType = iota

	// TokenInvalid represents a lexical error. The offending text is stored
	// in Token.Lexeme so the error message can show exactly what was bad.
	TokenInvalid

	// TokenNumber represents a numeric literal. The raw text is kept in
	// Token.Lexeme and converted to float64 during evaluation.
	TokenNumber

	// TokenVariable is the single free variable x. No other identifier is a
	// legal variable.
	TokenVariable

	// TokenConstant is one of the named constants: e or pi.
	TokenConstant

	// TokenFunction is a name from the fixed function allow-list
	// (sin, cos, tan, ln, log, sqrt, abs, exp). The name is in Token.Lexeme.
	TokenFunction

	// Operators, in precedence order (lowest first).
	TokenPlus  // +
	TokenMinus // -
	TokenStar  // *
	TokenSlash // /
	TokenCaret // ^ (exponentiation, right-associative)

	// Delimiters
	TokenLeftParen  // (
	TokenRightParen // )
)

// Token represents a single lexical token.
//
// Token is a value type: tokens are small, immutable after creation, and a
// token stream never outlives the single evaluation call that produced it.
type Token struct {
	// Type is the token type.
	Type TokenType

	// Lexeme is the actual text from the formula. For numbers this is the
	// literal digits, for functions the name, for operators the symbol.
	Lexeme string

	// Pos is the byte offset of the token in the formula, for error
	// reporting. The formula is always a single line, so an offset is all
	// the position information there is.
	Pos int
}

// String returns a human-readable representation of the token.
// Format: "TYPE(lexeme) at offset". Primarily for debugging and error messages.
func (t Token) String() string {
	return t.Type.String() + "(" + t.Lexeme + ") at " + strconv.Itoa(t.Pos)
}

// String returns the string representation of a token type.
func (tt TokenType) String() string {
	switch tt {
	case TokenEnd:
		return "END"
	case TokenInvalid:
		return "INVALID"
	case TokenNumber:
		return "NUMBER"
	case TokenVariable:
		return "VARIABLE"
	case TokenConstant:
		return "CONSTANT"
	case TokenFunction:
		return "FUNCTION"
	case TokenPlus:
		return "PLUS"
	case TokenMinus:
		return "MINUS"
	case TokenStar:
		return "STAR"
	case TokenSlash:
		return "SLASH"
	case TokenCaret:
		return "CARET"
	case TokenLeftParen:
		return "LPAREN"
	case TokenRightParen:
		return "RPAREN"
	default:
		return "UNKNOWN"
	}
}

// IsOperator returns true if the token is one of the five binary/unary
// operator symbols.
func (tt TokenType) IsOperator() bool {
	return tt >= TokenPlus && tt <= TokenCaret
}

// functions is the fixed allow-list of function names. The set is closed by
// design: the evaluator dispatches over it with a single switch, and any
// other run of letters is an unknown-identifier error.
var functions = map[string]struct{}{
	"sin":  {},
	"cos":  {},
	"tan":  {},
	"ln":   {},
	"log":  {},
	"sqrt": {},
	"abs":  {},
	"exp":  {},
}

// constants maps the named constants to their token classification.
var constants = map[string]struct{}{
	"e":  {},
	"pi": {},
}

// LookupWord classifies a run of letters. It returns TokenVariable for
// exactly "x", TokenConstant for "e"/"pi", TokenFunction for a name on the
// allow-list, and TokenInvalid for anything else (an unknown identifier).
func LookupWord(word string) TokenType {
	if word == "x" {
		return TokenVariable
	}
	if _, ok := constants[word]; ok {
		return TokenConstant
	}
	if _, ok := functions[word]; ok {
		return TokenFunction
	}
	return TokenInvalid
}
