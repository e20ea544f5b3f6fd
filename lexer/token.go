/*
File    : glint/lexer/token.go
*/

// Package lexer turns source text into a flat stream of Tokens. The
// operator table follows a two-level lookahead scheme: a first character
// selects a base kind, and at most one follow character refines it into
// a compound operator (e.g. '<' -> LT, then '<=' -> LTE, '<<' -> LSHIFT,
// '<>' -> NE).
package lexer

import "github.com/akashmaji946/glint/position"

// Kind tags the category of a Token.
type Kind string

const (
	INT        Kind = "INT"
	FLOAT      Kind = "FLOAT"
	STRING     Kind = "STRING"
	BOOL       Kind = "BOOL"
	NULL       Kind = "NULL"
	IDENTIFIER Kind = "IDENTIFIER"
	KEYWORD    Kind = "KEYWORD"
	NEWLINE    Kind = "NEWLINE"
	EOF        Kind = "EOF"
	POINT_TOK  Kind = "POINT" // bare '.' (not part of a float)

	PLUS  Kind = "PLUS"
	MINUS Kind = "MINUS"
	MUL   Kind = "MUL"
	DIV   Kind = "DIV"
	FLOOR Kind = "FLOOR"
	MOD   Kind = "MOD"
	POW   Kind = "POW"
	XAT   Kind = "XAT" // *@ - unary "id-of"

	BITAND Kind = "BITAND"
	BITOR  Kind = "BITOR"
	BITXOR Kind = "BITXOR"
	LSHIFT Kind = "LSHIFT"
	RSHIFT Kind = "RSHIFT"
	INVERT Kind = "INVERT"

	LT  Kind = "LT"
	LTE Kind = "LTE"
	GT  Kind = "GT"
	GTE Kind = "GTE"
	EE  Kind = "EE"
	NE  Kind = "NE"

	EQ       Kind = "EQ"
	NOT      Kind = "NOT"
	ARROW    Kind = "ARROW"
	DOUBLE   Kind = "DOUBLE" // :: membership
	AT       Kind = "AT"     // @ map
	QUESTION Kind = "QUESTION"
	COLON    Kind = "COLON"
	COMMA    Kind = "COMMA"

	PLUS_ASSIGN   Kind = "PLUS_ASSIGN"
	MINUS_ASSIGN  Kind = "MINUS_ASSIGN"
	MUL_ASSIGN    Kind = "MUL_ASSIGN"
	DIV_ASSIGN    Kind = "DIV_ASSIGN"
	FLOOR_ASSIGN  Kind = "FLOOR_ASSIGN"
	MOD_ASSIGN    Kind = "MOD_ASSIGN"
	POW_ASSIGN    Kind = "POW_ASSIGN"

	LPAREN   Kind = "LPAREN"
	RPAREN   Kind = "RPAREN"
	LBRACKET Kind = "LBRACKET"
	RBRACKET Kind = "RBRACKET"
	LBRACE   Kind = "LBRACE"
	RBRACE   Kind = "RBRACE"

	RANGE_DOTS Kind = "RANGE" // ... not part of the grammar below but reserved
	INVALID    Kind = "INVALID"
)

// Keywords is the fixed reserved-word set from the language surface.
// true/false/null are intentionally absent: they are recognised by the
// lexer but emit BOOL/NULL tokens rather than KEYWORD.
var Keywords = map[string]bool{
	"for": true, "while": true, "to": true, "var": true, "if": true,
	"elif": true, "else": true, "step": true, "exit": true, "then": true,
	"throw": true, "function": true, "include": true, "do": true, "end": true,
	"return": true, "break": true, "continue": true, "try": true, "catch": true,
	"delete": true, "lambda": true, "assert": true, "finally": true,
	"switch": true, "case": true, "default": true, "and": true, "or": true,
	"not": true, "pass": true, "attr": true, "namespace": true, "using": true,
	"unless": true,
}

// Token is a single lexical unit carrying its kind, raw lexeme and span.
type Token struct {
	Kind  Kind
	Value string
	Span  position.Span
}

// Is reports whether the token has the given kind.
func (t Token) Is(kind Kind) bool { return t.Kind == kind }

// IsKeyword reports whether the token is the named reserved word.
func (t Token) IsKeyword(word string) bool {
	return t.Kind == KEYWORD && t.Value == word
}

// lookupIdent classifies an identifier-shaped lexeme: a reserved keyword
// becomes KEYWORD, true/false/null become their literal kinds, anything
// else stays IDENTIFIER.
func lookupIdent(ident string) Kind {
	switch ident {
	case "true", "false":
		return BOOL
	case "null":
		return NULL
	}
	if Keywords[ident] {
		return KEYWORD
	}
	return IDENTIFIER
}
