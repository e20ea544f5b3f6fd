/*
File    : glint/lexer/lexer.go
*/

package lexer

import (
	"strings"

	"github.com/akashmaji946/glint/errs"
	"github.com/akashmaji946/glint/position"
)

// opEntry is one row of the two-level operator table: a first character
// maps to a base kind plus a map of follow-characters to extended kinds.
type opEntry struct {
	base    Kind
	follows map[byte]Kind
}

var opTable = map[byte]opEntry{
	'+': {PLUS, map[byte]Kind{'=': PLUS_ASSIGN}},
	'-': {MINUS, map[byte]Kind{'>': ARROW, '=': MINUS_ASSIGN}},
	'*': {MUL, map[byte]Kind{'*': POW, '@': XAT, '=': MUL_ASSIGN}},
	'/': {DIV, map[byte]Kind{'/': FLOOR, '=': DIV_ASSIGN}},
	'%': {MOD, map[byte]Kind{'=': MOD_ASSIGN}},
	'&': {BITAND, map[byte]Kind{}},
	'|': {BITOR, map[byte]Kind{}},
	'^': {BITXOR, map[byte]Kind{}},
	'~': {INVERT, map[byte]Kind{}},
	'<': {LT, map[byte]Kind{'=': LTE, '<': LSHIFT, '>': NE}},
	'>': {GT, map[byte]Kind{'=': GTE, '>': RSHIFT}},
	'!': {NOT, map[byte]Kind{'=': NE}},
	'=': {EQ, map[byte]Kind{'=': EE}},
	':': {COLON, map[byte]Kind{':': DOUBLE}},
	'.': {POINT_TOK, map[byte]Kind{}},
	'@': {AT, map[byte]Kind{}},
	'?': {QUESTION, map[byte]Kind{}},
	',': {COMMA, map[byte]Kind{}},
	'(': {LPAREN, map[byte]Kind{}},
	')': {RPAREN, map[byte]Kind{}},
	'[': {LBRACKET, map[byte]Kind{}},
	']': {RBRACKET, map[byte]Kind{}},
	'{': {LBRACE, map[byte]Kind{}},
	'}': {RBRACE, map[byte]Kind{}},
	';': {NEWLINE, map[byte]Kind{}},
}

func isOpenBracket(k Kind) bool  { return k == LPAREN || k == LBRACKET || k == LBRACE }
func isCloseBracket(k Kind) bool { return k == RPAREN || k == RBRACKET || k == RBRACE }

func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isLetter(c byte) bool { return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isAlnum(c byte) bool  { return isDigit(c) || isLetter(c) }

// Lexer scans source text left to right, producing Tokens on demand. It
// tracks paren/bracket/brace depth so NEWLINE is only emitted outside
// brackets, letting expressions span lines naturally inside them.
type Lexer struct {
	src     string
	pos     position.Position
	current byte
	depth   int             // bracket nesting depth
	defines map[string]string // optional textual macro table, consulted before keyword classification
}

// New creates a Lexer over src. file names the source for diagnostics.
func New(file, src string) *Lexer {
	l := &Lexer{src: src, pos: position.New(file, src)}
	if len(src) > 0 {
		l.current = src[0]
	}
	return l
}

// SetDefines installs a textual macro table: an identifier found in this
// map is re-scanned as its replacement text before keyword classification.
func (l *Lexer) SetDefines(defines map[string]string) { l.defines = defines }

func (l *Lexer) advance() {
	l.pos.Advance(l.current)
	if l.pos.Index < len(l.src) {
		l.current = l.src[l.pos.Index]
	} else {
		l.current = 0
	}
}

func (l *Lexer) peek() byte {
	if l.pos.Index+1 < len(l.src) {
		return l.src[l.pos.Index+1]
	}
	return 0
}

func (l *Lexer) atEnd() bool { return l.pos.Index >= len(l.src) }

// Tokenize consumes the entire source and returns the token stream,
// ending with a single EOF token. Any lexical diagnostic short-circuits
// the scan and is returned instead.
func (l *Lexer) Tokenize() ([]Token, *errs.Error) {
	var tokens []Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == EOF {
			return tokens, nil
		}
	}
}

func (l *Lexer) span(start position.Position) position.Span {
	return position.NewSpan(start, l.pos.Copy())
}

func (l *Lexer) next() (Token, *errs.Error) {
	l.skipTrivia()

	start := l.pos.Copy()
	if l.atEnd() {
		return Token{Kind: EOF, Span: l.span(start)}, nil
	}
	c := l.current

	if c == '\n' {
		l.advance()
		if l.depth > 0 {
			return l.next()
		}
		return Token{Kind: NEWLINE, Value: "\n", Span: l.span(start)}, nil
	}

	if isDigit(c) || c == '.' {
		return l.readNumber(start)
	}
	if isLetter(c) {
		return l.readIdentifier(start)
	}
	if c == '"' || c == '\'' {
		return l.readQuotedString(start, c)
	}
	if c == '`' {
		return l.readRawString(start)
	}

	entry, ok := opTable[c]
	if !ok {
		l.advance()
		return Token{}, errs.Newf(errs.IllegalCharacterError, l.span(start), "illegal character '%c'", c)
	}
	l.advance()
	kind := entry.base

	if ext, ok := entry.follows[l.current]; ok {
		l.advance()
		kind = ext
	}
	// '**=' and '//=' need a second follow-char lookahead beyond the table.
	if kind == POW && l.current == '=' {
		l.advance()
		return Token{Kind: POW_ASSIGN, Value: "**=", Span: l.span(start)}, nil
	}
	if kind == FLOOR && l.current == '=' {
		l.advance()
		return Token{Kind: FLOOR_ASSIGN, Value: "//=", Span: l.span(start)}, nil
	}

	if kind == NEWLINE {
		// ';' as statement separator; same in-bracket suppression as '\n'.
		if l.depth > 0 {
			return l.next()
		}
		return Token{Kind: NEWLINE, Value: ";", Span: l.span(start)}, nil
	}
	if isOpenBracket(kind) {
		l.depth++
	} else if isCloseBracket(kind) && l.depth > 0 {
		l.depth--
	}
	return Token{Kind: kind, Value: l.src[start.Index:l.pos.Index], Span: l.span(start)}, nil
}

// skipTrivia consumes whitespace, `#` line comments and backslash
// line-continuations. It deliberately does not consume '\n' itself —
// that is a significant token outside brackets.
func (l *Lexer) skipTrivia() {
	for !l.atEnd() {
		switch {
		case l.current == ' ' || l.current == '\t' || l.current == '\r':
			l.advance()
		case l.current == '#':
			for !l.atEnd() && l.current != '\n' {
				l.advance()
			}
		case l.current == '\\' && l.peek() == '\n':
			l.advance()
			l.advance()
		default:
			return
		}
	}
}

func (l *Lexer) readNumber(start position.Position) (Token, *errs.Error) {
	var b strings.Builder
	dots := 0
	for !l.atEnd() && (isDigit(l.current) || l.current == '.' || l.current == '_') {
		if l.current == '_' {
			l.advance()
			continue
		}
		if l.current == '.' {
			dots++
			if dots > 1 {
				break
			}
		}
		b.WriteByte(l.current)
		l.advance()
	}
	lit := b.String()
	span := l.span(start)
	if lit == "." {
		return Token{Kind: POINT_TOK, Value: lit, Span: span}, nil
	}
	if dots == 1 {
		return Token{Kind: FLOAT, Value: lit, Span: span}, nil
	}
	return Token{Kind: INT, Value: lit, Span: span}, nil
}

func (l *Lexer) readIdentifier(start position.Position) (Token, *errs.Error) {
	var b strings.Builder
	for !l.atEnd() && isAlnum(l.current) {
		b.WriteByte(l.current)
		l.advance()
	}
	lit := b.String()
	span := l.span(start)
	if l.defines != nil {
		if replacement, ok := l.defines[lit]; ok {
			sub := New(l.pos.File, replacement)
			tok, err := sub.next()
			if err != nil {
				return Token{}, err
			}
			tok.Span = span
			return tok, nil
		}
	}
	return Token{Kind: lookupIdent(lit), Value: lit, Span: span}, nil
}

var escapeChars = map[byte]byte{
	'n': '\n', 'r': '\r', 'a': '\a', 'b': '\b', 't': '\t', 'f': '\f', 'v': '\v', '0': 0,
}

func (l *Lexer) readQuotedString(start position.Position, quote byte) (Token, *errs.Error) {
	l.advance() // opening quote
	var b strings.Builder
	for {
		if l.atEnd() || l.current == '\n' {
			return Token{}, errs.Newf(errs.InvalidSyntaxError, l.span(start), "unterminated string literal starting with %c", quote)
		}
		if l.current == quote {
			l.advance()
			break
		}
		if l.current == '\\' {
			l.advance()
			if l.atEnd() {
				return Token{}, errs.Newf(errs.InvalidSyntaxError, l.span(start), "unterminated string literal starting with %c", quote)
			}
			if repl, ok := escapeChars[l.current]; ok {
				b.WriteByte(repl)
			} else {
				b.WriteByte(l.current)
			}
			l.advance()
			continue
		}
		b.WriteByte(l.current)
		l.advance()
	}
	return Token{Kind: STRING, Value: b.String(), Span: l.span(start)}, nil
}

func (l *Lexer) readRawString(start position.Position) (Token, *errs.Error) {
	l.advance() // opening backtick
	var b strings.Builder
	for {
		if l.atEnd() || l.current == '\n' {
			return Token{}, errs.Newf(errs.InvalidSyntaxError, l.span(start), "unterminated raw string literal")
		}
		if l.current == '`' {
			l.advance()
			break
		}
		b.WriteByte(l.current)
		l.advance()
	}
	return Token{Kind: STRING, Value: b.String(), Span: l.span(start)}, nil
}
