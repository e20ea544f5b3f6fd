/*
File    : glint/lexer/lexer_test.go
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func kinds(toks []Token) []Kind {
	out := make([]Kind, 0, len(toks))
	for _, t := range toks {
		out = append(out, t.Kind)
	}
	return out
}

func TestLexer_Operators(t *testing.T) {
	toks, err := New("<test>", "1 + 2 * 3 // 4 ** 5").Tokenize()
	assert.Nil(t, err)
	assert.Equal(t, []Kind{INT, PLUS, INT, MUL, INT, FLOOR, INT, POW, INT, EOF}, kinds(toks))
}

func TestLexer_CompoundAssign(t *testing.T) {
	toks, err := New("<test>", "x += 1").Tokenize()
	assert.Nil(t, err)
	assert.Equal(t, []Kind{IDENTIFIER, PLUS_ASSIGN, INT, EOF}, kinds(toks))
}

func TestLexer_BracketsSuppressNewlines(t *testing.T) {
	toks, err := New("<test>", "[1,\n2,\n3]\n").Tokenize()
	assert.Nil(t, err)
	// only the trailing newline after ']' should survive
	assert.Equal(t, []Kind{LBRACKET, INT, COMMA, INT, COMMA, INT, RBRACKET, NEWLINE, EOF}, kinds(toks))
}

func TestLexer_Strings(t *testing.T) {
	toks, err := New("<test>", `"a\nb" 'c' ` + "`raw\\n`").Tokenize()
	assert.Nil(t, err)
	assert.Equal(t, []Kind{STRING, STRING, STRING, EOF}, kinds(toks))
	assert.Equal(t, "a\nb", toks[0].Value)
	assert.Equal(t, "raw\\n", toks[2].Value)
}

func TestLexer_Comment(t *testing.T) {
	toks, err := New("<test>", "1 # comment\n2").Tokenize()
	assert.Nil(t, err)
	assert.Equal(t, []Kind{INT, NEWLINE, INT, EOF}, kinds(toks))
}

func TestLexer_UnterminatedString(t *testing.T) {
	_, err := New("<test>", `"abc`).Tokenize()
	assert.NotNil(t, err)
	assert.Equal(t, "InvalidSyntaxError", string(err.Kind))
}

func TestLexer_IllegalCharacter(t *testing.T) {
	_, err := New("<test>", "1 \\ 2").Tokenize()
	assert.NotNil(t, err)
	assert.Equal(t, "IllegalCharacterError", string(err.Kind))
}

func TestLexer_Keywords(t *testing.T) {
	toks, err := New("<test>", "if true then return null end").Tokenize()
	assert.Nil(t, err)
	assert.Equal(t, []Kind{KEYWORD, BOOL, KEYWORD, KEYWORD, NULL, KEYWORD, EOF}, kinds(toks))
}

func TestLexer_Defines(t *testing.T) {
	l := New("<test>", "MAXN")
	l.SetDefines(map[string]string{"MAXN": "100"})
	toks, err := l.Tokenize()
	assert.Nil(t, err)
	assert.Equal(t, INT, toks[0].Kind)
	assert.Equal(t, "100", toks[0].Value)
}
