package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lexemes(t *testing.T, src string) []string {
	t.Helper()
	toks, err := Lex(src, "")
	require.NoError(t, err)
	out := make([]string, len(toks))
	for i, tok := range toks {
		out[i] = src[tok.Start:tok.End]
	}
	return out
}

func TestLexPositionsSliceToLexeme(t *testing.T) {
	src := "吾有一數。曰二。名之曰「甲」。"
	assert.Equal(t, []string{"吾有", "一", "數", "曰", "二", "名之曰", "「甲」"}, lexemes(t, src))
}

func TestLexLiteralPositionsIncludeQuotes(t *testing.T) {
	assert.Equal(t, []string{"曰", "「「甲乙」」"}, lexemes(t, "曰「「甲乙」」。"))
}

func TestLexLongestKeywordWins(t *testing.T) {
	assert.Equal(t, []string{"乃止是遍"}, lexemes(t, "乃止是遍"))
	assert.Equal(t, []string{"若其不然者"}, lexemes(t, "若其不然者"))
	assert.Equal(t, []string{"吾有", "一", "術"}, lexemes(t, "吾有一術"))
}

func TestLexConvertsNumerals(t *testing.T) {
	toks, err := Lex("吾有一數。曰二十三。曰負三分。曰一又二分三釐。", "")
	require.NoError(t, err)
	var nums []string
	for _, tok := range toks {
		if tok.Type == TypeNumber && tok.Value != "" {
			nums = append(nums, tok.Value)
		}
	}
	assert.Equal(t, []string{"1", "23", "-0.3", "1.23"}, nums)
}

func TestLexNumeralsStayOutOfNamesAndLiterals(t *testing.T) {
	toks, err := Lex("曰「甲一」曰「「二三」」", "")
	require.NoError(t, err)
	var name, lit string
	for _, tok := range toks {
		assert.False(t, tok.Type == TypeNumber && tok.Value != "", "unexpected number token %+v", tok)
		switch tok.Type {
		case TypeName:
			name = tok.Value
		case TypeString:
			lit = tok.Value
		}
	}
	assert.Equal(t, "甲一", name)
	assert.Equal(t, "二三", lit)
}

func TestLexNestedLiteral(t *testing.T) {
	toks, err := Lex("曰「「甲『乙』丙」」", "")
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, "甲『乙』丙", toks[1].Value)
}

func TestLexWideQuoteLiteral(t *testing.T) {
	src := "曰『甲乙』"
	toks, err := Lex(src, "")
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, Token{Type: TypeString, Value: "甲乙", Start: len("曰"), End: len(src)}, toks[1])
}

func TestLexEscapesLiteralValue(t *testing.T) {
	toks, err := Lex("曰「「甲\n乙\"丙」」", "")
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, `甲\n乙\"丙`, toks[1].Value)
}

func TestLexDataRuns(t *testing.T) {
	toks, err := Lex("ABC。DEF一", "")
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, Token{Type: TypeData, Value: "ABC。DEF", Start: 0, End: len("ABC。DEF")}, toks[0])
	assert.Equal(t, "1", toks[1].Value)

	toks, err = Lex("書之ABC", "")
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, TypeData, toks[1].Type)
	assert.Equal(t, "ABC", toks[1].Value)
}

func TestLexUnterminatedNameError(t *testing.T) {
	src := "吾有一數名之曰「甲"
	_, err := Lex(src, "")
	var serr *SyntaxError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "名未尽", serr.Msg)
	assert.Equal(t, "<言>", serr.File)
	assert.Equal(t, 1, serr.Line)
	assert.Equal(t, 8, serr.Col)
	assert.Equal(t, src, serr.LineText)
}

func TestLexBadNumeralError(t *testing.T) {
	src := "負負。"
	_, err := Lex(src, "example.wy")
	var serr *SyntaxError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "非法數", serr.Msg)
	assert.Equal(t, "example.wy", serr.File)
	assert.Equal(t, 1, serr.Line)
	assert.Equal(t, 1, serr.Col)
	assert.Equal(t, src, serr.LineText)
	assert.Equal(t, "example.wy:1:1: 非法數", err.Error())
}

func TestLexUnterminatedLiteralError(t *testing.T) {
	_, err := Lex("曰「「甲乙", "")
	var serr *SyntaxError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "言未尽", serr.Msg)
	assert.Equal(t, 2, serr.Col)
}

func TestLineCol(t *testing.T) {
	src := "吾有一數。\n名之曰「甲」。\n書之。"
	line, col, text := LineCol(src, strings.Index(src, "書"))
	assert.Equal(t, 3, line)
	assert.Equal(t, 1, col)
	assert.Equal(t, "書之。", text)

	line, col, text = LineCol(src, strings.Index(src, "「"))
	assert.Equal(t, 2, line)
	assert.Equal(t, 4, col)
	assert.Equal(t, "名之曰「甲」。", text)
}
