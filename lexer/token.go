// Package lexer splits wenyan source text into tokens.
//
// Keywords become tokens whose Type is the keyword itself. Everything
// else falls into four classes: 言 for string literals, 名 for quoted
// names, 數 for numerals (already converted to decimal) and 數據 for
// uninterpreted runs. Punctuation 。 and 、 plus ASCII whitespace
// separate tokens and are dropped.
package lexer

// Token types for non-keyword lexemes.
const (
	TypeString = "言"
	TypeName   = "名"
	TypeNumber = "數"
	TypeData   = "數據"
)

// Token is a single lexeme. Start and End are byte offsets into the
// source, with End exclusive, so src[Start:End] is the original text.
type Token struct {
	Type  string `json:"type"`
	Value string `json:"value,omitempty"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Is reports whether t is the given keyword token.
func (t Token) Is(keyword string) bool { return t.Type == keyword }
