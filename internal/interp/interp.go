// Package interp parses and evaluates wenyan programs over the token
// stream produced by the lexer package.
//
// Evaluation follows the language's staging discipline: declarations,
// 夫 references, arithmetic and calls push values onto a stage; 名之曰
// drains it into bindings, 書之 prints and clears it, and 其 reads its
// newest entry. An Interp keeps its stage and global scope between
// calls, which is what an interactive session needs.
package interp

// Error is a parse or runtime failure. Off is the byte offset of the
// offending construct in the source, resolvable to a line and column
// with lexer.LineCol.
type Error struct {
	Msg string
	Off int
}

func (e *Error) Error() string { return e.Msg }
