package lexer

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// SyntaxError reports malformed source text with its position. Line and
// Col are 1-based; Col counts runes so the number points at the visible
// character regardless of encoding width.
type SyntaxError struct {
	Msg      string
	File     string
	Line     int
	Col      int
	LineText string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Col, e.Msg)
}

// LineCol locates byte offset off inside src and returns the 1-based
// line number, the 1-based rune column and the text of that line
// without its newline.
func LineCol(src string, off int) (line, col int, lineText string) {
	if off > len(src) {
		off = len(src)
	}
	lineStart := 0
	line = 1
	if i := strings.LastIndexByte(src[:off], '\n'); i >= 0 {
		lineStart = i + 1
		line = strings.Count(src[:lineStart], "\n") + 1
	}
	lineEnd := len(src)
	if i := strings.IndexByte(src[off:], '\n'); i >= 0 {
		lineEnd = off + i
	}
	col = utf8.RuneCountInString(src[lineStart:off]) + 1
	return line, col, src[lineStart:lineEnd]
}
