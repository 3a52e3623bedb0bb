package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/tcztzy/wenyan/hanzi"
)

const defaultFilename = "<言>"

var skipRunes = map[rune]struct{}{
	'。': {}, '、': {}, ' ': {}, '\t': {}, '\n': {}, '\r': {},
}

// literalEscaper prepares string literal values: embedded quotes and
// newlines come out backslash-escaped.
var literalEscaper = strings.NewReplacer(`"`, `\"`, "\n", `\n`)

// Lex tokenizes src. The filename only labels errors and may be empty.
// Failures are *SyntaxError values carrying the position.
func Lex(src, filename string) ([]Token, error) {
	if filename == "" {
		filename = defaultFilename
	}
	s := &scanner{src: src, filename: filename, dataFrom: -1}
	if err := s.run(); err != nil {
		return nil, err
	}
	return s.tokens, nil
}

type scanner struct {
	src      string
	filename string
	tokens   []Token
	dataFrom int
}

func (s *scanner) run() error {
	src := s.src
	i := 0
	for i < len(src) {
		if strings.HasPrefix(src[i:], "「「") || strings.HasPrefix(src[i:], "『") {
			s.flushData(i)
			tok, end, err := s.readString(i)
			if err != nil {
				return err
			}
			s.tokens = append(s.tokens, tok)
			i = end
			continue
		}
		r, size := utf8.DecodeRuneInString(src[i:])
		if _, ok := skipRunes[r]; ok {
			// Separators inside an open data run stay part of it.
			i += size
			continue
		}
		if r == '「' {
			s.flushData(i)
			tok, end, err := s.readName(i)
			if err != nil {
				return err
			}
			s.tokens = append(s.tokens, tok)
			i = end
			continue
		}
		if kw, ok := s.matchKeyword(i); ok {
			s.flushData(i)
			s.tokens = append(s.tokens, Token{Type: kw, Start: i, End: i + len(kw)})
			i += len(kw)
			continue
		}
		if hanzi.IsNumeralChar(r) {
			s.flushData(i)
			start := i
			i += size
			for i < len(src) {
				r2, sz := utf8.DecodeRuneInString(src[i:])
				if !hanzi.IsNumeralChar(r2) {
					break
				}
				i += sz
			}
			dec, err := hanzi.Number(src[start:i])
			if err != nil {
				return s.syntaxError("非法數", start)
			}
			s.tokens = append(s.tokens, Token{Type: TypeNumber, Value: dec, Start: start, End: i})
			continue
		}
		if s.dataFrom < 0 {
			s.dataFrom = i
		}
		i += size
	}
	s.flushData(len(src))
	return nil
}

func (s *scanner) flushData(end int) {
	if s.dataFrom < 0 {
		return
	}
	s.tokens = append(s.tokens, Token{
		Type:  TypeData,
		Value: s.src[s.dataFrom:end],
		Start: s.dataFrom,
		End:   end,
	})
	s.dataFrom = -1
}

func (s *scanner) matchKeyword(i int) (string, bool) {
	r, _ := utf8.DecodeRuneInString(s.src[i:])
	for _, w := range keywordsByFirst[r] {
		if strings.HasPrefix(s.src[i:], w) {
			return w, true
		}
	}
	return "", false
}

// readString consumes a literal opened with 「「 or 『. Openers of either
// kind nest, so 「「甲『乙』丙」」 keeps the inner pair verbatim.
func (s *scanner) readString(start int) (Token, int, error) {
	src := s.src
	i := start
	if strings.HasPrefix(src[i:], "「「") {
		i += len("「「")
	} else {
		i += len("『")
	}
	var sb strings.Builder
	depth := 1
	for i < len(src) {
		switch {
		case strings.HasPrefix(src[i:], "「「"):
			depth++
			sb.WriteString("「「")
			i += len("「「")
		case strings.HasPrefix(src[i:], "『"):
			depth++
			sb.WriteString("『")
			i += len("『")
		case strings.HasPrefix(src[i:], "」」"):
			depth--
			if depth == 0 {
				i += len("」」")
				return Token{Type: TypeString, Value: literalEscaper.Replace(sb.String()), Start: start, End: i}, i, nil
			}
			sb.WriteString("」」")
			i += len("」」")
		case strings.HasPrefix(src[i:], "』"):
			depth--
			if depth == 0 {
				i += len("』")
				return Token{Type: TypeString, Value: literalEscaper.Replace(sb.String()), Start: start, End: i}, i, nil
			}
			sb.WriteString("』")
			i += len("』")
		default:
			_, size := utf8.DecodeRuneInString(src[i:])
			sb.WriteString(src[i : i+size])
			i += size
		}
	}
	return Token{}, 0, s.syntaxError("言未尽", start)
}

func (s *scanner) readName(start int) (Token, int, error) {
	src := s.src
	open := start + len("「")
	for i := open; i < len(src); {
		r, size := utf8.DecodeRuneInString(src[i:])
		if r == '」' {
			end := i + size
			return Token{Type: TypeName, Value: src[open:i], Start: start, End: end}, end, nil
		}
		i += size
	}
	return Token{}, 0, s.syntaxError("名未尽", start)
}

func (s *scanner) syntaxError(msg string, off int) error {
	line, col, text := LineCol(s.src, off)
	return &SyntaxError{Msg: msg, File: s.filename, Line: line, Col: col, LineText: text}
}
