package hanzi

import "github.com/pkg/errors"

// ParseErrKind enumerates the ways ParseInt can fail.
type ParseErrKind uint8

const (
	// ParseEmpty marks input with no digits, either an empty string or
	// one holding only sign and tens runes.
	ParseEmpty ParseErrKind = iota
	// ParseInvalidDigit marks a rune outside the digit vocabulary or a
	// 零 used anywhere but as the whole numeral.
	ParseInvalidDigit
	// ParseRedundantSign marks a second 負.
	ParseRedundantSign
)

func (k ParseErrKind) String() string {
	switch k {
	case ParseEmpty:
		return "cannot parse integer from empty string"
	case ParseInvalidDigit:
		return "invalid digit found in string"
	case ParseRedundantSign:
		return "redundant sign found in string"
	default:
		return "unknown parse error"
	}
}

// ParseError is the error type returned by ParseInt.
type ParseError struct {
	Kind ParseErrKind
}

func (e *ParseError) Error() string { return e.Kind.String() }

// Number failure reasons. The messages keep the classical wording so
// diagnostics read uniformly with the source text they describe.
var (
	ErrEmptyNumeral   = errors.New("空數字")
	ErrBadNumeralRune = errors.New("非數值字符")
	ErrDoubleSign     = errors.New("多重負號")
	ErrMisplacedSign  = errors.New("負號位置錯誤")
	ErrDoubleDot      = errors.New("多重小數點")
	ErrDotWithJoin    = errors.New("混用小數點與又")
	ErrBadDigit       = errors.New("非數字")
	ErrMisplacedDot   = errors.New("小數點位置錯誤")
	ErrDoubleJoin     = errors.New("多重又")
	ErrEmptyJoinTail  = errors.New("又後為空")
	ErrBadWhole       = errors.New("非法整數")
	ErrEmptyFraction  = errors.New("空小數")
	ErrFractionOrder  = errors.New("小數位錯序")
	ErrFractionDepth  = errors.New("小數位過長")
	ErrBadFraction    = errors.New("非法小數")
)
