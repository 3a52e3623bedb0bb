package hanzi

import "math/big"

// Int is an arbitrary-precision signed integer parsed from a
// digit-sequence numeral. The zero value is ready to use and equals 0.
// Int values are immutable; arithmetic methods return new values.
type Int struct {
	x *big.Int
}

func (a Int) big() *big.Int {
	if a.x == nil {
		return new(big.Int)
	}
	return a.x
}

// ParseInt reads a digit-sequence numeral. Digits run from the units
// place upward, so 一二 is 21. A leading 負 negates; a second 負
// anywhere fails with ParseRedundantSign. 十 carries no digit in this
// form and is skipped. 零 alone (or as 負零) is zero; after other
// digits it is ignored, and in any other position it fails with
// ParseInvalidDigit. Input that yields no digits at all fails with
// ParseEmpty.
func ParseInt(s string) (Int, error) {
	runes := []rune(s)
	if len(runes) == 0 {
		return Int{}, &ParseError{Kind: ParseEmpty}
	}
	var (
		negative bool
		buf      []byte
	)
	for i, r := range runes {
		switch r {
		case '負':
			if negative {
				return Int{}, &ParseError{Kind: ParseRedundantSign}
			}
			negative = true
		case '十':
		case '零':
			if len(buf) == 0 {
				if i != len(runes)-1 {
					return Int{}, &ParseError{Kind: ParseInvalidDigit}
				}
				buf = append(buf, '0')
			}
		default:
			d, ok := parseDigits[r]
			if !ok {
				return Int{}, &ParseError{Kind: ParseInvalidDigit}
			}
			buf = append(buf, byte('0'+d))
		}
	}
	if len(buf) == 0 {
		return Int{}, &ParseError{Kind: ParseEmpty}
	}
	// Digits arrived least significant first; flip into reading order.
	for l, r := 0, len(buf)-1; l < r; l, r = l+1, r-1 {
		buf[l], buf[r] = buf[r], buf[l]
	}
	x, _ := new(big.Int).SetString(string(buf), 10)
	if negative {
		x.Neg(x)
	}
	return Int{x: x}, nil
}

// FromInt64 returns n as an Int.
func FromInt64(n int64) Int { return Int{x: big.NewInt(n)} }

// FromUint64 returns n as an Int.
func FromUint64(n uint64) Int { return Int{x: new(big.Int).SetUint64(n)} }

// FromDecimal reads a plain base-10 literal such as "-120". It accepts
// exactly what big.Int accepts for base 10.
func FromDecimal(s string) (Int, bool) {
	x, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Int{}, false
	}
	return Int{x: x}, true
}

// String renders a in decimal.
func (a Int) String() string { return a.big().String() }

// Sign returns -1 for negative, 0 for zero and 1 for positive.
func (a Int) Sign() int { return a.big().Sign() }

// Cmp compares a and b, returning -1, 0 or 1.
func (a Int) Cmp(b Int) int { return a.big().Cmp(b.big()) }

// Equal reports whether a and b hold the same value.
func (a Int) Equal(b Int) bool { return a.Cmp(b) == 0 }

// IsZero reports whether a is 0.
func (a Int) IsZero() bool { return a.Sign() == 0 }

func (a Int) Add(b Int) Int { return Int{x: new(big.Int).Add(a.big(), b.big())} }

func (a Int) Sub(b Int) Int { return Int{x: new(big.Int).Sub(a.big(), b.big())} }

func (a Int) Mul(b Int) Int { return Int{x: new(big.Int).Mul(a.big(), b.big())} }

// Quo returns a/b truncated toward zero. b must be nonzero.
func (a Int) Quo(b Int) Int { return Int{x: new(big.Int).Quo(a.big(), b.big())} }

// Rem returns the remainder of a/b, carrying the sign of a. b must be
// nonzero.
func (a Int) Rem(b Int) Int { return Int{x: new(big.Int).Rem(a.big(), b.big())} }

// Neg returns -a.
func (a Int) Neg() Int { return Int{x: new(big.Int).Neg(a.big())} }

// Int64 returns the value as an int64 when it fits.
func (a Int) Int64() (int64, bool) {
	if !a.big().IsInt64() {
		return 0, false
	}
	return a.big().Int64(), true
}

// Float64 returns the nearest float64. Values beyond the float64 range
// come back as infinities.
func (a Int) Float64() float64 {
	f, _ := new(big.Float).SetInt(a.big()).Float64()
	return f
}
