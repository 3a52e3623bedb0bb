// Package hanzi converts classical Chinese numerals.
//
// Two numeral forms coexist in wenyan source text. Digit sequences such
// as 一二三 list decimal digits starting from the units place, so 一二三
// is 321; ParseInt reads that form into an arbitrary-precision Int.
// Positional numerals such as 二十一 or 一萬三千 combine digits with unit
// runes (十 through 極) and fractional units (分 through 漠); Number reads
// that form and yields a plain decimal string.
package hanzi

import "math/big"

// parseDigits is the digit vocabulary of ParseInt. The round zero 〇
// belongs to the positional form only and is deliberately absent.
var parseDigits = map[rune]int{
	'零': 0,
	'一': 1,
	'二': 2,
	'三': 3,
	'四': 4,
	'五': 5,
	'六': 6,
	'七': 7,
	'八': 8,
	'九': 9,
}

var smallUnits = map[rune]int64{'十': 10, '百': 100, '千': 1000}

// bigUnitOrder lists the section units in ascending order, 萬 at 10^4
// and each following rune four orders of magnitude up, ending with 極
// at 10^48.
const bigUnitOrder = "萬億兆京垓秭穰溝澗正載極"

// fractionPlaces maps fractional units to their decimal place, 分 for
// the first place after the point down to 漠 for the twelfth.
var fractionPlaces = map[rune]int{
	'分': 1,
	'釐': 2,
	'毫': 3,
	'絲': 4,
	'忽': 5,
	'微': 6,
	'纖': 7,
	'沙': 8,
	'塵': 9,
	'埃': 10,
	'渺': 11,
	'漠': 12,
}

const maxFractionPlaces = 12

var (
	digits       = map[rune]int{'〇': 0}
	bigUnits     = make(map[rune]*big.Int)
	numeralRunes = make(map[rune]struct{})
)

func init() {
	for r, v := range parseDigits {
		digits[r] = v
	}
	ten := big.NewInt(10)
	for i, r := range []rune(bigUnitOrder) {
		bigUnits[r] = new(big.Int).Exp(ten, big.NewInt(int64(4*(i+1))), nil)
	}
	for _, s := range "負·又" {
		numeralRunes[s] = struct{}{}
	}
	for r := range digits {
		numeralRunes[r] = struct{}{}
	}
	for r := range smallUnits {
		numeralRunes[r] = struct{}{}
	}
	for r := range bigUnits {
		numeralRunes[r] = struct{}{}
	}
	for r := range fractionPlaces {
		numeralRunes[r] = struct{}{}
	}
}

// IsNumeralChar reports whether r may appear inside a wenyan numeral.
// The set covers both numeral forms plus the sign 負, the decimal dot ·
// and the mixed-number join 又.
func IsNumeralChar(r rune) bool {
	_, ok := numeralRunes[r]
	return ok
}
