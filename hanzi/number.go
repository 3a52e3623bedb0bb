package hanzi

import (
	"math/big"
	"strings"
)

// Number converts a positional numeral to its decimal string form.
// It understands digits with unit runes (二十一 is "21", 一萬三千 is
// "13000"), bare digit strings (一二三 is "123"), fractional units
// (三分 is "0.3"), the decimal dot (一·五 is "1.5") and the
// mixed-number join (一又二分三釐 is "1.23", 一又二 is "3"). A leading
// 負 negates. Malformed numerals fail with one of the Err sentinels in
// this package.
func Number(s string) (string, error) {
	if s == "" {
		return "", ErrEmptyNumeral
	}
	for _, r := range s {
		if !IsNumeralChar(r) {
			return "", ErrBadNumeralRune
		}
	}
	negative := strings.HasPrefix(s, "負")
	if negative {
		s = strings.TrimPrefix(s, "負")
		if strings.ContainsRune(s, '負') {
			return "", ErrDoubleSign
		}
	} else if strings.ContainsRune(s, '負') {
		return "", ErrMisplacedSign
	}
	if s == "" {
		return "", ErrEmptyNumeral
	}
	out, err := convert(s)
	if err != nil {
		return "", err
	}
	if negative {
		out = "-" + out
	}
	return out, nil
}

func convert(s string) (string, error) {
	switch {
	case strings.ContainsRune(s, '·'):
		return convertDotted(s)
	case strings.ContainsRune(s, '又'):
		return convertJoined(s)
	case hasFractionUnit(s):
		frac, err := parseFraction(s)
		if err != nil {
			return "", err
		}
		if strings.Trim(frac, "0") == "" {
			return "0", nil
		}
		return "0." + frac, nil
	default:
		whole, err := parseWhole(s)
		if err != nil {
			return "", err
		}
		return whole.String(), nil
	}
}

// convertDotted handles the explicit decimal dot. Both sides must be
// bare digit runes; the fractional digits are kept verbatim, trailing
// zeros included.
func convertDotted(s string) (string, error) {
	if strings.Count(s, "·") != 1 {
		return "", ErrDoubleDot
	}
	if strings.ContainsRune(s, '又') {
		return "", ErrDotWithJoin
	}
	for _, r := range s {
		if r == '·' {
			continue
		}
		if _, ok := digits[r]; !ok {
			return "", ErrBadDigit
		}
	}
	if strings.HasPrefix(s, "·") || strings.HasSuffix(s, "·") {
		return "", ErrMisplacedDot
	}
	parts := strings.SplitN(s, "·", 2)
	whole := strings.TrimLeft(digitString(parts[0]), "0")
	if whole == "" {
		whole = "0"
	}
	return whole + "." + digitString(parts[1]), nil
}

// convertJoined handles 又, joining a whole part with either fractional
// places (一又二分 is "1.2") or a second whole value that is added on
// (一又二 is "3").
func convertJoined(s string) (string, error) {
	if strings.Count(s, "又") != 1 {
		return "", ErrDoubleJoin
	}
	parts := strings.SplitN(s, "又", 2)
	head, tail := parts[0], parts[1]
	if tail == "" {
		return "", ErrEmptyJoinTail
	}
	whole, err := parseWhole(head)
	if err != nil {
		return "", err
	}
	if hasFractionUnit(tail) {
		frac, err := parseFraction(tail)
		if err != nil {
			return "", err
		}
		if strings.Trim(frac, "0") == "" {
			return whole.String(), nil
		}
		return whole.String() + "." + frac, nil
	}
	rest, err := parseWhole(tail)
	if err != nil {
		return "", err
	}
	return new(big.Int).Add(whole, rest).String(), nil
}

// parseWhole reads an integer numeral. A bare digit string is read
// positionally; otherwise digits accumulate through small units
// (十 百 千) into a section that each big unit (萬 and up) multiplies
// out, so 一億二萬三 is 100020003.
func parseWhole(s string) (*big.Int, error) {
	if s == "" {
		return new(big.Int), nil
	}
	allDigits := true
	for _, r := range s {
		if _, ok := fractionPlaces[r]; ok {
			return nil, ErrBadWhole
		}
		if r == '·' || r == '又' {
			return nil, ErrBadWhole
		}
		if _, ok := digits[r]; !ok {
			allDigits = false
		}
	}
	if allDigits {
		x, _ := new(big.Int).SetString(digitString(s), 10)
		return x, nil
	}
	var (
		total   = new(big.Int)
		section = new(big.Int)
		current int64
		pending bool
	)
	for _, r := range s {
		if d, ok := digits[r]; ok {
			current = int64(d)
			pending = true
			continue
		}
		if u, ok := smallUnits[r]; ok {
			if !pending {
				current = 1
			}
			section.Add(section, big.NewInt(current*u))
			current, pending = 0, false
			continue
		}
		if u, ok := bigUnits[r]; ok {
			if !pending && section.Sign() == 0 {
				section.SetInt64(1)
			} else {
				section.Add(section, big.NewInt(current))
			}
			total.Add(total, new(big.Int).Mul(section, u))
			section.SetInt64(0)
			current, pending = 0, false
			continue
		}
		return nil, ErrBadWhole
	}
	total.Add(total, section)
	if pending {
		total.Add(total, big.NewInt(current))
	}
	return total, nil
}

// parseFraction reads fractional places into a digit string. Units must
// come in ascending place order; unit gaps pad with zeros and a unit
// without a preceding digit counts as 1. Bare digits continue from the
// last place and may not pass place twelve.
func parseFraction(s string) (string, error) {
	runes := []rune(s)
	if len(runes) == 0 {
		return "", ErrEmptyFraction
	}
	var (
		sb   strings.Builder
		next = 1
	)
	for i := 0; i < len(runes); {
		r := runes[i]
		if d, ok := digits[r]; ok {
			if i+1 < len(runes) {
				if place, ok := fractionPlaces[runes[i+1]]; ok {
					if place < next {
						return "", ErrFractionOrder
					}
					for next < place {
						sb.WriteByte('0')
						next++
					}
					sb.WriteByte(byte('0' + d))
					next = place + 1
					i += 2
					continue
				}
			}
			if next > maxFractionPlaces {
				return "", ErrFractionDepth
			}
			sb.WriteByte(byte('0' + d))
			next++
			i++
			continue
		}
		if place, ok := fractionPlaces[r]; ok {
			if place < next {
				return "", ErrFractionOrder
			}
			for next < place {
				sb.WriteByte('0')
				next++
			}
			sb.WriteByte('1')
			next = place + 1
			i++
			continue
		}
		return "", ErrBadFraction
	}
	return sb.String(), nil
}

func hasFractionUnit(s string) bool {
	for _, r := range s {
		if _, ok := fractionPlaces[r]; ok {
			return true
		}
	}
	return false
}

func digitString(s string) string {
	var sb strings.Builder
	for _, r := range s {
		sb.WriteByte(byte('0' + digits[r]))
	}
	return sb.String()
}
