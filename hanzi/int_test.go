package hanzi

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIntDigitVocabulary(t *testing.T) {
	for i, r := range []rune("零一二三四五六七八九") {
		got, err := ParseInt(string(r))
		require.NoError(t, err, "digit %c", r)
		assert.True(t, got.Equal(FromInt64(int64(i))), "digit %c", r)
	}
}

func TestParseIntOrdersDigitsFromUnitsPlace(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"一二", "21"},
		{"一二三", "321"},
		{"九八七六五四三二一", "123456789"},
		{"一十", "1"},
		{"十一", "1"},
		{"一零", "1"},
		{"二零", "2"},
		{"零", "0"},
		{"負零", "0"},
		{"負一", "-1"},
		{"負一二", "-21"},
	}
	for _, tt := range tests {
		got, err := ParseInt(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got.String(), "input %q", tt.in)
	}
}

func TestParseIntErrors(t *testing.T) {
	tests := []struct {
		in   string
		kind ParseErrKind
	}{
		{"", ParseEmpty},
		{"十", ParseEmpty},
		{"負", ParseEmpty},
		{"負十", ParseEmpty},
		{"十十", ParseEmpty},
		{"零一", ParseInvalidDigit},
		{"零十", ParseInvalidDigit},
		{"零零", ParseInvalidDigit},
		{"〇", ParseInvalidDigit},
		{"百", ParseInvalidDigit},
		{"一a", ParseInvalidDigit},
		{"123", ParseInvalidDigit},
		{"負負一", ParseRedundantSign},
		{"一負負", ParseRedundantSign},
	}
	for _, tt := range tests {
		_, err := ParseInt(tt.in)
		require.Error(t, err, "input %q", tt.in)
		var perr *ParseError
		require.True(t, errors.As(err, &perr), "input %q", tt.in)
		assert.Equal(t, tt.kind, perr.Kind, "input %q", tt.in)
	}
}

func TestParseErrKindMessages(t *testing.T) {
	assert.Equal(t, "cannot parse integer from empty string", ParseEmpty.String())
	assert.Equal(t, "invalid digit found in string", ParseInvalidDigit.String())
	assert.Equal(t, "redundant sign found in string", ParseRedundantSign.String())
}

func TestParseIntKeepsFullPrecision(t *testing.T) {
	got, err := ParseInt(strings.Repeat("九", 50))
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("9", 50), got.String())
	_, ok := got.Int64()
	assert.False(t, ok)
}

func TestIntConstructors(t *testing.T) {
	a, err := ParseInt("一二")
	require.NoError(t, err)
	assert.True(t, a.Equal(FromInt64(21)))
	assert.True(t, FromUint64(21).Equal(a))

	d, ok := FromDecimal("-120")
	require.True(t, ok)
	assert.Equal(t, "-120", d.String())
	_, ok = FromDecimal("12x")
	assert.False(t, ok)
}

func TestIntZeroValue(t *testing.T) {
	var z Int
	assert.Equal(t, "0", z.String())
	assert.True(t, z.IsZero())
	assert.Equal(t, 0, z.Sign())
	assert.True(t, z.Add(FromInt64(3)).Equal(FromInt64(3)))
}

func TestIntArithmetic(t *testing.T) {
	a, b := FromInt64(-7), FromInt64(2)
	assert.Equal(t, "-5", a.Add(b).String())
	assert.Equal(t, "-9", a.Sub(b).String())
	assert.Equal(t, "-14", a.Mul(b).String())
	assert.Equal(t, "-3", a.Quo(b).String())
	assert.Equal(t, "-1", a.Rem(b).String())
	assert.Equal(t, "7", a.Neg().String())
	assert.Equal(t, -1, a.Cmp(b))
	assert.Equal(t, 1, b.Cmp(a))
	assert.True(t, a.Equal(FromInt64(-7)))
	assert.Equal(t, 21.0, FromInt64(21).Float64())

	n, ok := FromInt64(-7).Int64()
	require.True(t, ok)
	assert.Equal(t, int64(-7), n)
}
