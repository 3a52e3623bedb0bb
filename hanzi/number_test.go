package hanzi

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberIntegers(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"零", "0"},
		{"〇", "0"},
		{"一二三", "123"},
		{"十", "10"},
		{"十二", "12"},
		{"二十", "20"},
		{"二十一", "21"},
		{"一百零二", "102"},
		{"三千零五", "3005"},
		{"一萬零三", "10003"},
		{"萬", "10000"},
		{"一億二千三百四十五萬六千七百八十九", "123456789"},
		{"負二十一", "-21"},
		{"負零", "-0"},
	}
	for _, tt := range tests {
		got, err := Number(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestNumberFractions(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"一·二三", "1.23"},
		{"零·三", "0.3"},
		{"分", "0.1"},
		{"三分", "0.3"},
		{"負三分", "-0.3"},
		{"三釐", "0.03"},
		{"二分五釐", "0.25"},
		{"一又二分三釐", "1.23"},
		{"一又二", "3"},
		{"一又零分", "1"},
	}
	for _, tt := range tests {
		got, err := Number(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestNumberBigUnitsStayExact(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"一垓", "100000000000000000000"},
		{"負一垓", "-100000000000000000000"},
		{"一極", "1" + strings.Repeat("0", 48)},
	}
	for _, tt := range tests {
		got, err := Number(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestNumberInvalid(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"", ErrEmptyNumeral},
		{"負", ErrEmptyNumeral},
		{"一x", ErrBadNumeralRune},
		{"負負一", ErrDoubleSign},
		{"一負", ErrMisplacedSign},
		{"一·二·三", ErrDoubleDot},
		{"一·二又三", ErrDotWithJoin},
		{"一·二十", ErrBadDigit},
		{"·三", ErrMisplacedDot},
		{"三·", ErrMisplacedDot},
		{"一又二又三", ErrDoubleJoin},
		{"一又", ErrEmptyJoinTail},
		{"一分又二", ErrBadWhole},
		{"二釐分", ErrFractionOrder},
		{"一又二十分", ErrBadFraction},
		{"三分一二三四五六七八九零一二", ErrFractionDepth},
	}
	for _, tt := range tests {
		_, err := Number(tt.in)
		require.Error(t, err, "input %q", tt.in)
		assert.ErrorIs(t, err, tt.want, "input %q", tt.in)
	}
}
