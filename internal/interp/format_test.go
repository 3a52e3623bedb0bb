package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tcztzy/wenyan/hanzi"
)

func intList(ns ...int64) *List {
	l := &List{}
	for _, n := range ns {
		l.Items = append(l.Items, hanzi.FromInt64(n))
	}
	return l
}

func TestFormatScalars(t *testing.T) {
	tests := []struct {
		in   Value
		want string
	}{
		{nil, "null"},
		{true, "true"},
		{false, "false"},
		{hanzi.FromInt64(-12), "-12"},
		{float64(3), "3"},
		{1.23, "1.23"},
		{"甲", "甲"},
		{&Function{Name: "f"}, "[Function: f]"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Format(tt.in))
	}
}

func TestFormatShortListInline(t *testing.T) {
	assert.Equal(t, "[]", Format(&List{}))
	assert.Equal(t, "[ 1, null, 3 ]", Format(&List{Items: []Value{
		hanzi.FromInt64(1), nil, hanzi.FromInt64(3),
	}}))
	assert.Equal(t, "[ 'a', 2 ]", Format(&List{Items: []Value{"a", hanzi.FromInt64(2)}}))
}

func TestFormatLongListAlignsRowsOfFive(t *testing.T) {
	got := Format(intList(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11))
	want := "[\n" +
		"   1,  2,  3,  4,  5,\n" +
		"   6,  7,  8,  9, 10,\n" +
		"  11\n" +
		"]"
	assert.Equal(t, want, got)
}

func TestFormatListCapsAtHundredItems(t *testing.T) {
	var ns []int64
	for i := int64(1); i <= 104; i++ {
		ns = append(ns, i)
	}
	got := Format(intList(ns...))
	assert.Contains(t, got, "... 4 more items")
	assert.NotContains(t, got, "101")
}
