package imp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTruthy(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want bool
	}{
		{"unit", Unit{}, false},
		{"zero int", Int(0), false},
		{"nonzero int", Int(-1), true},
		{"nul char", Char(0), false},
		{"char", Char('a'), true},
		{"false", Bool(false), false},
		{"true", Bool(true), true},
		{"empty str", NewStr(""), false},
		{"str", NewStr("x"), true},
		{"empty tuple", NewTuple(), false},
		{"tuple", NewTuple(Int(1)), true},
		{"continue", Continue{}, false},
		{"break", Break{Value: Int(1)}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.v.Truthy())
		})
	}
}

func TestEqualAcrossMismatchedTypesIsFalse(t *testing.T) {
	require.False(t, Int(1).Equal(Char(1)))
	require.False(t, Int(0).Equal(Unit{}))
	require.False(t, NewStr("1").Equal(Int(1)))
}

func TestStrConcatAcceptsCharOrStr(t *testing.T) {
	s := NewStr("ab")
	require.Equal(t, "abc", s.Concat(Char('c')).String())
	require.Equal(t, "abcd", s.Concat(NewStr("cd")).String())
	require.Panics(t, func() { s.Concat(Int(1)) })
}

func TestStrIndexingRoundTrip(t *testing.T) {
	s := NewStr("hello")
	require.Equal(t, Char('e'), s.At(1))
	require.Equal(t, Unit{}, s.At(100))

	s2 := s.With(0, Char('H')).(Str)
	require.Equal(t, "Hello", s2.String())
	require.Equal(t, "hello", s.String(), "With must not mutate the receiver")
}

func TestTupleEquality(t *testing.T) {
	a := NewTuple(Int(1), Char('x'))
	b := NewTuple(Int(1), Char('x'))
	c := NewTuple(Int(1), Char('y'))

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}

func TestBoundVarActsAsUnderlyingValue(t *testing.T) {
	bv := BoundVar{Name: "x", Value: Int(7)}
	require.True(t, bv.Truthy())
	require.Equal(t, "7", bv.String())
	require.True(t, bv.Equal(Int(7)))
	require.Equal(t, Int(7), unwrap(bv))
}

func TestIsControl(t *testing.T) {
	require.True(t, isControl(Continue{}))
	require.True(t, isControl(Break{Value: Unit{}}))
	require.False(t, isControl(Int(0)))
}
