package imp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScopedNameDiffersByDepth(t *testing.T) {
	require.NotEqual(t, scopedName("x", 0), scopedName("x", 1))
	require.Equal(t, scopedName("x", 2), scopedName("x", 2))
}

func TestValueToNameScalars(t *testing.T) {
	require.Equal(t, Name(nil), valueToName(Unit{}))
	require.Equal(t, Name(int64(5)), valueToName(Int(5)))
	require.Equal(t, Name('a'), valueToName(Char('a')))
	require.Equal(t, Name(true), valueToName(Bool(true)))
	require.Equal(t, Name("hi"), valueToName(NewStr("hi")))
}

func TestValueToNameFoldsTupleLeftToRight(t *testing.T) {
	got := valueToName(NewTuple(Int(1), Int(2), Int(3)))
	want := pair(pair(int64(1), int64(2)), int64(3))
	require.Equal(t, want, got)
}

func TestValueToNamePassesRefNameThrough(t *testing.T) {
	require.Equal(t, Name("base"), valueToName(Ref{Name: "base"}))
}

func TestValueToNameRejectsEmptyTuple(t *testing.T) {
	require.Panics(t, func() { valueToName(NewTuple()) })
}

func TestNameToValueRoundTripsThroughValueToName(t *testing.T) {
	for _, n := range []Name{nil, int64(7), 'z', true, "str", pair("a", int64(1))} {
		require.Equal(t, n, valueToName(nameToValue(n)))
	}
}
