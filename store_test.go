package imp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStoreGetUnsetIsUnit(t *testing.T) {
	var s Store
	require.Equal(t, Unit{}, s.Get("missing"))
}

func TestStoreSetDoesNotMutateReceiver(t *testing.T) {
	var s Store
	s1 := s.Set("x", Int(1))
	s2 := s1.Set("x", Int(2))

	require.Equal(t, Unit{}, s.Get("x"), "original store must be untouched")
	require.Equal(t, Int(1), s1.Get("x"), "s1 must be untouched by s2's update")
	require.Equal(t, Int(2), s2.Get("x"))
}

func TestStorePreservesInsertionOrderAndOverwrites(t *testing.T) {
	var s Store
	s = s.Set("a", Int(1))
	s = s.Set("b", Int(2))
	s = s.Set("a", Int(3))

	require.Equal(t, 2, s.Len())

	var names []Name
	var values []Value
	s.Each(func(name Name, value Value) {
		names = append(names, name)
		values = append(values, value)
	})
	require.Equal(t, []Name{"a", "b"}, names)
	require.Equal(t, []Value{Int(3), Int(2)}, values)
}

func TestStoreSupportsCompositeNames(t *testing.T) {
	var s Store
	base := pair("arr", int64(0))
	s = s.Set(base, Int(42))
	require.Equal(t, Int(42), s.Get(base))
	require.Equal(t, Unit{}, s.Get(pair("arr", int64(1))))
}
