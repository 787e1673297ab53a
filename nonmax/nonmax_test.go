package nonmax_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/microblossom/nonmax"
)

func TestValue_NewRejectsMax(t *testing.T) {
	_, ok := nonmax.New[uint32](^uint32(0))
	require.False(t, ok, "the max bit pattern must be rejected")

	v, ok := nonmax.New[uint32](42)
	require.True(t, ok)
	require.Equal(t, uint32(42), v.Get())
}

func TestOption_NoneAndSome(t *testing.T) {
	none := nonmax.None[uint16]()
	require.True(t, none.IsNone())
	require.False(t, none.IsSome())

	v := nonmax.MustNew[uint16](7)
	some := nonmax.Some(v)
	require.True(t, some.IsSome())
	got, ok := some.Get()
	require.True(t, ok)
	require.Equal(t, uint16(7), got)
}

func TestOption_UnwrapPanicsOnNone(t *testing.T) {
	require.Panics(t, func() {
		nonmax.None[uint32]().Unwrap()
	})
}

func TestOption_SameSizeAsValue(t *testing.T) {
	// Testable property from spec §8: Option<Index> has the same
	// representation size as Index.
	var v nonmax.Value[uint32]
	var o nonmax.Option[uint32]
	require.Equal(t, unsafe.Sizeof(v), unsafe.Sizeof(o))

	var v16 nonmax.Value[uint16]
	var o16 nonmax.Option[uint16]
	require.Equal(t, unsafe.Sizeof(v16), unsafe.Sizeof(o16))
}
