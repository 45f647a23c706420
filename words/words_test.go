package words

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAlloc(t *testing.T, numBits int) []uint64 {
	t.Helper()
	buf, err := Allocate(numBits)
	require.NoError(t, err)
	return buf
}

func fromKeys(t *testing.T, numBits int, keys ...int) []uint64 {
	t.Helper()
	buf := mustAlloc(t, numBits)
	for _, k := range keys {
		require.NoError(t, Set(buf, numBits, k))
	}
	return buf
}

func TestArraySize(t *testing.T) {
	tests := []struct {
		bits int
		want int
	}{
		{0, 0},
		{1, 1},
		{63, 1},
		{64, 1},
		{65, 2},
		{128, 2},
		{129, 3},
		{130, 3},
		{-1, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ArraySize(tt.bits), "ArraySize(%d)", tt.bits)
	}
}

func TestAllocate(t *testing.T) {
	t.Run("zeroed", func(t *testing.T) {
		buf := mustAlloc(t, 130)
		assert.Len(t, buf, 3)
		for _, w := range buf {
			assert.Zero(t, w)
		}
	})

	t.Run("empty", func(t *testing.T) {
		buf := mustAlloc(t, 0)
		assert.Empty(t, buf)
	})

	t.Run("negative", func(t *testing.T) {
		_, err := Allocate(-1)
		assert.ErrorIs(t, err, ErrAllocationFailure)

		var ae *AllocError
		require.ErrorAs(t, err, &ae)
		assert.Equal(t, -1, ae.Bits)
	})
}

func TestSetGetClear(t *testing.T) {
	for _, numBits := range []int{1, 63, 64, 65, 128, 130} {
		t.Run(fmt.Sprintf("bits=%d", numBits), func(t *testing.T) {
			buf := mustAlloc(t, numBits)
			for k := 0; k < numBits; k++ {
				require.NoError(t, Set(buf, numBits, k))
				got, err := Get(buf, numBits, k)
				require.NoError(t, err)
				assert.True(t, got, "bit %d", k)

				require.NoError(t, Clear(buf, numBits, k))
				got, err = Get(buf, numBits, k)
				require.NoError(t, err)
				assert.False(t, got, "bit %d", k)
			}
			assert.True(t, IsAllClear(buf, numBits))
		})
	}
}

func TestOutOfRange(t *testing.T) {
	buf := mustAlloc(t, 70)

	for _, key := range []int{-1, 70, 127, 1 << 20} {
		err := Set(buf, 70, key)
		assert.ErrorIs(t, err, ErrOutOfRange, "Set(%d)", key)

		err = Clear(buf, 70, key)
		assert.ErrorIs(t, err, ErrOutOfRange, "Clear(%d)", key)

		_, err = Get(buf, 70, key)
		assert.ErrorIs(t, err, ErrOutOfRange, "Get(%d)", key)
	}

	var re *RangeError
	require.ErrorAs(t, Set(buf, 70, 70), &re)
	assert.Equal(t, 70, re.Index)
	assert.Equal(t, 70, re.Limit)

	// Bits in the padding of the last word must not be reachable.
	assert.Zero(t, buf[1]>>6)
}

func TestShortBuffer(t *testing.T) {
	buf := make([]uint64, 1)

	err := Set(buf, 100, 80)
	assert.ErrorIs(t, err, ErrSizeMismatch)

	var se *SizeError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 2, se.Expected)
	assert.Equal(t, 1, se.Actual)

	assert.Panics(t, func() { Count(buf, 100) })
	assert.Panics(t, func() { SetAll(buf, 100) })
}

func TestSetAll(t *testing.T) {
	for _, numBits := range []int{0, 1, 63, 64, 65, 100, 128, 130} {
		t.Run(fmt.Sprintf("bits=%d", numBits), func(t *testing.T) {
			buf := mustAlloc(t, numBits)
			SetAll(buf, numBits)

			assert.True(t, IsAllSet(buf, numBits))
			assert.Equal(t, numBits, Count(buf, numBits))

			if r := numBits % 64; r != 0 {
				last := buf[len(buf)-1]
				assert.Zero(t, last>>uint(r), "padding must stay clear")
			}
		})
	}
}

func TestSetAll_OverwritesDirtyPadding(t *testing.T) {
	buf := []uint64{0, ^uint64(0)}
	SetAll(buf, 70)
	assert.Equal(t, uint64(1)<<6-1, buf[1])
}

func TestClearAll(t *testing.T) {
	buf := []uint64{^uint64(0), ^uint64(0), ^uint64(0)}
	ClearAll(buf, 130)

	assert.True(t, IsAllClear(buf, 130))
	assert.Zero(t, Count(buf, 130))
	assert.Equal(t, []uint64{0, 0, 0}, buf)
}

func TestPaddingIgnoredByQueries(t *testing.T) {
	// 70 bits: word 1 holds bits 64..69, bits 6..63 of word 1 are padding.
	buf := []uint64{0, ^uint64(1<<6 - 1)}

	assert.True(t, IsAllClear(buf, 70))
	assert.Zero(t, Count(buf, 70))

	keys, err := Keys(buf, 70, nil, 0)
	require.NoError(t, err)
	assert.Empty(t, keys)

	_, ok := NextSet(buf, 70, 0)
	assert.False(t, ok)

	clean := make([]uint64, 2)
	assert.True(t, Equal(buf, clean, 70))

	full := []uint64{^uint64(0), ^uint64(0)}
	assert.True(t, IsAllSet(full, 70))
	assert.Equal(t, 70, Count(full, 70))
}

func TestIsAllSet_TwoPhase(t *testing.T) {
	buf := mustAlloc(t, 130)
	SetAll(buf, 130)

	require.NoError(t, Clear(buf, 130, 5))
	assert.False(t, IsAllSet(buf, 130), "interior word")

	require.NoError(t, Set(buf, 130, 5))
	require.NoError(t, Clear(buf, 130, 129))
	assert.False(t, IsAllSet(buf, 130), "tail word")
}

func TestEmptyArray(t *testing.T) {
	var buf []uint64
	assert.True(t, IsAllSet(buf, 0))
	assert.True(t, IsAllClear(buf, 0))
	assert.Zero(t, Count(buf, 0))
	assert.True(t, Equal(buf, buf, 0))
	assert.NoError(t, And(buf, buf, 0))
	assert.NoError(t, Or(buf, buf, 0))
	assert.NoError(t, Exclude(buf, buf, 0))
	assert.NoError(t, Copy(buf, buf, 0))

	err := Set(buf, 0, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestSetAlgebra(t *testing.T) {
	const numBits = 8

	tests := []struct {
		name string
		op   func(dst, src []uint64, numBits int) error
		want []int
	}{
		{"And", And, []int{3, 5}},
		{"Or", Or, []int{1, 3, 5, 7}},
		{"Exclude", Exclude, []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := fromKeys(t, numBits, 1, 3, 5)
			b := fromKeys(t, numBits, 3, 5, 7)

			require.NoError(t, tt.op(a, b, numBits))

			keys, err := Keys(a, numBits, nil, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.want, keys)

			// src is never modified
			keys, err = Keys(b, numBits, nil, 0)
			require.NoError(t, err)
			assert.Equal(t, []int{3, 5, 7}, keys)
		})
	}
}

func TestSetAlgebra_SizeMismatch(t *testing.T) {
	a := mustAlloc(t, 130)
	b := mustAlloc(t, 64)

	for name, op := range map[string]func(dst, src []uint64, numBits int) error{
		"And":     And,
		"Or":      Or,
		"Exclude": Exclude,
		"Copy":    Copy,
	} {
		err := op(a, b, 130)
		assert.ErrorIs(t, err, ErrSizeMismatch, name)

		err = op(b, a, 130)
		assert.ErrorIs(t, err, ErrSizeMismatch, name)
	}
}

func TestOr_MasksForeignPadding(t *testing.T) {
	dst := make([]uint64, 2)
	src := []uint64{1, ^uint64(0)}

	require.NoError(t, Or(dst, src, 70))
	assert.Equal(t, uint64(1)<<6-1, dst[1])
	assert.Equal(t, 7, Count(dst, 70))
}

func TestEqual(t *testing.T) {
	a := fromKeys(t, 130, 0, 64, 129)
	assert.True(t, Equal(a, a, 130))

	b := fromKeys(t, 130, 0, 64, 129)
	assert.True(t, Equal(a, b, 130))

	require.NoError(t, Clear(b, 130, 129))
	assert.False(t, Equal(a, b, 130))

	require.NoError(t, Set(b, 130, 129))
	require.NoError(t, Set(b, 130, 1))
	assert.False(t, Equal(a, b, 130))
}

func TestCopy(t *testing.T) {
	src := fromKeys(t, 130, 0, 64, 129)
	dst := mustAlloc(t, 130)
	dst[0] = 0xFF

	require.NoError(t, Copy(dst, src, 130))
	assert.True(t, Equal(dst, src, 130))

	// Independent storage afterwards.
	require.NoError(t, Set(dst, 130, 7))
	got, err := Get(src, 130, 7)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestThreeWordScenario(t *testing.T) {
	buf := fromKeys(t, 130, 0, 64, 129)

	assert.Equal(t, 3, Count(buf, 130))
	assert.False(t, IsAllSet(buf, 130))
	assert.False(t, IsAllClear(buf, 130))

	keys, err := Keys(buf, 130, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 64, 129}, keys)
}

func TestDump(t *testing.T) {
	buf := fromKeys(t, 5, 1, 4)

	var out bytes.Buffer
	require.NoError(t, Dump(&out, buf, 5))
	assert.Equal(t, "5: 0 1 0 0 1 \n", out.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestDump_WriteError(t *testing.T) {
	buf := mustAlloc(t, 3)
	assert.Error(t, Dump(failingWriter{}, buf, 3))
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "index out of range: 9 not in [0, 8)", (&RangeError{Index: 9, Limit: 8}).Error())
	assert.Equal(t, "size mismatch: expected 8 bits, got 16", (&SizeError{Expected: 8, Actual: 16, Unit: "bits"}).Error())

	cause := errors.New("boom")
	err := NewAllocError(128, cause)
	assert.Equal(t, "allocation failure: 128 bits: boom", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrAllocationFailure)
	assert.NotErrorIs(t, err, ErrOutOfRange)
}
