package assertion

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type celsius float64

type label string

func TestConvert_Numeric(t *testing.T) {
	t.Run("widening", func(t *testing.T) {
		v, err := Convert[uint16](uint8(42))
		require.NoError(t, err)
		assert.Equal(t, uint16(42), v)
	})

	t.Run("untyped constant into narrower type", func(t *testing.T) {
		v, err := Convert[uint8](42)
		require.NoError(t, err)
		assert.Equal(t, uint8(42), v)
	})

	t.Run("signed into unsigned in range", func(t *testing.T) {
		v, err := Convert[uint8](int8(42))
		require.NoError(t, err)
		assert.Equal(t, uint8(42), v)
	})

	t.Run("integral float into int", func(t *testing.T) {
		v, err := Convert[int](3.0)
		require.NoError(t, err)
		assert.Equal(t, 3, v)
	})

	t.Run("int into float", func(t *testing.T) {
		v, err := Convert[float64](42)
		require.NoError(t, err)
		assert.Equal(t, 42.0, v)
	})

	t.Run("named float type", func(t *testing.T) {
		v, err := Convert[celsius](21.5)
		require.NoError(t, err)
		assert.Equal(t, celsius(21.5), v)
	})
}

func TestConvert_NotRepresentable(t *testing.T) {
	tests := []struct {
		name    string
		convert func() error
	}{
		{"negative into unsigned", func() error { _, err := Convert[uint8](int8(-42)); return err }},
		{"overflow", func() error { _, err := Convert[int8](300); return err }},
		{"fraction into int", func() error { _, err := Convert[int](1.5); return err }},
		{"uint64 max into int64", func() error { _, err := Convert[int64](uint64(math.MaxUint64)); return err }},
		{"imprecise float32", func() error { _, err := Convert[float32](0.1); return err }},
		{"int64 max into float64", func() error { _, err := Convert[float64](int64(math.MaxInt64)); return err }},
		{"NaN into int", func() error { _, err := Convert[int](math.NaN()); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.convert()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrNotRepresentable))
		})
	}
}

func TestConvert_NonNumeric(t *testing.T) {
	t.Run("assignable", func(t *testing.T) {
		v, err := Convert[[]int]([]int{1, 2})
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, v)
	})

	t.Run("named string type", func(t *testing.T) {
		v, err := Convert[label]("ok")
		require.NoError(t, err)
		assert.Equal(t, label("ok"), v)
	})

	t.Run("nil into nilable", func(t *testing.T) {
		v, err := Convert[error](nil)
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("implementation into interface", func(t *testing.T) {
		v, err := Convert[error](io.EOF)
		require.NoError(t, err)
		assert.Equal(t, io.EOF, v)
	})
}

func TestConvert_Incompatible(t *testing.T) {
	tests := []struct {
		name    string
		convert func() error
	}{
		{"string into int", func() error { _, err := Convert[int]("42"); return err }},
		{"int into string", func() error { _, err := Convert[string](65); return err }},
		{"nil into int", func() error { _, err := Convert[int](nil); return err }},
		{"slice element mismatch", func() error { _, err := Convert[[]int64]([]int{1}); return err }},
		{"bool into int", func() error { _, err := Convert[int](true); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.convert()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrIncompatible)
		})
	}
}
