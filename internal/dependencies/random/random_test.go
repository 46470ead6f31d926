package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCryptoRandomStaysInRange(t *testing.T) {
	rnd := New()
	for i := 0; i < 200; i++ {
		v := rnd.Intn(3)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 3)
	}
	assert.Equal(t, 0, rnd.Intn(0))
}

func TestSeededRandomIsReproducible(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)
	for i := 0; i < 50; i++ {
		require.Equal(t, a.Intn(3), b.Intn(3))
	}
	assert.Equal(t, 0, a.Intn(-1))
}
