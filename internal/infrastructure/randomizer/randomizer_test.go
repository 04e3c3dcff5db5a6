package randomizer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"secret-santa-service/internal/matching"
)

func TestIntnStaysInRange(t *testing.T) {
	r := New()
	for i := 0; i < 1000; i++ {
		v := r.Intn(5)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 5)
	}
	require.Equal(t, 0, r.Intn(1))
	require.Equal(t, 0, r.Intn(0))
}

func TestNewWithSeedIsDeterministic(t *testing.T) {
	a := NewWithSeed(42)
	b := NewWithSeed(42)
	for i := 0; i < 50; i++ {
		require.Equal(t, a.Intn(100), b.Intn(100))
	}
}

func TestRandomizerSatisfiesMatchingSource(t *testing.T) {
	var src matching.Source = NewWithSeed(1)
	assignment, err := matching.Assign([]string{"a", "b", "c"}, src)
	require.NoError(t, err)
	require.NoError(t, matching.Verify([]string{"a", "b", "c"}, assignment))
}
