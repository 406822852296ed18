package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonRegistryInternsCaseInsensitively(t *testing.T) {
	pr := NewPersonRegistry()

	first, err := pr.GetOrCreate("Matt Groening")
	require.NoError(t, err)

	second, err := pr.GetOrCreate("MATT GROENING")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, pr.Count())

	// The stored name keeps the first-seen casing.
	assert.Equal(t, "Matt Groening", second.FullName)
}

func TestPersonRegistryTrimsAtTheBoundary(t *testing.T) {
	pr := NewPersonRegistry()

	padded, err := pr.GetOrCreate("  Hugo Claus  ")
	require.NoError(t, err)
	assert.Equal(t, "Hugo Claus", padded.FullName)

	bare, err := pr.GetOrCreate("hugo claus")
	require.NoError(t, err)
	assert.Same(t, padded, bare)
	assert.Equal(t, 1, pr.Count())
}

func TestPersonRegistryRejectsEmptyNames(t *testing.T) {
	pr := NewPersonRegistry()

	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := pr.GetOrCreate(name)
		assert.ErrorIs(t, err, ErrEmptyName, "name %q", name)
	}

	assert.Equal(t, 0, pr.Count())
}

func TestPersonRegistryCountGrowsPerDistinctName(t *testing.T) {
	pr := NewPersonRegistry()

	names := []string{"Director A", "Director B", "Director A", "director b", "Director C"}
	for _, name := range names {
		_, err := pr.GetOrCreate(name)
		require.NoError(t, err)
	}

	assert.Equal(t, 3, pr.Count())
}
