package corrector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEditDistanceIdentity(t *testing.T) {
	for _, w := range []string{"", "a", "hello", "baagunnava", "నమస్తే"} {
		assert.Equal(t, 0, editDistance(w, w))
	}
}

func TestEditDistanceSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"bagunnava", "baagunnava"},
		{"kitten", "sitting"},
		{"abc", ""},
		{"hola", "hello"},
	}
	for _, p := range pairs {
		assert.Equal(t, editDistance(p[0], p[1]), editDistance(p[1], p[0]))
	}
}

func TestEditDistanceKnownValues(t *testing.T) {
	assert.Equal(t, 1, editDistance("bagunnava", "baagunnava")) // insertion
	assert.Equal(t, 1, editDistance("helo", "hello"))           // insertion
	assert.Equal(t, 1, editDistance("hallo", "hello"))          // substitution
	assert.Equal(t, 1, editDistance("hlelo", "hello"))          // transposition
	assert.Equal(t, 3, editDistance("kitten", "sitting"))
	assert.Equal(t, 5, editDistance("", "hello"))
}

func TestEditDistanceTriangleInequality(t *testing.T) {
	words := []string{"namaste", "namastey", "namaskar", "vanakkam"}
	for _, a := range words {
		for _, b := range words {
			for _, c := range words {
				assert.LessOrEqual(t, editDistance(a, c),
					editDistance(a, b)+editDistance(b, c))
			}
		}
	}
}

func TestEditDistanceLengthDeltaShortcut(t *testing.T) {
	// Length difference beyond the cutoff returns the delta, a lower bound.
	assert.Equal(t, 5, editDistance("ab", "abcdefg"))
}

func TestEditDistanceUnicode(t *testing.T) {
	// Distances count runes, not bytes.
	assert.Equal(t, 1, editDistance("నమస", "నమసా"))
}
