package corrector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestCorrector() *Corrector {
	return NewCorrector(100, nil)
}

func TestCorrectWordTeluguGreeting(t *testing.T) {
	c := newTestCorrector()

	corr := c.CorrectWord("bagunnava", "telugu")
	assert.Equal(t, "baagunnava", corr.Corrected)
	assert.Equal(t, "how-are-you", corr.Pattern)
	assert.Equal(t, 1, corr.Distance)
	assert.InDelta(t, 0.85, corr.Confidence, 0.001)
}

func TestCorrectWordExactMatchUnchanged(t *testing.T) {
	c := newTestCorrector()

	corr := c.CorrectWord("baagunnava", "telugu")
	assert.Equal(t, "baagunnava", corr.Corrected)
	assert.Equal(t, 0, corr.Distance)
	assert.Equal(t, 1.0, corr.Confidence)
}

func TestCorrectWordShortWordGuard(t *testing.T) {
	c := newTestCorrector()

	corr := c.CorrectWord("a", "telugu")
	assert.Equal(t, "a", corr.Corrected)
	assert.Equal(t, 1.0, corr.Confidence)
}

func TestCorrectWordEnglishTokenLeftAlone(t *testing.T) {
	c := newTestCorrector()

	// "bro" is within edit distance 3 of several catalog entries but a
	// three-letter word must not be rewritten wholesale.
	corr := c.CorrectWord("bro", "telugu")
	assert.Equal(t, "bro", corr.Corrected)
}

func TestCorrectWordMemoized(t *testing.T) {
	c := newTestCorrector()

	first := c.CorrectWord("bagunnava", "telugu")
	second := c.CorrectWord("bagunnava", "telugu")
	assert.Equal(t, first.Corrected, second.Corrected)
	assert.Equal(t, first.Confidence, second.Confidence)
}

func TestCorrectTextPreservesPunctuationAndCase(t *testing.T) {
	c := newTestCorrector()

	result := c.CorrectText("Bagunnava?", "telugu")
	assert.Equal(t, "Baagunnava?", result.Text)
	assert.Len(t, result.Corrections, 1)
	// The correction record keeps the word as typed.
	assert.Equal(t, "Bagunnava", result.Corrections[0].Original)
}

func TestCorrectTextMixedMessage(t *testing.T) {
	c := newTestCorrector()

	result := c.CorrectText("Bagunnava bro?", "telugu")
	assert.Equal(t, "Baagunnava bro?", result.Text)
}

func TestCorrectTextEmpty(t *testing.T) {
	c := newTestCorrector()

	result := c.CorrectText("   ", "telugu")
	assert.Empty(t, result.Corrections)
}

func TestConfidenceHeuristic(t *testing.T) {
	assert.Equal(t, 1.0, confidenceFor(0))
	assert.InDelta(t, 0.85, confidenceFor(1), 0.001)
	assert.InDelta(t, 0.70, confidenceFor(2), 0.001)
	assert.InDelta(t, 0.55, confidenceFor(3), 0.001)
	// Floor at 0.5 regardless of distance.
	assert.Equal(t, 0.5, confidenceFor(4))
	assert.Equal(t, 0.5, confidenceFor(10))
}

func TestConfidenceMonotonicNonIncreasing(t *testing.T) {
	prev := confidenceFor(0)
	for d := 1; d <= 8; d++ {
		curr := confidenceFor(d)
		assert.LessOrEqual(t, curr, prev)
		prev = curr
	}
}
