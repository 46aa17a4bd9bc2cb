package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pivotchat-backend/internal/domain"
	"pivotchat-backend/internal/registry"
)

func newTestNormalizer() *Normalizer {
	return NewNormalizer(registry.NewDefaultRegistry())
}

func TestAnalyzeEmptyInput(t *testing.T) {
	n := newTestNormalizer()

	for _, input := range []string{"", "   ", "\t\n"} {
		analysis := n.Analyze(input, "telugu", "")
		assert.Equal(t, domain.MethodPureEnglish, analysis.Method)
		assert.Equal(t, "", analysis.NormalizedText)
		assert.Equal(t, 1.0, analysis.Confidence)
		assert.False(t, analysis.IsMixed)
	}
}

func TestAnalyzePureEnglish(t *testing.T) {
	n := newTestNormalizer()

	analysis := n.Analyze("how are you doing today", "english", "")
	assert.Equal(t, domain.MethodPureEnglish, analysis.Method)
	assert.True(t, analysis.HasLatinChars)
	assert.False(t, analysis.HasNativeChars)
	assert.False(t, analysis.IsMixed)
	assert.GreaterOrEqual(t, analysis.Confidence, 0.6)
}

func TestAnalyzeRomanizedNative(t *testing.T) {
	n := newTestNormalizer()

	analysis := n.Analyze("bagunnava", "telugu", "")
	assert.Equal(t, domain.MethodRomanizedNative, analysis.Method)
	assert.True(t, analysis.HasLatinChars)
	assert.False(t, analysis.HasNativeChars)
	assert.Contains(t, analysis.Languages, "te")
}

func TestAnalyzeNativeScript(t *testing.T) {
	n := newTestNormalizer()

	analysis := n.Analyze("బాగున్నవా", "telugu", "")
	assert.Equal(t, domain.MethodNativeScript, analysis.Method)
	assert.True(t, analysis.HasNativeChars)
	assert.False(t, analysis.HasLatinChars)
	assert.Equal(t, "Telugu", analysis.DetectedScript)
}

func TestAnalyzeScriptMixedCode(t *testing.T) {
	n := newTestNormalizer()

	analysis := n.Analyze("నేను fine ga unnanu", "telugu", "")
	assert.Equal(t, domain.MethodMixedCode, analysis.Method)
	assert.True(t, analysis.IsMixed)
	assert.True(t, analysis.HasNativeChars)
	assert.True(t, analysis.HasLatinChars)
}

func TestAnalyzeWordLevelCodeMixing(t *testing.T) {
	n := newTestNormalizer()

	// Latin-only text, but "bro" is English and "bagunnava" is not.
	analysis := n.Analyze("Bagunnava bro?", "telugu", "")
	assert.Equal(t, domain.MethodMixedCode, analysis.Method)
	assert.True(t, analysis.IsMixed)
	assert.False(t, analysis.HasNativeChars)
}

func TestAnalyzeAbbreviatedSlang(t *testing.T) {
	n := newTestNormalizer()

	analysis := n.Analyze("brb gtg", "english", "")
	assert.Equal(t, domain.MethodAbbreviatedSlang, analysis.Method)
}

func TestAnalyzeEmojiOnly(t *testing.T) {
	n := newTestNormalizer()

	analysis := n.Analyze("😀 🎉", "english", "")
	assert.Equal(t, domain.MethodEmojiOnly, analysis.Method)
}

func TestAnalyzeNumericSymbol(t *testing.T) {
	n := newTestNormalizer()

	analysis := n.Analyze("123 + 456", "english", "")
	assert.Equal(t, domain.MethodNumericSymbol, analysis.Method)
}

func TestAnalyzeVoiceEnglish(t *testing.T) {
	n := newTestNormalizer()

	// A full sentence appearing in one input event is a dictation burst.
	analysis := n.Analyze("I will call you when I reach home", "english", "I will")
	assert.Equal(t, domain.MethodVoiceEnglish, analysis.Method)
}

func TestAnalyzeVoiceNotTriggeredByTyping(t *testing.T) {
	n := newTestNormalizer()

	// One character added to existing text is a keystroke, not dictation.
	analysis := n.Analyze("I will call you when I reach home", "english",
		"I will call you when I reach hom")
	assert.Equal(t, domain.MethodPureEnglish, analysis.Method)
}

func TestAnalyzeLegacyFont(t *testing.T) {
	n := newTestNormalizer()

	analysis := n.Analyze(" text", "telugu", "")
	assert.Equal(t, domain.MethodLegacyFont, analysis.Method)
	assert.True(t, analysis.IsLegacyFont)
	assert.Less(t, analysis.Confidence, 0.5)
}

func TestNormalizeStripsZeroWidth(t *testing.T) {
	n := newTestNormalizer()

	assert.Equal(t, "hello", n.Normalize("hel\u200blo"))
	assert.Equal(t, "hello", n.Normalize("\ufeffhello"))
}

func TestNormalizeKeepsZeroWidthJoiner(t *testing.T) {
	n := newTestNormalizer()

	// ZWJ is meaningful in Indic scripts and emoji sequences.
	input := "శ్రీ‍కృష్ణ"
	assert.Contains(t, n.Normalize(input), "\u200d")
}

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	n := newTestNormalizer()

	assert.Equal(t, "a b c", n.Normalize("  a \t b\n\nc  "))
}

func TestHintLanguagesForNativeScript(t *testing.T) {
	n := newTestNormalizer()

	analysis := n.Analyze("नमस्ते", "hindi", "")
	assert.Contains(t, analysis.Languages, "hi")
	// Devanagari is shared, so other Devanagari languages are candidates.
	assert.Contains(t, analysis.Languages, "mr")
}

func TestUserLanguageAlwaysFirstHint(t *testing.T) {
	n := newTestNormalizer()

	analysis := n.Analyze("bagunnava", "telugu", "")
	assert.NotEmpty(t, analysis.Languages)
	assert.Equal(t, "te", analysis.Languages[0])
}
