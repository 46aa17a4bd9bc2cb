package corrector

import (
	"strings"
	"unicode"

	"go.uber.org/zap"

	"pivotchat-backend/internal/domain"
	"pivotchat-backend/pkg/cache"
	"pivotchat-backend/pkg/logger"
	"pivotchat-backend/pkg/metrics"
)

const (
	// maxWordDistance is the edit-distance cutoff for a direct single-word
	// match against the catalog.
	maxWordDistance = 2
	// maxVariantDistance is the looser cutoff when comparing phonetic
	// normal forms, which have already absorbed some of the noise.
	maxVariantDistance = 3
	// minCorrectableLen guards very short tokens; correction never
	// degrades them.
	minCorrectableLen = 2
	// confidencePenalty is the per-edit confidence deduction. A heuristic
	// signal, not a calibrated probability: the only guarantee is that
	// more edits mean lower confidence, floored at 0.5.
	confidencePenalty = 0.15
)

// Corrector fixes phonetic spelling noise in romanized input without a
// dictionary: generic phonetic equivalence rules plus a small catalog of
// known spellings, matched by bounded edit distance. Safe for concurrent
// use; the memoization cache is the only shared state.
type Corrector struct {
	cache   *cache.CorrectionCache
	metrics *metrics.Metrics
}

// NewCorrector creates a phonetic corrector with a bounded memoization
// cache. metrics may be nil.
func NewCorrector(cacheSize int, m *metrics.Metrics) *Corrector {
	return &Corrector{
		cache:   cache.NewCorrectionCache(cacheSize),
		metrics: m,
	}
}

// CorrectWord corrects a single romanized word. language is optional and
// only selects the per-language phonetic rules. Words under 2 characters
// are returned unchanged with confidence 1.
func (c *Corrector) CorrectWord(word, language string) domain.Correction {
	result := domain.Correction{
		Original:   word,
		Corrected:  word,
		Confidence: 1.0,
	}
	if len([]rune(word)) < minCorrectableLen {
		return result
	}

	lower := strings.ToLower(word)
	if cached, ok := c.cache.Get(lower, language); ok {
		if c.metrics != nil {
			c.metrics.RecordCacheHit("correction")
		}
		if cached != lower {
			result.Corrected = cached
			result.Pattern = patternFor(cached)
			result.Distance = editDistance(lower, cached)
			result.Confidence = confidenceFor(result.Distance)
		}
		return result
	}
	if c.metrics != nil {
		c.metrics.RecordCacheMiss("correction")
	}

	best, bestDist := c.closestSpelling(lower, language)
	if best != "" && best != lower {
		result.Corrected = best
		result.Pattern = patternFor(best)
		result.Distance = bestDist
		result.Confidence = confidenceFor(bestDist)
		if c.metrics != nil {
			c.metrics.RecordCorrection(language)
		}
		logger.Debug("Phonetic correction applied",
			zap.String("word", word),
			zap.String("corrected", best),
			zap.Int("distance", bestDist),
		)
	}

	c.cache.Set(lower, language, result.Corrected)
	return result
}

// CorrectText corrects every word of a message, preserving punctuation and
// spacing between tokens.
func (c *Corrector) CorrectText(text, language string) domain.CorrectedText {
	result := domain.CorrectedText{Text: text}
	if strings.TrimSpace(text) == "" {
		return result
	}

	fields := strings.Fields(text)
	out := make([]string, len(fields))
	for i, field := range fields {
		prefix, core, suffix := splitPunct(field)
		if core == "" {
			out[i] = field
			continue
		}
		corr := c.CorrectWord(core, language)
		if corr.Corrected != corr.Original && !strings.EqualFold(corr.Corrected, corr.Original) {
			result.Corrections = append(result.Corrections, corr)
		}
		out[i] = prefix + matchCase(core, corr.Corrected) + suffix
	}

	result.Text = strings.Join(out, " ")
	return result
}

// closestSpelling finds the nearest catalog spelling within the distance
// cutoffs, trying the raw word first and its phonetic normal form second.
// A match must also change less than half the word: pulling a short token
// like "bro" to a catalog entry three edits away is not a correction.
func (c *Corrector) closestSpelling(word, language string) (string, int) {
	wordLen := len([]rune(word))
	best := ""
	bestDist := maxWordDistance + 1

	for _, pc := range patternCatalog {
		for _, known := range pc.spellings {
			// Multi-word spellings never match a single token.
			if strings.ContainsRune(known, ' ') {
				continue
			}
			if d := editDistance(word, known); d < bestDist {
				best, bestDist = known, d
			}
		}
	}
	if best != "" && bestDist <= maxWordDistance && bestDist*2 < wordLen {
		return best, bestDist
	}

	// Second pass over phonetic normal forms with the looser cutoff.
	normWord := normalizePhonetic(word, language)
	best = ""
	bestDist = maxVariantDistance + 1
	for _, pc := range patternCatalog {
		for _, known := range pc.spellings {
			if strings.ContainsRune(known, ' ') {
				continue
			}
			if d := editDistance(normWord, normalizePhonetic(known, language)); d < bestDist {
				best, bestDist = known, d
			}
		}
	}
	if best != "" && bestDist <= maxVariantDistance && bestDist*2 < wordLen {
		return best, editDistance(word, best)
	}
	return "", 0
}

// confidenceFor is the documented heuristic: max(0.5, 1 - 0.15*distance).
func confidenceFor(distance int) float64 {
	conf := 1.0 - float64(distance)*confidencePenalty
	if conf < 0.5 {
		return 0.5
	}
	return conf
}

// splitPunct separates leading and trailing punctuation from a token.
func splitPunct(tok string) (prefix, core, suffix string) {
	runes := []rune(tok)
	start := 0
	for start < len(runes) && isPunct(runes[start]) {
		start++
	}
	end := len(runes)
	for end > start && isPunct(runes[end-1]) {
		end--
	}
	return string(runes[:start]), string(runes[start:end]), string(runes[end:])
}

func isPunct(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

// matchCase restores a leading capital from the original token on the
// corrected spelling.
func matchCase(original, corrected string) string {
	if original == "" || corrected == "" {
		return corrected
	}
	first := []rune(original)[0]
	if unicode.IsUpper(first) {
		cr := []rune(corrected)
		cr[0] = unicode.ToUpper(cr[0])
		return string(cr)
	}
	return corrected
}
