package normalizer

import (
	"strings"
	"unicode"

	"github.com/pemistahl/lingua-go"
	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"pivotchat-backend/internal/domain"
	"pivotchat-backend/internal/registry"
	"pivotchat-backend/pkg/logger"
)

const (
	// commonWordThreshold is the closed-class word ratio at or above which
	// Latin-only text is treated as plain English.
	commonWordThreshold = 0.3
	// slangThreshold is the slang ratio at or above which Latin-only text
	// is treated as chat shorthand.
	slangThreshold = 0.5
	// voiceBurstChars is the minimum character delta (including a space)
	// since the previous input event that indicates a dictation burst
	// rather than manual keystrokes.
	voiceBurstChars = 15
	// replacementRunThreshold is the number of U+FFFD characters that marks
	// a legacy-encoding signature.
	replacementRunThreshold = 2
)

// Normalizer classifies raw chat input by method and script and produces a
// canonicalized form of the text. Stateless apart from its collaborators;
// safe for concurrent use.
type Normalizer struct {
	registry *registry.Registry
	detector lingua.LanguageDetector
	hasHint  bool
}

// NewNormalizer creates an input normalizer. The statistical language
// detector is optional; heuristics alone carry classification without it.
func NewNormalizer(reg *registry.Registry) *Normalizer {
	return &Normalizer{registry: reg}
}

// NewNormalizerWithDetection creates an input normalizer with a lingua
// detector for refining language hints on Latin-script input.
func NewNormalizerWithDetection(reg *registry.Registry) *Normalizer {
	languages := []lingua.Language{
		lingua.English, lingua.Spanish, lingua.French, lingua.German,
		lingua.Portuguese, lingua.Italian, lingua.Dutch, lingua.Turkish,
		lingua.Vietnamese, lingua.Indonesian,
	}
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(languages...).
		Build()

	logger.Info("Input normalizer statistical detector initialized",
		zap.Int("languages", len(languages)),
	)
	return &Normalizer{registry: reg, detector: detector, hasHint: true}
}

// Analyze classifies a single input event. previousText is the input box
// content before this event; pass "" when unknown. The result is created
// fresh and never mutated afterwards.
func (n *Normalizer) Analyze(text, userLanguage, previousText string) *domain.InputAnalysis {
	normalized := n.Normalize(text)

	analysis := &domain.InputAnalysis{
		Method:         domain.MethodPureEnglish,
		OriginalText:   text,
		NormalizedText: normalized,
		Confidence:     1.0,
	}
	if normalized == "" {
		return analysis
	}

	scripts := detectScripts(normalized)
	analysis.Scripts = scripts
	if len(scripts) > 0 {
		analysis.DetectedScript = scripts[0]
	}
	analysis.HasLatinChars = latinPattern.MatchString(normalized)
	analysis.HasNativeChars = hasNativeScript(scripts)
	analysis.IsMixed = analysis.HasNativeChars && analysis.HasLatinChars
	analysis.IsLegacyFont = isLegacyFont(text)

	voiceBurst := isVoiceBurst(normalized, previousText)
	n.classify(analysis, voiceBurst, userLanguage)
	n.hintLanguages(analysis, userLanguage)

	return analysis
}

// Normalize canonicalizes raw text: Unicode NFC, zero-width artifacts
// stripped (the joiner U+200D is kept, complex scripts depend on it),
// whitespace collapsed.
func (n *Normalizer) Normalize(text string) string {
	text = norm.NFC.String(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch r {
		case '\u200b', '\u200c', '\u2060', '\ufeff':
			// zero-width space, non-joiner, word joiner, BOM
			continue
		}
		b.WriteRune(r)
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// classify runs the decision table over the script booleans and the burst
// heuristic. Precedence: legacy signature, native-only, Latin-only, mixed.
func (n *Normalizer) classify(a *domain.InputAnalysis, voiceBurst bool, userLanguage string) {
	tokens := tokenize(a.NormalizedText)

	switch {
	case a.IsLegacyFont:
		// Legacy signature only ever downgrades confidence; the text is
		// still processed.
		a.Method = domain.MethodLegacyFont
		a.Confidence = 0.4

	case a.HasNativeChars && !a.HasLatinChars:
		if voiceBurst {
			a.Method = domain.MethodVoiceNative
			a.Confidence = 0.8
		} else {
			a.Method = domain.MethodNativeScript
			a.Confidence = 0.95
		}

	case a.HasLatinChars && !a.HasNativeChars:
		n.classifyLatin(a, tokens, voiceBurst, userLanguage)

	case a.IsMixed:
		if voiceBurst {
			a.Method = domain.MethodVoiceMixed
			a.Confidence = 0.65
		} else {
			a.Method = domain.MethodMixedCode
			a.Confidence = 0.75
		}

	default:
		// No letters at all.
		if emojiPattern.MatchString(a.NormalizedText) && !hasDigitOrLetter(a.NormalizedText) {
			a.Method = domain.MethodEmojiOnly
			a.Confidence = 0.9
		} else if a.NormalizedText != "" && !hasLetter(a.NormalizedText) {
			a.Method = domain.MethodNumericSymbol
			a.Confidence = 0.9
		} else {
			a.Method = domain.MethodUnknown
			a.Confidence = 0.3
		}
	}
}

// classifyLatin splits Latin-only input into plain English, chat slang, a
// dictation burst, or romanized native text using the closed-class word
// ratio.
func (n *Normalizer) classifyLatin(a *domain.InputAnalysis, tokens []string, voiceBurst bool, userLanguage string) {
	common := commonWordRatio(tokens)
	slang := slangRatio(tokens)
	englishCount := englishLikeCount(tokens)

	englishLike := common >= commonWordThreshold

	switch {
	case !englishLike && englishCount > 0 && englishCount < len(tokens):
		// Word-level code-mixing: some tokens are English, the rest are
		// romanized native ("Bagunnava bro?"). Mixed even though the
		// whole message is Latin script.
		a.Method = domain.MethodMixedCode
		a.IsMixed = true
		a.Confidence = 0.7

	case slang >= slangThreshold:
		a.Method = domain.MethodAbbreviatedSlang
		a.Confidence = 0.85

	case voiceBurst:
		if englishLike {
			a.Method = domain.MethodVoiceEnglish
		} else {
			a.Method = domain.MethodVoiceNative
		}
		a.Confidence = 0.7

	case englishLike:
		a.Method = domain.MethodPureEnglish
		// More closed-class hits, more certainty.
		a.Confidence = 0.6 + 0.4*common
		if a.Confidence > 1.0 {
			a.Confidence = 1.0
		}

	default:
		// Latin letters, no English function words: romanized native
		// typing unless the user's own language is Latin-script.
		userLang := n.registry.Get(userLanguage)
		if userLang != nil && userLang.IsLatinScript() && !userLang.IsEnglish() {
			a.Method = domain.MethodNativeScript
			a.Confidence = 0.7
		} else {
			a.Method = domain.MethodRomanizedNative
			a.Confidence = 0.7
		}
	}
}

// hintLanguages fills the candidate language list: the user's language
// first, then registry languages matching the detected native script, then
// a statistical guess for Latin text when the detector is configured.
func (n *Normalizer) hintLanguages(a *domain.InputAnalysis, userLanguage string) {
	seen := make(map[string]bool)
	add := func(code string) {
		if code != "" && !seen[code] {
			seen[code] = true
			a.Languages = append(a.Languages, code)
		}
	}

	if lang := n.registry.Get(userLanguage); lang != nil {
		add(lang.Code)
	}

	if a.HasNativeChars && a.DetectedScript != "" {
		for _, lang := range n.registry.All() {
			if lang.ScriptName == a.DetectedScript {
				add(lang.Code)
			}
		}
	}

	if n.hasHint && a.HasLatinChars && !a.HasNativeChars {
		if detected, exists := n.detector.DetectLanguageOf(a.NormalizedText); exists {
			if lang := n.registry.Get(strings.ToLower(detected.String())); lang != nil {
				add(lang.Code)
			}
		}
	}
}

// isVoiceBurst reports whether this input event added a dictation-sized
// chunk (more than ~15 characters including a space) in one step. An empty
// previousText means the prior input box content is unknown, so no burst
// can be inferred.
func isVoiceBurst(text, previousText string) bool {
	if previousText == "" {
		return false
	}
	delta := len([]rune(text)) - len([]rune(previousText))
	if delta <= voiceBurstChars {
		return false
	}
	added := text
	if previousText != "" && strings.HasPrefix(text, previousText) {
		added = text[len(previousText):]
	}
	return strings.Contains(added, " ")
}

// isLegacyFont checks for the legacy-encoding signature: private-use-area
// code points or a run of replacement characters.
func isLegacyFont(text string) bool {
	if legacyFontPattern.MatchString(text) {
		return true
	}
	return strings.Count(text, "�") >= replacementRunThreshold
}

func tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		tok := strings.TrimFunc(f, func(r rune) bool {
			return unicode.IsPunct(r) || unicode.IsSymbol(r)
		})
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func hasDigitOrLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
