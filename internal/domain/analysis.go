package domain

// InputMethod classifies how a chat message was most likely produced.
type InputMethod string

const (
	// MethodPureEnglish is plain English typed on a standard keyboard.
	MethodPureEnglish InputMethod = "pure-english"
	// MethodRomanizedNative is a native language typed phonetically in Latin
	// letters (e.g. "bagunnava" for Telugu).
	MethodRomanizedNative InputMethod = "romanized-native"
	// MethodNativeScript is text typed with a native-script keyboard or IME.
	MethodNativeScript InputMethod = "native-script"
	// MethodMixedCode is code-switched text mixing native and Latin scripts.
	MethodMixedCode InputMethod = "mixed-code"
	// MethodVoiceEnglish is an English voice-dictation burst.
	MethodVoiceEnglish InputMethod = "voice-english"
	// MethodVoiceNative is a native-script voice-dictation burst.
	MethodVoiceNative InputMethod = "voice-native"
	// MethodVoiceMixed is a code-switched voice-dictation burst.
	MethodVoiceMixed InputMethod = "voice-mixed"
	// MethodLegacyFont is text carrying a legacy non-Unicode font signature
	// (private-use-area code points or runs of replacement characters).
	MethodLegacyFont InputMethod = "legacy-font"
	// MethodNumericSymbol is text containing only digits, punctuation and symbols.
	MethodNumericSymbol InputMethod = "numeric-symbol"
	// MethodEmojiOnly is text consisting solely of emoji and whitespace.
	MethodEmojiOnly InputMethod = "emoji-only"
	// MethodAbbreviatedSlang is Latin chat shorthand ("brb", "gm", "hbd").
	MethodAbbreviatedSlang InputMethod = "abbreviated-slang"
	// MethodUnknown is the fallback when no other category matches.
	MethodUnknown InputMethod = "unknown"
)

// InputAnalysis is the normalizer's verdict on a single input event.
// Produced fresh per event and never mutated afterwards.
type InputAnalysis struct {
	Method         InputMethod `json:"method"`
	OriginalText   string      `json:"original_text"`
	NormalizedText string      `json:"normalized_text"`
	DetectedScript string      `json:"detected_script"`
	Scripts        []string    `json:"scripts,omitempty"`
	HasNativeChars bool        `json:"has_native_chars"`
	HasLatinChars  bool        `json:"has_latin_chars"`
	// IsMixed is true for script-level mixing (native and Latin characters
	// together) and for word-level code-mixing in Latin-only text.
	IsMixed      bool     `json:"is_mixed"`
	IsLegacyFont bool     `json:"is_legacy_font"`
	Confidence   float64  `json:"confidence"`
	Languages    []string `json:"languages,omitempty"`
}

// Correction records a single phonetic spelling fix. Pattern names the
// semantic class the corrected spelling belongs to.
type Correction struct {
	Original   string  `json:"original"`
	Corrected  string  `json:"corrected"`
	Pattern    string  `json:"pattern,omitempty"`
	Distance   int     `json:"distance"`
	Confidence float64 `json:"confidence"`
}

// CorrectedText is the result of correcting a whole message.
type CorrectedText struct {
	Text        string       `json:"text"`
	Corrections []Correction `json:"corrections,omitempty"`
}
