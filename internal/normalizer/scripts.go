package normalizer

import "regexp"

// scriptRange binds a script name to the regexp covering its Unicode block.
// A text may match several entries; table order decides the primary script,
// so the Indic scripts precede the broad CJK and alphabet blocks.
type scriptRange struct {
	name    string
	pattern *regexp.Regexp
}

var scriptRanges = []scriptRange{
	{"Devanagari", regexp.MustCompile(`[\x{0900}-\x{097F}]`)},
	{"Bengali", regexp.MustCompile(`[\x{0980}-\x{09FF}]`)},
	{"Gurmukhi", regexp.MustCompile(`[\x{0A00}-\x{0A7F}]`)},
	{"Gujarati", regexp.MustCompile(`[\x{0A80}-\x{0AFF}]`)},
	{"Odia", regexp.MustCompile(`[\x{0B00}-\x{0B7F}]`)},
	{"Tamil", regexp.MustCompile(`[\x{0B80}-\x{0BFF}]`)},
	{"Telugu", regexp.MustCompile(`[\x{0C00}-\x{0C7F}]`)},
	{"Kannada", regexp.MustCompile(`[\x{0C80}-\x{0CFF}]`)},
	{"Malayalam", regexp.MustCompile(`[\x{0D00}-\x{0D7F}]`)},
	{"Sinhala", regexp.MustCompile(`[\x{0D80}-\x{0DFF}]`)},
	{"Thai", regexp.MustCompile(`[\x{0E00}-\x{0E7F}]`)},
	{"Lao", regexp.MustCompile(`[\x{0E80}-\x{0EFF}]`)},
	{"Myanmar", regexp.MustCompile(`[\x{1000}-\x{109F}]`)},
	{"Khmer", regexp.MustCompile(`[\x{1780}-\x{17FF}]`)},
	{"Georgian", regexp.MustCompile(`[\x{10A0}-\x{10FF}]`)},
	{"Armenian", regexp.MustCompile(`[\x{0530}-\x{058F}]`)},
	{"Ethiopic", regexp.MustCompile(`[\x{1200}-\x{137F}]`)},
	{"Arabic", regexp.MustCompile(`[\x{0600}-\x{06FF}\x{0750}-\x{077F}\x{08A0}-\x{08FF}]`)},
	{"Hebrew", regexp.MustCompile(`[\x{0590}-\x{05FF}]`)},
	{"Hangul", regexp.MustCompile(`[\x{1100}-\x{11FF}\x{AC00}-\x{D7AF}]`)},
	{"Kana", regexp.MustCompile(`[\x{3040}-\x{309F}\x{30A0}-\x{30FF}]`)},
	{"Han", regexp.MustCompile(`[\x{4E00}-\x{9FFF}\x{3400}-\x{4DBF}]`)},
	{"Cyrillic", regexp.MustCompile(`[\x{0400}-\x{04FF}]`)},
	{"Greek", regexp.MustCompile(`[\x{0370}-\x{03FF}]`)},
	{"Latin", regexp.MustCompile(`[A-Za-z\x{00C0}-\x{024F}\x{1E00}-\x{1EFF}]`)},
}

// latinPattern is the Latin entry above, kept separate for the hot path.
var latinPattern = regexp.MustCompile(`[A-Za-z\x{00C0}-\x{024F}\x{1E00}-\x{1EFF}]`)

// legacyFontPattern matches the signature of legacy non-Unicode font text:
// private-use-area code points, where pre-Unicode Indic fonts mapped their
// glyphs.
var legacyFontPattern = regexp.MustCompile(`[\x{E000}-\x{F8FF}]`)

// emojiPattern covers the common emoji and symbol blocks.
var emojiPattern = regexp.MustCompile(`[\x{1F300}-\x{1FAFF}\x{2600}-\x{27BF}\x{1F000}-\x{1F2FF}\x{FE0F}]`)

// detectScripts returns every script whose block matches the text, in table
// order. The first entry is the primary script.
func detectScripts(text string) []string {
	var matched []string
	for _, sr := range scriptRanges {
		if sr.pattern.MatchString(text) {
			matched = append(matched, sr.name)
		}
	}
	return matched
}

// hasNativeScript reports whether the text contains any non-Latin script
// the table knows.
func hasNativeScript(scripts []string) bool {
	for _, s := range scripts {
		if s != "Latin" {
			return true
		}
	}
	return false
}
