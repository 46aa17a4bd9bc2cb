package translit

import (
	"strings"
	"unicode"

	"go.uber.org/zap"

	"pivotchat-backend/pkg/logger"
)

// Transliterator converts Latin-transcribed text to a language's native
// script and back. A thin, replaceable adapter: transliteration is an
// enhancement, never a correctness requirement, so any failure (unsupported
// language, malformed input) falls back to returning the input unchanged.
type Transliterator struct{}

// NewTransliterator creates a transliterator over the built-in scheme tables.
func NewTransliterator() *Transliterator {
	return &Transliterator{}
}

// Supports reports whether the language has a transliteration scheme.
func (t *Transliterator) Supports(languageName string) bool {
	_, ok := schemeAliases[strings.ToLower(strings.TrimSpace(languageName))]
	return ok
}

// ToNativeScript renders romanized text in the language's native script.
// Unsupported languages and non-Latin input pass through unchanged.
func (t *Transliterator) ToNativeScript(latinText, languageName string) string {
	s := t.schemeFor(languageName)
	if s == nil || strings.TrimSpace(latinText) == "" {
		return latinText
	}

	words := strings.Fields(latinText)
	out := make([]string, len(words))
	for i, word := range words {
		out[i] = transliterateWord(word, s)
	}
	result := strings.Join(out, " ")

	logger.Debug("Forward transliteration",
		zap.String("language", languageName),
		zap.Int("input_len", len(latinText)),
	)
	return result
}

// ReverseToLatin romanizes native-script text. Characters outside the
// scheme (digits, punctuation, foreign letters) are copied through.
func (t *Transliterator) ReverseToLatin(nativeText, languageName string) string {
	key, ok := schemeAliases[strings.ToLower(strings.TrimSpace(languageName))]
	if !ok {
		return nativeText
	}
	rs := reverseSchemes[key]
	if rs == nil {
		return nativeText
	}

	if rs.abugida {
		return reverseAbugida(nativeText, rs)
	}
	return reverseAlphabetic(nativeText, rs)
}

func (t *Transliterator) schemeFor(languageName string) *scheme {
	key, ok := schemeAliases[strings.ToLower(strings.TrimSpace(languageName))]
	if !ok {
		return nil
	}
	return schemes[key]
}

// maxToken is the longest romanization token in any scheme ("shch").
const maxToken = 4

// transliterateWord converts one romanized word. Greedy longest-match over
// the scheme's tokens; unknown characters are copied through.
func transliterateWord(word string, s *scheme) string {
	lower := strings.ToLower(word)
	if !isASCIIWord(lower) {
		return word
	}

	var b strings.Builder
	runes := []rune(lower)
	i := 0
	prevConsonant := false

	for i < len(runes) {
		matched := false
		for l := maxToken; l >= 1 && !matched; l-- {
			if i+l > len(runes) {
				continue
			}
			tok := string(runes[i : i+l])

			if s.abugida {
				if glyph, ok := s.consonants[tok]; ok {
					if prevConsonant {
						// Consonant cluster: suppress the previous
						// inherent vowel.
						b.WriteString(s.virama)
					}
					b.WriteString(glyph)
					prevConsonant = true
					i += l
					matched = true
					continue
				}
				if prevConsonant {
					if tok == "a" {
						// Inherent vowel, no matra needed.
						prevConsonant = false
						i += l
						matched = true
						continue
					}
					if matra, ok := s.matras[tok]; ok {
						b.WriteString(matra)
						prevConsonant = false
						i += l
						matched = true
						continue
					}
				} else if glyph, ok := s.independents[tok]; ok {
					b.WriteString(glyph)
					i += l
					matched = true
					continue
				}
			} else {
				if glyph, ok := s.letters[tok]; ok {
					b.WriteString(glyph)
					i += l
					matched = true
					continue
				}
			}
		}
		if !matched {
			b.WriteRune(runes[i])
			prevConsonant = false
			i++
		}
	}

	return b.String()
}

// reverseAbugida romanizes an Indic-script word sequence, restoring the
// inherent 'a' after bare consonants.
func reverseAbugida(text string, rs *reverseScheme) string {
	var b strings.Builder
	runes := []rune(text)

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if latin, ok := rs.consonants[r]; ok {
			b.WriteString(latin)
			// Inherent vowel unless a matra or virama follows.
			next := rune(0)
			if i+1 < len(runes) {
				next = runes[i+1]
			}
			if next == rs.virama {
				i++ // consume the virama, no vowel
				continue
			}
			if _, isMatra := rs.matras[next]; !isMatra {
				b.WriteString("a")
			}
			continue
		}
		if latin, ok := rs.matras[r]; ok {
			b.WriteString(latin)
			continue
		}
		if latin, ok := rs.independents[r]; ok {
			b.WriteString(latin)
			continue
		}
		if r == rs.virama {
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}

// reverseAlphabetic romanizes alphabetic-script text glyph by glyph.
func reverseAlphabetic(text string, rs *reverseScheme) string {
	var b strings.Builder
	for _, r := range text {
		if latin, ok := rs.letters[r]; ok {
			b.WriteString(latin)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isASCIIWord(word string) bool {
	for _, r := range word {
		if r > unicode.MaxASCII {
			return false
		}
	}
	return true
}
