package translit

// scheme describes how one script maps to and from Latin romanization.
// Abugida schemes (the Indic scripts) carry independent vowels, dependent
// vowel matras and a virama; alphabetic schemes (Cyrillic, Arabic) are a
// flat letter map.
type scheme struct {
	abugida bool

	// abugida tables
	independents map[string]string // word-initial vowels
	matras       map[string]string // vowel signs following a consonant
	consonants   map[string]string
	virama       string

	// alphabetic table
	letters map[string]string
}

// schemeAliases maps registry language names to their scheme key. Languages
// missing here are unsupported: the transliterator passes their text through
// unchanged.
var schemeAliases = map[string]string{
	"telugu":    "telugu",
	"hindi":     "devanagari",
	"marathi":   "devanagari",
	"nepali":    "devanagari",
	"tamil":     "tamil",
	"russian":   "cyrillic",
	"ukrainian": "cyrillic",
	"bulgarian": "cyrillic",
	"serbian":   "cyrillic",
	"arabic":    "arabic",
	"urdu":      "arabic",
}

var schemes = map[string]*scheme{
	"telugu": {
		abugida: true,
		independents: map[string]string{
			"a": "అ", "aa": "ఆ", "i": "ఇ", "ii": "ఈ", "ee": "ఈ",
			"u": "ఉ", "uu": "ఊ", "e": "ఎ", "ai": "ఐ", "o": "ఒ",
			"oo": "ఓ", "au": "ఔ",
		},
		matras: map[string]string{
			"aa": "ా", "i": "ి", "ii": "ీ", "ee": "ీ", "u": "ు",
			"uu": "ూ", "e": "ె", "ai": "ై", "o": "ొ", "oo": "ో",
			"au": "ౌ",
		},
		consonants: map[string]string{
			"k": "క", "kh": "ఖ", "g": "గ", "gh": "ఘ",
			"ch": "చ", "chh": "ఛ", "j": "జ", "jh": "ఝ",
			"t": "త", "th": "థ", "d": "ద", "dh": "ధ", "n": "న",
			"p": "ప", "ph": "ఫ", "b": "బ", "bh": "భ", "m": "మ",
			"y": "య", "r": "ర", "l": "ల", "v": "వ", "w": "వ",
			"s": "స", "sh": "శ", "h": "హ",
		},
		virama: "్",
	},
	"devanagari": {
		abugida: true,
		independents: map[string]string{
			"a": "अ", "aa": "आ", "i": "इ", "ii": "ई", "ee": "ई",
			"u": "उ", "uu": "ऊ", "e": "ए", "ai": "ऐ", "o": "ओ",
			"oo": "ओ", "au": "औ",
		},
		matras: map[string]string{
			"aa": "ा", "i": "ि", "ii": "ी", "ee": "ी", "u": "ु",
			"uu": "ू", "e": "े", "ai": "ै", "o": "ो", "oo": "ो",
			"au": "ौ",
		},
		consonants: map[string]string{
			"k": "क", "kh": "ख", "g": "ग", "gh": "घ",
			"ch": "च", "chh": "छ", "j": "ज", "jh": "झ",
			"t": "त", "th": "थ", "d": "द", "dh": "ध", "n": "न",
			"p": "प", "ph": "फ", "b": "ब", "bh": "भ", "m": "म",
			"y": "य", "r": "र", "l": "ल", "v": "व", "w": "व",
			"s": "स", "sh": "श", "h": "ह",
		},
		virama: "्",
	},
	"tamil": {
		abugida: true,
		independents: map[string]string{
			"a": "அ", "aa": "ஆ", "i": "இ", "ii": "ஈ", "ee": "ஈ",
			"u": "உ", "uu": "ஊ", "e": "எ", "ai": "ஐ", "o": "ஒ",
			"oo": "ஓ", "au": "ஔ",
		},
		matras: map[string]string{
			"aa": "ா", "i": "ி", "ii": "ீ", "ee": "ீ", "u": "ு",
			"uu": "ூ", "e": "ெ", "ai": "ை", "o": "ொ", "oo": "ோ",
			"au": "ௌ",
		},
		consonants: map[string]string{
			"k": "க", "g": "க", "ch": "ச", "s": "ஸ", "j": "ஜ",
			"t": "த", "th": "த", "d": "த", "dh": "த", "n": "ந",
			"p": "ப", "b": "ப", "m": "ம", "y": "ய", "r": "ர",
			"l": "ல", "v": "வ", "w": "வ", "zh": "ழ", "sh": "ஷ",
			"h": "ஹ",
		},
		virama: "்",
	},
	"cyrillic": {
		letters: map[string]string{
			"shch": "щ", "sh": "ш", "ch": "ч", "zh": "ж", "ts": "ц",
			"kh": "х", "yu": "ю", "ya": "я", "yo": "ё",
			"a": "а", "b": "б", "v": "в", "g": "г", "d": "д",
			"e": "е", "z": "з", "i": "и", "y": "й", "k": "к",
			"l": "л", "m": "м", "n": "н", "o": "о", "p": "п",
			"r": "р", "s": "с", "t": "т", "u": "у", "f": "ф",
			"h": "х", "w": "в", "x": "кс", "j": "дж", "c": "к",
			"q": "к",
		},
	},
	"arabic": {
		letters: map[string]string{
			"th": "ث", "kh": "خ", "dh": "ذ", "sh": "ش", "gh": "غ",
			"a": "ا", "b": "ب", "t": "ت", "j": "ج", "h": "ه",
			"d": "د", "r": "ر", "z": "ز", "s": "س", "f": "ف",
			"q": "ق", "k": "ك", "l": "ل", "m": "م", "n": "ن",
			"w": "و", "y": "ي", "e": "ي", "i": "ي", "u": "و",
			"o": "و", "p": "ب", "v": "ف", "g": "ج", "c": "ك",
			"x": "كس",
		},
	},
}

// reverse lookup tables built once at package init: native glyph to its
// shortest romanization.
type reverseScheme struct {
	abugida      bool
	independents map[rune]string
	matras       map[rune]string
	consonants   map[rune]string
	letters      map[rune]string
	virama       rune
}

var reverseSchemes = map[string]*reverseScheme{}

func init() {
	for key, s := range schemes {
		rs := &reverseScheme{
			abugida:      s.abugida,
			independents: map[rune]string{},
			matras:       map[rune]string{},
			consonants:   map[rune]string{},
			letters:      map[rune]string{},
		}
		invert(s.independents, rs.independents)
		invert(s.matras, rs.matras)
		invert(s.consonants, rs.consonants)
		invert(s.letters, rs.letters)
		if s.virama != "" {
			rs.virama = []rune(s.virama)[0]
		}
		reverseSchemes[key] = rs
	}
}

// invert fills a rune-keyed reverse map, preferring the shortest (and then
// lexicographically first) romanization when several collide.
func invert(forward map[string]string, out map[rune]string) {
	for latin, native := range forward {
		runes := []rune(native)
		if len(runes) != 1 {
			continue
		}
		r := runes[0]
		if existing, ok := out[r]; ok {
			if len(latin) > len(existing) || (len(latin) == len(existing) && latin >= existing) {
				continue
			}
		}
		out[r] = latin
	}
}
