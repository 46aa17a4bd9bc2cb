package corrector

import "strings"

// substitution is a single phonetic rewrite rule.
type substitution struct {
	from, to string
}

// universalRules fold spelling variants of the same sound regardless of
// language. Applied after the per-language rules.
var universalRules = []substitution{
	{"ph", "f"},
	{"ck", "k"},
	{"gh", "g"},
	{"kh", "k"},
	{"q", "k"},
	{"z", "s"},
	{"w", "v"},
}

// languageRules are optional per-language overrides applied before the
// universal rules. Mostly vowel-length collapsing and consonant-cluster
// simplification for Indic romanization.
var languageRules = map[string][]substitution{
	"telugu": {
		{"aa", "a"}, {"ee", "i"}, {"ii", "i"}, {"oo", "u"}, {"uu", "u"},
		{"th", "t"}, {"dh", "d"}, {"bh", "b"}, {"chh", "ch"},
	},
	"hindi": {
		{"aa", "a"}, {"ee", "i"}, {"ii", "i"}, {"oo", "u"}, {"uu", "u"},
		{"th", "t"}, {"dh", "d"}, {"bh", "b"}, {"jh", "j"},
	},
	"tamil": {
		{"aa", "a"}, {"ee", "i"}, {"oo", "u"},
		{"zh", "l"}, {"th", "t"},
	},
	"arabic": {
		{"aa", "a"}, {"ee", "i"}, {"oo", "u"},
		{"dj", "j"}, {"gh", "g"},
	},
	"korean": {
		{"eo", "o"}, {"eu", "u"}, {"ae", "e"},
	},
}

// normalizePhonetic reduces a romanized word to a canonical phonetic form
// for fuzzy matching. Never used as output text.
func normalizePhonetic(word, language string) string {
	w := strings.ToLower(word)

	for _, rule := range languageRules[strings.ToLower(language)] {
		w = strings.ReplaceAll(w, rule.from, rule.to)
	}
	for _, rule := range universalRules {
		w = strings.ReplaceAll(w, rule.from, rule.to)
	}

	return collapseRepeats(w)
}

// collapseRepeats reduces runs of 3+ identical characters to 2
// ("hellooooo" matching "helloo").
func collapseRepeats(w string) string {
	var b strings.Builder
	b.Grow(len(w))
	var last1, last2 rune = -1, -1
	for _, r := range w {
		if r == last1 && r == last2 {
			continue
		}
		b.WriteRune(r)
		last2 = last1
		last1 = r
	}
	return b.String()
}
