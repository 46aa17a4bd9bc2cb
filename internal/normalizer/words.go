package normalizer

// commonEnglishWords is a small closed-class word list (articles, pronouns,
// prepositions, common greetings). The fraction of message tokens found here
// separates plain English from romanized native text without any dictionary.
var commonEnglishWords = map[string]bool{
	"the": true, "a": true, "an": true,
	"i": true, "you": true, "he": true, "she": true, "it": true,
	"we": true, "they": true, "me": true, "my": true, "your": true,
	"his": true, "her": true, "our": true, "their": true, "this": true,
	"that": true, "these": true, "those": true,
	"is": true, "am": true, "are": true, "was": true, "were": true,
	"be": true, "been": true, "do": true, "did": true, "does": true,
	"have": true, "has": true, "had": true, "will": true, "would": true,
	"can": true, "could": true, "should": true, "shall": true, "may": true,
	"to": true, "of": true, "in": true, "on": true, "at": true,
	"for": true, "with": true, "from": true, "by": true, "about": true,
	"and": true, "or": true, "but": true, "not": true, "no": true,
	"yes": true, "if": true, "so": true, "as": true,
	"what": true, "when": true, "where": true, "why": true, "who": true,
	"how": true, "which": true,
	"hi": true, "hello": true, "hey": true, "bye": true, "goodbye": true,
	"please": true, "thanks": true, "thank": true, "sorry": true,
	"good": true, "morning": true, "night": true, "evening": true,
	"ok": true, "okay": true, "fine": true, "sure": true,
	"there": true, "here": true, "now": true, "then": true,
	"up": true, "out": true, "all": true, "some": true, "any": true,
	"going": true, "come": true, "know": true, "see": true, "get": true,
	"love": true, "want": true, "need": true, "like": true,
	"today": true, "tomorrow": true, "yesterday": true,
}

// chatSlang is Latin chat shorthand. A message made mostly of these is
// classified as abbreviated slang rather than romanized native text.
var chatSlang = map[string]bool{
	"brb": true, "gm": true, "gn": true, "gtg": true, "g2g": true,
	"lol": true, "lmao": true, "rofl": true, "omg": true, "omw": true,
	"btw": true, "idk": true, "idc": true, "tbh": true, "imo": true,
	"imho": true, "thx": true, "ty": true, "tysm": true, "pls": true,
	"plz": true, "np": true, "nvm": true, "wbu": true, "hbu": true,
	"u": true, "r": true, "ur": true, "k": true, "kk": true,
	"gg": true, "wp": true, "afk": true, "asap": true, "fyi": true,
	"hbd": true, "wru": true, "wya": true, "smh": true, "ikr": true,
	"bro": true, "bruh": true, "dude": true, "fam": true, "sis": true,
}

// englishLikeCount counts tokens recognizable as English: closed-class
// words plus chat shorthand. Used to spot word-level code-mixing in
// Latin-only text.
func englishLikeCount(tokens []string) int {
	found := 0
	for _, tok := range tokens {
		if commonEnglishWords[tok] || chatSlang[tok] {
			found++
		}
	}
	return found
}

// commonWordRatio returns the fraction of tokens found in the closed-class
// list. Tokens are lowercased and stripped of trailing punctuation.
func commonWordRatio(tokens []string) float64 {
	if len(tokens) == 0 {
		return 0
	}
	found := 0
	for _, tok := range tokens {
		if commonEnglishWords[tok] {
			found++
		}
	}
	return float64(found) / float64(len(tokens))
}

// slangRatio returns the fraction of tokens found in the chat slang list.
func slangRatio(tokens []string) float64 {
	if len(tokens) == 0 {
		return 0
	}
	found := 0
	for _, tok := range tokens {
		if chatSlang[tok] {
			found++
		}
	}
	return float64(found) / float64(len(tokens))
}
