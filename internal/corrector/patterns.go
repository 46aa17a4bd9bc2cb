package corrector

// patternClass is a semantic class of short chat phrases with known
// phonetic spellings across languages. A noisy romanized word is pulled
// toward the nearest known spelling of any class; the catalog is small and
// fixed, which is what keeps the corrector dictionary-free.
type patternClass struct {
	name      string
	spellings []string
}

var patternCatalog = []patternClass{
	{
		name: "greeting",
		spellings: []string{
			"hello", "namaste", "namaskar", "namaskaram", "vanakkam",
			"salaam", "assalamualaikum", "sat sri akal", "adaab",
			"hola", "bonjour", "hallo", "ciao", "privet", "merhaba",
			"annyeong", "konnichiwa", "nihao", "selamat", "jambo",
		},
	},
	{
		name: "how-are-you",
		spellings: []string{
			"how are you", "baagunnava", "baagunnara", "kaise ho",
			"kaise hain", "kemcho", "kemon acho", "eppadi irukka",
			"hegiddira", "sukhamano", "como estas", "comment ca va",
			"wie gehts", "kak dela", "nasilsin", "apa kabar",
		},
	},
	{
		name: "thanks",
		spellings: []string{
			"thanks", "thank you", "dhanyavaad", "dhanyavaadalu",
			"shukriya", "nandri", "shukran", "gracias", "merci",
			"danke", "spasibo", "obrigado", "arigato", "kamsahamnida",
			"xiexie", "terima kasih", "asante",
		},
	},
	{
		name: "good",
		spellings: []string{
			"good", "accha", "bagundi", "nalla", "chala bagundi",
			"bahut accha", "bien", "bueno", "gut", "bene",
			"horosho", "khoob", "iyi", "bagus",
		},
	},
}

// patternFor returns the class name a known spelling belongs to, or "".
func patternFor(spelling string) string {
	for _, pc := range patternCatalog {
		for _, s := range pc.spellings {
			if s == spelling {
				return pc.name
			}
		}
	}
	return ""
}
