package domain

// Script classifies the writing system a language is natively rendered in.
// Languages written with the Latin alphabet (English, Spanish, Vietnamese, ...)
// are ScriptLatin; everything else (Devanagari, Telugu, Arabic, Han, ...) is
// ScriptNative and carries its concrete script in Language.ScriptName.
type Script string

const (
	ScriptLatin  Script = "latin"
	ScriptNative Script = "native"
)

// LanguageRecord is the raw seed row the registry is built from.
type LanguageRecord struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"native_name"`
	Script     Script `json:"script"`
	ScriptName string `json:"script_name"`
	RTL        bool   `json:"rtl"`
}

// Language is a registered language. Immutable once the registry is built.
type Language struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"native_name"`
	Script     Script `json:"script"`
	ScriptName string `json:"script_name"`
	RTL        bool   `json:"rtl"`
}

// IsEnglish reports whether this language is the pivot language.
func (l *Language) IsEnglish() bool {
	return l != nil && l.Code == "en"
}

// IsLatinScript reports whether the language is natively written in Latin script.
func (l *Language) IsLatinScript() bool {
	return l != nil && l.Script == ScriptLatin
}
