package registry

import "pivotchat-backend/internal/domain"

// DefaultLanguages is the static seed table the registry is built from.
// Codes are ISO-639-1 where one exists, ISO-639-2/3 otherwise. The table is
// ordered roughly by speaker population; lookup never depends on order
// except for the substring fallback, which takes the first match.
var DefaultLanguages = []domain.LanguageRecord{
	{Code: "en", Name: "English", NativeName: "English", Script: domain.ScriptLatin, ScriptName: "Latin"},
	{Code: "zh", Name: "Chinese", NativeName: "中文", Script: domain.ScriptNative, ScriptName: "Han"},
	{Code: "hi", Name: "Hindi", NativeName: "हिन्दी", Script: domain.ScriptNative, ScriptName: "Devanagari"},
	{Code: "es", Name: "Spanish", NativeName: "Español", Script: domain.ScriptLatin, ScriptName: "Latin"},
	{Code: "fr", Name: "French", NativeName: "Français", Script: domain.ScriptLatin, ScriptName: "Latin"},
	{Code: "ar", Name: "Arabic", NativeName: "العربية", Script: domain.ScriptNative, ScriptName: "Arabic", RTL: true},
	{Code: "bn", Name: "Bengali", NativeName: "বাংলা", Script: domain.ScriptNative, ScriptName: "Bengali"},
	{Code: "ru", Name: "Russian", NativeName: "Русский", Script: domain.ScriptNative, ScriptName: "Cyrillic"},
	{Code: "pt", Name: "Portuguese", NativeName: "Português", Script: domain.ScriptLatin, ScriptName: "Latin"},
	{Code: "ur", Name: "Urdu", NativeName: "اردو", Script: domain.ScriptNative, ScriptName: "Arabic", RTL: true},
	{Code: "id", Name: "Indonesian", NativeName: "Bahasa Indonesia", Script: domain.ScriptLatin, ScriptName: "Latin"},
	{Code: "de", Name: "German", NativeName: "Deutsch", Script: domain.ScriptLatin, ScriptName: "Latin"},
	{Code: "ja", Name: "Japanese", NativeName: "日本語", Script: domain.ScriptNative, ScriptName: "Han"},
	{Code: "te", Name: "Telugu", NativeName: "తెలుగు", Script: domain.ScriptNative, ScriptName: "Telugu"},
	{Code: "mr", Name: "Marathi", NativeName: "मराठी", Script: domain.ScriptNative, ScriptName: "Devanagari"},
	{Code: "ta", Name: "Tamil", NativeName: "தமிழ்", Script: domain.ScriptNative, ScriptName: "Tamil"},
	{Code: "tr", Name: "Turkish", NativeName: "Türkçe", Script: domain.ScriptLatin, ScriptName: "Latin"},
	{Code: "vi", Name: "Vietnamese", NativeName: "Tiếng Việt", Script: domain.ScriptLatin, ScriptName: "Latin"},
	{Code: "ko", Name: "Korean", NativeName: "한국어", Script: domain.ScriptNative, ScriptName: "Hangul"},
	{Code: "it", Name: "Italian", NativeName: "Italiano", Script: domain.ScriptLatin, ScriptName: "Latin"},
	{Code: "th", Name: "Thai", NativeName: "ไทย", Script: domain.ScriptNative, ScriptName: "Thai"},
	{Code: "gu", Name: "Gujarati", NativeName: "ગુજરાતી", Script: domain.ScriptNative, ScriptName: "Gujarati"},
	{Code: "kn", Name: "Kannada", NativeName: "ಕನ್ನಡ", Script: domain.ScriptNative, ScriptName: "Kannada"},
	{Code: "fa", Name: "Persian", NativeName: "فارسی", Script: domain.ScriptNative, ScriptName: "Arabic", RTL: true},
	{Code: "pl", Name: "Polish", NativeName: "Polski", Script: domain.ScriptLatin, ScriptName: "Latin"},
	{Code: "uk", Name: "Ukrainian", NativeName: "Українська", Script: domain.ScriptNative, ScriptName: "Cyrillic"},
	{Code: "ml", Name: "Malayalam", NativeName: "മലയാളം", Script: domain.ScriptNative, ScriptName: "Malayalam"},
	{Code: "pa", Name: "Punjabi", NativeName: "ਪੰਜਾਬੀ", Script: domain.ScriptNative, ScriptName: "Gurmukhi"},
	{Code: "or", Name: "Odia", NativeName: "ଓଡ଼ିଆ", Script: domain.ScriptNative, ScriptName: "Odia"},
	{Code: "my", Name: "Burmese", NativeName: "မြန်မာ", Script: domain.ScriptNative, ScriptName: "Myanmar"},
	{Code: "nl", Name: "Dutch", NativeName: "Nederlands", Script: domain.ScriptLatin, ScriptName: "Latin"},
	{Code: "ro", Name: "Romanian", NativeName: "Română", Script: domain.ScriptLatin, ScriptName: "Latin"},
	{Code: "el", Name: "Greek", NativeName: "Ελληνικά", Script: domain.ScriptNative, ScriptName: "Greek"},
	{Code: "hu", Name: "Hungarian", NativeName: "Magyar", Script: domain.ScriptLatin, ScriptName: "Latin"},
	{Code: "cs", Name: "Czech", NativeName: "Čeština", Script: domain.ScriptLatin, ScriptName: "Latin"},
	{Code: "sv", Name: "Swedish", NativeName: "Svenska", Script: domain.ScriptLatin, ScriptName: "Latin"},
	{Code: "he", Name: "Hebrew", NativeName: "עברית", Script: domain.ScriptNative, ScriptName: "Hebrew", RTL: true},
	{Code: "da", Name: "Danish", NativeName: "Dansk", Script: domain.ScriptLatin, ScriptName: "Latin"},
	{Code: "fi", Name: "Finnish", NativeName: "Suomi", Script: domain.ScriptLatin, ScriptName: "Latin"},
	{Code: "no", Name: "Norwegian", NativeName: "Norsk", Script: domain.ScriptLatin, ScriptName: "Latin"},
	{Code: "sk", Name: "Slovak", NativeName: "Slovenčina", Script: domain.ScriptLatin, ScriptName: "Latin"},
	{Code: "hr", Name: "Croatian", NativeName: "Hrvatski", Script: domain.ScriptLatin, ScriptName: "Latin"},
	{Code: "sr", Name: "Serbian", NativeName: "Српски", Script: domain.ScriptNative, ScriptName: "Cyrillic"},
	{Code: "bg", Name: "Bulgarian", NativeName: "Български", Script: domain.ScriptNative, ScriptName: "Cyrillic"},
	{Code: "ms", Name: "Malay", NativeName: "Bahasa Melayu", Script: domain.ScriptLatin, ScriptName: "Latin"},
	{Code: "tl", Name: "Tagalog", NativeName: "Tagalog", Script: domain.ScriptLatin, ScriptName: "Latin"},
	{Code: "sw", Name: "Swahili", NativeName: "Kiswahili", Script: domain.ScriptLatin, ScriptName: "Latin"},
	{Code: "am", Name: "Amharic", NativeName: "አማርኛ", Script: domain.ScriptNative, ScriptName: "Ethiopic"},
	{Code: "ne", Name: "Nepali", NativeName: "नेपाली", Script: domain.ScriptNative, ScriptName: "Devanagari"},
	{Code: "si", Name: "Sinhala", NativeName: "සිංහල", Script: domain.ScriptNative, ScriptName: "Sinhala"},
	{Code: "km", Name: "Khmer", NativeName: "ខ្មែរ", Script: domain.ScriptNative, ScriptName: "Khmer"},
	{Code: "lo", Name: "Lao", NativeName: "ລາວ", Script: domain.ScriptNative, ScriptName: "Lao"},
	{Code: "ka", Name: "Georgian", NativeName: "ქართული", Script: domain.ScriptNative, ScriptName: "Georgian"},
	{Code: "hy", Name: "Armenian", NativeName: "Հայերեն", Script: domain.ScriptNative, ScriptName: "Armenian"},
	{Code: "az", Name: "Azerbaijani", NativeName: "Azərbaycan", Script: domain.ScriptLatin, ScriptName: "Latin"},
	{Code: "kk", Name: "Kazakh", NativeName: "Қазақ", Script: domain.ScriptNative, ScriptName: "Cyrillic"},
	{Code: "uz", Name: "Uzbek", NativeName: "Oʻzbek", Script: domain.ScriptLatin, ScriptName: "Latin"},
	{Code: "ps", Name: "Pashto", NativeName: "پښتو", Script: domain.ScriptNative, ScriptName: "Arabic", RTL: true},
	{Code: "sd", Name: "Sindhi", NativeName: "سنڌي", Script: domain.ScriptNative, ScriptName: "Arabic", RTL: true},
	{Code: "as", Name: "Assamese", NativeName: "অসমীয়া", Script: domain.ScriptNative, ScriptName: "Bengali"},
	{Code: "ha", Name: "Hausa", NativeName: "Hausa", Script: domain.ScriptLatin, ScriptName: "Latin"},
	{Code: "yo", Name: "Yoruba", NativeName: "Yorùbá", Script: domain.ScriptLatin, ScriptName: "Latin"},
	{Code: "ig", Name: "Igbo", NativeName: "Igbo", Script: domain.ScriptLatin, ScriptName: "Latin"},
	{Code: "zu", Name: "Zulu", NativeName: "isiZulu", Script: domain.ScriptLatin, ScriptName: "Latin"},
	{Code: "af", Name: "Afrikaans", NativeName: "Afrikaans", Script: domain.ScriptLatin, ScriptName: "Latin"},
	{Code: "so", Name: "Somali", NativeName: "Soomaali", Script: domain.ScriptLatin, ScriptName: "Latin"},
	{Code: "et", Name: "Estonian", NativeName: "Eesti", Script: domain.ScriptLatin, ScriptName: "Latin"},
	{Code: "lv", Name: "Latvian", NativeName: "Latviešu", Script: domain.ScriptLatin, ScriptName: "Latin"},
	{Code: "lt", Name: "Lithuanian", NativeName: "Lietuvių", Script: domain.ScriptLatin, ScriptName: "Latin"},
	{Code: "sl", Name: "Slovenian", NativeName: "Slovenščina", Script: domain.ScriptLatin, ScriptName: "Latin"},
	{Code: "sq", Name: "Albanian", NativeName: "Shqip", Script: domain.ScriptLatin, ScriptName: "Latin"},
	{Code: "mn", Name: "Mongolian", NativeName: "Монгол", Script: domain.ScriptNative, ScriptName: "Cyrillic"},
	{Code: "is", Name: "Icelandic", NativeName: "Íslenska", Script: domain.ScriptLatin, ScriptName: "Latin"},
	{Code: "ga", Name: "Irish", NativeName: "Gaeilge", Script: domain.ScriptLatin, ScriptName: "Latin"},
	{Code: "cy", Name: "Welsh", NativeName: "Cymraeg", Script: domain.ScriptLatin, ScriptName: "Latin"},
	{Code: "ht", Name: "Haitian Creole", NativeName: "Kreyòl Ayisyen", Script: domain.ScriptLatin, ScriptName: "Latin"},
}
