package phrase

// Language describes one supported translation target.
type Language struct {
	Code        string // BCP 47 code used as the translations key
	EnglishName string
	NativeName  string
}

var languages = []Language{
	{Code: "pt-BR", EnglishName: "Portuguese (Brazil)", NativeName: "Português (Brasil)"},
	{Code: "es", EnglishName: "Spanish", NativeName: "Español"},
	{Code: "fr", EnglishName: "French", NativeName: "Français"},
	{Code: "de", EnglishName: "German", NativeName: "Deutsch"},
	{Code: "it", EnglishName: "Italian", NativeName: "Italiano"},
	{Code: "ja", EnglishName: "Japanese", NativeName: "日本語"},
	{Code: "ko", EnglishName: "Korean", NativeName: "한국어"},
	{Code: "zh-Hans", EnglishName: "Chinese (Simplified)", NativeName: "简体中文"},
	{Code: "hi", EnglishName: "Hindi", NativeName: "हिन्दी"},
	{Code: "tr", EnglishName: "Turkish", NativeName: "Türkçe"},
}

// Languages returns the supported languages in canonical order.
func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// LanguageCodes returns the supported language codes in canonical order.
func LanguageCodes() []string {
	codes := make([]string, len(languages))
	for i, l := range languages {
		codes[i] = l.Code
	}
	return codes
}

// IsSupported reports whether code is a supported language code.
func IsSupported(code string) bool {
	for _, l := range languages {
		if l.Code == code {
			return true
		}
	}
	return false
}
