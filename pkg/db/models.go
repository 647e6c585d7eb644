package db

// Phrase is a catalog row joined with its translations.
type Phrase struct {
	ID           string
	English      string
	Context      string
	Difficulty   string
	Category     string
	Position     int
	Translations map[string]Translation
}

// Translation is one language rendering of a phrase.
type Translation struct {
	Text string
	// Reading is the hiragana reading, only set for Japanese.
	Reading string
}
