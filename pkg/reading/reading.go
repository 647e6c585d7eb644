package reading

import (
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// Token is one analyzed unit of a Japanese translation.
type Token struct {
	Surface string // text as written (e.g. "残し")
	Reading string // katakana reading, empty when the dictionary has none
}

// Annotator produces kana readings for Japanese text.
type Annotator struct {
	t *tokenizer.Tokenizer
}

// NewAnnotator creates an annotator backed by the IPA dictionary.
func NewAnnotator() (*Annotator, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Annotator{t: t}, nil
}

// Tokens splits text into tokens with their readings.
func (a *Annotator) Tokens(text string) []Token {
	var result []Token
	for _, tok := range a.t.Tokenize(text) {
		if tok.Class == tokenizer.DUMMY {
			continue
		}
		if strings.TrimSpace(tok.Surface) == "" {
			continue
		}

		// IPA features: 0 POS, 1-3 sub-POS, 4 conj. type, 5 conj. form,
		// 6 base form, 7 reading, 8 pronunciation.
		features := tok.Features()
		reading := ""
		if len(features) > 7 && features[7] != "*" {
			reading = features[7]
		}
		result = append(result, Token{Surface: tok.Surface, Reading: reading})
	}
	return result
}

// Reading returns the hiragana reading of text. Tokens without a dictionary
// reading (Latin words such as "PR", punctuation) are kept as written.
func (a *Annotator) Reading(text string) string {
	var b strings.Builder
	for _, tok := range a.Tokens(text) {
		if tok.Reading == "" {
			b.WriteString(tok.Surface)
			continue
		}
		b.WriteString(ToHiragana(tok.Reading))
	}
	return b.String()
}

// ToHiragana converts Katakana to Hiragana.
func ToHiragana(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if r >= 0x30A1 && r <= 0x30F6 {
			runes[i] = r - 0x60
		}
	}
	return string(runes)
}
