package phrase

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguageCodes(t *testing.T) {
	want := []string{"pt-BR", "es", "fr", "de", "it", "ja", "ko", "zh-Hans", "hi", "tr"}
	assert.Equal(t, want, LanguageCodes())
	for _, c := range want {
		assert.True(t, IsSupported(c), c)
	}
	assert.False(t, IsSupported("en"))
	assert.False(t, IsSupported("zh"))
}

func TestEnumValidity(t *testing.T) {
	tests := []struct {
		in   string
		cat  bool
		diff bool
	}{
		{"slack", true, false},
		{"email", true, false},
		{"codeReview", true, false},
		{"easy", false, true},
		{"hard", false, true},
		{"Slack", false, false},
		{"", false, false},
	}
	for _, tt := range tests {
		if got := Category(tt.in).Valid(); got != tt.cat {
			t.Errorf("Category(%q).Valid() = %v; want %v", tt.in, got, tt.cat)
		}
		if got := Difficulty(tt.in).Valid(); got != tt.diff {
			t.Errorf("Difficulty(%q).Valid() = %v; want %v", tt.in, got, tt.diff)
		}
	}
}

func TestRecordJSONFieldNames(t *testing.T) {
	r := Record{
		ID:           "slack_002",
		English:      "Can you take a look at my PR?",
		Context:      "Asking a teammate to review your pull request",
		Translations: map[string]string{"ja": "私のPRを見てもらえますか？"},
		Difficulty:   Easy,
		Category:     Slack,
	}
	b, err := json.Marshal(r)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.Len(t, raw, 6)
	for _, k := range []string{"id", "english", "context", "translations", "difficulty", "category"} {
		assert.Contains(t, raw, k)
	}
}
