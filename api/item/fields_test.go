package item

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty entries dropped", "ML, , NLP", []string{"ML", "NLP"}},
		{"duplicates preserved in order", "a, b, b", []string{"a", "b", "b"}},
		{"whitespace trimmed", "  deep learning ,vision ", []string{"deep learning", "vision"}},
		{"empty string", "", []string{}},
		{"only separators", ", ,,", []string{}},
		{"single tag", "Go", []string{"Go"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTags(tt.raw))
		})
	}
}

func TestParseLinks(t *testing.T) {
	links, err := ParseLinks(`[{"label":"Paper","url":"https://example.org/p.pdf"},{"label":"Code","url":"https://example.org/repo"}]`)
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, "Paper", links[0].Label)
	assert.Equal(t, "https://example.org/repo", links[1].URL)
}

func TestParseLinks_Empty(t *testing.T) {
	links, err := ParseLinks("")
	require.NoError(t, err)
	assert.Empty(t, links)
}

func TestParseLinks_Invalid(t *testing.T) {
	_, err := ParseLinks("{not json")
	assert.Error(t, err)
}

func TestParseYear(t *testing.T) {
	y, err := ParseYear("2024")
	require.NoError(t, err)
	require.NotNil(t, y)
	assert.Equal(t, 2024, *y)

	y, err = ParseYear("")
	require.NoError(t, err)
	assert.Nil(t, y)

	y, err = ParseYear("  ")
	require.NoError(t, err)
	assert.Nil(t, y)

	_, err = ParseYear("twenty")
	assert.Error(t, err)
}
