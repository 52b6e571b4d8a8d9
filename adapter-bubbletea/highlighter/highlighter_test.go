package highlighter

import (
	"strings"
	"testing"

	"github.com/alecthomas/chroma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func joinTokens(tokens []chroma.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Value)
	}
	return b.String()
}

func TestTokens_CoverTheLine(t *testing.T) {
	h := New("go", "monokai")

	for _, line := range []string{"x := 1", "func main() {}", "// äö comment", "   "} {
		tokens := h.Tokens(line)

		assert.Equal(t, line, joinTokens(tokens), "line %q", line)
	}
}

func TestTokens_Empty(t *testing.T) {
	h := New("go", "monokai")

	assert.Empty(t, h.Tokens(""))
	assert.Empty(t, h.Styles(""))
}

func TestTokens_UnknownLanguageFallsBack(t *testing.T) {
	h := New("no-such-language", "no-such-theme")

	assert.Equal(t, "plain text", joinTokens(h.Tokens("plain text")))
}

func TestTokens_Cached(t *testing.T) {
	h := New("go", "monokai")

	first := h.Tokens("var a = 1")
	second := h.Tokens("var a = 1")
	require.NotEmpty(t, first)

	assert.Same(t, &first[0], &second[0])
}

func TestStyles_OnePerRune(t *testing.T) {
	h := New("go", "monokai")

	assert.Len(t, h.Styles("ä := 1"), 6)
}

func TestTokenPositions(t *testing.T) {
	tokens := []chroma.Token{
		{Type: chroma.Keyword, Value: "var"},
		{Type: chroma.Text, Value: " "},
		{Type: chroma.Name, Value: "äb"},
	}

	positions := GetTokenPositions(tokens)

	require.Len(t, positions, 3)
	assert.Equal(t, 0, positions[0].StartCol)
	assert.Equal(t, 3, positions[0].EndCol)
	assert.Equal(t, 4, positions[2].StartCol)
	assert.Equal(t, 6, positions[2].EndCol)

	tok, ok := FindTokenAtPosition(positions, 5)
	require.True(t, ok)
	assert.Equal(t, "äb", tok.Value)

	_, ok = FindTokenAtPosition(positions, 6)
	assert.False(t, ok)
}
