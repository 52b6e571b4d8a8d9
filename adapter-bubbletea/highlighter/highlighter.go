package highlighter

import (
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// Highlighter handles syntax highlighting for a single line of text.
type Highlighter struct {
	lexer      chroma.Lexer
	style      *chroma.Style
	line       string
	tokens     []chroma.Token
	cached     bool
	styleCache map[chroma.TokenType]lipgloss.Style
	cacheMutex sync.RWMutex
}

// TokenPosition represents a token's position in the line, in runes.
type TokenPosition struct {
	Token    chroma.Token
	StartCol int
	EndCol   int
}

// New creates a new syntax highlighter
func New(language string, theme string) *Highlighter {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}

	lexer = chroma.Coalesce(lexer)

	style := styles.Get(theme)

	return &Highlighter{
		lexer:      lexer,
		style:      style,
		styleCache: make(map[chroma.TokenType]lipgloss.Style),
	}
}

// Tokens tokenizes line. The result for the last line is cached, so calling
// it on every render only tokenizes after an edit.
func (sh *Highlighter) Tokens(line string) []chroma.Token {
	sh.cacheMutex.RLock()
	if sh.cached && sh.line == line {
		tokens := sh.tokens
		sh.cacheMutex.RUnlock()
		return tokens
	}
	sh.cacheMutex.RUnlock()

	tokens := sh.tokenize(line)

	sh.cacheMutex.Lock()
	defer sh.cacheMutex.Unlock()
	sh.line = line
	sh.tokens = tokens
	sh.cached = true

	return tokens
}

func (sh *Highlighter) tokenize(line string) []chroma.Token {
	if line == "" {
		return nil
	}

	iterator, err := sh.lexer.Tokenise(nil, line)
	if err != nil {
		return []chroma.Token{{Type: chroma.Text, Value: line}}
	}

	// Lexers may append a newline; everything after the first one is dropped.
	var tokens []chroma.Token
	for _, token := range iterator.Tokens() {
		value, _, found := strings.Cut(token.Value, "\n")
		if value != "" {
			tokens = append(tokens, chroma.Token{Type: token.Type, Value: value})
		}
		if found {
			break
		}
	}

	return tokens
}

// GetStyleForToken converts a Chroma token type to a lipgloss style.
func (sh *Highlighter) GetStyleForToken(tokenType chroma.TokenType) lipgloss.Style {
	sh.cacheMutex.RLock()
	style, ok := sh.styleCache[tokenType]
	sh.cacheMutex.RUnlock()
	if ok {
		return style
	}

	entry := sh.style.Get(tokenType)

	style = lipgloss.NewStyle()
	if entry.Colour.IsSet() {
		style = style.Foreground(lipgloss.Color(entry.Colour.String()))
	}

	if entry.Bold == chroma.Yes {
		style = style.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		style = style.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		style = style.Underline(true)
	}

	sh.cacheMutex.Lock()
	sh.styleCache[tokenType] = style
	sh.cacheMutex.Unlock()

	return style
}

// Styles returns one style per rune of line.
func (sh *Highlighter) Styles(line string) []lipgloss.Style {
	out := make([]lipgloss.Style, len([]rune(line)))
	for i := range out {
		out[i] = lipgloss.NewStyle()
	}

	for _, pos := range GetTokenPositions(sh.Tokens(line)) {
		style := sh.GetStyleForToken(pos.Token.Type)
		for col := pos.StartCol; col < pos.EndCol && col < len(out); col++ {
			out[col] = style
		}
	}

	return out
}

// GetTokenPositions converts tokens to positions in the line.
func GetTokenPositions(tokens []chroma.Token) []TokenPosition {
	positions := make([]TokenPosition, 0, len(tokens))
	currentCol := 0

	for _, token := range tokens {
		tokenLen := len([]rune(token.Value))

		positions = append(positions, TokenPosition{
			Token:    token,
			StartCol: currentCol,
			EndCol:   currentCol + tokenLen,
		})

		currentCol += tokenLen
	}

	return positions
}

// FindTokenAtPosition finds which token contains the given column position.
func FindTokenAtPosition(positions []TokenPosition, col int) (chroma.Token, bool) {
	for _, pos := range positions {
		if col >= pos.StartCol && col < pos.EndCol {
			return pos.Token, true
		}
	}
	return chroma.Token{}, false
}
