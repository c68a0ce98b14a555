package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokensEndsWith(t *testing.T) {
	var history Tokens
	history.Append(Token{Type: TokenKeyword, Text: "BEGIN"})
	history.Append(Token{Type: TokenSymbol, Text: "<"})
	history.Append(Token{Type: TokenComment, Text: "/* x */"})
	history.Append(Token{Type: TokenSymbol, Text: "("})
	history.Append(Token{Type: TokenKeyword, Text: "X", ParensDepth: 1})
	history.Append(Token{Type: TokenSymbol, Text: "<"})

	assert.True(t, history.EndsWith(0, "<"))
	assert.True(t, history.EndsWith(0, "(", "<"))
	assert.True(t, history.EndsWith(0, "BEGIN", "<", "(", "<"))
	assert.False(t, history.EndsWith(0, "<", "<"))
	assert.False(t, history.EndsWith(0, "END", "BEGIN", "<", "(", "<"))
	assert.True(t, history.EndsWith(1, "X"))
	assert.True(t, history.EndsWith(0))
}
