package web

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMarkdown_Basic(t *testing.T) {
	html, err := RenderMarkdown("This is **bold** and *italic*.")
	require.NoError(t, err)

	s := string(html)
	assert.Contains(t, s, "<strong>bold</strong>")
	assert.Contains(t, s, "<em>italic</em>")
}

func TestRenderMarkdown_EscapesRawHTML(t *testing.T) {
	html, err := RenderMarkdown(`hello <script>alert("x")</script>`)
	require.NoError(t, err)

	assert.NotContains(t, string(html), "<script>")
}

func TestRenderMarkdown_Lists(t *testing.T) {
	html, err := RenderMarkdown("- one\n- two\n")
	require.NoError(t, err)

	s := string(html)
	assert.Contains(t, s, "<ul>")
	assert.Equal(t, 2, strings.Count(s, "<li>"))
}

func TestRenderMarkdown_Pure(t *testing.T) {
	a, err := RenderMarkdown("# Heading")
	require.NoError(t, err)
	b, err := RenderMarkdown("# Heading")
	require.NoError(t, err)

	assert.Equal(t, a, b)
}
