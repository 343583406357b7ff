package view

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderShellStampsNonce(t *testing.T) {
	html, err := RenderShell("a.json", "pane://editor.js")
	require.NoError(t, err)

	nonce := extractNonce(t, html)
	assert.NotEmpty(t, nonce)
	assert.Contains(t, html, `script-src 'nonce-`+nonce+`'`)
	assert.Contains(t, html, `<script nonce="`+nonce+`"`)
	assert.Contains(t, html, "<title>a.json</title>")
}

func TestRenderShellNoncesAreUnique(t *testing.T) {
	first, err := RenderShell("a.json", "pane://editor.js")
	require.NoError(t, err)
	second, err := RenderShell("a.json", "pane://editor.js")
	require.NoError(t, err)

	assert.NotEqual(t, extractNonce(t, first), extractNonce(t, second))
}

func TestRenderShellEscapesTitle(t *testing.T) {
	html, err := RenderShell(`<script>alert(1)</script>`, "pane://editor.js")
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>alert(1)</script>")
}

func extractNonce(t *testing.T, html string) string {
	t.Helper()
	const marker = "'nonce-"
	start := strings.Index(html, marker)
	require.NotEqual(t, -1, start)
	rest := html[start+len(marker):]
	end := strings.Index(rest, "'")
	require.NotEqual(t, -1, end)
	return rest[:end]
}
