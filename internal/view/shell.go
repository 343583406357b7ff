package view

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"html/template"
)

// shellTemplate is the bootstrap HTML for a rich editor pane. Scripts run
// only when stamped with the per-load CSP nonce.
const shellTemplate = `<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<meta http-equiv="Content-Security-Policy"
		content="default-src 'none'; style-src 'nonce-{{.Nonce}}'; script-src 'nonce-{{.Nonce}}';">
	<title>{{.Title}}</title>
	<style nonce="{{.Nonce}}">
		html, body, #editor { height: 100%; margin: 0; padding: 0; }
	</style>
</head>
<body>
	<div id="editor"></div>
	<script nonce="{{.Nonce}}" src="{{.ScriptURI}}"></script>
</body>
</html>
`

var shellTmpl = template.Must(template.New("shell").Parse(shellTemplate))

// ShellData fills the pane bootstrap template.
type ShellData struct {
	Title     string
	Nonce     string
	ScriptURI string
}

// NewNonce returns a fresh base64 CSP nonce.
func NewNonce() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf), nil
}

// RenderShell assembles the pane bootstrap HTML with a fresh CSP nonce.
func RenderShell(title, scriptURI string) (string, error) {
	nonce, err := NewNonce()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	data := ShellData{Title: title, Nonce: nonce, ScriptURI: scriptURI}
	if err := shellTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render shell: %w", err)
	}
	return buf.String(), nil
}
