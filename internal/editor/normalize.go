package editor

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrContentInvalid is returned when submitted content is not syntactically
// valid JSON. Callers must not mutate the document when they receive it.
var ErrContentInvalid = errors.New("content is not valid JSON")

// Normalizer validates raw content and produces the canonical indented form.
// Key order is preserved as parsed, so normalization is deterministic and
// idempotent.
type Normalizer struct {
	indent string
}

// NewNormalizer creates a normalizer using width spaces of indentation.
func NewNormalizer(width int) *Normalizer {
	if width < 0 {
		width = 0
	}
	return &Normalizer{indent: strings.Repeat(" ", width)}
}

// Normalize parses raw as JSON and returns its canonical indented form.
// Blank or whitespace-only input is treated as the empty object. Invalid
// input fails with ErrContentInvalid and must not reach the document.
func (n *Normalizer) Normalize(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "{}", nil
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(trimmed), "", n.indent); err != nil {
		return "", fmt.Errorf("%w: %v", ErrContentInvalid, err)
	}
	return buf.String(), nil
}
