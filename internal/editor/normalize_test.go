package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBlankInputIsEmptyObject(t *testing.T) {
	n := NewNormalizer(4)

	for _, raw := range []string{"", "   ", "\n\t  \n"} {
		got, err := n.Normalize(raw)
		require.NoError(t, err, "input %q", raw)
		assert.Equal(t, "{}", got, "input %q", raw)
	}
}

func TestNormalizeCanonicalForm(t *testing.T) {
	n := NewNormalizer(4)

	got, err := n.Normalize(`{"a":1}`)
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"a\": 1\n}", got)
}

func TestNormalizePreservesKeyOrder(t *testing.T) {
	n := NewNormalizer(4)

	got, err := n.Normalize(`{"z":1,"a":2,"m":3}`)
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"z\": 1,\n    \"a\": 2,\n    \"m\": 3\n}", got)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	n := NewNormalizer(4)

	inputs := []string{
		`{"a":1}`,
		`{"nested":{"list":[1,2,{"x":null}],"ok":true}}`,
		`[]`,
		`"just a string"`,
		`42`,
		"",
	}
	for _, raw := range inputs {
		once, err := n.Normalize(raw)
		require.NoError(t, err, "input %q", raw)
		twice, err := n.Normalize(once)
		require.NoError(t, err, "input %q", raw)
		assert.Equal(t, once, twice, "input %q", raw)
	}
}

func TestNormalizeRejectsInvalidJSON(t *testing.T) {
	n := NewNormalizer(4)

	for _, raw := range []string{"{invalid", "not json", `{"a":}`, `{} trailing`} {
		_, err := n.Normalize(raw)
		assert.ErrorIs(t, err, ErrContentInvalid, "input %q", raw)
	}
}

func TestNormalizeIndentWidth(t *testing.T) {
	n := NewNormalizer(2)

	got, err := n.Normalize(`{"a":1}`)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", got)
}
