package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageWireRoundTrip(t *testing.T) {
	messages := []Message{
		HostUpdate{Text: "{\n    \"a\": 1\n}"},
		ViewUpdate{Content: `{"b":2}`},
		InvalidJSON{},
	}

	for _, msg := range messages {
		data, err := EncodeMessage(msg)
		require.NoError(t, err)

		decoded, err := DecodeMessage(data)
		require.NoError(t, err)
		assert.Equal(t, msg, decoded)
	}
}

func TestDecodeMessageWireTags(t *testing.T) {
	msg, err := DecodeMessage([]byte(`{"type":"updateFromHost","text":"{}"}`))
	require.NoError(t, err)
	assert.Equal(t, HostUpdate{Text: "{}"}, msg)

	msg, err = DecodeMessage([]byte(`{"type":"updateFromView","content":"{}"}`))
	require.NoError(t, err)
	assert.Equal(t, ViewUpdate{Content: "{}"}, msg)

	msg, err = DecodeMessage([]byte(`{"type":"noValidJson"}`))
	require.NoError(t, err)
	assert.Equal(t, InvalidJSON{}, msg)
}

func TestDecodeMessageRejectsUnknownType(t *testing.T) {
	_, err := DecodeMessage([]byte(`{"type":"navigate","url":"https://example.com"}`))
	assert.Error(t, err)

	_, err = DecodeMessage([]byte(`not json`))
	assert.Error(t, err)
}
