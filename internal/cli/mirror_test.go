package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avckr/jsonpane/internal/doc"
)

func TestMirrorWritesCommitsThrough(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.json")
	d := doc.NewMemory("file://"+path, "{}")

	pane, err := newMirrorFactory(context.Background(), path)(d)
	require.NoError(t, err)
	defer func() { _ = pane.Close() }()

	require.NoError(t, d.Replace(context.Background(), `{"a":1}`))

	assert.Eventually(t, func() bool {
		data, readErr := os.ReadFile(path)
		return readErr == nil && string(data) == "{\"a\":1}\n"
	}, time.Second, 10*time.Millisecond)
}

func TestMirrorStopsOnClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.json")
	d := doc.NewMemory("file://"+path, "{}")

	pane, err := newMirrorFactory(context.Background(), path)(d)
	require.NoError(t, err)

	require.NoError(t, d.Replace(context.Background(), `{"a":1}`))
	require.Eventually(t, func() bool {
		data, readErr := os.ReadFile(path)
		return readErr == nil && string(data) == "{\"a\":1}\n"
	}, time.Second, 10*time.Millisecond)

	// Close releases the document subscription before returning, so later
	// edits never reach the file.
	require.NoError(t, pane.Close())
	require.NoError(t, d.Replace(context.Background(), `{"b":2}`))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\"a\":1}\n", string(data))
}
