package doc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryReplaceBumpsVersionAndNotifies(t *testing.T) {
	d := NewMemory("file:///a.json", "{}")

	var events []ChangeEvent
	release := d.Subscribe(func(ev ChangeEvent) { events = append(events, ev) })
	defer release()

	require.NoError(t, d.Replace(context.Background(), `{"a":1}`))

	assert.Equal(t, `{"a":1}`, d.Text())
	assert.Equal(t, uint64(1), d.Version())
	require.Len(t, events, 1)
	assert.Equal(t, ChangeEvent{URI: "file:///a.json", Version: 1, ReasonCode: ReasonCodeUnspecified}, events[0])
}

func TestMemoryUndoRedoReasonCodes(t *testing.T) {
	d := NewMemory("file:///a.json", "{}")

	var codes []int
	release := d.Subscribe(func(ev ChangeEvent) { codes = append(codes, ev.ReasonCode) })
	defer release()

	require.NoError(t, d.Replace(context.Background(), `{"a":1}`))
	require.True(t, d.Undo())
	assert.Equal(t, "{}", d.Text())
	require.True(t, d.Redo())
	assert.Equal(t, `{"a":1}`, d.Text())

	assert.Equal(t, []int{ReasonCodeUnspecified, ReasonCodeUndo, ReasonCodeRedo}, codes)
}

func TestMemoryUndoRedoBounds(t *testing.T) {
	d := NewMemory("file:///a.json", "{}")

	assert.False(t, d.Undo(), "nothing to undo")
	assert.False(t, d.Redo(), "nothing to redo")

	require.NoError(t, d.Replace(context.Background(), `{"a":1}`))
	require.True(t, d.Undo())
	assert.False(t, d.Undo())

	// A fresh edit clears the redo stack.
	require.NoError(t, d.Replace(context.Background(), `{"b":2}`))
	assert.False(t, d.Redo())
}

func TestMemorySubscribeReleaseIsIdempotent(t *testing.T) {
	d := NewMemory("file:///a.json", "{}")

	calls := 0
	release := d.Subscribe(func(ChangeEvent) { calls++ })
	release()
	release()

	require.NoError(t, d.Replace(context.Background(), `{"a":1}`))
	assert.Equal(t, 0, calls)
}

func TestMemoryClosedDocumentRejectsEdits(t *testing.T) {
	d := NewMemory("file:///a.json", "{}")
	d.Close()

	err := d.Replace(context.Background(), `{"a":1}`)
	assert.ErrorIs(t, err, ErrDocumentClosed)
	assert.False(t, d.Undo())
}
