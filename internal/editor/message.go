package editor

import (
	"encoding/json"
	"fmt"
)

// Wire-level type discriminators for the host <-> pane protocol.
const (
	typeUpdateFromHost = "updateFromHost"
	typeUpdateFromView = "updateFromView"
	typeNoValidJSON    = "noValidJson"
)

// Message is a closed union of the three protocol messages exchanged with an
// editor pane. The compiler enforces exhaustive handling through the type
// switch in the session controller.
type Message interface {
	isMessage()
	// WireType returns the protocol type discriminator.
	WireType() string
}

// HostUpdate pushes the full document text from the host to a pane.
type HostUpdate struct {
	Text string
}

// ViewUpdate carries full document content submitted by a pane, to be
// validated and committed.
type ViewUpdate struct {
	Content string
}

// InvalidJSON signals that a pane's local content failed its own validation.
// It carries no payload.
type InvalidJSON struct{}

func (HostUpdate) isMessage()  {}
func (ViewUpdate) isMessage()  {}
func (InvalidJSON) isMessage() {}

// WireType implements Message.
func (HostUpdate) WireType() string { return typeUpdateFromHost }

// WireType implements Message.
func (ViewUpdate) WireType() string { return typeUpdateFromView }

// WireType implements Message.
func (InvalidJSON) WireType() string { return typeNoValidJSON }

// wireMessage is the JSON envelope shared by all message kinds.
type wireMessage struct {
	Type    string `json:"type"`
	Text    string `json:"text,omitempty"`
	Content string `json:"content,omitempty"`
}

// EncodeMessage serializes a message into its wire envelope.
func EncodeMessage(msg Message) ([]byte, error) {
	var w wireMessage
	switch m := msg.(type) {
	case HostUpdate:
		w = wireMessage{Type: typeUpdateFromHost, Text: m.Text}
	case ViewUpdate:
		w = wireMessage{Type: typeUpdateFromView, Content: m.Content}
	case InvalidJSON:
		w = wireMessage{Type: typeNoValidJSON}
	default:
		return nil, fmt.Errorf("unknown message type %T", msg)
	}
	return json.Marshal(w)
}

// DecodeMessage parses a wire envelope back into a typed message.
func DecodeMessage(data []byte) (Message, error) {
	var w wireMessage
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("failed to unmarshal message: %w", err)
	}

	switch w.Type {
	case typeUpdateFromHost:
		return HostUpdate{Text: w.Text}, nil
	case typeUpdateFromView:
		return ViewUpdate{Content: w.Content}, nil
	case typeNoValidJSON:
		return InvalidJSON{}, nil
	default:
		return nil, fmt.Errorf("unknown message type %q", w.Type)
	}
}
