package entity

import (
	"encoding/json"
	"fmt"
	"strings"
)

// payloadVersion is the wire version of the JSON pasteboard envelope.
// Bump when the envelope shape changes; decoders reject unknown versions.
const payloadVersion = 1

// DragPayload is the immutable identity of a dragged tab. It is carried both
// as in-process drag state and across the OS drag pasteboard when the native
// item-provider path is used.
type DragPayload struct {
	TabID TabID  `json:"tab_id"`
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
}

// payloadEnvelope is the versioned same-process pasteboard encoding.
type payloadEnvelope struct {
	Version int         `json:"version"`
	Payload DragPayload `json:"payload"`
}

// EncodePasteboard returns the minimal cross-adapter pasteboard string:
// just the stable tab identifier.
func (p DragPayload) EncodePasteboard() string {
	return string(p.TabID)
}

// EncodeEnvelope returns the typed, versioned JSON encoding used for
// same-process delivery of the full payload.
func (p DragPayload) EncodeEnvelope() (string, error) {
	data, err := json.Marshal(payloadEnvelope{Version: payloadVersion, Payload: p})
	if err != nil {
		return "", fmt.Errorf("encode drag payload: %w", err)
	}
	return string(data), nil
}

// DecodePayload decodes a pasteboard string produced by either encoding.
// A bare identifier (no JSON) yields a payload with only the tab id set.
func DecodePayload(data string) (DragPayload, error) {
	trimmed := strings.TrimSpace(data)
	if trimmed == "" {
		return DragPayload{}, fmt.Errorf("empty drag payload")
	}
	if !strings.HasPrefix(trimmed, "{") {
		return DragPayload{TabID: TabID(trimmed)}, nil
	}

	var env payloadEnvelope
	if err := json.Unmarshal([]byte(trimmed), &env); err != nil {
		return DragPayload{}, fmt.Errorf("decode drag payload: %w", err)
	}
	if env.Version != payloadVersion {
		return DragPayload{}, fmt.Errorf("unsupported drag payload version: %d", env.Version)
	}
	if env.Payload.TabID == "" {
		return DragPayload{}, fmt.Errorf("drag payload missing tab id")
	}
	return env.Payload, nil
}
