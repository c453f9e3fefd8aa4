package patch

import (
	"encoding/json"
	"fmt"
	"os"
)

// Patch is the root of a deserialized .maxpat file.
type Patch struct {
	Patcher Patcher `json:"patcher"`
}

// Patcher holds the ordered box and cable lists of one patcher window.
type Patcher struct {
	Rect  []float64 `json:"rect"`
	Boxes []Box     `json:"boxes"`
	Lines []Line    `json:"lines"`
}

// Box wraps one object box.
type Box struct {
	Content BoxContent `json:"box"`
}

// BoxContent is the payload of a box: identity, class, display text, and
// port counts. Text is empty for UI objects such as number boxes.
type BoxContent struct {
	ID           string    `json:"id"`
	MaxClass     string    `json:"maxclass"`
	Text         string    `json:"text"`
	NumInlets    int       `json:"numinlets"`
	NumOutlets   int       `json:"numoutlets"`
	PatchingRect []float64 `json:"patching_rect"`
}

// Line wraps one patchline (cable).
type Line struct {
	PatchLine PatchLine `json:"patchline"`
}

// PatchLine connects a source outlet to a destination inlet. Endpoints are
// kept raw; see Endpoint.Resolve.
type PatchLine struct {
	Source      Endpoint `json:"source"`
	Destination Endpoint `json:"destination"`
}

// Endpoint is a loosely-typed [object_id, port_index] pair as found in the
// file. Max writes the port as a number, but string ports appear in patches
// saved by some versions, so resolution is deferred and tolerant.
type Endpoint struct {
	raw json.RawMessage
}

// UnmarshalJSON stores the raw endpoint bytes without validation.
func (e *Endpoint) UnmarshalJSON(data []byte) error {
	e.raw = append(e.raw[:0], data...)
	return nil
}

// MarshalJSON writes the endpoint back out unchanged.
func (e Endpoint) MarshalJSON() ([]byte, error) {
	if len(e.raw) == 0 {
		return []byte("null"), nil
	}

	return e.raw, nil
}

// IsZero reports whether the endpoint was absent from the file.
func (e Endpoint) IsZero() bool {
	return len(e.raw) == 0
}

// Resolve validates the endpoint shape and returns its object id and port
// index. It fails when the endpoint is not a two-element array, the id is
// not a string, or the port is neither a number nor a numeric string.
func (e Endpoint) Resolve() (id string, port int, err error) {
	if len(e.raw) == 0 {
		return "", 0, fmt.Errorf("endpoint missing")
	}

	var parts []json.RawMessage
	if err := json.Unmarshal(e.raw, &parts); err != nil {
		return "", 0, fmt.Errorf("endpoint is not an array: %w", err)
	}

	if len(parts) != 2 {
		return "", 0, fmt.Errorf("endpoint has %d elements, want 2", len(parts))
	}

	if err := json.Unmarshal(parts[0], &id); err != nil {
		return "", 0, fmt.Errorf("endpoint id is not a string: %w", err)
	}

	var num float64
	if err := json.Unmarshal(parts[1], &num); err != nil {
		var s string
		if err := json.Unmarshal(parts[1], &s); err != nil {
			return "", 0, fmt.Errorf("endpoint port is not numeric")
		}

		if _, err := fmt.Sscanf(s, "%f", &num); err != nil {
			return "", 0, fmt.Errorf("endpoint port %q is not numeric", s)
		}
	}

	if num < 0 {
		return "", 0, fmt.Errorf("endpoint port %v is negative", num)
	}

	return id, int(num), nil
}

// ParseString deserializes a .maxpat document from a string.
func ParseString(data string) (*Patch, error) {
	return ParseBytes([]byte(data))
}

// ParseBytes deserializes a .maxpat document.
func ParseBytes(data []byte) (*Patch, error) {
	var p Patch
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("patch: %w", err)
	}

	return &p, nil
}

// ParseFile reads and deserializes a .maxpat file.
func ParseFile(path string) (*Patch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("patch: %w", err)
	}

	return ParseBytes(data)
}
