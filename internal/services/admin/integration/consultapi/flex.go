package consultapi

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

var jsonNull = []byte("null")

// Ref is a reference field that arrives either as a bare id or as a
// populated document.
type Ref struct {
	ID    string
	Name  string
	Email string
	Image string
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, jsonNull) {
		*r = Ref{}
		return nil
	}
	if data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*r = Ref{ID: id}
		return nil
	}
	var doc struct {
		ID    string `json:"_id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Image string `json:"image"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	*r = Ref(doc)
	return nil
}

// IsZero reports whether the reference is missing entirely.
func (r Ref) IsZero() bool {
	return r == Ref{}
}

// Number accepts a JSON number or a numeric string. Anything else decodes
// to zero.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*n = 0
	if len(data) == 0 || bytes.Equal(data, jsonNull) {
		return nil
	}
	if data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		if value, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err == nil {
			*n = Number(value)
		}
		return nil
	}
	var value float64
	if err := json.Unmarshal(data, &value); err != nil {
		return nil
	}
	*n = Number(value)
	return nil
}

func (n Number) Float() float64 {
	return float64(n)
}

// Int truncates toward zero.
func (n Number) Int() int {
	return int(n)
}

// String formats without trailing zeros, e.g. 12.5 or 40.
func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

// Timestamp tolerates missing or malformed date strings by decoding them to
// the zero time.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	t.Time = time.Time{}
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return nil
	}
	text = strings.TrimSpace(text)
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, text); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return nil
}
