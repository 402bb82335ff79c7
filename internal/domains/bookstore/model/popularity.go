package model

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// Popularity is the feed's hitRate field. The feed does not promise a type,
// so the raw token is kept next to the numeric reading.
type Popularity struct {
	value   float64
	numeric bool
	text    string
}

// NewPopularity returns a numeric popularity.
func NewPopularity(v float64) Popularity {
	return Popularity{value: v, numeric: true}
}

// ParsePopularity reads a raw JSON token. Numbers and numeric strings are
// numeric; null, booleans, objects and other strings are not.
func ParsePopularity(raw json.RawMessage) Popularity {
	if isNull(raw) {
		return Popularity{}
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return NewPopularity(n)
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return Popularity{}
	}
	s = strings.TrimSpace(s)
	v, err := cast.ToFloat64E(s)
	if err != nil || s == "" || math.IsNaN(v) || math.IsInf(v, 0) {
		return Popularity{text: s}
	}
	return NewPopularity(v)
}

// IsNumeric reports whether the value can be ranked.
func (p Popularity) IsNumeric() bool {
	return p.numeric
}

// Value returns the numeric value, or zero when the field is not numeric.
func (p Popularity) Value() float64 {
	if !p.numeric {
		return 0
	}
	return p.value
}

// Display returns the value as shown on a card, and false when there is
// nothing to show.
func (p Popularity) Display() (string, bool) {
	if p.numeric {
		return strconv.FormatFloat(p.value, 'f', -1, 64), true
	}
	return p.text, p.text != ""
}

func (p Popularity) MarshalJSON() ([]byte, error) {
	if p.numeric {
		return json.Marshal(p.value)
	}
	if p.text != "" {
		return json.Marshal(p.text)
	}
	return []byte("null"), nil
}

func (p *Popularity) UnmarshalJSON(data []byte) error {
	*p = ParsePopularity(data)
	return nil
}
