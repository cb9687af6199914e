package dso

import (
	"encoding/json"
	"strconv"
)

// Value is an optional measurement. The zero Value is unknown.
type Value struct {
	v     float64
	known bool
}

// Known returns a known measurement.
func Known(v float64) Value { return Value{v: v, known: true} }

// Unknown returns an absent measurement.
func Unknown() Value { return Value{} }

// FromPtr maps nil to Unknown.
func FromPtr(p *float64) Value {
	if p == nil {
		return Value{}
	}
	return Known(*p)
}

// Get returns the measurement and whether it is known.
func (x Value) Get() (float64, bool) { return x.v, x.known }

// IsKnown reports whether the measurement is present.
func (x Value) IsKnown() bool { return x.known }

// Ptr returns nil for unknown values.
func (x Value) Ptr() *float64 {
	if !x.known {
		return nil
	}
	v := x.v
	return &v
}

// String renders the value or "N/A".
func (x Value) String() string {
	if !x.known {
		return "N/A"
	}
	return strconv.FormatFloat(x.v, 'f', -1, 64)
}

// MarshalJSON encodes unknown values as null.
func (x Value) MarshalJSON() ([]byte, error) {
	if !x.known {
		return []byte("null"), nil
	}
	return json.Marshal(x.v)
}
