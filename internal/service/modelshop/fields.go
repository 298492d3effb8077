package modelshop

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// LabelField is a field the search API returns either flat ("Ramen") or structured
// ({"name": "Ramen", "code": "G013"}).
type LabelField struct {
	Name       string
	Code       string
	Average    string
	Structured bool
	Present    bool
}

// Flat returns a plain label field.
func Flat(label string) LabelField {
	return LabelField{Name: label, Present: true}
}

// Structured returns a {name, code} label field.
func Structured(name, code string) LabelField {
	return LabelField{Name: name, Code: code, Structured: true, Present: true}
}

type labelObject struct {
	Name    string `json:"name"`
	Code    string `json:"code,omitempty"`
	Average string `json:"average,omitempty"`
}

// UnmarshalJSON accepts a string, an object, an array of either (first element wins) or null.
func (f *LabelField) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	*f = LabelField{}
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = Flat(s)
	case '{':
		var o labelObject
		if err := json.Unmarshal(b, &o); err != nil {
			return err
		}
		*f = Structured(o.Name, o.Code)
		f.Average = o.Average
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(b, &items); err != nil {
			return err
		}
		if len(items) > 0 {
			return f.UnmarshalJSON(items[0])
		}
	default:
		*f = Flat(string(b))
	}
	return nil
}

// MarshalJSON writes the field back in its original shape.
func (f LabelField) MarshalJSON() ([]byte, error) {
	switch {
	case !f.Present:
		return []byte("null"), nil
	case f.Structured:
		return json.Marshal(labelObject{Name: f.Name, Code: f.Code, Average: f.Average})
	default:
		return json.Marshal(f.Name)
	}
}

// Coordinate keeps the textual form of a latitude or longitude until it is validated.
type Coordinate struct {
	Raw     string
	Present bool
}

// CoordinateOf builds a Coordinate from an optional float.
func CoordinateOf(v *float64) Coordinate {
	if v == nil {
		return Coordinate{}
	}
	return Coordinate{Raw: strconv.FormatFloat(*v, 'f', -1, 64), Present: true}
}

// UnmarshalJSON accepts a JSON string or number; anything else is kept as absent.
func (c *Coordinate) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	*c = Coordinate{}
	if len(b) == 0 {
		return nil
	}
	switch {
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*c = Coordinate{Raw: s, Present: true}
	case b[0] == '-' || (b[0] >= '0' && b[0] <= '9'):
		*c = Coordinate{Raw: string(b), Present: true}
	}
	return nil
}

// MarshalJSON writes the coordinate as a string or null.
func (c Coordinate) MarshalJSON() ([]byte, error) {
	if !c.Present {
		return []byte("null"), nil
	}
	return json.Marshal(c.Raw)
}

// UnmarshalJSON tolerates non-object photo values by leaving the photo empty.
func (p *Photo) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	*p = Photo{}
	if len(b) == 0 || b[0] != '{' {
		return nil
	}
	type plain Photo
	var v plain
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*p = Photo(v)
	return nil
}
