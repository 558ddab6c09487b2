package model

import (
	"strconv"
)

// ValueKind classifies an extracted attribute value
type ValueKind int

const (
	KindUnknown ValueKind = iota // No trigger or plausible number found
	KindLabel                    // Free-text categorical label
	KindFloat                    // Plain float
	KindInt                      // Integer count
)

func (k ValueKind) String() string {
	switch k {
	case KindLabel:
		return "label"
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	default:
		return "unknown"
	}
}

// Value is the result of one extractor for one path.
// The zero value is Unknown and never equals a real label.
type Value struct {
	Kind  ValueKind
	Label string
	Num   float64
}

// Unknown returns the explicit unknown marker
func Unknown() Value {
	return Value{}
}

// Label returns a categorical value. An empty label is Unknown.
func Label(s string) Value {
	if s == "" {
		return Value{}
	}
	return Value{Kind: KindLabel, Label: s}
}

// Float returns a plain numeric value
func Float(f float64) Value {
	return Value{Kind: KindFloat, Num: f}
}

// Int returns an integer value
func Int(i int64) Value {
	return Value{Kind: KindInt, Num: float64(i)}
}

// IsUnknown reports whether no value could be inferred
func (v Value) IsUnknown() bool {
	return v.Kind == KindUnknown
}

// Int64 returns the integer form of a numeric value
func (v Value) Int64() int64 {
	return int64(v.Num)
}

// String renders the value for tabular output; Unknown renders empty
func (v Value) String() string {
	switch v.Kind {
	case KindLabel:
		return v.Label
	case KindFloat:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindInt:
		return strconv.FormatInt(int64(v.Num), 10)
	default:
		return ""
	}
}

// Equal compares two values by kind and content
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindLabel:
		return v.Label == other.Label
	case KindFloat, KindInt:
		return v.Num == other.Num
	default:
		return true
	}
}
