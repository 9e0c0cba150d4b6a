package serial

import (
	"math"
	"strconv"
)

// Kind identifies the native representation of a Value.
type Kind int

const (
	KindNone Kind = iota
	KindBool
	KindString
	KindInt
	KindDouble
)

// Value is a scalar stored in an Element, either as an attribute or as the
// element's own value. Getters convert between representations, so a value
// written as a string can be read back as a number and vice versa.
type Value struct {
	kind Kind
	b    bool
	s    string
	i    int
	d    float64
}

func BoolValue(b bool) Value      { return Value{kind: KindBool, b: b} }
func StringValue(s string) Value  { return Value{kind: KindString, s: s} }
func IntValue(i int) Value        { return Value{kind: KindInt, i: i} }
func DoubleValue(d float64) Value { return Value{kind: KindDouble, d: d} }
func (v Value) Kind() Kind        { return v.kind }
func (v Value) IsNumber() bool    { return v.kind == KindInt || v.kind == KindDouble }
func (v Value) IsNone() bool      { return v.kind == KindNone }

// GetBool returns the value as a bool. Strings "true" and "1" are true,
// numbers are true when non-zero.
func (v Value) GetBool() bool {
	switch v.kind {
	case KindBool:
		return v.b
	case KindString:
		return v.s == "true" || v.s == "1"
	case KindInt:
		return v.i != 0
	case KindDouble:
		return v.d != 0
	}
	return false
}

// GetString returns the value formatted as a string.
func (v Value) GetString() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindString:
		return v.s
	case KindInt:
		return strconv.Itoa(v.i)
	case KindDouble:
		return strconv.FormatFloat(v.d, 'g', -1, 64)
	}
	return ""
}

// GetInt returns the value as an int. Doubles are truncated and strings
// that do not parse as a number yield 0.
func (v Value) GetInt() int {
	switch v.kind {
	case KindBool:
		if v.b {
			return 1
		}
		return 0
	case KindString:
		if i, err := strconv.Atoi(v.s); err == nil {
			return i
		}
		if d, err := strconv.ParseFloat(v.s, 64); err == nil {
			return int(d)
		}
		return 0
	case KindInt:
		return v.i
	case KindDouble:
		return int(v.d)
	}
	return 0
}

// GetDouble returns the value as a float64.
func (v Value) GetDouble() float64 {
	switch v.kind {
	case KindBool:
		if v.b {
			return 1
		}
		return 0
	case KindString:
		d, err := strconv.ParseFloat(v.s, 64)
		if err != nil {
			return 0
		}
		return d
	case KindInt:
		return float64(v.i)
	case KindDouble:
		return v.d
	}
	return 0
}

// native returns the value as a plain Go scalar for encoding. Infinities and
// NaN have no JSON form and are written as their strconv strings, which
// GetDouble parses back.
func (v Value) native() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindString:
		return v.s
	case KindInt:
		return v.i
	case KindDouble:
		if math.IsInf(v.d, 0) || math.IsNaN(v.d) {
			return v.GetString()
		}
		return v.d
	}
	return nil
}
