package model

import (
	"encoding/json"
	"fmt"
	"math"
)

// VarType is the primitive type of a model variable.
type VarType int

// The four primitive variable kinds.
const (
	TypeInvalid VarType = iota
	TypeReal
	TypeInteger
	TypeString
	TypeBoolean
)

func (t VarType) String() string {
	switch t {
	case TypeReal:
		return "Real"
	case TypeInteger:
		return "Integer"
	case TypeString:
		return "String"
	case TypeBoolean:
		return "Boolean"
	default:
		return "Invalid"
	}
}

// A Value is a tagged variant holding a scalar or a fixed-size array of one
// of the four primitive kinds. The zero Value is invalid.
type Value struct {
	kind   VarType
	scalar bool

	floats []float64
	ints   []int64
	strs   []string
	bools  []bool
}

// Float creates a scalar floating-point value.
func Float(v float64) Value {
	return Value{kind: TypeReal, scalar: true, floats: []float64{v}}
}

// FloatArray creates an array floating-point value.
func FloatArray(vs []float64) Value {
	return Value{kind: TypeReal, floats: vs}
}

// Int creates a scalar integer value.
func Int(v int64) Value {
	return Value{kind: TypeInteger, scalar: true, ints: []int64{v}}
}

// IntArray creates an array integer value.
func IntArray(vs []int64) Value {
	return Value{kind: TypeInteger, ints: vs}
}

// Str creates a scalar string value.
func Str(v string) Value {
	return Value{kind: TypeString, scalar: true, strs: []string{v}}
}

// StrArray creates an array string value.
func StrArray(vs []string) Value {
	return Value{kind: TypeString, strs: vs}
}

// Bool creates a scalar boolean value.
func Bool(v bool) Value {
	return Value{kind: TypeBoolean, scalar: true, bools: []bool{v}}
}

// BoolArray creates an array boolean value.
func BoolArray(vs []bool) Value {
	return Value{kind: TypeBoolean, bools: vs}
}

// Kind returns the primitive kind of the value.
func (v Value) Kind() VarType {
	return v.kind
}

// IsScalar tells if the value is a scalar rather than an array.
func (v Value) IsScalar() bool {
	return v.scalar
}

// Len returns the flat element count of the value.
func (v Value) Len() int {
	switch v.kind {
	case TypeReal:
		return len(v.floats)
	case TypeInteger:
		return len(v.ints)
	case TypeString:
		return len(v.strs)
	case TypeBoolean:
		return len(v.bools)
	default:
		return 0
	}
}

// Floats returns the value's elements as float64. It panics when the kind
// is not Real.
func (v Value) Floats() []float64 {
	v.kindMustBe(TypeReal)
	return v.floats
}

// Ints returns the value's elements as int64. It panics when the kind is
// not Integer.
func (v Value) Ints() []int64 {
	v.kindMustBe(TypeInteger)
	return v.ints
}

// Strs returns the value's elements as string. It panics when the kind is
// not String.
func (v Value) Strs() []string {
	v.kindMustBe(TypeString)
	return v.strs
}

// Bools returns the value's elements as bool. It panics when the kind is
// not Boolean.
func (v Value) Bools() []bool {
	v.kindMustBe(TypeBoolean)
	return v.bools
}

func (v Value) kindMustBe(t VarType) {
	if v.kind != t {
		panic(fmt.Sprintf("value is %s, not %s", v.kind, t))
	}
}

// Interface returns the value as a plain Go value: a scalar for scalar
// values, a slice otherwise.
func (v Value) Interface() any {
	switch v.kind {
	case TypeReal:
		if v.scalar {
			return v.floats[0]
		}
		return v.floats
	case TypeInteger:
		if v.scalar {
			return v.ints[0]
		}
		return v.ints
	case TypeString:
		if v.scalar {
			return v.strs[0]
		}
		return v.strs
	case TypeBoolean:
		if v.scalar {
			return v.bools[0]
		}
		return v.bools
	default:
		return nil
	}
}

// Zero returns the default value for a variable of the given kind and
// element count.
func Zero(t VarType, count int, scalar bool) Value {
	switch t {
	case TypeReal:
		return Value{kind: t, scalar: scalar, floats: make([]float64, count)}
	case TypeInteger:
		return Value{kind: t, scalar: scalar, ints: make([]int64, count)}
	case TypeString:
		return Value{kind: t, scalar: scalar, strs: make([]string, count)}
	case TypeBoolean:
		return Value{kind: t, scalar: scalar, bools: make([]bool, count)}
	default:
		panic("zero value of invalid type")
	}
}

// Convert turns a decoded document value (from JSON or msgpack) into a
// Value of the declared kind. A scalar input is accepted for array
// variables as a one-element array. Numeric inputs widen to Real; Integer
// variables only accept integer-valued numbers. Any other mismatch between
// the literal and the declared kind is an error.
func Convert(raw any, t VarType) (Value, error) {
	if list, ok := raw.([]any); ok {
		return convertList(list, t)
	}

	switch t {
	case TypeReal:
		f, ok := asFloat(raw)
		if !ok {
			return Value{}, typeMismatch(raw, t)
		}
		return Float(f), nil
	case TypeInteger:
		i, ok := asInt(raw)
		if !ok {
			return Value{}, typeMismatch(raw, t)
		}
		return Int(i), nil
	case TypeString:
		s, ok := raw.(string)
		if !ok {
			return Value{}, typeMismatch(raw, t)
		}
		return Str(s), nil
	case TypeBoolean:
		b, ok := raw.(bool)
		if !ok {
			return Value{}, typeMismatch(raw, t)
		}
		return Bool(b), nil
	default:
		return Value{}, fmt.Errorf("cannot convert to invalid type")
	}
}

func convertList(list []any, t VarType) (Value, error) {
	v := Zero(t, len(list), false)
	for i, elem := range list {
		scalar, err := Convert(elem, t)
		if err != nil {
			return Value{}, err
		}

		switch t {
		case TypeReal:
			v.floats[i] = scalar.floats[0]
		case TypeInteger:
			v.ints[i] = scalar.ints[0]
		case TypeString:
			v.strs[i] = scalar.strs[0]
		case TypeBoolean:
			v.bools[i] = scalar.bools[0]
		}
	}

	return v, nil
}

func asFloat(raw any) (float64, bool) {
	switch n := raw.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func asInt(raw any) (int64, bool) {
	switch n := raw.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	default:
		return 0, false
	}
}

func typeMismatch(raw any, t VarType) error {
	return &ConfigError{
		Reason: fmt.Sprintf("value %v (%T) does not match declared type %s",
			raw, raw, t),
	}
}
