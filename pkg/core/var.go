package core

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Var is a dynamically typed attribute or style value. The zero Var is
// void, meaning "not set".
type Var struct {
	v any
}

// Void is the unset value.
var Void = Var{}

// VarOf wraps v. A nil v or a Var argument are returned as-is.
func VarOf(v any) Var {
	if vv, ok := v.(Var); ok {
		return vv
	}
	return Var{v: v}
}

// IsVoid reports whether the value is unset.
func (v Var) IsVoid() bool {
	return v.v == nil
}

// Value returns the wrapped value.
func (v Var) Value() any {
	return v.v
}

// String formats the value; void yields "".
func (v Var) String() string {
	switch x := v.v.(type) {
	case nil:
		return ""
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}

// Bool converts the value to a boolean. Strings accept the forms of
// strconv.ParseBool and fall back to a non-zero number check.
func (v Var) Bool() bool {
	switch x := v.v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		s := strings.TrimSpace(x)
		if b, err := strconv.ParseBool(s); err == nil {
			return b
		}
		return Var{v: s}.Float() != 0
	default:
		return v.Float() != 0
	}
}

// Float converts the value to a float64. Strings that do not parse as a
// number, optionally suffixed with "px", convert to 0.
func (v Var) Float() float64 {
	switch x := v.v.(type) {
	case nil:
		return 0
	case bool:
		if x {
			return 1
		}
		return 0
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case float64:
		return x
	case float32:
		return float64(x)
	case string:
		s := strings.TrimSuffix(strings.TrimSpace(x), "px")
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		rv := reflect.ValueOf(x)
		switch {
		case rv.CanInt():
			return float64(rv.Int())
		case rv.CanUint():
			return float64(rv.Uint())
		case rv.CanFloat():
			return rv.Float()
		}
		return 0
	}
}

// Int converts the value to an int, truncating toward zero.
func (v Var) Int() int {
	return int(v.Float())
}

// Equal reports whether two values hold the same dynamic value.
func (v Var) Equal(other Var) bool {
	return reflect.DeepEqual(v.v, other.v)
}
