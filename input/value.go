package input

import (
	"slices"
	"strconv"
	"strings"
)

// State tells how a [Value] was resolved.
type State uint8

const (
	StateAbsent        State = iota // Not supplied, and there is no default.
	StateDefault                    // Not supplied, the default was used.
	StateSupplied                   // Supplied by the user.
	StateSuppliedEmpty              // Supplied by the user without a value, which is only possible for options with an optional value.
)

func (s State) String() string {
	switch s {
	case StateAbsent:
		return "absent"
	case StateDefault:
		return "default"
	case StateSupplied:
		return "supplied"
	case StateSuppliedEmpty:
		return "supplied without value"
	default:
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
}

// Value is a resolved argument or option value.
type Value struct {
	state State
	flag  bool
	list  bool
	on    bool
	vals  []string
}

func flagValue(on bool) Value {
	if on {
		return Value{state: StateSupplied, flag: true, on: true}
	}
	return Value{state: StateAbsent, flag: true}
}

func defaultValue(def Default, list bool) Value {
	if !def.IsSet() {
		return Value{state: StateAbsent, list: list}
	}
	return Value{state: StateDefault, list: list, vals: def.Values()}
}

func (v Value) State() State {
	return v.state
}

// Supplied reports whether the user supplied this input, with or without a value.
func (v Value) Supplied() bool {
	return v.state == StateSupplied || v.state == StateSuppliedEmpty
}

// HasValue reports whether there is at least one string value, either supplied or from a default.
func (v Value) HasValue() bool {
	return !v.flag && len(v.vals) > 0
}

func (v Value) IsList() bool {
	return v.list
}

func (v Value) IsFlag() bool {
	return v.flag
}

// Bool returns the state of a flag.
// For values that aren't flags, it reports whether the input was supplied.
func (v Value) Bool() bool {
	if v.flag {
		return v.on
	}
	return v.Supplied()
}

// String returns the scalar value, or an empty string if there isn't one.
// List values are joined with a comma, and flags are formatted with [strconv.FormatBool].
func (v Value) String() string {
	switch {
	case v.flag:
		return strconv.FormatBool(v.on)
	case v.list:
		return strings.Join(v.vals, ",")
	case len(v.vals) > 0:
		return v.vals[0]
	default:
		return ""
	}
}

// Strings returns a copy of all values.
// A scalar with a value is returned as a single element slice.
func (v Value) Strings() []string {
	if v.flag || len(v.vals) == 0 {
		return nil
	}
	return slices.Clone(v.vals)
}
