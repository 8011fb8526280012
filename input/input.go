package input

import (
	"fmt"
	"maps"
)

// Input holds the values bound for a single invocation.
// It can't be changed after it's created by [Bind].
type Input struct {
	def  *Definition
	args map[string]Value
	opts map[string]Value
}

// Definition returns the [Definition] this Input was bound against.
func (in *Input) Definition() *Definition {
	return in.def
}

// Argument returns the resolved value of the named argument.
// An error wrapping [ErrUnknownIdentifier] is returned if the argument was never declared.
func (in *Input) Argument(name string) (Value, error) {
	val, ok := in.args[name]
	if !ok {
		return Value{}, fmt.Errorf("%w: argument '%s'", ErrUnknownIdentifier, name)
	}
	return val, nil
}

// Option returns the resolved value of the named option.
// An error wrapping [ErrUnknownIdentifier] is returned if the option was never declared.
func (in *Input) Option(name string) (Value, error) {
	val, ok := in.opts[name]
	if !ok {
		return Value{}, fmt.Errorf("%w: option '%s'", ErrUnknownIdentifier, name)
	}
	return val, nil
}

func (in *Input) Arguments() map[string]Value {
	return maps.Clone(in.args)
}

func (in *Input) Options() map[string]Value {
	return maps.Clone(in.opts)
}
