package input

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ArgumentMode controls whether an argument is required, and whether it collects a list of values.
// The zero value is a required, single value argument.
type ArgumentMode uint8

const (
	ArgumentRequired ArgumentMode = 0
	ArgumentOptional ArgumentMode = 1 << (iota - 1)
	ArgumentList

	argumentModeMask = ArgumentOptional | ArgumentList
)

func (m ArgumentMode) String() string {
	var buf strings.Builder
	if m&ArgumentOptional != 0 {
		buf.WriteString("optional")
	} else {
		buf.WriteString("required")
	}
	if m&ArgumentList != 0 {
		buf.WriteString(" list")
	}
	return buf.String()
}

// OptionMode controls whether an option accepts a value, and whether it collects a list of values.
// The zero value is a boolean flag.
type OptionMode uint8

const (
	OptionNone          OptionMode = 0
	OptionValueRequired OptionMode = 1 << (iota - 1)
	OptionValueOptional
	OptionList

	optionModeMask = OptionValueRequired | OptionValueOptional | OptionList
)

func (m OptionMode) String() string {
	var buf strings.Builder
	switch {
	case m&OptionValueRequired != 0:
		buf.WriteString("value required")
	case m&OptionValueOptional != 0:
		buf.WriteString("value optional")
	default:
		buf.WriteString("flag")
	}
	if m&OptionList != 0 {
		buf.WriteString(" list")
	}
	return buf.String()
}

// Default is the value used for an input that wasn't supplied.
// The zero value means that there is no default.
type Default struct {
	vals []string
	set  bool
}

// NoDefault returns an unset [Default].
func NoDefault() Default {
	return Default{}
}

// DefaultString creates a [Default] with a single value.
func DefaultString(val string) Default {
	return Default{vals: []string{val}, set: true}
}

// DefaultStrings creates a [Default] for list inputs.
// Calling this with no values sets an empty list as the default.
func DefaultStrings(vals ...string) Default {
	return Default{vals: slices.Clone(vals), set: true}
}

// IsSet reports whether a default was configured.
func (d Default) IsSet() bool {
	return d.set
}

// Values returns a copy of the default values.
func (d Default) Values() []string {
	if !d.set {
		return nil
	}
	return slices.Clone(d.vals)
}

func (d Default) equal(other Default) bool {
	return d.set == other.set && slices.Equal(d.vals, other.vals)
}

// ArgumentSpec describes one positional argument.
type ArgumentSpec struct {
	Name        string
	Mode        ArgumentMode
	Default     Default
	Description string
}

func (s ArgumentSpec) IsRequired() bool {
	return s.Mode&ArgumentOptional == 0
}

func (s ArgumentSpec) IsList() bool {
	return s.Mode&ArgumentList != 0
}

// Equal reports whether two specs describe the same argument.
func (s ArgumentSpec) Equal(other ArgumentSpec) bool {
	return s.Name == other.Name && s.Mode == other.Mode && s.Description == other.Description && s.Default.equal(other.Default)
}

// OptionSpec describes one named option.
// The Shortcut is optional, and must be a single character when set.
type OptionSpec struct {
	Name        string
	Shortcut    string
	Mode        OptionMode
	Default     Default
	Description string
}

// AcceptsValue reports whether the option can be given a value at all.
func (s OptionSpec) AcceptsValue() bool {
	return s.Mode&(OptionValueRequired|OptionValueOptional) != 0
}

func (s OptionSpec) ValueRequired() bool {
	return s.Mode&OptionValueRequired != 0
}

func (s OptionSpec) ValueOptional() bool {
	return s.Mode&OptionValueOptional != 0
}

func (s OptionSpec) IsList() bool {
	return s.Mode&OptionList != 0
}

// Equal reports whether two specs describe the same option.
func (s OptionSpec) Equal(other OptionSpec) bool {
	return s.Name == other.Name && s.Shortcut == other.Shortcut && s.Mode == other.Mode && s.Description == other.Description && s.Default.equal(other.Default)
}

const reservedNameChars = "{}=|?*:"

func validName(name string) bool {
	if len(name) == 0 || strings.HasPrefix(name, "-") {
		return false
	}
	if strings.ContainsAny(name, reservedNameChars) {
		return false
	}
	return strings.IndexFunc(name, unicode.IsSpace) < 0
}

func validShortcut(shortcut string) bool {
	if utf8.RuneCountInString(shortcut) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(shortcut)
	if r == utf8.RuneError || r == '-' || unicode.IsSpace(r) {
		return false
	}
	return !strings.ContainsRune(reservedNameChars, r)
}
