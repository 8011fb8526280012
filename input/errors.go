package input

import (
	"errors"
	"fmt"
)

var (
	ErrDefinition        = errors.New("invalid input definition")
	ErrBinding           = errors.New("invalid input")
	ErrUnknownIdentifier = errors.New("unknown identifier")
)

// DefinitionErrorKind identifies why a [Definition] could not be constructed.
type DefinitionErrorKind int

const (
	MalformedEntry DefinitionErrorKind = iota + 1
	InvalidName
	InvalidShortcut
	InvalidMode
	InvalidDefault
	DuplicateName
	DuplicateShortcut
	MultipleListArguments
	ListArgumentNotLast
	RequiredAfterOptional
)

var definitionKindNames = map[DefinitionErrorKind]string{
	MalformedEntry:        "malformed entry",
	InvalidName:           "invalid name",
	InvalidShortcut:       "invalid shortcut",
	InvalidMode:           "invalid mode",
	InvalidDefault:        "invalid default",
	DuplicateName:         "duplicate name",
	DuplicateShortcut:     "duplicate shortcut",
	MultipleListArguments: "multiple list arguments",
	ListArgumentNotLast:   "list argument not last",
	RequiredAfterOptional: "required argument after optional",
}

func (k DefinitionErrorKind) String() string {
	if name, ok := definitionKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("DefinitionErrorKind(%d)", int(k))
}

// Error allows a kind to be used as an [errors.Is] target.
func (k DefinitionErrorKind) Error() string {
	return k.String()
}

// Target tells whether a [DefinitionError] refers to an argument or an option.
type Target int

const (
	TargetNone Target = iota
	TargetArgument
	TargetOption
)

// DefinitionError describes a problem with how a command declares its inputs.
// These are programming errors, and should be surfaced when a command is registered.
type DefinitionError struct {
	Kind   DefinitionErrorKind
	Target Target
	Index  int    // Index of the offending argument or option in declaration order, or -1.
	Name   string // Name of the offending argument or option, if known.
	Entry  string // Signature entry text, when the definition came from a signature.
	Offset int    // Byte offset of Entry within the signature, or -1.
	Detail string
}

func newDefinitionError(kind DefinitionErrorKind, target Target, index int, name, format string, args ...any) *DefinitionError {
	return &DefinitionError{
		Kind:   kind,
		Target: target,
		Index:  index,
		Name:   name,
		Offset: -1,
		Detail: fmt.Sprintf(format, args...),
	}
}

func (e *DefinitionError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrDefinition, e.Kind)
	if len(e.Entry) > 0 {
		if e.Offset >= 0 {
			msg += fmt.Sprintf(" in entry '{%s}' at offset %d", e.Entry, e.Offset)
		} else {
			msg += fmt.Sprintf(" in entry '{%s}'", e.Entry)
		}
	}
	if len(e.Detail) > 0 {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *DefinitionError) Is(err error) bool {
	if err == ErrDefinition {
		return true
	}
	if kind, ok := err.(DefinitionErrorKind); ok {
		return kind == e.Kind
	}
	_, ok := err.(*DefinitionError)
	return ok
}

// BindingErrorKind identifies why invocation tokens couldn't be bound to a [Definition].
type BindingErrorKind int

const (
	UnknownOption BindingErrorKind = iota + 1
	MissingOptionValue
	UnexpectedOptionValue
	TooManyArguments
	MissingRequiredArgument
)

var bindingKindNames = map[BindingErrorKind]string{
	UnknownOption:           "unknown option",
	MissingOptionValue:      "missing option value",
	UnexpectedOptionValue:   "unexpected option value",
	TooManyArguments:        "too many arguments",
	MissingRequiredArgument: "missing required argument",
}

func (k BindingErrorKind) String() string {
	if name, ok := bindingKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("BindingErrorKind(%d)", int(k))
}

// Error allows a kind to be used as an [errors.Is] target.
func (k BindingErrorKind) Error() string {
	return k.String()
}

// BindingError describes a problem with the tokens a user supplied.
// These are expected, and should be presented to the user along with usage information.
type BindingError struct {
	Kind  BindingErrorKind
	Name  string // Option or argument name involved, if any.
	Token string // Raw token that caused the error, if any.
	Index int    // Index of Token in the invocation arguments, or -1.
}

func (e *BindingError) Error() string {
	switch e.Kind {
	case UnknownOption:
		return fmt.Sprintf("%s: the option '%s' does not exist", e.Kind, e.Token)
	case MissingOptionValue:
		return fmt.Sprintf("%s: the '--%s' option requires a value", e.Kind, e.Name)
	case UnexpectedOptionValue:
		return fmt.Sprintf("%s: the '--%s' option does not accept a value", e.Kind, e.Name)
	case TooManyArguments:
		return fmt.Sprintf("%s: no argument expected for '%s' at position %d", e.Kind, e.Token, e.Index)
	case MissingRequiredArgument:
		return fmt.Sprintf("%s: '%s'", e.Kind, e.Name)
	default:
		return fmt.Sprintf("%s: %s", ErrBinding, e.Kind)
	}
}

func (e *BindingError) Is(err error) bool {
	if err == ErrBinding {
		return true
	}
	if kind, ok := err.(BindingErrorKind); ok {
		return kind == e.Kind
	}
	_, ok := err.(*BindingError)
	return ok
}
