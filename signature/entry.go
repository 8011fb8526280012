package signature

import (
	"strings"

	"github.com/saylorsolutions/cmdsig/input"
)

func parseArgument(e entry) (input.ArgumentSpec, error) {
	decl, desc := describe(e.text)
	spec := input.ArgumentSpec{Description: desc}

	if name, def, found := strings.Cut(decl, "="); found {
		spec.Mode = input.ArgumentOptional
		base, list, err := argumentSuffixes(e, name)
		if err != nil {
			return spec, err
		}
		spec.Name = base
		if list {
			spec.Mode |= input.ArgumentList
			spec.Default = input.DefaultStrings(splitList(def)...)
		} else {
			spec.Default = input.DefaultString(def)
		}
		return spec, nil
	}

	name, list, err := argumentSuffixes(e, decl)
	if err != nil {
		return spec, err
	}
	spec.Name = name
	if name != decl {
		spec.Mode = input.ArgumentOptional
	}
	if list {
		spec.Mode |= input.ArgumentList
	}
	return spec, nil
}

// argumentSuffixes strips the trailing '?' and '*' markers, each of which may appear once in either order.
// Any suffix makes the argument optional, and '*' also makes it a list.
func argumentSuffixes(e entry, decl string) (string, bool, error) {
	var optional, list bool
	name := decl
	for len(name) > 0 {
		switch name[len(name)-1] {
		case '?':
			if optional {
				return "", false, entryError(e, input.MalformedEntry, "'?' given more than once")
			}
			optional = true
		case '*':
			if list {
				return "", false, entryError(e, input.MalformedEntry, "'*' given more than once")
			}
			list = true
		default:
			return name, list, nil
		}
		name = name[:len(name)-1]
	}
	return name, list, nil
}

func parseOption(e entry) (input.OptionSpec, error) {
	decl, desc := describe(e.text)
	spec := input.OptionSpec{Description: desc}

	decl = strings.TrimPrefix(decl, "--")
	names, value, hasValue := strings.Cut(decl, "=")
	if shortcut, name, found := strings.Cut(names, "|"); found {
		if len(shortcut) == 0 {
			return spec, entryError(e, input.InvalidShortcut, "empty shortcut before '|'")
		}
		spec.Shortcut = shortcut
		spec.Name = name
	} else {
		spec.Name = names
	}

	if !hasValue {
		spec.Mode = input.OptionNone
		return spec, nil
	}
	switch value {
	case "":
		spec.Mode = input.OptionValueRequired
	case "?":
		spec.Mode = input.OptionValueOptional
	case "*":
		spec.Mode = input.OptionValueRequired | input.OptionList
	case "?*", "*?":
		spec.Mode = input.OptionValueOptional | input.OptionList
	default:
		spec.Mode = input.OptionValueRequired
		spec.Default = input.DefaultString(value)
	}
	return spec, nil
}

func splitList(s string) []string {
	if len(s) == 0 {
		return nil
	}
	vals := strings.Split(s, ",")
	for i := range vals {
		vals[i] = strings.TrimSpace(vals[i])
	}
	return vals
}

func entryError(e entry, kind input.DefinitionErrorKind, detail string) *input.DefinitionError {
	return &input.DefinitionError{
		Kind:   kind,
		Index:  -1,
		Entry:  e.text,
		Offset: e.offset,
		Detail: detail,
	}
}
