package signature

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/saylorsolutions/cmdsig/input"
)

var descriptionPattern = regexp.MustCompile(`\s+:\s+`)

// Signature is the result of parsing a signature string.
type Signature struct {
	Name       string
	Definition *input.Definition
}

// entry is the text between a pair of braces, and where it was found.
type entry struct {
	text   string
	offset int
}

// Parse parses a signature into a command name and an [input.Definition].
// Any problem is reported as an [*input.DefinitionError] that includes the offending entry and its offset.
func Parse(signature string) (*Signature, error) {
	name, entries, err := split(signature)
	if err != nil {
		return nil, err
	}

	var (
		args       []input.ArgumentSpec
		opts       []input.OptionSpec
		argEntries []entry
		optEntries []entry
	)
	for _, e := range entries {
		if strings.HasPrefix(e.text, "--") {
			opt, err := parseOption(e)
			if err != nil {
				return nil, err
			}
			opts = append(opts, opt)
			optEntries = append(optEntries, e)
			continue
		}
		arg, err := parseArgument(e)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		argEntries = append(argEntries, e)
	}

	def, err := input.NewDefinition(args, opts)
	if err != nil {
		var defErr *input.DefinitionError
		if errors.As(err, &defErr) {
			switch {
			case defErr.Target == input.TargetArgument && defErr.Index >= 0 && defErr.Index < len(argEntries):
				defErr.Entry, defErr.Offset = argEntries[defErr.Index].text, argEntries[defErr.Index].offset
			case defErr.Target == input.TargetOption && defErr.Index >= 0 && defErr.Index < len(optEntries):
				defErr.Entry, defErr.Offset = optEntries[defErr.Index].text, optEntries[defErr.Index].offset
			}
		}
		return nil, err
	}
	return &Signature{Name: name, Definition: def}, nil
}

// MustParse is like [Parse], but panics if the signature is invalid.
func MustParse(signature string) *Signature {
	sig, err := Parse(signature)
	if err != nil {
		panic(err)
	}
	return sig
}

// split separates the command name from the brace delimited entries.
func split(signature string) (string, []entry, error) {
	var (
		name    string
		entries []entry
		start   = -1
		seen    bool
	)
	for i, r := range signature {
		switch {
		case r == '{':
			if start >= 0 {
				return "", nil, malformed(signature[start+1:], start, "nested '{'")
			}
			if !seen {
				name = strings.TrimSpace(signature[:i])
				seen = true
			}
			start = i
		case r == '}':
			if start < 0 {
				return "", nil, malformed("", i, "unexpected '}'")
			}
			text := strings.TrimSpace(signature[start+1 : i])
			if len(text) == 0 {
				return "", nil, malformed("", start, "empty entry")
			}
			entries = append(entries, entry{text: text, offset: start})
			start = -1
		case start >= 0, !seen, unicode.IsSpace(r):
		default:
			return "", nil, malformed("", i, "unexpected text %q outside of braces", strayText(signature[i:]))
		}
	}
	if start >= 0 {
		return "", nil, malformed(signature[start+1:], start, "missing '}'")
	}
	if !seen {
		name = strings.TrimSpace(signature)
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return "", nil, malformed("", 0, "command name %q contains whitespace", name)
	}
	return name, entries, nil
}

func strayText(s string) string {
	if i := strings.IndexFunc(s, func(r rune) bool { return r == '{' || unicode.IsSpace(r) }); i >= 0 {
		return s[:i]
	}
	return s
}

func malformed(text string, offset int, format string, args ...any) *input.DefinitionError {
	return &input.DefinitionError{
		Kind:   input.MalformedEntry,
		Index:  -1,
		Entry:  strings.TrimSpace(text),
		Offset: offset,
		Detail: fmt.Sprintf(format, args...),
	}
}

// describe splits an entry into its declaration and description.
func describe(text string) (string, string) {
	parts := descriptionPattern.Split(text, 2)
	if len(parts) == 2 {
		return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	}
	return strings.TrimSpace(text), ""
}
