package signature

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/saylorsolutions/cmdsig/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Arguments(t *testing.T) {
	tests := map[string]struct {
		signature string
		expected  input.ArgumentSpec
	}{
		"Required": {
			signature: "cmd {name}",
			expected:  input.ArgumentSpec{Name: "name"},
		},
		"Optional": {
			signature: "cmd {name?}",
			expected:  input.ArgumentSpec{Name: "name", Mode: input.ArgumentOptional},
		},
		"List": {
			signature: "cmd {names*}",
			expected:  input.ArgumentSpec{Name: "names", Mode: input.ArgumentOptional | input.ArgumentList},
		},
		"Optional list": {
			signature: "cmd {names?*}",
			expected:  input.ArgumentSpec{Name: "names", Mode: input.ArgumentOptional | input.ArgumentList},
		},
		"List optional": {
			signature: "cmd {names*?}",
			expected:  input.ArgumentSpec{Name: "names", Mode: input.ArgumentOptional | input.ArgumentList},
		},
		"Default": {
			signature: "cmd {name=John}",
			expected:  input.ArgumentSpec{Name: "name", Mode: input.ArgumentOptional, Default: input.DefaultString("John")},
		},
		"Empty default": {
			signature: "cmd {name=}",
			expected:  input.ArgumentSpec{Name: "name", Mode: input.ArgumentOptional, Default: input.DefaultString("")},
		},
		"List default": {
			signature: "cmd {names*=John, Jane}",
			expected:  input.ArgumentSpec{Name: "names", Mode: input.ArgumentOptional | input.ArgumentList, Default: input.DefaultStrings("John", "Jane")},
		},
		"Description": {
			signature: "cmd {name? : The name: first and last}",
			expected:  input.ArgumentSpec{Name: "name", Mode: input.ArgumentOptional, Description: "The name: first and last"},
		},
		"Default with description": {
			signature: "cmd { name=http://localhost:8080 : Where to connect }",
			expected:  input.ArgumentSpec{Name: "name", Mode: input.ArgumentOptional, Default: input.DefaultString("http://localhost:8080"), Description: "Where to connect"},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			sig, err := Parse(tc.signature)
			require.NoError(t, err)
			assert.Equal(t, "cmd", sig.Name)
			args := sig.Definition.Arguments()
			require.Len(t, args, 1)
			if diff := cmp.Diff(tc.expected, args[0]); diff != "" {
				t.Errorf("Unexpected argument (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_Options(t *testing.T) {
	tests := map[string]struct {
		signature string
		expected  input.OptionSpec
	}{
		"Flag": {
			signature: "cmd {--yell}",
			expected:  input.OptionSpec{Name: "yell"},
		},
		"Shortcut": {
			signature: "cmd {--y|yell}",
			expected:  input.OptionSpec{Name: "yell", Shortcut: "y"},
		},
		"Value required": {
			signature: "cmd {--queue=}",
			expected:  input.OptionSpec{Name: "queue", Mode: input.OptionValueRequired},
		},
		"Value optional": {
			signature: "cmd {--queue=?}",
			expected:  input.OptionSpec{Name: "queue", Mode: input.OptionValueOptional},
		},
		"List": {
			signature: "cmd {--id=*}",
			expected:  input.OptionSpec{Name: "id", Mode: input.OptionValueRequired | input.OptionList},
		},
		"Optional list": {
			signature: "cmd {--id=?*}",
			expected:  input.OptionSpec{Name: "id", Mode: input.OptionValueOptional | input.OptionList},
		},
		"Optional list reversed": {
			signature: "cmd {--id=*?}",
			expected:  input.OptionSpec{Name: "id", Mode: input.OptionValueOptional | input.OptionList},
		},
		"Default": {
			signature: "cmd {--iterations=1}",
			expected:  input.OptionSpec{Name: "iterations", Mode: input.OptionValueRequired, Default: input.DefaultString("1")},
		},
		"Literal default with sentinel characters": {
			signature: "cmd {--glob=**}",
			expected:  input.OptionSpec{Name: "glob", Mode: input.OptionValueRequired, Default: input.DefaultString("**")},
		},
		"Everything": {
			signature: "cmd {--Q|queue=default : The queue to use}",
			expected:  input.OptionSpec{Name: "queue", Shortcut: "Q", Mode: input.OptionValueRequired, Default: input.DefaultString("default"), Description: "The queue to use"},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			sig, err := Parse(tc.signature)
			require.NoError(t, err)
			opts := sig.Definition.Options()
			require.Len(t, opts, 1)
			if diff := cmp.Diff(tc.expected, opts[0]); diff != "" {
				t.Errorf("Unexpected option (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_WhitespaceInsensitive(t *testing.T) {
	oneLine := "demo:greet {name? : desc} {--y|yell} {--iterations=1 : How many}"
	wrapped := `
		demo:greet
			{name?   :   desc}


			{ --y|yell }
		{--iterations=1
			: How many}
	`
	a, err := Parse(oneLine)
	require.NoError(t, err)
	b, err := Parse(wrapped)
	require.NoError(t, err)
	assert.Equal(t, a.Name, b.Name)
	if diff := cmp.Diff(a.Definition.Arguments(), b.Definition.Arguments()); diff != "" {
		t.Errorf("Arguments differ (-one line +wrapped):\n%s", diff)
	}
	if diff := cmp.Diff(a.Definition.Options(), b.Definition.Options()); diff != "" {
		t.Errorf("Options differ (-one line +wrapped):\n%s", diff)
	}
}

func TestParse_NameOnly(t *testing.T) {
	sig, err := Parse("  demo:greet  ")
	require.NoError(t, err)
	assert.Equal(t, "demo:greet", sig.Name)
	assert.Empty(t, sig.Definition.Arguments())
	assert.Empty(t, sig.Definition.Options())

	sig, err = Parse("{name}")
	require.NoError(t, err)
	assert.Equal(t, "", sig.Name)
	assert.Len(t, sig.Definition.Arguments(), 1)
}

func TestParse_Errors(t *testing.T) {
	tests := map[string]struct {
		signature string
		kind      input.DefinitionErrorKind
		entry     string
		offset    int
	}{
		"Unclosed brace": {
			signature: "cmd {name",
			kind:      input.MalformedEntry,
			entry:     "name",
			offset:    4,
		},
		"Unexpected closing brace": {
			signature: "cmd name}",
			kind:      input.MalformedEntry,
			offset:    8,
		},
		"Nested brace": {
			signature: "cmd {a {b}}",
			kind:      input.MalformedEntry,
			entry:     "a {b}}",
			offset:    4,
		},
		"Empty entry": {
			signature: "cmd {a} { }",
			kind:      input.MalformedEntry,
			offset:    8,
		},
		"Stray text": {
			signature: "cmd {a} b {c}",
			kind:      input.MalformedEntry,
			offset:    8,
		},
		"Name with whitespace": {
			signature: "my cmd {a}",
			kind:      input.MalformedEntry,
			offset:    0,
		},
		"Repeated marker": {
			signature: "cmd {a??}",
			kind:      input.MalformedEntry,
			entry:     "a??",
			offset:    4,
		},
		"Empty argument name": {
			signature: "cmd {?}",
			kind:      input.InvalidName,
			entry:     "?",
			offset:    4,
		},
		"Long shortcut": {
			signature: "cmd {--ye|yell}",
			kind:      input.InvalidShortcut,
			entry:     "--ye|yell",
			offset:    4,
		},
		"Empty shortcut": {
			signature: "cmd {--|yell}",
			kind:      input.InvalidShortcut,
			entry:     "--|yell",
			offset:    4,
		},
		"Duplicate shortcut": {
			signature: "cmd {--y|yell} {--y|yes}",
			kind:      input.DuplicateShortcut,
			entry:     "--y|yes",
			offset:    15,
		},
		"Duplicate option": {
			signature: "cmd {--yell} {--yell=}",
			kind:      input.DuplicateName,
			entry:     "--yell=",
			offset:    13,
		},
		"Duplicate argument": {
			signature: "cmd {a} {a?}",
			kind:      input.DuplicateName,
			entry:     "a?",
			offset:    8,
		},
		"Two lists": {
			signature: "cmd {a*} {b*}",
			kind:      input.MultipleListArguments,
			entry:     "b*",
			offset:    9,
		},
		"List not last": {
			signature: "cmd {a*} {--x} {b?}",
			kind:      input.ListArgumentNotLast,
			entry:     "b?",
			offset:    15,
		},
		"Required after optional": {
			signature: "cmd {a?} {b}",
			kind:      input.RequiredAfterOptional,
			entry:     "b",
			offset:    9,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			sig, err := Parse(tc.signature)
			assert.Nil(t, sig)
			require.Error(t, err)
			assert.ErrorIs(t, err, input.ErrDefinition)
			var defErr *input.DefinitionError
			require.True(t, errors.As(err, &defErr))
			assert.Equal(t, tc.kind, defErr.Kind)
			assert.Equal(t, tc.entry, defErr.Entry)
			assert.Equal(t, tc.offset, defErr.Offset)
		})
	}
}

func TestMustParse(t *testing.T) {
	assert.NotPanics(t, func() {
		MustParse("demo:greet {name}")
	})
	assert.Panics(t, func() {
		MustParse("demo:greet {name")
	})
}

func TestParse_Scenarios(t *testing.T) {
	greet := MustParse("demo:greet {name? : desc} {--y|yell}").Definition

	in, err := greet.Bind([]string{"John", "--yell"})
	require.NoError(t, err)
	assert.Equal(t, "John", mustArgument(t, in, "name").String())
	assert.True(t, mustOption(t, in, "yell").Bool())

	in, err = greet.Bind(nil)
	require.NoError(t, err)
	assert.False(t, mustArgument(t, in, "name").HasValue())
	assert.False(t, mustOption(t, in, "yell").Bool())

	in, err = MustParse("demo:greet {names* : desc}").Definition.Bind([]string{"John", "Jane"})
	require.NoError(t, err)
	assert.Equal(t, []string{"John", "Jane"}, mustArgument(t, in, "names").Strings())

	iterations := MustParse("demo:greet {--iterations=1}").Definition
	in, err = iterations.Bind([]string{"--iterations=5"})
	require.NoError(t, err)
	assert.Equal(t, "5", mustOption(t, in, "iterations").String())
	in, err = iterations.Bind(nil)
	require.NoError(t, err)
	assert.Equal(t, "1", mustOption(t, in, "iterations").String())

	_, err = MustParse("demo:greet {name}").Definition.Bind(nil)
	assert.ErrorIs(t, err, input.MissingRequiredArgument)

	_, err = MustParse("demo:greet {name?}").Definition.Bind([]string{"John", "Doe"})
	assert.ErrorIs(t, err, input.TooManyArguments)
}

func TestParse_EquivalentToExplicitDefinition(t *testing.T) {
	parsed := MustParse("cmd {source} {targets?* : Where to copy} {--f|force} {--mode=0644} {--x|exclude=*}").Definition
	explicit := input.MustDefinition(
		[]input.ArgumentSpec{
			{Name: "source"},
			{Name: "targets", Mode: input.ArgumentOptional | input.ArgumentList, Description: "Where to copy"},
		},
		[]input.OptionSpec{
			{Name: "force", Shortcut: "f"},
			{Name: "mode", Mode: input.OptionValueRequired, Default: input.DefaultString("0644")},
			{Name: "exclude", Shortcut: "x", Mode: input.OptionValueRequired | input.OptionList},
		},
	)

	argvs := map[string][]string{
		"Empty":          nil,
		"Source only":    {"a"},
		"Everything":     {"-f", "a", "b", "--mode", "0755", "-x*.tmp", "c", "--exclude", ".git"},
		"Cluster":        {"-fx", "*.log", "a"},
		"Unknown option": {"a", "--nope"},
		"Missing value":  {"a", "--mode"},
		"End of options": {"--", "-f", "--mode"},
	}
	for name, argv := range argvs {
		t.Run(name, func(t *testing.T) {
			a, aerr := parsed.Bind(argv)
			b, berr := explicit.Bind(argv)
			assert.Equal(t, aerr, berr)
			if aerr != nil {
				return
			}
			assert.Equal(t, a.Arguments(), b.Arguments())
			assert.Equal(t, a.Options(), b.Options())
		})
	}
}

func mustArgument(t *testing.T, in *input.Input, name string) input.Value {
	t.Helper()
	val, err := in.Argument(name)
	require.NoError(t, err)
	return val
}

func mustOption(t *testing.T, in *input.Input, name string) input.Value {
	t.Helper()
	val, err := in.Option(name)
	require.NoError(t, err)
	return val
}
