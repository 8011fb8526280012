package manifest

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/saylorsolutions/cmdsig/cli"
	"github.com/saylorsolutions/cmdsig/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const greetManifest = `
[[command]]
signature = """
demo:greet
  {name? : Who to greet}
  {--y|yell : Greet loudly}
"""
usage = "Greets someone"
aliases = ["hi"]

[[command]]
signature = "demo:count {--iterations=1}"
usage = "Counts"
handler = "counter"
`

func TestDecode(t *testing.T) {
	m, err := Decode(strings.NewReader(greetManifest))
	require.NoError(t, err)
	require.Len(t, m.Commands, 2)
	assert.Equal(t, "Greets someone", m.Commands[0].Usage)
	assert.Equal(t, []string{"hi"}, m.Commands[0].Aliases)
	assert.Equal(t, "counter", m.Commands[1].Handler)
}

func TestDecode_Errors(t *testing.T) {
	tests := map[string]struct {
		doc      string
		contains []string
	}{
		"Bad TOML": {
			doc:      "[[command]\n",
			contains: []string{"invalid manifest"},
		},
		"Unknown field": {
			doc:      "[[command]]\nsignature = \"a\"\ncolour = \"red\"\n",
			contains: []string{"invalid manifest"},
		},
		"Bad signatures": {
			doc:      "[[command]]\nsignature = \"a {b\"\n\n[[command]]\nsignature = \"c {d?} {e}\"\n",
			contains: []string{"command 0", "malformed entry", "command 1", "required argument after optional"},
		},
		"No name": {
			doc:      "[[command]]\nsignature = \"{name}\"\n",
			contains: []string{"has no command name"},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			m, err := Decode(strings.NewReader(tc.doc))
			assert.Nil(t, m)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrManifest)
			for _, s := range tc.contains {
				assert.Contains(t, err.Error(), s)
			}
		})
	}
}

func TestManifest_Register(t *testing.T) {
	m, err := Decode(strings.NewReader(greetManifest))
	require.NoError(t, err)

	var (
		buf        bytes.Buffer
		greeted    string
		iterations string
	)
	set := cli.NewCommandSet("demo")
	set.Printer().Redirect(&buf)
	err = m.Register(set, map[string]cli.CommandFunc{
		"demo:greet": func(in *input.Input, _ *cli.Printer) error {
			greeted = cli.MustGet(in.Argument("name")).String()
			return nil
		},
		"counter": func(in *input.Input, _ *cli.Printer) error {
			iterations = cli.MustGet(in.Option("iterations")).String()
			return nil
		},
	})
	require.NoError(t, err)

	require.NoError(t, set.Exec([]string{"hi", "John"}))
	assert.Equal(t, "John", greeted)
	require.NoError(t, set.Exec([]string{"demo:count"}))
	assert.Equal(t, "1", iterations)
}

func TestManifest_Register_MissingHandler(t *testing.T) {
	m, err := Decode(strings.NewReader(greetManifest))
	require.NoError(t, err)
	err = m.Register(cli.NewCommandSet("demo"), map[string]cli.CommandFunc{})
	assert.ErrorIs(t, err, ErrMissingHandler)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "commands.toml")
	require.NoError(t, os.WriteFile(path, []byte(greetManifest), 0o600))
	m, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, m.Commands, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
