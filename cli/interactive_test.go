package cli

import (
	"strings"
	"testing"

	"github.com/saylorsolutions/cmdsig/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandSet_interactiveLoop(t *testing.T) {
	set, buf := quietSet("app")
	var greeted []string
	greet := set.AddCommand("greet {names*}", "Greets people").Does(func(in *input.Input, _ *Printer) error {
		greeted = append(greeted, MustGet(in.Argument("names")).Strings()...)
		return nil
	})
	greet.AddCommand("twice {name}", "Greets someone twice").Does(func(in *input.Input, _ *Printer) error {
		name := MustGet(in.Argument("name")).String()
		greeted = append(greeted, name, name)
		return nil
	})

	script := strings.Join([]string{
		"greet 'John Doe' Jane",
		"",
		"$use greet",
		"twice Joe",
		"twice",
		"$back",
		"$back",
		"greet \"unterminated",
		"-i",
		"quit",
		"greet never",
	}, "\n")
	require.NoError(t, set.interactiveLoop("app", strings.NewReader(script), false))
	assert.Equal(t, []string{"John Doe", "Jane", "Joe", "Joe"}, greeted)

	out := buf.String()
	assert.Contains(t, out, "Using 'greet'")
	assert.Contains(t, out, "missing required argument")
	assert.Contains(t, out, "Already at root command")
	assert.Contains(t, out, "Unable to parse line")
	assert.Contains(t, out, "Cannot run interactively twice")
	assert.NotContains(t, out, "app>", "No prompt should be printed when not attached to a terminal")
}

func TestCommandSet_interactiveLoop_Prompt(t *testing.T) {
	set, buf := quietSet("app")
	require.NoError(t, set.interactiveLoop("app", strings.NewReader("x\n"), true))
	assert.Contains(t, buf.String(), "Running 'app' interactively")
	assert.Contains(t, buf.String(), "app> ")
}
