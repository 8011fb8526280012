/*
Package input defines the inputs a command accepts, and binds raw invocation tokens against them.

A [Definition] is an ordered list of [ArgumentSpec] and a set of [OptionSpec].
It's usually produced by parsing a signature with the signature package, but may also be built directly with [NewDefinition].
Either way, the same invariants are checked, and a violation is reported as a [*DefinitionError].

	def := input.MustDefinition(
		[]input.ArgumentSpec{
			{Name: "name", Mode: input.ArgumentOptional, Description: "Who to greet"},
		},
		[]input.OptionSpec{
			{Name: "yell", Shortcut: "y"},
		},
	)

# Binding

Binding happens once per invocation with [Definition.Bind], which tokenizes the given arguments with [Tokenize] and matches them against the [Definition].
The result is a read-only [*Input], or a [*BindingError] describing the first problem encountered. An [Input] is never partially populated.

	in, err := def.Bind([]string{"John", "-y"})
	if err != nil {
		// Show usage to the user.
	}
	name := cli.MustGet(in.Argument("name")).String()

Tokens follow these rules:
  - "--" ends option parsing. Every token after it is a positional value.
  - "--name" and "--name=value" are long options.
  - "-abc" is a cluster of shortcuts. A shortcut that accepts a value takes the rest of the cluster as its value.
  - Anything else, including "-" by itself, is a positional value.

An option that accepts a value, but wasn't given one inline, takes the next token if it's a positional value.
So with an optional value, "--queue high" binds "high" to the option rather than to an argument.

A [Definition] is immutable and may be shared between goroutines. An [Input] belongs to the invocation that created it.
*/
package input
