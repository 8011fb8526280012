/*
Package signature parses compact command signatures into an [input.Definition].

A signature is a command name followed by entries in braces. Whitespace and line breaks between entries don't matter.

	demo:greet
	  {name? : Who to greet}
	  {--y|yell : Greet loudly}
	  {--iterations=1 : How many times to greet}

# Arguments

  - {name} is a required argument.
  - {name?} is an optional argument.
  - {name*}, {name?*}, and {name*?} collect the remaining values into an optional list.
  - {name=default} is an optional argument with a default value.
  - {name*=a,b} is an optional list with the default values a and b.

# Options

  - {--name} is a flag.
  - {--n|name} adds the single character shortcut "n".
  - {--name=} requires a value.
  - {--name=?} accepts an optional value.
  - {--name=*} requires a value, and may be repeated to collect a list.
  - {--name=?*} accepts an optional value, and may be repeated to collect a list.
  - {--name=default} requires a value, and has a default.

Any entry may end with a description after a colon surrounded by whitespace, like {name : The name}.
*/
package signature
