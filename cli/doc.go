/*
Package cli provides an opinionated package for how a CLI with sub-commands can be structured, with command inputs declared by a signature.

There are a few reasonable (IMHO) policies for how this operates.

  - User-visible output should go to STDERR by default. This is supported with a configurable [Printer].
  - Inputs are declared with a signature parsed by the signature package, and bound by the input package before a command runs.
  - A command never sees half-bound input. Binding problems are printed with usage information, and returned as a [UsageError].
  - Global state is often confusing and not necessary. A [CommandSet] is an explicit value, owned by main.
  - Sub-command aliases are often very convenient, so they're supported as additional, optional parameters to [CommandSet.AddCommand].

# Invocation

Invoking a CLI with sub-commands can always follow this form:

	CLI_NAME [SUB-COMMAND...] [OPTIONS...] [ARGS...]

Options and arguments may be interspersed, and "--" ends option parsing.
Just calling CLI_NAME will print usage information for the tool.

# Signatures

	set := cli.NewCommandSet("my-cli")
	set.AddCommand("greet {name? : Who to greet} {--y|yell : Greet loudly}", "Greets someone").
		Does(func(in *input.Input, out *cli.Printer) error {
			msg := "Hello " + cli.MustGet(in.Argument("name")).String()
			if cli.MustGet(in.Option("yell")).Bool() {
				msg = strings.ToUpper(msg)
			}
			out.Println(msg)
			return nil
		})

A signature that doesn't parse is a programming error, so [CommandSet.AddCommand] panics.
Use [CommandSet.Register] when signatures come from somewhere else, like a manifest file.

# Usage by default

Usage information can be incredibly helpful for understanding a tool's purpose and expectations.
That's why the '-h' and '--help' options are set up by default, unless a command declares its own help option.

Argument usage, flag usage, and sub-command usage are included in a usage template along with developer-provided usage information from [Command.Usage].
Flag usage is rendered by mirroring options into a [pflag] FlagSet, so it looks like any other posix style CLI.

To display usage information from the root [CommandSet]'s perspective, use [CommandSet.RespondUsage].
This method will return true if the user requested root command usage.

# Configuration and logging

[NewCommandSet] reads [Config] from the environment. [EnvLogLevel] sets the level of the default [log/slog] logger, which writes to the [Printer].
A different logger may be set with [CommandSet.SetLogger].

# Prioritizing Dev UX

Developers want nice things too, especially with tooling they rely on.
This is the motivation for interactive mode.

If your CLI calls [CommandSet.RespondInteractive], then you're enabling the use of the interactive flag (which can be changed with [EnvInteractiveFlag]) to enter this mode.
This method will block for interactions and return true if the user requested interactive mode.

If you want to work with a nested sub-command the [UseCommand] can be used to push that string of sub-commands to an invocation stack.
Use the [BackCommand] to pop the invocation stack and go back to where you were.

To exit interactive mode, use one of the [InteractiveQuitCommands] at the prompt.

[pflag]: https://github.com/spf13/pflag
*/
package cli
