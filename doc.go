/*
Package cmdsig declares command line inputs with a compact signature, and binds raw arguments to them.

The module is split along the same lines as the work it does.

  - The input package holds the data model. A [input.Definition] is an immutable set of argument and option specs,
    and binding argv against it produces an [input.Input], or a typed binding error.
  - The signature package parses strings like "greet {name? : Who to greet} {--y|yell}" into a definition.
  - The cli package dispatches sub-commands, prints usage, and binds input before a command handler runs.
  - The manifest package loads command declarations from a TOML file.
  - The env package reads case-insensitive environment configuration for the cli package.
*/
package cmdsig
