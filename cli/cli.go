package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/saylorsolutions/cmdsig/input"
	"github.com/saylorsolutions/cmdsig/signature"
)

const (
	HelpOption   = "help" // HelpOption is the name of the option added to every command that doesn't declare its own.
	HelpShortcut = "h"    // HelpShortcut is added with HelpOption if no other option uses it.
)

var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrInvalidCommand   = errors.New("invalid command")
	ErrDuplicateCommand = errors.New("duplicate command")
	HelpPatterns        = []string{"--help", "-h"} // HelpPatterns is a slice of flags that should trigger the output of usage information with the top-level [CommandSet].

	keyCleansePattern = regexp.MustCompile(`\s`)
)

// CommandFunc is a function that may be executed within a [Command].
// The [input.Input] is fully bound before the function is called.
type CommandFunc = func(in *input.Input, printer *Printer) error

// Runner declares its inputs, and runs once they're bound.
// [*Command] is the usual implementation, but anything that satisfies this may be used with [Invoke].
type Runner interface {
	Definition() *input.Definition
	Run(in *input.Input, printer *Printer) error
}

var _ Runner = (*Command)(nil)

// Invoke binds args against the [Runner]'s definition and runs it.
// A binding problem is returned as a [UsageError], and the [Runner] isn't run.
func Invoke(r Runner, args []string, printer *Printer) error {
	in, err := r.Definition().Bind(args)
	if err != nil {
		return &UsageError{wrapped: err}
	}
	return r.Run(in, printer)
}

// Command is an executable function in a CLI, with inputs declared by a signature.
// It should be linked to a [CommandSet] to establish a tree of commands available to the user.
type Command struct {
	CommandSet
	def        *input.Definition
	exec       CommandFunc
	key        string
	parent     string
	shortUsage string
	usage      string
	helpName   string
	helpShort  string
	aliases    []string
}

func cleanseKey(key string) string {
	return keyCleansePattern.ReplaceAllString(strings.ToLower(key), "")
}

func newCommand(sig, shortUsage string, owner *CommandSet) (*Command, error) {
	parsed, err := signature.Parse(sig)
	if err != nil {
		return nil, err
	}
	key := cleanseKey(parsed.Name)
	if len(key) == 0 {
		return nil, fmt.Errorf("%w: signature %q has no command name", ErrInvalidCommand, sig)
	}
	cmd := &Command{
		key:        key,
		parent:     owner.parent,
		shortUsage: shortUsage,
	}
	if err := cmd.setDefinition(parsed.Definition); err != nil {
		return nil, err
	}
	cmd.CommandSet.owner = owner
	cmd.CommandSet.printer = owner.Printer()
	if len(owner.parent) > 0 {
		cmd.CommandSet.parent = strings.Join([]string{owner.parent, key}, " ")
	} else {
		cmd.CommandSet.parent = key
	}
	cmd.Does(func(_ *input.Input, _ *Printer) error {
		cmd.PrintUsage()
		return nil
	})
	return cmd, nil
}

// setDefinition adds the help option unless the definition already declares it.
func (c *Command) setDefinition(def *input.Definition) error {
	if _, ok := def.Option(HelpOption); ok {
		c.def = def
		return nil
	}
	help := input.OptionSpec{Name: HelpOption, Description: "Prints this usage information"}
	if _, taken := def.OptionByShortcut(HelpShortcut); !taken {
		help.Shortcut = HelpShortcut
	}
	withHelp, err := def.WithOptions(help)
	if err != nil {
		return err
	}
	c.def = withHelp
	c.helpName = help.Name
	c.helpShort = help.Shortcut
	return nil
}

// Does specifies the [CommandFunc] that should be executed by this [Command].
func (c *Command) Does(commandFunc CommandFunc) *Command {
	if commandFunc == nil {
		return c
	}
	c.exec = commandFunc
	return c
}

// Parent retrieves the parent [Command] name.
func (c *Command) Parent() string {
	return c.parent
}

// CommandPath returns the reference chain for this [Command].
func (c *Command) CommandPath() string {
	if len(c.parent) == 0 {
		return c.key
	}
	return fmt.Sprintf("%s %s", c.parent, c.key)
}

// Definition returns the inputs this [Command] accepts, including the help option.
func (c *Command) Definition() *input.Definition {
	return c.def
}

// Usage allows specifying a longer description of the [Command] that will be output when a [HelpPatterns] flag is passed.
//
// The short description, argument and flag usages, and sub-command usages will be appended to this description.
// If no usage is given, then the command path and the signature synopsis are used.
func (c *Command) Usage(format string, args ...any) *Command {
	c.usage = fmt.Sprintf(format, args...)
	return c
}

// Exec binds the given arguments and executes the command.
// Binding problems are printed along with usage information, and returned as a [UsageError].
func (c *Command) Exec(args []string) error {
	if err := c.CommandSet.Exec(args); err != nil {
		if !errors.Is(err, ErrUnknownCommand) {
			return err
		}
	} else {
		return nil
	}
	log := c.Logger().With("command", c.CommandPath())
	tokens := input.Tokenize(c.def, args)
	if c.wantsHelp(tokens) {
		c.PrintUsage()
		return nil
	}
	in, err := input.Bind(c.def, tokens)
	if err != nil {
		var bindErr *input.BindingError
		if errors.As(err, &bindErr) {
			log.Info("Failed to bind input", "kind", bindErr.Kind.String(), "token", bindErr.Token, "index", bindErr.Index)
		}
		c.Printer().Println(err)
		c.PrintUsage()
		return &UsageError{wrapped: err, command: c.CommandPath()}
	}
	log.Debug("Bound input", "args", len(args))
	return c.Run(in, c.Printer())
}

// Run executes pre-exec hooks and then the [CommandFunc] with input that's already bound.
func (c *Command) Run(in *input.Input, printer *Printer) error {
	if err := c.runPreExec(); err != nil {
		return err
	}
	return c.exec(in, printer)
}

func (c *Command) wantsHelp(tokens []input.Token) bool {
	if len(c.helpName) == 0 {
		return false
	}
	for _, tok := range tokens {
		switch {
		case tok.Kind == input.TokenEndOfOptions:
			return false
		case tok.HasValue:
			continue
		case tok.Kind == input.TokenLongOption && tok.Name == c.helpName:
			return true
		case tok.Kind == input.TokenShortOption && len(c.helpShort) > 0 && tok.Name == c.helpShort:
			return true
		}
	}
	return false
}

// CommandSet is a group of [Command].
// A CommandSet is an explicit registry, there is no global set of commands.
type CommandSet struct {
	commands map[string]*Command
	aliases  map[string]*Command
	printer  *Printer
	logger   *slog.Logger
	config   *Config
	owner    *CommandSet
	parent   string
	hookMux  sync.Mutex
	hooks    []PreExec
}

// NewCommandSet is used to set up a top level [CommandSet] as the root of a CLI's command structure.
// Configuration is loaded from the environment with [LoadConfig].
//
// Note: the parent(s) passed to this function will be used to populate sub-command usage information.
// So they should only contain the commands used to invoke this [CommandSet].
func NewCommandSet(parent ...string) *CommandSet {
	var _parent string
	if len(parent) > 0 {
		_parent = strings.Join(parent, " ")
	}
	cfg := LoadConfig()
	return &CommandSet{printer: NewPrinter(), parent: _parent, config: &cfg}
}

// Parent retrieves the parent [CommandSet] name.
func (s *CommandSet) Parent() string {
	return s.parent
}

// Register parses the signature and adds the resulting sub-command to this [CommandSet].
// The command name from the signature will be cleansed to remove spaces, and normalize to lower-case.
// Aliases may be added as a way to support shorter variants of the same [Command].
//
// An error wrapping [input.ErrDefinition] is returned if the signature is invalid.
func (s *CommandSet) Register(sig, shortUsage string, aliases ...string) (*Command, error) {
	cmd, err := newCommand(sig, shortUsage, s)
	if err != nil {
		return nil, err
	}
	if s.lookup(cmd.key) != nil {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateCommand, cmd.key)
	}
	var _aliases []string
	for _, alias := range aliases {
		alias = cleanseKey(alias)
		if len(alias) == 0 {
			continue
		}
		if alias == cmd.key || s.lookup(alias) != nil {
			return nil, fmt.Errorf("%w: alias %s", ErrDuplicateCommand, alias)
		}
		_aliases = append(_aliases, alias)
	}
	slices.Sort(_aliases)
	cmd.aliases = _aliases

	if s.commands == nil {
		s.commands = map[string]*Command{}
	}
	s.commands[cmd.key] = cmd
	for _, alias := range _aliases {
		if s.aliases == nil {
			s.aliases = map[string]*Command{}
		}
		s.aliases[alias] = cmd
	}
	s.Logger().Debug("Registered command", "command", cmd.CommandPath(), "synopsis", cmd.def.Synopsis())
	return cmd, nil
}

// AddCommand is like [CommandSet.Register], but panics if the command can't be registered.
// A bad signature is a programming error, so it should be surfaced as early as possible.
func (s *CommandSet) AddCommand(sig, shortUsage string, aliases ...string) *Command {
	cmd, err := s.Register(sig, shortUsage, aliases...)
	if err != nil {
		panic(err)
	}
	return cmd
}

func (s *CommandSet) lookup(key string) *Command {
	if cmd, ok := s.commands[key]; ok {
		return cmd
	}
	if cmd, ok := s.aliases[key]; ok {
		return cmd
	}
	return nil
}

// Printer returns the cached [Printer] for this [CommandSet].
func (s *CommandSet) Printer() *Printer {
	if s.printer == nil {
		if s.owner != nil {
			s.printer = s.owner.Printer()
		} else {
			s.printer = NewPrinter()
		}
	}
	return s.printer
}

// SetLogger replaces the logger used by this [CommandSet] and commands that don't have their own.
func (s *CommandSet) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Logger returns the logger for this [CommandSet].
// Unless one is set with [CommandSet.SetLogger], it's inherited from the parent set, or writes text to the [Printer] at the configured level.
func (s *CommandSet) Logger() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	if s.owner != nil {
		return s.owner.Logger()
	}
	s.logger = slog.New(slog.NewTextHandler(s.Printer(), &slog.HandlerOptions{Level: s.Config().LogLevel}))
	return s.logger
}

// Config returns the configuration used by this [CommandSet].
// Nested sets use the configuration of the set they're registered with.
func (s *CommandSet) Config() Config {
	if s.config == nil && s.owner != nil {
		return s.owner.Config()
	}
	if s.config == nil {
		cfg := LoadConfig()
		s.config = &cfg
	}
	return *s.config
}

// SetConfig overrides the configuration loaded from the environment.
func (s *CommandSet) SetConfig(cfg Config) {
	s.config = &cfg
}

// Exec executes this [CommandSet].
// It's expected that the first 1+ arguments include the key/alias for a sub-command.
func (s *CommandSet) Exec(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no arguments", ErrUnknownCommand)
	}
	cmd := s.lookup(strings.ToLower(args[0]))
	if cmd == nil {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	return cmd.Exec(args[1:])
}

// RespondUsage will print usage information with the given [Printer] if one of [HelpPatterns] is given as the first argument.
// If usage information was printed, then true will be returned.
func (s *CommandSet) RespondUsage(format string, vals ...any) bool {
	return s.respondUsage(os.Args[1:], format, vals...)
}

func (s *CommandSet) respondUsage(args []string, format string, vals ...any) bool {
	if len(args) == 0 {
		return false
	}
	if slices.Contains(HelpPatterns, args[0]) {
		text := fmt.Sprintf(format, vals...)
		if len(text) > 0 {
			text = strings.TrimSuffix("\n\n"+text, "\n")
		}
		usage := fmt.Sprintf(`%s%s

COMMANDS:
%s`, s.parent, text, s.CommandUsages())
		s.Printer().Print(usage)
		return true
	}
	return false
}

// CommandUsages returns a string including the usage information for sub-commands in this [CommandSet].
//
// The sub-command keys will be sorted alphabetically before output.
func (s *CommandSet) CommandUsages() string {
	var (
		buf         strings.Builder
		keys        = make([]string, 0, len(s.commands))
		withAliases = make([]string, len(s.commands))
		maxLen      int
	)
	for key := range s.commands {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for i, key := range keys {
		cmd := s.commands[key]
		withAliases[i] = strings.Join(append([]string{key}, cmd.aliases...), ", ")
		maxLen = max(maxLen, len(withAliases[i]))
	}
	fmtStr := fmt.Sprintf("  %%-%ds\t%%s\n", maxLen)
	for i, key := range keys {
		buf.WriteString(fmt.Sprintf(fmtStr, withAliases[i], s.commands[key].shortUsage))
	}
	return buf.String()
}
