package input

import (
	"fmt"
	"slices"
	"strings"
)

// Definition is the finished, immutable schema of a command's inputs.
// Arguments keep their declared order, and options are indexed by name and shortcut.
type Definition struct {
	args       []ArgumentSpec
	opts       []OptionSpec
	argIndex   map[string]int
	optIndex   map[string]int
	shortcuts  map[string]int
	hasList    bool
	requiredNo int
}

// NewDefinition validates the given specs and creates a [Definition] from them.
// The slices are copied, so later changes by the caller have no effect.
//
// A [*DefinitionError] is returned if any invariant is violated.
func NewDefinition(args []ArgumentSpec, opts []OptionSpec) (*Definition, error) {
	def := &Definition{
		args:      slices.Clone(args),
		opts:      slices.Clone(opts),
		argIndex:  make(map[string]int, len(args)),
		optIndex:  make(map[string]int, len(opts)),
		shortcuts: map[string]int{},
	}
	for i := range def.args {
		def.args[i].Default = cloneDefault(def.args[i].Default)
	}
	for i := range def.opts {
		def.opts[i].Default = cloneDefault(def.opts[i].Default)
	}
	if err := def.indexArguments(); err != nil {
		return nil, err
	}
	if err := def.indexOptions(); err != nil {
		return nil, err
	}
	return def, nil
}

// MustDefinition is like [NewDefinition], but panics if the definition is invalid.
func MustDefinition(args []ArgumentSpec, opts []OptionSpec) *Definition {
	def, err := NewDefinition(args, opts)
	if err != nil {
		panic(err)
	}
	return def
}

func cloneDefault(d Default) Default {
	if !d.set {
		return Default{}
	}
	return Default{vals: slices.Clone(d.vals), set: true}
}

func (d *Definition) indexArguments() error {
	var (
		lastOptional = -1
		listAt       = -1
	)
	for i, arg := range d.args {
		if !validName(arg.Name) {
			return newDefinitionError(InvalidName, TargetArgument, i, arg.Name, "argument name %q is not valid", arg.Name)
		}
		if arg.Mode&^argumentModeMask != 0 {
			return newDefinitionError(InvalidMode, TargetArgument, i, arg.Name, "argument '%s' has unknown mode bits %#x", arg.Name, uint8(arg.Mode))
		}
		if _, ok := d.argIndex[arg.Name]; ok {
			return newDefinitionError(DuplicateName, TargetArgument, i, arg.Name, "an argument named '%s' already exists", arg.Name)
		}
		if listAt >= 0 {
			if arg.IsList() {
				return newDefinitionError(MultipleListArguments, TargetArgument, i, arg.Name, "argument '%s' is a list, but '%s' already is", arg.Name, d.args[listAt].Name)
			}
			return newDefinitionError(ListArgumentNotLast, TargetArgument, i, arg.Name, "argument '%s' is declared after list argument '%s'", arg.Name, d.args[listAt].Name)
		}
		if arg.IsRequired() && lastOptional >= 0 {
			return newDefinitionError(RequiredAfterOptional, TargetArgument, i, arg.Name, "required argument '%s' is declared after optional argument '%s'", arg.Name, d.args[lastOptional].Name)
		}
		if err := validateDefault(arg.Default, !arg.IsRequired(), arg.IsList()); err != nil {
			return newDefinitionError(InvalidDefault, TargetArgument, i, arg.Name, "argument '%s': %s", arg.Name, err)
		}
		if arg.IsRequired() {
			d.requiredNo++
		} else {
			lastOptional = i
		}
		if arg.IsList() {
			listAt = i
			d.hasList = true
		}
		d.argIndex[arg.Name] = i
	}
	return nil
}

func (d *Definition) indexOptions() error {
	for i, opt := range d.opts {
		if !validName(opt.Name) {
			return newDefinitionError(InvalidName, TargetOption, i, opt.Name, "option name %q is not valid", opt.Name)
		}
		if len(opt.Shortcut) > 0 && !validShortcut(opt.Shortcut) {
			return newDefinitionError(InvalidShortcut, TargetOption, i, opt.Name, "option '%s' has shortcut %q, which must be a single character", opt.Name, opt.Shortcut)
		}
		switch {
		case opt.Mode&^optionModeMask != 0:
			return newDefinitionError(InvalidMode, TargetOption, i, opt.Name, "option '%s' has unknown mode bits %#x", opt.Name, uint8(opt.Mode))
		case opt.ValueRequired() && opt.ValueOptional():
			return newDefinitionError(InvalidMode, TargetOption, i, opt.Name, "option '%s' cannot both require a value and have an optional value", opt.Name)
		case opt.IsList() && !opt.AcceptsValue():
			return newDefinitionError(InvalidMode, TargetOption, i, opt.Name, "list option '%s' must accept a value", opt.Name)
		}
		if _, ok := d.optIndex[opt.Name]; ok {
			return newDefinitionError(DuplicateName, TargetOption, i, opt.Name, "an option named '%s' already exists", opt.Name)
		}
		if len(opt.Shortcut) > 0 {
			if other, ok := d.shortcuts[opt.Shortcut]; ok {
				return newDefinitionError(DuplicateShortcut, TargetOption, i, opt.Name, "shortcut '%s' of option '%s' is already used by option '%s'", opt.Shortcut, opt.Name, d.opts[other].Name)
			}
		}
		if err := validateDefault(opt.Default, opt.AcceptsValue(), opt.IsList()); err != nil {
			return newDefinitionError(InvalidDefault, TargetOption, i, opt.Name, "option '%s': %s", opt.Name, err)
		}
		d.optIndex[opt.Name] = i
		if len(opt.Shortcut) > 0 {
			d.shortcuts[opt.Shortcut] = i
		}
	}
	return nil
}

func validateDefault(def Default, allowed, list bool) error {
	if !def.IsSet() {
		return nil
	}
	if !allowed {
		return fmt.Errorf("a default is only allowed on optional arguments and options that accept a value")
	}
	if !list && len(def.vals) != 1 {
		return fmt.Errorf("a single value default must have exactly one value, got %d", len(def.vals))
	}
	return nil
}

// WithOptions creates a new [Definition] with additional options appended.
// The result is validated the same way as [NewDefinition].
func (d *Definition) WithOptions(opts ...OptionSpec) (*Definition, error) {
	return NewDefinition(d.args, append(slices.Clone(d.opts), opts...))
}

// Arguments returns a copy of the declared arguments in order.
func (d *Definition) Arguments() []ArgumentSpec {
	args := make([]ArgumentSpec, len(d.args))
	for i, arg := range d.args {
		arg.Default = cloneDefault(arg.Default)
		args[i] = arg
	}
	return args
}

// Options returns a copy of the declared options in declaration order.
func (d *Definition) Options() []OptionSpec {
	opts := make([]OptionSpec, len(d.opts))
	for i, opt := range d.opts {
		opt.Default = cloneDefault(opt.Default)
		opts[i] = opt
	}
	return opts
}

func (d *Definition) Argument(name string) (ArgumentSpec, bool) {
	i, ok := d.argIndex[name]
	if !ok {
		return ArgumentSpec{}, false
	}
	arg := d.args[i]
	arg.Default = cloneDefault(arg.Default)
	return arg, true
}

func (d *Definition) Option(name string) (OptionSpec, bool) {
	i, ok := d.optIndex[name]
	if !ok {
		return OptionSpec{}, false
	}
	opt := d.opts[i]
	opt.Default = cloneDefault(opt.Default)
	return opt, true
}

func (d *Definition) OptionByShortcut(shortcut string) (OptionSpec, bool) {
	i, ok := d.shortcuts[shortcut]
	if !ok {
		return OptionSpec{}, false
	}
	return d.Option(d.opts[i].Name)
}

// HasListArgument reports whether the last argument collects a list.
func (d *Definition) HasListArgument() bool {
	return d.hasList
}

// RequiredArguments returns the number of arguments that must be supplied.
func (d *Definition) RequiredArguments() int {
	return d.requiredNo
}

func (d *Definition) option(name string) (*OptionSpec, bool) {
	i, ok := d.optIndex[name]
	if !ok {
		return nil, false
	}
	return &d.opts[i], true
}

func (d *Definition) optionByShortcut(shortcut string) (*OptionSpec, bool) {
	i, ok := d.shortcuts[shortcut]
	if !ok {
		return nil, false
	}
	return &d.opts[i], true
}

// Synopsis returns a one line summary of the definition, suitable for usage output.
//
//	[-y|--yell] [--iterations ITERATIONS] [--] <name> [<names>...]
func (d *Definition) Synopsis() string {
	var elements []string
	for _, opt := range d.opts {
		var buf strings.Builder
		buf.WriteString("[")
		if len(opt.Shortcut) > 0 {
			buf.WriteString("-" + opt.Shortcut + "|")
		}
		buf.WriteString("--" + opt.Name)
		placeholder := strings.ToUpper(opt.Name)
		switch {
		case opt.ValueRequired():
			buf.WriteString(" " + placeholder)
		case opt.ValueOptional():
			buf.WriteString("[=" + placeholder + "]")
		}
		buf.WriteString("]")
		if opt.IsList() {
			buf.WriteString("...")
		}
		elements = append(elements, buf.String())
	}
	if len(d.opts) > 0 && len(d.args) > 0 {
		elements = append(elements, "[--]")
	}
	var tail string
	for _, arg := range d.args {
		element := "<" + arg.Name + ">"
		if arg.IsList() {
			element += "..."
		}
		if !arg.IsRequired() {
			element = "[" + element
			tail += "]"
		}
		elements = append(elements, element)
	}
	return strings.Join(elements, " ") + tail
}
