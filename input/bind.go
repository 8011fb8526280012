package input

import "fmt"

// Bind matches the given invocation arguments against this [Definition].
func (d *Definition) Bind(args []string) (*Input, error) {
	return Bind(d, Tokenize(d, args))
}

type binder struct {
	def      *Definition
	tokens   []Token
	pos      int
	args     map[string]Value
	opts     map[string]Value
	nextArg  int
	listVals []string
}

// Bind walks the classified tokens once, left to right, and produces an [*Input].
// The first problem found is returned as a [*BindingError], and no [Input] is returned with it.
func Bind(def *Definition, tokens []Token) (*Input, error) {
	b := &binder{
		def:    def,
		tokens: tokens,
		args:   make(map[string]Value, len(def.args)),
		opts:   make(map[string]Value, len(def.opts)),
	}
	for b.pos < len(b.tokens) {
		if err := b.step(); err != nil {
			return nil, err
		}
		b.pos++
	}
	if err := b.finishArguments(); err != nil {
		return nil, err
	}
	b.finishOptions()
	return &Input{def: def, args: b.args, opts: b.opts}, nil
}

func (b *binder) step() error {
	tok := b.tokens[b.pos]
	switch tok.Kind {
	case TokenEndOfOptions:
		return nil
	case TokenLongOption:
		opt, ok := b.def.option(tok.Name)
		if !ok {
			return &BindingError{Kind: UnknownOption, Name: tok.Name, Token: tok.Raw, Index: tok.Index}
		}
		return b.bindOption(opt, tok)
	case TokenShortOption:
		opt, ok := b.def.optionByShortcut(tok.Name)
		if !ok {
			token := "-" + tok.Name
			if tok.Raw != token {
				token = fmt.Sprintf("%s (in %s)", token, tok.Raw)
			}
			return &BindingError{Kind: UnknownOption, Name: tok.Name, Token: token, Index: tok.Index}
		}
		return b.bindOption(opt, tok)
	default:
		return b.bindPositional(tok)
	}
}

func (b *binder) bindOption(opt *OptionSpec, tok Token) error {
	if !opt.AcceptsValue() {
		if tok.HasValue {
			return &BindingError{Kind: UnexpectedOptionValue, Name: opt.Name, Token: tok.Raw, Index: tok.Index}
		}
		b.opts[opt.Name] = flagValue(true)
		return nil
	}

	var (
		value    = tok.Value
		hasValue = tok.HasValue
	)
	if !hasValue {
		next := b.pos + 1
		switch {
		case next < len(b.tokens) && !b.tokens[next].isOptionLike():
			value = b.tokens[next].Value
			hasValue = true
			b.pos = next
		case opt.ValueRequired():
			return &BindingError{Kind: MissingOptionValue, Name: opt.Name, Token: tok.Raw, Index: tok.Index}
		}
	}

	current := b.opts[opt.Name]
	if opt.IsList() {
		current.list = true
		if hasValue {
			current.vals = append(current.vals, value)
			current.state = StateSupplied
		} else if current.state != StateSupplied {
			current.state = StateSuppliedEmpty
		}
		b.opts[opt.Name] = current
		return nil
	}
	if hasValue {
		b.opts[opt.Name] = Value{state: StateSupplied, vals: []string{value}}
		return nil
	}
	b.opts[opt.Name] = Value{state: StateSuppliedEmpty}
	return nil
}

func (b *binder) bindPositional(tok Token) error {
	if b.nextArg < len(b.def.args) {
		arg := b.def.args[b.nextArg]
		if arg.IsList() {
			b.listVals = append(b.listVals, tok.Value)
			return nil
		}
		b.args[arg.Name] = Value{state: StateSupplied, vals: []string{tok.Value}}
		b.nextArg++
		return nil
	}
	return &BindingError{Kind: TooManyArguments, Token: tok.Raw, Index: tok.Index}
}

func (b *binder) finishArguments() error {
	for i := b.nextArg; i < len(b.def.args); i++ {
		arg := b.def.args[i]
		if arg.IsList() && len(b.listVals) > 0 {
			b.args[arg.Name] = Value{state: StateSupplied, list: true, vals: b.listVals}
			continue
		}
		if arg.IsRequired() {
			return &BindingError{Kind: MissingRequiredArgument, Name: arg.Name, Index: -1}
		}
		b.args[arg.Name] = defaultValue(arg.Default, arg.IsList())
	}
	return nil
}

func (b *binder) finishOptions() {
	for _, opt := range b.def.opts {
		if _, ok := b.opts[opt.Name]; ok {
			continue
		}
		if !opt.AcceptsValue() {
			b.opts[opt.Name] = flagValue(false)
			continue
		}
		b.opts[opt.Name] = defaultValue(opt.Default, opt.IsList())
	}
}
