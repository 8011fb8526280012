package cli

import "slices"

// PreExec is a function that may run before execution of a [Command].
type PreExec func() error

// BeforeExec registers a function that will be executed right before any [Command] in this [CommandSet], or in a nested set, runs.
// Functions registered on outer sets run first.
// If an error is returned from a [PreExec], then the [Command] will not be executed, and the error will be returned from Exec instead.
// Note that no [PreExec] is run when input fails to bind, or when only usage is printed.
//
// Passing a nil [PreExec] function to this method will panic.
func (s *CommandSet) BeforeExec(fn PreExec) {
	if fn == nil {
		panic("nil pre-exec function")
	}
	s.hookMux.Lock()
	defer s.hookMux.Unlock()
	s.hooks = append(s.hooks, fn)
}

func (s *CommandSet) preExecHooks() []PreExec {
	s.hookMux.Lock()
	defer s.hookMux.Unlock()
	return slices.Clone(s.hooks)
}

func (c *Command) runPreExec() error {
	var chain [][]PreExec
	for set := c.CommandSet.owner; set != nil; set = set.owner {
		chain = append(chain, set.preExecHooks())
	}
	slices.Reverse(chain)
	for _, hooks := range chain {
		for _, fn := range hooks {
			if err := fn(); err != nil {
				return err
			}
		}
	}
	return nil
}
