package command

// Context is one resolved activation of a command against a slice of the
// token stream. Contexts form a singly linked chain from the root to the
// innermost active command and live for a single request.
type Context struct {
	// Parent is the enclosing context, nil at the root.
	Parent *Context
	// Command is the node this context activates.
	Command Command
	// InvokedName is the name the command was invoked under.
	InvokedName string
	// Params maps parameter keys to their parsed values: nil when unset,
	// bool for flags, string for single values, []string for multi-value
	// and repeated parameters.
	Params map[string]any
	// ProtectedArgs are leftover tokens reserved for subcommand dispatch.
	ProtectedArgs []string
	// Args are the remaining unconsumed tokens.
	Args []string
}

// ContextOpts configures MakeContext.
type ContextOpts struct {
	// Parent links the new context into an existing chain.
	Parent *Context
	// Resilient converts parse failures into a best-effort context instead
	// of an error. Completion always parses resiliently.
	Resilient bool
	// AllowExtraArgs accepts trailing tokens no parameter consumes.
	AllowExtraArgs bool
	// NoInterspersedArgs stops option parsing at the first positional
	// token. Groups always behave this way.
	NoInterspersedArgs bool
}

// MakeContext parses args against cmd and returns the resulting context.
// With opts.Resilient set the error is always nil and the context reflects
// whatever could be parsed.
func MakeContext(cmd Command, name string, args []string, opts ContextOpts) (*Context, error) {
	ctx := &Context{
		Parent:      opts.Parent,
		Command:     cmd,
		InvokedName: name,
		Params:      make(map[string]any),
	}

	params := cmd.Params(ctx)
	for _, p := range params {
		ctx.Params[p.Key()] = nil
	}

	p := newParser(params, parserOpts{
		resilient:    opts.Resilient,
		interspersed: cmd.interspersed() && !opts.NoInterspersedArgs,
	})
	rest, err := p.parse(ctx, args)
	if err != nil && !opts.Resilient {
		return nil, err
	}

	group, isGroup := cmd.(Container)
	switch {
	case isGroup && group.Chained():
		ctx.ProtectedArgs = rest
	case isGroup:
		if len(rest) > 0 {
			ctx.ProtectedArgs = rest[:1]
			ctx.Args = rest[1:]
		}
	default:
		if len(rest) > 0 && !opts.AllowExtraArgs && !opts.Resilient {
			return nil, errExtraArgs(rest)
		}
		ctx.Args = rest
	}

	return ctx, nil
}
