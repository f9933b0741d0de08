package command

import (
	"fmt"
	"strings"
)

// ParseError reports a token stream the strict parser could not consume.
// Resilient parsing never returns it.
type ParseError struct {
	Token   string
	Message string
}

func (e *ParseError) Error() string {
	return e.Message
}

func errExtraArgs(rest []string) error {
	return &ParseError{
		Token:   rest[0],
		Message: fmt.Sprintf("got unexpected extra arguments (%s)", strings.Join(rest, " ")),
	}
}

type parserOpts struct {
	resilient    bool
	interspersed bool
}

// parser consumes a token stream against a declared parameter list. It is
// built per MakeContext call and discarded afterwards.
type parser struct {
	opts parserOpts

	options   map[string]*Option // spelling -> option
	secondary map[string]bool    // spelling -> is a secondary ("off") form
	args      []*Argument        // declaration order
}

func newParser(params []Param, opts parserOpts) *parser {
	p := &parser{
		opts:      opts,
		options:   make(map[string]*Option),
		secondary: make(map[string]bool),
	}
	for _, param := range params {
		switch v := param.(type) {
		case *Option:
			for _, s := range v.Opts {
				p.options[s] = v
			}
			for _, s := range v.SecondaryOpts {
				p.options[s] = v
				p.secondary[s] = true
			}
		case *Argument:
			p.args = append(p.args, v)
		}
	}
	return p
}

// isOptionToken reports whether tok introduces an option. A lone dash is a
// positional by convention.
func isOptionToken(tok string) bool {
	return len(tok) > 1 && tok[0] == '-' && tok != "--"
}

// parse consumes tokens, storing parsed values into ctx.Params, and returns
// the leftover tokens. In resilient mode a failure stops parsing and the
// unconsumed remainder is returned as leftovers with no error.
func (p *parser) parse(ctx *Context, tokens []string) ([]string, error) {
	var positional []string
	inOptions := true
	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		if inOptions && tok == "--" {
			inOptions = false
			i++
			continue
		}
		if inOptions && isOptionToken(tok) {
			consumed, err := p.handleOption(ctx, tokens, i)
			if err != nil {
				if p.opts.resilient {
					// Abandon parsing. The failing token and the unprocessed
					// remainder are dropped; positionals seen so far survive
					// as leftovers with declared arguments left unset.
					return positional, nil
				}
				return nil, err
			}
			i += consumed
			continue
		}
		if !p.opts.interspersed {
			positional = append(positional, tokens[i:]...)
			break
		}
		positional = append(positional, tok)
		i++
	}

	return p.bindArguments(ctx, positional)
}

func (p *parser) handleOption(ctx *Context, tokens []string, i int) (int, error) {
	spelling, inline, hasInline := strings.Cut(tokens[i], "=")
	opt, ok := p.options[spelling]
	if !ok {
		return 0, &ParseError{Token: spelling, Message: "no such option: " + spelling}
	}

	if opt.IsFlag {
		ctx.Params[opt.Key()] = !p.secondary[spelling]
		return 1, nil
	}

	n := opt.Arity()
	var values []string
	if hasInline {
		values = append(values, inline)
	}
	j := i + 1
	for len(values) < n && j < len(tokens) {
		values = append(values, tokens[j])
		j++
	}
	if len(values) < n {
		return 0, &ParseError{
			Token:   spelling,
			Message: fmt.Sprintf("option %s requires %d argument(s)", spelling, n),
		}
	}

	key := opt.Key()
	if opt.Multiple {
		prev, _ := ctx.Params[key].([]string)
		ctx.Params[key] = append(prev, values...)
	} else if n == 1 {
		ctx.Params[key] = values[0]
	} else {
		ctx.Params[key] = values
	}
	return j - i, nil
}

// bindArguments distributes positional tokens over the declared arguments
// in order and returns the leftovers.
func (p *parser) bindArguments(ctx *Context, positional []string) ([]string, error) {
	remaining := positional
	var firstErr error
	for _, arg := range p.args {
		n := arg.Arity()
		switch {
		case n == UnboundedNArgs:
			if len(remaining) > 0 {
				ctx.Params[arg.Key()] = remaining
				remaining = nil
			}
		case n == 1:
			if len(remaining) > 0 {
				ctx.Params[arg.Key()] = remaining[0]
				remaining = remaining[1:]
			} else if arg.Required && firstErr == nil {
				firstErr = &ParseError{
					Token:   arg.Name,
					Message: fmt.Sprintf("missing argument %q", arg.Name),
				}
			}
		default:
			take := n
			if take > len(remaining) {
				take = len(remaining)
			}
			if take > 0 {
				ctx.Params[arg.Key()] = remaining[:take:take]
				remaining = remaining[take:]
			}
			if take < n && arg.Required && firstErr == nil {
				firstErr = &ParseError{
					Token:   arg.Name,
					Message: fmt.Sprintf("argument %q requires %d values", arg.Name, n),
				}
			}
		}
	}
	if p.opts.resilient {
		return remaining, nil
	}
	return remaining, firstErr
}
