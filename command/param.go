package command

import "strings"

// UnboundedNArgs is the sentinel for a positional argument that accepts any
// number of values.
const UnboundedNArgs = -1

// Candidate is a single completion suggestion: a display value and an
// optional description shown next to it by shells that support one.
type Candidate struct {
	Value       string
	Description string
}

// CompleteFunc produces completion candidates for a parameter value. It
// receives the resolved context, the args typed so far and the partial word
// under the cursor. A returned error propagates to the caller untouched.
type CompleteFunc func(ctx *Context, args []string, incomplete string) ([]Candidate, error)

// Param is either an *Option or an *Argument. The set of variants is
// closed; consumers dispatch with a type switch.
type Param interface {
	// Key is the name under which the parsed value is stored in
	// Context.Params.
	Key() string

	isParam()
}

// Option is a named parameter introduced by one of its flag spellings
// (e.g. --verbose or -v).
type Option struct {
	// Opts are the accepted flag spellings.
	Opts []string
	// SecondaryOpts are the "off" spellings of a boolean on/off pair
	// (e.g. --no-color for --color).
	SecondaryOpts []string
	// Name overrides the derived parameter name.
	Name string
	// Help is the short help text, also used as the candidate description.
	Help string
	// NArgs is the number of values the option consumes. Zero means one.
	NArgs int
	// IsFlag marks a zero-arity option.
	IsFlag bool
	// Multiple allows the option to be repeated.
	Multiple bool
	// Hidden excludes the option from completion output. It is still
	// parsed when spelled out in full.
	Hidden bool
	// Choices is a fixed enumerable value set.
	Choices []string
	// Complete generates value candidates dynamically. Ignored when
	// Choices is set.
	Complete CompleteFunc
}

func (o *Option) isParam() {}

// Key returns the explicit Name, or a name derived from the longest flag
// spelling with dashes stripped and inner dashes mapped to underscores.
func (o *Option) Key() string {
	if o.Name != "" {
		return o.Name
	}
	longest := ""
	for _, s := range o.Opts {
		if len(s) > len(longest) {
			longest = s
		}
	}
	longest = strings.TrimLeft(longest, "-")
	return strings.ReplaceAll(longest, "-", "_")
}

// Arity returns the number of values the option consumes.
func (o *Option) Arity() int {
	if o.IsFlag {
		return 0
	}
	if o.NArgs == 0 {
		return 1
	}
	return o.NArgs
}

// HasSpelling reports whether s is one of the option's accepted spellings,
// primary or secondary.
func (o *Option) HasSpelling(s string) bool {
	for _, opt := range o.Opts {
		if opt == s {
			return true
		}
	}
	for _, opt := range o.SecondaryOpts {
		if opt == s {
			return true
		}
	}
	return false
}

// Argument is a positional parameter.
type Argument struct {
	Name string
	// NArgs is the number of values consumed: zero means one,
	// UnboundedNArgs means all remaining.
	NArgs int
	// Required arguments make strict parsing fail when absent. Resilient
	// parsing ignores the constraint.
	Required bool
	// Choices is a fixed enumerable value set.
	Choices []string
	// Complete generates value candidates dynamically. Ignored when
	// Choices is set.
	Complete CompleteFunc
}

func (a *Argument) isParam() {}

// Key returns the argument name.
func (a *Argument) Key() string {
	return a.Name
}

// Arity returns the number of values the argument consumes, or
// UnboundedNArgs.
func (a *Argument) Arity() int {
	if a.NArgs == 0 {
		return 1
	}
	return a.NArgs
}
