// Package command implements quill's command tree and its resilient
// argument parser. A tree is built once at startup and is read-only
// afterwards; every parse produces a fresh chain of Contexts.
package command

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Command is a named node of the command tree. Leaf and Group are the only
// implementations.
type Command interface {
	// Name returns the command name used on the command line.
	Name() string
	// ShortHelp returns the one-line help text.
	ShortHelp() string
	// Hidden reports whether the command is excluded from completion and
	// listings. Hidden commands still resolve when typed in full.
	Hidden() bool
	// Params returns the declared parameters in declaration order,
	// followed by the implicit help option unless it was disabled.
	Params(ctx *Context) []Param

	// interspersed reports whether options may follow positional tokens.
	interspersed() bool
}

// Container is the capability of commands with named children. Only Group
// implements it.
type Container interface {
	Command

	// Chained reports whether several children may be invoked in sequence
	// on one line.
	Chained() bool
	// ListCommands returns child names in declaration order, hidden ones
	// included.
	ListCommands(ctx *Context) []string
	// GetCommand returns the child with the given name, or nil.
	GetCommand(ctx *Context, name string) Command
	// ResolveCommand resolves the next child from args. The returned
	// Command is nil when no child matches.
	ResolveCommand(ctx *Context, args []string) (string, Command, []string)
}

// helpOption is appended to every command's parameter list.
var helpOption = &Option{
	Opts:   []string{"--help"},
	IsFlag: true,
	Help:   "Show this message and exit.",
}

type settings struct {
	help      string
	hidden    bool
	params    []Param
	chained   bool
	noHelpOpt bool
	children  []Command
}

// Opt configures a command at construction time.
type Opt func(*settings)

// WithHelp sets the short help text.
func WithHelp(help string) Opt {
	return func(s *settings) { s.help = help }
}

// WithHidden hides the command from listings and completion.
func WithHidden() Opt {
	return func(s *settings) { s.hidden = true }
}

// WithParams declares the command's options and positional arguments, in
// order.
func WithParams(params ...Param) Opt {
	return func(s *settings) { s.params = append(s.params, params...) }
}

// WithChained lets a Group invoke several children in sequence on one
// line. Ignored by Leaf.
func WithChained() Opt {
	return func(s *settings) { s.chained = true }
}

// WithCommands adds children to a Group. Ignored by Leaf.
func WithCommands(children ...Command) Opt {
	return func(s *settings) { s.children = append(s.children, children...) }
}

// WithoutHelpOption suppresses the implicit --help flag.
func WithoutHelpOption() Opt {
	return func(s *settings) { s.noHelpOpt = true }
}

type base struct {
	name     string
	settings settings
}

func (b *base) Name() string      { return b.name }
func (b *base) ShortHelp() string { return b.settings.help }
func (b *base) Hidden() bool      { return b.settings.hidden }

func (b *base) Params(_ *Context) []Param {
	if b.settings.noHelpOpt {
		return b.settings.params
	}
	params := make([]Param, 0, len(b.settings.params)+1)
	params = append(params, b.settings.params...)
	return append(params, helpOption)
}

// Leaf is a terminal command without children.
type Leaf struct {
	base
}

// NewLeaf creates a terminal command.
func NewLeaf(name string, opts ...Opt) *Leaf {
	l := &Leaf{base{name: name}}
	for _, opt := range opts {
		opt(&l.settings)
	}
	return l
}

func (l *Leaf) interspersed() bool { return true }

// Group is a command with named children.
type Group struct {
	base
	children *orderedmap.OrderedMap[string, Command]
}

// NewGroup creates a container command.
func NewGroup(name string, opts ...Opt) *Group {
	g := &Group{
		base:     base{name: name},
		children: orderedmap.New[string, Command](),
	}
	for _, opt := range opts {
		opt(&g.settings)
	}
	for _, child := range g.settings.children {
		g.children.Set(child.Name(), child)
	}
	g.settings.children = nil
	return g
}

// AddCommand registers a child, replacing any previous child with the same
// name.
func (g *Group) AddCommand(cmd Command) {
	g.children.Set(cmd.Name(), cmd)
}

func (g *Group) interspersed() bool { return false }

// Chained reports whether several children may be invoked in sequence.
func (g *Group) Chained() bool { return g.settings.chained }

// ListCommands returns child names in declaration order, hidden ones
// included; completion filters visibility itself.
func (g *Group) ListCommands(_ *Context) []string {
	names := make([]string, 0, g.children.Len())
	for pair := g.children.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// GetCommand returns the child with the given name, or nil.
func (g *Group) GetCommand(_ *Context, name string) Command {
	cmd, ok := g.children.Get(name)
	if !ok {
		return nil
	}
	return cmd
}

// ResolveCommand resolves the next child from args. The first token is
// taken as the child name; the returned Command is nil when it matches no
// child.
func (g *Group) ResolveCommand(ctx *Context, args []string) (string, Command, []string) {
	if len(args) == 0 {
		return "", nil, args
	}
	name := args[0]
	return name, g.GetCommand(ctx, name), args[1:]
}
