package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillcli/quill/command"
)

func TestResolveContext_Root(t *testing.T) {
	root := command.NewLeaf("cli")
	ctx := ResolveContext(root, "cli", nil)
	require.NotNil(t, ctx)
	assert.Same(t, command.Command(root), ctx.Command)
	assert.Nil(t, ctx.Parent)
}

func TestResolveContext_DescendsIntoChild(t *testing.T) {
	sub := command.NewLeaf("sub", command.WithParams(
		&command.Option{Opts: []string{"--local-opt"}},
	))
	root := command.NewGroup("cli", command.WithCommands(sub))

	ctx := ResolveContext(root, "cli", []string{"sub", "--local-opt"})
	require.NotNil(t, ctx)
	assert.Same(t, command.Command(sub), ctx.Command)
	assert.Equal(t, "sub", ctx.InvokedName)
	require.NotNil(t, ctx.Parent)
	assert.Same(t, command.Command(root), ctx.Parent.Command)
}

func TestResolveContext_UnknownChildStopsAtGroup(t *testing.T) {
	root := command.NewGroup("cli", command.WithCommands(command.NewLeaf("sub")))

	ctx := ResolveContext(root, "cli", []string{"nope", "x"})
	require.NotNil(t, ctx)
	assert.Same(t, command.Command(root), ctx.Command)
}

func TestResolveContext_MalformedLineDegrades(t *testing.T) {
	sub := command.NewLeaf("sub")
	root := command.NewGroup("cli", command.WithCommands(sub))

	// The unknown option aborts root's parse and swallows the rest of the
	// line, so resolution stops at the group instead of failing outright.
	ctx := ResolveContext(root, "cli", []string{"--bogus", "sub"})
	require.NotNil(t, ctx)
	assert.Same(t, command.Command(root), ctx.Command)
}

func TestResolveContext_HiddenChildStillResolves(t *testing.T) {
	secret := command.NewLeaf("secret", command.WithHidden())
	root := command.NewGroup("cli", command.WithCommands(secret))

	ctx := ResolveContext(root, "cli", []string{"secret"})
	require.NotNil(t, ctx)
	assert.Same(t, command.Command(secret), ctx.Command)
}

func TestResolveContext_NestedGroups(t *testing.T) {
	leaf := command.NewLeaf("cmd")
	inner := command.NewGroup("inner", command.WithCommands(leaf))
	root := command.NewGroup("cli", command.WithCommands(inner))

	ctx := ResolveContext(root, "cli", []string{"inner", "cmd"})
	require.NotNil(t, ctx)
	assert.Same(t, command.Command(leaf), ctx.Command)
	assert.Same(t, command.Command(inner), ctx.Parent.Command)
	assert.Same(t, command.Command(root), ctx.Parent.Parent.Command)
}

func TestResolveContext_ChainedKeepsLastChild(t *testing.T) {
	a := command.NewLeaf("a")
	b := command.NewLeaf("b", command.WithParams(
		&command.Option{Opts: []string{"--opt"}},
	))
	root := command.NewGroup("chain", command.WithChained(), command.WithCommands(a, b))

	ctx := ResolveContext(root, "chain", []string{"a", "b", "--opt"})
	require.NotNil(t, ctx)
	assert.Same(t, command.Command(b), ctx.Command)
	require.NotNil(t, ctx.Parent)
	assert.Same(t, command.Command(root), ctx.Parent.Command)
	assert.Equal(t, []string{"a", "b", "--opt"}, ctx.Parent.ProtectedArgs)
}

func TestResolveContext_ChainedUnknownChildStopsAtGroup(t *testing.T) {
	root := command.NewGroup("chain", command.WithChained(),
		command.WithCommands(command.NewLeaf("a")))

	ctx := ResolveContext(root, "chain", []string{"a", "nope"})
	require.NotNil(t, ctx)
	// "nope" resolves no child; the walk stops at the deepest context
	// reached before it.
	assert.Same(t, command.Command(root), ctx.Command)
}
