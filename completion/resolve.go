package completion

import (
	"github.com/quillcli/quill/command"
)

// ResolveContext walks args through the command tree and returns the
// innermost context that could be resolved. Parsing is resilient
// throughout: a malformed line degrades to a best-effort context, and an
// unresolvable child name stops the walk at the deepest resolved level.
func ResolveContext(root command.Command, progName string, args []string) *command.Context {
	ctx, _ := command.MakeContext(root, progName, args, command.ContextOpts{Resilient: true})
	rest := leftover(ctx)

	for len(rest) > 0 {
		group, ok := ctx.Command.(command.Container)
		if !ok {
			break
		}

		if !group.Chained() {
			name, cmd, cmdArgs := group.ResolveCommand(ctx, rest)
			if cmd == nil {
				return ctx
			}
			ctx, _ = command.MakeContext(cmd, name, cmdArgs, command.ContextOpts{
				Parent:    ctx,
				Resilient: true,
			})
			rest = leftover(ctx)
			continue
		}

		// Chained: resolve children one after another, each child's
		// leftovers feeding the next, and keep the last one.
		var sub *command.Context
		for len(rest) > 0 {
			name, cmd, cmdArgs := group.ResolveCommand(ctx, rest)
			if cmd == nil {
				return ctx
			}
			sub, _ = command.MakeContext(cmd, name, cmdArgs, command.ContextOpts{
				Parent:             ctx,
				Resilient:          true,
				AllowExtraArgs:     true,
				NoInterspersedArgs: true,
			})
			rest = sub.Args
		}
		ctx = sub
		rest = leftover(ctx)
	}

	return ctx
}

func leftover(ctx *command.Context) []string {
	rest := make([]string, 0, len(ctx.ProtectedArgs)+len(ctx.Args))
	rest = append(rest, ctx.ProtectedArgs...)
	return append(rest, ctx.Args...)
}
