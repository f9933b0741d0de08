package completion

import (
	"slices"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/quillcli/quill/command"
)

// Complete returns the candidates for the word under the cursor. args is
// everything typed before it; incomplete is the partial word itself.
//
// Classification runs in strict priority order: partial option names, then
// the value of an open option, then the value of an open positional
// argument, then subcommand names. Errors only come from dynamic
// value-source callbacks and propagate untouched.
func Complete(root command.Command, progName string, args []string, incomplete string) ([]command.Candidate, error) {
	allArgs := slices.Clone(args)

	ctx := ResolveContext(root, progName, args)
	if ctx == nil {
		return nil, nil
	}

	hasDoubleDash := slices.Contains(allArgs, "--")

	// Newer bash versions partition long opts on '='; reassembling the
	// flag into the arg list keeps the value completable.
	if StartsOption(incomplete) && strings.Contains(incomplete, wordBreak) {
		flag, value, _ := strings.Cut(incomplete, wordBreak)
		allArgs = append(allArgs, flag)
		incomplete = value
	} else if incomplete == wordBreak {
		incomplete = ""
	}

	if !hasDoubleDash && StartsOption(incomplete) {
		return optionNameCandidates(ctx, allArgs, incomplete), nil
	}

	for _, param := range ctx.Command.Params(ctx) {
		if OptionAwaitingValue(allArgs, param) {
			return valueCandidates(ctx, allArgs, incomplete, param)
		}
	}
	for _, param := range ctx.Command.Params(ctx) {
		if ArgumentAwaitingValue(ctx.Params, param) {
			return valueCandidates(ctx, allArgs, incomplete, param)
		}
	}

	candidates := subcommandCandidates(ctx, incomplete)
	candidates = lo.UniqBy(candidates, func(c command.Candidate) string { return c.Value })
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Value != candidates[j].Value {
			return candidates[i].Value < candidates[j].Value
		}
		return candidates[i].Description < candidates[j].Description
	})
	return candidates, nil
}

// optionNameCandidates lists every visible option spelling matching the
// partial word. Spellings already present on the line are excluded unless
// the option is repeatable.
func optionNameCandidates(ctx *command.Context, allArgs []string, incomplete string) []command.Candidate {
	var out []command.Candidate
	for _, param := range ctx.Command.Params(ctx) {
		opt, ok := param.(*command.Option)
		if !ok || opt.Hidden {
			continue
		}
		spellings := make([]string, 0, len(opt.Opts)+len(opt.SecondaryOpts))
		spellings = append(spellings, opt.Opts...)
		spellings = append(spellings, opt.SecondaryOpts...)
		for _, spelling := range spellings {
			if !strings.HasPrefix(spelling, incomplete) {
				continue
			}
			if slices.Contains(allArgs, spelling) && !opt.Multiple {
				continue
			}
			out = append(out, command.Candidate{Value: spelling, Description: opt.Help})
		}
	}
	return out
}

// valueCandidates produces candidates for a parameter value: a fixed
// choice set filtered by prefix, a dynamic callback, or nothing for free
// text.
func valueCandidates(ctx *command.Context, allArgs []string, incomplete string, param command.Param) ([]command.Candidate, error) {
	var choices []string
	var complete command.CompleteFunc
	switch p := param.(type) {
	case *command.Option:
		choices, complete = p.Choices, p.Complete
	case *command.Argument:
		choices, complete = p.Choices, p.Complete
	}

	if len(choices) > 0 {
		var out []command.Candidate
		for _, choice := range choices {
			if strings.HasPrefix(choice, incomplete) {
				out = append(out, command.Candidate{Value: choice})
			}
		}
		return out, nil
	}
	if complete != nil {
		return complete(ctx, allArgs, incomplete)
	}
	return nil, nil
}

// subcommandCandidates lists the visible children of the active container,
// plus the still-unconsumed children of every chained ancestor.
func subcommandCandidates(ctx *command.Context, incomplete string) []command.Candidate {
	var out []command.Candidate
	if group, ok := ctx.Command.(command.Container); ok {
		out = append(out, visibleCommands(ctx, group, incomplete, nil)...)
	}
	for parent := ctx.Parent; parent != nil; parent = parent.Parent {
		group, ok := parent.Command.(command.Container)
		if !ok || !group.Chained() {
			continue
		}
		out = append(out, visibleCommands(parent, group, incomplete, parent.ProtectedArgs)...)
	}
	return out
}

func visibleCommands(ctx *command.Context, group command.Container, prefix string, exclude []string) []command.Candidate {
	var out []command.Candidate
	for _, name := range group.ListCommands(ctx) {
		if !strings.HasPrefix(name, prefix) || slices.Contains(exclude, name) {
			continue
		}
		cmd := group.GetCommand(ctx, name)
		if cmd == nil || cmd.Hidden() {
			continue
		}
		out = append(out, command.Candidate{Value: name, Description: cmd.ShortHelp()})
	}
	return out
}
