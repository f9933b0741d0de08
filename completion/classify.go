// Package completion turns a partially typed command line into completion
// candidates. It resolves the innermost active command through resilient
// parsing, classifies the word under the cursor and gathers candidates
// from the matching source.
package completion

import (
	"github.com/quillcli/quill/command"
)

// wordBreak is the separator some shells split out of --opt=value tokens
// before invoking the completion process.
const wordBreak = "="

// StartsOption reports whether token looks like the start of an option
// declaration.
func StartsOption(token string) bool {
	return token != "" && token[0] == '-'
}

// OptionAwaitingValue reports whether the most recent option declaration in
// allArgs belongs to param and is still waiting for a value. Only the
// trailing window of the option's arity is inspected; word-break tokens do
// not count against it.
func OptionAwaitingValue(allArgs []string, param command.Param) bool {
	opt, ok := param.(*command.Option)
	if !ok || opt.IsFlag {
		return false
	}

	filtered := make([]string, 0, len(allArgs))
	for _, arg := range allArgs {
		if arg != wordBreak {
			filtered = append(filtered, arg)
		}
	}

	// Scan backwards through the arity-sized window; the furthest
	// option-looking token inside it decides. Shells depend on this exact
	// tie-break, so it stays as is.
	lastOption := ""
	for index := 0; index < len(filtered); index++ {
		if index+1 > opt.Arity() {
			break
		}
		arg := filtered[len(filtered)-1-index]
		if StartsOption(arg) {
			lastOption = arg
		}
	}
	if lastOption == "" {
		return false
	}
	for _, s := range opt.Opts {
		if s == lastOption {
			return true
		}
	}
	return false
}

// ArgumentAwaitingValue reports whether param is a positional argument that
// can still accept values, given the values parsed so far.
func ArgumentAwaitingValue(params map[string]any, param command.Param) bool {
	arg, ok := param.(*command.Argument)
	if !ok {
		return false
	}
	current := params[arg.Key()]
	if current == nil {
		return true
	}
	if arg.NArgs == command.UnboundedNArgs {
		return true
	}
	if values, ok := current.([]string); ok && arg.Arity() > 1 && len(values) < arg.Arity() {
		return true
	}
	return false
}
