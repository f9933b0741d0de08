package shell

import (
	"strconv"
	"strings"

	"github.com/google/shlex"
)

// splitCommandLine splits the word list the shell exports. A line being
// completed routinely carries an unterminated quote; in that case fall back
// to whitespace splitting rather than failing the request.
func splitCommandLine(line string) []string {
	words, err := shlex.Split(line)
	if err != nil {
		return strings.Fields(line)
	}
	return words
}

// cursorWords reads COMP_WORDS and COMP_CWORD and slices out the tokens
// before the cursor and the word under it. A cursor past the last word
// means a fresh empty word.
func cursorWords(req *Request) (args []string, incomplete string) {
	words := splitCommandLine(req.getenv("COMP_WORDS"))
	cword, err := strconv.Atoi(req.getenv("COMP_CWORD"))
	if err != nil || cword < 0 {
		cword = len(words)
	}

	if cword < len(words) {
		incomplete = words[cword]
	}

	end := cword
	if end > len(words) {
		end = len(words)
	}
	if end > 1 {
		args = words[1:end]
	}
	return args, incomplete
}

// fishWords reads fish's flavor of the export: COMP_CWORD holds the partial
// token itself, and a partial word shows up in both variables.
func fishWords(req *Request) (args []string, incomplete string) {
	words := splitCommandLine(req.getenv("COMP_WORDS"))
	incomplete = req.getenv("COMP_CWORD")

	if len(words) > 1 {
		args = words[1:]
	}
	if incomplete != "" && len(args) > 0 && args[len(args)-1] == incomplete {
		args = args[:len(args)-1]
	}
	return args, incomplete
}
