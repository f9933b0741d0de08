// Package sim implements the quillsim subcommands: it loads a declarative
// command tree and replays completion requests against it the way a shell
// would issue them.
package sim

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/quillcli/quill/completion"
	"github.com/quillcli/quill/declare"
	"github.com/quillcli/quill/internal/logger"
	"github.com/quillcli/quill/internal/timing"
	"github.com/quillcli/quill/shell"
)

// CompleteParams contains parameters for the complete command
type CompleteParams struct {
	TreePath   string
	Words      []string // tokens before the cursor
	Incomplete string   // partial word under the cursor
	Shell      string   // raw line protocol of this shell; empty for the table view
	LogLevel   string
	ShowTiming bool
}

// Complete resolves candidates for a simulated command line and prints
// them, either as a styled table or in a shell's raw line protocol.
func Complete(params CompleteParams) error {
	log := logger.New(params.LogLevel, os.Stderr)
	timer := timing.NewTimer()

	root, err := declare.Load(params.TreePath)
	if err != nil {
		return err
	}
	timer.Mark("load")
	progName := root.Name()

	if params.Shell != "" {
		reg := shell.NewRegistry()
		req := &shell.Request{
			Root:        root,
			ProgName:    progName,
			CompleteVar: completeVar(progName),
			Getenv:      simulatedEnv(progName, params),
			Log:         log,
		}
		if _, err := shell.Run(reg, req, "complete_"+params.Shell); err != nil {
			return err
		}
		timer.Mark("complete")
	} else {
		candidates, err := completion.Complete(root, progName, params.Words, params.Incomplete)
		if err != nil {
			return err
		}
		timer.Mark("complete")
		fmt.Print(renderCandidates(candidates))
	}

	if params.ShowTiming {
		fmt.Fprintln(os.Stderr, timer.Summary())
	}
	return nil
}

// SourceParams contains parameters for the source command
type SourceParams struct {
	TreePath string
	Shell    string
	LogLevel string
}

// Source emits the activation script a program built on this tree would
// install for the given shell.
func Source(params SourceParams) error {
	log := logger.New(params.LogLevel, os.Stderr)

	root, err := declare.Load(params.TreePath)
	if err != nil {
		return err
	}
	progName := root.Name()

	reg := shell.NewRegistry()
	req := &shell.Request{
		Root:        root,
		ProgName:    progName,
		CompleteVar: completeVar(progName),
		Log:         log,
	}
	ok, err := shell.Run(reg, req, "source_"+params.Shell)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("unrecognized shell: %s", params.Shell)
	}
	return nil
}

// Validate schema-checks a tree file and prints the findings.
func Validate(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	result, err := declare.ValidateWithSchema(path, content)
	if err != nil {
		return err
	}
	fmt.Print(renderValidation(path, result))
	if !result.Valid {
		return fmt.Errorf("%s is not a valid command tree", path)
	}
	return nil
}

// completeVar derives the trigger variable name from the program name, e.g.
// my-cli -> _MY_CLI_COMPLETE.
func completeVar(progName string) string {
	name := strings.ToUpper(strings.ReplaceAll(progName, "-", "_"))
	return "_" + name + "_COMPLETE"
}

// simulatedEnv fabricates the environment the shell hook would export for
// this request.
func simulatedEnv(progName string, params CompleteParams) func(string) string {
	words := append([]string{progName}, params.Words...)
	line := strings.TrimRight(strings.Join(append(words, params.Incomplete), " "), " ")

	return func(key string) string {
		switch key {
		case "COMP_WORDS":
			return line
		case "COMP_CWORD":
			if params.Shell == "fish" {
				return params.Incomplete
			}
			return strconv.Itoa(len(words))
		}
		return ""
	}
}
