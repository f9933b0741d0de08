package shell

import (
	"fmt"
	"strings"
)

// Run executes a completion instruction against the registry. Instructions
// are "source" or "complete", optionally suffixed with "_<shell>"; an
// unqualified instruction targets bash. The flag reports success; an
// unrecognized instruction fails without output.
func Run(reg *Registry, req *Request, instruction string) (bool, error) {
	cmd, shellName := instruction, "bash"
	if i := strings.IndexByte(instruction, '_'); i >= 0 {
		cmd, shellName = instruction[:i], instruction[i+1:]
	}

	req.log().Debug().
		Str("instruction", instruction).
		Str("shell", shellName).
		Msg("Dispatching completion instruction")

	adapter := reg.Get(shellName)
	switch cmd {
	case "source":
		script, err := adapter.Source(req)
		if err != nil {
			return false, err
		}
		fmt.Fprintln(req.out(), script)
		return true, nil
	case "complete":
		return adapter.Complete(req)
	}
	return false, nil
}

// TryComplete checks the trigger variable and serves the request it
// carries, if any. Programs call it first thing in main; a true flag means
// the process should exit without running the command.
func TryComplete(reg *Registry, req *Request) (bool, error) {
	instruction := req.getenv(req.CompleteVar)
	if instruction == "" {
		return false, nil
	}
	return Run(reg, req, instruction)
}
