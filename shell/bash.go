package shell

import (
	"fmt"

	"github.com/quillcli/quill/command"
	"github.com/quillcli/quill/completion"
)

// Bash emits "type,value" lines. The dir and file pseudo-types are
// reserved for file system completion and never produced here.
type Bash struct {
	Base
}

// Source returns the bash activation script. Bash releases older than 4.4
// lack the nosort option the script relies on, so the probed version is
// checked first.
func (Bash) Source(req *Request) (string, error) {
	if err := checkBashVersion(probeBashVersion()); err != nil {
		return "", err
	}
	return renderScript(bashTemplate, req)
}

// Complete serves one completion request in the bash line protocol.
func (Bash) Complete(req *Request) (bool, error) {
	args, incomplete := cursorWords(req)
	candidates, err := resolveCandidates(req, args, incomplete)
	if err != nil {
		return false, err
	}
	w := req.out()
	for _, c := range candidates {
		fmt.Fprintf(w, "none,%s\n", c.Value)
	}
	return true, nil
}

// resolveCandidates runs the completion engine for a request and logs the
// outcome. Callback errors propagate to the adapter.
func resolveCandidates(req *Request, args []string, incomplete string) ([]command.Candidate, error) {
	candidates, err := completion.Complete(req.Root, req.ProgName, args, incomplete)
	if err != nil {
		req.log().Error().Err(err).Msg("Completion callback failed")
		return nil, err
	}
	req.log().Debug().
		Strs("args", args).
		Str("incomplete", incomplete).
		Int("candidates", len(candidates)).
		Msg("Resolved completion request")
	return candidates, nil
}
