package shell

import (
	"fmt"
)

// Zsh emits alternating value and description lines, with "_" standing in
// for a missing description.
type Zsh struct {
	Base
}

// Source returns the zsh activation script.
func (Zsh) Source(req *Request) (string, error) {
	return renderScript(zshTemplate, req)
}

// Complete serves one completion request in the zsh line protocol.
func (Zsh) Complete(req *Request) (bool, error) {
	args, incomplete := cursorWords(req)
	candidates, err := resolveCandidates(req, args, incomplete)
	if err != nil {
		return false, err
	}
	w := req.out()
	for _, c := range candidates {
		desc := c.Description
		if desc == "" {
			desc = "_"
		}
		fmt.Fprintf(w, "%s\n%s\n", c.Value, desc)
	}
	return true, nil
}
