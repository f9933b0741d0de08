package shell

import (
	"fmt"
)

// Fish emits "type,value" lines with an optional tab-separated
// description.
type Fish struct {
	Base
}

// Source returns the fish activation script.
func (Fish) Source(req *Request) (string, error) {
	return renderScript(fishTemplate, req)
}

// Complete serves one completion request in the fish line protocol.
func (Fish) Complete(req *Request) (bool, error) {
	args, incomplete := fishWords(req)
	candidates, err := resolveCandidates(req, args, incomplete)
	if err != nil {
		return false, err
	}
	w := req.out()
	for _, c := range candidates {
		if c.Description != "" {
			fmt.Fprintf(w, "none,%s\t%s\n", c.Value, c.Description)
		} else {
			fmt.Fprintf(w, "none,%s\n", c.Value)
		}
	}
	return true, nil
}
