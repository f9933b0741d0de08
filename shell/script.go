package shell

import (
	"bytes"
	"regexp"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

var invalidIdentRe = regexp.MustCompile(`[^a-zA-Z0-9_]`)

// completeFuncName derives the shell function identifier from the program
// name.
func completeFuncName(progName string) string {
	name := invalidIdentRe.ReplaceAllString(strings.ReplaceAll(progName, "-", "_"), "")
	return "_" + name + "_completion"
}

// renderScript fills an activation template with the completion function
// name, the program name and the trigger variable, trims it and appends the
// terminating statement separator.
func renderScript(text string, req *Request) (string, error) {
	tmpl, err := template.New("activation").Funcs(sprig.FuncMap()).Parse(text)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	err = tmpl.Execute(&buf, map[string]string{
		"CompleteFunc": completeFuncName(req.ProgName),
		"ProgName":     req.ProgName,
		"CompleteVar":  req.CompleteVar,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()) + ";", nil
}
