package shell

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteFuncName(t *testing.T) {
	tests := []struct {
		progName string
		want     string
	}{
		{"cli", "_cli_completion"},
		{"my-tool", "_my_tool_completion"},
		{"weird.name!", "_weirdname_completion"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, completeFuncName(tt.progName))
	}
}

func TestRenderScript_SubstitutesAndTerminates(t *testing.T) {
	req := &Request{ProgName: "my-tool", CompleteVar: "_MY_TOOL_COMPLETE"}

	for name, text := range map[string]string{
		"bash": bashTemplate,
		"zsh":  zshTemplate,
		"fish": fishTemplate,
	} {
		t.Run(name, func(t *testing.T) {
			script, err := renderScript(text, req)
			require.NoError(t, err)
			assert.Contains(t, script, "_my_tool_completion")
			assert.Contains(t, script, "my-tool")
			assert.Contains(t, script, "_MY_TOOL_COMPLETE")
			assert.NotContains(t, script, "{{")
			assert.True(t, strings.HasSuffix(script, ";"))
			assert.Equal(t, strings.TrimSpace(script), script)
		})
	}
}

func TestZshSource(t *testing.T) {
	req := &Request{ProgName: "cli", CompleteVar: "_CLI_COMPLETE"}
	script, err := Zsh{}.Source(req)
	require.NoError(t, err)
	assert.Contains(t, script, `compdef _cli_completion "cli"`)
}

func TestFishSource(t *testing.T) {
	req := &Request{ProgName: "cli", CompleteVar: "_CLI_COMPLETE"}
	script, err := Fish{}.Source(req)
	require.NoError(t, err)
	assert.Contains(t, script, `complete --no-files --command "cli"`)
}

// Registration lines quote the program name so names with shell
// metacharacters register cleanly.
func TestRenderScript_QuotesProgName(t *testing.T) {
	req := &Request{ProgName: "my tool", CompleteVar: "_MY_TOOL_COMPLETE"}

	script, err := renderScript(bashTemplate, req)
	require.NoError(t, err)
	assert.Contains(t, script, `"my tool"`)

	script, err = renderScript(fishTemplate, req)
	require.NoError(t, err)
	assert.Contains(t, script, `--command "my tool"`)
}
