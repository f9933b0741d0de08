package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillcli/quill/internal/qerrors"
)

func TestCheckBashVersion(t *testing.T) {
	t.Run("modern release passes", func(t *testing.T) {
		out := "GNU bash, version 5.1.16(1)-release (x86_64-pc-linux-gnu)"
		assert.NoError(t, checkBashVersion(out))
	})

	t.Run("minimum release passes", func(t *testing.T) {
		out := "GNU bash, version 4.4.0(1)-release"
		assert.NoError(t, checkBashVersion(out))
	})

	t.Run("old release fails", func(t *testing.T) {
		out := "GNU bash, version 3.2.57(1)-release (x86_64-apple-darwin17)"
		err := checkBashVersion(out)
		var verr *qerrors.ShellVersionError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "bash", verr.Shell)
		assert.Equal(t, "SHELL_VERSION", verr.Code())
	})

	t.Run("probe failure is advisory", func(t *testing.T) {
		assert.NoError(t, checkBashVersion(""))
		assert.NoError(t, checkBashVersion("not a version banner"))
	})
}
