package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillcli/quill/internal/qerrors"
)

func TestNewRegistry_BuiltinShells(t *testing.T) {
	reg := NewRegistry()
	assert.Equal(t, []string{"bash", "fish", "zsh"}, reg.Shells())
}

func TestRegistry_Register(t *testing.T) {
	t.Run("custom adapter", func(t *testing.T) {
		reg := NewRegistry()
		require.NoError(t, reg.Register("powershell", Base{}))
		assert.Contains(t, reg.Shells(), "powershell")
	})

	t.Run("overwrite is allowed", func(t *testing.T) {
		reg := NewRegistry()
		require.NoError(t, reg.Register("bash", Base{}))
		assert.IsType(t, Base{}, reg.Get("bash"))
	})

	t.Run("nil adapter rejected", func(t *testing.T) {
		reg := NewRegistry()
		err := reg.Register("other", nil)
		var aerr *qerrors.AdapterError
		require.ErrorAs(t, err, &aerr)
		assert.Equal(t, "ADAPTER_CONTRACT", aerr.Code())
	})

	t.Run("invalid names rejected", func(t *testing.T) {
		reg := NewRegistry()
		for _, name := range []string{"", "Bash", "1sh", "my shell", "sh!"} {
			err := reg.Register(name, Base{})
			var aerr *qerrors.AdapterError
			require.ErrorAs(t, err, &aerr, "name %q", name)
			assert.Equal(t, name, aerr.Name)
		}
	})
}

func TestRegistry_GetUnknownFallsBackToBase(t *testing.T) {
	reg := NewRegistry()
	adapter := reg.Get("tcsh")

	_, err := adapter.Source(&Request{})
	var nerr *qerrors.NotImplementedError
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, "source", nerr.Op)

	handled, err := adapter.Complete(&Request{})
	assert.False(t, handled)
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, "complete", nerr.Op)
}
