package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOption_Key(t *testing.T) {
	tests := []struct {
		name string
		opt  *Option
		want string
	}{
		{
			name: "derived from longest spelling",
			opt:  &Option{Opts: []string{"-f", "--foo"}},
			want: "foo",
		},
		{
			name: "dashes become underscores",
			opt:  &Option{Opts: []string{"--dry-run"}},
			want: "dry_run",
		},
		{
			name: "explicit name wins",
			opt:  &Option{Opts: []string{"--foo"}, Name: "custom"},
			want: "custom",
		},
		{
			name: "short option only",
			opt:  &Option{Opts: []string{"-v"}},
			want: "v",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opt.Key())
		})
	}
}

func TestOption_Arity(t *testing.T) {
	assert.Equal(t, 1, (&Option{Opts: []string{"--foo"}}).Arity())
	assert.Equal(t, 2, (&Option{Opts: []string{"--pos"}, NArgs: 2}).Arity())
	assert.Equal(t, 0, (&Option{Opts: []string{"--debug"}, IsFlag: true}).Arity())
}

func TestOption_HasSpelling(t *testing.T) {
	opt := &Option{Opts: []string{"--color", "-c"}, SecondaryOpts: []string{"--no-color"}}

	assert.True(t, opt.HasSpelling("--color"))
	assert.True(t, opt.HasSpelling("-c"))
	assert.True(t, opt.HasSpelling("--no-color"))
	assert.False(t, opt.HasSpelling("--colour"))
}

func TestArgument_Arity(t *testing.T) {
	assert.Equal(t, 1, (&Argument{Name: "src"}).Arity())
	assert.Equal(t, 3, (&Argument{Name: "src", NArgs: 3}).Arity())
	assert.Equal(t, UnboundedNArgs, (&Argument{Name: "src", NArgs: UnboundedNArgs}).Arity())
}
