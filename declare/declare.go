// Package declare builds command trees from declarative YAML, TOML or JSON
// files. It backs the quillsim tooling and integration tests; programs
// normally declare their tree in code.
package declare

import (
	"os"
	"path/filepath"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	ktoml "github.com/knadh/koanf/parsers/toml"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/quillcli/quill/command"
	"github.com/quillcli/quill/internal/qerrors"
)

// CommandSpec is the declarative form of a command node. A spec with
// children becomes a Group, otherwise a Leaf.
type CommandSpec struct {
	Name      string         `koanf:"name" json:"name"`
	Help      string         `koanf:"help" json:"help,omitempty"`
	Hidden    bool           `koanf:"hidden" json:"hidden,omitempty"`
	Chained   bool           `koanf:"chained" json:"chained,omitempty"`
	Options   []OptionSpec   `koanf:"options" json:"options,omitempty"`
	Arguments []ArgumentSpec `koanf:"arguments" json:"arguments,omitempty"`
	Commands  []CommandSpec  `koanf:"commands" json:"commands,omitempty"`
}

// OptionSpec is the declarative form of an option parameter.
type OptionSpec struct {
	Opts      []string `koanf:"opts" json:"opts"`
	Secondary []string `koanf:"secondary" json:"secondary,omitempty"`
	Help      string   `koanf:"help" json:"help,omitempty"`
	Flag      bool     `koanf:"flag" json:"flag,omitempty"`
	Multiple  bool     `koanf:"multiple" json:"multiple,omitempty"`
	NArgs     int      `koanf:"nargs" json:"nargs,omitempty"`
	Hidden    bool     `koanf:"hidden" json:"hidden,omitempty"`
	Choices   []string `koanf:"choices" json:"choices,omitempty"`
}

// ArgumentSpec is the declarative form of a positional argument. NArgs -1
// declares an unbounded argument.
type ArgumentSpec struct {
	Name     string   `koanf:"name" json:"name"`
	NArgs    int      `koanf:"nargs" json:"nargs,omitempty"`
	Required bool     `koanf:"required" json:"required,omitempty"`
	Choices  []string `koanf:"choices" json:"choices,omitempty"`
}

// Load reads a tree file, picking the parser by extension.
func Load(path string) (command.Command, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, qerrors.NewDeclareError(path, "failed to read command tree", err)
	}
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	cmd, err := LoadBytes(data, format)
	if err != nil {
		return nil, qerrors.NewDeclareError(path, "failed to load command tree", err)
	}
	return cmd, nil
}

// LoadBytes parses a declarative tree in the given format ("yml", "yaml",
// "toml" or "json") and builds the command tree.
func LoadBytes(data []byte, format string) (command.Command, error) {
	var parser koanf.Parser
	switch format {
	case "yml", "yaml":
		parser = kyaml.Parser()
	case "toml":
		parser = ktoml.Parser()
	case "json":
		parser = kjson.Parser()
	default:
		return nil, qerrors.NewDeclareError("", "unsupported format: "+format, nil)
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return nil, err
	}
	var spec CommandSpec
	if err := k.Unmarshal("", &spec); err != nil {
		return nil, err
	}
	if spec.Name == "" {
		return nil, qerrors.NewDeclareError("", "command tree is missing a root name", nil)
	}
	return build(spec), nil
}

func build(spec CommandSpec) command.Command {
	opts := []command.Opt{command.WithHelp(spec.Help)}
	if spec.Hidden {
		opts = append(opts, command.WithHidden())
	}
	var params []command.Param
	for _, o := range spec.Options {
		params = append(params, &command.Option{
			Opts:          o.Opts,
			SecondaryOpts: o.Secondary,
			Help:          o.Help,
			IsFlag:        o.Flag,
			Multiple:      o.Multiple,
			NArgs:         o.NArgs,
			Hidden:        o.Hidden,
			Choices:       o.Choices,
		})
	}
	for _, a := range spec.Arguments {
		params = append(params, &command.Argument{
			Name:     a.Name,
			NArgs:    a.NArgs,
			Required: a.Required,
			Choices:  a.Choices,
		})
	}
	if len(params) > 0 {
		opts = append(opts, command.WithParams(params...))
	}

	if len(spec.Commands) == 0 {
		return command.NewLeaf(spec.Name, opts...)
	}

	if spec.Chained {
		opts = append(opts, command.WithChained())
	}
	children := make([]command.Command, 0, len(spec.Commands))
	for _, child := range spec.Commands {
		children = append(children, build(child))
	}
	opts = append(opts, command.WithCommands(children...))
	return command.NewGroup(spec.Name, opts...)
}
