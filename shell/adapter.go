// Package shell adapts completion results to the line protocols and
// activation scripts of the supported shell families, and dispatches the
// instruction carried by the trigger environment variable.
package shell

import (
	"io"
	"os"
	"regexp"
	"sort"

	"github.com/quillcli/quill/command"
	"github.com/quillcli/quill/internal/logger"
	"github.com/quillcli/quill/internal/qerrors"
)

// Request carries everything one completion invocation needs. Zero values
// for Getenv, Out and Log fall back to the process environment, stdout and
// a warn-level stderr logger.
type Request struct {
	// Root is the program's command tree.
	Root command.Command
	// ProgName is the executable name completion is registered for.
	ProgName string
	// CompleteVar is the trigger environment variable, e.g. _PROG_COMPLETE.
	CompleteVar string

	Getenv func(string) string
	Out    io.Writer
	Log    *logger.Logger
}

func (r *Request) getenv(key string) string {
	if r.Getenv != nil {
		return r.Getenv(key)
	}
	return os.Getenv(key)
}

func (r *Request) out() io.Writer {
	if r.Out != nil {
		return r.Out
	}
	return os.Stdout
}

func (r *Request) log() *logger.Logger {
	if r.Log == nil {
		r.Log = logger.New("warn", os.Stderr)
	}
	return r.Log
}

// Adapter is the contract every shell family implements: emit the
// activation script and serve one completion request. Implementations must
// embed Base, which supplies not-implemented defaults for unknown shells.
type Adapter interface {
	// Source returns the activation script for the shell.
	Source(req *Request) (string, error)
	// Complete reads the shell's exported word list, resolves candidates
	// and writes them in the shell's line protocol. The flag reports
	// whether the request was served.
	Complete(req *Request) (bool, error)

	adapter()
}

// Base is the no-op adapter resolved for unknown shell names. Custom
// adapters embed it to satisfy the Adapter contract.
type Base struct{}

func (Base) adapter() {}

// Source reports that script emission is not implemented.
func (Base) Source(_ *Request) (string, error) {
	return "", qerrors.NewNotImplementedError("source")
}

// Complete reports that completion is not implemented.
func (Base) Complete(_ *Request) (bool, error) {
	return false, qerrors.NewNotImplementedError("complete")
}

var shellNameRe = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

// Registry holds the known shell adapters. It replaces a global mutable
// table: construct one at process start and pass it to Run.
type Registry struct {
	adapters map[string]Adapter
}

// NewRegistry returns a registry with the three built-in shell families.
func NewRegistry() *Registry {
	r := &Registry{adapters: make(map[string]Adapter)}
	// Built-in registrations cannot fail.
	_ = r.Register("bash", Bash{})
	_ = r.Register("zsh", Zsh{})
	_ = r.Register("fish", Fish{})
	return r
}

// Register adds an adapter under the given shell name, replacing any
// previous registration. Adapters that fail the contract are rejected
// immediately.
func (r *Registry) Register(name string, adapter Adapter) error {
	if adapter == nil {
		return qerrors.NewAdapterError(name, "adapter must not be nil")
	}
	if !shellNameRe.MatchString(name) {
		return qerrors.NewAdapterError(name, "invalid shell name: "+name)
	}
	r.adapters[name] = adapter
	return nil
}

// Get returns the adapter registered under name, or Base when the shell is
// unknown.
func (r *Registry) Get(name string) Adapter {
	if adapter, ok := r.adapters[name]; ok {
		return adapter
	}
	return Base{}
}

// Shells returns the registered shell names, sorted.
func (r *Registry) Shells() []string {
	names := make([]string, 0, len(r.adapters))
	for name := range r.adapters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
