// Package shell builds the cobra command tree from a table of commands and
// deprecated aliases.
package shell

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ErrAlreadyExecuted is returned when a command instance is run a second time
var ErrAlreadyExecuted = errors.New("command has already been executed")

// Runner executes a command with its positional arguments
type Runner func(ctx context.Context, env *Env, args []string) error

// Command is one canonical command of the tree
type Command struct {
	// Path is the command's position in the tree, e.g. floating ip create
	Path []string
	// Use is the argument synopsis shown after the command name
	Use   string
	Short string
	Args  cobra.PositionalArgs

	// Bind registers the command's flags and returns the runner reading them.
	// It is called once for the canonical command and once per alias, so
	// every spelling parses identical arguments.
	Bind func(fs *pflag.FlagSet) Runner
}

// Alias is a deprecated spelling of a canonical command
type Alias struct {
	Path   []string
	Target []string
	// Warn emits a deprecation warning before delegating
	Warn bool
}

// invocation guards a cobra command against being executed more than once
type invocation struct {
	executed bool
}

func (i *invocation) run(fn func() error) error {
	if i.executed {
		return ErrAlreadyExecuted
	}
	i.executed = true
	return fn()
}

// Build adds commands and aliases to root. Aliases are hidden from help, as
// are groups holding nothing but aliases.
func Build(root *cobra.Command, env *Env, commands []Command, aliases []Alias) error {
	byPath := make(map[string]Command, len(commands))
	for _, c := range commands {
		byPath[key(c.Path)] = c
		parent := group(root, c.Path[:len(c.Path)-1], false)
		parent.AddCommand(newCobraCommand(c, c.Path, env, nil))
	}

	for _, a := range aliases {
		target, ok := byPath[key(a.Target)]
		if !ok {
			return errors.New("alias " + key(a.Path) + " points to unknown command " + key(a.Target))
		}

		var before func()
		if a.Warn {
			before = deprecationWarning(env, a.Target)
		}
		cmd := newCobraCommand(target, a.Path, env, before)
		cmd.Hidden = true
		group(root, a.Path[:len(a.Path)-1], true).AddCommand(cmd)
	}
	return nil
}

func newCobraCommand(c Command, path []string, env *Env, before func()) *cobra.Command {
	name := path[len(path)-1]
	use := name
	if c.Use != "" {
		use += " " + c.Use
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: c.Short,
		Args:  c.Args,
	}

	run := c.Bind(cmd.Flags())
	inv := &invocation{}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return inv.run(func() error {
			if before != nil {
				before()
			}
			return run(cmd.Context(), env, args)
		})
	}
	return cmd
}

func deprecationWarning(env *Env, target []string) func() {
	return func() {
		env.logEntry().WithField("logger", "deprecated").Warnf(
			"This command has been deprecated. Please use \"%s\" instead.", key(target))
	}
}

// group returns the command at path below root, creating intermediate group
// commands as needed. A group first created for an alias starts hidden and
// becomes visible once a canonical command is added beneath it.
func group(root *cobra.Command, path []string, hidden bool) *cobra.Command {
	parent := root
	for _, name := range path {
		var next *cobra.Command
		for _, child := range parent.Commands() {
			if child.Name() == name {
				next = child
				break
			}
		}
		if next == nil {
			next = &cobra.Command{
				Use:    name,
				Short:  "Manage " + strings.ReplaceAll(name, "-", " ") + " resources",
				Hidden: hidden,
			}
			parent.AddCommand(next)
		}
		if !hidden {
			next.Hidden = false
		}
		parent = next
	}
	return parent
}

func key(path []string) string {
	return strings.Join(path, " ")
}
