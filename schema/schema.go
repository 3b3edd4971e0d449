// Package schema describes the logical commands of the dispatch layer and,
// for each one, the native symbols that can implement it in priority order.
//
// A Schema is immutable once built and may be shared by any number of
// goroutines without synchronization.
package schema

import (
	"errors"
	"fmt"

	"github.com/gogpu/gldispatch/capability"
)

// Schema construction errors.
var (
	// ErrDuplicateCommand is returned when two commands share a name.
	ErrDuplicateCommand = errors.New("schema: duplicate command")

	// ErrEmptyName is returned for a command or alias without a name.
	ErrEmptyName = errors.New("schema: empty name")
)

// CommandID indexes a command inside its Schema.
type CommandID int

// Alias is one native symbol that implements a command, together with the
// feature that must be active for the symbol to be looked up at all.
type Alias struct {
	Name    string
	Feature capability.Feature
}

// Command is a logical native operation and its candidate aliases,
// highest priority first.
type Command struct {
	ID      CommandID
	Name    string
	Aliases []Alias
}

// Schema is an ordered, immutable set of commands.
type Schema struct {
	commands []Command
	byName   map[string]CommandID
}

// New builds a Schema from commands. Command IDs are assigned in slice
// order and any ID already set on the input is ignored. Alias slices are
// copied, so later changes to the input do not leak into the Schema.
func New(commands []Command) (*Schema, error) {
	s := &Schema{
		commands: make([]Command, len(commands)),
		byName:   make(map[string]CommandID, len(commands)),
	}
	for i, c := range commands {
		if c.Name == "" {
			return nil, fmt.Errorf("%w: command #%d", ErrEmptyName, i)
		}
		if _, dup := s.byName[c.Name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCommand, c.Name)
		}
		for j, a := range c.Aliases {
			if a.Name == "" {
				return nil, fmt.Errorf("%w: alias #%d of %s", ErrEmptyName, j, c.Name)
			}
		}
		id := CommandID(i)
		s.commands[i] = Command{
			ID:      id,
			Name:    c.Name,
			Aliases: append([]Alias(nil), c.Aliases...),
		}
		s.byName[c.Name] = id
	}
	return s, nil
}

// MustNew is like New but panics on error. It is meant for package-level
// schema tables.
func MustNew(commands []Command) *Schema {
	s, err := New(commands)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of commands.
func (s *Schema) Len() int { return len(s.commands) }

// Command returns the command with the given ID.
// It panics if id is out of range.
func (s *Schema) Command(id CommandID) *Command { return &s.commands[id] }

// Lookup returns the command with the given name.
func (s *Schema) Lookup(name string) (*Command, bool) {
	id, ok := s.byName[name]
	if !ok {
		return nil, false
	}
	return &s.commands[id], true
}

// Commands returns all commands in ID order. The returned slice must not be
// modified.
func (s *Schema) Commands() []Command { return s.commands }

// Lint reports authoring defects that do not prevent construction but leave
// commands permanently unresolvable: commands without aliases, and aliases
// whose feature can never be enabled.
func (s *Schema) Lint() []error {
	var errs []error
	for i := range s.commands {
		c := &s.commands[i]
		if len(c.Aliases) == 0 {
			errs = append(errs, fmt.Errorf("schema: %s has no aliases", c.Name))
			continue
		}
		for _, a := range c.Aliases {
			f := a.Feature
			if !f.IsExtension() && f.GL.IsZero() && f.GLES.IsZero() {
				errs = append(errs, fmt.Errorf("schema: %s alias %s has no owning feature", c.Name, a.Name))
			}
		}
	}
	return errs
}
