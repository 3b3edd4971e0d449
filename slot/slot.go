// Package slot holds the per-context binding of logical commands to native
// entry points and the resolver that fills it.
//
// A Table belongs to the single thread that drives the native context it was
// resolved against. It is never modified after Resolve returns; re-resolution
// builds a new Table.
package slot

import (
	"fmt"
	"strings"

	"github.com/gogpu/gldispatch/schema"
)

// Proc is the address of a native entry point. The zero Proc means "not
// found".
type Proc uintptr

// Locator turns a native symbol name into an entry point. It returns the
// zero Proc when the symbol is not available.
type Locator interface {
	Locate(name string) Proc
}

// LocatorFunc adapts a function to the Locator interface.
type LocatorFunc func(name string) Proc

// Locate calls f(name).
func (f LocatorFunc) Locate(name string) Proc { return f(name) }

// Outcome records what happened to one alias during resolution.
type Outcome uint8

const (
	// OutcomeSkipped means the alias was never attempted because an alias
	// of higher priority was bound.
	OutcomeSkipped Outcome = iota
	// OutcomeGated means the alias's owning feature is not active, so the
	// locator was not asked.
	OutcomeGated
	// OutcomeNotFound means the locator was asked and returned nothing.
	OutcomeNotFound
	// OutcomeBound means the alias was located and bound.
	OutcomeBound
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "not attempted"
	case OutcomeGated:
		return "feature disabled"
	case OutcomeNotFound:
		return "not found"
	case OutcomeBound:
		return "bound"
	default:
		return fmt.Sprintf("Outcome(%d)", uint8(o))
	}
}

// Attempt is the diagnostic record for one alias.
type Attempt struct {
	Alias   schema.Alias
	Outcome Outcome
}

func (a Attempt) String() string {
	return fmt.Sprintf("%s (%s): %s", a.Alias.Name, a.Alias.Feature, a.Outcome)
}

// Entry is the binding state of one command.
//
// An Entry is either unresolved (Alias == -1, Proc == 0) or bound to exactly
// one non-zero Proc through Command.Aliases[Alias].
type Entry struct {
	Command  *schema.Command
	Proc     Proc
	Alias    int
	Attempts []Attempt
}

// Bound reports whether the entry holds a callable entry point.
func (e *Entry) Bound() bool { return e.Alias >= 0 }

// AliasName returns the name of the bound symbol, or "" if unresolved.
func (e *Entry) AliasName() string {
	if !e.Bound() {
		return ""
	}
	return e.Command.Aliases[e.Alias].Name
}

func (e *Entry) String() string {
	if e.Bound() {
		return fmt.Sprintf("%s -> %s [%d]", e.Command.Name, e.AliasName(), e.Alias)
	}
	if len(e.Attempts) == 0 {
		return e.Command.Name + " -> unresolved (no aliases)"
	}
	parts := make([]string, len(e.Attempts))
	for i, a := range e.Attempts {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s -> unresolved (%s)", e.Command.Name, strings.Join(parts, "; "))
}

// Table maps every command of a schema to its Entry.
type Table struct {
	schema  *schema.Schema
	entries []Entry
}

// Schema returns the schema the table was resolved from.
func (t *Table) Schema() *schema.Schema { return t.schema }

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.entries) }

// Entry returns the entry for id.
// It panics if id does not belong to the table's schema.
func (t *Table) Entry(id schema.CommandID) *Entry { return &t.entries[id] }

// Lookup returns the entry for the named command.
func (t *Table) Lookup(name string) (*Entry, bool) {
	c, ok := t.schema.Lookup(name)
	if !ok {
		return nil, false
	}
	return &t.entries[c.ID], true
}

// Bound returns the number of bound entries.
func (t *Table) Bound() int {
	n := 0
	for i := range t.entries {
		if t.entries[i].Bound() {
			n++
		}
	}
	return n
}

// Unresolved returns the names of the unresolved commands in ID order.
func (t *Table) Unresolved() []string {
	var names []string
	for i := range t.entries {
		if !t.entries[i].Bound() {
			names = append(names, t.entries[i].Command.Name)
		}
	}
	return names
}
