package slot

import (
	"github.com/gogpu/gldispatch/capability"
	"github.com/gogpu/gldispatch/schema"
)

// Resolve binds every command of s to the first alias whose feature caps
// enables and that loc can locate.
//
// Aliases are tried strictly in declared order. The locator is never asked
// for an alias whose feature is disabled, nor for any alias after the one
// that was bound. Commands with no usable alias stay unresolved; that is not
// an error here, only dispatching them is.
//
// Resolve is deterministic: the same schema, capabilities and locator
// behavior always produce the same table.
func Resolve(s *schema.Schema, caps *capability.Set, loc Locator) *Table {
	t := &Table{
		schema:  s,
		entries: make([]Entry, s.Len()),
	}
	cmds := s.Commands()
	for i := range cmds {
		t.entries[i] = resolveCommand(&cmds[i], caps, loc)
	}
	return t
}

func resolveCommand(c *schema.Command, caps *capability.Set, loc Locator) Entry {
	e := Entry{
		Command:  c,
		Alias:    -1,
		Attempts: make([]Attempt, len(c.Aliases)),
	}
	for i, a := range c.Aliases {
		e.Attempts[i].Alias = a
	}
	for i, a := range c.Aliases {
		if !caps.Enables(a.Feature) {
			e.Attempts[i].Outcome = OutcomeGated
			continue
		}
		p := loc.Locate(a.Name)
		if p == 0 {
			e.Attempts[i].Outcome = OutcomeNotFound
			continue
		}
		e.Attempts[i].Outcome = OutcomeBound
		e.Proc = p
		e.Alias = i
		break
	}
	return e
}
