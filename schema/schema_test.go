package schema

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/gldispatch/capability"
)

func TestNewAssignsIDs(t *testing.T) {
	s, err := New([]Command{
		{ID: 42, Name: "A", Aliases: []Alias{{"a", capability.Ext("GL_x")}}},
		{Name: "B", Aliases: []Alias{{"b", capability.Ext("GL_y")}}},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	for i, c := range s.Commands() {
		if c.ID != CommandID(i) {
			t.Errorf("command %s ID = %d, want %d", c.Name, c.ID, i)
		}
	}
	c, ok := s.Lookup("B")
	if !ok || c.ID != 1 {
		t.Errorf("Lookup(B) = %v, %v; want ID 1", c, ok)
	}
	if _, ok := s.Lookup("missing"); ok {
		t.Error("Lookup(missing) should fail")
	}
}

func TestNewCopiesAliases(t *testing.T) {
	aliases := []Alias{{"a", capability.Ext("GL_x")}}
	s := MustNew([]Command{{Name: "A", Aliases: aliases}})
	aliases[0].Name = "mutated"
	if got := s.Command(0).Aliases[0].Name; got != "a" {
		t.Errorf("alias name = %q after mutating input, want %q", got, "a")
	}
}

func TestNewRejectsDefects(t *testing.T) {
	tests := []struct {
		name string
		cmds []Command
		want error
	}{
		{"empty command name", []Command{{Name: ""}}, ErrEmptyName},
		{"empty alias name", []Command{{Name: "A", Aliases: []Alias{{"", capability.Ext("GL_x")}}}}, ErrEmptyName},
		{"duplicate", []Command{{Name: "A"}, {Name: "A"}}, ErrDuplicateCommand},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.cmds); !errors.Is(err, tt.want) {
				t.Errorf("New() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMustNewPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNew() should panic on duplicate commands")
		}
	}()
	MustNew([]Command{{Name: "A"}, {Name: "A"}})
}

func TestLint(t *testing.T) {
	s := MustNew([]Command{
		{Name: "Empty"},
		{Name: "Ownerless", Aliases: []Alias{{"glOwnerless", capability.Feature{}}}},
		{Name: "Fine", Aliases: []Alias{{"glFine", capability.Core(capability.V(1, 0), capability.Version{})}}},
	})
	errs := s.Lint()
	if len(errs) != 2 {
		t.Fatalf("Lint() = %v, want 2 errors", errs)
	}
	if !strings.Contains(errs[0].Error(), "Empty") {
		t.Errorf("Lint()[0] = %v, want mention of Empty", errs[0])
	}
	if !strings.Contains(errs[1].Error(), "glOwnerless") {
		t.Errorf("Lint()[1] = %v, want mention of glOwnerless", errs[1])
	}
}

func TestDefaultLintsClean(t *testing.T) {
	for _, err := range Default().Lint() {
		t.Error(err)
	}
}

func TestDefaultIDsMatchConstants(t *testing.T) {
	s := Default()
	if s.Len() != int(numCommands) {
		t.Fatalf("Default().Len() = %d, want %d", s.Len(), numCommands)
	}
	for id := CommandID(0); id < numCommands; id++ {
		c := s.Command(id)
		if c.Name == "" {
			t.Errorf("command %d has no entry in the catalog", id)
			continue
		}
		if c.ID != id {
			t.Errorf("Command(%d).ID = %d", id, c.ID)
		}
	}
	if c, _ := s.Lookup("ActiveTexture"); c.ID != ActiveTexture {
		t.Errorf("Lookup(ActiveTexture).ID = %d, want %d", c.ID, ActiveTexture)
	}
}

// Core symbols must be tried before any vendor-owned alias.
func TestDefaultCorePriority(t *testing.T) {
	for _, c := range Default().Commands() {
		first := c.Aliases[0]
		if first.Feature.IsExtension() {
			t.Errorf("%s: first alias %s is extension-owned (%s)", c.Name, first.Name, first.Feature)
		}
		for _, a := range c.Aliases[1:] {
			if !a.Feature.IsExtension() {
				t.Errorf("%s: core alias %s listed after the first alias", c.Name, a.Name)
			}
		}
	}
}

func TestDefaultAliasNames(t *testing.T) {
	for _, c := range Default().Commands() {
		for _, a := range c.Aliases {
			if !strings.HasPrefix(a.Name, "gl") {
				t.Errorf("%s: alias %q lacks the gl prefix", c.Name, a.Name)
			}
			if a.Feature.IsExtension() && !strings.HasPrefix(a.Feature.Extension, "GL_") {
				t.Errorf("%s: alias %s owned by malformed extension %q", c.Name, a.Name, a.Feature.Extension)
			}
		}
	}
}
