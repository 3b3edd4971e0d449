package gldispatch

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/gogpu/gldispatch/capability"
	"github.com/gogpu/gldispatch/schema"
	"github.com/gogpu/gldispatch/slot"
)

func TestErrorName(t *testing.T) {
	tests := []struct {
		code uint32
		want string
	}{
		{NoError, "GL_NO_ERROR"},
		{InvalidEnum, "GL_INVALID_ENUM"},
		{InvalidValue, "GL_INVALID_VALUE"},
		{InvalidOperation, "GL_INVALID_OPERATION"},
		{StackOverflow, "GL_STACK_OVERFLOW"},
		{StackUnderflow, "GL_STACK_UNDERFLOW"},
		{OutOfMemory, "GL_OUT_OF_MEMORY"},
		{InvalidFramebufferOperation, "GL_INVALID_FRAMEBUFFER_OPERATION"},
		{ContextLost, "GL_CONTEXT_LOST"},
		{0x9999, "0x9999"},
	}
	for _, tt := range tests {
		if got := ErrorName(tt.code); got != tt.want {
			t.Errorf("ErrorName(%#x) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestNativeFaultError(t *testing.T) {
	f := &NativeFault{Command: "BindTexture", Alias: "glBindTexture", Codes: []uint32{InvalidEnum, InvalidOperation}}
	want := "gldispatch: BindTexture (glBindTexture): GL_INVALID_ENUM, GL_INVALID_OPERATION"
	if got := f.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	wrapped := fmt.Errorf("draw: %w", f)
	if !errors.Is(wrapped, ErrNativeFault) {
		t.Error("wrapped fault does not match ErrNativeFault")
	}
	if errors.Is(wrapped, ErrCommandUnavailable) {
		t.Error("fault matches ErrCommandUnavailable")
	}
}

func TestCommandUnavailableError(t *testing.T) {
	cmd := &schema.Command{Name: "Chain", Aliases: []schema.Alias{
		{Name: "glChain", Feature: capability.Core(capability.V(4, 5), capability.Version{})},
		{Name: "glChainEXT", Feature: capability.Ext("GL_EXT_chain")},
	}}
	e := &slot.Entry{Command: cmd, Alias: -1, Attempts: []slot.Attempt{
		{Alias: cmd.Aliases[0], Outcome: slot.OutcomeGated},
		{Alias: cmd.Aliases[1], Outcome: slot.OutcomeNotFound},
	}}

	err := unavailable(e)
	msg := err.Error()
	for _, s := range []string{"Chain", "glChain", "feature disabled", "glChainEXT", "not found"} {
		if !strings.Contains(msg, s) {
			t.Errorf("Error() = %q, missing %q", msg, s)
		}
	}
	if !errors.Is(err, ErrCommandUnavailable) {
		t.Error("error does not match ErrCommandUnavailable")
	}

	// Attempts are copied out of the table.
	e.Attempts[0].Outcome = slot.OutcomeBound
	if err.Attempts[0].Outcome != slot.OutcomeGated {
		t.Error("error shares attempts with the slot entry")
	}

	empty := &CommandUnavailableError{Command: "Empty"}
	if !strings.Contains(empty.Error(), "no aliases") {
		t.Errorf("Error() = %q, want mention of no aliases", empty.Error())
	}

	unknown := &CommandUnavailableError{Command: "Nope", Unknown: true}
	if got, want := unknown.Error(), "gldispatch: unknown command Nope"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrInvalidContextStateIsCapabilitys(t *testing.T) {
	_, err := capability.Probe(nil)
	if !errors.Is(err, ErrInvalidContextState) {
		t.Errorf("Probe(nil) error = %v, want ErrInvalidContextState", err)
	}
}
