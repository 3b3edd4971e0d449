package gldispatch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/gldispatch/capability"
	"github.com/gogpu/gldispatch/slot"
)

// Dispatch errors.
var (
	// ErrInvalidContextState is returned by initialization when no native
	// context is current on the calling thread or it cannot be queried.
	ErrInvalidContextState = capability.ErrInvalidContextState

	// ErrCommandUnavailable matches every *CommandUnavailableError.
	ErrCommandUnavailable = errors.New("gldispatch: command unavailable")

	// ErrNativeFault matches every *NativeFault.
	ErrNativeFault = errors.New("gldispatch: native fault")

	// ErrNilPlatform is returned by New when no platform is given.
	ErrNilPlatform = errors.New("gldispatch: nil platform")
)

// CommandUnavailableError reports a dispatch of a command that no alias
// could be bound for in the current context.
type CommandUnavailableError struct {
	Command  string
	Attempts []slot.Attempt
	// Unknown is set when the command is not part of the context's schema.
	Unknown bool
}

func (e *CommandUnavailableError) Error() string {
	if e.Unknown {
		return fmt.Sprintf("gldispatch: unknown command %s", e.Command)
	}
	if len(e.Attempts) == 0 {
		return fmt.Sprintf("gldispatch: command %s unavailable: no aliases", e.Command)
	}
	parts := make([]string, len(e.Attempts))
	for i, a := range e.Attempts {
		parts[i] = a.String()
	}
	return fmt.Sprintf("gldispatch: command %s unavailable: %s", e.Command, strings.Join(parts, "; "))
}

// Is reports whether target is ErrCommandUnavailable.
func (e *CommandUnavailableError) Is(target error) bool { return target == ErrCommandUnavailable }

// NativeFault is an error state the native context reported right after a
// dispatch. It accompanies the dispatch result; it never replaces it.
type NativeFault struct {
	Command string
	Alias   string
	// Codes holds the drained error codes, oldest first.
	Codes []uint32
}

func (f *NativeFault) Error() string {
	names := make([]string, len(f.Codes))
	for i, c := range f.Codes {
		names[i] = ErrorName(c)
	}
	return fmt.Sprintf("gldispatch: %s (%s): %s", f.Command, f.Alias, strings.Join(names, ", "))
}

// Is reports whether target is ErrNativeFault.
func (f *NativeFault) Is(target error) bool { return target == ErrNativeFault }

// GL error codes as reported by glGetError.
const (
	NoError                     = 0
	InvalidEnum                 = 0x0500
	InvalidValue                = 0x0501
	InvalidOperation            = 0x0502
	StackOverflow               = 0x0503
	StackUnderflow              = 0x0504
	OutOfMemory                 = 0x0505
	InvalidFramebufferOperation = 0x0506
	ContextLost                 = 0x0507
)

// ErrorName returns the GL name of an error code, or its hex value when the
// code is not a known GL error.
func ErrorName(code uint32) string {
	switch code {
	case NoError:
		return "GL_NO_ERROR"
	case InvalidEnum:
		return "GL_INVALID_ENUM"
	case InvalidValue:
		return "GL_INVALID_VALUE"
	case InvalidOperation:
		return "GL_INVALID_OPERATION"
	case StackOverflow:
		return "GL_STACK_OVERFLOW"
	case StackUnderflow:
		return "GL_STACK_UNDERFLOW"
	case OutOfMemory:
		return "GL_OUT_OF_MEMORY"
	case InvalidFramebufferOperation:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case ContextLost:
		return "GL_CONTEXT_LOST"
	default:
		return fmt.Sprintf("%#x", code)
	}
}
