//go:build windows

package loader

import (
	"syscall"

	"golang.org/x/sys/windows"
)

type dllLibrary struct {
	name   string
	handle windows.Handle
}

func openLibrary(name string) (library, error) {
	h, err := windows.LoadLibraryEx(name, 0, windows.LOAD_LIBRARY_SEARCH_SYSTEM32|windows.LOAD_LIBRARY_SEARCH_DEFAULT_DIRS)
	if err != nil {
		return nil, err
	}
	return &dllLibrary{name: name, handle: h}, nil
}

func (l *dllLibrary) Name() string { return l.name }

func (l *dllLibrary) Symbol(name string) uintptr {
	p, err := windows.GetProcAddress(l.handle, name)
	if err != nil {
		return 0
	}
	return p
}

func (l *dllLibrary) Close() error { return windows.FreeLibrary(l.handle) }

func callProc(p uintptr, args ...uintptr) uintptr {
	r, _, _ := syscall.SyscallN(p, args...)
	return r
}

// floatCall returns nil: the Windows calling convention reads the first
// float arguments from the registers SyscallN already fills.
func floatCall(string, uintptr) func(args []uintptr) uintptr { return nil }
