//go:build !darwin && !linux && !windows

package loader

func openLibrary(string) (library, error) { return nil, ErrUnsupportedPlatform }

func callProc(uintptr, ...uintptr) uintptr { return 0 }

func floatCall(string, uintptr) func(args []uintptr) uintptr { return nil }
