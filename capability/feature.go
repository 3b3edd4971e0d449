package capability

import "strings"

// Feature names what must be active in a context for a native symbol to be
// usable: either a named extension, or core membership from a minimum
// desktop GL and/or GL ES version.
//
// A zero version on one API means the symbol is not core there.
type Feature struct {
	Extension string
	GL        Version
	GLES      Version
}

// Core returns a feature that is core since gl on desktop and since gles on
// OpenGL ES. Pass the zero Version for an API where it is not core.
func Core(gl, gles Version) Feature {
	return Feature{GL: gl, GLES: gles}
}

// Ext returns a feature owned by the named extension.
func Ext(name string) Feature {
	return Feature{Extension: name}
}

// IsExtension reports whether f is gated by an extension.
func (f Feature) IsExtension() bool { return f.Extension != "" }

func (f Feature) String() string {
	if f.IsExtension() {
		return f.Extension
	}
	var parts []string
	if !f.GL.IsZero() {
		parts = append(parts, "GL "+f.GL.String())
	}
	if !f.GLES.IsZero() {
		parts = append(parts, "GLES "+f.GLES.String())
	}
	if len(parts) == 0 {
		return "never"
	}
	return strings.Join(parts, " | ")
}
