package capability

import (
	"fmt"
	"strings"
)

// API identifies the OpenGL flavor a context implements.
type API uint8

const (
	// APIGL is desktop OpenGL.
	APIGL API = iota
	// APIGLES is OpenGL ES, including WebGL.
	APIGLES
)

// String returns a human-readable name for the API.
func (a API) String() string {
	switch a {
	case APIGL:
		return "gl"
	case APIGLES:
		return "gles"
	default:
		return fmt.Sprintf("API(%d)", uint8(a))
	}
}

// Version is a major.minor API version.
type Version struct {
	Major, Minor int
}

// V is shorthand for Version{major, minor}.
func V(major, minor int) Version { return Version{Major: major, Minor: minor} }

// IsZero reports whether v is the zero version.
func (v Version) IsZero() bool { return v.Major == 0 && v.Minor == 0 }

// AtLeast reports whether v >= o.
func (v Version) AtLeast(o Version) bool {
	if v.Major != o.Major {
		return v.Major > o.Major
	}
	return v.Minor >= o.Minor
}

func (v Version) String() string { return fmt.Sprintf("%d.%d", v.Major, v.Minor) }

// ParseVersion parses a GL_VERSION string.
//
// Desktop strings start with the version number ("4.6.0 NVIDIA 535.54").
// ES strings carry an "OpenGL ES" prefix, optionally with a profile suffix
// ("OpenGL ES-CM 1.1"). WebGL major version v maps to OpenGL ES v+1.
func ParseVersion(s string) (Version, API, error) {
	var ver Version
	str := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(str, "OpenGL ES"):
		rest := strings.TrimPrefix(str, "OpenGL ES")
		// Skip "-CM"/"-CL" profile markers of ES 1.x.
		if i := strings.IndexByte(rest, ' '); i >= 0 {
			rest = rest[i:]
		}
		if _, err := fmt.Sscanf(rest, " %d.%d", &ver.Major, &ver.Minor); err != nil {
			return Version{}, APIGLES, fmt.Errorf("capability: failed to parse OpenGL ES version (%s)", s)
		}
		return ver, APIGLES, nil
	case strings.HasPrefix(str, "WebGL"):
		if _, err := fmt.Sscanf(str, "WebGL %d.%d", &ver.Major, &ver.Minor); err != nil {
			return Version{}, APIGLES, fmt.Errorf("capability: failed to parse WebGL version (%s)", s)
		}
		ver.Major++
		return ver, APIGLES, nil
	default:
		if _, err := fmt.Sscanf(str, "%d.%d", &ver.Major, &ver.Minor); err != nil {
			return Version{}, APIGL, fmt.Errorf("capability: failed to parse OpenGL version (%s)", s)
		}
		return ver, APIGL, nil
	}
}

// Limit caps the version of contexts of one API.
type Limit struct {
	API     API
	Version Version
}

// GLLimit caps desktop GL contexts at major.minor.
func GLLimit(major, minor int) Limit { return Limit{API: APIGL, Version: V(major, minor)} }

// GLESLimit caps OpenGL ES contexts at major.minor.
func GLESLimit(major, minor int) Limit { return Limit{API: APIGLES, Version: V(major, minor)} }

// IsZero reports whether l caps nothing.
func (l Limit) IsZero() bool { return l.Version.IsZero() }

func (l Limit) String() string { return l.API.String() + " " + l.Version.String() }

// UnmarshalText parses a limit in GL_VERSION form: "3.3" caps desktop GL,
// "OpenGL ES 2.0" caps ES.
func (l *Limit) UnmarshalText(text []byte) error {
	v, api, err := ParseVersion(string(text))
	if err != nil {
		return err
	}
	*l = Limit{API: api, Version: v}
	return nil
}
