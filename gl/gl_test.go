package gl_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/gogpu/gldispatch"
	"github.com/gogpu/gldispatch/gl"
	"github.com/gogpu/gldispatch/internal/cmem"
	"github.com/gogpu/gldispatch/internal/fake"
	"github.com/gogpu/gldispatch/schema"
)

func newFunctions(t *testing.T, p *fake.Platform, opts ...gldispatch.Option) *gl.Functions {
	t.Helper()
	c, err := gldispatch.New(p, opts...)
	if err != nil {
		t.Fatalf("gldispatch.New() = %v", err)
	}
	return gl.New(c)
}

// uint32s views n uint32 values at the native address p.
func uint32s(p uintptr, n int) []uint32 {
	return cmem.Slice[uint32](p, n)
}

func TestEveryCatalogCommandHasAMethod(t *testing.T) {
	typ := reflect.TypeOf(&gl.Functions{})
	for _, cmd := range schema.Default().Commands() {
		if _, ok := typ.MethodByName(cmd.Name); !ok {
			t.Errorf("gl.Functions has no method %s", cmd.Name)
		}
	}
}

func TestGenAndDeleteTextures(t *testing.T) {
	p := fake.New("4.6")
	next := uint32(10)
	p.Define("glGenTextures", func(args ...uintptr) uintptr {
		for i := range uint32s(args[1], int(args[0])) {
			uint32s(args[1], int(args[0]))[i] = next
			next++
		}
		return 0
	})
	var deleted []uint32
	p.Define("glDeleteTextures", func(args ...uintptr) uintptr {
		deleted = append(deleted, uint32s(args[1], int(args[0]))...)
		return 0
	})
	f := newFunctions(t, p)

	texs, err := f.GenTextures(3)
	if err != nil {
		t.Fatalf("GenTextures() = %v", err)
	}
	want := []gl.Texture{{V: 10}, {V: 11}, {V: 12}}
	if !reflect.DeepEqual(texs, want) {
		t.Errorf("GenTextures(3) = %v, want %v", texs, want)
	}
	if err := f.DeleteTextures(texs[0], texs[2]); err != nil {
		t.Fatalf("DeleteTextures() = %v", err)
	}
	if !reflect.DeepEqual(deleted, []uint32{10, 12}) {
		t.Errorf("deleted %v, want [10 12]", deleted)
	}

	if texs, err := f.GenTextures(0); texs != nil || err != nil {
		t.Errorf("GenTextures(0) = %v, %v, want nil, nil", texs, err)
	}
}

func TestClearColorPassesFloatBits(t *testing.T) {
	p := fake.New("4.6")
	p.DefineAll("glClearColor")
	f := newFunctions(t, p)

	if err := f.ClearColor(0.25, 0.5, 1, -2); err != nil {
		t.Fatalf("ClearColor() = %v", err)
	}
	calls := p.Calls()
	if len(calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(calls))
	}
	for i, want := range []float32{0.25, 0.5, 1, -2} {
		if got := math.Float32frombits(uint32(calls[0].Args[i])); got != want {
			t.Errorf("arg %d = %v, want %v", i, got, want)
		}
	}
}

func TestGetString(t *testing.T) {
	p := fake.New("4.6")
	vendor := cmem.CString("Acme")
	p.Define("glGetString", func(args ...uintptr) uintptr {
		if args[0] == gl.VENDOR {
			return cmem.Addr(vendor)
		}
		return 0
	})
	f := newFunctions(t, p)

	if got, err := f.GetString(gl.VENDOR); err != nil || got != "Acme" {
		t.Errorf("GetString(VENDOR) = %q, %v, want Acme", got, err)
	}
	if got, err := f.GetString(gl.RENDERER); err != nil || got != "" {
		t.Errorf("GetString(RENDERER) = %q, %v, want empty", got, err)
	}
}

func TestGetInteger(t *testing.T) {
	p := fake.New("4.6")
	p.Define("glGetIntegerv", func(args ...uintptr) uintptr {
		if args[0] == gl.MAX_TEXTURE_SIZE {
			cmem.Slice[int32](args[1], 1)[0] = 16384
		}
		return 0
	})
	f := newFunctions(t, p)

	if got, err := f.GetInteger(gl.MAX_TEXTURE_SIZE); err != nil || got != 16384 {
		t.Errorf("GetInteger(MAX_TEXTURE_SIZE) = %d, %v, want 16384", got, err)
	}
}

func TestShaderSource(t *testing.T) {
	p := fake.New("4.6")
	var got string
	p.Define("glShaderSource", func(args ...uintptr) uintptr {
		strs := cmem.Slice[uintptr](args[2], int(args[1]))
		lens := cmem.Slice[int32](args[3], int(args[1]))
		got = string(cmem.Bytes(strs[0], int(lens[0])))
		return 0
	})
	f := newFunctions(t, p)

	const src = "void main() {}"
	if err := f.ShaderSource(gl.Shader{V: 3}, src); err != nil {
		t.Fatalf("ShaderSource() = %v", err)
	}
	if got != src {
		t.Errorf("native side read %q, want %q", got, src)
	}
}

func TestGetUniformLocationNegative(t *testing.T) {
	p := fake.New("4.6")
	p.Define("glGetUniformLocation", func(...uintptr) uintptr {
		// GLint -1 in the low word.
		return uintptr(math.MaxUint32)
	})
	f := newFunctions(t, p)

	u, err := f.GetUniformLocation(gl.Program{V: 1}, "missing")
	if err != nil {
		t.Fatalf("GetUniformLocation() = %v", err)
	}
	if u.Valid() {
		t.Errorf("GetUniformLocation() = %v, want invalid", u)
	}
}

func TestUnavailableCommand(t *testing.T) {
	p := fake.New("2.1")
	f := newFunctions(t, p)

	_, err := f.GenVertexArrays(1)
	if !errors.Is(err, gldispatch.ErrCommandUnavailable) {
		t.Fatalf("GenVertexArrays() error = %v, want ErrCommandUnavailable", err)
	}
	var cu *gldispatch.CommandUnavailableError
	if !errors.As(err, &cu) || cu.Command != "GenVertexArrays" {
		t.Errorf("error = %v, want GenVertexArrays unavailable", err)
	}
	if len(p.Calls()) != 0 {
		t.Errorf("unavailable command reached the platform: %+v", p.Calls())
	}
}

func TestFallbackAlias(t *testing.T) {
	p := fake.New("OpenGL ES 2.0", "GL_OES_vertex_array_object")
	p.DefineAll("glBindVertexArrayOES")
	f := newFunctions(t, p)

	if err := f.BindVertexArray(gl.VertexArray{V: 4}); err != nil {
		t.Fatalf("BindVertexArray() = %v", err)
	}
	calls := p.Calls()
	if len(calls) != 1 || calls[0].Symbol != "glBindVertexArrayOES" || calls[0].Args[0] != 4 {
		t.Errorf("calls = %+v, want glBindVertexArrayOES(4)", calls)
	}
}

func TestValueKeptAlongsideFault(t *testing.T) {
	p := fake.New("4.6")
	p.Define("glCreateShader", func(...uintptr) uintptr {
		p.RaiseError(gldispatch.InvalidEnum)
		return 7
	})
	f := newFunctions(t, p, gldispatch.WithValidation(true))

	s, err := f.CreateShader(0xdead)
	if !errors.Is(err, gldispatch.ErrNativeFault) {
		t.Fatalf("CreateShader() error = %v, want ErrNativeFault", err)
	}
	if s.V != 7 {
		t.Errorf("CreateShader() = %v, want the native result 7", s)
	}
}

func TestBoolAndEnumResults(t *testing.T) {
	p := fake.New("4.6")
	p.Define("glUnmapBuffer", func(...uintptr) uintptr { return 0xff00 | gl.TRUE })
	p.Define("glCheckFramebufferStatus", func(...uintptr) uintptr { return gl.FRAMEBUFFER_COMPLETE })
	p.DefineAll("glDepthMask")
	f := newFunctions(t, p)

	if ok, err := f.UnmapBuffer(gl.ARRAY_BUFFER); err != nil || !ok {
		t.Errorf("UnmapBuffer() = %v, %v, want true", ok, err)
	}
	if st, err := f.CheckFramebufferStatus(gl.FRAMEBUFFER); err != nil || st != gl.FRAMEBUFFER_COMPLETE {
		t.Errorf("CheckFramebufferStatus() = %#x, %v", st, err)
	}
	if err := f.DepthMask(true); err != nil {
		t.Fatalf("DepthMask() = %v", err)
	}
	if args := p.Calls()[2].Args; args[0] != gl.TRUE {
		t.Errorf("DepthMask(true) passed %d", args[0])
	}
}

func TestObjectValid(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
		want  bool
	}{
		{"zero texture", gl.Texture{}.Valid(), false},
		{"texture", gl.Texture{V: 1}.Valid(), true},
		{"zero program", gl.Program{}.Valid(), false},
		{"uniform 0", gl.Uniform{V: 0}.Valid(), true},
		{"uniform -1", gl.Uniform{V: -1}.Valid(), false},
	}
	for _, tt := range tests {
		if tt.valid != tt.want {
			t.Errorf("%s: Valid() = %v, want %v", tt.name, tt.valid, tt.want)
		}
	}
}
