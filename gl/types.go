package gl

type (
	// Enum is a GLenum or GLbitfield value.
	Enum uint32
	// Attrib is a vertex attribute index.
	Attrib uint32

	Object      struct{ V uint32 }
	Buffer      Object
	Framebuffer Object
	Program     Object
	Shader      Object
	Texture     Object
	Query       Object
	VertexArray Object
	Uniform     struct{ V int32 }
)

func (o Object) valid() bool { return o.V != 0 }

func (b Buffer) Valid() bool      { return Object(b).valid() }
func (f Framebuffer) Valid() bool { return Object(f).valid() }
func (p Program) Valid() bool     { return Object(p).valid() }
func (s Shader) Valid() bool      { return Object(s).valid() }
func (t Texture) Valid() bool     { return Object(t).valid() }
func (q Query) Valid() bool       { return Object(q).valid() }
func (a VertexArray) Valid() bool { return Object(a).valid() }
func (u Uniform) Valid() bool     { return u.V != -1 }

// A subset of the GL constants, enough for the commands in this package.
const (
	FALSE = 0
	TRUE  = 1

	NO_ERROR = 0x0

	VENDOR                   = 0x1F00
	RENDERER                 = 0x1F01
	VERSION                  = 0x1F02
	EXTENSIONS               = 0x1F03
	SHADING_LANGUAGE_VERSION = 0x8B8C
	NUM_EXTENSIONS           = 0x821D
	MAJOR_VERSION            = 0x821B
	MINOR_VERSION            = 0x821C
	MAX_TEXTURE_SIZE         = 0x0D33

	DEPTH_BUFFER_BIT   = 0x00000100
	STENCIL_BUFFER_BIT = 0x00000400
	COLOR_BUFFER_BIT   = 0x00004000

	POINTS         = 0x0000
	LINES          = 0x0001
	TRIANGLES      = 0x0004
	TRIANGLE_STRIP = 0x0005

	BLEND        = 0x0BE2
	DEPTH_TEST   = 0x0B71
	SCISSOR_TEST = 0x0C11
	CULL_FACE    = 0x0B44

	ZERO                = 0
	ONE                 = 1
	SRC_ALPHA           = 0x0302
	ONE_MINUS_SRC_ALPHA = 0x0303
	FUNC_ADD            = 0x8006

	LESS   = 0x0201
	LEQUAL = 0x0203
	GEQUAL = 0x0206
	ALWAYS = 0x0207

	TEXTURE0           = 0x84C0
	TEXTURE_2D         = 0x0DE1
	TEXTURE_MIN_FILTER = 0x2801
	TEXTURE_MAG_FILTER = 0x2800
	TEXTURE_WRAP_S     = 0x2802
	TEXTURE_WRAP_T     = 0x2803
	NEAREST            = 0x2600
	LINEAR             = 0x2601
	CLAMP_TO_EDGE      = 0x812F
	UNPACK_ALIGNMENT   = 0x0CF5
	PACK_ALIGNMENT     = 0x0D05

	RGBA          = 0x1908
	RGBA8         = 0x8058
	UNSIGNED_BYTE = 0x1401
	UNSIGNED_INT  = 0x1405
	FLOAT         = 0x1406

	ARRAY_BUFFER          = 0x8892
	ELEMENT_ARRAY_BUFFER  = 0x8893
	UNIFORM_BUFFER        = 0x8A11
	SHADER_STORAGE_BUFFER = 0x90D2
	STATIC_DRAW           = 0x88E4
	DYNAMIC_DRAW          = 0x88E8
	MAP_READ_BIT          = 0x0001
	MAP_WRITE_BIT         = 0x0002

	FRAMEBUFFER          = 0x8D40
	READ_FRAMEBUFFER     = 0x8CA8
	DRAW_FRAMEBUFFER     = 0x8CA9
	COLOR_ATTACHMENT0    = 0x8CE0
	DEPTH_ATTACHMENT     = 0x8D00
	FRAMEBUFFER_COMPLETE = 0x8CD5

	VERTEX_SHADER   = 0x8B31
	FRAGMENT_SHADER = 0x8B30
	COMPUTE_SHADER  = 0x91B9

	TIME_ELAPSED           = 0x88BF
	ANY_SAMPLES_PASSED     = 0x8C2F
	QUERY_RESULT           = 0x8866
	QUERY_RESULT_AVAILABLE = 0x8867

	ALL_BARRIER_BITS = 0xFFFFFFFF

	DEBUG_SOURCE_APPLICATION = 0x824A
)
