package schema

import "github.com/gogpu/gldispatch/capability"

// Built-in command IDs. They index Default() and are stable for the life of
// the process.
const (
	ActiveTexture CommandID = iota
	BindTexture
	GenTextures
	DeleteTextures
	TexImage2D
	TexSubImage2D
	TexParameteri
	TexStorage2D
	GenerateMipmap
	PixelStorei
	ReadPixels

	Clear
	ClearColor
	ClearDepthf
	Viewport
	Scissor
	Enable
	Disable
	BlendFunc
	BlendFuncSeparate
	BlendEquation
	DepthFunc
	DepthMask

	GetError
	GetIntegerv
	GetString
	GetStringi
	Finish
	Flush

	GenBuffers
	DeleteBuffers
	BindBuffer
	BufferData
	BufferSubData
	BindBufferBase
	MapBufferRange
	UnmapBuffer

	GenVertexArrays
	BindVertexArray
	DeleteVertexArrays
	EnableVertexAttribArray
	VertexAttribPointer
	VertexAttribDivisor

	DrawArrays
	DrawElements
	DrawArraysInstanced
	DrawBuffers

	GenFramebuffers
	DeleteFramebuffers
	BindFramebuffer
	FramebufferTexture2D
	CheckFramebufferStatus
	BlitFramebuffer
	InvalidateFramebuffer

	CreateShader
	ShaderSource
	CompileShader
	DeleteShader
	CreateProgram
	AttachShader
	LinkProgram
	UseProgram
	DeleteProgram
	GetUniformLocation
	Uniform1i

	GenQueries
	DeleteQueries
	BeginQuery
	EndQuery
	GetQueryObjectuiv

	DispatchCompute
	MemoryBarrier
	PushDebugGroup
	PopDebugGroup

	numCommands
)

var v = capability.V

func core(gl, gles capability.Version) capability.Feature { return capability.Core(gl, gles) }

func ext(name string) capability.Feature { return capability.Ext(name) }

// Aliases shared by several commands of the same extension family.
var (
	fbo = func(name, arb, vendor string) []Alias {
		return []Alias{
			{name, core(v(3, 0), v(2, 0))},
			{arb, ext("GL_ARB_framebuffer_object")},
			{vendor, ext("GL_EXT_framebuffer_object")},
		}
	}
	vao = func(name string) []Alias {
		return []Alias{
			{name, core(v(3, 0), v(3, 0))},
			{name, ext("GL_ARB_vertex_array_object")},
			{name + "OES", ext("GL_OES_vertex_array_object")},
			{name + "APPLE", ext("GL_APPLE_vertex_array_object")},
		}
	}
	vbo = func(name string) []Alias {
		return []Alias{
			{name, core(v(1, 5), v(2, 0))},
			{name + "ARB", ext("GL_ARB_vertex_buffer_object")},
		}
	}
	query = func(name string) []Alias {
		return []Alias{
			{name, core(v(1, 5), v(3, 0))},
			{name + "ARB", ext("GL_ARB_occlusion_query")},
			{name + "EXT", ext("GL_EXT_disjoint_timer_query")},
		}
	}
	shaderObj = func(name, arb string) []Alias {
		return []Alias{
			{name, core(v(2, 0), v(2, 0))},
			{arb, ext("GL_ARB_shader_objects")},
		}
	}
	gl10 = func(name string) []Alias {
		return []Alias{{name, core(v(1, 0), v(2, 0))}}
	}
	texObj = func(name string) []Alias {
		return []Alias{
			{name, core(v(1, 1), v(2, 0))},
			{name + "EXT", ext("GL_EXT_texture_object")},
		}
	}
	debugGroup = func(name string) []Alias {
		return []Alias{
			{name, core(v(4, 3), v(3, 2))},
			{name, ext("GL_KHR_debug")},
			{name + "KHR", ext("GL_KHR_debug")},
		}
	}
)

// catalog lists the built-in commands. Within every alias list the
// unsuffixed core symbol comes first, then ARB, then other vendors.
var catalog = [numCommands]Command{
	ActiveTexture: {Name: "ActiveTexture", Aliases: []Alias{
		{"glActiveTexture", core(v(1, 3), v(2, 0))},
		{"glActiveTextureARB", ext("GL_ARB_multitexture")},
	}},
	BindTexture:    {Name: "BindTexture", Aliases: texObj("glBindTexture")},
	GenTextures:    {Name: "GenTextures", Aliases: texObj("glGenTextures")},
	DeleteTextures: {Name: "DeleteTextures", Aliases: texObj("glDeleteTextures")},
	TexImage2D:     {Name: "TexImage2D", Aliases: gl10("glTexImage2D")},
	TexSubImage2D: {Name: "TexSubImage2D", Aliases: []Alias{
		{"glTexSubImage2D", core(v(1, 1), v(2, 0))},
		{"glTexSubImage2DEXT", ext("GL_EXT_subtexture")},
	}},
	TexParameteri: {Name: "TexParameteri", Aliases: gl10("glTexParameteri")},
	TexStorage2D: {Name: "TexStorage2D", Aliases: []Alias{
		{"glTexStorage2D", core(v(4, 2), v(3, 0))},
		{"glTexStorage2D", ext("GL_ARB_texture_storage")},
		{"glTexStorage2DEXT", ext("GL_EXT_texture_storage")},
	}},
	GenerateMipmap: {Name: "GenerateMipmap", Aliases: fbo("glGenerateMipmap", "glGenerateMipmap", "glGenerateMipmapEXT")},
	PixelStorei:    {Name: "PixelStorei", Aliases: gl10("glPixelStorei")},
	ReadPixels:     {Name: "ReadPixels", Aliases: gl10("glReadPixels")},

	Clear:      {Name: "Clear", Aliases: gl10("glClear")},
	ClearColor: {Name: "ClearColor", Aliases: gl10("glClearColor")},
	ClearDepthf: {Name: "ClearDepthf", Aliases: []Alias{
		{"glClearDepthf", core(v(4, 1), v(2, 0))},
		{"glClearDepthf", ext("GL_ARB_ES2_compatibility")},
		{"glClearDepthfOES", ext("GL_OES_single_precision")},
	}},
	Viewport:  {Name: "Viewport", Aliases: gl10("glViewport")},
	Scissor:   {Name: "Scissor", Aliases: gl10("glScissor")},
	Enable:    {Name: "Enable", Aliases: gl10("glEnable")},
	Disable:   {Name: "Disable", Aliases: gl10("glDisable")},
	BlendFunc: {Name: "BlendFunc", Aliases: gl10("glBlendFunc")},
	BlendFuncSeparate: {Name: "BlendFuncSeparate", Aliases: []Alias{
		{"glBlendFuncSeparate", core(v(1, 4), v(2, 0))},
		{"glBlendFuncSeparateEXT", ext("GL_EXT_blend_func_separate")},
	}},
	BlendEquation: {Name: "BlendEquation", Aliases: []Alias{
		{"glBlendEquation", core(v(1, 4), v(2, 0))},
		{"glBlendEquationEXT", ext("GL_EXT_blend_minmax")},
	}},
	DepthFunc: {Name: "DepthFunc", Aliases: gl10("glDepthFunc")},
	DepthMask: {Name: "DepthMask", Aliases: gl10("glDepthMask")},

	GetError:    {Name: "GetError", Aliases: gl10("glGetError")},
	GetIntegerv: {Name: "GetIntegerv", Aliases: gl10("glGetIntegerv")},
	GetString:   {Name: "GetString", Aliases: gl10("glGetString")},
	GetStringi: {Name: "GetStringi", Aliases: []Alias{
		{"glGetStringi", core(v(3, 0), v(3, 0))},
	}},
	Finish: {Name: "Finish", Aliases: gl10("glFinish")},
	Flush:  {Name: "Flush", Aliases: gl10("glFlush")},

	GenBuffers:    {Name: "GenBuffers", Aliases: vbo("glGenBuffers")},
	DeleteBuffers: {Name: "DeleteBuffers", Aliases: vbo("glDeleteBuffers")},
	BindBuffer:    {Name: "BindBuffer", Aliases: vbo("glBindBuffer")},
	BufferData:    {Name: "BufferData", Aliases: vbo("glBufferData")},
	BufferSubData: {Name: "BufferSubData", Aliases: vbo("glBufferSubData")},
	BindBufferBase: {Name: "BindBufferBase", Aliases: []Alias{
		{"glBindBufferBase", core(v(3, 0), v(3, 0))},
		{"glBindBufferBaseEXT", ext("GL_EXT_transform_feedback")},
		{"glBindBufferBaseNV", ext("GL_NV_transform_feedback")},
	}},
	MapBufferRange: {Name: "MapBufferRange", Aliases: []Alias{
		{"glMapBufferRange", core(v(3, 0), v(3, 0))},
		{"glMapBufferRange", ext("GL_ARB_map_buffer_range")},
		{"glMapBufferRangeEXT", ext("GL_EXT_map_buffer_range")},
	}},
	UnmapBuffer: {Name: "UnmapBuffer", Aliases: []Alias{
		{"glUnmapBuffer", core(v(1, 5), v(3, 0))},
		{"glUnmapBufferARB", ext("GL_ARB_vertex_buffer_object")},
		{"glUnmapBufferOES", ext("GL_OES_mapbuffer")},
	}},

	GenVertexArrays:    {Name: "GenVertexArrays", Aliases: vao("glGenVertexArrays")},
	BindVertexArray:    {Name: "BindVertexArray", Aliases: vao("glBindVertexArray")},
	DeleteVertexArrays: {Name: "DeleteVertexArrays", Aliases: vao("glDeleteVertexArrays")},
	EnableVertexAttribArray: {Name: "EnableVertexAttribArray", Aliases: []Alias{
		{"glEnableVertexAttribArray", core(v(2, 0), v(2, 0))},
		{"glEnableVertexAttribArrayARB", ext("GL_ARB_vertex_program")},
	}},
	VertexAttribPointer: {Name: "VertexAttribPointer", Aliases: []Alias{
		{"glVertexAttribPointer", core(v(2, 0), v(2, 0))},
		{"glVertexAttribPointerARB", ext("GL_ARB_vertex_program")},
	}},
	VertexAttribDivisor: {Name: "VertexAttribDivisor", Aliases: []Alias{
		{"glVertexAttribDivisor", core(v(3, 3), v(3, 0))},
		{"glVertexAttribDivisorARB", ext("GL_ARB_instanced_arrays")},
		{"glVertexAttribDivisorEXT", ext("GL_EXT_instanced_arrays")},
		{"glVertexAttribDivisorANGLE", ext("GL_ANGLE_instanced_arrays")},
	}},

	DrawArrays: {Name: "DrawArrays", Aliases: []Alias{
		{"glDrawArrays", core(v(1, 1), v(2, 0))},
		{"glDrawArraysEXT", ext("GL_EXT_vertex_array")},
	}},
	DrawElements: {Name: "DrawElements", Aliases: gl10("glDrawElements")},
	DrawArraysInstanced: {Name: "DrawArraysInstanced", Aliases: []Alias{
		{"glDrawArraysInstanced", core(v(3, 1), v(3, 0))},
		{"glDrawArraysInstancedARB", ext("GL_ARB_draw_instanced")},
		{"glDrawArraysInstancedEXT", ext("GL_EXT_draw_instanced")},
		{"glDrawArraysInstancedANGLE", ext("GL_ANGLE_instanced_arrays")},
	}},
	DrawBuffers: {Name: "DrawBuffers", Aliases: []Alias{
		{"glDrawBuffers", core(v(2, 0), v(3, 0))},
		{"glDrawBuffersARB", ext("GL_ARB_draw_buffers")},
		{"glDrawBuffersEXT", ext("GL_EXT_draw_buffers")},
	}},

	GenFramebuffers:        {Name: "GenFramebuffers", Aliases: fbo("glGenFramebuffers", "glGenFramebuffers", "glGenFramebuffersEXT")},
	DeleteFramebuffers:     {Name: "DeleteFramebuffers", Aliases: fbo("glDeleteFramebuffers", "glDeleteFramebuffers", "glDeleteFramebuffersEXT")},
	BindFramebuffer:        {Name: "BindFramebuffer", Aliases: fbo("glBindFramebuffer", "glBindFramebuffer", "glBindFramebufferEXT")},
	FramebufferTexture2D:   {Name: "FramebufferTexture2D", Aliases: fbo("glFramebufferTexture2D", "glFramebufferTexture2D", "glFramebufferTexture2DEXT")},
	CheckFramebufferStatus: {Name: "CheckFramebufferStatus", Aliases: fbo("glCheckFramebufferStatus", "glCheckFramebufferStatus", "glCheckFramebufferStatusEXT")},
	BlitFramebuffer: {Name: "BlitFramebuffer", Aliases: []Alias{
		{"glBlitFramebuffer", core(v(3, 0), v(3, 0))},
		{"glBlitFramebuffer", ext("GL_ARB_framebuffer_object")},
		{"glBlitFramebufferEXT", ext("GL_EXT_framebuffer_blit")},
		{"glBlitFramebufferANGLE", ext("GL_ANGLE_framebuffer_blit")},
		{"glBlitFramebufferNV", ext("GL_NV_framebuffer_blit")},
	}},
	InvalidateFramebuffer: {Name: "InvalidateFramebuffer", Aliases: []Alias{
		{"glInvalidateFramebuffer", core(v(4, 3), v(3, 0))},
		{"glInvalidateFramebuffer", ext("GL_ARB_invalidate_subdata")},
		{"glDiscardFramebufferEXT", ext("GL_EXT_discard_framebuffer")},
	}},

	CreateShader:       {Name: "CreateShader", Aliases: shaderObj("glCreateShader", "glCreateShaderObjectARB")},
	ShaderSource:       {Name: "ShaderSource", Aliases: shaderObj("glShaderSource", "glShaderSourceARB")},
	CompileShader:      {Name: "CompileShader", Aliases: shaderObj("glCompileShader", "glCompileShaderARB")},
	DeleteShader:       {Name: "DeleteShader", Aliases: shaderObj("glDeleteShader", "glDeleteObjectARB")},
	CreateProgram:      {Name: "CreateProgram", Aliases: shaderObj("glCreateProgram", "glCreateProgramObjectARB")},
	AttachShader:       {Name: "AttachShader", Aliases: shaderObj("glAttachShader", "glAttachObjectARB")},
	LinkProgram:        {Name: "LinkProgram", Aliases: shaderObj("glLinkProgram", "glLinkProgramARB")},
	UseProgram:         {Name: "UseProgram", Aliases: shaderObj("glUseProgram", "glUseProgramObjectARB")},
	DeleteProgram:      {Name: "DeleteProgram", Aliases: shaderObj("glDeleteProgram", "glDeleteObjectARB")},
	GetUniformLocation: {Name: "GetUniformLocation", Aliases: shaderObj("glGetUniformLocation", "glGetUniformLocationARB")},
	Uniform1i:          {Name: "Uniform1i", Aliases: shaderObj("glUniform1i", "glUniform1iARB")},

	GenQueries:        {Name: "GenQueries", Aliases: query("glGenQueries")},
	DeleteQueries:     {Name: "DeleteQueries", Aliases: query("glDeleteQueries")},
	BeginQuery:        {Name: "BeginQuery", Aliases: query("glBeginQuery")},
	EndQuery:          {Name: "EndQuery", Aliases: query("glEndQuery")},
	GetQueryObjectuiv: {Name: "GetQueryObjectuiv", Aliases: query("glGetQueryObjectuiv")},

	DispatchCompute: {Name: "DispatchCompute", Aliases: []Alias{
		{"glDispatchCompute", core(v(4, 3), v(3, 1))},
		{"glDispatchCompute", ext("GL_ARB_compute_shader")},
	}},
	MemoryBarrier: {Name: "MemoryBarrier", Aliases: []Alias{
		{"glMemoryBarrier", core(v(4, 2), v(3, 1))},
		{"glMemoryBarrier", ext("GL_ARB_shader_image_load_store")},
		{"glMemoryBarrierEXT", ext("GL_EXT_shader_image_load_store")},
	}},
	PushDebugGroup: {Name: "PushDebugGroup", Aliases: debugGroup("glPushDebugGroup")},
	PopDebugGroup:  {Name: "PopDebugGroup", Aliases: debugGroup("glPopDebugGroup")},
}

var defaultSchema = MustNew(catalog[:])

// Default returns the built-in OpenGL / OpenGL ES schema. Its command IDs
// are the constants of this package.
func Default() *Schema { return defaultSchema }
