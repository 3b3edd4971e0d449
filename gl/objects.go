package gl

import (
	"runtime"

	"github.com/gogpu/gldispatch/internal/cmem"
	"github.com/gogpu/gldispatch/schema"
)

// Textures.

// ActiveTexture selects the texture unit, TEXTURE0 + i.
func (f *Functions) ActiveTexture(texture Enum) error {
	return f.exec(schema.ActiveTexture, uintptr(texture))
}

// BindTexture binds t to target on the active unit.
func (f *Functions) BindTexture(target Enum, t Texture) error {
	return f.exec(schema.BindTexture, uintptr(target), uintptr(t.V))
}

// GenTextures returns n new texture names.
func (f *Functions) GenTextures(n int) ([]Texture, error) {
	return gen[Texture](f, schema.GenTextures, n)
}

// DeleteTextures deletes textures. Zero names are ignored by the driver.
func (f *Functions) DeleteTextures(textures ...Texture) error {
	return del(f, schema.DeleteTextures, textures)
}

// TexImage2D specifies a 2D texture image. A nil data allocates storage
// without uploading.
func (f *Functions) TexImage2D(target Enum, level int, internalFormat Enum, width, height int, format, ty Enum, data []byte) error {
	buf := heapBytes(data)
	err := f.exec(schema.TexImage2D, uintptr(target), uintptr(level), uintptr(internalFormat),
		uintptr(width), uintptr(height), 0, uintptr(format), uintptr(ty), cmem.Addr(buf))
	runtime.KeepAlive(buf)
	return err
}

// TexSubImage2D replaces a region of a 2D texture image.
func (f *Functions) TexSubImage2D(target Enum, level, x, y, width, height int, format, ty Enum, data []byte) error {
	buf := heapBytes(data)
	err := f.exec(schema.TexSubImage2D, uintptr(target), uintptr(level), uintptr(x), uintptr(y),
		uintptr(width), uintptr(height), uintptr(format), uintptr(ty), cmem.Addr(buf))
	runtime.KeepAlive(buf)
	return err
}

// TexParameteri sets an integer texture parameter.
func (f *Functions) TexParameteri(target, pname Enum, param int) error {
	return f.exec(schema.TexParameteri, uintptr(target), uintptr(pname), uintptr(param))
}

// TexStorage2D allocates immutable storage for all levels of a 2D texture.
func (f *Functions) TexStorage2D(target Enum, levels int, internalFormat Enum, width, height int) error {
	return f.exec(schema.TexStorage2D, uintptr(target), uintptr(levels), uintptr(internalFormat), uintptr(width), uintptr(height))
}

// GenerateMipmap builds the mipmap chain of the texture bound to target.
func (f *Functions) GenerateMipmap(target Enum) error {
	return f.exec(schema.GenerateMipmap, uintptr(target))
}

// PixelStorei sets a pixel pack or unpack parameter.
func (f *Functions) PixelStorei(pname Enum, param int) error {
	return f.exec(schema.PixelStorei, uintptr(pname), uintptr(param))
}

// ReadPixels reads a block of pixels into data.
func (f *Functions) ReadPixels(x, y, width, height int, format, ty Enum, data []byte) error {
	buf := cmem.Alloc[byte](len(data))
	err := f.exec(schema.ReadPixels, uintptr(x), uintptr(y), uintptr(width), uintptr(height),
		uintptr(format), uintptr(ty), cmem.Addr(buf))
	runtime.KeepAlive(buf)
	copy(data, buf)
	return err
}

// Buffers.

// GenBuffers returns n new buffer names.
func (f *Functions) GenBuffers(n int) ([]Buffer, error) {
	return gen[Buffer](f, schema.GenBuffers, n)
}

// DeleteBuffers deletes buffers.
func (f *Functions) DeleteBuffers(buffers ...Buffer) error {
	return del(f, schema.DeleteBuffers, buffers)
}

// BindBuffer binds b to target.
func (f *Functions) BindBuffer(target Enum, b Buffer) error {
	return f.exec(schema.BindBuffer, uintptr(target), uintptr(b.V))
}

// BufferData creates the data store of the bound buffer with size bytes,
// initialized from data when it is non-nil.
func (f *Functions) BufferData(target Enum, size int, data []byte, usage Enum) error {
	buf := heapBytes(data)
	err := f.exec(schema.BufferData, uintptr(target), uintptr(size), cmem.Addr(buf), uintptr(usage))
	runtime.KeepAlive(buf)
	return err
}

// BufferSubData replaces bytes of the bound buffer starting at offset.
func (f *Functions) BufferSubData(target Enum, offset int, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	buf := heapBytes(data)
	err := f.exec(schema.BufferSubData, uintptr(target), uintptr(offset), uintptr(len(buf)), cmem.Addr(buf))
	runtime.KeepAlive(buf)
	return err
}

// BindBufferBase binds b to the indexed binding point index of target.
func (f *Functions) BindBufferBase(target Enum, index int, b Buffer) error {
	return f.exec(schema.BindBufferBase, uintptr(target), uintptr(index), uintptr(b.V))
}

// MapBufferRange maps part of the bound buffer. The returned slice aliases
// native memory and is valid until UnmapBuffer.
func (f *Functions) MapBufferRange(target Enum, offset, length int, access Enum) ([]byte, error) {
	p, err := f.call(schema.MapBufferRange, uintptr(target), uintptr(offset), uintptr(length), uintptr(access))
	return cmem.Bytes(p, length), err
}

// UnmapBuffer unmaps the bound buffer. It reports false if the contents
// were corrupted while mapped.
func (f *Functions) UnmapBuffer(target Enum) (bool, error) {
	v, err := f.call(schema.UnmapBuffer, uintptr(target))
	return v&0xff != FALSE, err
}

// Vertex arrays.

// GenVertexArrays returns n new vertex array names.
func (f *Functions) GenVertexArrays(n int) ([]VertexArray, error) {
	return gen[VertexArray](f, schema.GenVertexArrays, n)
}

// BindVertexArray binds a.
func (f *Functions) BindVertexArray(a VertexArray) error {
	return f.exec(schema.BindVertexArray, uintptr(a.V))
}

// DeleteVertexArrays deletes vertex arrays.
func (f *Functions) DeleteVertexArrays(arrays ...VertexArray) error {
	return del(f, schema.DeleteVertexArrays, arrays)
}

// EnableVertexAttribArray enables attribute a of the bound vertex array.
func (f *Functions) EnableVertexAttribArray(a Attrib) error {
	return f.exec(schema.EnableVertexAttribArray, uintptr(a))
}

// VertexAttribPointer describes attribute a in the bound array buffer,
// offset bytes from its start.
func (f *Functions) VertexAttribPointer(a Attrib, size int, ty Enum, normalized bool, stride, offset int) error {
	return f.exec(schema.VertexAttribPointer, uintptr(a), uintptr(size), uintptr(ty), b2u(normalized), uintptr(stride), uintptr(offset))
}

// VertexAttribDivisor makes attribute a advance once per divisor instances.
func (f *Functions) VertexAttribDivisor(a Attrib, divisor int) error {
	return f.exec(schema.VertexAttribDivisor, uintptr(a), uintptr(divisor))
}

// Framebuffers.

// GenFramebuffers returns n new framebuffer names.
func (f *Functions) GenFramebuffers(n int) ([]Framebuffer, error) {
	return gen[Framebuffer](f, schema.GenFramebuffers, n)
}

// DeleteFramebuffers deletes framebuffers.
func (f *Functions) DeleteFramebuffers(fbs ...Framebuffer) error {
	return del(f, schema.DeleteFramebuffers, fbs)
}

// BindFramebuffer binds fb to target. The zero Framebuffer is the default one.
func (f *Functions) BindFramebuffer(target Enum, fb Framebuffer) error {
	return f.exec(schema.BindFramebuffer, uintptr(target), uintptr(fb.V))
}

// FramebufferTexture2D attaches level of t to the bound framebuffer.
func (f *Functions) FramebufferTexture2D(target, attachment, texTarget Enum, t Texture, level int) error {
	return f.exec(schema.FramebufferTexture2D, uintptr(target), uintptr(attachment), uintptr(texTarget), uintptr(t.V), uintptr(level))
}

// CheckFramebufferStatus returns FRAMEBUFFER_COMPLETE or the reason the
// framebuffer bound to target is incomplete.
func (f *Functions) CheckFramebufferStatus(target Enum) (Enum, error) {
	v, err := f.call(schema.CheckFramebufferStatus, uintptr(target))
	return Enum(uint32(v)), err
}

// BlitFramebuffer copies a rectangle from the read to the draw framebuffer.
func (f *Functions) BlitFramebuffer(sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1 int, mask, filter Enum) error {
	return f.exec(schema.BlitFramebuffer,
		uintptr(sx0), uintptr(sy0), uintptr(sx1), uintptr(sy1),
		uintptr(dx0), uintptr(dy0), uintptr(dx1), uintptr(dy1),
		uintptr(mask), uintptr(filter))
}

// InvalidateFramebuffer hints that the contents of attachments are no
// longer needed.
func (f *Functions) InvalidateFramebuffer(target Enum, attachments ...Enum) error {
	buf := cmem.Alloc[Enum](len(attachments))
	copy(buf, attachments)
	err := f.exec(schema.InvalidateFramebuffer, uintptr(target), uintptr(len(buf)), cmem.Addr(buf))
	runtime.KeepAlive(buf)
	return err
}

// Shaders and programs.

// CreateShader creates a shader object of type ty.
func (f *Functions) CreateShader(ty Enum) (Shader, error) {
	v, err := f.call(schema.CreateShader, uintptr(ty))
	return Shader{V: uint32(v)}, err
}

// ShaderSource replaces the source of s.
func (f *Functions) ShaderSource(s Shader, src string) error {
	text := cmem.CString(src)
	strs := cmem.Alloc[uintptr](1)
	lens := cmem.Alloc[int32](1)
	strs[0] = cmem.Addr(text)
	lens[0] = int32(len(src)) //nolint:gosec // shader sources are far below 2 GiB
	err := f.exec(schema.ShaderSource, uintptr(s.V), 1, cmem.Addr(strs), cmem.Addr(lens))
	runtime.KeepAlive(text)
	runtime.KeepAlive(strs)
	runtime.KeepAlive(lens)
	return err
}

// CompileShader compiles the source of s.
func (f *Functions) CompileShader(s Shader) error {
	return f.exec(schema.CompileShader, uintptr(s.V))
}

// DeleteShader deletes s.
func (f *Functions) DeleteShader(s Shader) error {
	return f.exec(schema.DeleteShader, uintptr(s.V))
}

// CreateProgram creates an empty program object.
func (f *Functions) CreateProgram() (Program, error) {
	v, err := f.call(schema.CreateProgram)
	return Program{V: uint32(v)}, err
}

// AttachShader attaches s to p.
func (f *Functions) AttachShader(p Program, s Shader) error {
	return f.exec(schema.AttachShader, uintptr(p.V), uintptr(s.V))
}

// LinkProgram links the shaders attached to p.
func (f *Functions) LinkProgram(p Program) error {
	return f.exec(schema.LinkProgram, uintptr(p.V))
}

// UseProgram makes p part of the current rendering state.
func (f *Functions) UseProgram(p Program) error {
	return f.exec(schema.UseProgram, uintptr(p.V))
}

// DeleteProgram deletes p.
func (f *Functions) DeleteProgram(p Program) error {
	return f.exec(schema.DeleteProgram, uintptr(p.V))
}

// GetUniformLocation returns the location of a uniform, or a Uniform with
// V == -1 if the program has no active uniform of that name.
func (f *Functions) GetUniformLocation(p Program, name string) (Uniform, error) {
	cname := cmem.CString(name)
	v, err := f.call(schema.GetUniformLocation, uintptr(p.V), cmem.Addr(cname))
	runtime.KeepAlive(cname)
	return Uniform{V: int32(v)}, err //nolint:gosec // GLint return in the low word
}

// Uniform1i sets an int or sampler uniform of the current program.
func (f *Functions) Uniform1i(u Uniform, v int) error {
	return f.exec(schema.Uniform1i, uintptr(u.V), uintptr(v))
}

// Queries.

// GenQueries returns n new query names.
func (f *Functions) GenQueries(n int) ([]Query, error) {
	return gen[Query](f, schema.GenQueries, n)
}

// DeleteQueries deletes queries.
func (f *Functions) DeleteQueries(queries ...Query) error {
	return del(f, schema.DeleteQueries, queries)
}

// BeginQuery starts q on target.
func (f *Functions) BeginQuery(target Enum, q Query) error {
	return f.exec(schema.BeginQuery, uintptr(target), uintptr(q.V))
}

// EndQuery ends the active query on target.
func (f *Functions) EndQuery(target Enum) error {
	return f.exec(schema.EndQuery, uintptr(target))
}

// GetQueryObjectuiv returns the pname value of q, such as QUERY_RESULT.
func (f *Functions) GetQueryObjectuiv(q Query, pname Enum) (uint32, error) {
	out := cmem.Alloc[uint32](1)
	err := f.exec(schema.GetQueryObjectuiv, uintptr(q.V), uintptr(pname), cmem.Addr(out))
	runtime.KeepAlive(out)
	return out[0], err
}

// heapBytes returns a heap copy of data, or nil if it is empty.
func heapBytes(data []byte) []byte {
	if len(data) == 0 {
		return nil
	}
	buf := cmem.Alloc[byte](len(data))
	copy(buf, data)
	return buf
}
