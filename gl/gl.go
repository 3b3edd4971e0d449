// Package gl is the typed face of the dispatch layer: one method per
// command of the built-in catalog.
//
// Methods convert Go arguments to machine words and nothing more. They do
// not validate, retry or cache. Every method reports a
// *gldispatch.CommandUnavailableError when its command is not bound in the
// current context, and a *gldispatch.NativeFault when validation is on and
// the call left an error state; values returned alongside a fault are
// still the call's results.
package gl

import (
	"math"
	"runtime"

	"github.com/gogpu/gldispatch"
	"github.com/gogpu/gldispatch/internal/cmem"
	"github.com/gogpu/gldispatch/schema"
)

// Caller dispatches catalog commands. *gldispatch.Context implements it.
type Caller interface {
	Call(id schema.CommandID, args ...uintptr) (gldispatch.Result, error)
}

// Functions exposes the catalog commands through c.
//
// Like the Context behind it, Functions belongs to one OS thread.
type Functions struct {
	c Caller
}

// New returns the typed functions over c.
func New(c Caller) *Functions {
	return &Functions{c: c}
}

func (f *Functions) call(id schema.CommandID, args ...uintptr) (uintptr, error) {
	res, err := f.c.Call(id, args...)
	if err != nil {
		return 0, err
	}
	if res.Fault != nil {
		return res.Value, res.Fault
	}
	return res.Value, nil
}

func (f *Functions) exec(id schema.CommandID, args ...uintptr) error {
	_, err := f.call(id, args...)
	return err
}

func b2u(b bool) uintptr {
	if b {
		return TRUE
	}
	return FALSE
}

func f2u(v float32) uintptr { return uintptr(math.Float32bits(v)) }

// gen fills n new object names through a glGen* command.
func gen[T ~struct{ V uint32 }](f *Functions, id schema.CommandID, n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	names := cmem.Alloc[T](n)
	err := f.exec(id, uintptr(n), cmem.Addr(names))
	runtime.KeepAlive(names)
	return names, err
}

// del releases object names through a glDelete* command.
func del[T ~struct{ V uint32 }](f *Functions, id schema.CommandID, objs []T) error {
	if len(objs) == 0 {
		return nil
	}
	names := cmem.Alloc[T](len(objs))
	copy(names, objs)
	err := f.exec(id, uintptr(len(names)), cmem.Addr(names))
	runtime.KeepAlive(names)
	return err
}

// Clear clears the buffers selected by mask.
func (f *Functions) Clear(mask Enum) error {
	return f.exec(schema.Clear, uintptr(mask))
}

// ClearColor sets the color Clear writes. The components travel to the
// driver as IEEE-754 bit patterns.
func (f *Functions) ClearColor(red, green, blue, alpha float32) error {
	return f.exec(schema.ClearColor, f2u(red), f2u(green), f2u(blue), f2u(alpha))
}

// ClearDepthf sets the depth value Clear writes, in [0, 1].
func (f *Functions) ClearDepthf(d float32) error {
	return f.exec(schema.ClearDepthf, f2u(d))
}

// Viewport sets the mapping from normalized device to window coordinates.
func (f *Functions) Viewport(x, y, width, height int) error {
	return f.exec(schema.Viewport, uintptr(x), uintptr(y), uintptr(width), uintptr(height))
}

// Scissor sets the scissor box in window coordinates.
func (f *Functions) Scissor(x, y, width, height int) error {
	return f.exec(schema.Scissor, uintptr(x), uintptr(y), uintptr(width), uintptr(height))
}

// Enable turns on a server-side capability such as BLEND.
func (f *Functions) Enable(cap Enum) error {
	return f.exec(schema.Enable, uintptr(cap))
}

// Disable turns off a server-side capability.
func (f *Functions) Disable(cap Enum) error {
	return f.exec(schema.Disable, uintptr(cap))
}

// BlendFunc sets the source and destination blend factors.
func (f *Functions) BlendFunc(sfactor, dfactor Enum) error {
	return f.exec(schema.BlendFunc, uintptr(sfactor), uintptr(dfactor))
}

// BlendFuncSeparate sets the blend factors separately for color and alpha.
func (f *Functions) BlendFuncSeparate(srcRGB, dstRGB, srcA, dstA Enum) error {
	return f.exec(schema.BlendFuncSeparate, uintptr(srcRGB), uintptr(dstRGB), uintptr(srcA), uintptr(dstA))
}

// BlendEquation sets how source and destination are combined.
func (f *Functions) BlendEquation(mode Enum) error {
	return f.exec(schema.BlendEquation, uintptr(mode))
}

// DepthFunc sets the depth comparison.
func (f *Functions) DepthFunc(fn Enum) error {
	return f.exec(schema.DepthFunc, uintptr(fn))
}

// DepthMask enables or disables writes to the depth buffer.
func (f *Functions) DepthMask(mask bool) error {
	return f.exec(schema.DepthMask, b2u(mask))
}

// GetError returns the oldest pending error code.
//
// Calling it drains what the validator would otherwise report.
func (f *Functions) GetError() (Enum, error) {
	v, err := f.call(schema.GetError)
	return Enum(uint32(v)), err
}

// GetIntegerv writes the value(s) of pname into dst.
func (f *Functions) GetIntegerv(pname Enum, dst []int32) error {
	if len(dst) == 0 {
		return nil
	}
	buf := cmem.Alloc[int32](len(dst))
	err := f.exec(schema.GetIntegerv, uintptr(pname), cmem.Addr(buf))
	runtime.KeepAlive(buf)
	copy(dst, buf)
	return err
}

// GetInteger returns the single integer value of pname.
func (f *Functions) GetInteger(pname Enum) (int, error) {
	var v [1]int32
	err := f.GetIntegerv(pname, v[:])
	return int(v[0]), err
}

// GetString returns a connection string such as VENDOR or VERSION, or ""
// if the driver has none.
func (f *Functions) GetString(pname Enum) (string, error) {
	p, err := f.call(schema.GetString, uintptr(pname))
	return cmem.GoString(p), err
}

// GetStringi returns the index-th string of pname, e.g. one extension name.
func (f *Functions) GetStringi(pname Enum, index int) (string, error) {
	p, err := f.call(schema.GetStringi, uintptr(pname), uintptr(index))
	return cmem.GoString(p), err
}

// Finish blocks until all previous commands have completed.
func (f *Functions) Finish() error { return f.exec(schema.Finish) }

// Flush forces previous commands to start executing.
func (f *Functions) Flush() error { return f.exec(schema.Flush) }

// DrawArrays draws count vertices starting at first.
func (f *Functions) DrawArrays(mode Enum, first, count int) error {
	return f.exec(schema.DrawArrays, uintptr(mode), uintptr(first), uintptr(count))
}

// DrawElements draws from the bound element array buffer starting at byte
// offset.
func (f *Functions) DrawElements(mode Enum, count int, ty Enum, offset int) error {
	return f.exec(schema.DrawElements, uintptr(mode), uintptr(count), uintptr(ty), uintptr(offset))
}

// DrawArraysInstanced draws instances copies of the DrawArrays range.
func (f *Functions) DrawArraysInstanced(mode Enum, first, count, instances int) error {
	return f.exec(schema.DrawArraysInstanced, uintptr(mode), uintptr(first), uintptr(count), uintptr(instances))
}

// DrawBuffers selects the color attachments fragment outputs are written
// to, output i going to bufs[i]. NONE discards an output.
func (f *Functions) DrawBuffers(bufs ...Enum) error {
	buf := cmem.Alloc[Enum](len(bufs))
	copy(buf, bufs)
	err := f.exec(schema.DrawBuffers, uintptr(len(buf)), cmem.Addr(buf))
	runtime.KeepAlive(buf)
	return err
}

// DispatchCompute launches x*y*z work groups of the current compute program.
func (f *Functions) DispatchCompute(x, y, z int) error {
	return f.exec(schema.DispatchCompute, uintptr(x), uintptr(y), uintptr(z))
}

// MemoryBarrier orders memory accesses of earlier shader invocations before
// later commands of the kinds in barriers.
func (f *Functions) MemoryBarrier(barriers Enum) error {
	return f.exec(schema.MemoryBarrier, uintptr(barriers))
}

// PushDebugGroup opens a named group in the debug output stream.
func (f *Functions) PushDebugGroup(source Enum, id uint32, message string) error {
	msg := cmem.CString(message)
	err := f.exec(schema.PushDebugGroup, uintptr(source), uintptr(id), uintptr(len(message)), cmem.Addr(msg))
	runtime.KeepAlive(msg)
	return err
}

// PopDebugGroup closes the group opened by the last PushDebugGroup.
func (f *Functions) PopDebugGroup() error { return f.exec(schema.PopDebugGroup) }
