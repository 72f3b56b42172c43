// Package shadertest provides a shader.Backend that needs no GL context, for
// tests of code built on top of shader.Program.
package shadertest

import "github.com/Faultbox/learngl/internal/engine/shader"

// Write is one uniform write seen by the backend.
type Write struct {
	Location int32
	Value    any
}

// Backend compiles, links and validates everything it is given. Uniforms
// lists the active uniforms; any other name resolves to -1.
type Backend struct {
	Uniforms map[string]int32
	Writes   []Write

	next uint32
}

var _ shader.Backend = (*Backend)(nil)

// New returns a Backend with the given active uniforms.
func New(uniforms map[string]int32) *Backend {
	if uniforms == nil {
		uniforms = make(map[string]int32)
	}
	return &Backend{Uniforms: uniforms, next: 1}
}

// Program links an empty program on b.
func (b *Backend) Program(opts ...shader.Option) (*shader.Program, error) {
	return shader.NewProgram(b, nil, opts...)
}

func (b *Backend) handle() uint32 {
	h := b.next
	b.next++
	return h
}

func (b *Backend) CreateShader(shader.Stage) uint32 { return b.handle() }
func (b *Backend) ShaderSource(uint32, string) {}
func (b *Backend) CompileShader(uint32) {}
func (b *Backend) ShaderCompileStatus(uint32) bool { return true }
func (b *Backend) ShaderInfoLog(uint32) string { return "" }
func (b *Backend) DeleteShader(uint32) {}

func (b *Backend) CreateProgram() uint32 { return b.handle() }
func (b *Backend) AttachShader(uint32, uint32) {}
func (b *Backend) LinkProgram(uint32) {}
func (b *Backend) ProgramLinkStatus(uint32) bool { return true }
func (b *Backend) ValidateProgram(uint32) {}
func (b *Backend) ProgramValidateStatus(uint32) bool { return true }
func (b *Backend) ProgramInfoLog(uint32) string { return "" }
func (b *Backend) DeleteProgram(uint32) {}
func (b *Backend) UseProgram(uint32) {}

func (b *Backend) UniformLocation(_ uint32, name string) int32 {
	if loc, ok := b.Uniforms[name]; ok {
		return loc
	}
	return -1
}

func (b *Backend) Uniform1i(loc int32, v int32) {
	b.Writes = append(b.Writes, Write{loc, v})
}

func (b *Backend) Uniform1f(loc int32, v float32) {
	b.Writes = append(b.Writes, Write{loc, v})
}

func (b *Backend) Uniform3f(loc int32, x, y, z float32) {
	b.Writes = append(b.Writes, Write{loc, [3]float32{x, y, z}})
}

func (b *Backend) UniformMatrix4fv(loc int32, m *[16]float32) {
	b.Writes = append(b.Writes, Write{loc, *m})
}
