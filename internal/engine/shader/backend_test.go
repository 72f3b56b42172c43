package shader

import (
	"fmt"
	"strings"
)

// fakeBackend records calls and lets tests script compile/link/validate
// results. Sources containing "syntax error" fail to compile.
type fakeBackend struct {
	next uint32

	shaders  map[uint32]Stage
	sources  map[uint32]string
	programs map[uint32][]uint32

	compileLog  string
	failLink    bool
	linkLog     string
	failValid   bool
	validateLog string

	// Mimics core profile drivers that refuse to validate without a bound
	// vertex array.
	validateNeedsVAO bool
	vertexArray      uint32

	uniforms map[string]int32

	calls []string
	bound uint32

	deletedShaders  []uint32
	deletedPrograms []uint32
	locationQueries map[string]int
	writes          []uniformWrite
}

type uniformWrite struct {
	loc   int32
	value any
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		next:            1,
		shaders:         make(map[uint32]Stage),
		sources:         make(map[uint32]string),
		programs:        make(map[uint32][]uint32),
		uniforms:        make(map[string]int32),
		locationQueries: make(map[string]int),
	}
}

func (f *fakeBackend) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeBackend) CreateShader(stage Stage) uint32 {
	h := f.next
	f.next++
	f.shaders[h] = stage
	f.record("CreateShader(%s)=%d", stage, h)
	return h
}

func (f *fakeBackend) ShaderSource(shader uint32, source string) {
	f.sources[shader] = source
}

func (f *fakeBackend) CompileShader(shader uint32) {
	f.record("CompileShader(%d)", shader)
}

func (f *fakeBackend) ShaderCompileStatus(shader uint32) bool {
	return !strings.Contains(f.sources[shader], "syntax error")
}

func (f *fakeBackend) ShaderInfoLog(uint32) string {
	return f.compileLog
}

func (f *fakeBackend) DeleteShader(shader uint32) {
	f.deletedShaders = append(f.deletedShaders, shader)
	f.record("DeleteShader(%d)", shader)
}

func (f *fakeBackend) CreateProgram() uint32 {
	h := f.next
	f.next++
	f.programs[h] = nil
	f.record("CreateProgram()=%d", h)
	return h
}

func (f *fakeBackend) AttachShader(program, shader uint32) {
	f.programs[program] = append(f.programs[program], shader)
	f.record("AttachShader(%d,%d)", program, shader)
}

func (f *fakeBackend) LinkProgram(program uint32) {
	f.record("LinkProgram(%d)", program)
}

func (f *fakeBackend) ProgramLinkStatus(uint32) bool {
	return !f.failLink
}

func (f *fakeBackend) ValidateProgram(program uint32) {
	f.record("ValidateProgram(%d)", program)
}

func (f *fakeBackend) ProgramValidateStatus(uint32) bool {
	if f.validateNeedsVAO && f.vertexArray == 0 {
		f.validateLog = "Validation Failed: No vertex array object bound."
		return false
	}
	return !f.failValid
}

func (f *fakeBackend) ProgramInfoLog(uint32) string {
	if f.failLink {
		return f.linkLog
	}
	return f.validateLog
}

func (f *fakeBackend) DeleteProgram(program uint32) {
	f.deletedPrograms = append(f.deletedPrograms, program)
	f.record("DeleteProgram(%d)", program)
}

func (f *fakeBackend) UseProgram(program uint32) {
	f.bound = program
	f.record("UseProgram(%d)", program)
}

func (f *fakeBackend) UniformLocation(_ uint32, name string) int32 {
	f.locationQueries[name]++
	if loc, ok := f.uniforms[name]; ok {
		return loc
	}
	return -1
}

func (f *fakeBackend) Uniform1i(loc int32, v int32) {
	f.writes = append(f.writes, uniformWrite{loc, v})
}

func (f *fakeBackend) Uniform1f(loc int32, v float32) {
	f.writes = append(f.writes, uniformWrite{loc, v})
}

func (f *fakeBackend) Uniform3f(loc int32, x, y, z float32) {
	f.writes = append(f.writes, uniformWrite{loc, [3]float32{x, y, z}})
}

func (f *fakeBackend) UniformMatrix4fv(loc int32, m *[16]float32) {
	f.writes = append(f.writes, uniformWrite{loc, *m})
}
