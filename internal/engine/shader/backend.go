package shader

// Backend is the native graphics API the shader wrapper drives.
// All methods must be called from the thread that owns the GL context.
type Backend interface {
	CreateShader(stage Stage) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompileStatus(shader uint32) bool
	// ShaderInfoLog returns the compiler log, sized by the compiler's own
	// length query. It may be empty.
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinkStatus(program uint32) bool
	ValidateProgram(program uint32)
	ProgramValidateStatus(program uint32) bool
	ProgramInfoLog(program uint32) string
	DeleteProgram(program uint32)

	// UseProgram binds program for subsequent draws. Zero unbinds.
	UseProgram(program uint32)

	// UniformLocation returns -1 when the program has no active uniform
	// with that name.
	UniformLocation(program uint32, name string) int32
	Uniform1i(location int32, v int32)
	Uniform1f(location int32, v float32)
	Uniform3f(location int32, x, y, z float32)
	UniformMatrix4fv(location int32, m *[16]float32)
}
