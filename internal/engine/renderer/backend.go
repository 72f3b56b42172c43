package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/learngl/internal/engine/shader"
)

// GL implements shader.Backend on the current OpenGL context.
type GL struct{}

var _ shader.Backend = GL{}

func stageEnum(stage shader.Stage) uint32 {
	switch stage {
	case shader.Fragment:
		return gl.FRAGMENT_SHADER
	default:
		return gl.VERTEX_SHADER
	}
}

func (GL) CreateShader(stage shader.Stage) uint32 {
	return gl.CreateShader(stageEnum(stage))
}

func (GL) ShaderSource(shader uint32, source string) {
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
}

func (GL) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (GL) ShaderCompileStatus(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (GL) ShaderInfoLog(shader uint32) string {
	var logLen int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
	if logLen <= 0 {
		return ""
	}
	log := make([]byte, logLen)
	var written int32
	gl.GetShaderInfoLog(shader, logLen, &written, &log[0])
	return string(log[:written])
}

func (GL) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (GL) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (GL) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (GL) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (GL) ProgramLinkStatus(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (GL) ValidateProgram(program uint32) {
	gl.ValidateProgram(program)
}

func (GL) ProgramValidateStatus(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.VALIDATE_STATUS, &status)
	return status != gl.FALSE
}

func (GL) ProgramInfoLog(program uint32) string {
	var logLen int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
	if logLen <= 0 {
		return ""
	}
	log := make([]byte, logLen)
	var written int32
	gl.GetProgramInfoLog(program, logLen, &written, &log[0])
	return string(log[:written])
}

func (GL) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (GL) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (GL) UniformLocation(program uint32, name string) int32 {
	cname, free := gl.Strs(name + "\x00")
	defer free()
	return gl.GetUniformLocation(program, *cname)
}

func (GL) Uniform1i(location int32, v int32) {
	gl.Uniform1i(location, v)
}

func (GL) Uniform1f(location int32, v float32) {
	gl.Uniform1f(location, v)
}

func (GL) Uniform3f(location int32, x, y, z float32) {
	gl.Uniform3f(location, x, y, z)
}

func (GL) UniformMatrix4fv(location int32, m *[16]float32) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}
