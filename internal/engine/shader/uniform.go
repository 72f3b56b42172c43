package shader

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/learngl/pkg/math"
)

// MissingUniform selects what a setter does when the program has no
// active uniform with the given name.
type MissingUniform int

const (
	// MissingUniformIgnore forwards the write to location -1, which GL drops.
	MissingUniformIgnore MissingUniform = iota
	// MissingUniformWarn behaves like Ignore and logs once per name.
	MissingUniformWarn
	// MissingUniformError makes the setter return a *UniformError.
	MissingUniformError
)

func (m MissingUniform) String() string {
	switch m {
	case MissingUniformIgnore:
		return "ignore"
	case MissingUniformWarn:
		return "warn"
	case MissingUniformError:
		return "error"
	default:
		return fmt.Sprintf("MissingUniform(%d)", int(m))
	}
}

// ParseMissingUniform converts a config value to a MissingUniform.
// The empty string selects MissingUniformIgnore.
func ParseMissingUniform(s string) (MissingUniform, error) {
	switch s {
	case "", "ignore":
		return MissingUniformIgnore, nil
	case "warn":
		return MissingUniformWarn, nil
	case "error":
		return MissingUniformError, nil
	default:
		return 0, fmt.Errorf("unknown missing uniform policy %q", s)
	}
}

// Location resolves name once per program lifetime. Negative results are
// cached as well. A closed program resolves every name to -1 without asking
// the backend.
func (p *Program) Location(name string) int32 {
	if p.handle == 0 {
		return -1
	}
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}

	loc := p.backend.UniformLocation(p.handle, name)
	p.uniforms[name] = loc
	if loc < 0 && p.missing == MissingUniformWarn {
		p.log.Warn("uniform not found",
			zap.String("name", name),
			zap.Uint32("program", p.handle),
		)
	}
	return loc
}

// resolve returns the location to write to, or an error under
// MissingUniformError or once the program is closed.
func (p *Program) resolve(name string) (int32, error) {
	if p.handle == 0 {
		return -1, fmt.Errorf("uniform %q: %w", name, ErrClosedProgram)
	}
	loc := p.Location(name)
	if loc < 0 && p.missing == MissingUniformError {
		return loc, &UniformError{Name: name, Program: p.handle}
	}
	return loc, nil
}

// SetInt writes an int (or sampler unit) uniform on the active program.
func (p *Program) SetInt(name string, v int32) error {
	loc, err := p.resolve(name)
	if err != nil {
		return err
	}
	p.backend.Uniform1i(loc, v)
	return nil
}

// SetFloat writes a float uniform on the active program.
func (p *Program) SetFloat(name string, v float32) error {
	loc, err := p.resolve(name)
	if err != nil {
		return err
	}
	p.backend.Uniform1f(loc, v)
	return nil
}

// SetVec3 writes a vec3 uniform on the active program.
func (p *Program) SetVec3(name string, v math.Vec3) error {
	loc, err := p.resolve(name)
	if err != nil {
		return err
	}
	p.backend.Uniform3f(loc, v.X, v.Y, v.Z)
	return nil
}

// SetMat4 writes a column-major mat4 uniform on the active program.
func (p *Program) SetMat4(name string, m math.Mat4) error {
	loc, err := p.resolve(name)
	if err != nil {
		return err
	}
	arr := [16]float32(m)
	p.backend.UniformMatrix4fv(loc, &arr)
	return nil
}
