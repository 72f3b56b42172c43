// Package shader wraps OpenGL shader objects and programs with single-owner
// handles, compile/link diagnostics and a per-program uniform location cache.
//
// Handles are released deterministically through Close. Move transfers
// ownership and leaves the source empty, so closing a moved-from value is a
// no-op. Nothing here is safe for concurrent use; the GL context is bound to
// one thread.
package shader

import "fmt"

// noCopy trips go vet's copylocks check when a handle owner is copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Shader owns one compiled shader stage.
type Shader struct {
	_ noCopy

	backend Backend
	handle  uint32
	stage   Stage
}

// New compiles src as the given stage.
// A returned Shader always holds a successfully compiled object; on error
// nothing native is left allocated.
func New(b Backend, stage Stage, src Source) (*Shader, error) {
	text, err := src.text()
	if err != nil {
		return nil, fmt.Errorf("%s shader: %w", stage, err)
	}

	handle := b.CreateShader(stage)
	b.ShaderSource(handle, text)
	b.CompileShader(handle)

	if !b.ShaderCompileStatus(handle) {
		log := b.ShaderInfoLog(handle)
		b.DeleteShader(handle)
		return nil, &CompileError{Stage: stage, Origin: src.Origin(), Log: log}
	}

	return &Shader{backend: b, handle: handle, stage: stage}, nil
}

// Handle returns the native shader object, or 0 once closed or moved.
func (s *Shader) Handle() uint32 {
	if s == nil {
		return 0
	}
	return s.handle
}

// Stage returns the pipeline stage this shader was compiled for.
// s must not be nil.
func (s *Shader) Stage() Stage {
	return s.stage
}

// Move transfers the native object to a new Shader. The receiver is left
// empty and its Close becomes a no-op. Moving a nil Shader returns nil.
func (s *Shader) Move() *Shader {
	if s == nil {
		return nil
	}
	moved := &Shader{backend: s.backend, handle: s.handle, stage: s.stage}
	s.handle = 0
	return moved
}

// Close deletes the native shader object. Safe to call more than once.
func (s *Shader) Close() {
	if s == nil || s.handle == 0 {
		return
	}
	s.backend.DeleteShader(s.handle)
	s.handle = 0
}
