package shader

import (
	"fmt"
	"io/fs"

	"go.uber.org/zap"
)

// Program owns a linked and validated shader program.
type Program struct {
	_ noCopy

	backend  Backend
	handle   uint32
	uniforms map[string]int32
	missing  MissingUniform
	log      *zap.Logger
}

// Option configures a Program.
type Option func(*Program)

// WithMissingUniform sets how uniform writes to unknown names are handled.
func WithMissingUniform(p MissingUniform) Option {
	return func(prog *Program) {
		prog.missing = p
	}
}

// WithLogger sets the logger used by MissingUniformWarn.
func WithLogger(l *zap.Logger) Option {
	return func(prog *Program) {
		if l != nil {
			prog.log = l
		}
	}
}

// NewProgram attaches shaders in order, links and validates the program.
// On failure the native program is deleted and the error carries the
// linker log. The shaders stay owned by the caller and may be closed as soon
// as NewProgram returns.
//
// Validation checks the program against the current GL state, so the vertex
// array it will draw with should be bound first. Core profile drivers on
// macOS fail validation when no vertex array is bound.
func NewProgram(b Backend, shaders []*Shader, opts ...Option) (*Program, error) {
	for i, s := range shaders {
		if s.Handle() == 0 {
			return nil, fmt.Errorf("shader %d: %w", i, ErrEmptyShader)
		}
	}

	p := &Program{
		backend:  b,
		uniforms: make(map[string]int32),
		missing:  MissingUniformIgnore,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}

	handle := b.CreateProgram()
	for _, s := range shaders {
		b.AttachShader(handle, s.handle)
	}

	b.LinkProgram(handle)
	if !b.ProgramLinkStatus(handle) {
		log := b.ProgramInfoLog(handle)
		b.DeleteProgram(handle)
		return nil, &LinkError{Log: log}
	}

	b.ValidateProgram(handle)
	if !b.ProgramValidateStatus(handle) {
		log := b.ProgramInfoLog(handle)
		b.DeleteProgram(handle)
		return nil, &ValidateError{Log: log}
	}

	p.handle = handle
	return p, nil
}

// CompileProgram compiles a vertex and a fragment stage and links them.
// The intermediate shader objects are released before returning.
func CompileProgram(b Backend, vertex, fragment Source, opts ...Option) (*Program, error) {
	vs, err := New(b, Vertex, vertex)
	if err != nil {
		return nil, err
	}
	defer vs.Close()

	frag, err := New(b, Fragment, fragment)
	if err != nil {
		return nil, err
	}
	defer frag.Close()

	return NewProgram(b, []*Shader{vs, frag}, opts...)
}

// LoadProgram is CompileProgram with both sources read from fsys.
func LoadProgram(b Backend, fsys fs.FS, vertexName, fragmentName string, opts ...Option) (*Program, error) {
	return CompileProgram(b, FromFS(fsys, vertexName), FromFS(fsys, fragmentName), opts...)
}

// Handle returns the native program object, or 0 once closed or moved.
func (p *Program) Handle() uint32 {
	if p == nil {
		return 0
	}
	return p.handle
}

// Use makes this the active program for subsequent draws and uniform writes.
func (p *Program) Use() {
	p.backend.UseProgram(p.handle)
}

// Unuse clears the active program.
func (p *Program) Unuse() {
	p.backend.UseProgram(0)
}

// Move transfers the program and its uniform cache to a new Program.
// Moving a nil Program returns nil.
func (p *Program) Move() *Program {
	if p == nil {
		return nil
	}
	moved := &Program{
		backend:  p.backend,
		handle:   p.handle,
		uniforms: p.uniforms,
		missing:  p.missing,
		log:      p.log,
	}
	p.handle = 0
	p.uniforms = make(map[string]int32)
	return moved
}

// Close unbinds and deletes the program. Safe to call more than once.
func (p *Program) Close() {
	if p == nil || p.handle == 0 {
		return
	}
	p.Unuse()
	p.backend.DeleteProgram(p.handle)
	p.handle = 0
	clear(p.uniforms)
}
