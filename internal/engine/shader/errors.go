package shader

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound is returned when a shader source file cannot be opened.
	ErrFileNotFound = errors.New("shader source not found")

	// ErrEmptyShader is returned when a nil, closed or moved-from shader
	// is passed to NewProgram.
	ErrEmptyShader = errors.New("shader owns no handle")

	// ErrClosedProgram is returned by uniform setters on a closed or
	// moved-from program.
	ErrClosedProgram = errors.New("program owns no handle")

	// ErrUniformNotFound is matched by UniformError.
	ErrUniformNotFound = errors.New("uniform not found")
)

// CompileError reports a shader stage that failed to compile.
// Log is the compiler output verbatim and may be empty.
type CompileError struct {
	Stage  Stage
	Origin string
	Log    string
}

func (e *CompileError) Error() string {
	if e.Origin != "" {
		return fmt.Sprintf("%s shader %s failed to compile: %s", e.Stage, e.Origin, e.Log)
	}
	return fmt.Sprintf("%s shader failed to compile: %s", e.Stage, e.Log)
}

// LinkError reports a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "link: " + e.Log
}

// ValidateError reports a linked program that failed validation.
type ValidateError struct {
	Log string
}

func (e *ValidateError) Error() string {
	return "validate: " + e.Log
}

// UniformError is returned by uniform setters under MissingUniformError.
type UniformError struct {
	Name    string
	Program uint32
}

func (e *UniformError) Error() string {
	return fmt.Sprintf("uniform %q not found in program %d", e.Name, e.Program)
}

// Is lets errors.Is(err, ErrUniformNotFound) match.
func (e *UniformError) Is(target error) bool {
	return target == ErrUniformNotFound
}
