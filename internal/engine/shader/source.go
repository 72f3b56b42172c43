package shader

import (
	"fmt"
	"io/fs"
	"os"
)

// Stage identifies a shader pipeline stage.
type Stage int

const (
	Vertex Stage = iota
	Fragment
)

func (s Stage) String() string {
	switch s {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// Source supplies GLSL text for a shader stage.
type Source struct {
	origin string
	read   func() (string, error)
}

// FromString uses src as the shader source.
func FromString(src string) Source {
	return Source{read: func() (string, error) { return src, nil }}
}

// FromFile reads the shader source from path when the shader is built.
func FromFile(path string) Source {
	return Source{
		origin: path,
		read: func() (string, error) {
			data, err := os.ReadFile(path)
			if err != nil {
				return "", fmt.Errorf("%w: %w", ErrFileNotFound, err)
			}
			return string(data), nil
		},
	}
}

// FromFS reads the shader source from name in fsys, typically an embed.FS.
func FromFS(fsys fs.FS, name string) Source {
	return Source{
		origin: name,
		read: func() (string, error) {
			data, err := fs.ReadFile(fsys, name)
			if err != nil {
				return "", fmt.Errorf("%w: %w", ErrFileNotFound, err)
			}
			return string(data), nil
		},
	}
}

// Origin returns the file name the source comes from, or "" for inline text.
func (s Source) Origin() string {
	return s.origin
}

func (s Source) text() (string, error) {
	if s.read == nil {
		return "", nil
	}
	return s.read()
}
