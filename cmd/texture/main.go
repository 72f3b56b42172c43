// Command texture draws an indexed quad textured with wall.jpeg and tinted
// by per-vertex colors. W toggles wireframe.
package main

import (
	"github.com/Faultbox/learngl/internal/engine/renderer"
	"github.com/Faultbox/learngl/internal/engine/shader"
	"github.com/Faultbox/learngl/internal/tutorial"
)

type scene struct {
	quad    *renderer.VertexArray
	program *shader.Program
	wall    *renderer.Texture
}

func setup(ctx *tutorial.Context) (tutorial.Scene, error) {
	s := &scene{quad: renderer.NewVertexArray()}

	attributes := []struct {
		location uint32
		size     int32
		data     []float32
	}{
		{0, 3, []float32{
			0.5, 0.5, 0.0, // top right
			0.5, -0.5, 0.0, // bottom right
			-0.5, -0.5, 0.0, // bottom left
			-0.5, 0.5, 0.0, // top left
		}},
		{1, 3, []float32{
			1.0, 0.0, 0.0,
			0.0, 1.0, 0.0,
			0.0, 0.0, 1.0,
			1.0, 1.0, 0.0,
		}},
		{2, 2, []float32{
			1.0, 1.0,
			1.0, 0.0,
			0.0, 0.0,
			0.0, 1.0,
		}},
	}
	for _, a := range attributes {
		if err := s.quad.AddAttribute(a.location, a.size, a.data); err != nil {
			s.Close()
			return nil, err
		}
	}
	s.quad.SetIndices([]uint32{
		0, 1, 3,
		1, 2, 3,
	})

	s.quad.Bind()

	var err error
	s.program, err = ctx.Program("texture.vs", "texture.fs")
	if err != nil {
		s.Close()
		return nil, err
	}
	s.wall = ctx.Texture("wall.jpeg", false)

	s.program.Use()
	if err := s.program.SetInt("texSample", 0); err != nil {
		s.Close()
		return nil, err
	}

	return s, nil
}

func (s *scene) Draw(tutorial.Frame) error {
	s.wall.Bind(0)
	s.quad.Draw()
	return nil
}

func (s *scene) Close() {
	s.wall.Close()
	s.program.Close()
	s.quad.Close()
}

func main() {
	tutorial.Main(tutorial.Options{
		Title:      "Texture",
		ClearColor: [4]float32{0.2, 0.3, 1.0, 0},
		Wireframe:  true,
	}, setup)
}
