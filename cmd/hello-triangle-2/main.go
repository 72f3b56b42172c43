// Command hello-triangle-2 draws a triangle with a color per vertex.
// W toggles wireframe.
package main

import (
	"github.com/Faultbox/learngl/internal/engine/renderer"
	"github.com/Faultbox/learngl/internal/engine/shader"
	"github.com/Faultbox/learngl/internal/tutorial"
)

type scene struct {
	triangle *renderer.VertexArray
	program  *shader.Program
}

func setup(ctx *tutorial.Context) (tutorial.Scene, error) {
	s := &scene{triangle: renderer.NewVertexArray()}

	positions := []float32{
		0.5, 0.5, 0.0, // top right
		0.5, -0.5, 0.0, // bottom right
		-0.5, -0.5, 0.0, // bottom left
	}
	colors := []float32{
		1.0, 0.0, 0.0, // red
		0.0, 1.0, 0.0, // green
		0.0, 0.0, 1.0, // blue
	}

	if err := s.triangle.AddAttribute(0, 3, positions); err != nil {
		s.Close()
		return nil, err
	}
	if err := s.triangle.AddAttribute(1, 3, colors); err != nil {
		s.Close()
		return nil, err
	}

	s.triangle.Bind()

	var err error
	s.program, err = ctx.Program("hello_triangle2.vs", "hello_triangle2.fs")
	if err != nil {
		s.Close()
		return nil, err
	}
	s.program.Use()

	return s, nil
}

func (s *scene) Draw(tutorial.Frame) error {
	s.triangle.Draw()
	return nil
}

func (s *scene) Close() {
	s.program.Close()
	s.triangle.Close()
}

func main() {
	tutorial.Main(tutorial.Options{
		Title:      "Hello Triangle 2",
		ClearColor: [4]float32{0.2, 0.3, 1.0, 0},
		Wireframe:  true,
	}, setup)
}
