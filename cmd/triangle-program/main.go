// Command triangle-program draws a triangle through a program built from
// shader files.
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

	err := s.triangle.AddAttribute(0, 3, []float32{
		-0.5, -0.5, 0.0,
		0.5, -0.5, 0.0,
		0.0, 0.5, 0.0,
	})
	if err != nil {
		s.Close()
		return nil, err
	}

	s.triangle.Bind()
	s.program, err = ctx.Program("hello_triangle.vs", "hello_triangle.fs")
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
		Title:      "Hello Triangle",
		ClearColor: [4]float32{0, 0, 0, 0},
	}, setup)
}
