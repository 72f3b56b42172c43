// Command transform draws a quad tilted back in perspective, blending two
// textures.
package main

import (
	"github.com/Faultbox/learngl/internal/engine/renderer"
	"github.com/Faultbox/learngl/internal/engine/shader"
	"github.com/Faultbox/learngl/internal/tutorial"
	"github.com/Faultbox/learngl/pkg/math"
)

type scene struct {
	quad     *renderer.VertexArray
	program  *shader.Program
	textures []*renderer.Texture
}

func setup(ctx *tutorial.Context) (tutorial.Scene, error) {
	s := &scene{quad: renderer.NewVertexArray()}

	attributes := []struct {
		location uint32
		size     int32
		data     []float32
	}{
		{0, 3, []float32{
			0.5, 0.5, 0.0,
			0.5, -0.5, 0.0,
			-0.5, -0.5, 0.0,
			-0.5, 0.5, 0.0,
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
	s.quad.SetIndices([]uint32{0, 1, 3, 1, 2, 3})

	s.quad.Bind()

	var err error
	s.program, err = ctx.Program("transform.vs", "transform.fs")
	if err != nil {
		s.Close()
		return nil, err
	}

	s.textures = []*renderer.Texture{
		ctx.Texture("wall.jpeg", false),
		ctx.Texture("awesomeface.png", true),
	}

	s.program.Use()
	for unit, name := range []string{"text1", "text2"} {
		if err := s.program.SetInt(name, int32(unit)); err != nil {
			s.Close()
			return nil, err
		}
	}

	return s, nil
}

func (s *scene) Draw(f tutorial.Frame) error {
	if err := setTransforms(s.program, f.Aspect); err != nil {
		return err
	}

	for unit, t := range s.textures {
		t.Bind(uint32(unit))
	}
	s.quad.Draw()
	return nil
}

// setTransforms writes model, view and projection, in that order. The quad
// is tilted 55 degrees back and pushed one unit into the screen.
func setTransforms(p *shader.Program, aspect float32) error {
	transforms := []struct {
		name string
		m    math.Mat4
	}{
		{"model", math.Rotation(math.Radians(-55), math.Vec3{X: 1})},
		{"view", math.Translation(math.Vec3{Z: -1})},
		{"projection", math.Perspective(math.Radians(45), aspect, 0.1, 100)},
	}
	for _, t := range transforms {
		if err := p.SetMat4(t.name, t.m); err != nil {
			return err
		}
	}
	return nil
}

func (s *scene) Close() {
	for _, t := range s.textures {
		t.Close()
	}
	s.program.Close()
	s.quad.Close()
}

func main() {
	tutorial.Main(tutorial.Options{
		Title:      "Transform",
		ClearColor: [4]float32{0.2, 0.3, 1.0, 0},
		Wireframe:  true,
	}, setup)
}
