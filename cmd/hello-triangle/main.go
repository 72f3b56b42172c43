// Command hello-triangle draws an orange triangle from inline shader
// sources. Build diagnostics are printed and the program keeps running, so
// a broken shader shows up as an empty window rather than an exit.
package main

import (
	"fmt"
	"os"

	"github.com/Faultbox/learngl/internal/engine/renderer"
	"github.com/Faultbox/learngl/internal/engine/shader"
	"github.com/Faultbox/learngl/internal/tutorial"
)

const vertexSource = `#version 410 core
layout(location = 0) in vec3 aPos;

void main()
{
	gl_Position = vec4(aPos.x, aPos.y, aPos.z, 1.0);
}
`

const fragmentSource = `#version 410 core
out vec4 FragColor;

void main()
{
	FragColor = vec4(1.0f, 0.5f, 0.2f, 1.0f);
}
`

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

	var stages []*shader.Shader
	for _, st := range []struct {
		stage shader.Stage
		src   string
	}{
		{shader.Vertex, vertexSource},
		{shader.Fragment, fragmentSource},
	} {
		sh, err := shader.New(ctx.Backend, st.stage, shader.FromString(st.src))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to build %s shader for this reason:\n%v\n", st.stage, err)
			continue
		}
		defer sh.Close()
		stages = append(stages, sh)
	}

	if len(stages) < 2 {
		return s, nil
	}

	s.triangle.Bind()
	s.program, err = shader.NewProgram(ctx.Backend, stages, ctx.ProgramOptions()...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to link gpu program for this reason:\n%v\n", err)
	}

	return s, nil
}

func (s *scene) Draw(tutorial.Frame) error {
	if s.program == nil {
		return nil
	}
	s.program.Use()
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
		ClearColor: [4]float32{1, 0, 0, 0},
	}, setup)
}
