// Command transform-cube draws a textured cube spinning around a tilted
// axis, with depth testing.
package main

import (
	"github.com/Faultbox/learngl/internal/engine/renderer"
	"github.com/Faultbox/learngl/internal/engine/shader"
	"github.com/Faultbox/learngl/internal/tutorial"
	"github.com/Faultbox/learngl/pkg/math"
)

// cubeFaces lists the six faces as two triangles each, corners given as
// indices into cubeCorners.
var cubeFaces = [6][6]int{
	{0, 1, 2, 2, 3, 0}, // back
	{4, 5, 6, 6, 7, 4}, // front
	{7, 3, 0, 0, 4, 7}, // left
	{6, 2, 1, 1, 5, 6}, // right
	{0, 1, 5, 5, 4, 0}, // bottom
	{3, 2, 6, 6, 7, 3}, // top
}

var cubeCorners = [8]math.Vec3{
	{X: -0.5, Y: -0.5, Z: -0.5},
	{X: 0.5, Y: -0.5, Z: -0.5},
	{X: 0.5, Y: 0.5, Z: -0.5},
	{X: -0.5, Y: 0.5, Z: -0.5},
	{X: -0.5, Y: -0.5, Z: 0.5},
	{X: 0.5, Y: -0.5, Z: 0.5},
	{X: 0.5, Y: 0.5, Z: 0.5},
	{X: -0.5, Y: 0.5, Z: 0.5},
}

// faceTexCoords maps each face's six vertices onto the full texture.
var faceTexCoords = [6][2]float32{
	{0, 0}, {1, 0}, {1, 1}, {1, 1}, {0, 1}, {0, 0},
}

// cubeVertices expands the cube to 36 homogeneous positions and matching
// texture coordinates.
func cubeVertices() (positions, texCoords []float32) {
	for _, face := range cubeFaces {
		for i, corner := range face {
			p := cubeCorners[corner]
			positions = append(positions, p.X, p.Y, p.Z, 1)
			texCoords = append(texCoords, faceTexCoords[i][0], faceTexCoords[i][1])
		}
	}
	return positions, texCoords
}

type scene struct {
	cube    *renderer.VertexArray
	program *shader.Program
	wall    *renderer.Texture
}

func setup(ctx *tutorial.Context) (tutorial.Scene, error) {
	s := &scene{cube: renderer.NewVertexArray()}

	positions, texCoords := cubeVertices()
	if err := s.cube.AddAttribute(0, 4, positions); err != nil {
		s.Close()
		return nil, err
	}
	if err := s.cube.AddAttribute(1, 2, texCoords); err != nil {
		s.Close()
		return nil, err
	}

	s.cube.Bind()

	var err error
	s.program, err = ctx.Program("transform_cube.vs", "transform_cube.fs")
	if err != nil {
		s.Close()
		return nil, err
	}
	s.wall = ctx.Texture("wall.jpeg", false)

	s.program.Use()
	if err := s.program.SetInt("text", 0); err != nil {
		s.Close()
		return nil, err
	}
	if err := s.program.SetMat4("view", math.Translation(math.Vec3{Z: -3})); err != nil {
		s.Close()
		return nil, err
	}

	return s, nil
}

func (s *scene) Draw(f tutorial.Frame) error {
	model := math.Rotation(float32(f.Time), math.Vec3{X: 0.5, Y: 5})
	if err := s.program.SetMat4("model", model); err != nil {
		return err
	}
	projection := math.Perspective(math.Radians(45), f.Aspect, 0.1, 100)
	if err := s.program.SetMat4("projection", projection); err != nil {
		return err
	}

	s.wall.Bind(0)
	s.cube.Draw()
	return nil
}

func (s *scene) Close() {
	s.wall.Close()
	s.program.Close()
	s.cube.Close()
}

func main() {
	tutorial.Main(tutorial.Options{
		Title:      "Transform Cube",
		ClearColor: [4]float32{0.2, 0.3, 1.0, 0},
		DepthTest:  true,
		Wireframe:  true,
	}, setup)
}
