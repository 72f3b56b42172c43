// Package renderer provides the OpenGL side of the tutorials: context
// initialization, per-frame state, vertex arrays, textures and the GL
// implementation of shader.Backend.
package renderer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/learngl/internal/logger"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor [4]float32
	DepthTest  bool
}

// Renderer owns global GL state for one window.
type Renderer struct {
	config    Config
	wireframe bool
}

// New initializes OpenGL and applies the default state.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	glslVersion := gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
		zap.String("glsl", glslVersion),
	)

	if cfg.DepthTest {
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthFunc(gl.LESS)
	}
	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	return r, nil
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Aspect returns the current viewport width/height ratio.
func (r *Renderer) Aspect() float32 {
	if r.config.Height == 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// Begin clears the framebuffer for a new frame.
func (r *Renderer) Begin() {
	mask := uint32(gl.COLOR_BUFFER_BIT)
	if r.config.DepthTest {
		mask |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(mask)
}

// ToggleWireframe switches polygon rasterization between lines and fill.
func (r *Renderer) ToggleWireframe() {
	r.wireframe = !r.wireframe
	if r.wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
	logger.Debug("wireframe toggled", zap.Bool("enabled", r.wireframe))
}
