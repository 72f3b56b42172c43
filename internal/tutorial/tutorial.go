// Package tutorial is the shared harness behind every cmd/ program:
// configuration, logging, window and GL setup, then a per-frame draw loop.
package tutorial

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/learngl/internal/assets"
	"github.com/Faultbox/learngl/internal/config"
	"github.com/Faultbox/learngl/internal/engine/input"
	"github.com/Faultbox/learngl/internal/engine/renderer"
	"github.com/Faultbox/learngl/internal/engine/shader"
	"github.com/Faultbox/learngl/internal/engine/window"
	"github.com/Faultbox/learngl/internal/logger"
)

// Options describes the fixed parts of a tutorial.
type Options struct {
	Title      string
	ClearColor [4]float32
	DepthTest  bool
	// Wireframe binds the W key to polygon mode toggling.
	Wireframe bool
}

// Frame is passed to Scene.Draw once per frame.
type Frame struct {
	Time   float64 // seconds since the loop started
	Aspect float32 // viewport width / height
}

// Scene is the per-tutorial part: static geometry uploaded in Setup and a
// draw call per frame.
type Scene interface {
	Draw(f Frame) error
	Close()
}

// SetupFunc builds a Scene once the GL context exists.
type SetupFunc func(ctx *Context) (Scene, error)

// Context hands scenes the GL backend and asset lookup.
type Context struct {
	Config   *config.Config
	Backend  shader.Backend
	Renderer *renderer.Renderer
	Assets   *assets.Manager
}

// ProgramOptions returns the configured missing-uniform policy and the
// "shader" logger, for programs built outside Program.
func (c *Context) ProgramOptions() []shader.Option {
	return []shader.Option{
		shader.WithMissingUniform(c.Config.MissingUniformPolicy()),
		shader.WithLogger(logger.Named("shader")),
	}
}

// Program compiles a program from shader file names with ProgramOptions.
// Bind the vertex array the program draws with first; linking validates
// against it.
func (c *Context) Program(vertexName, fragmentName string) (*shader.Program, error) {
	return c.Assets.Program(c.Backend, vertexName, fragmentName, c.ProgramOptions()...)
}

// Texture uploads an image from the texture directory. A missing or
// undecodable image is logged and replaced with a white texture.
func (c *Context) Texture(name string, flip bool) *renderer.Texture {
	img, err := c.Assets.Image(name, flip)
	if err != nil {
		logger.Warn("texture unavailable, using fallback",
			zap.String("name", name),
			zap.Error(err),
		)
		return renderer.NewFallbackTexture()
	}
	logger.Debug("texture loaded",
		zap.String("name", name),
		zap.Int("width", img.Rect.Dx()),
		zap.Int("height", img.Rect.Dy()),
	)
	return renderer.NewTexture(img)
}

// Main runs a tutorial and exits the process with its status.
func Main(opts Options, setup SetupFunc) {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, opts, setup); err != nil {
		logger.Error("tutorial failed", zap.String("title", opts.Title), zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

func run(cfg *config.Config, opts Options, setup SetupFunc) error {
	logger.Info("starting tutorial", zap.String("title", opts.Title))
	logger.Sugar.Debugf("Config: %+v", cfg)

	app, err := newApp(cfg, opts)
	if err != nil {
		return err
	}
	defer app.Close()

	scene, err := setup(app.ctx)
	if err != nil {
		return fmt.Errorf("setup: %w", err)
	}
	defer scene.Close()

	return app.Run(scene)
}

// app owns the window, renderer and input for one tutorial.
type app struct {
	opts     Options
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	ctx      *Context
}

func newApp(cfg *config.Config, opts Options) (*app, error) {
	a := &app{opts: opts}

	depthBits := 0
	if opts.DepthTest {
		depthBits = 24
	}

	var err error
	a.window, err = window.New(window.Config{
		Title:      opts.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
		DepthBits:  depthBits,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer needs the GL context the window just created.
	width, height := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		ClearColor: opts.ClearColor,
		DepthTest:  opts.DepthTest,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.input = input.New()
	a.ctx = &Context{
		Config:   cfg,
		Backend:  renderer.GL{},
		Renderer: a.renderer,
		Assets:   assets.NewManager(cfg.Shader.Dir, cfg.Resources.Textures),
	}
	return a, nil
}

// Run drives the frame loop until the window closes or ESC is pressed.
func (a *app) Run(scene Scene) error {
	start := time.Now()
	lastTime := start
	frameCount := 0
	fpsTimer := start

	logger.Debug("starting frame loop")

	for {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if a.input.Update() {
			return nil
		}

		for _, event := range a.input.Events() {
			switch event.Type {
			case input.EventWindowResize:
				// Event size is in window units; the viewport wants pixels.
				a.renderer.Resize(a.window.DrawableSize())
			case input.EventKeyDown:
				switch event.Key {
				case input.KeyEscape:
					return nil
				case input.KeyW:
					if a.opts.Wireframe {
						a.renderer.ToggleWireframe()
					}
				}
			}
		}

		a.renderer.Begin()
		frame := Frame{
			Time:   now.Sub(start).Seconds(),
			Aspect: a.renderer.Aspect(),
		}
		if err := scene.Draw(frame); err != nil {
			return fmt.Errorf("draw: %w", err)
		}
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount), zap.Float64("dt_ms", dt*1000))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}
}

// Close releases the asset cache, renderer state and window.
func (a *app) Close() {
	logger.Debug("closing tutorial")
	a.ctx.Assets.Close()
	a.window.Close()
}
