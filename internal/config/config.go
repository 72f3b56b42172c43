// Package config handles tutorial configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/learngl/internal/engine/shader"
)

// Config holds all tutorial settings.
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Shader    ShaderConfig    `yaml:"shader"`
	Resources ResourcesConfig `yaml:"resources"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// ShaderConfig controls where GLSL sources come from and how programs
// treat writes to uniforms they do not have.
type ShaderConfig struct {
	Dir            string `yaml:"dir"`             // On-disk shader directory; empty uses the embedded copies
	MissingUniform string `yaml:"missing_uniform"` // ignore, warn or error
}

// ResourcesConfig holds asset paths.
type ResourcesConfig struct {
	Textures string `yaml:"textures"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
		},
		Shader: ShaderConfig{
			Dir:            "",
			MissingUniform: "ignore",
		},
		Resources: ResourcesConfig{
			Textures: "resources/textures",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports settings the tutorials cannot run with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if _, err := shader.ParseMissingUniform(c.Shader.MissingUniform); err != nil {
		return fmt.Errorf("shader.missing_uniform: %w", err)
	}
	return nil
}

// MissingUniformPolicy returns the parsed shader.missing_uniform value.
// Invalid values fall back to ignore; Validate reports them.
func (c *Config) MissingUniformPolicy() shader.MissingUniform {
	p, err := shader.ParseMissingUniform(c.Shader.MissingUniform)
	if err != nil {
		return shader.MissingUniformIgnore
	}
	return p
}
