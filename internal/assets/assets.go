// Package assets resolves tutorial shaders and textures from disk or the
// embedded resources, caching decoded images.
package assets

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/Faultbox/learngl/internal/engine/shader"
	"github.com/Faultbox/learngl/internal/engine/texture"
	"github.com/Faultbox/learngl/resources"
)

// Manager handles asset lookup for one tutorial.
type Manager struct {
	shaderDir  string
	textureDir string
	cache      *Cache
}

// NewManager creates a new asset manager. An empty shaderDir selects the
// embedded shader sources.
func NewManager(shaderDir, textureDir string) *Manager {
	return &Manager{
		shaderDir:  shaderDir,
		textureDir: textureDir,
		cache:      NewCache(),
	}
}

// ShaderSource returns the source for a shader file name such as
// "texture.vs".
func (m *Manager) ShaderSource(name string) shader.Source {
	if m.shaderDir != "" {
		return shader.FromFile(filepath.Join(m.shaderDir, name))
	}
	return shader.FromFS(resources.Shaders, "shaders/"+name)
}

// Program compiles and links a vertex/fragment pair by file name.
func (m *Manager) Program(b shader.Backend, vertexName, fragmentName string, opts ...shader.Option) (*shader.Program, error) {
	prog, err := shader.CompileProgram(b, m.ShaderSource(vertexName), m.ShaderSource(fragmentName), opts...)
	if err != nil {
		return nil, fmt.Errorf("program %s+%s: %w", vertexName, fragmentName, err)
	}
	return prog, nil
}

// Image loads a texture image from the texture directory.
func (m *Manager) Image(name string, flip bool) (*image.RGBA, error) {
	key := fmt.Sprintf("%s|flip=%t", name, flip)
	if img, ok := m.cache.Get(key); ok {
		return img, nil
	}

	img, err := texture.Load(filepath.Join(m.textureDir, name), texture.Options{FlipVertical: flip})
	if err != nil {
		return nil, err
	}
	m.cache.Set(key, img)
	return img, nil
}

// Close drops cached images.
func (m *Manager) Close() {
	m.cache.Clear()
}

// Cache is a simple in-memory cache for decoded images.
type Cache struct {
	data map[string]*image.RGBA

	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string]*image.RGBA),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) (*image.RGBA, bool) {
	img, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return img, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, img *image.RGBA) {
	c.data[key] = img
}

// Clear clears the cache.
func (c *Cache) Clear() {
	clear(c.data)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	return c.hits, c.misses
}
