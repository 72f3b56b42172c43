package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// VertexArray is a VAO with one tightly packed VBO per attribute and an
// optional element buffer.
type VertexArray struct {
	vao     uint32
	buffers []uint32
	ebo     uint32

	vertexCount int32
	indexCount  int32
}

// NewVertexArray creates an empty vertex array.
func NewVertexArray() *VertexArray {
	va := &VertexArray{}
	gl.GenVertexArrays(1, &va.vao)
	return va
}

// AddAttribute uploads data to a new static buffer and binds it to
// location with size floats per vertex.
func (va *VertexArray) AddAttribute(location uint32, size int32, data []float32) error {
	if size <= 0 || len(data) == 0 || len(data)%int(size) != 0 {
		return fmt.Errorf("attribute %d: %d floats is not a multiple of %d", location, len(data), size)
	}

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	gl.BindVertexArray(va.vao)
	gl.VertexAttribPointer(location, size, gl.FLOAT, false, size*4, nil)
	gl.EnableVertexAttribArray(location)
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	va.buffers = append(va.buffers, vbo)
	if count := int32(len(data)) / size; va.vertexCount == 0 || count < va.vertexCount {
		va.vertexCount = count
	}
	return nil
}

// SetIndices uploads an element buffer; Draw then uses DrawElements.
func (va *VertexArray) SetIndices(indices []uint32) {
	gl.BindVertexArray(va.vao)
	if va.ebo == 0 {
		gl.GenBuffers(1, &va.ebo)
	}
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, va.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	gl.BindVertexArray(0)

	va.indexCount = int32(len(indices))
}

// Bind makes this the current vertex array. Programs validated while it is
// bound are checked against its attribute layout.
func (va *VertexArray) Bind() {
	gl.BindVertexArray(va.vao)
}

// Draw issues a triangle draw call with whatever program is active.
func (va *VertexArray) Draw() {
	gl.BindVertexArray(va.vao)
	if va.ebo != 0 {
		gl.DrawElements(gl.TRIANGLES, va.indexCount, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, va.vertexCount)
	}
	gl.BindVertexArray(0)
}

// Close deletes the VAO and its buffers.
func (va *VertexArray) Close() {
	if len(va.buffers) > 0 {
		gl.DeleteBuffers(int32(len(va.buffers)), &va.buffers[0])
		va.buffers = nil
	}
	if va.ebo != 0 {
		gl.DeleteBuffers(1, &va.ebo)
		va.ebo = 0
	}
	if va.vao != 0 {
		gl.DeleteVertexArrays(1, &va.vao)
		va.vao = 0
	}
}
