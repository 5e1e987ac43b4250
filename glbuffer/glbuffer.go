// Package glbuffer uploads orrery meshes to OpenGL vertex buffers. All calls
// must happen on the goroutine that owns the current GL context.
package glbuffer

import (
	"errors"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/netisu/orrery"
)

// Uploader implements orrery.BufferUploader with static-draw GL buffers.
type Uploader struct{}

var _ orrery.BufferUploader = Uploader{}

func (Uploader) Upload(data []float32, layout orrery.Layout) (orrery.BufferHandle, error) {
	if len(data) == 0 {
		// nothing to draw; handle 0 is never passed to Release
		return 0, nil
	}
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	if vbo == 0 {
		return 0, errors.New("glbuffer: glGenBuffers returned no buffer")
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return orrery.BufferHandle(vbo), nil
}

func (Uploader) Release(h orrery.BufferHandle) error {
	vbo := uint32(h)
	gl.DeleteBuffers(1, &vbo)
	return nil
}

// Bind binds the mesh buffer and points attribute location i at the i-th
// attribute of the layout: 0 position, 1 texture coordinate, 2 normal.
func Bind(m *orrery.Mesh, layout orrery.Layout) error {
	if m.Handle() == 0 {
		return errors.New("glbuffer: mesh has no GPU buffer")
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(m.Handle()))
	for i, a := range layout.Attributes {
		gl.EnableVertexAttribArray(uint32(i))
		gl.VertexAttribPointer(uint32(i), int32(a.Size), gl.FLOAT, false, int32(layout.Stride), gl.PtrOffset(a.Offset))
	}
	return nil
}

