package orrery

// FloatsPerVertex is the fixed stride of a packed vertex, in floats.
const FloatsPerVertex = 8

// Attribute describes one field of a packed vertex.
type Attribute struct {
	Name   string
	Offset int // bytes from the start of the vertex
	Size   int // float32 components
}

// Layout is the binary contract between a Mesh and the renderer.
type Layout struct {
	Stride     int // bytes
	Attributes []Attribute
}

// VertexLayout is the layout of every Mesh buffer: position, texture
// coordinate and normal, 32 bytes per vertex.
var VertexLayout = Layout{
	Stride: FloatsPerVertex * 4,
	Attributes: []Attribute{
		{Name: "position", Offset: 0, Size: 3},
		{Name: "texcoord", Offset: 12, Size: 2},
		{Name: "normal", Offset: 20, Size: 3},
	},
}

// BufferHandle names a GPU-side vertex buffer. Zero means no buffer.
type BufferHandle uint32

// BufferUploader is the rendering collaborator that owns GPU memory.
type BufferUploader interface {
	Upload(data []float32, layout Layout) (BufferHandle, error)
	Release(h BufferHandle) error
}
