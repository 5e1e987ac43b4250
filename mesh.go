package orrery

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is an immutable interleaved vertex buffer. A Mesh built with an
// uploader owns exactly one GPU buffer until Release is called.
type Mesh struct {
	data     []float32
	handle   BufferHandle
	uploader BufferUploader
	released bool
}

// NewMesh copies an assembled buffer and uploads it through up. A nil
// uploader gives a CPU-only mesh with no handle. On upload failure no Mesh
// is returned.
func NewMesh(data []float32, up BufferUploader) (*Mesh, error) {
	if len(data)%FloatsPerVertex != 0 {
		return nil, fmt.Errorf("orrery: buffer length %d is not a multiple of %d", len(data), FloatsPerVertex)
	}
	m := &Mesh{data: make([]float32, len(data)), uploader: up}
	copy(m.data, data)
	if up != nil {
		h, err := up.Upload(m.data, VertexLayout)
		if err != nil {
			return nil, fmt.Errorf("orrery: upload vertex buffer: %w", err)
		}
		m.handle = h
	}
	return m, nil
}

func (m *Mesh) VertexCount() int {
	return len(m.data) / FloatsPerVertex
}

// Vertex returns the i-th packed vertex.
func (m *Mesh) Vertex(i int) PackedVertex {
	return unpackVertex(m.data[i*FloatsPerVertex : (i+1)*FloatsPerVertex])
}

// Data returns a copy of the interleaved buffer.
func (m *Mesh) Data() []float32 {
	out := make([]float32, len(m.data))
	copy(out, m.data)
	return out
}

// Bytes returns the buffer as little-endian float32 values, laid out as
// described by VertexLayout.
func (m *Mesh) Bytes() []byte {
	out := make([]byte, len(m.data)*4)
	for i, f := range m.data {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(f))
	}
	return out
}

// Handle returns the GPU buffer, or zero once released.
func (m *Mesh) Handle() BufferHandle {
	return m.handle
}

func (m *Mesh) Released() bool {
	return m.released
}

// Release frees the GPU buffer. Calling it again is a no-op that returns nil.
func (m *Mesh) Release() error {
	if m.released {
		return nil
	}
	m.released = true
	h := m.handle
	m.handle = 0
	if m.uploader == nil || h == 0 {
		return nil
	}
	if err := m.uploader.Release(h); err != nil {
		return fmt.Errorf("orrery: release vertex buffer %d: %w", h, err)
	}
	return nil
}

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max mgl32.Vec3
}

func (b Box) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

func (b Box) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// BoundingBox returns the bounds of all vertex positions. An empty mesh has a
// zero box.
func (m *Mesh) BoundingBox() Box {
	if len(m.data) == 0 {
		return Box{}
	}
	lo := mgl32.Vec3{math32.MaxFloat32, math32.MaxFloat32, math32.MaxFloat32}
	hi := lo.Mul(-1)
	for i := 0; i < len(m.data); i += FloatsPerVertex {
		for k := 0; k < 3; k++ {
			lo[k] = math32.Min(lo[k], m.data[i+k])
			hi[k] = math32.Max(hi[k], m.data[i+k])
		}
	}
	return Box{lo, hi}
}
