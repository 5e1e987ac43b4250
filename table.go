package orrery

import "github.com/go-gl/mathgl/mgl32"

// VertexRef is one vertex of a face as declared in the source: 1-based
// indices into the attribute lists. TexCoord and Normal are only meaningful
// when the matching Has flag is set.
type VertexRef struct {
	Position    int
	TexCoord    int
	Normal      int
	HasTexCoord bool
	HasNormal   bool
}

// FaceRecord is an unresolved polygon in source winding order.
type FaceRecord struct {
	Line int
	Refs []VertexRef
}

// AttributeTable holds the raw attributes and faces of a mesh description.
// It only lives for the duration of a load.
type AttributeTable struct {
	Positions []mgl32.Vec3
	TexCoords []mgl32.Vec2
	Normals   []mgl32.Vec3
	Faces     []FaceRecord

	// Set by finish once the whole source has been scanned.
	HasNormals   bool
	HasTexCoords bool
}

func newAttributeTable() *AttributeTable {
	return &AttributeTable{
		Positions: make([]mgl32.Vec3, 0, 1024),
		TexCoords: make([]mgl32.Vec2, 0, 1024),
		Normals:   make([]mgl32.Vec3, 0, 1024),
	}
}

// finish derives the whole-mesh availability flags. Partial availability is
// not supported: either every face carries normals or none does.
func (t *AttributeTable) finish() {
	t.HasNormals = len(t.Normals) > 0
	t.HasTexCoords = len(t.TexCoords) > 0
}

func (t *AttributeTable) position(i int) (mgl32.Vec3, bool) {
	if i < 1 || i > len(t.Positions) {
		return mgl32.Vec3{}, false
	}
	return t.Positions[i-1], true
}

func (t *AttributeTable) texCoord(i int) (mgl32.Vec2, bool) {
	if i < 1 || i > len(t.TexCoords) {
		return mgl32.Vec2{}, false
	}
	return t.TexCoords[i-1], true
}

func (t *AttributeTable) normal(i int) (mgl32.Vec3, bool) {
	if i < 1 || i > len(t.Normals) {
		return mgl32.Vec3{}, false
	}
	return t.Normals[i-1], true
}
