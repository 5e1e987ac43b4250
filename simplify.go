package orrery

import (
	"errors"
	"fmt"

	"github.com/fogleman/simplify"
	"github.com/go-gl/mathgl/mgl32"
)

// Simplify returns a lower-detail copy of m with about factor of its
// triangles, uploaded through up. Quadric decimation drops texture
// coordinates, so the result carries (0,0) texture coordinates and flat
// normals. Triangles that collapse to zero area are discarded.
func Simplify(m *Mesh, factor float64, up BufferUploader) (*Mesh, error) {
	if factor <= 0 || factor > 1 {
		return nil, fmt.Errorf("orrery: simplify factor %v not in (0, 1]", factor)
	}

	tris := make([]*simplify.Triangle, 0, m.VertexCount()/3)
	for i := 0; i+2 < m.VertexCount(); i += 3 {
		tris = append(tris, simplify.NewTriangle(
			toSimplifyVector(m.Vertex(i).Position),
			toSimplifyVector(m.Vertex(i+1).Position),
			toSimplifyVector(m.Vertex(i+2).Position),
		))
	}
	reduced := simplify.NewMesh(tris).Simplify(factor)

	t := newAttributeTable()
	for _, tri := range reduced.Triangles {
		v1, v2, v3 := fromSimplifyVector(tri.V1), fromSimplifyVector(tri.V2), fromSimplifyVector(tri.V3)
		if _, err := FaceNormal(v1, v2, v3); errors.Is(err, ErrDegenerateFace) {
			continue
		}
		base := len(t.Positions)
		t.Positions = append(t.Positions, v1, v2, v3)
		t.Faces = append(t.Faces, FaceRecord{Refs: []VertexRef{
			{Position: base + 1},
			{Position: base + 2},
			{Position: base + 3},
		}})
	}
	t.finish()

	data, err := Assemble(t)
	if err != nil {
		return nil, err
	}
	return NewMesh(data, up)
}

func toSimplifyVector(v mgl32.Vec3) simplify.Vector {
	return simplify.Vector{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}

func fromSimplifyVector(v simplify.Vector) mgl32.Vec3 {
	return mgl32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}
