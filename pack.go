package orrery

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// PackedVertex is one entry of the interleaved buffer.
type PackedVertex struct {
	Position mgl32.Vec3
	TexCoord mgl32.Vec2
	Normal   mgl32.Vec3
}

func (v PackedVertex) appendTo(buf []float32) []float32 {
	return append(buf,
		v.Position[0], v.Position[1], v.Position[2],
		v.TexCoord[0], v.TexCoord[1],
		v.Normal[0], v.Normal[1], v.Normal[2])
}

func unpackVertex(f []float32) PackedVertex {
	return PackedVertex{
		Position: mgl32.Vec3{f[0], f[1], f[2]},
		TexCoord: mgl32.Vec2{f[3], f[4]},
		Normal:   mgl32.Vec3{f[5], f[6], f[7]},
	}
}

// Assemble resolves every face of t into triangles and returns the
// interleaved buffer, triangle by triangle, in face order. When the table has
// no normals each face gets its flat normal from FaceNormal.
func Assemble(t *AttributeTable) ([]float32, error) {
	size := 0
	for _, f := range t.Faces {
		if len(f.Refs) > 2 {
			size += (len(f.Refs) - 2) * 3 * FloatsPerVertex
		}
	}
	buf := make([]float32, 0, size)

	for i, face := range t.Faces {
		verts, err := assembleFace(t, face)
		if err != nil {
			var le *LoadError
			if errors.As(err, &le) {
				le.Line = face.Line
				le.Face = i + 1
			}
			return nil, err
		}
		buf = append(buf, verts...)
	}
	return buf, nil
}

func assembleFace(t *AttributeTable, face FaceRecord) ([]float32, error) {
	tris, err := FanTriangulate(len(face.Refs))
	if err != nil {
		return nil, err
	}

	verts := make([]PackedVertex, len(face.Refs))
	for i, ref := range face.Refs {
		if verts[i], err = resolveVertex(t, ref); err != nil {
			return nil, err
		}
	}

	if !t.HasNormals {
		n, err := FaceNormal(verts[0].Position, verts[1].Position, verts[2].Position)
		if err != nil {
			return nil, err
		}
		for i := range verts {
			verts[i].Normal = n
		}
	}

	out := make([]float32, 0, len(tris)*3*FloatsPerVertex)
	for _, tri := range tris {
		for _, j := range tri {
			out = verts[j].appendTo(out)
		}
	}
	return out, nil
}

func resolveVertex(t *AttributeTable, ref VertexRef) (PackedVertex, error) {
	var v PackedVertex
	var ok bool

	if v.Position, ok = t.position(ref.Position); !ok {
		return v, outOfRange("position", ref.Position, len(t.Positions))
	}

	if t.HasTexCoords {
		if !ref.HasTexCoord {
			return v, &LoadError{Kind: ErrFormat, Detail: "vertex has no texture coordinate index"}
		}
		if v.TexCoord, ok = t.texCoord(ref.TexCoord); !ok {
			return v, outOfRange("texture coordinate", ref.TexCoord, len(t.TexCoords))
		}
	}

	if t.HasNormals {
		if !ref.HasNormal {
			return v, &LoadError{Kind: ErrFormat, Detail: "vertex has no normal index"}
		}
		if v.Normal, ok = t.normal(ref.Normal); !ok {
			return v, outOfRange("normal", ref.Normal, len(t.Normals))
		}
	}
	return v, nil
}

func outOfRange(what string, index, count int) *LoadError {
	return &LoadError{
		Kind:   ErrIndexOutOfRange,
		Detail: fmt.Sprintf("%s %d not in 1..%d", what, index, count),
	}
}
