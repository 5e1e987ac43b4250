package orrery

import (
	"errors"
	"io/fs"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadGLTF loads a .gltf or .glb file into a CPU-only mesh.
func LoadGLTF(path string) (*Mesh, error) {
	return defaultLoader.LoadGLTF(path)
}

// LoadGLTF loads every triangle primitive of a .gltf or .glb file into one
// Mesh. Each primitive is its own attribute set: it goes through the same
// assembly as an OBJ file, so a primitive without normals gets flat normals
// even when its neighbours carry them.
func (l *Loader) LoadGLTF(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &LoadError{Kind: ErrFileNotFound, Detail: path, Err: err}
		}
		return nil, &LoadError{Kind: ErrFormat, Detail: path, Err: err}
	}
	data, err := l.assembleGLTF(doc)
	if err != nil {
		return nil, err
	}
	return NewMesh(data, l.Uploader)
}

// assembleGLTF concatenates the assembled buffers of all triangle primitives.
func (l *Loader) assembleGLTF(doc *gltf.Document) ([]float32, error) {
	var data []float32
	faces, primitives := 0, 0

	for mi, mesh := range doc.Meshes {
		for pi, primitive := range mesh.Primitives {
			if primitive.Mode != gltf.PrimitiveTriangles {
				l.logf("gltf mesh %d primitive %d: skipping non-triangle mode %v", mi, pi, primitive.Mode)
				continue
			}
			if _, ok := primitive.Attributes[gltf.POSITION]; !ok {
				l.logf("gltf mesh %d primitive %d: skipping primitive without positions", mi, pi)
				continue
			}
			t, err := tableFromPrimitive(doc, primitive)
			if err != nil {
				return nil, err
			}
			if !t.HasNormals {
				l.logf("gltf mesh %d primitive %d has no normals, computing flat face normals", mi, pi)
			}

			buf, err := Assemble(t)
			if err != nil {
				var le *LoadError
				if errors.As(err, &le) && le.Face > 0 {
					le.Face += faces
				}
				return nil, err
			}
			data = append(data, buf...)
			faces += len(t.Faces)
			primitives++
		}
	}

	if primitives == 0 {
		return nil, &LoadError{Kind: ErrFormat, Detail: "no triangles found in gltf"}
	}
	return data, nil
}

func tableFromPrimitive(doc *gltf.Document, primitive *gltf.Primitive) (*AttributeTable, error) {
	positions, err := modeler.ReadPosition(doc, doc.Accessors[primitive.Attributes[gltf.POSITION]], nil)
	if err != nil {
		return nil, &LoadError{Kind: ErrFormat, Detail: "read positions", Err: err}
	}

	var normals [][3]float32
	if normIdx, ok := primitive.Attributes[gltf.NORMAL]; ok {
		if normals, err = modeler.ReadNormal(doc, doc.Accessors[normIdx], nil); err != nil {
			return nil, &LoadError{Kind: ErrFormat, Detail: "read normals", Err: err}
		}
	}
	var texCoords [][2]float32
	if texIdx, ok := primitive.Attributes[gltf.TEXCOORD_0]; ok {
		if texCoords, err = modeler.ReadTextureCoord(doc, doc.Accessors[texIdx], nil); err != nil {
			return nil, &LoadError{Kind: ErrFormat, Detail: "read texture coordinates", Err: err}
		}
	}

	var indices []uint32
	if primitive.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*primitive.Indices], nil)
		if err != nil {
			return nil, &LoadError{Kind: ErrFormat, Detail: "read indices", Err: err}
		}
	} else {
		// no indices: every three vertices form a triangle
		indices = make([]uint32, len(positions))
		for k := range indices {
			indices[k] = uint32(k)
		}
	}
	if len(indices)%3 != 0 {
		return nil, &LoadError{Kind: ErrFormat, Detail: "index count is not a multiple of 3"}
	}

	t := newAttributeTable()
	for _, p := range positions {
		t.Positions = append(t.Positions, mgl32.Vec3(p))
	}
	// attribute arrays not matching the vertex count are treated as absent
	hasNormals := len(normals) == len(positions)
	if hasNormals {
		for _, n := range normals {
			t.Normals = append(t.Normals, mgl32.Vec3(n))
		}
	}
	hasTexCoords := len(texCoords) == len(positions)
	if hasTexCoords {
		for _, uv := range texCoords {
			t.TexCoords = append(t.TexCoords, mgl32.Vec2(uv))
		}
	}

	for i := 0; i < len(indices); i += 3 {
		refs := make([]VertexRef, 3)
		for k, idx := range indices[i : i+3] {
			if int(idx) >= len(positions) {
				return nil, outOfRange("position", int(idx)+1, len(positions))
			}
			refs[k] = VertexRef{
				Position:    int(idx) + 1,
				TexCoord:    int(idx) + 1,
				Normal:      int(idx) + 1,
				HasTexCoord: hasTexCoords,
				HasNormal:   hasNormals,
			}
		}
		t.Faces = append(t.Faces, FaceRecord{Refs: refs})
	}
	t.finish()
	return t, nil
}
