package orrery

import (
	"testing"

	"github.com/beorn7/floats"
	"github.com/go-gl/mathgl/mgl32"
)

func TestSimplifyKeepsEverythingAtFactorOne(t *testing.T) {
	m := loadString(t, cubeOBJ)
	up := newFakeUploader()
	lod, err := Simplify(m, 1, up)
	if err != nil {
		t.Fatal(err)
	}
	defer lod.Release()

	if lod.VertexCount() != m.VertexCount() {
		t.Fatalf("vertex count = %d, want %d", lod.VertexCount(), m.VertexCount())
	}
	if lod.Handle() == 0 {
		t.Fatalf("simplified mesh not uploaded")
	}
	for i := 0; i < lod.VertexCount(); i++ {
		v := lod.Vertex(i)
		if !floats.AlmostEqual(float64(v.Normal.Len()), 1, 1e-6) {
			t.Fatalf("vertex %d normal %v not unit length", i, v.Normal)
		}
		if v.TexCoord != (mgl32.Vec2{}) {
			t.Fatalf("vertex %d texcoord = %v", i, v.TexCoord)
		}
	}
}

func TestSimplifyRejectsBadFactor(t *testing.T) {
	m := loadString(t, cubeOBJ)
	for _, f := range []float64{0, -0.5, 1.5} {
		if _, err := Simplify(m, f, nil); err == nil {
			t.Fatalf("factor %v accepted", f)
		}
	}
}
