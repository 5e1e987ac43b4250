package orrery

import (
	"errors"
	"strings"
	"testing"

	"github.com/beorn7/floats"
	"github.com/go-gl/mathgl/mgl32"
)

func parseString(src string) (*AttributeTable, error) {
	return ParseOBJ(strings.NewReader(src))
}

func TestFaceNormal(t *testing.T) {
	tests := []struct {
		v0, v1, v2 mgl32.Vec3
		want       mgl32.Vec3
	}{
		{mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1}},
		{mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
		{mgl32.Vec3{5, 5, 5}, mgl32.Vec3{5, 5, 9}, mgl32.Vec3{5, 7, 5}, mgl32.Vec3{-1, 0, 0}},
	}
	for _, tc := range tests {
		n, err := FaceNormal(tc.v0, tc.v1, tc.v2)
		if err != nil {
			t.Fatalf("%v %v %v: %v", tc.v0, tc.v1, tc.v2, err)
		}
		if n != tc.want {
			t.Fatalf("normal = %v, want %v", n, tc.want)
		}
	}
}

func TestFaceNormalIsUnitLength(t *testing.T) {
	n, err := FaceNormal(mgl32.Vec3{0.1, 0.2, 0.3}, mgl32.Vec3{4, -1, 2}, mgl32.Vec3{-3, 7, 0.5})
	if err != nil {
		t.Fatal(err)
	}
	if !floats.AlmostEqual(float64(n.Len()), 1, 1e-6) {
		t.Fatalf("|n| = %v", n.Len())
	}
}

func TestFaceNormalDegenerate(t *testing.T) {
	tests := []struct {
		name       string
		v0, v1, v2 mgl32.Vec3
	}{
		{"collinear", mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{2, 2, 2}},
		{"coincident", mgl32.Vec3{1, 2, 3}, mgl32.Vec3{1, 2, 3}, mgl32.Vec3{4, 5, 6}},
		{"point", mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec3{}},
		{"nearly collinear", mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{2, 1e-9, 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FaceNormal(tc.v0, tc.v1, tc.v2)
			if !errors.Is(err, ErrDegenerateFace) {
				t.Fatalf("err = %v, want ErrDegenerateFace", err)
			}
		})
	}
}

func TestFlatNormalsPerFace(t *testing.T) {
	// two quads sharing an edge at different angles keep their own normals
	src := "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nv 0 0 1\nv 0 1 1\nf 1 2 3 4\nf 1 5 6 4\n"
	tab, err := parseString(src)
	if err != nil {
		t.Fatal(err)
	}
	data, err := Assemble(tab)
	if err != nil {
		t.Fatal(err)
	}
	want := []mgl32.Vec3{{0, 0, 1}, {-1, 0, 0}}
	for i := 0; i < len(data)/FloatsPerVertex; i++ {
		v := unpackVertex(data[i*FloatsPerVertex:])
		if v.Normal != want[i/6] {
			t.Fatalf("vertex %d normal = %v, want %v", i, v.Normal, want[i/6])
		}
		if v.TexCoord != (mgl32.Vec2{}) {
			t.Fatalf("vertex %d texcoord = %v", i, v.TexCoord)
		}
	}
}

func TestFaceNormalLargeCoordinates(t *testing.T) {
	n, err := FaceNormal(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1e20, 0, 0}, mgl32.Vec3{0, 1e20, 0})
	if err != nil {
		t.Fatalf("large face: %v", err)
	}
	if n != (mgl32.Vec3{0, 0, 1}) {
		t.Fatalf("normal = %v, want (0,0,1)", n)
	}

	n, err = FaceNormal(mgl32.Vec3{-3e38, 0, 0}, mgl32.Vec3{3e38, 0, 0}, mgl32.Vec3{-3e38, 3e38, 0})
	if err != nil {
		t.Fatalf("extreme face: %v", err)
	}
	if n != (mgl32.Vec3{0, 0, 1}) {
		t.Fatalf("normal = %v, want (0,0,1)", n)
	}
}
