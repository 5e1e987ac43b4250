package orrery

import (
	"errors"
	"testing"
)

func TestFanTriangulate(t *testing.T) {
	for k := 3; k <= 12; k++ {
		tris, err := FanTriangulate(k)
		if err != nil {
			t.Fatalf("k=%d: %v", k, err)
		}
		if len(tris) != k-2 {
			t.Fatalf("k=%d: %d triangles, want %d", k, len(tris), k-2)
		}
		for i, tri := range tris {
			if tri != [3]int{0, i + 1, i + 2} {
				t.Fatalf("k=%d triangle %d = %v", k, i, tri)
			}
		}
	}
}

func TestFanTriangulateTooFewVertices(t *testing.T) {
	for k := 0; k < 3; k++ {
		if _, err := FanTriangulate(k); !errors.Is(err, ErrFormat) {
			t.Fatalf("k=%d: err = %v, want ErrFormat", k, err)
		}
	}
}

func TestAssemblePentagon(t *testing.T) {
	tab, err := parseString("v 0 0 0\nv 2 0 0\nv 3 1 0\nv 1 2 0\nv -1 1 0\nf 1 2 3 4 5\n")
	if err != nil {
		t.Fatal(err)
	}
	data, err := Assemble(tab)
	if err != nil {
		t.Fatal(err)
	}
	if n := len(data) / FloatsPerVertex; n != 9 {
		t.Fatalf("vertex count = %d, want 9", n)
	}
	order := []int{0, 1, 2, 0, 2, 3, 0, 3, 4}
	for i, j := range order {
		got := unpackVertex(data[i*FloatsPerVertex:]).Position
		if got != tab.Positions[j] {
			t.Fatalf("vertex %d = %v, want position %d %v", i, got, j+1, tab.Positions[j])
		}
	}
}
