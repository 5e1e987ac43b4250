package orrery

// FanTriangulate expands a k-sided face into k-2 triangles of face-local
// indices, all pivoting on the first vertex: triangle i is (0, i+1, i+2).
// Convexity and planarity are assumed, not checked.
func FanTriangulate(k int) ([][3]int, error) {
	if k < 3 {
		return nil, &LoadError{Kind: ErrFormat, Detail: "face needs at least 3 vertices"}
	}
	tris := make([][3]int, k-2)
	for i := range tris {
		tris[i] = [3]int{0, i + 1, i + 2}
	}
	return tris, nil
}
