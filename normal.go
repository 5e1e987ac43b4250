package orrery

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// degenerateSine is the smallest sine of the corner angle at v0 for which a
// face still gets a normal.
const degenerateSine = 1e-6

// FaceNormal returns the flat normal of the face whose first three positions
// are v0, v1 and v2, in source winding. Collinear or coincident points give
// ErrDegenerateFace instead of a NaN or zero vector. The product is taken in
// float64 so large float32 coordinates do not overflow.
func FaceNormal(v0, v1, v2 mgl32.Vec3) (mgl32.Vec3, error) {
	p0, p1, p2 := widen(v0), widen(v1), widen(v2)
	ba := p1.Sub(p0)
	ca := p2.Sub(p0)
	n := ba.Cross(ca)

	length := n.Len()
	if math.IsNaN(length) || math.IsInf(length, 0) || length <= degenerateSine*ba.Len()*ca.Len() {
		return mgl32.Vec3{}, &LoadError{Kind: ErrDegenerateFace, Detail: "first three positions are collinear"}
	}
	n = n.Mul(1 / length)
	return mgl32.Vec3{float32(n[0]), float32(n[1]), float32(n[2])}, nil
}

func widen(v mgl32.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}
