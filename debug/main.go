package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/netisu/orrery"
)

var (
	simplifyFactor = flag.Float64("simplify", 0, "also build a simplified mesh with this fraction of triangles")
	verbose        = flag.Bool("verbose", false, "print the first packed vertices")
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatal("usage: debug [-simplify f] [-verbose] mesh.obj|mesh.gltf|mesh.glb")
	}
	path := flag.Arg(0)

	var mesh *orrery.Mesh
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gltf", ".glb":
		mesh, err = orrery.LoadGLTF(path)
	default:
		mesh, err = orrery.LoadOBJ(path)
	}
	if err != nil {
		log.Fatal(err)
	}
	defer mesh.Release()

	printStats("MESH STATS", mesh)
	if *verbose {
		for i := 0; i < mesh.VertexCount() && i < 6; i++ {
			fmt.Printf("  %d: %+v\n", i, mesh.Vertex(i))
		}
	}

	if *simplifyFactor > 0 {
		lod, err := orrery.Simplify(mesh, *simplifyFactor, nil)
		if err != nil {
			log.Fatal(err)
		}
		defer lod.Release()
		printStats("SIMPLIFIED", lod)
	}
}

func printStats(title string, mesh *orrery.Mesh) {
	box := mesh.BoundingBox()
	fmt.Printf("--- %s ---\n", title)
	fmt.Printf("Vertices: %d\n", mesh.VertexCount())
	fmt.Printf("Triangles: %d\n", mesh.VertexCount()/3)
	fmt.Printf("Buffer bytes: %d (stride %d)\n", len(mesh.Bytes()), orrery.VertexLayout.Stride)
	fmt.Printf("Bounding Box Min: %+v\n", box.Min)
	fmt.Printf("Bounding Box Max: %+v\n", box.Max)
	fmt.Printf("Bounding Box Center: %+v\n", box.Center())
}
