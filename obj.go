package orrery

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// LoadOBJ loads a Wavefront OBJ file into a CPU-only mesh.
func LoadOBJ(path string) (*Mesh, error) {
	return defaultLoader.LoadOBJ(path)
}

func LoadOBJFromBytes(b []byte) (*Mesh, error) {
	return defaultLoader.LoadOBJFromReader(bytes.NewReader(b))
}

func LoadOBJFromReader(r io.Reader) (*Mesh, error) {
	return defaultLoader.LoadOBJFromReader(r)
}

// ParseOBJ scans an OBJ description into an AttributeTable. Faces are kept
// unresolved; only their syntax is checked here.
func ParseOBJ(r io.Reader) (*AttributeTable, error) {
	t := newAttributeTable()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			f, err := parseFloats(line, fields[1:], 3)
			if err != nil {
				return nil, err
			}
			t.Positions = append(t.Positions, mgl32.Vec3{f[0], f[1], f[2]})
		case "vt":
			f, err := parseFloats(line, fields[1:], 2)
			if err != nil {
				return nil, err
			}
			t.TexCoords = append(t.TexCoords, mgl32.Vec2{f[0], f[1]})
		case "vn":
			f, err := parseFloats(line, fields[1:], 3)
			if err != nil {
				return nil, err
			}
			t.Normals = append(t.Normals, mgl32.Vec3{f[0], f[1], f[2]})
		case "f":
			refs := make([]VertexRef, len(fields)-1)
			for i, arg := range fields[1:] {
				ref, err := parseVertexRef(arg, t)
				if err != nil {
					return nil, formatError(line, "vertex %d %q: %v", i+1, arg, err)
				}
				refs[i] = ref
			}
			t.Faces = append(t.Faces, FaceRecord{Line: line, Refs: refs})
		}
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &LoadError{Kind: ErrFormat, Line: line + 1, Err: err}
		}
		return nil, &LoadError{Kind: ErrFileNotFound, Line: line + 1, Detail: "read failed", Err: err}
	}

	t.finish()
	return t, nil
}

// parseFloats parses every token and requires at least want of them.
func parseFloats(line int, args []string, want int) ([]float32, error) {
	if len(args) < want {
		return nil, formatError(line, "expected %d values, got %d", want, len(args))
	}
	out := make([]float32, len(args))
	for i, s := range args {
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return nil, formatError(line, "bad number %q", s)
		}
		out[i] = float32(f)
	}
	return out, nil
}

// formats: v, v/vt, v//vn, v/vt/vn
func parseVertexRef(arg string, t *AttributeTable) (VertexRef, error) {
	parts := strings.Split(arg, "/")
	if len(parts) > 3 {
		return VertexRef{}, errTooManySegments
	}

	var ref VertexRef
	var err error
	if ref.Position, err = fixIndex(parts[0], len(t.Positions)); err != nil {
		return VertexRef{}, err
	}
	if len(parts) > 1 && parts[1] != "" {
		if ref.TexCoord, err = fixIndex(parts[1], len(t.TexCoords)); err != nil {
			return VertexRef{}, err
		}
		ref.HasTexCoord = true
	}
	if len(parts) > 2 && parts[2] != "" {
		if ref.Normal, err = fixIndex(parts[2], len(t.Normals)); err != nil {
			return VertexRef{}, err
		}
		ref.HasNormal = true
	}
	return ref, nil
}

// fixIndex turns a relative (negative) index into an absolute 1-based one
// against the attributes seen so far. Range checks happen during assembly.
func fixIndex(value string, length int) (int, error) {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, errBadIndex
	}
	if parsed < 0 {
		return parsed + length + 1, nil
	}
	return parsed, nil
}
