package orrery

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

// Loader turns mesh descriptions into Meshes. The zero value loads CPU-only
// meshes and logs to the standard logger.
type Loader struct {
	// Uploader receives every assembled buffer. Nil skips the GPU upload.
	Uploader BufferUploader
	// Logger receives load warnings. Nil means log.Default().
	Logger *log.Logger
	// HTTPTimeout bounds LoadOBJFromURL. Zero means 10 seconds.
	HTTPTimeout time.Duration
}

var defaultLoader = &Loader{}

func (l *Loader) logf(format string, args ...interface{}) {
	logger := l.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger.Printf("orrery: "+format, args...)
}

func (l *Loader) LoadOBJ(path string) (*Mesh, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Kind: ErrFileNotFound, Detail: path, Err: err}
	}
	defer file.Close()
	return l.LoadOBJFromReader(file)
}

func (l *Loader) LoadOBJFromReader(r io.Reader) (*Mesh, error) {
	t, err := ParseOBJ(r)
	if err != nil {
		return nil, err
	}
	return l.build(t)
}

// LoadOBJFromURL fetches an OBJ description over HTTP.
func (l *Loader) LoadOBJFromURL(url string) (*Mesh, error) {
	timeout := l.HTTPTimeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	client := http.Client{Timeout: timeout}
	resp, err := client.Get(url)
	if err != nil {
		return nil, &LoadError{Kind: ErrFileNotFound, Detail: url, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, &LoadError{Kind: ErrFileNotFound, Detail: fmt.Sprintf("%s: %s", url, resp.Status)}
	}
	return l.LoadOBJFromReader(resp.Body)
}

// build assembles the table and hands the buffer to the uploader.
func (l *Loader) build(t *AttributeTable) (*Mesh, error) {
	if !t.HasNormals {
		l.logf("model has no normals, computing flat face normals")
	}
	if !t.HasTexCoords {
		l.logf("model has no texture coordinates")
	}
	data, err := Assemble(t)
	if err != nil {
		return nil, err
	}
	return NewMesh(data, l.Uploader)
}

func LoadOBJFromURL(url string) (*Mesh, error) {
	return defaultLoader.LoadOBJFromURL(url)
}

// MustLoadOBJ is like LoadOBJ but panics on error.
func MustLoadOBJ(path string) *Mesh {
	mesh, err := LoadOBJ(path)
	if err != nil {
		panic(err)
	}
	return mesh
}
