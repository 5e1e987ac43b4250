package glbuffer

import (
	"testing"

	"github.com/netisu/orrery"
)

func TestUploadEmptyMesh(t *testing.T) {
	// an empty buffer never reaches GL, so no context is needed
	m, err := orrery.NewMesh(nil, Uploader{})
	if err != nil {
		t.Fatalf("empty mesh: %v", err)
	}
	if m.Handle() != 0 {
		t.Fatalf("handle = %d, want 0", m.Handle())
	}
	if err := m.Release(); err != nil {
		t.Fatalf("release: %v", err)
	}
}
