package wavefront

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestMesh_Interleaved(t *testing.T) {
	mesh := &Mesh{
		Vertices: []Vertex{
			{
				Position:           Point4D{1, 2, 3, 1},
				Normal:             Point3D{0, 0, 1},
				TextureCoordinates: TextureCoordinates{0.5, 0.25, 0},
			},
			{Position: NewPoint4D(4, 5, 6)},
		},
	}

	buf := mesh.Interleaved()
	if len(buf) != 2*InterleavedStride {
		t.Fatalf("expected %d floats, got %d", 2*InterleavedStride, len(buf))
	}

	expected := []float32{1, 2, 3, 1, 0, 0, 1, 0.5, 0.25, 0}
	for i, v := range expected {
		if buf[i] != v {
			t.Errorf("buf[%d] = %v, expected %v", i, buf[i], v)
		}
	}
	if buf[InterleavedStride] != 4 || buf[InterleavedStride+3] != 1 {
		t.Errorf("unexpected second vertex: %v", buf[InterleavedStride:])
	}
}

func TestMesh_Bounds(t *testing.T) {
	model := mustParseObj(t, "v -1 0 2\nv 3 -4 0\nv 0 5 -6\nf 1 2 3\n")

	min, max, ok := model.Meshes[0].Bounds()
	if !ok {
		t.Fatal("expected bounds for non-empty mesh")
	}
	if min != (mgl32.Vec3{-1, -4, -6}) {
		t.Errorf("expected min (-1,-4,-6), got %v", min)
	}
	if max != (mgl32.Vec3{3, 5, 2}) {
		t.Errorf("expected max (3,5,2), got %v", max)
	}

	if _, _, ok := (&Mesh{}).Bounds(); ok {
		t.Error("expected no bounds for empty mesh")
	}
}

func TestModel_Bounds(t *testing.T) {
	model := mustParseObj(t, "v 0 0 0\nv 1 1 1\nv 2 0 0\nv -3 0 9\nf 1 2 3\nusemtl M\nf 1 3 4\n")

	if len(model.Meshes) != 2 {
		t.Fatalf("expected 2 meshes, got %d", len(model.Meshes))
	}

	min, max, ok := model.Bounds()
	if !ok {
		t.Fatal("expected model bounds")
	}
	if min != (mgl32.Vec3{-3, 0, 0}) || max != (mgl32.Vec3{2, 1, 9}) {
		t.Errorf("unexpected bounds %v - %v", min, max)
	}

	if _, _, ok := NewModel().Bounds(); ok {
		t.Error("expected no bounds for empty model")
	}
}

func TestPointConversions(t *testing.T) {
	if (Point3D{1, 2, 3}).Vec3() != (mgl32.Vec3{1, 2, 3}) {
		t.Error("Point3D.Vec3 mismatch")
	}
	if NewPoint4D(1, 2, 3).Vec4() != (mgl32.Vec4{1, 2, 3, 1}) {
		t.Error("Point4D.Vec4 mismatch")
	}
	if (TextureCoordinates{0.1, 0.2, 0.3}).Vec3() != (mgl32.Vec3{0.1, 0.2, 0.3}) {
		t.Error("TextureCoordinates.Vec3 mismatch")
	}
}
