package wavefront

import "github.com/go-gl/mathgl/mgl32"

// InterleavedStride is the number of floats per vertex in Mesh.Interleaved:
// position (x, y, z, w), normal (x, y, z), texture coordinates (u, v, w).
const InterleavedStride = 10

// Vec3 converts the point to an mgl32 vector.
func (p Point3D) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{p.X, p.Y, p.Z}
}

// Vec4 converts the point to an mgl32 vector.
func (p Point4D) Vec4() mgl32.Vec4 {
	return mgl32.Vec4{p.X, p.Y, p.Z, p.W}
}

// Vec3 converts the coordinates to an mgl32 vector (u, v, w).
func (t TextureCoordinates) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{t.U, t.V, t.W}
}

// Interleaved packs the finalized vertices into one float buffer with
// InterleavedStride floats per vertex, ready for a vertex buffer upload.
func (m *Mesh) Interleaved() []float32 {
	buf := make([]float32, 0, len(m.Vertices)*InterleavedStride)
	for _, v := range m.Vertices {
		pos := v.Position.Vec4()
		nrm := v.Normal.Vec3()
		uvw := v.TextureCoordinates.Vec3()
		buf = append(buf, pos[:]...)
		buf = append(buf, nrm[:]...)
		buf = append(buf, uvw[:]...)
	}
	return buf
}

// Bounds returns the axis-aligned bounding box of the finalized vertex
// positions. ok is false for a mesh without vertices.
func (m *Mesh) Bounds() (min, max mgl32.Vec3, ok bool) {
	if len(m.Vertices) == 0 {
		return mgl32.Vec3{}, mgl32.Vec3{}, false
	}

	min = m.Vertices[0].Position.Vec4().Vec3()
	max = min
	for _, v := range m.Vertices[1:] {
		p := v.Position.Vec4().Vec3()
		for i := 0; i < 3; i++ {
			if p[i] < min[i] {
				min[i] = p[i]
			}
			if p[i] > max[i] {
				max[i] = p[i]
			}
		}
	}
	return min, max, true
}

// Bounds returns the bounding box enclosing every mesh of the model.
func (m *Model) Bounds() (min, max mgl32.Vec3, ok bool) {
	for _, mesh := range m.Meshes {
		lo, hi, meshOK := mesh.Bounds()
		if !meshOK {
			continue
		}
		if !ok {
			min, max, ok = lo, hi, true
			continue
		}
		for i := 0; i < 3; i++ {
			if lo[i] < min[i] {
				min[i] = lo[i]
			}
			if hi[i] > max[i] {
				max[i] = hi[i]
			}
		}
	}
	return min, max, ok
}
