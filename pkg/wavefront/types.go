// Package wavefront loads Wavefront OBJ geometry and MTL material libraries
// into a render-ready Model.
package wavefront

import "fmt"

// Unset marks a face element index that was absent from the source line.
const Unset = -1

// Point3D is a 3D point or direction.
type Point3D struct {
	X, Y, Z float32
}

// Point4D is a homogeneous point. W defaults to 1.
type Point4D struct {
	X, Y, Z, W float32
}

// NewPoint4D returns the point (x, y, z, 1).
func NewPoint4D(x, y, z float32) Point4D {
	return Point4D{X: x, Y: y, Z: z, W: 1}
}

// TextureCoordinates holds u, v and the optional depth w (default 0).
type TextureCoordinates struct {
	U, V, W float32
}

// RGB is a colour with float components.
type RGB struct {
	Red, Green, Blue float32
}

// FaceType classifies a polygonal face by its element count.
type FaceType int

// Face types.
const (
	FaceTriangle FaceType = iota // 3 elements
	FaceQuad                     // 4 elements
	FaceNGon                     // 5 or more elements
)

// String returns a human-readable face type name.
func (t FaceType) String() string {
	switch t {
	case FaceTriangle:
		return "Triangle"
	case FaceQuad:
		return "Quad"
	case FaceNGon:
		return "N-Gon"
	default:
		return fmt.Sprintf("Unknown(%d)", int(t))
	}
}

// faceTypeFor derives the face type from the number of elements.
func faceTypeFor(elements int) FaceType {
	switch elements {
	case 3:
		return FaceTriangle
	case 4:
		return FaceQuad
	default:
		return FaceNGon
	}
}

// PolygonalFaceElement references one face corner. Each index is 1-based
// into its pool, or Unset.
type PolygonalFaceElement struct {
	Vertex  int
	Texture int
	Normal  int
}

// String formats the element the way it appears in OBJ ("v/vt/vn").
func (e PolygonalFaceElement) String() string {
	return fmt.Sprintf("%d/%d/%d", e.Vertex, e.Texture, e.Normal)
}

// PolygonalFace is a face record. N-gons are kept as-is, never triangulated.
type PolygonalFace struct {
	Type     FaceType
	Elements []PolygonalFaceElement
}

// Vertex is a resolved face corner. Vertices are never shared between faces.
type Vertex struct {
	Position           Point4D
	Normal             Point3D
	TextureCoordinates TextureCoordinates
}

// Mesh is a run of faces sharing one "object:group" name and material.
type Mesh struct {
	Name        string
	Material    string
	MaterialSet bool
	Faces       []PolygonalFace
	Vertices    []Vertex
}

// FaceCount returns the number of faces in the mesh.
func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of finalized vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// MaterialMap maps material names to materials.
type MaterialMap map[string]*Material

// Model is a parsed OBJ file.
type Model struct {
	Meshes         []*Mesh
	TotalMeshes    int
	Materials      MaterialMap
	TotalMaterials int
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{Materials: make(MaterialMap)}
}

// Material returns the named material, or nil if the model does not define it.
func (m *Model) Material(name string) *Material {
	return m.Materials[name]
}

// MeshMaterial returns the material used by mesh, or nil when the mesh has no
// material or its library was never loaded.
func (m *Model) MeshMaterial(mesh *Mesh) *Material {
	if !mesh.MaterialSet {
		return nil
	}
	return m.Materials[mesh.Material]
}

// updateTotals syncs the cached counts with the collections.
func (m *Model) updateTotals() {
	m.TotalMeshes = len(m.Meshes)
	m.TotalMaterials = len(m.Materials)
}
