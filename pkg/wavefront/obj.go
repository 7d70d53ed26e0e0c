package wavefront

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// OBJ keywords. The trailing space is part of the keyword.
const (
	keywordGroup             = "g "
	keywordMaterialLibrary   = "mtllib "
	keywordObject            = "o "
	keywordFace              = "f "
	keywordTextureCoordinate = "vt "
	keywordUseMaterial       = "usemtl "
	keywordVertex            = "v "
	keywordVertexNormal      = "vn "
)

// defaultName is used for the object and group until the file names them.
const defaultName = "default"

// objState is the parser state carried from one OBJ line to the next.
type objState struct {
	model *Model

	// Index pools, addressed with 1-based indices from face lines.
	positions []Point4D
	normals   []Point3D
	texcoords []TextureCoordinates

	objectName  string
	groupName   string
	material    string
	materialSet bool

	// current is the open mesh, the last entry of model.Meshes.
	current *Mesh

	// libraries holds resolved mtllib paths already merged into the model.
	libraries map[string]bool
}

func newObjState() *objState {
	return &objState{
		model:      NewModel(),
		objectName: defaultName,
		groupName:  defaultName,
		libraries:  make(map[string]bool),
	}
}

// meshName returns the "object:group" key for new meshes.
func (s *objState) meshName() string {
	return s.objectName + ":" + s.groupName
}

// needsNewMesh reports whether the next face starts a mesh boundary.
func (s *objState) needsNewMesh() bool {
	return s.current == nil ||
		s.current.Name != s.meshName() ||
		s.current.Material != s.material
}

// openMesh finalizes the open mesh and starts a new one for the current key.
func (s *objState) openMesh() (*Mesh, error) {
	if err := s.finalizeCurrent(); err != nil {
		return nil, err
	}

	mesh := &Mesh{
		Name:        s.meshName(),
		Material:    s.material,
		MaterialSet: s.materialSet,
	}
	s.model.Meshes = append(s.model.Meshes, mesh)
	s.current = mesh
	return mesh, nil
}

func (s *objState) finalizeCurrent() error {
	if s.current == nil {
		return nil
	}
	return FinalizeVertices(s.current, s.positions, s.normals, s.texcoords)
}

// ParseObj parses an OBJ file and every material library it references.
// No model is returned when parsing fails.
func ParseObj(path string, opts ...Option) (*Model, error) {
	o := buildOptions(opts)

	lines, err := readSourceFile(path, o.charset)
	if err != nil {
		o.logf(LevelCritical, "%v", err)
		return nil, err
	}
	return o.parseObjLines(path, lines)
}

// ParseObjReader parses OBJ text from r. name is used in errors and as the
// base for relative mtllib paths.
func ParseObjReader(r io.Reader, name string, opts ...Option) (*Model, error) {
	o := buildOptions(opts)

	lines, err := readSource(r, o.charset)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return o.parseObjLines(name, lines)
}

func (o *options) parseObjLines(file string, lines []sourceLine) (*Model, error) {
	s := newObjState()
	dir := filepath.Dir(file)

	for _, line := range lines {
		if err := o.parseObjLine(s, file, dir, line); err != nil {
			o.logf(LevelCritical, "%v", err)
			return nil, err
		}
	}

	if err := s.finalizeCurrent(); err != nil {
		err = &ParseError{File: file, Err: err}
		o.logf(LevelCritical, "%v", err)
		return nil, err
	}

	s.model.updateTotals()
	o.logf(LevelInfo, "Parsed '%s': %d meshes, %d materials",
		file, s.model.TotalMeshes, s.model.TotalMaterials)
	return s.model, nil
}

// parseObjLine dispatches a single line on its keyword.
func (o *options) parseObjLine(s *objState, file, dir string, line sourceLine) error {
	text := line.Text
	tokens := Tokenize(text)

	fail := func(keyword string, err error) error {
		return &ParseError{File: file, Line: line.Number, Keyword: keyword, Err: err}
	}

	switch {
	case StartsWith(text, keywordGroup):
		if len(tokens) < 2 {
			return fail("g", arityError("a group name", len(tokens)-1))
		}
		s.groupName = tokens[1]
		o.logf(LevelDebug, "GROUP => %s", s.groupName)

	case StartsWith(text, keywordObject):
		if len(tokens) < 2 {
			return fail("o", arityError("an object name", len(tokens)-1))
		}
		s.objectName = tokens[1]
		o.logf(LevelDebug, "OBJECT => %s", s.objectName)

	case StartsWith(text, keywordFace):
		face, err := parseFace(tokens, len(s.positions), len(s.texcoords), len(s.normals))
		if err != nil {
			return fail("f", err)
		}

		if s.needsNewMesh() {
			if _, err := s.openMesh(); err != nil {
				return &ParseError{File: file, Err: err}
			}
			o.logf(LevelDebug, "NEW MESH => name: %s, material: %s", s.current.Name, s.current.Material)
		}

		s.current.Faces = append(s.current.Faces, face)
		o.logf(LevelDebug, "POLYGONAL FACE (%s) => %v", face.Type, face.Elements)

	case StartsWith(text, keywordVertex):
		p, err := parseVertex(tokens)
		if err != nil {
			return fail("v", err)
		}
		s.positions = append(s.positions, p)
		o.logf(LevelDebug, "VERTEX => X: %g | Y: %g | Z: %g | W: %g", p.X, p.Y, p.Z, p.W)

	case StartsWith(text, keywordVertexNormal):
		n, err := o.parseVertexNormal(tokens)
		if err != nil {
			return fail("vn", err)
		}
		s.normals = append(s.normals, n)
		o.logf(LevelDebug, "VERTEX NORMAL => X: %g | Y: %g | Z: %g", n.X, n.Y, n.Z)

	case StartsWith(text, keywordTextureCoordinate):
		tc, err := parseTextureCoordinate(tokens)
		if err != nil {
			return fail("vt", err)
		}
		s.texcoords = append(s.texcoords, tc)
		o.logf(LevelDebug, "TEXTURE COORDINATE => U: %g | V: %g | W: %g", tc.U, tc.V, tc.W)

	case StartsWith(text, keywordUseMaterial):
		if len(tokens) != 2 {
			return fail("usemtl", arityError("a material name", len(tokens)-1))
		}
		s.material = tokens[1]
		s.materialSet = true
		o.logf(LevelDebug, "USE MATERIAL => %s", s.material)

	case StartsWith(text, keywordMaterialLibrary):
		if len(tokens) < 2 {
			return fail("mtllib", arityError("at least 1 library", len(tokens)-1))
		}
		if err := o.loadLibraries(s, dir, tokens[1:]); err != nil {
			return fmt.Errorf("material library referenced from %s:%d: %w", file, line.Number, err)
		}

	default:
		o.logf(LevelDebug, "Unknown obj tag: '%s'", text)
	}

	return nil
}

// parseVertex parses "v x y z [w]".
func parseVertex(tokens []string) (Point4D, error) {
	if len(tokens) != 4 && len(tokens) != 5 {
		return Point4D{}, arityError("3 or 4 components", len(tokens)-1)
	}

	values, err := parseFloats(tokens[1:])
	if err != nil {
		return Point4D{}, err
	}

	p := NewPoint4D(values[0], values[1], values[2])
	if len(values) == 4 {
		p.W = values[3]
	}
	return p, nil
}

// parseVertexNormal parses "vn x y z". A fifth token is tolerated unless
// strict normals are enabled.
func (o *options) parseVertexNormal(tokens []string) (Point3D, error) {
	switch {
	case len(tokens) == 4:
	case len(tokens) == 5 && !o.strictNormals:
		o.logf(LevelDebug, "Ignoring extra vertex normal component '%s'", tokens[4])
	default:
		return Point3D{}, arityError("3 components", len(tokens)-1)
	}

	values, err := parseFloats(tokens[1:4])
	if err != nil {
		return Point3D{}, err
	}
	return Point3D{X: values[0], Y: values[1], Z: values[2]}, nil
}

// parseTextureCoordinate parses "vt u v w".
func parseTextureCoordinate(tokens []string) (TextureCoordinates, error) {
	if len(tokens) != 4 {
		return TextureCoordinates{}, arityError("3 components", len(tokens)-1)
	}

	values, err := parseFloats(tokens[1:])
	if err != nil {
		return TextureCoordinates{}, err
	}
	return TextureCoordinates{U: values[0], V: values[1], W: values[2]}, nil
}

// parseFace parses "f e1 e2 e3 ...". Negative indices are resolved against
// the pool sizes at this point of the file.
func parseFace(tokens []string, positions, texcoords, normals int) (PolygonalFace, error) {
	if len(tokens) < 4 {
		return PolygonalFace{}, arityError("at least 3 vertices", len(tokens)-1)
	}

	elements := make([]PolygonalFaceElement, 0, len(tokens)-1)
	for _, tok := range tokens[1:] {
		elem, err := parseFaceElement(tok, positions, texcoords, normals)
		if err != nil {
			return PolygonalFace{}, err
		}
		elements = append(elements, elem)
	}

	return PolygonalFace{
		Type:     faceTypeFor(len(elements)),
		Elements: elements,
	}, nil
}

// parseFaceElement parses one of "v", "v/vt", "v//vn" or "v/vt/vn".
// Missing parts stay Unset.
func parseFaceElement(tok string, positions, texcoords, normals int) (PolygonalFaceElement, error) {
	elem := PolygonalFaceElement{Vertex: Unset, Texture: Unset, Normal: Unset}

	parts := strings.Split(tok, "/")
	if len(parts) > 3 {
		return elem, fmt.Errorf("%w: malformed face element %q", ErrInvalidNumber, tok)
	}

	var err error
	if elem.Vertex, err = resolveIndex(parts[0], positions); err != nil {
		return elem, err
	}

	if len(parts) > 1 && parts[1] != "" {
		if elem.Texture, err = resolveIndex(parts[1], texcoords); err != nil {
			return elem, err
		}
	}

	if len(parts) > 2 && parts[2] != "" {
		if elem.Normal, err = resolveIndex(parts[2], normals); err != nil {
			return elem, err
		}
	}

	return elem, nil
}

// resolveIndex turns a 1-based or negative (relative) OBJ index into a
// 1-based index. Results below 1 become 0, which is never a valid index.
func resolveIndex(tok string, poolSize int) (int, error) {
	n, err := ParseInt(tok)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		n += poolSize + 1
		if n < 1 {
			n = 0
		}
	}
	return n, nil
}

// FinalizeVertices rebuilds mesh.Vertices with one vertex per face corner.
// A position index outside the pool is fatal; normal and texture indices
// outside their pools fall back to zero values.
func FinalizeVertices(mesh *Mesh, positions []Point4D, normals []Point3D, texcoords []TextureCoordinates) error {
	if mesh == nil {
		return fmt.Errorf("%w: nil mesh", ErrIndexOutOfRange)
	}

	corners := 0
	for _, face := range mesh.Faces {
		corners += len(face.Elements)
	}
	vertices := make([]Vertex, 0, corners)

	for fi, face := range mesh.Faces {
		for _, elem := range face.Elements {
			if !IntInRange(elem.Vertex, 1, len(positions)) {
				return fmt.Errorf("%w: mesh '%s' face %d: vertex %d not in [1, %d]",
					ErrIndexOutOfRange, mesh.Name, fi+1, elem.Vertex, len(positions))
			}

			v := Vertex{Position: positions[elem.Vertex-1]}
			if IntInRange(elem.Normal, 1, len(normals)) {
				v.Normal = normals[elem.Normal-1]
			}
			if IntInRange(elem.Texture, 1, len(texcoords)) {
				v.TextureCoordinates = texcoords[elem.Texture-1]
			}
			vertices = append(vertices, v)
		}
	}

	mesh.Vertices = vertices
	return nil
}

// loadLibraries parses each referenced material library once and merges its
// materials into the model. Missing libraries are skipped with a warning.
func (o *options) loadLibraries(s *objState, dir string, names []string) error {
	for _, name := range names {
		path, ok := o.resolveLibrary(dir, name)
		if !ok {
			o.logf(LevelWarning, "Materials library '%s' is missing/inaccessible", name)
			continue
		}
		if s.libraries[path] {
			o.logf(LevelDebug, "MATERIALS LIBRARY => %s (already loaded)", path)
			continue
		}
		s.libraries[path] = true

		materials, err := o.loadLibrary(path)
		if err != nil {
			return err
		}
		for matName, mat := range materials {
			s.model.Materials[matName] = mat.clone()
		}
		o.logf(LevelDebug, "MATERIALS LIBRARY => %s (%d materials)", path, len(materials))
	}
	return nil
}

func (o *options) loadLibrary(path string) (MaterialMap, error) {
	if o.cache != nil {
		if materials, ok := o.cache.Get(path); ok {
			return materials, nil
		}
	}

	materials, err := o.parseLibraryFile(path)
	if err != nil {
		return nil, err
	}

	if o.cache != nil {
		o.cache.Set(path, materials)
	}
	return materials, nil
}

// resolveLibrary finds the first accessible candidate for an mtllib entry.
func (o *options) resolveLibrary(dir, name string) (string, bool) {
	var candidates []string
	if o.relativeLibraries && !filepath.IsAbs(name) {
		candidates = append(candidates, filepath.Join(dir, name))
	}
	candidates = append(candidates, name)

	for _, path := range candidates {
		if FileAccessible(path) {
			return path, true
		}
	}
	return "", false
}

// FileAccessible reports whether path names a readable regular file.
func FileAccessible(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}

	f, err := os.Open(path)
	if err != nil {
		return false
	}
	f.Close()
	return true
}
