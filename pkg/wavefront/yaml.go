package wavefront

import "gopkg.in/yaml.v3"

// materialDocument is the YAML shape of a Material. Unset attributes are
// omitted rather than written as zero values.
type materialDocument struct {
	Name                string            `yaml:"name"`
	AmbientColor        *RGB              `yaml:"ambient_color,omitempty"`
	DiffuseColor        *RGB              `yaml:"diffuse_color,omitempty"`
	EmissiveColor       *RGB              `yaml:"emissive_color,omitempty"`
	SpecularColor       *RGB              `yaml:"specular_color,omitempty"`
	SpecularExponent    *float32          `yaml:"specular_exponent,omitempty"`
	IlluminationModel   *int              `yaml:"illumination_model,omitempty"`
	OpticalDensity      *float32          `yaml:"optical_density,omitempty"`
	TransparentDissolve *float32          `yaml:"transparent_dissolve,omitempty"`
	TextureMaps         map[string]string `yaml:"texture_maps,omitempty"`
}

type meshDocument struct {
	Name      string         `yaml:"name"`
	Material  string         `yaml:"material,omitempty"`
	Faces     int            `yaml:"faces"`
	Vertices  int            `yaml:"vertices"`
	FaceTypes map[string]int `yaml:"face_types"`
}

type modelDocument struct {
	Meshes    []meshDocument       `yaml:"meshes"`
	Materials map[string]*Material `yaml:"materials,omitempty"`
}

func ptrIfSet[T any](o optional[T]) *T {
	if !o.set {
		return nil
	}
	v := o.value
	return &v
}

// MarshalYAML implements yaml.Marshaler.
func (m *Material) MarshalYAML() (interface{}, error) {
	doc := materialDocument{
		Name:                m.name,
		AmbientColor:        ptrIfSet(m.ambientColor),
		DiffuseColor:        ptrIfSet(m.diffuseColor),
		EmissiveColor:       ptrIfSet(m.emissiveColor),
		SpecularColor:       ptrIfSet(m.specularColor),
		SpecularExponent:    ptrIfSet(m.specularExponent),
		IlluminationModel:   ptrIfSet(m.illuminationModel),
		OpticalDensity:      ptrIfSet(m.opticalDensity),
		TransparentDissolve: ptrIfSet(m.transparentDissolve),
	}
	if maps := m.TextureMaps(); len(maps) > 0 {
		doc.TextureMaps = maps
	}
	return doc, nil
}

// MarshalYAML implements yaml.Marshaler. Meshes are summarized; vertex
// data is left out.
func (m *Model) MarshalYAML() (interface{}, error) {
	doc := modelDocument{
		Meshes:    make([]meshDocument, 0, len(m.Meshes)),
		Materials: m.Materials,
	}
	for _, mesh := range m.Meshes {
		md := meshDocument{
			Name:      mesh.Name,
			Material:  mesh.Material,
			Faces:     len(mesh.Faces),
			Vertices:  len(mesh.Vertices),
			FaceTypes: make(map[string]int),
		}
		for _, face := range mesh.Faces {
			md.FaceTypes[face.Type.String()]++
		}
		doc.Meshes = append(doc.Meshes, md)
	}
	return doc, nil
}

// MarshalModel renders a model summary as YAML.
func MarshalModel(m *Model) ([]byte, error) {
	return yaml.Marshal(m)
}
