package wavefront

// Value limits enforced by the MTL parser.
const (
	DissolveMin          = 0.0
	DissolveMax          = 1.0
	OpticalDensityMin    = 0.001
	OpticalDensityMax    = 10.0
	IlluminationModelMin = 0
	IlluminationModelMax = 10
)

// Material holds the shading parameters of one "newmtl" block.
// Every attribute remembers whether its tag was seen; getters report false
// for attributes the library never set.
type Material struct {
	name string

	ambientColor  optional[RGB]
	diffuseColor  optional[RGB]
	emissiveColor optional[RGB]
	specularColor optional[RGB]

	specularExponent    optional[float32]
	illuminationModel   optional[int]
	opticalDensity      optional[float32]
	transparentDissolve optional[float32]

	ambientTextureMap          optional[string]
	diffuseTextureMap          optional[string]
	specularColorTextureMap    optional[string]
	specularHighlightComponent optional[string]
	alphaTextureMap            optional[string]
	bumpMap                    optional[string]
	displacementMap            optional[string]
	stencilDecalTexture        optional[string]
}

type optional[T any] struct {
	value T
	set   bool
}

func (o *optional[T]) put(v T) {
	o.value = v
	o.set = true
}

func (o optional[T]) get() (T, bool) {
	return o.value, o.set
}

// NewMaterial returns a material with no attributes set.
func NewMaterial(name string) *Material {
	return &Material{name: name}
}

// clone returns a copy that shares no state with m.
func (m *Material) clone() *Material {
	c := *m
	return &c
}

// Name returns the material name.
func (m *Material) Name() string { return m.name }

// SetAmbientColor sets Ka.
func (m *Material) SetAmbientColor(c RGB) { m.ambientColor.put(c) }

// AmbientColor returns Ka.
func (m *Material) AmbientColor() (RGB, bool) { return m.ambientColor.get() }

// SetDiffuseColor sets Kd.
func (m *Material) SetDiffuseColor(c RGB) { m.diffuseColor.put(c) }

// DiffuseColor returns Kd.
func (m *Material) DiffuseColor() (RGB, bool) { return m.diffuseColor.get() }

// SetEmissiveColor sets Ke.
func (m *Material) SetEmissiveColor(c RGB) { m.emissiveColor.put(c) }

// EmissiveColor returns Ke.
func (m *Material) EmissiveColor() (RGB, bool) { return m.emissiveColor.get() }

// SetSpecularColor sets Ks.
func (m *Material) SetSpecularColor(c RGB) { m.specularColor.put(c) }

// SpecularColor returns Ks.
func (m *Material) SpecularColor() (RGB, bool) { return m.specularColor.get() }

// SetSpecularExponent sets Ns.
func (m *Material) SetSpecularExponent(v float32) { m.specularExponent.put(v) }

// SpecularExponent returns Ns.
func (m *Material) SpecularExponent() (float32, bool) { return m.specularExponent.get() }

// SetIlluminationModel sets illum.
func (m *Material) SetIlluminationModel(v int) { m.illuminationModel.put(v) }

// IlluminationModel returns illum.
func (m *Material) IlluminationModel() (int, bool) { return m.illuminationModel.get() }

// SetOpticalDensity sets Ni.
func (m *Material) SetOpticalDensity(v float32) { m.opticalDensity.put(v) }

// OpticalDensity returns Ni.
func (m *Material) OpticalDensity() (float32, bool) { return m.opticalDensity.get() }

// SetTransparentDissolve sets d.
func (m *Material) SetTransparentDissolve(v float32) { m.transparentDissolve.put(v) }

// TransparentDissolve returns d.
func (m *Material) TransparentDissolve() (float32, bool) { return m.transparentDissolve.get() }

// SetAmbientTextureMap sets map_Ka.
func (m *Material) SetAmbientTextureMap(p string) { m.ambientTextureMap.put(p) }

// AmbientTextureMap returns map_Ka.
func (m *Material) AmbientTextureMap() (string, bool) { return m.ambientTextureMap.get() }

// SetDiffuseTextureMap sets map_Kd.
func (m *Material) SetDiffuseTextureMap(p string) { m.diffuseTextureMap.put(p) }

// DiffuseTextureMap returns map_Kd.
func (m *Material) DiffuseTextureMap() (string, bool) { return m.diffuseTextureMap.get() }

// SetSpecularColorTextureMap sets map_Ks.
func (m *Material) SetSpecularColorTextureMap(p string) { m.specularColorTextureMap.put(p) }

// SpecularColorTextureMap returns map_Ks.
func (m *Material) SpecularColorTextureMap() (string, bool) {
	return m.specularColorTextureMap.get()
}

// SetSpecularHighlightComponent sets map_Ns.
func (m *Material) SetSpecularHighlightComponent(p string) {
	m.specularHighlightComponent.put(p)
}

// SpecularHighlightComponent returns map_Ns.
func (m *Material) SpecularHighlightComponent() (string, bool) {
	return m.specularHighlightComponent.get()
}

// SetAlphaTextureMap sets map_d.
func (m *Material) SetAlphaTextureMap(p string) { m.alphaTextureMap.put(p) }

// AlphaTextureMap returns map_d.
func (m *Material) AlphaTextureMap() (string, bool) { return m.alphaTextureMap.get() }

// SetBumpMap sets map_bump (or bump).
func (m *Material) SetBumpMap(p string) { m.bumpMap.put(p) }

// BumpMap returns map_bump.
func (m *Material) BumpMap() (string, bool) { return m.bumpMap.get() }

// SetDisplacementMap sets disp.
func (m *Material) SetDisplacementMap(p string) { m.displacementMap.put(p) }

// DisplacementMap returns disp.
func (m *Material) DisplacementMap() (string, bool) { return m.displacementMap.get() }

// SetStencilDecalTexture sets decal.
func (m *Material) SetStencilDecalTexture(p string) { m.stencilDecalTexture.put(p) }

// StencilDecalTexture returns decal.
func (m *Material) StencilDecalTexture() (string, bool) { return m.stencilDecalTexture.get() }

// TextureMaps returns every texture path the material references, keyed by
// its MTL tag.
func (m *Material) TextureMaps() map[string]string {
	maps := make(map[string]string)
	for _, t := range []struct {
		tag string
		opt optional[string]
	}{
		{"map_Ka", m.ambientTextureMap},
		{"map_Kd", m.diffuseTextureMap},
		{"map_Ks", m.specularColorTextureMap},
		{"map_Ns", m.specularHighlightComponent},
		{"map_d", m.alphaTextureMap},
		{"map_bump", m.bumpMap},
		{"disp", m.displacementMap},
		{"decal", m.stencilDecalTexture},
	} {
		if p, ok := t.opt.get(); ok {
			maps[t.tag] = p
		}
	}
	return maps
}
