package wavefront

import (
	"fmt"
	"io"
)

// MTL keywords. The trailing space is part of the keyword.
const (
	keywordNewMaterial         = "newmtl "
	keywordAmbient             = "Ka "
	keywordDiffuse             = "Kd "
	keywordEmissive            = "Ke "
	keywordSpecular            = "Ks "
	keywordSpecularExponent    = "Ns "
	keywordTransparentDissolve = "d "
	keywordOpticalDensity      = "Ni "
	keywordIlluminationModel   = "illum "

	keywordAmbientTextureMap          = "map_Ka "
	keywordDiffuseTextureMap          = "map_Kd "
	keywordSpecularColorTextureMap    = "map_Ks "
	keywordSpecularHighlightComponent = "map_Ns "
	keywordAlphaTextureMap            = "map_d "
	keywordMapBump                    = "map_bump "
	keywordBump                       = "bump "
	keywordDisplacementMap            = "disp "
	keywordStencilDecalTexture        = "decal "
)

// materialTag applies one MTL property line to the current material.
type materialTag struct {
	keywords []string
	label    string
	apply    func(m *Material, tokens []string) (string, error)
}

// materialTags lists every property tag. Texture map tags come first so
// no shorter keyword can shadow them.
var materialTags = []materialTag{
	{[]string{keywordAmbientTextureMap}, "AMBIENT TEXTURE MAP", textureTag((*Material).SetAmbientTextureMap)},
	{[]string{keywordDiffuseTextureMap}, "DIFFUSE TEXTURE MAP", textureTag((*Material).SetDiffuseTextureMap)},
	{[]string{keywordSpecularColorTextureMap}, "SPECULAR COLOUR TEXTURE MAP", textureTag((*Material).SetSpecularColorTextureMap)},
	{[]string{keywordSpecularHighlightComponent}, "SPECULAR HIGHLIGHT COMPONENT", textureTag((*Material).SetSpecularHighlightComponent)},
	{[]string{keywordAlphaTextureMap}, "ALPHA TEXTURE MAP", textureTag((*Material).SetAlphaTextureMap)},
	{[]string{keywordMapBump, keywordBump}, "BUMP MAP", textureTag((*Material).SetBumpMap)},
	{[]string{keywordDisplacementMap}, "DISPLACEMENT MAP", textureTag((*Material).SetDisplacementMap)},
	{[]string{keywordStencilDecalTexture}, "STENCIL DECAL TEXTURE", textureTag((*Material).SetStencilDecalTexture)},

	{[]string{keywordAmbient}, "AMBIENT COLOUR", colorTag((*Material).SetAmbientColor, (*Material).AmbientColor)},
	{[]string{keywordDiffuse}, "DIFFUSE COLOUR", colorTag((*Material).SetDiffuseColor, (*Material).DiffuseColor)},
	{[]string{keywordEmissive}, "EMISSIVE COLOUR", colorTag((*Material).SetEmissiveColor, (*Material).EmissiveColor)},
	{[]string{keywordSpecular}, "SPECULAR COLOUR", colorTag((*Material).SetSpecularColor, (*Material).SpecularColor)},

	{[]string{keywordSpecularExponent}, "SPECULAR EXPONENT", applySpecularExponent},
	{[]string{keywordTransparentDissolve}, "TRANSPARENT DISSOLVE", applyTransparentDissolve},
	{[]string{keywordOpticalDensity}, "OPTICAL DENSITY", applyOpticalDensity},
	{[]string{keywordIlluminationModel}, "ILLUMINATION MODEL", applyIlluminationModel},
}

// match returns the keyword of t that line starts with.
func (t *materialTag) match(line string) (string, bool) {
	for _, kw := range t.keywords {
		if StartsWith(line, kw) {
			return kw, true
		}
	}
	return "", false
}

// ParseLibrary parses an MTL file into a name to material mapping.
func ParseLibrary(path string, opts ...Option) (MaterialMap, error) {
	o := buildOptions(opts)
	return o.parseLibraryFile(path)
}

// ParseLibraryReader parses MTL text from r. name is used in errors.
func ParseLibraryReader(r io.Reader, name string, opts ...Option) (MaterialMap, error) {
	o := buildOptions(opts)

	lines, err := readSource(r, o.charset)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return o.parseLibraryLines(name, lines)
}

func (o *options) parseLibraryFile(path string) (MaterialMap, error) {
	lines, err := readSourceFile(path, o.charset)
	if err != nil {
		o.logf(LevelCritical, "%v", err)
		return nil, err
	}
	return o.parseLibraryLines(path, lines)
}

// parseLibraryLines runs the MTL state machine. Any error rejects the whole
// library.
func (o *options) parseLibraryLines(file string, lines []sourceLine) (MaterialMap, error) {
	materials := make(MaterialMap)
	var current *Material

	fail := func(line sourceLine, keyword string, err error) (MaterialMap, error) {
		perr := &ParseError{File: file, Line: line.Number, Keyword: keyword, Err: err}
		o.logf(LevelCritical, "%v", perr)
		return nil, perr
	}

	for _, line := range lines {
		tokens := Tokenize(line.Text)

		if StartsWith(line.Text, keywordNewMaterial) {
			if len(tokens) != 2 {
				return fail(line, "newmtl", arityError("a material name", len(tokens)-1))
			}

			current = NewMaterial(tokens[1])
			materials[current.name] = current
			o.logf(LevelDebug, "NEW MATERIAL => %s", current.name)
			continue
		}

		tag, keyword := findMaterialTag(line.Text)
		if tag == nil {
			// Not necessarily invalid, the tag may just be unsupported.
			o.logf(LevelDebug, "Unknown material tag '%s'", line.Text)
			continue
		}

		if current == nil {
			return fail(line, keyword, fmt.Errorf("%w: '%s' before any newmtl", ErrMisorderedKeyword, keyword))
		}

		echo, err := tag.apply(current, tokens)
		if err != nil {
			return fail(line, keyword, err)
		}
		o.logf(LevelDebug, "MATERIAL|%s => %s", tag.label, echo)
	}

	return materials, nil
}

func findMaterialTag(line string) (*materialTag, string) {
	for i := range materialTags {
		if kw, ok := materialTags[i].match(line); ok {
			return &materialTags[i], trimKeyword(kw)
		}
	}
	return nil, ""
}

func trimKeyword(kw string) string {
	return kw[:len(kw)-1]
}

// singleValue checks a "<keyword> <value>" line and returns the value.
func singleValue(tokens []string) (string, error) {
	if len(tokens) != 2 {
		return "", arityError("1 value", len(tokens)-1)
	}
	return tokens[1], nil
}

func textureTag(set func(*Material, string)) func(*Material, []string) (string, error) {
	return func(m *Material, tokens []string) (string, error) {
		path, err := singleValue(tokens)
		if err != nil {
			return "", err
		}
		set(m, path)
		return path, nil
	}
}

func colorTag(set func(*Material, RGB), get func(*Material) (RGB, bool)) func(*Material, []string) (string, error) {
	return func(m *Material, tokens []string) (string, error) {
		if len(tokens) != 4 {
			return "", arityError("3 colour components", len(tokens)-1)
		}

		values, err := parseFloats(tokens[1:])
		if err != nil {
			return "", err
		}
		set(m, RGB{Red: values[0], Green: values[1], Blue: values[2]})

		c, _ := get(m)
		return fmt.Sprintf("R: %g G: %g B: %g", c.Red, c.Green, c.Blue), nil
	}
}

func applySpecularExponent(m *Material, tokens []string) (string, error) {
	tok, err := singleValue(tokens)
	if err != nil {
		return "", err
	}
	v, err := ParseFloat(tok)
	if err != nil {
		return "", err
	}
	m.SetSpecularExponent(v)
	return fmt.Sprintf("%g", v), nil
}

func applyTransparentDissolve(m *Material, tokens []string) (string, error) {
	v, err := boundedFloat(tokens, DissolveMin, DissolveMax)
	if err != nil {
		return "", err
	}
	m.SetTransparentDissolve(v)
	d, _ := m.TransparentDissolve()
	return fmt.Sprintf("%g", d), nil
}

func applyOpticalDensity(m *Material, tokens []string) (string, error) {
	v, err := boundedFloat(tokens, OpticalDensityMin, OpticalDensityMax)
	if err != nil {
		return "", err
	}
	m.SetOpticalDensity(v)
	d, _ := m.OpticalDensity()
	return fmt.Sprintf("%g", d), nil
}

func applyIlluminationModel(m *Material, tokens []string) (string, error) {
	tok, err := singleValue(tokens)
	if err != nil {
		return "", err
	}
	v, err := ParseInt(tok)
	if err != nil {
		return "", err
	}
	if !IntInRange(v, IlluminationModelMin, IlluminationModelMax) {
		return "", fmt.Errorf("%w: %d not in [%d, %d]", ErrValueOutOfRange, v, IlluminationModelMin, IlluminationModelMax)
	}
	m.SetIlluminationModel(v)
	model, _ := m.IlluminationModel()
	return fmt.Sprintf("%d", model), nil
}

func boundedFloat(tokens []string, min, max float32) (float32, error) {
	tok, err := singleValue(tokens)
	if err != nil {
		return 0, err
	}
	v, err := ParseFloat(tok)
	if err != nil {
		return 0, err
	}
	if !FloatInRange(v, min, max) {
		return 0, fmt.Errorf("%w: %g not in [%g, %g]", ErrValueOutOfRange, v, min, max)
	}
	return v, nil
}
