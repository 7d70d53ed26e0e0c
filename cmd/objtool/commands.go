package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/wavefront/internal/config"
	"github.com/Faultbox/wavefront/pkg/wavefront"
)

var errUsage = errors.New("invalid arguments")

// modelSummary is the info report for one OBJ file.
type modelSummary struct {
	File      string         `yaml:"file"`
	Meshes    int            `yaml:"meshes"`
	Materials int            `yaml:"materials"`
	Faces     int            `yaml:"faces"`
	Vertices  int            `yaml:"vertices"`
	FaceTypes map[string]int `yaml:"face_types"`
	Min       []float32      `yaml:"min,flow,omitempty"`
	Max       []float32      `yaml:"max,flow,omitempty"`
}

func summarize(path string, model *wavefront.Model) modelSummary {
	s := modelSummary{
		File:      path,
		Meshes:    model.TotalMeshes,
		Materials: model.TotalMaterials,
		FaceTypes: make(map[string]int),
	}
	for _, mesh := range model.Meshes {
		s.Faces += mesh.FaceCount()
		s.Vertices += mesh.VertexCount()
		for _, face := range mesh.Faces {
			s.FaceTypes[face.Type.String()]++
		}
	}
	if min, max, ok := model.Bounds(); ok {
		s.Min = min[:]
		s.Max = max[:]
	}
	return s
}

func cmdInfo(cfg *config.Config, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 1 {
		return fmt.Errorf("%w: usage: objtool info <file.obj>...", errUsage)
	}

	paths := fs.Args()
	models, _, err := loadModels(context.Background(), cfg, paths)
	if err != nil {
		return err
	}

	summaries := make([]modelSummary, len(models))
	for i, model := range models {
		summaries[i] = summarize(paths[i], model)
	}

	if cfg.Output.Format == config.FormatYAML {
		return writeYAML(w, summaries)
	}

	for i, s := range summaries {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "Model:     %s\n", s.File)
		fmt.Fprintf(w, "Meshes:    %d\n", s.Meshes)
		fmt.Fprintf(w, "Materials: %d\n", s.Materials)
		fmt.Fprintf(w, "Faces:     %d (%s)\n", s.Faces, formatFaceTypes(s.FaceTypes))
		fmt.Fprintf(w, "Vertices:  %d\n", s.Vertices)
		if s.Min != nil {
			fmt.Fprintf(w, "Bounds:    %s - %s\n", formatVec(s.Min), formatVec(s.Max))
		}
	}
	return nil
}

func cmdMeshes(cfg *config.Config, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("meshes", flag.ContinueOnError)
	limit := fs.Int("n", 0, "Limit output to N meshes (0 = all)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 1 {
		return fmt.Errorf("%w: usage: objtool meshes <file.obj>", errUsage)
	}

	model, err := wavefront.ParseObj(fs.Arg(0), parserOptions(cfg, fs.Arg(0))...)
	if err != nil {
		return err
	}

	meshes := model.Meshes
	if *limit > 0 && len(meshes) > *limit {
		meshes = meshes[:*limit]
	}

	if cfg.Output.Format == config.FormatYAML {
		docs := make([]map[string]any, 0, len(meshes))
		for _, mesh := range meshes {
			docs = append(docs, map[string]any{
				"name":     mesh.Name,
				"material": materialLabel(model, mesh),
				"faces":    mesh.FaceCount(),
				"vertices": mesh.VertexCount(),
			})
		}
		return writeYAML(w, docs)
	}

	fmt.Fprintf(w, "%-30s %-20s %8s %8s\n", "MESH", "MATERIAL", "FACES", "VERTICES")
	for _, mesh := range meshes {
		fmt.Fprintf(w, "%-30s %-20s %8d %8d\n",
			mesh.Name, materialLabel(model, mesh), mesh.FaceCount(), mesh.VertexCount())
	}
	return nil
}

// materialLabel describes the material a mesh uses.
func materialLabel(model *wavefront.Model, mesh *wavefront.Mesh) string {
	switch {
	case !mesh.MaterialSet:
		return "-"
	case model.Material(mesh.Material) == nil:
		return mesh.Material + " (missing)"
	default:
		return mesh.Material
	}
}

func cmdMaterials(cfg *config.Config, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("materials", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 1 {
		return fmt.Errorf("%w: usage: objtool materials <file.mtl>", errUsage)
	}

	materials, err := wavefront.ParseLibrary(fs.Arg(0), parserOptions(cfg, fs.Arg(0))...)
	if err != nil {
		return err
	}

	if cfg.Output.Format == config.FormatYAML {
		return writeYAML(w, materials)
	}

	names := make([]string, 0, len(materials))
	for name := range materials {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		if i > 0 {
			fmt.Fprintln(w)
		}
		writeMaterial(w, materials[name])
	}
	fmt.Fprintf(w, "\n(%d materials)\n", len(names))
	return nil
}

func writeMaterial(w io.Writer, m *wavefront.Material) {
	fmt.Fprintf(w, "%s\n", m.Name())

	colors := []struct {
		label string
		get   func() (wavefront.RGB, bool)
	}{
		{"ambient", m.AmbientColor},
		{"diffuse", m.DiffuseColor},
		{"emissive", m.EmissiveColor},
		{"specular", m.SpecularColor},
	}
	for _, c := range colors {
		if rgb, ok := c.get(); ok {
			fmt.Fprintf(w, "  %-18s %g %g %g\n", c.label, rgb.Red, rgb.Green, rgb.Blue)
		}
	}

	if v, ok := m.SpecularExponent(); ok {
		fmt.Fprintf(w, "  %-18s %g\n", "specular exponent", v)
	}
	if v, ok := m.IlluminationModel(); ok {
		fmt.Fprintf(w, "  %-18s %d\n", "illumination", v)
	}
	if v, ok := m.OpticalDensity(); ok {
		fmt.Fprintf(w, "  %-18s %g\n", "optical density", v)
	}
	if v, ok := m.TransparentDissolve(); ok {
		fmt.Fprintf(w, "  %-18s %g\n", "dissolve", v)
	}

	maps := m.TextureMaps()
	tags := make([]string, 0, len(maps))
	for tag := range maps {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	for _, tag := range tags {
		fmt.Fprintf(w, "  %-18s %s\n", tag, maps[tag])
	}
}

func cmdDump(cfg *config.Config, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("dump", flag.ContinueOnError)
	meshName := fs.String("mesh", "", "Print the interleaved vertex buffer of one mesh")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 1 {
		return fmt.Errorf("%w: usage: objtool dump [-mesh name] <file.obj>", errUsage)
	}

	model, err := wavefront.ParseObj(fs.Arg(0), parserOptions(cfg, fs.Arg(0))...)
	if err != nil {
		return err
	}

	if *meshName == "" {
		data, err := wavefront.MarshalModel(model)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}

	for _, mesh := range model.Meshes {
		if mesh.Name != *meshName {
			continue
		}
		buf := mesh.Interleaved()
		for i := 0; i < len(buf); i += wavefront.InterleavedStride {
			v := buf[i : i+wavefront.InterleavedStride]
			fmt.Fprintf(w, "%g %g %g %g | %g %g %g | %g %g %g\n",
				v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7], v[8], v[9])
		}
		return nil
	}
	return fmt.Errorf("mesh %q not found in %s", *meshName, fs.Arg(0))
}

func cmdConfig(cfg *config.Config, args []string, w io.Writer) error {
	if len(args) > 0 {
		if err := cfg.SaveTo(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(w, "Config written to %s\n", args[0])
		return nil
	}

	path, err := cfg.Save()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Config written to %s\n", path)
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func formatFaceTypes(counts map[string]int) string {
	var parts []string
	for _, t := range []wavefront.FaceType{wavefront.FaceTriangle, wavefront.FaceQuad, wavefront.FaceNGon} {
		if n := counts[t.String()]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", strings.ToLower(t.String()), n))
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}

func formatVec(v []float32) string {
	return fmt.Sprintf("(%g, %g, %g)", v[0], v[1], v[2])
}
