package main

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/wavefront/internal/config"
	"github.com/Faultbox/wavefront/internal/logger"
	"github.com/Faultbox/wavefront/pkg/wavefront"
)

// loadModels parses every path concurrently. Each file gets its own parser;
// material libraries are shared through one cache. Results keep the order
// of paths. The first failure cancels files that have not started yet.
func loadModels(ctx context.Context, cfg *config.Config, paths []string) ([]*wavefront.Model, *wavefront.LibraryCache, error) {
	cache := wavefront.NewLibraryCache()
	models := make([]*wavefront.Model, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	if cfg.Parser.Workers > 0 {
		g.SetLimit(cfg.Parser.Workers)
	}

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			opts := append(parserOptions(cfg, path), wavefront.WithLibraryCache(cache))
			model, err := wavefront.ParseObj(path, opts...)
			if err != nil {
				return err
			}
			models[i] = model
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	for i, model := range models {
		reportMissingMaterials(paths[i], model)
	}

	hits, misses := cache.Stats()
	logger.Info("models loaded", zap.Int("files", len(paths)))
	logger.Debug("material cache",
		zap.Int("libraries", cache.Len()),
		zap.Int("hits", hits),
		zap.Int("misses", misses))

	return models, cache, nil
}

// reportMissingMaterials warns about meshes whose usemtl names a material
// that none of the loaded libraries define.
func reportMissingMaterials(path string, model *wavefront.Model) {
	for _, mesh := range model.Meshes {
		if mesh.MaterialSet && model.MeshMaterial(mesh) == nil {
			logger.Warn("undefined material",
				zap.String("file", path),
				zap.String("mesh", mesh.Name),
				zap.String("material", mesh.Material))
		}
	}
}

// parserOptions builds the parser options for one file. Log lines carry the
// file name so output from parallel parses can be told apart.
func parserOptions(cfg *config.Config, path string) []wavefront.Option {
	opts := cfg.ParserOptions()
	return append(opts, wavefront.WithLogger(logger.Wavefront(zap.String("file", path))))
}
