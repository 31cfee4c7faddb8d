// Package loader decodes the planet textures from disk into RGBA staging data.
//
// Files are memory-mapped, decoded with the TIFF reader or the registered image codecs (JPEG, PNG,
// TGA, WebP), optionally downscaled and cached by path. LoadAll loads a set of independent assets
// concurrently and joins on the first failure.
package loader

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/sync/errgroup"

	"github.com/Carmen-Shannon/oxy-planet/common"
	"github.com/Carmen-Shannon/oxy-planet/engine/renderer"
)

// ErrNoAssets is returned by LoadAll when it is given nothing to load.
var ErrNoAssets = errors.New("loader: no assets")

// Asset names one texture file and the slot it feeds.
type Asset struct {
	Slot renderer.Slot
	Path string

	// Optional assets are skipped with a warning when they fail to load; the renderer substitutes
	// a placeholder.
	Optional bool
}

// loader is the implementation of the Loader interface.
type loader struct {
	logger      *slog.Logger
	cache       *lru.Cache
	cacheSize   int
	maxTexture  int
	concurrency int
}

// Loader decodes texture files into common.TextureStagingData.
// It is safe for concurrent use.
type Loader interface {
	// Load decodes a single texture file, returning a cached copy when the same path was loaded
	// before.
	//
	// Parameters:
	//   - path: the image file path
	//
	// Returns:
	//   - common.TextureStagingData: tightly packed RGBA8 pixels
	//   - error: error if the file cannot be read or decoded
	Load(path string) (common.TextureStagingData, error)

	// LoadAll loads every asset concurrently and waits for all of them. The first required asset
	// that fails cancels the remaining loads and its error is returned.
	//
	// Parameters:
	//   - ctx: cancels outstanding loads
	//   - assets: the assets to load; slots must be unique
	//
	// Returns:
	//   - map[renderer.Slot]common.TextureStagingData: decoded textures by slot
	//   - error: ErrNoAssets, a wrapped load error, or the context error
	LoadAll(ctx context.Context, assets []Asset) (map[renderer.Slot]common.TextureStagingData, error)
}

var _ Loader = &loader{}

// NewLoader creates a Loader configured by options.
//
// Parameters:
//   - options: variadic list of LoaderBuilderOption functions
//
// Returns:
//   - Loader: the loader
func NewLoader(options ...LoaderBuilderOption) Loader {
	l := &loader{
		logger:      slog.Default(),
		cacheSize:   DefaultCacheSize,
		maxTexture:  DefaultMaxTextureSize,
		concurrency: DefaultConcurrency,
	}
	for _, opt := range options {
		opt(l)
	}
	// lru.New only fails for non-positive sizes, which the options rule out.
	l.cache, _ = lru.New(l.cacheSize)
	return l
}

type cacheKey struct {
	path string
	max  int
}

func (l *loader) Load(path string) (common.TextureStagingData, error) {
	key := cacheKey{path: path, max: l.maxTexture}
	if v, ok := l.cache.Get(key); ok {
		return v.(common.TextureStagingData), nil
	}

	img, err := decodeFile(path)
	if err != nil {
		return common.TextureStagingData{}, err
	}

	data := toStagingData(img, l.maxTexture)
	if b := img.Bounds(); b.Dx() != int(data.Width) || b.Dy() != int(data.Height) {
		l.logger.Info("texture downscaled", "path", path,
			"from", fmt.Sprintf("%dx%d", b.Dx(), b.Dy()),
			"to", fmt.Sprintf("%dx%d", data.Width, data.Height))
	}
	l.cache.Add(key, data)
	return data, nil
}

func (l *loader) LoadAll(ctx context.Context, assets []Asset) (map[renderer.Slot]common.TextureStagingData, error) {
	if len(assets) == 0 {
		return nil, ErrNoAssets
	}

	var mu sync.Mutex
	out := make(map[renderer.Slot]common.TextureStagingData, len(assets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)
	for _, asset := range assets {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			data, err := l.Load(asset.Path)
			if err != nil {
				if asset.Optional {
					l.logger.Warn("optional texture skipped", "slot", asset.Slot, "path", asset.Path, "error", err)
					return nil
				}
				return fmt.Errorf("failed to load %s texture %q: %w", asset.Slot, asset.Path, err)
			}

			mu.Lock()
			out[asset.Slot] = data
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
