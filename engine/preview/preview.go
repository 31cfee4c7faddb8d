// Package preview renders a day/night equirectangular map of the planet on the CPU. It uses the
// same texture lookup and terminator blend as the planet shader, so it shows what the viewer
// lights for a given instant without a GPU.
package preview

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-planet/common"
	"github.com/Carmen-Shannon/oxy-planet/engine/sun"
	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/draw"
)

// Preview renders terminator maps.
type Preview interface {
	// Render draws the equirectangular day/night map for instant t. Rows are shaded in parallel on
	// the preview's worker pool.
	//
	// Parameters:
	//   - ctx: stops submitting rows when canceled
	//   - t: the instant to light the planet for
	//
	// Returns:
	//   - *image.NRGBA: the map, Width x Height, longitude -180 at the left edge
	//   - error: ctx.Err() if rendering was canceled
	Render(ctx context.Context, t time.Time) (*image.NRGBA, error)

	// Width returns the output width in pixels.
	Width() int

	// Height returns the output height in pixels.
	Height() int
}

type preview struct {
	width    int
	height   int
	twilight float64
	model    sun.Model

	day   *image.NRGBA
	night *image.NRGBA

	dayColor   color.NRGBA
	nightColor color.NRGBA

	workers int
	pool    worker.DynamicWorkerPool
	once    sync.Once
}

var _ Preview = &preview{}

// NewPreview creates a new Preview with the provided options.
//
// Parameters:
//   - options: variadic list of PreviewBuilderOption functions
//
// Returns:
//   - Preview: the configured preview
func NewPreview(options ...PreviewBuilderOption) Preview {
	p := &preview{
		width:      DefaultWidth,
		height:     DefaultHeight,
		twilight:   DefaultTwilight,
		model:      sun.Approximate{},
		dayColor:   color.NRGBA{R: 70, G: 120, B: 200, A: 255},
		nightColor: color.NRGBA{R: 8, G: 10, B: 24, A: 255},
		workers:    DefaultWorkers(),
	}
	for _, opt := range options {
		opt(p)
	}

	// textures are resampled once so every output pixel maps to exactly one texel
	p.day = p.fit(p.day)
	p.night = p.fit(p.night)
	return p
}

func (p *preview) Width() int {
	return p.width
}

func (p *preview) Height() int {
	return p.height
}

func (p *preview) Render(ctx context.Context, t time.Time) (*image.NRGBA, error) {
	p.once.Do(func() {
		p.pool = worker.NewDynamicWorkerPool(p.workers, p.height, time.Second)
	})

	dir := p.model.Direction(t)
	out := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))

	var wg sync.WaitGroup
	for y := range p.height {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, err
		}

		wg.Add(1)
		row := y
		p.pool.SubmitTask(worker.Task{
			ID: row,
			Do: func() (any, error) {
				defer wg.Done()
				p.shadeRow(out, row, dir)
				return nil, nil
			},
		})
	}
	wg.Wait()

	return out, nil
}

// shadeRow writes one output row. Rows never overlap so workers share out without locking.
func (p *preview) shadeRow(out *image.NRGBA, y int, dir mgl64.Vec3) {
	lat := (0.5 - (float64(y)+0.5)/float64(p.height)) * math.Pi
	sinLat, cosLat := math.Sincos(lat)

	for x := range p.width {
		lon := ((float64(x)+0.5)/float64(p.width) - 0.5) * 2 * math.Pi
		sinLon, cosLon := math.Sincos(lon)
		n := mgl64.Vec3{-cosLat * cosLon, sinLat, -cosLat * sinLon}

		ndl := n.Dot(dir)
		lit := common.Smoothstep(-p.twilight, p.twilight, ndl)

		day := p.texel(p.day, x, y, p.dayColor)
		night := p.texel(p.night, x, y, p.nightColor)
		shade := max(ndl, 0)

		i := out.PixOffset(x, y)
		out.Pix[i+0] = blend(float64(night.R), float64(day.R)*shade, lit)
		out.Pix[i+1] = blend(float64(night.G), float64(day.G)*shade, lit)
		out.Pix[i+2] = blend(float64(night.B), float64(day.B)*shade, lit)
		out.Pix[i+3] = 255
	}
}

func (p *preview) texel(img *image.NRGBA, x, y int, fallback color.NRGBA) color.NRGBA {
	if img == nil {
		return fallback
	}
	return img.NRGBAAt(x, y)
}

// fit scales a texture to the output size.
func (p *preview) fit(src *image.NRGBA) *image.NRGBA {
	if src == nil || (src.Rect.Dx() == p.width && src.Rect.Dy() == p.height) {
		return src
	}
	dst := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// FromStaging wraps decoded texture data as an image without copying.
//
// Parameters:
//   - data: RGBA8 pixels as produced by the loader
//
// Returns:
//   - *image.NRGBA: an image sharing data.Pixels
//   - error: error if the pixel slice does not match the dimensions
func FromStaging(data common.TextureStagingData) (*image.NRGBA, error) {
	if data.Empty() {
		return nil, fmt.Errorf("empty texture")
	}
	w, h := int(data.Width), int(data.Height)
	if len(data.Pixels) != w*h*4 {
		return nil, fmt.Errorf("texture %dx%d has %d bytes, expected %d", w, h, len(data.Pixels), w*h*4)
	}
	return &image.NRGBA{Pix: data.Pixels, Stride: w * 4, Rect: image.Rect(0, 0, w, h)}, nil
}

func blend(night, day, t float64) uint8 {
	v := night + (day-night)*t
	return uint8(min(max(math.Round(v), 0), 255))
}
