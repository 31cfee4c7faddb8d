// Command terminator renders an equirectangular day/night map of the Earth for a given instant.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/Carmen-Shannon/oxy-planet/engine/loader"
	"github.com/Carmen-Shannon/oxy-planet/engine/preview"
	"github.com/Carmen-Shannon/oxy-planet/engine/renderer"
	"github.com/Carmen-Shannon/oxy-planet/engine/sun"
)

type flags struct {
	timeStr  *string
	out      *string
	assets   *string
	width    *int
	height   *int
	sunModel *string
	workers  *int
	showHelp *bool
}

func defineFlags() flags {
	return flags{
		timeStr:  flag.String("time", "", "Time in RFC3339 format (e.g., 2025-08-02T15:04:05Z); defaults to now"),
		out:      flag.String("out", "terminator.webp", "Output file (.webp or .png)"),
		assets:   flag.String("assets", "assets", "Directory holding the day and night textures"),
		width:    flag.Int("width", preview.DefaultWidth, "Output width in pixels"),
		height:   flag.Int("height", preview.DefaultHeight, "Output height in pixels"),
		sunModel: flag.String("sun-model", "approximate", "Sun position model: approximate or ephemeris"),
		workers:  flag.Int("workers", preview.DefaultWorkers(), "Row rendering workers"),
		showHelp: flag.Bool("h", false, "Show this help message"),
	}
}

func parseTime(timeStr string) (time.Time, error) {
	if timeStr == "" {
		return time.Now(), nil
	}
	t, err := time.Parse(time.RFC3339, timeStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time format: %w", err)
	}
	return t, nil
}

func main() {
	cfg := defineFlags()
	flag.Parse()

	if *cfg.showHelp {
		flag.PrintDefaults()
		return
	}

	renderTime, err := parseTime(*cfg.timeStr)
	if err != nil {
		log.Fatal(err)
	}
	model, err := sun.ParseModel(*cfg.sunModel)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	options := []preview.PreviewBuilderOption{
		preview.WithSize(*cfg.width, *cfg.height),
		preview.WithSunModel(model),
		preview.WithWorkers(*cfg.workers),
	}
	textures, err := loadTextures(ctx, *cfg.assets, max(*cfg.width, *cfg.height))
	if err != nil {
		log.Fatal(err)
	}
	if img, ok := textures[renderer.SlotDay]; ok {
		options = append(options, preview.WithDayTexture(img))
	}
	if img, ok := textures[renderer.SlotNight]; ok {
		options = append(options, preview.WithNightTexture(img))
	}

	log.Printf("terminator: rendering %s with the %s sun model", renderTime.Format(time.RFC3339), model.Name())
	img, err := preview.NewPreview(options...).Render(ctx, renderTime)
	if err != nil {
		log.Fatal(err)
	}

	if err := writeImage(*cfg.out, img); err != nil {
		log.Fatalf("Failed to write %s: %v", *cfg.out, err)
	}
}

// loadTextures loads the day and night maps when present. Missing files fall back to flat colors.
func loadTextures(ctx context.Context, dir string, maxSize int) (map[renderer.Slot]*image.NRGBA, error) {
	var assets []loader.Asset
	for _, a := range loader.DefaultAssets(dir) {
		if a.Slot == renderer.SlotDay || a.Slot == renderer.SlotNight {
			a.Optional = true
			assets = append(assets, a)
		}
	}

	// the preview resamples to its own size, so there is no point decoding more than that
	l := loader.NewLoader(loader.WithMaxTextureSize(maxSize), loader.WithConcurrency(len(assets)))
	staged, err := l.LoadAll(ctx, assets)
	if err != nil {
		return nil, err
	}

	out := make(map[renderer.Slot]*image.NRGBA, len(staged))
	for slot, data := range staged {
		img, err := preview.FromStaging(data)
		if err != nil {
			return nil, fmt.Errorf("%s texture: %w", slot, err)
		}
		out[slot] = img
	}
	return out, nil
}
