package main

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-planet/engine/loader"
	"github.com/Carmen-Shannon/oxy-planet/engine/renderer"
	"golang.org/x/image/webp"
)

func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 16), G: uint8(y * 32), B: 90, A: 255})
		}
	}
	return img
}

func TestWriteImage(t *testing.T) {
	src := gradient(16, 8)
	dir := t.TempDir()

	for _, name := range []string{"map.png", "map.webp", "MAP.PNG"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := writeImage(path, src); err != nil {
				t.Fatalf("writeImage returned %v", err)
			}

			f, err := os.Open(path)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()

			var got image.Image
			if filepath.Ext(name) == ".webp" {
				got, err = webp.Decode(f)
			} else {
				got, err = png.Decode(f)
			}
			if err != nil {
				t.Fatalf("decode returned %v", err)
			}
			if got.Bounds() != src.Bounds() {
				t.Fatalf("expected bounds %v, got %v", src.Bounds(), got.Bounds())
			}
			r, g, b, _ := got.At(5, 3).RGBA()
			wr, wg, wb, _ := src.At(5, 3).RGBA()
			if r>>8 != wr>>8 || g>>8 != wg>>8 || b>>8 != wb>>8 {
				t.Errorf("pixel (5,3) = %v, expected %v", got.At(5, 3), src.At(5, 3))
			}
		})
	}
}

func TestWriteImageRejectsUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.jpg")
	if err := writeImage(path, gradient(2, 2)); err == nil {
		t.Fatal("expected an error for .jpg output")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected no file to be created")
	}
}

func TestParseTime(t *testing.T) {
	got, err := parseTime("2025-08-02T15:04:05Z")
	if err != nil {
		t.Fatalf("parseTime returned %v", err)
	}
	if want := time.Date(2025, time.August, 2, 15, 4, 5, 0, time.UTC); !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	if _, err := parseTime("yesterday"); err == nil {
		t.Error("expected an error for a malformed time")
	}
	if now, err := parseTime(""); err != nil || time.Since(now) > time.Minute {
		t.Errorf("expected the current time, got %v (%v)", now, err)
	}
}

func TestLoadTexturesFallsBackWhenMissing(t *testing.T) {
	dir := t.TempDir()

	f, err := os.Create(filepath.Join(dir, loader.DayTextureFile))
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, gradient(8, 4)); err != nil {
		t.Fatal(err)
	}
	f.Close()

	textures, err := loadTextures(context.Background(), dir, 64)
	if err != nil {
		t.Fatalf("loadTextures returned %v", err)
	}
	if img, ok := textures[renderer.SlotDay]; !ok || img.Bounds() != image.Rect(0, 0, 8, 4) {
		t.Errorf("expected an 8x4 day texture, got %v", textures[renderer.SlotDay])
	}
	if _, ok := textures[renderer.SlotNight]; ok {
		t.Error("expected the missing night texture to be skipped")
	}
}
