package loader

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG format with image.Decode
	_ "image/png"  // register PNG format with image.Decode
	"io"
	"path/filepath"
	"strings"

	"github.com/echoflaresat/tiff"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/exp/mmap"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP format with image.Decode

	"github.com/Carmen-Shannon/oxy-planet/common"
)

var tiffMagic = [][]byte{[]byte("II*\x00"), []byte("MM\x00*")}

func isTIFF(r io.ReaderAt) bool {
	var head [4]byte
	if n, _ := r.ReadAt(head[:], 0); n < len(head) {
		return false
	}
	for _, m := range tiffMagic {
		if bytes.Equal(head[:], m) {
			return true
		}
	}
	return false
}

// decodeFile memory-maps path and decodes it. The returned image does not reference the mapping.
// TGA has no magic number, so it is selected by extension and never registered with image.Decode.
func decodeFile(path string) (image.Image, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	sr := io.NewSectionReader(r, 0, int64(r.Len()))

	if isTIFF(sr) {
		img, err := tiff.Decode(sr)
		if err != nil {
			return nil, fmt.Errorf("decode tiff: %w", err)
		}
		// TIFF images may read lazily from the mapping, so copy before it is unmapped.
		return toNRGBA(img, 0), nil
	}

	if strings.EqualFold(filepath.Ext(path), ".tga") {
		img, err := tga.Decode(sr)
		if err != nil {
			return nil, fmt.Errorf("decode tga: %w", err)
		}
		return img, nil
	}

	img, _, err := image.Decode(sr)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// fitSize scales w x h down so that neither edge exceeds limit, preserving the aspect ratio.
func fitSize(w, h, limit int) (int, int) {
	if limit <= 0 || (w <= limit && h <= limit) {
		return w, h
	}
	if w >= h {
		return limit, max(1, h*limit/w)
	}
	return max(1, w*limit/h), limit
}

// toNRGBA converts src to a tightly packed non-premultiplied RGBA image whose longest edge is at
// most limit (0 keeps the size).
func toNRGBA(src image.Image, limit int) *image.NRGBA {
	b := src.Bounds()
	w, h := fitSize(b.Dx(), b.Dy(), limit)

	if n, ok := src.(*image.NRGBA); ok && w == b.Dx() && h == b.Dy() && b.Min == (image.Point{}) && n.Stride == 4*w {
		return n
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	}
	return dst
}

func toStagingData(src image.Image, limit int) common.TextureStagingData {
	img := toNRGBA(src, limit)
	return common.TextureStagingData{
		Pixels: img.Pix,
		Width:  uint32(img.Rect.Dx()),
		Height: uint32(img.Rect.Dy()),
	}
}
