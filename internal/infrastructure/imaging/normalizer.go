// Package imaging normalizes uploaded product images into bounded-size
// JPEG blobs suitable for storage.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"

	// register decoders for common upload formats
	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/shopbot/backend/internal/infrastructure/config"
	"golang.org/x/image/draw"
)

// Defaults mirror the catalog's stored-image contract
const (
	DefaultMaxDimension = 800
	DefaultJPEGQuality  = 85
	DefaultMaxPixels    = 50_000_000
)

// Normalizer converts arbitrary raster images into JPEGs whose sides
// are each bounded by MaxDimension. Aspect ratio is preserved; images
// are never upscaled. Palette and alpha inputs are flattened onto a
// white background before encoding.
type Normalizer struct {
	maxDimension int
	quality      int
	maxPixels    int64
}

// NewNormalizer creates a Normalizer from configuration, falling back
// to defaults for unset values
func NewNormalizer(cfg config.ImageConfig) *Normalizer {
	n := &Normalizer{
		maxDimension: cfg.MaxDimension,
		quality:      cfg.JPEGQuality,
		maxPixels:    cfg.MaxPixels,
	}
	if n.maxDimension <= 0 {
		n.maxDimension = DefaultMaxDimension
	}
	if n.quality <= 0 {
		n.quality = DefaultJPEGQuality
	}
	if n.maxPixels <= 0 {
		n.maxPixels = DefaultMaxPixels
	}
	return n
}

// Normalize decodes src, downscales it proportionally when either side
// exceeds the maximum dimension, and re-encodes it as JPEG. A decode
// failure is returned to the caller and aborts the surrounding save.
func (n *Normalizer) Normalize(src []byte) ([]byte, error) {
	// Decode config first to check dimensions without a full decode.
	imgCfg, _, err := image.DecodeConfig(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("decode image config: %w", err)
	}

	if int64(imgCfg.Width)*int64(imgCfg.Height) > n.maxPixels {
		return nil, fmt.Errorf("image too large: %dx%d exceeds %d pixels", imgCfg.Width, imgCfg.Height, n.maxPixels)
	}

	img, _, err := image.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	newWidth, newHeight := width, height
	if width > n.maxDimension || height > n.maxDimension {
		ratio := float64(n.maxDimension) / float64(width)
		if height > width {
			ratio = float64(n.maxDimension) / float64(height)
		}
		newWidth = int(float64(width) * ratio)
		newHeight = int(float64(height) * ratio)
		if newWidth < 1 {
			newWidth = 1
		}
		if newHeight < 1 {
			newHeight = 1
		}
	}

	// Flatten onto white so transparent regions do not turn black.
	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	if newWidth == width && newHeight == height {
		draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Over)
	} else {
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: n.quality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}

	return buf.Bytes(), nil
}
