package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/shopbot/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNormalizer() *Normalizer {
	return NewNormalizer(config.ImageConfig{
		MaxDimension: 800,
		JPEGQuality:  85,
		MaxPixels:    50_000_000,
	})
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeJPEG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img
}

func TestNormalizer_Normalize(t *testing.T) {
	n := newTestNormalizer()

	t.Run("downscales oversized landscape image", func(t *testing.T) {
		src := image.NewRGBA(image.Rect(0, 0, 1600, 1200))
		out, err := n.Normalize(encodePNG(t, src))
		require.NoError(t, err)

		decoded := decodeJPEG(t, out)
		assert.Equal(t, 800, decoded.Bounds().Dx())
		assert.Equal(t, 600, decoded.Bounds().Dy())
	})

	t.Run("downscales oversized portrait image", func(t *testing.T) {
		src := image.NewRGBA(image.Rect(0, 0, 1200, 1600))
		out, err := n.Normalize(encodePNG(t, src))
		require.NoError(t, err)

		decoded := decodeJPEG(t, out)
		assert.Equal(t, 600, decoded.Bounds().Dx())
		assert.Equal(t, 800, decoded.Bounds().Dy())
	})

	t.Run("never upscales a small image", func(t *testing.T) {
		src := image.NewRGBA(image.Rect(0, 0, 200, 150))
		out, err := n.Normalize(encodePNG(t, src))
		require.NoError(t, err)

		decoded := decodeJPEG(t, out)
		assert.Equal(t, 200, decoded.Bounds().Dx())
		assert.Equal(t, 150, decoded.Bounds().Dy())
	})

	t.Run("keeps image exactly at the limit untouched", func(t *testing.T) {
		src := image.NewRGBA(image.Rect(0, 0, 800, 800))
		out, err := n.Normalize(encodePNG(t, src))
		require.NoError(t, err)

		decoded := decodeJPEG(t, out)
		assert.Equal(t, 800, decoded.Bounds().Dx())
		assert.Equal(t, 800, decoded.Bounds().Dy())
	})

	t.Run("flattens transparency onto white", func(t *testing.T) {
		src := image.NewRGBA(image.Rect(0, 0, 10, 10))
		// fully transparent input
		out, err := n.Normalize(encodePNG(t, src))
		require.NoError(t, err)

		decoded := decodeJPEG(t, out)
		r, g, b, _ := decoded.At(5, 5).RGBA()
		assert.Greater(t, r>>8, uint32(240))
		assert.Greater(t, g>>8, uint32(240))
		assert.Greater(t, b>>8, uint32(240))
	})

	t.Run("converts paletted input to jpeg", func(t *testing.T) {
		palette := color.Palette{color.White, color.Black, color.RGBA{R: 255, A: 255}}
		src := image.NewPaletted(image.Rect(0, 0, 64, 64), palette)
		out, err := n.Normalize(encodePNG(t, src))
		require.NoError(t, err)

		_, format, err := image.Decode(bytes.NewReader(out))
		require.NoError(t, err)
		assert.Equal(t, "jpeg", format)
	})

	t.Run("accepts jpeg input", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 40, 40)), nil))

		out, err := n.Normalize(buf.Bytes())
		require.NoError(t, err)
		assert.NotEmpty(t, out)
	})

	t.Run("rejects undecodable data", func(t *testing.T) {
		_, err := n.Normalize([]byte("definitely not an image"))
		assert.Error(t, err)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := n.Normalize(nil)
		assert.Error(t, err)
	})

	t.Run("rejects images above the pixel budget", func(t *testing.T) {
		tiny := NewNormalizer(config.ImageConfig{MaxDimension: 800, JPEGQuality: 85, MaxPixels: 100})
		src := image.NewRGBA(image.Rect(0, 0, 20, 20))
		_, err := tiny.Normalize(encodePNG(t, src))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "too large")
	})
}

func TestNewNormalizer_Defaults(t *testing.T) {
	n := NewNormalizer(config.ImageConfig{})
	assert.Equal(t, DefaultMaxDimension, n.maxDimension)
	assert.Equal(t, DefaultJPEGQuality, n.quality)
	assert.Equal(t, int64(DefaultMaxPixels), n.maxPixels)
}
