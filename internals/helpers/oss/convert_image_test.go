package helper

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestConvertToWebP(t *testing.T) {
	data := pngBytes(t, 100, 80)

	out, err := ConvertToWebP(data, WebPOptions{MaxW: 1600, MaxH: 1600, Quality: 80})
	require.NoError(t, err)
	require.NotEmpty(t, out)

	img, err := webp.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 80, img.Bounds().Dy())
}

func TestConvertToWebPDownscale(t *testing.T) {
	data := pngBytes(t, 400, 200)

	out, err := ConvertToWebP(data, WebPOptions{MaxW: 100, MaxH: 100, Quality: 80})
	require.NoError(t, err)

	img, err := webp.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	// Fit menjaga rasio: 400x200 → 100x50
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 50, img.Bounds().Dy())
}

func TestConvertToWebPFormatTidakDidukung(t *testing.T) {
	_, err := ConvertToWebP([]byte("ini bukan gambar sama sekali"), WebPOptions{MaxW: 100, MaxH: 100, Quality: 80})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "format tidak didukung")
}

func TestConvertToWebPKosong(t *testing.T) {
	_, err := ConvertToWebP(nil, WebPOptions{MaxW: 100, MaxH: 100, Quality: 80})
	assert.Error(t, err)
}
