package qrcode_test

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qrkeep/service/internal/qrcode"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestGenerateProducesPNG(t *testing.T) {
	data, err := qrcode.Generate("https://example.com", 300)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, pngSignature))

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 300, img.Bounds().Dx())
	require.Equal(t, 300, img.Bounds().Dy())
}

func TestGenerateDefaultsSize(t *testing.T) {
	data, err := qrcode.Generate("hello", 0)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, qrcode.DefaultSize, img.Bounds().Dx())
}

func TestGenerateRejectsEmptyData(t *testing.T) {
	_, err := qrcode.Generate("", 300)
	require.Error(t, err)
}
