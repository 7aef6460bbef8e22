// Package qrcode generates, stores, and serves QR code images together with
// their per-image metadata records.
package qrcode

import (
	"errors"
	"fmt"

	qr "github.com/skip2/go-qrcode"
)

// DefaultSize is the pixel dimension used when the caller does not supply one.
const DefaultSize = 300

// Generate renders data as a size×size PNG image.
func Generate(data string, size int) ([]byte, error) {
	if data == "" {
		return nil, errors.New("data must not be empty")
	}
	if size <= 0 {
		size = DefaultSize
	}

	png, err := qr.Encode(data, qr.Low, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}
	return png, nil
}
