// Package qrimg renders credential payloads into scannable PNG images.
package qrimg

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// DefaultSize matches the pixel width used by the student dashboard.
const DefaultSize = 600

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render encodes text into a PNG of size x size pixels.
func (r *Renderer) Render(text string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultSize
	}

	png, err := qrcode.Encode(text, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("qrcode.Encode -> %w", err)
	}

	return png, nil
}
