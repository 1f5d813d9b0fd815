// Package barcode renders PDF417 barcodes as PNG images.
package barcode

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/boombuler/barcode/pdf417"
)

const (
	DefaultPixelSize     = 4
	DefaultMargin        = 20
	DefaultSecurityLevel = 2
)

var (
	// ErrEmptyData is returned when there is nothing to encode.
	ErrEmptyData = errors.New("no data provided")
	// ErrUnavailable is returned by callers that have no renderer wired.
	ErrUnavailable = errors.New("PDF417 library not available")
)

// Renderer encodes text into a barcode image.
type Renderer interface {
	Render(text string) ([]byte, error)
}

// PDF417 renders PDF417 symbols as black modules on a white PNG.
type PDF417 struct {
	PixelSize     int
	Margin        int
	SecurityLevel byte
}

// NewPDF417 returns a renderer with 4px modules and a 20px quiet zone.
func NewPDF417() *PDF417 {
	return &PDF417{
		PixelSize:     DefaultPixelSize,
		Margin:        DefaultMargin,
		SecurityLevel: DefaultSecurityLevel,
	}
}

// Render encodes text and returns the PNG bytes.
func (p *PDF417) Render(text string) ([]byte, error) {
	if text == "" {
		return nil, ErrEmptyData
	}
	code, err := pdf417.Encode(text, p.SecurityLevel)
	if err != nil {
		return nil, fmt.Errorf("encode pdf417: %w", err)
	}

	img := Rasterize(code, p.PixelSize, p.Margin)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Rasterize scales every module of grid to a pixelSize square and surrounds
// the symbol with margin pixels of white.
func Rasterize(grid image.Image, pixelSize, margin int) *image.Gray {
	b := grid.Bounds()
	cols, rows := b.Dx(), b.Dy()
	img := image.NewGray(image.Rect(0, 0, cols*pixelSize+2*margin, rows*pixelSize+2*margin))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if !isDark(grid.At(b.Min.X+x, b.Min.Y+y)) {
				continue
			}
			x0 := margin + x*pixelSize
			y0 := margin + y*pixelSize
			draw.Draw(img, image.Rect(x0, y0, x0+pixelSize, y0+pixelSize), image.Black, image.Point{}, draw.Src)
		}
	}
	return img
}

func isDark(c color.Color) bool {
	return color.GrayModel.Convert(c).(color.Gray).Y < 128
}

// DataURL wraps PNG bytes as a data: URL.
func DataURL(pngData []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngData)
}
