// Package imagery composes the spoon pictograph shown next to each serving
// donut.
package imagery

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"image"
	"image/png"
	"math"
	"os"
	"strings"

	xdraw "golang.org/x/image/draw"
)

const (
	iconHeight = 55
	// halfThreshold is the smallest fractional remainder drawn as a half spoon
	halfThreshold = 0.25
	halfOpacity   = 0.8
)

// Icon is a decoded spoon image, pre-encoded for inline use
type Icon struct {
	full   string
	half   string
	Bounds image.Rectangle
}

// Quantize splits a tablespoon amount into whole spoons and an optional half
func Quantize(tbs float64) (whole int, half bool) {
	if math.IsNaN(tbs) || tbs <= 0 {
		return 0, false
	}
	w := math.Floor(tbs)
	return int(w), tbs-w >= halfThreshold
}

// LoadIcon reads a PNG from disk; a missing or undecodable file is an error
func LoadIcon(path string) (*Icon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spoon image %s: %w", path, err)
	}
	icon, err := NewIcon(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load spoon image %s: %w", path, err)
	}
	return icon, nil
}

// NewIcon decodes PNG bytes and prepares the full and half variants
func NewIcon(data []byte) (*Icon, error) {
	src, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode png: %w", err)
	}
	b := src.Bounds()
	if b.Dx() < 2 || b.Dy() < 1 {
		return nil, fmt.Errorf("image too small: %dx%d", b.Dx(), b.Dy())
	}

	half, err := encodePNG(rightHalf(src))
	if err != nil {
		return nil, err
	}
	return &Icon{
		full:   base64.StdEncoding.EncodeToString(data),
		half:   half,
		Bounds: b,
	}, nil
}

// rightHalf crops the right half of src into a new image anchored at 0,0
func rightHalf(src image.Image) image.Image {
	b := src.Bounds()
	mid := b.Min.X + b.Dx()/2
	crop := image.Rect(mid, b.Min.Y, b.Max.X, b.Max.Y)

	dst := image.NewNRGBA(image.Rect(0, 0, crop.Dx(), crop.Dy()))
	xdraw.Copy(dst, image.Point{}, src, crop, xdraw.Src, nil)
	return dst
}

func encodePNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode png: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// Strip renders the spoons for a tablespoon amount as a flex row of inline
// images
func (ic *Icon) Strip(tbs float64) template.HTML {
	whole, half := Quantize(tbs)

	var sb strings.Builder
	sb.WriteString(`<div class="spoons" style="display:flex;align-items:center;">`)
	for i := 0; i < whole; i++ {
		fmt.Fprintf(&sb, `<img src="data:image/png;base64,%s" alt="spoon" style="height:%dpx;margin-right:0px;"/>`, ic.full, iconHeight)
	}
	if half {
		fmt.Fprintf(&sb, `<img src="data:image/png;base64,%s" alt="half spoon" style="height:%dpx;opacity:%g;margin-right:-6px;"/>`, ic.half, iconHeight, halfOpacity)
	}
	sb.WriteString(`</div>`)

	return template.HTML(sb.String())
}
