// Package svg rasterizes SVG markup into fixed-size PNG images.
package svg

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Rasterize renders src (SVG markup) at exactly w×h pixels and returns the
// result as PNG bytes. The SVG viewBox is stretched to fill the target, so a
// square source stays undistorted only at square sizes. Output is
// deterministic for a fixed (src, w, h).
func Rasterize(src []byte, w, h int) ([]byte, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("svg: invalid target size %dx%d", w, h)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("svg: parse: %w", err)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("svg: encode png: %w", err)
	}
	return buf.Bytes(), nil
}
