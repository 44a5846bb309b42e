// Package ico assembles multi-resolution Windows icon containers.
package ico

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	goico "github.com/sergeymakinen/go-ico"
)

// Assemble decodes each PNG in frames and serializes all of them into one
// ICO container whose directory lists every frame's dimensions. Frame order
// is preserved, so consumers that read only one frame get the first.
func Assemble(frames [][]byte) ([]byte, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("ico: no frames")
	}

	imgs := make([]image.Image, 0, len(frames))
	for i, data := range frames {
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("ico: decode frame %d: %w", i, err)
		}
		imgs = append(imgs, img)
	}

	var buf bytes.Buffer
	if err := goico.EncodeAll(&buf, imgs); err != nil {
		return nil, fmt.Errorf("ico: encode: %w", err)
	}
	return buf.Bytes(), nil
}
