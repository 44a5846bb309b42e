package ico

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"testing"

	goico "github.com/sergeymakinen/go-ico"
)

// pngFrame encodes a solid-color size×size PNG.
func pngFrame(t *testing.T, size int, c color.RGBA) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode %dpx frame: %v", size, err)
	}
	return buf.Bytes()
}

func TestAssembleThreeFrames(t *testing.T) {
	green := color.RGBA{0x1b, 0x5e, 0x20, 0xff}
	frames := [][]byte{
		pngFrame(t, 16, green),
		pngFrame(t, 32, green),
		pngFrame(t, 48, green),
	}

	data, err := Assemble(frames)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	imgs, err := goico.DecodeAll(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	if len(imgs) != 3 {
		t.Fatalf("got %d frames, want 3", len(imgs))
	}
	for i, want := range []int{16, 32, 48} {
		b := imgs[i].Bounds()
		if b.Dx() != want || b.Dy() != want {
			t.Errorf("frame %d is %dx%d, want %dx%d", i, b.Dx(), b.Dy(), want, want)
		}
	}
}

func TestAssembleFirstFrameIsPrimary(t *testing.T) {
	green := color.RGBA{0x1b, 0x5e, 0x20, 0xff}
	data, err := Assemble([][]byte{
		pngFrame(t, 16, green),
		pngFrame(t, 32, green),
	})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	imgs, err := goico.DecodeAll(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	if b := imgs[0].Bounds(); b.Dx() != 16 {
		t.Errorf("primary frame is %dpx wide, want 16", b.Dx())
	}
}

func TestAssembleEmpty(t *testing.T) {
	if _, err := Assemble(nil); err == nil {
		t.Error("expected error for empty frame list")
	}
}

func TestAssembleBadFrame(t *testing.T) {
	if _, err := Assemble([][]byte{[]byte("not a png")}); err == nil {
		t.Error("expected error for undecodable frame")
	}
}
