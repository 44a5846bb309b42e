// Package gen produces the fixed set of branding assets from one SVG source:
// three standalone PNGs and a multi-resolution favicon.
package gen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Mavwarf/mkicons/internal/ico"
	"github.com/Mavwarf/mkicons/internal/paths"
	"github.com/Mavwarf/mkicons/internal/svg"
)

// Failure classes, matched with errors.Is. Everything else surfaces as a
// plain wrapped error.
var (
	ErrSourceNotFound = errors.New("source image not found")
	ErrRasterize      = errors.New("rasterization failed")
	ErrWrite          = errors.New("write failed")
	ErrAssemble       = errors.New("icon assembly failed")
)

// InstallHint names the two image-processing capabilities a working build
// depends on. Printed alongside any generation failure.
const InstallHint = `mkicons needs SVG rasterization (srwiley/oksvg + rasterx) and ICO encoding
(sergeymakinen/go-ico). If modules are missing, run: go mod download`

// FaviconName is the multi-resolution container written next to the PNGs.
const FaviconName = "favicon.ico"

// pngOutputs lists the standalone raster assets written on every run.
var pngOutputs = []struct {
	name string
	w, h int
}{
	{"logo-192x192.png", 192, 192},
	{"logo-512x512.png", 512, 512},
	{"badge-72x72.png", 72, 72},
}

// faviconSizes are the square frame sizes embedded in FaviconName, smallest
// first so the 16px frame is the primary one.
var faviconSizes = []int{16, 32, 48}

// Generate reads the SVG at srcPath, renders it at every required size and
// writes the five asset files under outDir, overwriting existing ones. The
// sequence is linear with no cross-file atomicity: a failure partway through
// leaves the files already written.
func Generate(srcPath, outDir string) error {
	if err := os.MkdirAll(outDir, paths.DirPerm); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, outDir, err)
	}

	src, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSourceNotFound, srcPath, err)
	}

	for _, out := range pngOutputs {
		data, err := svg.Rasterize(src, out.w, out.h)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrRasterize, out.name, err)
		}
		if err := paths.AtomicWrite(filepath.Join(outDir, out.name), data); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrWrite, out.name, err)
		}
	}

	frames := make([][]byte, 0, len(faviconSizes))
	for _, size := range faviconSizes {
		data, err := svg.Rasterize(src, size, size)
		if err != nil {
			return fmt.Errorf("%w: favicon %dx%d: %v", ErrRasterize, size, size, err)
		}
		frames = append(frames, data)
	}
	container, err := ico.Assemble(frames)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAssemble, err)
	}
	if err := paths.AtomicWrite(filepath.Join(outDir, FaviconName), container); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, FaviconName, err)
	}
	return nil
}
