package paths

import (
	"os"
	"path/filepath"
)

const (
	// OutputDir is where every generated asset lands, relative to the
	// working directory.
	OutputDir = "images"
	// SourceSVG is the vector source all assets are rendered from.
	SourceSVG = "images/logo.svg"

	DirPerm  = 0755
	FilePerm = 0644
)

// AtomicWrite writes data to path via a temporary file + rename to avoid
// partial writes. The parent directory is created if needed; an existing
// file at path is replaced.
func AtomicWrite(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
