package texviewer

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned by LoadModelFile for files it doesn't know how to read.
var ErrUnsupportedFormat = errors.New("unsupported model format")

// LoadModelFile loads the first mesh out of a .gltf, .glb, or .dae file, picking the loader by file extension.
func LoadModelFile(path string) (*Mesh, error) {

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gltf", ".glb":
		return LoadGLTFFile(path)
	case ".dae":
		return LoadDAEFile(path, nil)
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)

}
