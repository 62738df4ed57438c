package generator

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
)

const imageNameLength = 5

// NextImageName returns a short random name for an output image. Names are
// not checked for uniqueness.
func NextImageName() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:imageNameLength]
}

// ResolveOutputDir returns dir, or the default output directory when dir is
// empty. The result is used verbatim as a filename prefix.
func (s Settings) ResolveOutputDir(dir string) string {
	if dir == "" {
		return s.OutputDir
	}
	return dir
}

// ResolveLogoPath returns path, or the default logo when path is empty, and
// fails with ErrLogoNotFound if nothing exists there.
func (s Settings) ResolveLogoPath(path string) (string, error) {
	if path == "" {
		path = s.LogoPath
	}
	if _, err := os.Stat(path); err != nil {
		return path, fmt.Errorf("%w: %s", ErrLogoNotFound, path)
	}
	return path, nil
}
