package stubgen

import (
	"path/filepath"
	"runtime"

	"github.com/pkg/errors"
)

// SourceTreePath computes the path to the stubgen source directory. The
// checkout, scratch, and stub root paths are all resolved relative to this
// directory.
func SourceTreePath() (string, error) {
	// Compute the path to this file.
	_, filePath, _, ok := runtime.Caller(0)
	if !ok {
		return "", errors.New("unable to compute file path")
	}

	// Compute the path to the stubgen source directory.
	return filepath.Dir(filepath.Dir(filepath.Dir(filePath))), nil
}
