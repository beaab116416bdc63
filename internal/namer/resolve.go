/*
Copyright © 2025 changheonshin
*/
package namer

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// MaxConflictProbes caps how many suffixed candidates ResolvePath tries
// before giving up on a pathologically full directory.
const MaxConflictProbes = 10000

// ErrTooManyConflicts is returned when every candidate up to
// MaxConflictProbes is already taken.
var ErrTooManyConflicts = errors.New("too many conflicting files for base name")

// ResolvePath returns a path inside dir that does not exist at call time,
// starting with base+ext and then probing base_1+ext, base_2+ext, and so
// on. ext must include its leading dot (or be empty).
//
// The check-then-use window makes this racy against concurrent writers;
// it is only safe for a single process organizing a directory at a time.
func ResolvePath(fs afero.Fs, dir, base, ext string) (string, error) {
	candidate := filepath.Join(dir, base+ext)
	for i := 0; i <= MaxConflictProbes; i++ {
		if i > 0 {
			candidate = filepath.Join(dir, fmt.Sprintf("%s_%d%s", base, i, ext))
		}
		exists, err := afero.Exists(fs, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check existence of %s: %w", candidate, err)
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %s%s in %s", ErrTooManyConflicts, base, ext, dir)
}
