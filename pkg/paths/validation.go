package paths

import (
	"os"

	"github.com/stitch-dev/stitch/pkg/errors"
)

// RequireDir verifies that path exists and is a directory.
func RequireDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Newf(errors.ErrPathNotFound, "directory does not exist: %s", path).
				WithDetail("path", path)
		}
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", path)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrPathNotDir, "not a directory: %s", path).
			WithDetail("path", path)
	}
	return nil
}

// RequireFile verifies that path exists and is a regular file.
func RequireFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Newf(errors.ErrPathNotFound, "file does not exist: %s", path).
				WithDetail("path", path)
		}
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", path)
	}
	if info.IsDir() {
		return errors.Newf(errors.ErrPathNotFile, "not a file: %s", path).
			WithDetail("path", path)
	}
	return nil
}

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
