package store

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// writeFileAtomic writes r to a temporary file next to path and renames it
// over path, so readers never observe a partially written file.
func writeFileAtomic(path string, r io.Reader, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create %s: %w", ErrWritingFile, dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err = io.Copy(tmp, r); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: copy into %s: %w", ErrWritingFile, path, err)
	}
	if err = tmp.Chmod(perm); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}

	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: rename into %s: %w", ErrWritingFile, path, err)
	}
	return nil
}

