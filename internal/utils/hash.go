package utils

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Checksum returns the hex-encoded MD5 digest of everything read from r.
//
// MD5 is what bundle manifests publish; it detects corrupted or stale cache
// files and is not used as a security boundary.
func Checksum(r io.Reader) (string, error) {
	h := md5.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// FileChecksum returns the hex MD5 digest of the file at path.
//
// A missing file is reported as ok == false with a nil error so callers can
// treat it as "invalid" without special-casing fs.ErrNotExist.
func FileChecksum(path string) (sum string, ok bool, err error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	sum, err = Checksum(f)
	if err != nil {
		return "", false, fmt.Errorf("read %s: %w", path, err)
	}
	return sum, true, nil
}

// HashString returns the hex MD5 digest of s.
//
// Example usage:
//
//	utils.HashString("secret") // "5ebe2294ecd0e0f08eab7690d2a6ee69"
func HashString(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
