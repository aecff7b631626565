package service

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/MKhiriev/stoq-client/models"
)

const manifestSeparator = ":"

// ParseManifest reads a /md5sum listing: one "<bundle-name>:<checksum>" pair
// per line. Blank lines are skipped. A line with zero or several separators,
// or with an empty name or checksum, fails the whole manifest. When a name
// repeats, the last line wins.
func ParseManifest(r io.Reader) (models.Manifest, error) {
	manifest := make(models.Manifest)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Split(line, manifestSeparator)
		if len(parts) != 2 {
			return nil, fmt.Errorf("%w %d: %q", ErrMalformedManifest, lineNo, line)
		}

		name, sum := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
		if name == "" || sum == "" {
			return nil, fmt.Errorf("%w %d: %q", ErrMalformedManifest, lineNo, line)
		}
		manifest[name] = sum
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	return manifest, nil
}

// FormatManifest renders m in the /md5sum wire format, sorted by bundle name.
func FormatManifest(m models.Manifest) []byte {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	for _, name := range names {
		buf.WriteString(name)
		buf.WriteString(manifestSeparator)
		buf.WriteString(m[name])
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
