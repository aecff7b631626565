package backup

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/stoq-client/internal/config"
	"github.com/MKhiriev/stoq-client/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shell = "/bin/sh"

// lockedBuffer is a bytes.Buffer that may be written from several goroutines.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func writeScript(t *testing.T, body string) string {
	t.Helper()
	if _, err := os.Stat(shell); err != nil {
		t.Skip("no /bin/sh available")
	}
	path := filepath.Join(t.TempDir(), "tool.sh")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o755))
	return path
}

func newTestProxy(t *testing.T, script string) (*Proxy, *lockedBuffer, *lockedBuffer) {
	t.Helper()
	stdout, stderr := &lockedBuffer{}, &lockedBuffer{}
	p := NewProxy(config.BackupConfig{Interpreter: shell, Script: script}, stdout, stderr, logger.Nop())
	return p, stdout, stderr
}

// echoArgs prints one argument per line, including empty ones.
const echoArgs = `for a in "$@"; do printf '[%s]\n' "$a"; done
`

func TestProxy_ArgumentVectors(t *testing.T) {
	script := writeScript(t, echoArgs)
	ctx := context.Background()

	tests := []struct {
		name string
		call func(p *Proxy) bool
		want string
	}{
		{
			name: "full backup",
			call: func(p *Proxy) bool { return p.Backup(ctx, "/srv/backup", true) },
			want: "[backup]\n[/srv/backup]\n[1]\n",
		},
		{
			name: "incremental backup",
			call: func(p *Proxy) bool { return p.Backup(ctx, "/srv/backup", false) },
			want: "[backup]\n[/srv/backup]\n[0]\n",
		},
		{
			name: "restore latest",
			call: func(p *Proxy) bool { return p.Restore(ctx, "/srv/restore", "abc123", "") },
			want: "[restore]\n[/srv/restore]\n[abc123]\n[]\n",
		},
		{
			name: "restore at time",
			call: func(p *Proxy) bool { return p.Restore(ctx, "/srv/restore", "abc123", "2026-01-01T00:00:00") },
			want: "[restore]\n[/srv/restore]\n[abc123]\n[2026-01-01T00:00:00]\n",
		},
		{
			name: "status for user",
			call: func(p *Proxy) bool { return p.Status(ctx, "abc123") },
			want: "[status]\n[abc123]\n",
		},
		{
			name: "status default",
			call: func(p *Proxy) bool { return p.Status(ctx, "") },
			want: "[status]\n[]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, stdout, stderr := newTestProxy(t, script)

			assert.True(t, tt.call(p))
			assert.Equal(t, tt.want, stdout.String())
			assert.Empty(t, stderr.String())
		})
	}
}

func TestProxy_ExitCodeToBool(t *testing.T) {
	ok := writeScript(t, "exit 0\n")
	failing := writeScript(t, "echo 'disk full' >&2\nexit 3\n")

	p, _, _ := newTestProxy(t, ok)
	assert.True(t, p.Status(context.Background(), ""))

	p, _, stderr := newTestProxy(t, failing)
	assert.False(t, p.Status(context.Background(), ""))
	assert.Equal(t, "disk full\n", stderr.String())
}

func TestProxy_SpawnFailure(t *testing.T) {
	p := NewProxy(config.BackupConfig{
		Interpreter: filepath.Join(t.TempDir(), "no-such-interpreter"),
		Script:      "tool.py",
	}, &lockedBuffer{}, &lockedBuffer{}, logger.Nop())

	assert.False(t, p.Backup(context.Background(), "/srv/backup", true))
}

func TestProxy_LastLineWithoutNewline(t *testing.T) {
	script := writeScript(t, "printf 'first\\nsecond'\n")
	p, stdout, _ := newTestProxy(t, script)

	assert.True(t, p.Status(context.Background(), ""))
	assert.Equal(t, "first\nsecond\n", stdout.String())
}

func TestProxy_DrainsBothStreamsWithoutDeadlock(t *testing.T) {
	// far more than a pipe buffer on each stream, interleaved
	script := writeScript(t, `i=0
while [ $i -lt 20000 ]; do
  echo "out $i"
  echo "err $i" >&2
  i=$((i+1))
done
`)
	p, stdout, stderr := newTestProxy(t, script)

	require.True(t, p.Backup(context.Background(), "/srv/backup", false))

	outLines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	errLines := strings.Split(strings.TrimSuffix(stderr.String(), "\n"), "\n")
	assert.Len(t, outLines, 20000)
	assert.Len(t, errLines, 20000)
	assert.Equal(t, "out 19999", outLines[len(outLines)-1])
	assert.Equal(t, "err 19999", errLines[len(errLines)-1])
}

func TestProxy_SharedWriterKeepsLinesWhole(t *testing.T) {
	script := writeScript(t, `i=0
while [ $i -lt 5000 ]; do
  echo "out line number $i"
  echo "err line number $i" >&2
  i=$((i+1))
done
`)
	shared := &lockedBuffer{}
	p := NewProxy(config.BackupConfig{Interpreter: shell, Script: script}, shared, shared, logger.Nop())

	require.True(t, p.Status(context.Background(), ""))

	lines := strings.Split(strings.TrimSuffix(shared.String(), "\n"), "\n")
	assert.Len(t, lines, 10000)
	whole := regexp.MustCompile(`^(out|err) line number \d+$`)
	for _, line := range lines {
		if !whole.MatchString(line) {
			t.Fatalf("torn line %q", line)
		}
	}
}

func TestProxy_LongLine(t *testing.T) {
	script := writeScript(t, `awk 'BEGIN { for (i = 0; i < 200000; i++) printf "a"; print "" }'
`)
	p, stdout, _ := newTestProxy(t, script)

	require.True(t, p.Status(context.Background(), ""))
	assert.Equal(t, strings.Repeat("a", 200000)+"\n", stdout.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestProxy_WriterFailureStillWaitsForExit(t *testing.T) {
	script := writeScript(t, `i=0
while [ $i -lt 20000 ]; do echo "out $i"; i=$((i+1)); done
exit 0
`)
	p := NewProxy(config.BackupConfig{Interpreter: shell, Script: script}, failingWriter{}, &lockedBuffer{}, logger.Nop())

	assert.True(t, p.Status(context.Background(), ""))
}
