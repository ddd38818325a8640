package bridge

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeInterpreter writes a shell script that stands in for osascript. It
// receives the same argv shape: -l JavaScript <path>.
func fakeInterpreter(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	bin := filepath.Join(t.TempDir(), "fakeosa")
	require.NoError(t, os.WriteFile(bin, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return bin
}

func TestRunnerReturnsTrimmedOutput(t *testing.T) {
	bin := fakeInterpreter(t, `cat "$3"; echo`)
	dir := t.TempDir()
	r := NewOsascriptRunner(bin, dir, 0, nil)

	out, err := r.Run(context.Background(), "hello script")
	require.NoError(t, err)
	assert.Equal(t, "hello script", out)
}

func TestRunnerPassesLanguageFlag(t *testing.T) {
	bin := fakeInterpreter(t, `printf '%s %s' "$1" "$2"`)
	r := NewOsascriptRunner(bin, t.TempDir(), 0, nil)

	out, err := r.Run(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, "-l JavaScript", out)
}

func TestRunnerCleansUpTempFile(t *testing.T) {
	bin := fakeInterpreter(t, `exit 0`)
	dir := t.TempDir()
	r := NewOsascriptRunner(bin, dir, 0, nil)

	_, err := r.Run(context.Background(), "x")
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "temp script must be removed")
}

func TestRunnerCleansUpTempFileOnFailure(t *testing.T) {
	bin := fakeInterpreter(t, `exit 3`)
	dir := t.TempDir()
	r := NewOsascriptRunner(bin, dir, 0, nil)

	_, err := r.Run(context.Background(), "x")
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRunnerSurfacesStderr(t *testing.T) {
	bin := fakeInterpreter(t, `echo "Error: task not found: bogus" >&2; exit 1`)
	r := NewOsascriptRunner(bin, t.TempDir(), 0, nil)

	_, err := r.Run(context.Background(), "x")
	require.Error(t, err)
	assert.Equal(t, "Error: task not found: bogus", err.Error())
}

func TestRunnerTimeout(t *testing.T) {
	bin := fakeInterpreter(t, `sleep 5`)
	r := NewOsascriptRunner(bin, t.TempDir(), 0, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := r.Run(ctx, "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
}

func TestRunnerOutputCap(t *testing.T) {
	bin := fakeInterpreter(t, `cat "$3"`)
	r := NewOsascriptRunner(bin, t.TempDir(), 16, nil)

	_, err := r.Run(context.Background(), "this script body exceeds sixteen bytes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeded 16 bytes")
}

func TestCappedWriter(t *testing.T) {
	w := &cappedWriter{limit: 4}

	n, err := w.Write([]byte("ab"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = w.Write([]byte("cde"))
	require.Error(t, err)
	assert.True(t, w.overflowed)
	assert.Equal(t, "ab", w.String())
}

func TestRunnerDefaults(t *testing.T) {
	r := NewOsascriptRunner("", "", 0, nil)
	assert.Equal(t, "osascript", r.bin)
	assert.Equal(t, os.TempDir(), r.dir)
	assert.Equal(t, int64(10*1024*1024), r.maxOutput)
	assert.NotNil(t, r.log)
}
