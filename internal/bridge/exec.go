package bridge

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Runner executes one generated script and returns its trimmed standard
// output. Implementations own the full subprocess lifecycle; the caller
// bounds execution time through the context.
type Runner interface {
	Run(ctx context.Context, script string) (string, error)
}

// OsascriptRunner runs scripts through the osascript interpreter. Each call
// writes the script to a uniquely named temporary file, invokes the
// interpreter, and removes the file on every exit path.
type OsascriptRunner struct {
	bin       string
	dir       string
	maxOutput int64
	log       *zap.Logger
}

// NewOsascriptRunner builds a runner. An empty bin defaults to "osascript",
// an empty dir to the system temp directory, and a non-positive maxOutput
// to 10 MiB.
func NewOsascriptRunner(bin, dir string, maxOutput int64, log *zap.Logger) *OsascriptRunner {
	if bin == "" {
		bin = "osascript"
	}
	if dir == "" {
		dir = os.TempDir()
	}
	if maxOutput <= 0 {
		maxOutput = 10 * 1024 * 1024
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &OsascriptRunner{bin: bin, dir: dir, maxOutput: maxOutput, log: log}
}

// Run executes the script. A context deadline is reported as a timeout
// error; a nonzero exit surfaces the interpreter's stderr text, which
// carries the error thrown inside the script.
func (r *OsascriptRunner) Run(ctx context.Context, script string) (string, error) {
	path := filepath.Join(r.dir, fmt.Sprintf("omnifocus-%s.js", uuid.NewString()))
	if err := os.WriteFile(path, []byte(script), 0o600); err != nil {
		return "", fmt.Errorf("writing script file: %w", err)
	}
	defer func() {
		// Cleanup is best-effort; a leftover temp file is not worth
		// failing the call over.
		if err := os.Remove(path); err != nil {
			r.log.Debug("temp script cleanup failed", zap.Error(err))
		}
	}()

	cmd := exec.CommandContext(ctx, r.bin, "-l", "JavaScript", path)

	stdout := &cappedWriter{limit: r.maxOutput}
	var stderr bytes.Buffer
	cmd.Stdout = stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if stderr.Len() > 0 {
		r.log.Warn("script stderr", zap.String("stderr", strings.TrimSpace(stderr.String())))
	}
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("script timed out: %w", ctx.Err())
		}
		if stdout.overflowed {
			return "", fmt.Errorf("script output exceeded %d bytes", r.maxOutput)
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", errors.New(msg)
		}
		return "", err
	}

	return strings.TrimSpace(stdout.String()), nil
}

// cappedWriter buffers writes up to a fixed limit and fails the subprocess
// copy once the limit is exceeded.
type cappedWriter struct {
	buf        bytes.Buffer
	limit      int64
	overflowed bool
}

func (w *cappedWriter) Write(p []byte) (int, error) {
	if int64(w.buf.Len())+int64(len(p)) > w.limit {
		w.overflowed = true
		return 0, fmt.Errorf("output limit of %d bytes exceeded", w.limit)
	}
	return w.buf.Write(p)
}

func (w *cappedWriter) String() string {
	return w.buf.String()
}
