package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/nhle/omnifocus-cli/internal/model"
)

const (
	defaultTimeout = 30 * time.Second

	// Perspective materialization opens and queries a live window and is
	// empirically slower than collection scans.
	perspectiveTimeout = 60 * time.Second
)

// OmniFocus is the gateway to the application's automation bridge. Every
// operation assembles a script, evaluates it through the runner, and
// decodes the JSON the script printed. The gateway holds no state between
// calls; entities are re-read from the application on every operation.
type OmniFocus struct {
	runner             Runner
	log                *zap.Logger
	timeout            time.Duration
	perspectiveTimeout time.Duration
	now                func() time.Time
}

// Option customizes a gateway.
type Option func(*OmniFocus)

// WithTimeout overrides the default per-script timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *OmniFocus) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithPerspectiveTimeout overrides the perspective-query timeout.
func WithPerspectiveTimeout(d time.Duration) Option {
	return func(o *OmniFocus) {
		if d > 0 {
			o.perspectiveTimeout = d
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(log *zap.Logger) Option {
	return func(o *OmniFocus) {
		if log != nil {
			o.log = log
		}
	}
}

// WithClock overrides the time source used by statistics and staleness
// computations. Tests use it to pin "now".
func WithClock(now func() time.Time) Option {
	return func(o *OmniFocus) {
		if now != nil {
			o.now = now
		}
	}
}

// New builds a gateway on top of the given runner.
func New(runner Runner, opts ...Option) *OmniFocus {
	o := &OmniFocus{
		runner:             runner,
		log:                zap.NewNop(),
		timeout:            defaultTimeout,
		perspectiveTimeout: perspectiveTimeout,
		now:                time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// wrapScript embeds the OmniFocus-side script into the osascript shell that
// forwards it to the application for evaluation. The inner script is passed
// as a single JSON-quoted string, so its own quoting never interferes with
// the outer layer.
func wrapScript(omniScript string) string {
	quoted, _ := json.Marshal(strings.TrimSpace(omniScript))
	return fmt.Sprintf(
		"const app = Application('OmniFocus');\n"+
			"app.includeStandardAdditions = true;\n"+
			"const result = app.evaluateJavascript(%s);\nresult;",
		quoted)
}

// eval runs one script with the given timeout and returns its raw output.
func (o *OmniFocus) eval(ctx context.Context, omniScript string, timeout time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	out, err := o.runner.Run(ctx, wrapScript(omniScript))
	o.log.Debug("script evaluated",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("scriptBytes", len(omniScript)),
		zap.Bool("failed", err != nil))
	if err != nil {
		return "", classifyBridgeError(err)
	}
	return out, nil
}

// evalInto runs one script and decodes its JSON output into target.
func (o *OmniFocus) evalInto(ctx context.Context, omniScript string, timeout time.Duration, target any) error {
	out, err := o.eval(ctx, omniScript, timeout)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(out), target); err != nil {
		return model.NewInfrastructureError("decoding bridge output", err)
	}
	return nil
}

// classifyBridgeError maps an error surfaced by the interpreter onto the
// typed taxonomy. Errors raised inside generated scripts arrive as plain
// text, so this is the single place message content is inspected.
func classifyBridgeError(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "not found"):
		return model.NewNotFoundError(msg)
	case strings.Contains(msg, "Multiple"):
		return model.NewAmbiguousError(msg)
	}
	return model.NewInfrastructureError("", err)
}
