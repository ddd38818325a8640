// Package output owns the process-wide JSON rendering preference. The
// preference is set once at startup from config and flags, then only read,
// so it needs no synchronization.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

var compact bool

// SetCompact switches between single-line and pretty-printed JSON.
func SetCompact(c bool) {
	compact = c
}

// Fprint writes data as JSON to w, honoring the compact preference.
func Fprint(w io.Writer, data any) error {
	var (
		encoded []byte
		err     error
	)
	if compact {
		encoded, err = json.Marshal(data)
	} else {
		encoded, err = json.MarshalIndent(data, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(encoded))
	return err
}

// Print writes data as JSON to stdout.
func Print(data any) error {
	return Fprint(os.Stdout, data)
}

// ErrorEnvelope is the structured failure object emitted when a command
// fails: a kind label, a human-readable detail, and a numeric
// classification.
type ErrorEnvelope struct {
	Name       string `json:"name"`
	Detail     string `json:"detail"`
	StatusCode int    `json:"statusCode"`
}

// PrintError writes the failure envelope to stderr so stdout stays clean
// for successful results.
func PrintError(env ErrorEnvelope) {
	_ = Fprint(os.Stderr, map[string]ErrorEnvelope{"error": env})
}
