// Package cli builds the cobra command tree for the of binary. Commands
// render styled terminal output by default and raw JSON with --json, so
// the same binary serves both humans and scripts.
package cli

import (
	"time"

	"go.uber.org/zap"

	"github.com/spf13/cobra"

	"github.com/nhle/omnifocus-cli/internal/bridge"
	"github.com/nhle/omnifocus-cli/internal/display"
	"github.com/nhle/omnifocus-cli/internal/model"
	"github.com/nhle/omnifocus-cli/internal/output"
	"github.com/nhle/omnifocus-cli/pkg/logger"
)

// app carries the wired dependencies shared by every command.
type app struct {
	cfg  *model.AppConfig
	log  *zap.Logger
	of   *bridge.OmniFocus
	json bool
}

// render prints a result either as JSON or through the given styled
// renderer, depending on the --json flag.
func (a *app) render(data any, styled func()) error {
	if a.json {
		return output.Print(data)
	}
	styled()
	return nil
}

func newRootCommand(a *app) *cobra.Command {
	var (
		configPath string
		jsonOut    bool
		compact    bool
	)

	root := &cobra.Command{
		Use:           "of",
		Short:         "Manage OmniFocus from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := model.LoadConfig(configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logger.New(cfg.Log.Level)
			a.json = jsonOut
			output.SetCompact(compact || cfg.Output.Compact)

			runner := bridge.NewOsascriptRunner(
				cfg.Bridge.OsascriptPath, "", cfg.Bridge.MaxOutputBytes, a.log)
			a.of = bridge.New(runner,
				bridge.WithTimeout(secs(cfg.Bridge.TimeoutSec)),
				bridge.WithPerspectiveTimeout(secs(cfg.Bridge.PerspectiveTimeoutSec)),
				bridge.WithLogger(a.log))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config",
		model.DefaultConfigPath(), "Path to the configuration file")
	root.PersistentFlags().BoolVar(&jsonOut, "json", false,
		"Print results as JSON instead of styled output")
	root.PersistentFlags().BoolVar(&compact, "compact", false,
		"Emit single-line JSON (implies machine output)")

	root.AddCommand(
		newTaskCommand(a),
		newProjectCommand(a),
		newInboxCommand(a),
		newSearchCommand(a),
		newPerspectiveCommand(a),
		newTagCommand(a),
		newFolderCommand(a),
		newMCPCommand(a),
	)

	return root
}

// Execute runs the CLI and returns the process exit code. Failures go to
// stderr, as a typed envelope in JSON mode or a styled message otherwise.
func Execute() int {
	a := &app{}
	root := newRootCommand(a)
	if err := root.Execute(); err != nil {
		a.fail(err)
		return 1
	}
	return 0
}

func secs(n int) time.Duration {
	return time.Duration(n) * time.Second
}

func (a *app) fail(err error) {
	if a.json {
		output.PrintError(output.ErrorEnvelope{
			Name:       string(model.KindOf(err)),
			Detail:     err.Error(),
			StatusCode: model.StatusCodeOf(err),
		})
		return
	}
	display.ErrorMessage(err)
	if a.log != nil {
		a.log.Debug("command failed", zap.Error(err))
	}
}
