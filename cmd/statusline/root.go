package main

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dougsaus/statusline/internal/config"
	"github.com/dougsaus/statusline/internal/gitstate"
	"github.com/dougsaus/statusline/internal/output"
	"github.com/dougsaus/statusline/internal/render"
	"github.com/dougsaus/statusline/internal/session"
	"github.com/dougsaus/statusline/internal/toolchain"
)

func newRootCmd(stdin *os.File, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "statusline",
		Short: "Render a one-line status summary for an assistant shell",
		Long: `statusline reads the session JSON from stdin and prints one styled line:
directory, git branch and state, detected toolchains, model and session cost.

Config precedence: CLI flags > STATUSLINE_* env vars > defaults (all on).
NO_COLOR disables colors.`,
		Args:               cobra.ArbitraryArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load(cmd.Flags())
			return run(cmd.Context(), cfg, session.FromStdin(stdin), stdout, stderr)
		},
	}
	config.RegisterFlags(cmd.Flags())
	cmd.SetOut(stderr)
	cmd.SetErr(stderr)
	return cmd
}

// run renders one status line for sess. Probe failures only degrade the
// output; the returned error is a failed write to stdout.
func run(ctx context.Context, cfg config.Config, sess session.Session, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	ui := output.New(stderr, cfg.Verbose, cfg.NoColor)
	dir := sess.Dir()

	var st gitstate.State
	if cfg.ShowGit {
		st = newInspector(cfg, ui).Inspect(ctx, dir)
	}

	var info toolchain.Info
	if cfg.ShowToolchain {
		info = toolchain.NewDetector(ui).Detect(ctx, dir)
	}

	segs := render.Compose(sess, st, info, cfg)
	if err := render.NewConsole(stdout, cfg).Print(segs); err != nil {
		ui.Warning("write status line: %v", err)
		return err
	}
	return nil
}

func newInspector(cfg config.Config, log output.Logger) gitstate.Inspector {
	if cfg.GitBackend == config.BackendNative {
		return gitstate.NewNative(log)
	}
	return gitstate.NewCLI(log)
}
