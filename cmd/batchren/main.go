// Command batchren is an interactive batch file renamer.
//
// It reads the file list from the command line or a text file, then starts
// a shell in which renaming rules are built, previewed and applied.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/backmassage/batchren/internal/config"
	"github.com/backmassage/batchren/internal/display"
	"github.com/backmassage/batchren/internal/fsys"
	"github.com/backmassage/batchren/internal/logging"
	"github.com/backmassage/batchren/internal/naming"
	"github.com/backmassage/batchren/internal/pipeline"
	"github.com/backmassage/batchren/internal/rule"
	"github.com/backmassage/batchren/internal/shell"
	"github.com/backmassage/batchren/internal/term"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Interrupts cancel the session; a rename in progress stops between files.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "batchren: %v\n", err)
		return 1
	}
	return 0
}

func newRootCommand() *cobra.Command {
	var flags *config.Flags
	cmd := &cobra.Command{
		Use:   "batchren [OPTION]... [FILE]...",
		Short: "An interactive batch file renamer",
		Long: `batchren renames a list of files through a chain of rules built in an
interactive shell. Type 'help' at the prompt for the available commands.`,
		Version:       config.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.Resolve(args)
			if err == nil {
				err = runShell(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
			}
			if errors.Is(err, config.ErrNoFiles) {
				_ = cmd.Usage()
			}
			return err
		},
	}
	cmd.SetVersionTemplate("batchren {{.Version}}\n")
	flags = config.BindFlags(cmd.Flags())
	return cmd
}

// runShell discovers the files and runs the interactive session over them.
func runShell(ctx context.Context, cfg *config.Config, in io.Reader, out, errOut io.Writer) error {
	term.Configure(cfg.ColorMode, out)

	log, err := logging.NewLogger(cfg, out, errOut)
	if err != nil {
		return err
	}
	defer log.Close()

	fs := fsys.OS{}
	batch, missing, err := pipeline.Discover(cfg, fs)
	if err != nil {
		return err
	}
	for _, m := range missing {
		log.Warn("`%s' does not exist; skipped", m)
	}
	if len(batch) == 0 {
		return config.ErrNoFiles
	}

	display.PrintBanner(out)
	log.Info("%d files loaded", len(batch))
	log.Debug("colors enabled: %v", term.Enabled())
	if cfg.DryRun {
		log.Warn("dry run: `rename' will not touch any file")
	}
	if cfg.ConfigFile != "" {
		log.Debug("config loaded from %s", cfg.ConfigFile)
	}
	log.Record("session started",
		zap.Int("files", len(batch)),
		zap.String("profile", string(cfg.Profile)),
		zap.Bool("dry_run", cfg.DryRun))

	sess, err := shell.New(batch, shell.Options{
		Validator: naming.NewValidator(cfg.Profile),
		Registry:  rule.Builtin(fs),
		FS:        fs,
		Log:       log,
		Prompt:    out,
		DryRun:    cfg.DryRun,
	})
	if err != nil {
		return err
	}
	err = sess.Run(ctx, in)
	log.Record("session ended", zap.Error(err))
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
