// Command llvmexprvet parses a postfix expression file and runs every
// analysis pass over it, reporting the first diagnostic found or a
// success summary.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Sunflower-Dolls/Vapoursynth-llvmexpr/analysis"
	"github.com/Sunflower-Dolls/Vapoursynth-llvmexpr/postfix"
)

var (
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "llvmexprvet",
	Short: "Validate postfix pixel-expression programs",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var checkCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "Parse and analyze a postfix source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	stream, err := postfix.Parse(string(src))
	if err != nil {
		var list postfix.ErrorList
		if errors.As(err, &list) {
			for _, e := range list {
				logger.Error("parse error", zap.String("file", path), zap.String("pos", e.Pos.String()), zap.String("msg", e.Msg))
			}
			return fmt.Errorf("%s: %d parse error(s)", path, len(list))
		}
		return err
	}

	m := analysis.NewManager(context.Background(), stream)
	report, err := analysis.Run(m)
	if err != nil {
		var diag *analysis.Diagnostic
		if errors.As(err, &diag) {
			logger.Warn("analysis diagnostic",
				zap.String("file", path),
				zap.String("run_id", m.RunID.String()),
				zap.String("kind", diag.Kind.String()),
				zap.Int("token_index", diag.TokenIndex))
			fmt.Fprintln(cmd.OutOrStdout(), diag.Error())
			return errExitWithDiagnostic
		}
		return err
	}

	logger.Info("analysis succeeded",
		zap.String("file", path),
		zap.String("run_id", m.RunID.String()),
		zap.String("schema_version", report.SchemaVersion))
	fmt.Fprintf(cmd.OutOrStdout(), "%s: OK (%d blocks)\n", path, len(report.Blocks.CFG.Blocks))
	return nil
}

// errExitWithDiagnostic signals main to exit non-zero without printing
// cobra's own error banner on top of the diagnostic already written to
// stdout.
var errExitWithDiagnostic = errors.New("llvmexprvet: analysis diagnostic")

func main() {
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errExitWithDiagnostic) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
