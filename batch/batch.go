// Package batch fans the analysis pipeline out over many independent
// token streams: one fresh analysis.Manager per stream (never shared
// across streams), bounded concurrency via golang.org/x/sync/errgroup,
// and structured logging of run start/stop and diagnostics — never
// inside a pass itself.
package batch

import (
	"context"
	"errors"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Sunflower-Dolls/Vapoursynth-llvmexpr/analysis"
	"github.com/Sunflower-Dolls/Vapoursynth-llvmexpr/token"
)

// Outcome is one stream's result: a populated Report, a Diagnostic
// explaining why analysis failed, or Err for any other failure (such as
// cancellation), tagged with the RunID of
// the Manager that produced it so concurrent runs can be correlated in
// logs.
type Outcome struct {
	RunID      string
	StreamIdx  int
	Report     *analysis.Report
	Diagnostic *analysis.Diagnostic
	Err        error
}

// Run drives analysis.Run over every stream concurrently, bounded by
// runtime.GOMAXPROCS(0) workers. Cancelling ctx is the cooperative
// cancellation hook: each in-flight pass observes it between
// blocks/tokens (spec §5). Streams are still handed to workers after it
// fires, but a stream with tokens to walk then stops at its passes' first
// cancellation check and reports ctx's error in Err. The returned slice has one Outcome per input stream, in input
// order, regardless of completion order.
func Run(ctx context.Context, logger *zap.Logger, streams []token.Stream) []Outcome {
	if logger == nil {
		logger = zap.NewNop()
	}

	outcomes := make([]Outcome, len(streams))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, stream := range streams {
		i, stream := i, stream
		g.Go(func() error {
			m := analysis.NewManager(gctx, stream)
			runID := m.RunID.String()
			logger.Info("analysis run started", zap.String("run_id", runID), zap.Int("stream_idx", i))

			report, err := analysis.Run(m)
			if err != nil {
				logger.Warn("analysis run failed",
					zap.String("run_id", runID), zap.Int("stream_idx", i), zap.Error(err))
				var diag *analysis.Diagnostic
				if errors.As(err, &diag) {
					outcomes[i] = Outcome{RunID: runID, StreamIdx: i, Diagnostic: diag}
					return nil
				}
				outcomes[i] = Outcome{RunID: runID, StreamIdx: i, Err: err}
				return nil
			}

			logger.Info("analysis run finished", zap.String("run_id", runID), zap.Int("stream_idx", i))
			outcomes[i] = Outcome{RunID: runID, StreamIdx: i, Report: report}
			return nil
		})
	}

	// g.Wait()'s error is always nil: every worker above reports its
	// failure through Outcome rather than returning an error, so a
	// single stream's diagnostic never cancels its siblings via
	// errgroup's group-cancel-on-first-error behavior.
	_ = g.Wait()
	return outcomes
}

