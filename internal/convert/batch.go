// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/pdiddy/timeconv/internal/logging"
	"github.com/pdiddy/timeconv/pkg/types"
)

// Recorder persists successful conversions. The history store implements it.
type Recorder interface {
	Record(ctx context.Context, c types.Conversion) error
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Failed    int
	Recorded  int
}

// Total returns the number of inputs processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Failed
}

// HasFailures reports whether any input failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// BatchOptions controls ConvertBatch.
type BatchOptions struct {
	Format types.OutputFormat

	// Recorder, when non-nil, receives every successful conversion.
	Recorder Recorder
}

// ConvertBatch converts inputs in order, rendering results to w and
// per-input diagnostics to diag. A failed input never stops the batch; a
// cancelled context does, and its error is returned with the partial result.
func ConvertBatch(ctx context.Context, inputs []any, opts BatchOptions, w, diag io.Writer) (BatchResult, error) {
	log := logging.FromContext(ctx)

	var (
		result BatchResult
		done   []types.Conversion
	)
	for _, in := range inputs {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		c, err := Convert(in)
		if err != nil {
			log.Warn("invalid year value", zap.Any("input", in), zap.String("type", TypeName(in)), zap.Error(err))
			WriteDiagnostic(diag, err)
			result.Failed++
			continue
		}
		log.Debug("converted", zap.Float64("years", c.Years), zap.Float64("seconds", c.Seconds))
		result.Converted++

		// Text reports stream; structured formats are collected into one document.
		if opts.Format == types.FormatText || opts.Format == "" {
			if err := Render(w, c, types.FormatText); err != nil {
				return result, fmt.Errorf("writing report: %w", err)
			}
		} else {
			done = append(done, c)
		}

		if opts.Recorder != nil {
			if err := opts.Recorder.Record(ctx, c); err != nil {
				log.Error("recording conversion", zap.Error(err))
				fmt.Fprintf(diag, "warning: could not record %v: %v\n", c.Input, err)
				continue
			}
			result.Recorded++
		}
	}

	if len(done) > 0 {
		if err := RenderAll(w, done, opts.Format); err != nil {
			return result, err
		}
	}

	if result.Total() > 1 {
		fmt.Fprintf(diag, "\nBatch summary: %d converted, %d failed (total: %d)\n",
			result.Converted, result.Failed, result.Total())
	}
	return result, nil
}
