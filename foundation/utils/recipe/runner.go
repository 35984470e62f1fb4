// File: runner.go
// Title: Recipe Runner
// Description: Applies validated recipes to TextBox values, logging each
//              step under a per-run correlation id.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation
// - 2026-10-17 v0.1.1: Reject text boxes carrying an earlier pattern error

package recipe

import (
	"context"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/textbox/foundation/core/error"
	"github.com/msto63/textbox/foundation/core/log"
	"github.com/msto63/textbox/foundation/utils/textbox"
)

// Runner applies recipes. A Runner may be shared between goroutines; a
// Recipe may not, since Apply normalizes it in place.
type Runner struct {
	logger *log.Logger
}

// NewRunner creates a runner logging to logger; nil discards all output
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Discard()
	}
	return &Runner{logger: logger.WithName("recipe")}
}

// Run applies r to input and returns the resulting text
func (rn *Runner) Run(ctx context.Context, r *Recipe, input string) (string, error) {
	tb := textbox.New(input)
	if err := rn.Apply(ctx, r, tb); err != nil {
		return "", err
	}
	return tb.Value(), nil
}

// Apply validates r and runs every step on tb in order. It stops at the
// first step whose pattern fails and when ctx is done; tb keeps the steps
// applied so far. A tb that already holds an error from an earlier pattern
// operation is rejected before any step runs.
func (rn *Runner) Apply(ctx context.Context, r *Recipe, tb *textbox.TextBox) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if err := tb.Err(); err != nil {
		return mdwerror.Wrap(err, "text box holds an earlier pattern error").
			WithOperation("recipe.Apply").
			WithDetail("recipe", r.Name)
	}

	runID := uuid.NewString()
	logger := rn.logger.
		WithCorrelationID(runID).
		WithField("recipe", r.Name)

	timer := logger.StartTimer("recipe.apply").WithField("steps", len(r.Steps))
	logger.Debug("recipe started", log.Int("input_length", tb.Length()))

	for i, step := range r.Steps {
		if err := ctx.Err(); err != nil {
			wrapped := mdwerror.Wrap(err, "recipe cancelled").
				WithOperation("recipe.Apply").
				WithDetail("step", i+1)
			timer.StopWithError(wrapped)
			return wrapped
		}

		step.Apply(tb)
		if err := tb.Err(); err != nil {
			wrapped := mdwerror.Wrap(err, "recipe step failed").
				WithDetail("step", i+1).
				WithDetail("op", step.Op)
			timer.StopWithError(wrapped)
			return wrapped
		}

		logger.Debug("step applied", log.Fields{
			"step":   i + 1,
			"op":     step.Op,
			"length": tb.Length(),
		})
	}

	timer.WithField("output_length", tb.Length()).Stop()
	return nil
}
