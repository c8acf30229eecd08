package scenario

import (
	"context"
	"fmt"
	"io"

	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"

	"github.com/katalvlaran/seqalign/align"
)

// ErrScoreMismatch is reported for jobs whose score differs from expect_score.
var ErrScoreMismatch = errors.New("scenario: score differs from expectation")

// Result is the outcome of one job.
type Result struct {
	Name    string
	Variant string
	Score   float64
	Text    string
}

// Runner executes jobs sequentially on one Aligner sized to the largest job.
type Runner struct {
	// Out receives a header line and the rendered alignment per job; nil discards.
	Out io.Writer
	// Render is passed to align.Render for every job.
	Render []align.RenderOption
}

// Run validates and executes jobs in order. Cancellation of ctx is honoured
// between jobs. Jobs whose score differs from ExpectScore still produce a
// Result; all such differences are returned together as one error.
func (r *Runner) Run(ctx context.Context, jobs []Job) ([]Result, error) {
	logger := ctxlog.Logger(ctx)
	if err := (&File{Jobs: jobs}).Validate(); err != nil {
		return nil, err
	}

	max1, max2 := 0, 0
	for _, j := range jobs {
		max1 = max(max1, len([]rune(j.S)))
		max2 = max(max2, len([]rune(j.T)))
	}
	a, err := align.NewAligner(max1, max2, align.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	logger.Info("running jobs", "jobs", len(jobs), "max_len1", max1, "max_len2", max2)

	out := r.Out
	if out == nil {
		out = io.Discard
	}
	mismatches := &errors.M{}
	results := make([]Result, 0, len(jobs))
	for _, j := range jobs {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res, err := r.runOne(a, j)
		if err != nil {
			return results, fmt.Errorf("scenario: %s: %w", j.Name, err)
		}
		results = append(results, res)
		logger.Info("job done", "job", j.Name, "variant", res.Variant, "score", res.Score)

		if _, err := fmt.Fprintf(out, "# %s (%s) score=%g\n%s", res.Name, res.Variant, res.Score, res.Text); err != nil {
			return results, fmt.Errorf("scenario: write: %w", err)
		}
		if j.ExpectScore != nil && *j.ExpectScore != res.Score {
			logger.Warn("unexpected score", "job", j.Name, "want", *j.ExpectScore, "got", res.Score)
			mismatches.Append(fmt.Errorf("%w: %s: got %g, want %g", ErrScoreMismatch, j.Name, res.Score, *j.ExpectScore))
		}
	}

	return results, mismatches.Err()
}

func (r *Runner) runOne(a *align.Aligner, j Job) (Result, error) {
	if err := j.Execute(a); err != nil {
		return Result{}, err
	}
	al, err := a.Alignment()
	if err != nil {
		return Result{}, err
	}
	text, err := align.Render(al, j.S, j.T, r.Render...)
	if err != nil {
		return Result{}, err
	}

	return Result{Name: j.Name, Variant: al.Variant.String(), Score: al.Score, Text: text}, nil
}
