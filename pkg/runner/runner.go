package runner

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/c9s/tarq/pkg/config"
	"github.com/c9s/tarq/pkg/metrics"
	"github.com/c9s/tarq/pkg/talib"
	"github.com/c9s/tarq/pkg/types"
)

var log = logrus.WithField("component", "runner")

type Runner struct {
	// Concurrency limits the number of jobs computed at the same time.
	// Zero means no limit.
	Concurrency int
}

// Run computes every job over the series. Each job builds its own indicator
// so the jobs share nothing but the read-only series. Results keep the order
// of jobs. A failing job does not stop the others, all the job errors are
// returned together.
func (r *Runner) Run(ctx context.Context, series *types.Series, jobs []config.Job) ([]*talib.Result, error) {
	metrics.ObserveSeries(series.Len())

	results := make([]*talib.Result, len(jobs))
	errs := make([]error, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	if r.Concurrency > 0 {
		g.SetLimit(r.Concurrency)
	}

	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i], errs[i] = runJob(series, job)
			if errs[i] != nil {
				errs[i] = errors.Wrapf(errs[i], "job #%d", i)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := multierr.Combine(errs...); err != nil {
		return nil, err
	}

	return results, nil
}

func runJob(series *types.Series, job config.Job) (*talib.Result, error) {
	logger := log.WithField("indicator", job.Label())
	logger.Debugf("computing over %d bars", series.Len())

	startTime := time.Now()
	result, err := talib.Compute(job.Name, series, job.Params)
	duration := time.Since(startTime)

	if err != nil {
		metrics.ObserveJob(job.Name, job.Label(), duration, 0, err)
		logger.WithError(err).Errorf("job failed")
		return nil, err
	}

	metrics.ObserveJob(job.Name, job.Label(), duration, series.Len()-result.Lookback, nil)
	logger.Debugf("done in %s, lookback %d", duration, result.Lookback)
	return result, nil
}
