// Package runner drives queued tasks through the download-and-count
// lifecycle: Idle -> Downloading -> Analyzing -> Completed, with
// Downloading and Analyzing each able to fall through to Failed.
package runner

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"

	"doc-counter/pkg/fetch"
	"doc-counter/pkg/inspect"
	"doc-counter/pkg/metrics"
	"doc-counter/pkg/models"
	"doc-counter/pkg/registry"
	"doc-counter/pkg/utils"
)

// Summary reports the outcome of one batch run
type Summary struct {
	Completed int
	Failed    int
	Skipped   int
	Duration  time.Duration
}

// Runner executes batch runs over the registry. It processes exactly
// one task at a time: with batches reaching into the thousands,
// sequential execution is what bounds network and memory use, so do not
// parallelize this loop without rethinking that budget. The runner is
// the registry's sole status writer while a run is active.
type Runner struct {
	registry  *registry.Registry
	fetcher   *fetch.Fetcher
	inspector inspect.Inspector
	metrics   *metrics.Metrics
	log       *logrus.Logger
	sem       *semaphore.Weighted

	// OnUpdate, when set, receives a task copy after every state
	// transition so a rendering layer can refresh incrementally. It is
	// called from the run's goroutine and must not block for long.
	OnUpdate func(models.Task)
}

// NewRunner creates a runner over the given registry and collaborators.
// The metrics argument may be nil.
func NewRunner(reg *registry.Registry, fetcher *fetch.Fetcher, inspector inspect.Inspector, m *metrics.Metrics, log *logrus.Logger) *Runner {
	return &Runner{
		registry:  reg,
		fetcher:   fetcher,
		inspector: inspector,
		metrics:   m,
		log:       log,
		sem:       semaphore.NewWeighted(1),
	}
}

// IsRunning reports whether a batch run is currently active
func (r *Runner) IsRunning() bool {
	return r.registry.RunInProgress()
}

// Run executes one sequential pass over a frozen snapshot of the
// registry. Tasks appended mid-run are left for a future run; tasks
// already completed are skipped untouched; failed tasks are retried
// from the top of their lifecycle. Per-task failures are contained and
// never abort the pass, so the run always drains its snapshot. Returns
// ErrRunInProgress when another run is active.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	if !r.sem.TryAcquire(1) {
		return Summary{}, utils.ErrRunInProgress
	}
	defer r.sem.Release(1)

	if err := r.registry.BeginRun(); err != nil {
		return Summary{}, err
	}
	defer r.registry.EndRun()

	start := time.Now()
	snapshot := r.registry.Snapshot()
	runLog := r.log.WithField("tasks", len(snapshot))
	runLog.Info("Starting batch run")
	r.metrics.CountRun()

	var sum Summary
	for _, task := range snapshot {
		if task.Status == models.StatusCompleted {
			// Idempotent re-run: completed work is never repeated and
			// its recorded page count is left untouched
			sum.Skipped++
			r.metrics.CountTask(metrics.OutcomeSkipped)
			continue
		}
		if r.process(ctx, task) {
			sum.Completed++
			r.metrics.CountTask(metrics.OutcomeCompleted)
		} else {
			sum.Failed++
			r.metrics.CountTask(metrics.OutcomeFailed)
		}
	}

	sum.Duration = time.Since(start)
	runLog.WithFields(logrus.Fields{
		"completed": sum.Completed,
		"failed":    sum.Failed,
		"skipped":   sum.Skipped,
		"duration":  sum.Duration,
	}).Info("Batch run finished")
	return sum, nil
}

// process walks a single task through Downloading and Analyzing,
// returning whether it completed. Failures mark the task and return;
// the caller moves on to the next task regardless.
func (r *Runner) process(ctx context.Context, task models.Task) bool {
	taskLog := r.log.WithFields(logrus.Fields{"task_id": task.ID, "file": task.DisplayName})

	// Entering Downloading clears any error left by a previous run
	r.transition(task.ID, models.StatusDownloading)

	fetchStart := time.Now()
	res, err := r.fetcher.Fetch(ctx, task.URL)
	r.metrics.ObserveFetch(time.Since(fetchStart))
	if err != nil {
		taskLog.WithField("category", utils.CategorizeError(err)).Warnf("Download failed: %v", err)
		r.fail(task.ID, err.Error())
		return false
	}

	r.transition(task.ID, models.StatusAnalyzing)

	inspectStart := time.Now()
	pages, err := r.inspector.PageCount(ctx, res.Body)
	r.metrics.ObserveInspect(time.Since(inspectStart))
	if err != nil {
		taskLog.WithField("category", utils.CategorizeError(err)).Warnf("Inspection failed: %v", err)
		r.fail(task.ID, err.Error())
		return false
	}

	r.complete(task.ID, pages)
	taskLog.WithField("pages", pages).Debug("Task completed")
	return true
}

func (r *Runner) transition(id string, status models.TaskStatus) {
	if err := r.registry.SetStatus(id, status); err != nil {
		r.log.WithField("task_id", id).Warnf("Transition to %s failed: %v", status, err)
		return
	}
	r.notify(id)
}

func (r *Runner) fail(id, msg string) {
	if err := r.registry.Fail(id, msg); err != nil {
		r.log.WithField("task_id", id).Warnf("Recording failure failed: %v", err)
		return
	}
	r.notify(id)
}

func (r *Runner) complete(id string, pages int) {
	if err := r.registry.Complete(id, pages); err != nil {
		r.log.WithField("task_id", id).Warnf("Recording completion failed: %v", err)
		return
	}
	r.notify(id)
}

func (r *Runner) notify(id string) {
	if r.OnUpdate == nil {
		return
	}
	if task, ok := r.registry.Get(id); ok {
		r.OnUpdate(task)
	}
}
