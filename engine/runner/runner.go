package runner

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/segmentio/ksuid"

	"github.com/taskbeat/taskbeat/engine/task"
	"github.com/taskbeat/taskbeat/engine/value"
	"github.com/taskbeat/taskbeat/pkg/logger"
)

// Runner schedules a config's tasks on their cron cadences and feeds each
// execution the timestamp of the task's previous successful run.
type Runner struct {
	executor *Executor
	tasks    []task.Task

	mu      sync.Mutex
	lastRun map[string]time.Time
}

// Option configures a Runner.
type Option func(*Runner)

// WithExecutor replaces the default executor.
func WithExecutor(executor *Executor) Option {
	return func(r *Runner) {
		r.executor = executor
	}
}

// New creates a Runner for the given config.
func New(cfg *task.Config, options ...Option) *Runner {
	r := &Runner{
		tasks:   cfg.Tasks,
		lastRun: make(map[string]time.Time, len(cfg.Tasks)),
	}
	for _, opt := range options {
		opt(r)
	}
	if r.executor == nil {
		r.executor = NewExecutor()
	}
	return r
}

// Start registers every task with the scheduler and blocks until ctx is
// canceled. In-flight executions are drained before Start returns.
func (r *Runner) Start(ctx context.Context) error {
	log := logger.FromContext(ctx)
	scheduler := cron.New()
	for i := range r.tasks {
		t := &r.tasks[i]
		if _, err := scheduler.AddFunc(t.CronSchedule(), func() {
			r.runTask(ctx, t)
		}); err != nil {
			return fmt.Errorf("failed to schedule task %s: %w", t.Name, err)
		}
		log.Info("task scheduled", "task", t.Name, "schedule", t.CronSchedule())
	}
	scheduler.Start()
	<-ctx.Done()
	log.Info("shutting down, draining running tasks")
	<-scheduler.Stop().Done()
	return nil
}

// RunOnce executes every task a single time, in order. The first failure
// aborts the pass.
func (r *Runner) RunOnce(ctx context.Context) error {
	for i := range r.tasks {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := r.execute(ctx, &r.tasks[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) runTask(ctx context.Context, t *task.Task) {
	log := logger.FromContext(ctx).With("task", t.Name, "exec_id", ksuid.New().String())
	result, err := r.execute(logger.ContextWithLogger(ctx, log), t)
	if err != nil {
		log.Error("task execution failed", "error", err)
		return
	}
	log.Info("task executed", "status", result.StatusCode, "duration", result.Duration)
}

func (r *Runner) execute(ctx context.Context, t *task.Task) (*Result, error) {
	rt := value.Runtime{
		ExecuteTime:     time.Now().UTC(),
		LastExecuteTime: r.lastExecute(t.Name),
	}
	result, err := r.executor.Execute(ctx, t, rt)
	if err != nil {
		return nil, err
	}
	r.setLastExecute(t.Name, rt.ExecuteTime)
	return result, nil
}

// lastExecute returns the zero time when the task has not run successfully
// yet; the renderer turns that into an empty last_execute_time.
func (r *Runner) lastExecute(name string) time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastRun[name]
}

func (r *Runner) setLastExecute(name string, at time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastRun[name] = at
}
