package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sethvargo/go-retry"

	"github.com/taskbeat/taskbeat/engine/task"
	"github.com/taskbeat/taskbeat/engine/value"
)

// Executor performs a single HTTP task execution, materializing header and
// body values against the execution-time runtime.
type Executor struct {
	client      *resty.Client
	maxRetries  uint64
	baseBackoff time.Duration
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// WithClient replaces the underlying HTTP client.
func WithClient(client *resty.Client) ExecutorOption {
	return func(e *Executor) {
		e.client = client
	}
}

// WithRetry sets the retry budget for transient transport failures.
func WithRetry(maxRetries uint64, baseBackoff time.Duration) ExecutorOption {
	return func(e *Executor) {
		e.maxRetries = maxRetries
		e.baseBackoff = baseBackoff
	}
}

// NewExecutor creates an Executor with sane defaults: two retries with
// exponential backoff starting at one second.
func NewExecutor(options ...ExecutorOption) *Executor {
	e := &Executor{
		maxRetries:  2,
		baseBackoff: time.Second,
	}
	for _, opt := range options {
		opt(e)
	}
	if e.client == nil {
		e.client = resty.New()
	}
	return e
}

// Result describes one completed task execution.
type Result struct {
	Task       string
	StatusCode int
	Duration   time.Duration
}

// Execute runs the task once. Transport failures are retried with backoff; a
// response outside the task's success set fails the execution immediately.
func (e *Executor) Execute(ctx context.Context, t *task.Task, rt value.Runtime) (*Result, error) {
	headers, err := renderHeaders(t.Headers, rt)
	if err != nil {
		return nil, fmt.Errorf("task %s: %w", t.Name, err)
	}
	var body any
	if t.Body != nil {
		body = value.Render(t.Body.JSON, rt)
	}

	start := time.Now()
	var result *Result
	backoff := retry.WithMaxRetries(e.maxRetries, retry.NewExponential(e.baseBackoff))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		attemptCtx := ctx
		if t.Timeout > 0 {
			var cancel context.CancelFunc
			attemptCtx, cancel = context.WithTimeout(ctx, t.Timeout.Std())
			defer cancel()
		}
		req := e.client.R().SetContext(attemptCtx).SetHeaders(headers)
		if body != nil {
			req.SetBody(body)
		}
		resp, err := req.Execute(t.Method.String(), t.URL)
		if err != nil {
			return retry.RetryableError(fmt.Errorf("request failed: %w", err))
		}
		if !t.IsSuccess(resp.StatusCode()) {
			return fmt.Errorf("unexpected status %d", resp.StatusCode())
		}
		result = &Result{
			Task:       t.Name,
			StatusCode: resp.StatusCode(),
			Duration:   time.Since(start),
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("task %s: %w", t.Name, err)
	}
	return result, nil
}

func renderHeaders(headers task.Headers, rt value.Runtime) (map[string]string, error) {
	rendered := make(map[string]string, len(headers))
	for name, v := range headers {
		text, err := value.RenderHeader(v, rt)
		if err != nil {
			return nil, fmt.Errorf("header %q: %w", name, err)
		}
		rendered[name] = text
	}
	return rendered, nil
}
