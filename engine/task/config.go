package task

import (
	"fmt"
	"net/url"

	"github.com/robfig/cron/v3"
)

// DefaultSchedule is used when a task does not declare its own cadence.
const DefaultSchedule = "@every 1m"

// Config is the top-level structure of a task document.
type Config struct {
	Tasks []Task `yaml:"tasks" json:"tasks"`
}

// Task describes one HTTP call to be run on a schedule.
type Task struct {
	// Name uniquely identifies the task within the document.
	Name string `yaml:"name"                           json:"name"`
	// Method is the HTTP method, case-sensitive (GET, POST, PUT, DELETE, PATCH).
	Method Method `yaml:"method"                         json:"method"`
	// URL is the absolute URL the task calls.
	URL string `yaml:"url"                            json:"url"`
	// Headers maps header names to tagged entries in restricted mode.
	Headers Headers `yaml:"headers,omitempty"              json:"headers,omitempty"`
	// SuccessStatusCodes lists the response codes treated as success.
	// Empty means any 2xx response.
	SuccessStatusCodes []uint16 `yaml:"success_status_codes,omitempty" json:"success_status_codes,omitempty"`
	// Body is the optional request body, keyed by content type.
	Body *Body `yaml:"body,omitempty"                 json:"body,omitempty"`
	// Schedule is a cron expression determining when the task fires.
	Schedule string `yaml:"schedule,omitempty"             json:"schedule,omitempty"`
	// Timeout bounds a single execution attempt.
	Timeout Duration `yaml:"timeout,omitempty"              json:"timeout,omitempty"`
}

// CronSchedule returns the task's schedule expression, falling back to
// DefaultSchedule.
func (t *Task) CronSchedule() string {
	if t.Schedule == "" {
		return DefaultSchedule
	}
	return t.Schedule
}

// IsSuccess reports whether an HTTP status code counts as a successful run.
func (t *Task) IsSuccess(status int) bool {
	if len(t.SuccessStatusCodes) == 0 {
		return status >= 200 && status < 300
	}
	for _, code := range t.SuccessStatusCodes {
		if int(code) == status {
			return true
		}
	}
	return false
}

// Validate checks the config for completeness and consistency. The first
// violation aborts validation.
func (c *Config) Validate() error {
	if len(c.Tasks) == 0 {
		return fmt.Errorf("tasks: at least one task is required")
	}
	seen := make(map[string]bool, len(c.Tasks))
	for i := range c.Tasks {
		t := &c.Tasks[i]
		if err := t.Validate(); err != nil {
			return fmt.Errorf("tasks[%d]: %w", i, err)
		}
		if seen[t.Name] {
			return fmt.Errorf("tasks[%d]: duplicate task name %q", i, t.Name)
		}
		seen[t.Name] = true
	}
	return nil
}

func (t *Task) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("name is required")
	}
	if t.Method == "" {
		return fmt.Errorf("method is required")
	}
	if err := validateURL(t.URL); err != nil {
		return fmt.Errorf("url: %w", err)
	}
	if t.Schedule != "" {
		if _, err := cron.ParseStandard(t.Schedule); err != nil {
			return fmt.Errorf("schedule: %w", err)
		}
	}
	if t.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative: got %s", t.Timeout.Std())
	}
	return nil
}

func validateURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("url is required")
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if !parsed.IsAbs() || parsed.Host == "" {
		return fmt.Errorf("must be an absolute URL: got %q", raw)
	}
	return nil
}
