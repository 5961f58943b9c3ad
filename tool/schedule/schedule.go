package schedule

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/araddon/dateparse"
	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
	"github.com/robfig/cron/v3"

	"github.com/wayfarer-ai/wayfarer/tool"
	"github.com/wayfarer-ai/wayfarer/utils/json"
)

// Job is a validated schedule descriptor handed to the scheduling
// collaborator. Exactly one of RunAt and Cron is set.
type Job struct {
	ID    string    `json:"id"`
	Task  string    `json:"task"`
	RunAt time.Time `json:"run_at,omitempty"`
	Cron  string    `json:"cron,omitempty"`
}

// Scheduler is the scheduling collaborator. Schedule returns the
// assigned job ID.
type Scheduler interface {
	Schedule(ctx context.Context, job Job) (string, error)
}

// MemoryScheduler keeps accepted jobs in memory. It stands in for a
// real scheduling service in tests and single-process setups.
type MemoryScheduler struct {
	mu   sync.Mutex
	jobs []Job
}

// NewMemoryScheduler creates an empty in-memory scheduler.
func NewMemoryScheduler() *MemoryScheduler {
	return &MemoryScheduler{}
}

// Schedule assigns the job an ID and retains it.
func (s *MemoryScheduler) Schedule(_ context.Context, job Job) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job.ID = uuid.NewString()
	s.jobs = append(s.jobs, job)
	return job.ID, nil
}

// Jobs returns the accepted jobs in arrival order.
func (s *MemoryScheduler) Jobs() []Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	jobs := make([]Job, len(s.jobs))
	copy(jobs, s.jobs)
	return jobs
}

type scheduleRequest struct {
	Task         string `mapstructure:"task"`
	At           string `mapstructure:"at"`
	DelaySeconds int    `mapstructure:"delay_seconds"`
	Cron         string `mapstructure:"cron"`
}

// Tool schedules a named task for later execution. Register it
// confirmation-required: scheduling acts on the outside world.
type Tool struct {
	scheduler Scheduler
	now       func() time.Time
}

var _ tool.Tool = &Tool{}

// Options represents the configuration options for the schedule tool.
type Options struct {
	// Scheduler overrides the scheduling collaborator.
	Scheduler Scheduler
	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Option is a function that configures Options.
type Option func(*Options)

// WithScheduler sets the scheduling collaborator.
func WithScheduler(scheduler Scheduler) Option {
	return func(o *Options) {
		o.Scheduler = scheduler
	}
}

// WithClock sets the clock function.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		o.Now = now
	}
}

// New creates a schedule tool backed by an in-memory scheduler unless
// overridden.
func New(opts ...Option) *Tool {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}
	scheduler := options.Scheduler
	if scheduler == nil {
		scheduler = NewMemoryScheduler()
	}
	now := options.Now
	if now == nil {
		now = time.Now
	}
	return &Tool{scheduler: scheduler, now: now}
}

// Name returns the name of the tool.
func (t *Tool) Name() string {
	return "ScheduleTask"
}

// Description returns the description of the tool.
func (t *Tool) Description() string {
	bytes, _ := json.Marshal(t.Schema())
	return `Schedule a task to run later.
Provide the task label and exactly one of: an absolute timestamp, a delay in seconds, or a cron expression.
Input must be json schema: ` + string(bytes) + `
Example Input: {"task": "send itinerary reminder", "delay_seconds": 3600}`
}

func (t *Tool) Schema() *tool.PropertiesSchema {
	return &tool.PropertiesSchema{
		Type: tool.TypeJson,
		Properties: map[string]tool.PropertySchema{
			"task": {
				Type:        tool.TypeString,
				Description: "Label of the task to run",
			},
			"at": {
				Type:        tool.TypeString,
				Description: "Absolute timestamp to run at, e.g. 2024-05-01 09:00",
			},
			"delay_seconds": {
				Type:        tool.TypeNumber,
				Description: "Delay from now in seconds",
			},
			"cron": {
				Type:        tool.TypeString,
				Description: "Standard 5-field cron expression, e.g. '0 9 * * *'",
			},
		},
		Required: []string{"task"},
	}
}

func (t *Tool) Strict() bool {
	return true
}

// Call validates the schedule descriptor and hands it to the scheduler.
func (t *Tool) Call(ctx context.Context, input string) (string, error) {
	var params map[string]interface{}
	if err := json.Unmarshal([]byte(json.TrimJsonString(input)), &params); err != nil {
		return "json unmarshal error, please try again", nil
	}

	var req scheduleRequest
	if err := mapstructure.Decode(params, &req); err != nil {
		return "invalid input, please check the schema and try again", nil
	}
	if req.Task == "" {
		return "task parameter is required", nil
	}

	keys := 0
	if req.At != "" {
		keys++
	}
	if req.DelaySeconds != 0 {
		keys++
	}
	if req.Cron != "" {
		keys++
	}
	if keys != 1 {
		return "exactly one of at, delay_seconds or cron is required", nil
	}

	job := Job{Task: req.Task}
	switch {
	case req.At != "":
		runAt, err := dateparse.ParseAny(req.At)
		if err != nil {
			return fmt.Sprintf("could not parse timestamp %q", req.At), nil
		}
		job.RunAt = runAt
	case req.DelaySeconds != 0:
		if req.DelaySeconds < 0 {
			return "delay_seconds must be greater than 0", nil
		}
		job.RunAt = t.now().Add(time.Duration(req.DelaySeconds) * time.Second)
	case req.Cron != "":
		if _, err := cron.ParseStandard(req.Cron); err != nil {
			return fmt.Sprintf("invalid cron expression %q, expected 5 fields like '0 9 * * *'", req.Cron), nil
		}
		job.Cron = req.Cron
	}

	id, err := t.scheduler.Schedule(ctx, job)
	if err != nil {
		return "scheduling service unavailable, please try again later", nil
	}
	if job.Cron != "" {
		return fmt.Sprintf("scheduled task %q on cron %q, job id %s", job.Task, job.Cron, id), nil
	}
	return fmt.Sprintf("scheduled task %q for %s, job id %s",
		job.Task, job.RunAt.Format(time.RFC3339), id), nil
}
