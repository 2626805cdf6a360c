package growth

import "context"

// Job runs one growth tick on a worker pool
type Job struct {
	svc Service
}

// NewJob wraps svc as a worker.Job
func NewJob(svc Service) *Job {
	return &Job{svc: svc}
}

// Process implements worker.Job
func (j *Job) Process(ctx context.Context) error {
	_, err := j.svc.Tick(ctx)
	return err
}
