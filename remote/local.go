package remote

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"qvecsim/sim"
)

// LocalBackend runs programs in process. Jobs stay QUEUED until first
// polled, then run to completion on that poll, so a submit/cancel/poll
// sequence behaves the same as against a remote queue.
type LocalBackend struct {
	mu      sync.Mutex
	sampler *sim.Sampler
	jobs    map[string]*localJob
}

type localJob struct {
	job     Job
	program Program
}

// NewLocalBackend returns a backend sampling with the given seed.
func NewLocalBackend(seed int64) *LocalBackend {
	return &LocalBackend{
		sampler: sim.NewSeededSampler(seed),
		jobs:    make(map[string]*localJob),
	}
}

func (b *LocalBackend) Name() string { return "local" }

// Submit validates the program and queues it under a fresh job ID.
func (b *LocalBackend) Submit(p Program, shots int) (string, error) {
	if _, err := DecodeProgram(p); err != nil {
		return "", err
	}
	if shots < 1 {
		return "", fmt.Errorf("%w: %d shots", ErrBadProgram, shots)
	}

	id := uuid.NewString()
	b.mu.Lock()
	b.jobs[id] = &localJob{
		job:     Job{ID: id, Status: StatusQueued, Shots: shots},
		program: p,
	}
	b.mu.Unlock()
	return id, nil
}

// Job reports a job's state, running it first if it is still queued.
func (b *LocalBackend) Job(id string) (Job, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	lj, ok := b.jobs[id]
	if !ok {
		return Job{}, fmt.Errorf("%w: %q", ErrUnknownJob, id)
	}
	if lj.job.Status == StatusQueued {
		b.run(lj)
	}
	return lj.job, nil
}

// Cancel marks a job CANCELED if it has not run yet.
func (b *LocalBackend) Cancel(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	lj, ok := b.jobs[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownJob, id)
	}
	if lj.job.Status.Terminal() {
		return fmt.Errorf("remote: job %q already %s", id, lj.job.Status)
	}
	lj.job.Status = StatusCanceled
	return nil
}

func (b *LocalBackend) run(lj *localJob) {
	lj.job.Status = StatusRunning

	c, err := DecodeProgram(lj.program)
	if err != nil {
		lj.job.Status = StatusFailed
		lj.job.Error = err.Error()
		return
	}
	outcomes, err := b.sampler.Shots(c, lj.job.Shots)
	if err != nil {
		lj.job.Status = StatusFailed
		lj.job.Error = err.Error()
		return
	}

	counts := make(map[string]int)
	for _, label := range outcomes {
		counts[label]++
	}
	lj.job.Counts = counts
	lj.job.Status = StatusCompleted
}
