package remote

import "errors"

// JobStatus is the lifecycle state of a submitted job.
type JobStatus string

const (
	StatusQueued    JobStatus = "QUEUED"
	StatusRunning   JobStatus = "RUNNING"
	StatusCompleted JobStatus = "COMPLETED"
	StatusFailed    JobStatus = "FAILED"
	StatusCanceled  JobStatus = "CANCELED"
)

// Terminal reports whether the status can no longer change.
func (s JobStatus) Terminal() bool {
	switch s {
	case StatusCompleted, StatusFailed, StatusCanceled:
		return true
	}
	return false
}

// ErrUnknownJob reports a job ID the backend has never seen.
var ErrUnknownJob = errors.New("remote: unknown job")

// Job is a submitted program and its outcome. Counts holds the
// measured bitstring tallies once the status is COMPLETED; Error holds
// the failure message once it is FAILED.
type Job struct {
	ID     string         `json:"id"`
	Status JobStatus      `json:"status"`
	Shots  int            `json:"shots"`
	Counts map[string]int `json:"counts,omitempty"`
	Error  string         `json:"error,omitempty"`
}

// Backend runs programs. Submit returns a job ID immediately; Job
// reports the job's current state.
type Backend interface {
	Name() string
	Submit(p Program, shots int) (string, error)
	Job(id string) (Job, error)
	Cancel(id string) error
}
