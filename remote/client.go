package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"qvecsim/circuit"
)

// ErrRemote reports a non-success reply from the service.
var ErrRemote = errors.New("remote: request failed")

// Client talks to a job service speaking the Handler routes.
type Client struct {
	base string
	http *http.Client
}

// NewClient returns a client for the service at base, e.g.
// "http://localhost:8080". A nil httpClient uses a 30 second timeout.
func NewClient(base string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{base: base, http: httpClient}
}

// Submit sends the circuit for execution and returns its job ID.
func (c *Client) Submit(ctx context.Context, circ *circuit.Circuit, shots int) (string, error) {
	p, err := EncodeProgram(circ)
	if err != nil {
		return "", err
	}
	body, err := json.Marshal(submitRequest{Program: p, Shots: shots})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/jobs", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	var resp submitResponse
	if err := c.do(req, http.StatusAccepted, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

// Job polls a job's current state.
func (c *Client) Job(ctx context.Context, id string) (Job, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/jobs/"+id, nil)
	if err != nil {
		return Job{}, err
	}
	var job Job
	if err := c.do(req, http.StatusOK, &job); err != nil {
		return Job{}, err
	}
	return job, nil
}

// Cancel asks the service to drop a queued job.
func (c *Client) Cancel(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.base+"/jobs/"+id, nil)
	if err != nil {
		return err
	}
	return c.do(req, http.StatusNoContent, nil)
}

// Wait polls at the given interval until the job reaches a terminal
// status or ctx is done.
func (c *Client) Wait(ctx context.Context, id string, interval time.Duration) (Job, error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		job, err := c.Job(ctx, id)
		if err != nil {
			return Job{}, err
		}
		if job.Status.Terminal() {
			return job, nil
		}
		select {
		case <-ctx.Done():
			return Job{}, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (c *Client) do(req *http.Request, wantStatus int, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		var er errorResponse
		if json.NewDecoder(resp.Body).Decode(&er) == nil && er.Error != "" {
			return fmt.Errorf("%w: %s (HTTP %d)", ErrRemote, er.Error, resp.StatusCode)
		}
		return fmt.Errorf("%w: HTTP %d", ErrRemote, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
