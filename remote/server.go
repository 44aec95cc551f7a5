package remote

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
)

// submitRequest is the POST /jobs body.
type submitRequest struct {
	Program Program `json:"program"`
	Shots   int     `json:"shots"`
}

// submitResponse is the POST /jobs reply.
type submitResponse struct {
	ID string `json:"id"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handler serves a backend over HTTP: POST /jobs submits, GET
// /jobs/{id} polls, DELETE /jobs/{id} cancels.
func Handler(b Backend) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /jobs", func(w http.ResponseWriter, r *http.Request) {
		var req submitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		id, err := b.Submit(req.Program, req.Shots)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		log.Debug("job submitted", "backend", b.Name(), "id", id, "shots", req.Shots)
		writeJSON(w, http.StatusAccepted, submitResponse{ID: id})
	})

	mux.HandleFunc("GET /jobs/{id}", func(w http.ResponseWriter, r *http.Request) {
		job, err := b.Job(r.PathValue("id"))
		if err != nil {
			writeError(w, statusFor(err), err)
			return
		}
		writeJSON(w, http.StatusOK, job)
	})

	mux.HandleFunc("DELETE /jobs/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if err := b.Cancel(id); err != nil {
			writeError(w, statusFor(err), err)
			return
		}
		log.Debug("job canceled", "backend", b.Name(), "id", id)
		w.WriteHeader(http.StatusNoContent)
	})

	return mux
}

func statusFor(err error) int {
	if errors.Is(err, ErrUnknownJob) {
		return http.StatusNotFound
	}
	return http.StatusConflict
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("response encode failed", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
