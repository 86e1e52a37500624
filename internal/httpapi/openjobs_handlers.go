package httpapi

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"apptrack-engine/internal/domain"
	"apptrack-engine/internal/openjobs"
)

type OpenJobsHandler struct {
	Cache      *openjobs.Cache
	Refresher  Refresher
	MaxAgeDays int
}

// List serves the cached posting list. ?days=N keeps only postings newer
// than N days; 0 (or absent with no configured default) means everything.
func (h OpenJobsHandler) List(w http.ResponseWriter, r *http.Request) {
	days := h.MaxAgeDays
	if q := r.URL.Query().Get("days"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n < 0 {
			WriteError(w, r, http.StatusBadRequest, "bad_request", "days must be a non-negative integer")
			return
		}
		days = n
	}

	list := h.Cache.Get()
	if days > 0 {
		cutoff := time.Now().UTC().AddDate(0, 0, -days)
		var kept []domain.JobRecord
		for _, j := range list {
			if j.DatePosted != nil && j.DatePosted.After(cutoff) {
				kept = append(kept, j)
			}
		}
		list = kept
	}

	writeJSON(w, map[string]any{
		"jobs":  list,
		"count": len(list),
	})
}

func (h OpenJobsHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Refresher.Status())
}

// Refresh triggers an out-of-band feed refresh. Concurrent triggers collapse
// inside the refresher; the handler returns immediately.
func (h OpenJobsHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if h.Refresher.Status().Running {
		writeJSON(w, map[string]any{"ok": false, "msg": "already running"})
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		_ = h.Refresher.Refresh(ctx)
	}()

	writeJSON(w, map[string]any{"ok": true})
}
