package openjobs

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"apptrack-engine/internal/domain"
	"apptrack-engine/internal/events"

	"github.com/rs/zerolog/log"
)

// MaxFeedBytes caps the markdown feed download. The upstream README runs a
// few hundred KiB; anything past this is cut off rather than buffered.
const MaxFeedBytes = 4 << 20 // 4 MiB

// RawFetcher is the bounded plain-text fetch the refresher depends on.
type RawFetcher interface {
	FetchRaw(ctx context.Context, url string, limit int64) ([]byte, error)
}

// Snapshot persists the last good posting list across restarts. Optional.
type Snapshot interface {
	ReplaceOpenJobs(ctx context.Context, list []domain.JobRecord) error
	ListOpenJobs(ctx context.Context) ([]domain.JobRecord, error)
}

// Status is the refresh run bookkeeping exposed over the API.
type Status struct {
	LastRunAt string `json:"last_run_at"`
	LastOkAt  string `json:"last_ok_at"`
	LastError string `json:"last_error"`
	LastCount int    `json:"last_count"`
	Running   bool   `json:"running"`
}

// Refresher fetches the markdown feed on a cadence and swaps the cache.
// A failed fetch or parse leaves the previous cached list untouched.
type Refresher struct {
	Feed  string
	Fetch RawFetcher
	Cache *Cache
	Snap  Snapshot // may be nil
	Hub   *events.Hub

	status  atomic.Value // stores Status
	running atomic.Bool
}

func (r *Refresher) Status() Status {
	st, _ := r.status.Load().(Status)
	return st
}

// Warm loads the persisted snapshot into the cache before the first refresh,
// so /open-jobs is not empty right after a restart.
func (r *Refresher) Warm(ctx context.Context) {
	if r.Snap == nil {
		return
	}
	list, err := r.Snap.ListOpenJobs(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("open-jobs snapshot load failed")
		return
	}
	if len(list) > 0 && r.Cache.Len() == 0 {
		r.Cache.Replace(list)
		log.Info().Int("count", len(list)).Msg("open-jobs cache warmed from snapshot")
	}
}

// Refresh runs one fetch-parse-swap cycle. Concurrent calls collapse to one.
func (r *Refresher) Refresh(ctx context.Context) error {
	if !r.running.CompareAndSwap(false, true) {
		return nil
	}
	defer r.running.Store(false)

	now := time.Now().UTC()
	st := r.Status()
	st.LastRunAt = now.Format(time.RFC3339)
	st.Running = true
	r.status.Store(st)

	err := r.refreshOnce(ctx, now)

	st = r.Status()
	st.Running = false
	if err != nil {
		st.LastError = err.Error()
	} else {
		st.LastError = ""
		st.LastOkAt = time.Now().UTC().Format(time.RFC3339)
		st.LastCount = r.Cache.Len()
	}
	r.status.Store(st)
	return err
}

func (r *Refresher) refreshOnce(ctx context.Context, now time.Time) error {
	raw, err := r.Fetch.FetchRaw(ctx, r.Feed, MaxFeedBytes)
	if err != nil {
		return fmt.Errorf("fetch open-jobs feed: %w", err)
	}
	if len(raw) == 0 {
		return fmt.Errorf("open-jobs feed empty")
	}

	list := ParseTable(string(raw), now)
	log.Info().Int("count", len(list)).Int("bytes", len(raw)).Msg("open-jobs feed parsed")

	r.Cache.Replace(list)

	if r.Snap != nil {
		if err := r.Snap.ReplaceOpenJobs(ctx, list); err != nil {
			// snapshot is best-effort; the cache already has the new list
			log.Warn().Err(err).Msg("open-jobs snapshot save failed")
		}
	}

	if r.Hub != nil {
		r.Hub.Publish(events.MakeEvent("", "open_jobs_refreshed", 1, map[string]any{"count": len(list)}))
	}
	return nil
}
