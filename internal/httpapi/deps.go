package httpapi

import (
	"context"
	"sync/atomic"

	"apptrack-engine/internal/domain"
	"apptrack-engine/internal/events"
	"apptrack-engine/internal/openjobs"
)

// Importer is the webpage extraction entrypoint (inject for testability).
type Importer interface {
	FromURL(ctx context.Context, url string) domain.JobRecord
}

// Refresher is the open-jobs refresh surface the API needs.
type Refresher interface {
	Refresh(ctx context.Context) error
	Status() openjobs.Status
}

type Deps struct {
	Hub *events.Hub

	Importer Importer

	OpenJobs        *openjobs.Cache
	Refresher       Refresher
	OpenJobsMaxDays int // default ?days= filter, 0 = all

	// Atomic store of config.Config for handlers that read live config.
	CfgVal *atomic.Value
}
