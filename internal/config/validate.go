package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate fills defaults and sanity-checks the rest.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	if out.App.Port == 0 {
		out.App.Port = 38471
	}

	if strings.TrimSpace(out.OpenJobs.FeedURL) == "" {
		res.addErr("open_jobs.feed_url is required")
	} else if !strings.HasPrefix(out.OpenJobs.FeedURL, "https://") {
		res.addWarn("open_jobs.feed_url is not https: %q", out.OpenJobs.FeedURL)
	}

	if out.OpenJobs.RefreshHours <= 0 {
		out.OpenJobs.RefreshHours = 12
	} else if out.OpenJobs.RefreshHours < 6 {
		res.addWarn("open_jobs.refresh_hours is very low (%d); the feed changes slowly.", out.OpenJobs.RefreshHours)
	}

	if out.OpenJobs.MaxAgeDays < 0 {
		res.addErr("open_jobs.max_age_days must be >= 0")
	}

	if out.Extract.RequestsPerSec <= 0 {
		out.Extract.RequestsPerSec = 2
	}
	if out.Extract.Burst <= 0 {
		out.Extract.Burst = 4
	}

	return out, res
}
