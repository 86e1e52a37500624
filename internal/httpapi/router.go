package httpapi

import "net/http"

func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	// Health
	hh := HealthHandler{}
	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.Health,
	}))

	// Webpage import
	ih := ImportHandler{Importer: d.Importer}
	mux.HandleFunc("/import", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ih.Import,
	}))

	// Open jobs (markdown-ingested cache)
	oh := OpenJobsHandler{
		Cache:      d.OpenJobs,
		Refresher:  d.Refresher,
		MaxAgeDays: d.OpenJobsMaxDays,
	}
	mux.HandleFunc("/open-jobs", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: oh.List,
	}))
	mux.HandleFunc("/open-jobs/status", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: oh.Status,
	}))
	mux.HandleFunc("/open-jobs/refresh", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: oh.Refresh,
	}))

	// Config (read-only; edits happen in the yaml file)
	ch := ConfigHandler{CfgVal: d.CfgVal}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
	}))

	// SSE events
	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	return mux
}
