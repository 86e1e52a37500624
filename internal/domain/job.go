package domain

import "time"

// JobRecord is the output shape shared by the webpage extraction pipeline
// and the open-jobs markdown ingester. Every field except SourceURL may be
// empty; a low-quality page legitimately yields only SourceURL plus warnings.
type JobRecord struct {
	Role        string     `json:"role,omitempty"`
	Company     string     `json:"company,omitempty"`
	Location    string     `json:"location,omitempty"`
	Description string     `json:"description,omitempty"`
	SourceURL   string     `json:"sourceUrl"`
	DatePosted  *time.Time `json:"datePosted,omitempty"` // markdown-ingested records only
	Confidence  int        `json:"confidence"`
	Warnings    []string   `json:"warnings,omitempty"` // insertion order, duplicates kept
}

// AddWarning appends a human-readable note about a missing or uncertain field.
func (r *JobRecord) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}
