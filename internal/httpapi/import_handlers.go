package httpapi

import (
	"encoding/json"
	"net/http"
)

type ImportHandler struct {
	Importer Importer
}

type importRequest struct {
	URL string `json:"url"`
}

// Import runs the webpage extraction pipeline. The response is always a
// JobRecord; extraction failures show up as warnings on the record, not as
// HTTP errors. Only a malformed request body is a 400.
func (h ImportHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	rec := h.Importer.FromURL(r.Context(), req.URL)
	writeJSON(w, rec)
}
