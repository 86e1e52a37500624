package httpapi

import (
	"net/http"
	"sync/atomic"

	"apptrack-engine/internal/config"
)

type ConfigHandler struct {
	CfgVal *atomic.Value // config.Config
}

func (h ConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	cfg, _ := h.CfgVal.Load().(config.Config)
	writeJSON(w, cfg)
}
