package http

import (
	"net/http"

	"github.com/MKhiriev/credstore/internal/utils"
)

func (h *Handler) getAppInfo(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetAppInfo(r.Context())

	utils.WriteJSON(w, info, http.StatusOK)
}
