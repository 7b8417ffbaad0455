package http

import (
	"net/http"

	"github.com/MKhiriev/credstore/internal/logger"
	"github.com/MKhiriev/credstore/internal/utils"
)

func (h *Handler) getDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	stats, err := h.services.DashboardService.Stats(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getDashboard").Msg("error building dashboard stats")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}
