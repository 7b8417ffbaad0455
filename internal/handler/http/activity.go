package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/credstore/internal/logger"
	"github.com/MKhiriev/credstore/internal/utils"
)

// defaultActivityLimit is how many entries the activity route returns when
// the caller does not ask for a specific limit.
const defaultActivityLimit = 20

// maxActivityLimit caps the number of entries one request may fetch.
const maxActivityLimit = 100

func (h *Handler) getActivity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	limit := defaultActivityLimit
	if parsed, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && parsed > 0 {
		limit = parsed
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}

	entries, err := h.services.ActivityService.Recent(ctx, userID, limit)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getActivity").Msg("error reading activity history")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}
