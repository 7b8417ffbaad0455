package http

import (
	"net/http"

	"github.com/MKhiriev/credstore/internal/logger"
	"github.com/MKhiriev/credstore/internal/utils"
	"github.com/MKhiriev/credstore/models"
)

func (h *Handler) exportCredentials(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	data, err := h.services.ExportService.ExportCredentialsCSV(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.exportCredentials").Msg("error rendering credentials export")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	h.services.ActivityService.Record(ctx, activityEntry(r, userID, models.ActionExportData,
		"Exported credentials as CSV"))

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="credentials.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
