package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/credstore/internal/logger"
	"github.com/MKhiriev/credstore/internal/utils"
	"github.com/MKhiriev/credstore/models"
)

func (h *Handler) listCredentials(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	list, err := h.services.CredentialService.List(ctx, userID, listFilterFromRequest(r))
	if err != nil {
		log.Err(err).Str("func", "*Handler.listCredentials").Msg("error listing credentials")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, list, http.StatusOK)
}

func (h *Handler) createCredential(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var credential models.Credential
	if err := json.NewDecoder(r.Body).Decode(&credential); err != nil {
		log.Err(err).Str("func", "*Handler.createCredential").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	credential.UserID = userID

	created, err := h.services.CredentialService.Create(ctx, credential)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createCredential").Msg("error creating credential")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	h.services.ActivityService.Record(ctx, activityEntry(r, userID, models.ActionCreateCredential,
		fmt.Sprintf("Created credential %q", created.Label)))

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getCredential(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	id, err := recordID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	credential, err := h.services.CredentialService.Get(ctx, userID, id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getCredential").Int64("id", id).Msg("error getting credential")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	h.services.ActivityService.Record(ctx, activityEntry(r, userID, models.ActionViewCredential,
		fmt.Sprintf("Viewed credential %q", credential.Label)))

	utils.WriteJSON(w, credential, http.StatusOK)
}

func (h *Handler) updateCredential(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	id, err := recordID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var credential models.Credential
	if err := json.NewDecoder(r.Body).Decode(&credential); err != nil {
		log.Err(err).Str("func", "*Handler.updateCredential").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	credential.ID = id
	credential.UserID = userID

	updated, err := h.services.CredentialService.Update(ctx, credential)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateCredential").Int64("id", id).Msg("error updating credential")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	h.services.ActivityService.Record(ctx, activityEntry(r, userID, models.ActionUpdateCredential,
		fmt.Sprintf("Updated credential %q", updated.Label)))

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteCredential(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	id, err := recordID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.CredentialService.Delete(ctx, userID, id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteCredential").Int64("id", id).Msg("error deleting credential")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	h.services.ActivityService.Record(ctx, activityEntry(r, userID, models.ActionDeleteCredential,
		fmt.Sprintf("Deleted credential #%d", id)))

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) toggleCredentialFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	id, err := recordID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	isFavorite, err := h.services.CredentialService.ToggleFavorite(ctx, userID, id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.toggleCredentialFavorite").Int64("id", id).Msg("error toggling favorite")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, map[string]bool{"is_favorite": isFavorite}, http.StatusOK)
}
