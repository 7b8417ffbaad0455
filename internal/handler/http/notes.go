package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/credstore/internal/logger"
	"github.com/MKhiriev/credstore/internal/utils"
	"github.com/MKhiriev/credstore/models"
)

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	list, err := h.services.NoteService.List(ctx, userID, listFilterFromRequest(r))
	if err != nil {
		log.Err(err).Str("func", "*Handler.listNotes").Msg("error listing notes")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, list, http.StatusOK)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var note models.SecureNote
	if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	note.UserID = userID

	created, err := h.services.NoteService.Create(ctx, note)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg("error creating note")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	h.services.ActivityService.Record(ctx, activityEntry(r, userID, models.ActionCreateNote,
		fmt.Sprintf("Created note %q", created.Title)))

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
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

	note, err := h.services.NoteService.Get(ctx, userID, id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getNote").Int64("id", id).Msg("error getting note")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	h.services.ActivityService.Record(ctx, activityEntry(r, userID, models.ActionViewNote,
		fmt.Sprintf("Viewed note %q", note.Title)))

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
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

	var note models.SecureNote
	if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
		log.Err(err).Str("func", "*Handler.updateNote").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	note.ID = id
	note.UserID = userID

	updated, err := h.services.NoteService.Update(ctx, note)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateNote").Int64("id", id).Msg("error updating note")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	h.services.ActivityService.Record(ctx, activityEntry(r, userID, models.ActionUpdateNote,
		fmt.Sprintf("Updated note %q", updated.Title)))

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
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

	if err := h.services.NoteService.Delete(ctx, userID, id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteNote").Int64("id", id).Msg("error deleting note")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	h.services.ActivityService.Record(ctx, activityEntry(r, userID, models.ActionDeleteNote,
		fmt.Sprintf("Deleted note #%d", id)))

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) toggleNoteFavorite(w http.ResponseWriter, r *http.Request) {
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

	isFavorite, err := h.services.NoteService.ToggleFavorite(ctx, userID, id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.toggleNoteFavorite").Int64("id", id).Msg("error toggling favorite")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, map[string]bool{"is_favorite": isFavorite}, http.StatusOK)
}
