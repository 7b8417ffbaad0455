package http

import (
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/credstore/models"
)

// recordID parses the {id} path parameter of a record route.
func recordID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, ErrInvalidRecordID
	}
	return id, nil
}

// listFilterFromRequest reads the list query parameters shared by the
// credential and note listing routes:
//
//	q          — case-insensitive substring search
//	type       — restrict to one record type ("all" disables the filter)
//	favorites  — "1"/"true" restricts to favorites
//	page       — 1-based page number
//	per_page   — page size, clamped by the model layer
func listFilterFromRequest(r *http.Request) models.ListFilter {
	query := r.URL.Query()

	filter := models.ListFilter{
		Query: strings.TrimSpace(query.Get("q")),
		Type:  strings.TrimSpace(query.Get("type")),
	}

	switch query.Get("favorites") {
	case "1", "true":
		filter.FavoritesOnly = true
	}

	if page, err := strconv.Atoi(query.Get("page")); err == nil {
		filter.Page = page
	}
	if perPage, err := strconv.Atoi(query.Get("per_page")); err == nil {
		filter.PerPage = perPage
	}

	return filter.Normalize()
}

// clientIP returns the originating address of the request: the first entry
// of X-Forwarded-For when present, the transport peer address otherwise.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// activityEntry pre-fills an activity log entry with the request's client
// address and user agent.
func activityEntry(r *http.Request, userID int64, action, description string) models.ActivityLog {
	return models.ActivityLog{
		UserID:      userID,
		Action:      action,
		Description: description,
		IPAddress:   clientIP(r),
		UserAgent:   r.UserAgent(),
	}
}
