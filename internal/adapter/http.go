// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/credstore/internal/config"
	"github.com/MKhiriev/credstore/internal/logger"
	"github.com/MKhiriev/credstore/models"
)

type httpServerAdapter struct {
	client *resty.Client

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// cfg.HTTPAddress and configures the underlying client with the resolved
// base URL and request timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// parseBearerToken extracts the token from an "Authorization: Bearer <token>"
// response header value.
func parseBearerToken(header string) (string, error) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrMissingBearerToken
	}
	return parts[1], nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	var registered models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&registered).
		Post("/api/user/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("register: %w", err)
	}

	h.SetToken(token)
	return registered, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.User, error) {
	var foundUser models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&foundUser).
		Post("/api/user/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("login: %w", err)
	}

	h.SetToken(token)
	return foundUser, nil
}

// listQueryParams renders the filter as the query parameters the server's
// list routes read.
func listQueryParams(filter models.ListFilter) map[string]string {
	filter = filter.Normalize()

	params := map[string]string{
		"page":     strconv.Itoa(filter.Page),
		"per_page": strconv.Itoa(filter.PerPage),
	}
	if filter.Query != "" {
		params["q"] = filter.Query
	}
	if filter.Type != "" {
		params["type"] = filter.Type
	}
	if filter.FavoritesOnly {
		params["favorites"] = "1"
	}

	return params
}

func (h *httpServerAdapter) ListCredentials(ctx context.Context, filter models.ListFilter) (models.CredentialList, error) {
	var list models.CredentialList

	resp, err := h.authedRequest(ctx).
		SetQueryParams(listQueryParams(filter)).
		SetResult(&list).
		Get("/api/credentials")
	if err != nil {
		return models.CredentialList{}, fmt.Errorf("list credentials request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CredentialList{}, err
	}

	return list, nil
}

func (h *httpServerAdapter) GetCredential(ctx context.Context, id int64) (models.Credential, error) {
	var credential models.Credential

	resp, err := h.authedRequest(ctx).
		SetResult(&credential).
		Get(fmt.Sprintf("/api/credentials/%d", id))
	if err != nil {
		return models.Credential{}, fmt.Errorf("get credential request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Credential{}, err
	}

	return credential, nil
}

func (h *httpServerAdapter) CreateCredential(ctx context.Context, credential models.Credential) (models.Credential, error) {
	var created models.Credential

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credential).
		SetResult(&created).
		Post("/api/credentials")
	if err != nil {
		return models.Credential{}, fmt.Errorf("create credential request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Credential{}, err
	}

	return created, nil
}

func (h *httpServerAdapter) UpdateCredential(ctx context.Context, credential models.Credential) (models.Credential, error) {
	var updated models.Credential

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credential).
		SetResult(&updated).
		Put(fmt.Sprintf("/api/credentials/%d", credential.ID))
	if err != nil {
		return models.Credential{}, fmt.Errorf("update credential request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Credential{}, err
	}

	return updated, nil
}

func (h *httpServerAdapter) DeleteCredential(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).
		Delete(fmt.Sprintf("/api/credentials/%d", id))
	if err != nil {
		return fmt.Errorf("delete credential request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ToggleCredentialFavorite(ctx context.Context, id int64) (bool, error) {
	resp, err := h.authedRequest(ctx).
		Post(fmt.Sprintf("/api/credentials/%d/favorite", id))
	if err != nil {
		return false, fmt.Errorf("toggle credential favorite request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	return decodeFavoriteFlag(resp.Body())
}

func (h *httpServerAdapter) ListNotes(ctx context.Context, filter models.ListFilter) (models.SecureNoteList, error) {
	var list models.SecureNoteList

	resp, err := h.authedRequest(ctx).
		SetQueryParams(listQueryParams(filter)).
		SetResult(&list).
		Get("/api/notes")
	if err != nil {
		return models.SecureNoteList{}, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SecureNoteList{}, err
	}

	return list, nil
}

func (h *httpServerAdapter) GetNote(ctx context.Context, id int64) (models.SecureNote, error) {
	var note models.SecureNote

	resp, err := h.authedRequest(ctx).
		SetResult(&note).
		Get(fmt.Sprintf("/api/notes/%d", id))
	if err != nil {
		return models.SecureNote{}, fmt.Errorf("get note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SecureNote{}, err
	}

	return note, nil
}

func (h *httpServerAdapter) CreateNote(ctx context.Context, note models.SecureNote) (models.SecureNote, error) {
	var created models.SecureNote

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(note).
		SetResult(&created).
		Post("/api/notes")
	if err != nil {
		return models.SecureNote{}, fmt.Errorf("create note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SecureNote{}, err
	}

	return created, nil
}

func (h *httpServerAdapter) UpdateNote(ctx context.Context, note models.SecureNote) (models.SecureNote, error) {
	var updated models.SecureNote

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(note).
		SetResult(&updated).
		Put(fmt.Sprintf("/api/notes/%d", note.ID))
	if err != nil {
		return models.SecureNote{}, fmt.Errorf("update note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SecureNote{}, err
	}

	return updated, nil
}

func (h *httpServerAdapter) DeleteNote(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).
		Delete(fmt.Sprintf("/api/notes/%d", id))
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ToggleNoteFavorite(ctx context.Context, id int64) (bool, error) {
	resp, err := h.authedRequest(ctx).
		Post(fmt.Sprintf("/api/notes/%d/favorite", id))
	if err != nil {
		return false, fmt.Errorf("toggle note favorite request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	return decodeFavoriteFlag(resp.Body())
}

func (h *httpServerAdapter) Dashboard(ctx context.Context) (models.DashboardStats, error) {
	var stats models.DashboardStats

	resp, err := h.authedRequest(ctx).
		SetResult(&stats).
		Get("/api/dashboard")
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("dashboard request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DashboardStats{}, err
	}

	return stats, nil
}

func (h *httpServerAdapter) RecentActivity(ctx context.Context, limit int) ([]models.ActivityLog, error) {
	var entries []models.ActivityLog

	resp, err := h.authedRequest(ctx).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(&entries).
		Get("/api/activity")
	if err != nil {
		return nil, fmt.Errorf("activity request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return entries, nil
}

func (h *httpServerAdapter) ExportCredentialsCSV(ctx context.Context) ([]byte, error) {
	resp, err := h.authedRequest(ctx).
		Get("/api/export/credentials")
	if err != nil {
		return nil, fmt.Errorf("export request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

func (h *httpServerAdapter) GetAppInfo(ctx context.Context) (models.AppInfo, error) {
	var info models.AppInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/api/version")
	if err != nil {
		return models.AppInfo{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppInfo{}, err
	}

	return info, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func decodeFavoriteFlag(body []byte) (bool, error) {
	var payload map[string]bool
	if err := json.Unmarshal(body, &payload); err != nil {
		return false, fmt.Errorf("decode favorite response: %w", err)
	}
	return payload["is_favorite"], nil
}
