// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/credstore/internal/adapter"
	"github.com/MKhiriev/credstore/models"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages
// 4) delegates all other messages to the active page
type RootModel struct {
	ctx    context.Context
	pages  map[string]tea.Model
	server adapter.ServerAdapter

	current tea.Model

	quitByUser bool
	resultUser models.User

	showAppInfo bool
	appInfo     models.AppInfo
	appInfoErr  error
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(ctx context.Context, pages map[string]tea.Model, startPage string, server adapter.ServerAdapter) RootModel {
	return RootModel{
		ctx:     ctx,
		pages:   pages,
		server:  server,
		current: pages[startPage],
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkey for every page.
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "v":
			if r.isMenuPage() {
				r.showAppInfo = !r.showAppInfo
				if r.showAppInfo {
					return r, r.cmdLoadAppInfo()
				}
				return r, nil
			}
		case "esc":
			if r.showAppInfo {
				r.showAppInfo = false
				return r, nil
			}
		}

		if r.showAppInfo {
			return r, nil
		}
	}

	if info, ok := msg.(appInfoLoadedMsg); ok {
		r.appInfo = info.info
		r.appInfoErr = info.err
		return r, nil
	}

	// Cross-page navigation.
	if nav, ok := msg.(NavigateTo); ok {
		next, exists := r.pages[nav.Page]
		if !exists {
			return r, nil
		}

		r.showAppInfo = false
		r.current = next

		if nav.Payload != nil {
			return r, func() tea.Msg { return nav.Payload }
		}
		return r, r.current.Init()
	}

	// Finalize the login flow on success.
	if result, ok := msg.(LoginResult); ok && result.Err == nil {
		r.resultUser = result.User
		return r, tea.Quit
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showAppInfo {
		return r.renderAppInfoWindow()
	}
	if r.current == nil {
		return renderPage("TUI", "", "")
	}
	return r.current.View()
}

func (r RootModel) isMenuPage() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}

func (r RootModel) cmdLoadAppInfo() tea.Cmd {
	ctx := r.ctx
	server := r.server

	return func() tea.Msg {
		info, err := server.GetAppInfo(ctx)
		return appInfoLoadedMsg{info: info, err: err}
	}
}

func (r RootModel) renderAppInfoWindow() string {
	var b strings.Builder

	if r.appInfoErr != nil {
		b.WriteString("Ошибка: ")
		b.WriteString(humanizeServerUnavailableError(r.appInfoErr))
	} else {
		b.WriteString("Название приложения: credstore\n")
		b.WriteString("Версия: ")
		b.WriteString(valueOrNA(r.appInfo.Version))
		b.WriteString("\n")
		b.WriteString("Дата: ")
		b.WriteString(valueOrNA(r.appInfo.BuildDate))
		b.WriteString("\n")
		b.WriteString("Коммит: ")
		b.WriteString(valueOrNA(r.appInfo.BuildCommit))
	}

	return renderPage("ИНФОРМАЦИЯ О ПРОГРАММЕ", b.String(), "esc: назад")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
