// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/credstore/internal/adapter"
	"github.com/MKhiriev/credstore/models"
)

type mainSection int

const (
	sectionCredentials mainSection = iota
	sectionNotes
	sectionDashboard
)

type mainMode int

const (
	modeList mainMode = iota
	modeDetail
	modeCreate
	modeEdit
	modeConfirmDelete
)

const statusLifetime = 3 * time.Second

type clearStatusMsg struct{}

type mainLoopModel struct {
	ctx    context.Context
	server adapter.ServerAdapter
	user   models.User

	section mainSection
	mode    mainMode

	credentials models.CredentialList
	notes       models.SecureNoteList
	stats       models.DashboardStats

	idx           int
	page          int
	favoritesOnly bool
	searchInput   textinput.Model
	searching     bool
	query         string

	loading bool
	status  string
	errMsg  string

	detailCredential models.Credential
	detailNote       models.SecureNote
	revealSecrets    bool

	credForm formCredentialModel
	noteForm formNoteModel

	logout bool
}

func newMainLoopModel(ctx context.Context, server adapter.ServerAdapter, user models.User) mainLoopModel {
	searchInput := textinput.New()
	searchInput.Placeholder = "поиск"
	searchInput.Width = 30

	return mainLoopModel{
		ctx:         ctx,
		server:      server,
		user:        user,
		page:        1,
		loading:     true,
		searchInput: searchInput,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoadSection()
}

func (m mainLoopModel) filter() models.ListFilter {
	return models.ListFilter{
		Query:         m.query,
		FavoritesOnly: m.favoritesOnly,
		Page:          m.page,
	}.Normalize()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case credentialsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.credentials = msg.list
		m.clampIndex(len(m.credentials.Items))
		return m, nil

	case notesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.notes = msg.list
		m.clampIndex(len(m.notes.Items))
		return m, nil

	case dashboardLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.stats = msg.stats
		return m, nil

	case credentialOpenedMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.detailCredential = msg.credential
		m.revealSecrets = false
		m.mode = modeDetail
		return m, nil

	case noteOpenedMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.detailNote = msg.note
		m.mode = modeDetail
		return m, nil

	case itemSavedMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Сохранено"
		m.mode = modeList
		m.loading = true
		return m, tea.Batch(m.cmdLoadSection(), m.cmdClearStatus())

	case itemDeletedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Ошибка удаления: %v", msg.err)
			m.mode = modeList
			return m, nil
		}
		m.errMsg = ""
		m.status = "Удалено"
		m.mode = modeList
		m.loading = true
		return m, tea.Batch(m.cmdLoadSection(), m.cmdClearStatus())

	case favoriteToggledMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		if m.mode == modeDetail {
			if m.section == sectionCredentials {
				m.detailCredential.IsFavorite = msg.isFavorite
			} else {
				m.detailNote.IsFavorite = msg.isFavorite
			}
		}
		m.loading = true
		return m, m.cmdLoadSection()

	case exportDoneMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.status = "Экспортировано в " + msg.path
		return m, m.cmdClearStatus()

	case copiedMsg:
		m.status = msg.what + " скопирован в буфер обмена"
		return m, m.cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.forwardToActiveWidget(msg)
}

func (m mainLoopModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case modeList:
		return m.handleListKey(msg)
	case modeDetail:
		return m.handleDetailKey(msg)
	case modeCreate, modeEdit:
		return m.handleFormKey(msg)
	case modeConfirmDelete:
		return m.handleConfirmKey(msg)
	}
	return m, nil
}

func (m mainLoopModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Search input owns the keyboard while active.
	if m.searching {
		switch msg.String() {
		case "enter":
			m.searching = false
			m.searchInput.Blur()
			m.query = strings.TrimSpace(m.searchInput.Value())
			m.page = 1
			m.loading = true
			return m, m.cmdLoadSection()
		case "esc":
			m.searching = false
			m.searchInput.Blur()
			m.searchInput.SetValue(m.query)
			return m, nil
		}

		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "l":
		m.logout = true
		return m, tea.Quit
	case "tab":
		m.section = (m.section + 1) % 3
		m.idx = 0
		m.page = 1
		m.loading = true
		return m, m.cmdLoadSection()
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < m.sectionItemCount()-1 {
			m.idx++
		}
	case "left", "h":
		if m.page > 1 && m.section != sectionDashboard {
			m.page--
			m.loading = true
			return m, m.cmdLoadSection()
		}
	case "right":
		if m.section != sectionDashboard && m.page < m.sectionTotalPages() {
			m.page++
			m.loading = true
			return m, m.cmdLoadSection()
		}
	case "/":
		if m.section != sectionDashboard {
			m.searching = true
			m.searchInput.Focus()
			return m, textinput.Blink
		}
	case "f":
		if m.section != sectionDashboard {
			m.favoritesOnly = !m.favoritesOnly
			m.page = 1
			m.loading = true
			return m, m.cmdLoadSection()
		}
	case "r":
		m.loading = true
		return m, m.cmdLoadSection()
	case "n":
		switch m.section {
		case sectionCredentials:
			m.credForm = newFormCredentialModel(nil)
			m.mode = modeCreate
			return m, textinput.Blink
		case sectionNotes:
			m.noteForm = newFormNoteModel(nil)
			m.mode = modeCreate
			return m, textinput.Blink
		}
	case "x":
		if m.section == sectionCredentials {
			return m, m.cmdExportCredentials()
		}
	case "enter":
		return m, m.cmdOpenCurrent()
	}

	return m, nil
}

func (m mainLoopModel) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.revealSecrets = false
		return m, nil
	case "e":
		switch m.section {
		case sectionCredentials:
			item := m.detailCredential
			m.credForm = newFormCredentialModel(&item)
			m.mode = modeEdit
		case sectionNotes:
			item := m.detailNote
			m.noteForm = newFormNoteModel(&item)
			m.mode = modeEdit
		}
		return m, textinput.Blink
	case "d":
		m.mode = modeConfirmDelete
		return m, nil
	case "f":
		return m, m.cmdToggleFavorite(m.detailID())
	case "s":
		if m.section == sectionCredentials {
			m.revealSecrets = !m.revealSecrets
		}
		return m, nil
	case "c":
		if m.section == sectionCredentials {
			return m, m.cmdCopy(m.detailCredential.Password, "Пароль")
		}
		return m, m.cmdCopy(m.detailNote.Content, "Текст")
	case "u":
		if m.section == sectionCredentials {
			return m, m.cmdCopy(m.detailCredential.Username, "Логин")
		}
	}
	return m, nil
}

func (m mainLoopModel) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.section == sectionNotes {
		return m.handleNoteFormKey(msg)
	}

	switch msg.String() {
	case "esc":
		m.mode = modeList
		return m, nil
	case "tab", "down":
		m.credForm.focusNext()
		return m, nil
	case "shift+tab", "up":
		m.credForm.focusPrev()
		return m, nil
	case "left":
		if m.credForm.focus == credFieldType {
			m.credForm.cycleType(-1)
			return m, nil
		}
	case "right":
		if m.credForm.focus == credFieldType {
			m.credForm.cycleType(1)
			return m, nil
		}
	case "enter":
		if problem := m.credForm.validate(); problem != "" {
			m.errMsg = problem
			return m, nil
		}
		m.errMsg = ""
		return m, m.cmdSaveCredential(m.credForm.toCredential(), m.mode == modeEdit)
	}

	if m.credForm.focus != credFieldType {
		var cmd tea.Cmd
		m.credForm.inputs[m.credForm.focus], cmd = m.credForm.inputs[m.credForm.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m mainLoopModel) handleNoteFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		return m, nil
	case "tab":
		m.noteForm.focusNext()
		return m, nil
	case "shift+tab":
		m.noteForm.focusPrev()
		return m, nil
	case "left":
		if m.noteForm.focus == noteFieldType {
			m.noteForm.cycleType(-1)
			return m, nil
		}
	case "right":
		if m.noteForm.focus == noteFieldType {
			m.noteForm.cycleType(1)
			return m, nil
		}
	case "ctrl+s":
		if problem := m.noteForm.validate(); problem != "" {
			m.errMsg = problem
			return m, nil
		}
		m.errMsg = ""
		return m, m.cmdSaveNote(m.noteForm.toNote(), m.mode == modeEdit)
	}

	var cmd tea.Cmd
	switch m.noteForm.focus {
	case noteFieldTitle:
		m.noteForm.titleInput, cmd = m.noteForm.titleInput.Update(msg)
	case noteFieldTags:
		m.noteForm.tagsInput, cmd = m.noteForm.tagsInput.Update(msg)
	case noteFieldContent:
		m.noteForm.content, cmd = m.noteForm.content.Update(msg)
	}
	return m, cmd
}

func (m mainLoopModel) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		return m, m.cmdDelete(m.detailID())
	case "n", "esc":
		m.mode = modeDetail
		return m, nil
	}
	return m, nil
}

func (m mainLoopModel) forwardToActiveWidget(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Non-key messages (cursor blink ticks) still need to reach the focused
	// text widget.
	var cmd tea.Cmd
	switch {
	case m.searching:
		m.searchInput, cmd = m.searchInput.Update(msg)
	case m.mode == modeCreate || m.mode == modeEdit:
		if m.section == sectionCredentials && m.credForm.focus != credFieldType {
			m.credForm.inputs[m.credForm.focus], cmd = m.credForm.inputs[m.credForm.focus].Update(msg)
		}
		if m.section == sectionNotes && m.noteForm.focus == noteFieldContent {
			m.noteForm.content, cmd = m.noteForm.content.Update(msg)
		}
	}
	return m, cmd
}

func (m *mainLoopModel) clampIndex(count int) {
	if m.idx >= count {
		m.idx = count - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m mainLoopModel) sectionItemCount() int {
	switch m.section {
	case sectionCredentials:
		return len(m.credentials.Items)
	case sectionNotes:
		return len(m.notes.Items)
	}
	return 0
}

func (m mainLoopModel) sectionTotalPages() int {
	switch m.section {
	case sectionCredentials:
		return m.credentials.TotalPages
	case sectionNotes:
		return m.notes.TotalPages
	}
	return 1
}

func (m mainLoopModel) detailID() int64 {
	if m.section == sectionCredentials {
		return m.detailCredential.ID
	}
	return m.detailNote.ID
}

// ─────────────────────────────────────────────
// Commands
// ─────────────────────────────────────────────

func (m mainLoopModel) cmdLoadSection() tea.Cmd {
	ctx, server, filter := m.ctx, m.server, m.filter()

	switch m.section {
	case sectionCredentials:
		return func() tea.Msg {
			list, err := server.ListCredentials(ctx, filter)
			return credentialsLoadedMsg{list: list, err: err}
		}
	case sectionNotes:
		return func() tea.Msg {
			list, err := server.ListNotes(ctx, filter)
			return notesLoadedMsg{list: list, err: err}
		}
	default:
		return func() tea.Msg {
			stats, err := server.Dashboard(ctx)
			return dashboardLoadedMsg{stats: stats, err: err}
		}
	}
}

func (m mainLoopModel) cmdOpenCurrent() tea.Cmd {
	ctx, server := m.ctx, m.server

	switch m.section {
	case sectionCredentials:
		if m.idx >= len(m.credentials.Items) {
			return nil
		}
		id := m.credentials.Items[m.idx].ID
		return func() tea.Msg {
			credential, err := server.GetCredential(ctx, id)
			return credentialOpenedMsg{credential: credential, err: err}
		}
	case sectionNotes:
		if m.idx >= len(m.notes.Items) {
			return nil
		}
		id := m.notes.Items[m.idx].ID
		return func() tea.Msg {
			note, err := server.GetNote(ctx, id)
			return noteOpenedMsg{note: note, err: err}
		}
	}
	return nil
}

func (m mainLoopModel) cmdSaveCredential(credential models.Credential, editing bool) tea.Cmd {
	ctx, server := m.ctx, m.server

	return func() tea.Msg {
		var err error
		if editing {
			_, err = server.UpdateCredential(ctx, credential)
		} else {
			_, err = server.CreateCredential(ctx, credential)
		}
		return itemSavedMsg{err: err}
	}
}

func (m mainLoopModel) cmdSaveNote(note models.SecureNote, editing bool) tea.Cmd {
	ctx, server := m.ctx, m.server

	return func() tea.Msg {
		var err error
		if editing {
			_, err = server.UpdateNote(ctx, note)
		} else {
			_, err = server.CreateNote(ctx, note)
		}
		return itemSavedMsg{err: err}
	}
}

func (m mainLoopModel) cmdDelete(id int64) tea.Cmd {
	ctx, server, section := m.ctx, m.server, m.section

	return func() tea.Msg {
		var err error
		if section == sectionCredentials {
			err = server.DeleteCredential(ctx, id)
		} else {
			err = server.DeleteNote(ctx, id)
		}
		return itemDeletedMsg{err: err}
	}
}

func (m mainLoopModel) cmdToggleFavorite(id int64) tea.Cmd {
	ctx, server, section := m.ctx, m.server, m.section

	return func() tea.Msg {
		var isFavorite bool
		var err error
		if section == sectionCredentials {
			isFavorite, err = server.ToggleCredentialFavorite(ctx, id)
		} else {
			isFavorite, err = server.ToggleNoteFavorite(ctx, id)
		}
		return favoriteToggledMsg{isFavorite: isFavorite, err: err}
	}
}

func (m mainLoopModel) cmdExportCredentials() tea.Cmd {
	ctx, server := m.ctx, m.server

	return func() tea.Msg {
		data, err := server.ExportCredentialsCSV(ctx)
		if err != nil {
			return exportDoneMsg{err: err}
		}

		path := filepath.Join(".", fmt.Sprintf("credentials-%s.csv", time.Now().Format("20060102-150405")))
		if err = os.WriteFile(path, data, 0o600); err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{path: path}
	}
}

func (m mainLoopModel) cmdCopy(value, what string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(value); err != nil {
			return exportDoneMsg{err: err}
		}
		return copiedMsg{what: what}
	}
}

func (m mainLoopModel) cmdClearStatus() tea.Cmd {
	return tea.Tick(statusLifetime, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// ─────────────────────────────────────────────
// Views
// ─────────────────────────────────────────────

func (m mainLoopModel) View() string {
	switch m.mode {
	case modeDetail:
		if m.section == sectionCredentials {
			return appStyle.Render(renderCredentialDetail(m.detailCredential, m.revealSecrets, m.status))
		}
		return appStyle.Render(renderNoteDetail(m.detailNote, m.status))
	case modeCreate, modeEdit:
		out := ""
		if m.section == sectionCredentials {
			out = m.credForm.View()
		} else {
			out = m.noteForm.View()
		}
		if m.errMsg != "" {
			out += "\n\nОшибка: " + m.errMsg
		}
		return appStyle.Render(out)
	case modeConfirmDelete:
		name := m.detailCredential.Label
		if m.section == sectionNotes {
			name = m.detailNote.Title
		}
		return appStyle.Render(fmt.Sprintf("Удалить %q?\n\ny да    n нет", name))
	}

	return appStyle.Render(m.listView())
}

func sectionTitle(s mainSection) string {
	switch s {
	case sectionCredentials:
		return "Учётные данные"
	case sectionNotes:
		return "Заметки"
	default:
		return "Обзор"
	}
}

func (m mainLoopModel) listView() string {
	header := titleStyle.Render("credstore") + "  "
	for s := sectionCredentials; s <= sectionDashboard; s++ {
		name := sectionTitle(s)
		if s == m.section {
			name = "[" + name + "]"
		}
		header += " " + name
	}

	out := header + "\n\n"

	if m.searching {
		out += "Поиск: [" + m.searchInput.View() + "]\n\n"
	} else if m.query != "" || m.favoritesOnly {
		marks := make([]string, 0, 2)
		if m.query != "" {
			marks = append(marks, "поиск: "+m.query)
		}
		if m.favoritesOnly {
			marks = append(marks, "только избранное")
		}
		out += "Фильтр: " + strings.Join(marks, ", ") + "\n\n"
	}

	switch {
	case m.loading:
		out += "Загрузка...\n"
	case m.section == sectionDashboard:
		out += m.dashboardView()
	case m.sectionItemCount() == 0:
		out += "Нет записей\n"
	case m.section == sectionCredentials:
		for i, item := range m.credentials.Items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s%s %-30s %s\n", cursor, favoriteMarker(item.IsFavorite),
				fitText(item.Label, 30), credentialTypeName(item.Type))
		}
		out += fmt.Sprintf("\nСтр. %d/%d (%d зап.)\n", m.credentials.Page, m.credentials.TotalPages, m.credentials.TotalItems)
	default:
		for i, item := range m.notes.Items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s%s %-30s %s\n", cursor, favoriteMarker(item.IsFavorite),
				fitText(item.Title, 30), noteTypeName(item.Type))
		}
		out += fmt.Sprintf("\nСтр. %d/%d (%d зап.)\n", m.notes.Page, m.notes.TotalPages, m.notes.TotalItems)
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}
	if m.errMsg != "" {
		out += "\n" + errorStyle.Render("Ошибка: "+m.errMsg) + "\n"
	}

	help := "tab раздел  n новая  / поиск  f избранное  ←/→ стр.  x экспорт  r обновить  l перелогин  q выход  enter открыть"
	if m.section == sectionDashboard {
		help = "tab раздел  r обновить  l перелогин  q выход"
	}
	out += "\n" + helpStyle.Render(help)
	return out
}

func (m mainLoopModel) dashboardView() string {
	out := fmt.Sprintf("Учётных данных: %d (избранных %d)\n", m.stats.TotalCredentials, m.stats.FavoriteCredentials)
	out += fmt.Sprintf("Заметок:        %d (избранных %d)\n", m.stats.TotalNotes, m.stats.FavoriteNotes)

	if len(m.stats.CredentialTypes) > 0 {
		out += "\nПо типам:\n"
		for _, tc := range m.stats.CredentialTypes {
			out += fmt.Sprintf("  %-12s %d\n", credentialTypeName(tc.Type), tc.Count)
		}
	}

	if len(m.stats.RecentActivities) > 0 {
		out += "\nПоследние действия:\n"
		for _, entry := range m.stats.RecentActivities {
			out += fmt.Sprintf("  %s  %s\n", formatTimestamp(entry.CreatedAt), fitText(entry.Description, 48))
		}
	}

	return out
}
