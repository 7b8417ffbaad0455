package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/credstore/models"
)

// Note form field order: title and tags are text inputs, typeRow is a
// selector cycled with ←/→, content is a multi-line textarea.
const (
	noteFieldTitle = iota
	noteFieldType
	noteFieldTags
	noteFieldContent
	noteFieldCount
)

type formNoteModel struct {
	titleInput textinput.Model
	tagsInput  textinput.Model
	content    textarea.Model
	typeIdx    int
	focus      int

	editing    bool
	id         int64
	isFavorite bool
}

func newFormNoteModel(item *models.SecureNote) formNoteModel {
	titleInput := textinput.New()
	titleInput.Width = 40
	titleInput.Focus()

	tagsInput := textinput.New()
	tagsInput.Width = 40

	content := textarea.New()
	content.SetWidth(60)
	content.SetHeight(8)

	m := formNoteModel{titleInput: titleInput, tagsInput: tagsInput, content: content}
	if item == nil {
		return m
	}

	m.editing = true
	m.id = item.ID
	m.isFavorite = item.IsFavorite
	m.typeIdx = noteTypeIndex(item.Type)
	m.titleInput.SetValue(item.Title)
	m.tagsInput.SetValue(item.Tags)
	m.content.SetValue(item.Content)
	return m
}

func noteTypeIndex(t string) int {
	for i, known := range models.NoteTypes {
		if t == known {
			return i
		}
	}
	return 0
}

func (m formNoteModel) toNote() models.SecureNote {
	return models.SecureNote{
		ID:         m.id,
		Title:      strings.TrimSpace(m.titleInput.Value()),
		Type:       models.NoteTypes[m.typeIdx],
		Content:    m.content.Value(),
		Tags:       strings.TrimSpace(m.tagsInput.Value()),
		IsFavorite: m.isFavorite,
	}
}

func (m formNoteModel) validate() string {
	if strings.TrimSpace(m.titleInput.Value()) == "" {
		return "Название обязательно"
	}
	return ""
}

func (m *formNoteModel) cycleType(delta int) {
	m.typeIdx = (m.typeIdx + delta + len(models.NoteTypes)) % len(models.NoteTypes)
}

func (m *formNoteModel) focusField(idx int) {
	switch m.focus {
	case noteFieldTitle:
		m.titleInput.Blur()
	case noteFieldTags:
		m.tagsInput.Blur()
	case noteFieldContent:
		m.content.Blur()
	}

	m.focus = idx

	switch m.focus {
	case noteFieldTitle:
		m.titleInput.Focus()
	case noteFieldTags:
		m.tagsInput.Focus()
	case noteFieldContent:
		m.content.Focus()
	}
}

func (m *formNoteModel) focusNext() {
	m.focusField((m.focus + 1) % noteFieldCount)
}

func (m *formNoteModel) focusPrev() {
	m.focusField((m.focus - 1 + noteFieldCount) % noteFieldCount)
}

func (m formNoteModel) View() string {
	title := "Новая заметка"
	if m.editing {
		title = "Редактирование: " + m.titleInput.Value()
	}

	typeCell := models.NoteTypes[m.typeIdx]
	if m.focus == noteFieldType {
		typeCell = "< " + typeCell + " >"
	}

	out := title + "\n\n"
	out += "Название: [" + m.titleInput.View() + "]\n"
	out += "Тип:      " + typeCell + "\n"
	out += "Теги:     [" + m.tagsInput.View() + "]\n"
	out += "Текст:\n" + m.content.View() + "\n\n"
	out += "esc отмена  tab следующее поле  ←/→ тип  ctrl+s сохранить"
	return out
}
