package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/credstore/models"
)

// Credential form field order. typeRow is a selector cycled with ←/→, every
// other row is a text input.
const (
	credFieldLabel = iota
	credFieldType
	credFieldWebsite
	credFieldUsername
	credFieldEmail
	credFieldPassword
	credFieldSecretKey
	credFieldNote
	credFieldTags
	credFieldCount
)

type formCredentialModel struct {
	inputs  []textinput.Model
	typeIdx int
	focus   int

	editing    bool
	id         int64
	isFavorite bool
}

func newFormCredentialModel(item *models.Credential) formCredentialModel {
	inputs := make([]textinput.Model, credFieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[credFieldPassword].EchoMode = textinput.EchoPassword
	inputs[credFieldPassword].EchoCharacter = '*'
	inputs[credFieldSecretKey].EchoMode = textinput.EchoPassword
	inputs[credFieldSecretKey].EchoCharacter = '*'
	inputs[credFieldLabel].Focus()

	m := formCredentialModel{inputs: inputs}
	if item == nil {
		return m
	}

	m.editing = true
	m.id = item.ID
	m.isFavorite = item.IsFavorite
	m.typeIdx = credentialTypeIndex(item.Type)
	m.inputs[credFieldLabel].SetValue(item.Label)
	m.inputs[credFieldWebsite].SetValue(item.WebsiteURL)
	m.inputs[credFieldUsername].SetValue(item.Username)
	m.inputs[credFieldEmail].SetValue(item.Email)
	m.inputs[credFieldPassword].SetValue(item.Password)
	m.inputs[credFieldSecretKey].SetValue(item.SecretKey)
	m.inputs[credFieldNote].SetValue(item.Note)
	m.inputs[credFieldTags].SetValue(item.Tags)
	return m
}

func credentialTypeIndex(t string) int {
	for i, known := range models.CredentialTypes {
		if t == known {
			return i
		}
	}
	return 0
}

func (m formCredentialModel) toCredential() models.Credential {
	return models.Credential{
		ID:         m.id,
		Label:      strings.TrimSpace(m.inputs[credFieldLabel].Value()),
		Type:       models.CredentialTypes[m.typeIdx],
		WebsiteURL: strings.TrimSpace(m.inputs[credFieldWebsite].Value()),
		Username:   strings.TrimSpace(m.inputs[credFieldUsername].Value()),
		Email:      strings.TrimSpace(m.inputs[credFieldEmail].Value()),
		Password:   m.inputs[credFieldPassword].Value(),
		SecretKey:  m.inputs[credFieldSecretKey].Value(),
		Note:       m.inputs[credFieldNote].Value(),
		Tags:       strings.TrimSpace(m.inputs[credFieldTags].Value()),
		IsFavorite: m.isFavorite,
	}
}

func (m formCredentialModel) validate() string {
	if strings.TrimSpace(m.inputs[credFieldLabel].Value()) == "" {
		return "Название обязательно"
	}
	return ""
}

func (m *formCredentialModel) cycleType(delta int) {
	m.typeIdx = (m.typeIdx + delta + len(models.CredentialTypes)) % len(models.CredentialTypes)
}

func (m *formCredentialModel) focusField(idx int) {
	if m.focus != credFieldType {
		m.inputs[m.focus].Blur()
	}
	m.focus = idx
	if m.focus != credFieldType {
		m.inputs[m.focus].Focus()
	}
}

func (m *formCredentialModel) focusNext() {
	m.focusField((m.focus + 1) % credFieldCount)
}

func (m *formCredentialModel) focusPrev() {
	m.focusField((m.focus - 1 + credFieldCount) % credFieldCount)
}

func (m formCredentialModel) View() string {
	title := "Новая запись"
	if m.editing {
		title = "Редактирование: " + m.inputs[credFieldLabel].Value()
	}

	typeCell := models.CredentialTypes[m.typeIdx]
	if m.focus == credFieldType {
		typeCell = "< " + typeCell + " >"
	}

	out := title + "\n\n"
	out += "Название:     [" + m.inputs[credFieldLabel].View() + "]\n"
	out += "Тип:          " + typeCell + "\n"
	out += "Сайт:         [" + m.inputs[credFieldWebsite].View() + "]\n"
	out += "Логин:        [" + m.inputs[credFieldUsername].View() + "]\n"
	out += "Email:        [" + m.inputs[credFieldEmail].View() + "]\n"
	out += "Пароль:       [" + m.inputs[credFieldPassword].View() + "]\n"
	out += "Секрет. ключ: [" + m.inputs[credFieldSecretKey].View() + "]\n"
	out += "Заметка:      [" + m.inputs[credFieldNote].View() + "]\n"
	out += "Теги:         [" + m.inputs[credFieldTags].View() + "]\n\n"
	out += "esc отмена  tab следующее поле  ←/→ тип  enter сохранить"
	return out
}
