package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/credstore/models"
)

func credentialTypeName(t string) string {
	switch t {
	case models.CredentialTypeWebsite:
		return "Сайт"
	case models.CredentialTypeEmail:
		return "Почта"
	case models.CredentialTypeSocial:
		return "Соцсеть"
	case models.CredentialTypeBanking:
		return "Банк"
	case models.CredentialTypeWork:
		return "Работа"
	case models.CredentialTypePersonal:
		return "Личное"
	case models.CredentialTypeServer:
		return "Сервер"
	case models.CredentialTypeAPI:
		return "API"
	case models.CredentialTypeOther:
		return "Другое"
	default:
		return t
	}
}

func noteTypeName(t string) string {
	switch t {
	case models.NoteTypePersonal:
		return "Личное"
	case models.NoteTypeWork:
		return "Работа"
	case models.NoteTypeFinancial:
		return "Финансы"
	case models.NoteTypeMedical:
		return "Медицина"
	case models.NoteTypeLegal:
		return "Юридическое"
	case models.NoteTypeTechnical:
		return "Техническое"
	case models.NoteTypeOther:
		return "Другое"
	default:
		return t
	}
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.Local().Format("02.01.2006 15:04")
}

func renderCredentialDetail(item models.Credential, revealSecrets bool, status string) string {
	password := "••••••••"
	secretKey := "••••••••"
	if revealSecrets {
		password = valueOrDash(item.Password)
		secretKey = valueOrDash(item.SecretKey)
	} else if item.SecretKey == "" {
		secretKey = "—"
	}

	out := fmt.Sprintf("%s %s  [%s]\n\n", favoriteMarker(item.IsFavorite), item.Label, credentialTypeName(item.Type))
	out += fmt.Sprintf("Сайт:         %s\n", valueOrDash(item.WebsiteURL))
	out += fmt.Sprintf("Логин:        %s\n", valueOrDash(item.Username))
	out += fmt.Sprintf("Email:        %s\n", valueOrDash(item.Email))
	out += fmt.Sprintf("Пароль:       %s\n", password)
	out += fmt.Sprintf("Секрет. ключ: %s\n", secretKey)
	out += fmt.Sprintf("Заметка:      %s\n", valueOrDash(item.Note))
	out += fmt.Sprintf("Теги:         %s\n", valueOrDash(strings.Join(item.TagList(), ", ")))
	out += fmt.Sprintf("Изменено:     %s\n", formatTimestamp(item.UpdatedAt))
	if item.LastAccessed != nil {
		out += fmt.Sprintf("Просмотрено:  %s\n", formatTimestamp(*item.LastAccessed))
	}

	out += "\n"
	out += "e редакт.  d удалить  f избранное  s показать  c копир. пароль  u копир. логин  esc назад"

	if status != "" {
		out += "\n\n" + status
	}

	return out
}

func renderNoteDetail(item models.SecureNote, status string) string {
	out := fmt.Sprintf("%s %s  [%s]\n\n", favoriteMarker(item.IsFavorite), item.Title, noteTypeName(item.Type))
	out += valueOrDash(item.Content) + "\n\n"
	out += fmt.Sprintf("Теги:      %s\n", valueOrDash(strings.Join(item.TagList(), ", ")))
	out += fmt.Sprintf("Изменено:  %s\n", formatTimestamp(item.UpdatedAt))

	out += "\n"
	out += "e редакт.  d удалить  f избранное  c копир. текст  esc назад"

	if status != "" {
		out += "\n\n" + status
	}

	return out
}
