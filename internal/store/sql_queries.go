// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/credstore/models"
)

// Queries use $N placeholders in strictly increasing first-use order and
// CURRENT_TIMESTAMP instead of NOW(), so one query set serves both the pgx
// and sqlite3 drivers.
const (
	createUser = `INSERT INTO users (login, name, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, login, name, password_hash, created_at;`

	findUserByLogin = `SELECT user_id, login, name, password_hash, created_at
    FROM users
    WHERE login = $1;`

	credentialColumns = `id, user_id, label, type, website_url, username, email,
        password_encrypted, secret_key_encrypted, note, is_favorite, tags,
        created_at, updated_at, last_accessed`

	createCredential = `INSERT INTO credentials (
        user_id, label, type, website_url, username, email,
        password_encrypted, secret_key_encrypted, note, is_favorite, tags)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    RETURNING ` + credentialColumns + `;`

	getCredentialByID = `SELECT ` + credentialColumns + `
    FROM credentials
    WHERE user_id = $1 AND id = $2;`

	getAllCredentialsByUser = `SELECT ` + credentialColumns + `
    FROM credentials
    WHERE user_id = $1
    ORDER BY LOWER(label) ASC, id ASC;`

	updateCredential = `UPDATE credentials
    SET label = $1, type = $2, website_url = $3, username = $4, email = $5,
        password_encrypted = $6, secret_key_encrypted = $7, note = $8,
        tags = $9, updated_at = CURRENT_TIMESTAMP
    WHERE user_id = $10 AND id = $11
    RETURNING ` + credentialColumns + `;`

	deleteCredential = `DELETE FROM credentials
    WHERE user_id = $1 AND id = $2;`

	toggleCredentialFavorite = `UPDATE credentials
    SET is_favorite = NOT is_favorite, updated_at = CURRENT_TIMESTAMP
    WHERE user_id = $1 AND id = $2
    RETURNING is_favorite;`

	touchCredentialAccess = `UPDATE credentials
    SET last_accessed = CURRENT_TIMESTAMP
    WHERE user_id = $1 AND id = $2;`

	countCredentialsByUser = `SELECT COUNT(*) FROM credentials
    WHERE user_id = $1;`

	countFavoriteCredentialsByUser = `SELECT COUNT(*) FROM credentials
    WHERE user_id = $1 AND is_favorite = TRUE;`

	credentialTypeCounts = `SELECT type, COUNT(*) AS cnt
    FROM credentials
    WHERE user_id = $1
    GROUP BY type
    ORDER BY cnt DESC, type ASC
    LIMIT $2;`

	noteColumns = `id, user_id, title, type, content_encrypted, is_favorite,
        tags, created_at, updated_at, last_accessed`

	createNote = `INSERT INTO secure_notes (
        user_id, title, type, content_encrypted, is_favorite, tags)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING ` + noteColumns + `;`

	getNoteByID = `SELECT ` + noteColumns + `
    FROM secure_notes
    WHERE user_id = $1 AND id = $2;`

	updateNote = `UPDATE secure_notes
    SET title = $1, type = $2, content_encrypted = $3, tags = $4,
        updated_at = CURRENT_TIMESTAMP
    WHERE user_id = $5 AND id = $6
    RETURNING ` + noteColumns + `;`

	deleteNote = `DELETE FROM secure_notes
    WHERE user_id = $1 AND id = $2;`

	toggleNoteFavorite = `UPDATE secure_notes
    SET is_favorite = NOT is_favorite, updated_at = CURRENT_TIMESTAMP
    WHERE user_id = $1 AND id = $2
    RETURNING is_favorite;`

	touchNoteAccess = `UPDATE secure_notes
    SET last_accessed = CURRENT_TIMESTAMP
    WHERE user_id = $1 AND id = $2;`

	countNotesByUser = `SELECT COUNT(*) FROM secure_notes
    WHERE user_id = $1;`

	countFavoriteNotesByUser = `SELECT COUNT(*) FROM secure_notes
    WHERE user_id = $1 AND is_favorite = TRUE;`

	saveActivity = `INSERT INTO activity_log (
        user_id, action, description, ip_address, user_agent)
    VALUES ($1, $2, $3, $4, $5);`

	recentActivity = `SELECT id, user_id, action, description, ip_address, user_agent, created_at
    FROM activity_log
    WHERE user_id = $1
    ORDER BY created_at DESC, id DESC
    LIMIT $2;`
)

// psql is the statement builder used for the dynamic list/count queries.
// Dollar placeholders work for both supported drivers because squirrel
// numbers them in strictly increasing order.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// likePattern turns a raw search query into a case-insensitive LIKE pattern.
func likePattern(query string) string {
	return "%" + strings.ToLower(query) + "%"
}

// credentialFilterConditions translates a normalized [models.ListFilter]
// into squirrel predicates over the credentials table. Only plain-text
// columns are searched; ciphertext columns are deliberately excluded.
func credentialFilterConditions(userID int64, filter models.ListFilter) sq.And {
	conditions := sq.And{sq.Eq{"user_id": userID}}

	if filter.Query != "" {
		pattern := likePattern(filter.Query)
		conditions = append(conditions, sq.Or{
			sq.Like{"LOWER(label)": pattern},
			sq.Like{"LOWER(username)": pattern},
			sq.Like{"LOWER(email)": pattern},
			sq.Like{"LOWER(note)": pattern},
			sq.Like{"LOWER(tags)": pattern},
		})
	}

	if filter.Type != "" {
		conditions = append(conditions, sq.Eq{"type": filter.Type})
	}

	if filter.FavoritesOnly {
		conditions = append(conditions, sq.Eq{"is_favorite": true})
	}

	return conditions
}

// buildCredentialListQuery builds the paginated credential list query for
// the given normalized filter.
func buildCredentialListQuery(userID int64, filter models.ListFilter) (string, []any, error) {
	return psql.Select(
		"id", "user_id", "label", "type", "website_url", "username", "email",
		"password_encrypted", "secret_key_encrypted", "note", "is_favorite",
		"tags", "created_at", "updated_at", "last_accessed").
		From("credentials").
		Where(credentialFilterConditions(userID, filter)).
		OrderBy("updated_at DESC", "id DESC").
		Limit(uint64(filter.PerPage)).
		Offset(uint64(filter.Offset())).
		ToSql()
}

// buildCredentialCountQuery builds the matching-row count query for the
// given normalized filter.
func buildCredentialCountQuery(userID int64, filter models.ListFilter) (string, []any, error) {
	return psql.Select("COUNT(*)").
		From("credentials").
		Where(credentialFilterConditions(userID, filter)).
		ToSql()
}

// noteFilterConditions translates a normalized [models.ListFilter] into
// squirrel predicates over the secure_notes table. The encrypted content
// column is never searched.
func noteFilterConditions(userID int64, filter models.ListFilter) sq.And {
	conditions := sq.And{sq.Eq{"user_id": userID}}

	if filter.Query != "" {
		pattern := likePattern(filter.Query)
		conditions = append(conditions, sq.Or{
			sq.Like{"LOWER(title)": pattern},
			sq.Like{"LOWER(tags)": pattern},
		})
	}

	if filter.Type != "" {
		conditions = append(conditions, sq.Eq{"type": filter.Type})
	}

	if filter.FavoritesOnly {
		conditions = append(conditions, sq.Eq{"is_favorite": true})
	}

	return conditions
}

// buildNoteListQuery builds the paginated secure-note list query for the
// given normalized filter.
func buildNoteListQuery(userID int64, filter models.ListFilter) (string, []any, error) {
	return psql.Select(
		"id", "user_id", "title", "type", "content_encrypted", "is_favorite",
		"tags", "created_at", "updated_at", "last_accessed").
		From("secure_notes").
		Where(noteFilterConditions(userID, filter)).
		OrderBy("updated_at DESC", "id DESC").
		Limit(uint64(filter.PerPage)).
		Offset(uint64(filter.Offset())).
		ToSql()
}

// buildNoteCountQuery builds the matching-row count query for the given
// normalized filter.
func buildNoteCountQuery(userID int64, filter models.ListFilter) (string, []any, error) {
	return psql.Select("COUNT(*)").
		From("secure_notes").
		Where(noteFilterConditions(userID, filter)).
		ToSql()
}
