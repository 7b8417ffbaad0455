package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/credstore/models"
)

func TestBuildCredentialListQuery_NoFilter(t *testing.T) {
	filter := models.ListFilter{}.Normalize()

	query, args, err := buildCredentialListQuery(1, filter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(query, "FROM credentials") {
		t.Errorf("expected query over credentials, got %q", query)
	}
	if !strings.Contains(query, "ORDER BY updated_at DESC, id DESC") {
		t.Errorf("expected recency ordering, got %q", query)
	}
	if strings.Contains(query, "LIKE") {
		t.Errorf("expected no LIKE clause without a search query, got %q", query)
	}
	// user_id only
	if len(args) != 1 {
		t.Fatalf("expected 1 argument, got %d: %v", len(args), args)
	}
	if args[0] != int64(1) {
		t.Errorf("expected user_id argument, got %v", args[0])
	}
}

func TestBuildCredentialListQuery_SearchOnPlaintextColumnsOnly(t *testing.T) {
	filter := models.ListFilter{Query: "GitHub"}.Normalize()

	query, args, err := buildCredentialListQuery(1, filter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, column := range []string{"LOWER(label)", "LOWER(username)", "LOWER(email)", "LOWER(note)", "LOWER(tags)"} {
		if !strings.Contains(query, column+" LIKE") {
			t.Errorf("expected search over %s, got %q", column, query)
		}
	}
	if strings.Contains(query, "password_encrypted LIKE") || strings.Contains(query, "secret_key_encrypted LIKE") {
		t.Errorf("ciphertext columns must never be searched: %q", query)
	}

	// search pattern is lower-cased and wrapped in wildcards
	found := false
	for _, arg := range args {
		if arg == "%github%" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected %%github%% pattern among args, got %v", args)
	}
}

func TestBuildCredentialListQuery_TypeAndFavorites(t *testing.T) {
	filter := models.ListFilter{
		Type:          models.CredentialTypeBanking,
		FavoritesOnly: true,
	}.Normalize()

	query, _, err := buildCredentialListQuery(1, filter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(query, "type =") {
		t.Errorf("expected type predicate, got %q", query)
	}
	if !strings.Contains(query, "is_favorite =") {
		t.Errorf("expected favorites predicate, got %q", query)
	}
}

func TestBuildCredentialListQuery_Pagination(t *testing.T) {
	filter := models.ListFilter{Page: 3, PerPage: 10}.Normalize()

	query, _, err := buildCredentialListQuery(1, filter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(query, "LIMIT 10") {
		t.Errorf("expected LIMIT 10, got %q", query)
	}
	if !strings.Contains(query, "OFFSET 20") {
		t.Errorf("expected OFFSET 20, got %q", query)
	}
}

func TestBuildCredentialListQuery_DollarPlaceholdersInOrder(t *testing.T) {
	filter := models.ListFilter{
		Query:         "bank",
		Type:          models.CredentialTypeBanking,
		FavoritesOnly: true,
	}.Normalize()

	query, args, err := buildCredentialListQuery(1, filter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// placeholders must be $1..$N in strictly increasing first-use order so
	// the same query runs on the positional sqlite3 driver
	for i := 1; i <= len(args); i++ {
		placeholder := "$" + string(rune('0'+i))
		if !strings.Contains(query, placeholder) {
			t.Errorf("expected placeholder %s in query %q", placeholder, query)
		}
	}
}

func TestBuildNoteListQuery_SearchColumns(t *testing.T) {
	filter := models.ListFilter{Query: "wifi"}.Normalize()

	query, _, err := buildNoteListQuery(1, filter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(query, "LOWER(title) LIKE") {
		t.Errorf("expected title search, got %q", query)
	}
	if !strings.Contains(query, "LOWER(tags) LIKE") {
		t.Errorf("expected tags search, got %q", query)
	}
	if strings.Contains(query, "content_encrypted LIKE") {
		t.Errorf("encrypted content must never be searched: %q", query)
	}
}

func TestBuildNoteCountQuery_NoPagination(t *testing.T) {
	filter := models.ListFilter{Page: 5, PerPage: 10}.Normalize()

	query, _, err := buildNoteCountQuery(1, filter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(query, "COUNT(*)") {
		t.Errorf("expected COUNT(*), got %q", query)
	}
	if strings.Contains(query, "LIMIT") || strings.Contains(query, "OFFSET") {
		t.Errorf("count query must not paginate: %q", query)
	}
}

func TestLikePattern(t *testing.T) {
	if got := likePattern("GitHub"); got != "%github%" {
		t.Errorf("expected %%github%%, got %q", got)
	}
}
