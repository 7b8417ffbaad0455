package models

// DefaultPerPage is the number of items returned per page when the caller
// does not ask for a specific page size.
const DefaultPerPage = 12

// MaxPerPage caps the page size a caller may request.
const MaxPerPage = 100

// ListFilter carries the search and pagination parameters of a list request.
// The zero value means "first page, default size, no filtering".
type ListFilter struct {
	// Query is a case-insensitive substring matched against the searchable
	// plain-text columns of the listed records (label/username/email/note/
	// tags for credentials, title/tags for notes). Encrypted columns are
	// never searched.
	Query string

	// Type restricts the result to records of one type. Empty or "all"
	// means no type filtering.
	Type string

	// FavoritesOnly restricts the result to records marked as favorite.
	FavoritesOnly bool

	// Page is the 1-based page number. Values below 1 are treated as 1.
	Page int

	// PerPage is the page size. Values below 1 fall back to DefaultPerPage;
	// values above MaxPerPage are clamped.
	PerPage int
}

// Normalize returns a copy of the filter with page and page-size values
// clamped into their valid ranges.
func (f ListFilter) Normalize() ListFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PerPage < 1 {
		f.PerPage = DefaultPerPage
	}
	if f.PerPage > MaxPerPage {
		f.PerPage = MaxPerPage
	}
	if f.Type == "all" {
		f.Type = ""
	}
	return f
}

// Offset returns the number of records to skip for the filter's page.
func (f ListFilter) Offset() int {
	normalized := f.Normalize()
	return (normalized.Page - 1) * normalized.PerPage
}

// PageInfo describes the pagination state of a list response.
type PageInfo struct {
	// Page is the 1-based page number that was returned.
	Page int `json:"page"`

	// PerPage is the page size that was applied.
	PerPage int `json:"per_page"`

	// TotalItems is the number of records matching the filter across all pages.
	TotalItems int64 `json:"total_items"`

	// TotalPages is the number of pages at the applied page size.
	TotalPages int `json:"total_pages"`
}

// NewPageInfo builds a PageInfo for the given normalized filter and total
// match count.
func NewPageInfo(f ListFilter, totalItems int64) PageInfo {
	normalized := f.Normalize()

	totalPages := int(totalItems) / normalized.PerPage
	if int(totalItems)%normalized.PerPage != 0 {
		totalPages++
	}
	if totalPages < 1 {
		totalPages = 1
	}

	return PageInfo{
		Page:       normalized.Page,
		PerPage:    normalized.PerPage,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

// CredentialList is the paginated response payload for credential listings.
type CredentialList struct {
	Items []Credential `json:"items"`
	PageInfo
}

// SecureNoteList is the paginated response payload for note listings.
type SecureNoteList struct {
	Items []SecureNote `json:"items"`
	PageInfo
}
