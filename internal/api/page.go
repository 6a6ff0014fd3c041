package api

import (
	"net/url"
	"strconv"
	"strings"
)

// SortOrder is the sort direction accepted by cursor-paged endpoints
type SortOrder string

const (
	SortAsc  SortOrder = "Asc"
	SortDesc SortOrder = "Desc"
)

// Allowed page sizes for cursor-paged endpoints
var pageLimits = []int{10, 25, 50, 100}

// Page selects one page of a cursor-paged listing
// The zero value asks for the first page with the service's default size
type Page struct {
	Cursor string
	Limit  int
	Sort   SortOrder
}

// Cursors are the continuation tokens returned with each page
type Cursors struct {
	Next     string `json:"nextPageCursor"`
	Previous string `json:"previousPageCursor"`
}

// ParseSortOrder accepts "asc" or "desc" in any case; empty selects Asc
func ParseSortOrder(s string) (SortOrder, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc":
		return SortAsc, true
	case "desc":
		return SortDesc, true
	default:
		return "", false
	}
}

// normalizedLimit rounds the limit up to the nearest size the services accept
func (p Page) normalizedLimit() int {
	if p.Limit <= 0 {
		return 0
	}
	for _, allowed := range pageLimits {
		if p.Limit <= allowed {
			return allowed
		}
	}
	return pageLimits[len(pageLimits)-1]
}

// query encodes the page as limit/cursor/sortOrder parameters
func (p Page) query() url.Values {
	values := url.Values{}
	if limit := p.normalizedLimit(); limit > 0 {
		values.Set("limit", strconv.Itoa(limit))
	}
	if p.Cursor != "" {
		values.Set("cursor", p.Cursor)
	}
	if p.Sort != "" {
		values.Set("sortOrder", string(p.Sort))
	}
	return values
}

// pageNumber reads the page number held in a page-numbered listing's cursor
// An empty or invalid cursor selects first
func (p Page) pageNumber(first int) int {
	if n, err := strconv.Atoi(strings.TrimSpace(p.Cursor)); err == nil && n >= first {
		return n
	}
	return first
}

// withQuery appends encoded parameters to path
func withQuery(path string, values url.Values) string {
	if len(values) == 0 {
		return path
	}
	return path + "?" + values.Encode()
}
