package api

import (
	"net/http"
	"strconv"
)

// Default page sizes substituted when a page is requested without a limit.
const (
	DefaultCharacterLimit = 10
	DefaultSkillLimit     = 5
)

// ParsePageParams reads the page and limit query parameters. Values that are
// not positive base-10 integers are treated as absent. When page is present
// and limit is not, defaultLimit is used.
func ParsePageParams(r *http.Request, defaultLimit int) (page, limit *int) {
	q := r.URL.Query()
	page = parsePositiveInt(q.Get("page"))
	limit = parsePositiveInt(q.Get("limit"))

	if page != nil && limit == nil {
		l := defaultLimit
		limit = &l
	}
	return page, limit
}

func parsePositiveInt(raw string) *int {
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return nil
	}
	return &v
}

// BaseURL returns scheme://host for the request: https when it arrived over
// TLS, http otherwise, and the Host header as received.
func BaseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}
