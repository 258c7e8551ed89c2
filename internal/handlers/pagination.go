package handlers

import (
	"errors"
	"strconv"
	"strings"
)

var errInvalidQuery = errors.New("invalid query params")

const (
	maxPage  = 10000
	maxLimit = 100
)

// parsePaginationParams defaults to page 1 with 20 items. Values that are
// present must be positive integers.
func parsePaginationParams(pageStr, limitStr string) (int, int, error) {
	page := 1
	limit := 20

	if pageStr != "" {
		p, err := strconv.Atoi(pageStr)
		if err != nil || p < 1 || p > maxPage {
			return 0, 0, errInvalidQuery
		}
		page = p
	}

	if limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil || l < 1 || l > maxLimit {
			return 0, 0, errInvalidQuery
		}
		limit = l
	}

	return page, limit, nil
}

func parseOptionalFloat(raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f < 0 {
		return nil, errInvalidQuery
	}
	return &f, nil
}
