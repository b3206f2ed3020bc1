package store

import (
	"strconv"

	"github.com/fitpulse/gym-api/internal/models"
	"github.com/fitpulse/gym-api/internal/utils"
)

const DefaultPageSize = 6

// PageRequest is the normalized window every list query runs with.
type PageRequest struct {
	Page  int
	Limit int
}

// NormalizePage builds a PageRequest from raw query-string values.
// An absent or non-numeric page falls back to 1, and a page below 1 floors
// to 1. An absent or non-numeric limit falls back to DefaultPageSize, but an
// explicit limit of zero or less is rejected rather than silently turning
// into a full-table read.
func NormalizePage(rawPage, rawLimit string) (PageRequest, error) {
	page, err := strconv.Atoi(rawPage)
	if err != nil || rawPage == "" {
		page = 1
	}
	if page < 1 {
		page = 1
	}

	limit := DefaultPageSize
	if rawLimit != "" {
		if n, err := strconv.Atoi(rawLimit); err == nil {
			if n <= 0 {
				return PageRequest{}, utils.ErrInvalidPageSize
			}
			limit = n
		}
	}
	return PageRequest{Page: page, Limit: limit}, nil
}

func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// HasMore reports whether a page after this one exists.
func (p PageRequest) HasMore(totalCount int64) bool {
	return int64(p.Page)*int64(p.Limit) < totalCount
}

func (p PageRequest) Pagination(totalCount int64) models.Pagination {
	return models.Pagination{
		Page:       p.Page,
		Limit:      p.Limit,
		TotalCount: totalCount,
		HasMore:    p.HasMore(totalCount),
	}
}
