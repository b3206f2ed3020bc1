package store

import (
	"errors"
	"testing"

	"github.com/fitpulse/gym-api/internal/utils"
)

func TestNormalizePage(t *testing.T) {
	cases := []struct {
		name      string
		page      string
		limit     string
		wantPage  int
		wantLimit int
		wantErr   bool
	}{
		{"defaults", "", "", 1, 6, false},
		{"explicit", "3", "10", 3, 10, false},
		{"non-numeric page", "abc", "", 1, 6, false},
		{"non-numeric limit", "2", "abc", 2, 6, false},
		{"zero page floors", "0", "", 1, 6, false},
		{"negative page floors", "-4", "", 1, 6, false},
		{"zero limit rejected", "1", "0", 0, 0, true},
		{"negative limit rejected", "1", "-6", 0, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizePage(tc.page, tc.limit)
			if tc.wantErr {
				if !errors.Is(err, utils.ErrInvalidPageSize) {
					t.Fatalf("want ErrInvalidPageSize, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Page != tc.wantPage || got.Limit != tc.wantLimit {
				t.Fatalf("got page=%d limit=%d, want page=%d limit=%d", got.Page, got.Limit, tc.wantPage, tc.wantLimit)
			}
		})
	}
}

func TestPageWindow(t *testing.T) {
	p := PageRequest{Page: 2, Limit: 6}
	if p.Offset() != 6 {
		t.Fatalf("offset = %d, want 6", p.Offset())
	}
	// 13 records: page 2 covers items 7-12 and a third page remains
	if !p.HasMore(13) {
		t.Fatal("page 2 of 13 should have more")
	}
	p3 := PageRequest{Page: 3, Limit: 6}
	if p3.HasMore(13) {
		t.Fatal("page 3 of 13 should not have more")
	}
	if p3.Offset() != 12 {
		t.Fatalf("offset = %d, want 12", p3.Offset())
	}
}

func TestHasMoreBoundary(t *testing.T) {
	// hasMore is true iff page*limit < totalCount, exactly at the boundary
	p := PageRequest{Page: 2, Limit: 5}
	if p.HasMore(10) {
		t.Fatal("10 records fit exactly in two pages of 5")
	}
	if !p.HasMore(11) {
		t.Fatal("an 11th record means a third page")
	}
}

func TestPaginationEmptySet(t *testing.T) {
	p := PageRequest{Page: 1, Limit: 6}
	got := p.Pagination(0)
	if got.HasMore || got.TotalCount != 0 {
		t.Fatalf("empty set: got %+v", got)
	}
}
