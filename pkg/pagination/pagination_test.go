// Copyright (c) 2026 Linkstash. All rights reserved.

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tdvu/linkstash/pkg/pagination"
)

func TestFromRequest_Clamping(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, 20},
		{"explicit", "?page=3&limit=50", 3, 50},
		{"zero_page", "?page=0", 1, 20},
		{"negative_page", "?page=-5", 1, 20},
		{"zero_limit", "?limit=0", 1, 20},
		{"excessive_limit", "?limit=5000", 1, 20},
		{"max_limit", "?limit=100", 1, 100},
		{"garbage_values", "?page=abc&limit=xyz", 1, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/bookmarks"+tt.query, nil)

			params := pagination.FromRequest(request)

			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)
		})
	}
}

func TestParams_Offset(t *testing.T) {
	assert.Zero(t, pagination.Params{Page: 1, Limit: 20}.Offset())
	assert.Zero(t, pagination.Params{Page: 0, Limit: 20}.Offset())
	assert.Equal(t, 40, pagination.Params{Page: 3, Limit: 20}.Offset())
}

func TestNewMeta(t *testing.T) {
	meta := pagination.NewMeta(2, 20, 41)

	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 41, meta.Total)
	// 41 items at 20 per page round up to 3 pages.
	assert.Equal(t, 3, meta.TotalPages)

	assert.Zero(t, pagination.NewMeta(1, 20, 0).TotalPages)
}
