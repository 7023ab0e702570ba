// Copyright (c) 2026 Linkstash. All rights reserved.

package bookmark_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdvu/linkstash/internal/core/bookmark"
	"github.com/tdvu/linkstash/internal/platform/apperr"
	"github.com/tdvu/linkstash/internal/platform/dberr"
	"github.com/tdvu/linkstash/pkg/pagination"
	"github.com/tdvu/linkstash/pkg/pointer"
)

const (
	aliceID = "0191e9e0-0000-7000-8000-0000000000aa"
	bobID   = "0191e9e0-0000-7000-8000-0000000000bb"
)

// fakeRepository is an in-memory bookmark store.
type fakeRepository struct {
	mu   sync.Mutex
	byID map[string]*bookmark.Bookmark
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{byID: make(map[string]*bookmark.Bookmark)}
}

func (f *fakeRepository) Create(_ context.Context, b *bookmark.Bookmark) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	stored := *b
	f.byID[b.ID] = &stored
	return nil
}

func (f *fakeRepository) ListByOwner(_ context.Context, ownerID string, page pagination.Params) ([]bookmark.Bookmark, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var owned []bookmark.Bookmark
	for _, b := range f.byID {
		if b.UserID == ownerID {
			owned = append(owned, *b)
		}
	}
	sort.Slice(owned, func(i, j int) bool {
		if owned[i].CreatedAt.Equal(owned[j].CreatedAt) {
			return owned[i].ID > owned[j].ID
		}
		return owned[i].CreatedAt.After(owned[j].CreatedAt)
	})

	total := len(owned)
	start := page.Offset()
	if start > total {
		start = total
	}
	end := start + page.Limit
	if end > total {
		end = total
	}

	return owned[start:end], total, nil
}

func (f *fakeRepository) FindByID(_ context.Context, bookmarkID string) (*bookmark.Bookmark, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if b, ok := f.byID[bookmarkID]; ok {
		copied := *b
		return &copied, nil
	}
	return nil, dberr.ErrNotFound
}

func (f *fakeRepository) Update(_ context.Context, bookmarkID string, update bookmark.Update) (*bookmark.Bookmark, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	existing, ok := f.byID[bookmarkID]
	if !ok {
		return nil, dberr.ErrNotFound
	}

	if update.Title != nil {
		existing.Title = *update.Title
	}
	if update.Description != nil {
		existing.Description = update.Description
	}
	if update.Link != nil {
		existing.Link = *update.Link
	}
	existing.UpdatedAt = time.Now()

	copied := *existing
	return &copied, nil
}

func (f *fakeRepository) Delete(_ context.Context, bookmarkID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.byID, bookmarkID)
	return nil
}

func seedBookmark(t *testing.T, service *bookmark.Service, ownerID, title string) *bookmark.Bookmark {
	t.Helper()
	created, err := service.Create(context.Background(), ownerID, title, nil, "https://example.com/"+title)
	require.NoError(t, err)
	return created
}

// # Create / Get

func TestService_CreateAndGet(t *testing.T) {
	service := bookmark.NewService(newFakeRepository())

	created, err := service.Create(context.Background(), aliceID, "Go blog",
		pointer.To("weekly reading"), "https://go.dev/blog")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, aliceID, created.UserID)

	found, err := service.Get(context.Background(), aliceID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Go blog", found.Title)
	assert.Equal(t, "https://go.dev/blog", found.Link)
}

/*
TestService_Get_NeverCrossesOwners verifies that reads behave identically for
missing bookmarks and other accounts' bookmarks.
*/
func TestService_Get_NeverCrossesOwners(t *testing.T) {
	service := bookmark.NewService(newFakeRepository())
	bobsBookmark := seedBookmark(t, service, bobID, "bobs-secret")

	tests := []struct {
		name       string
		bookmarkID string
	}{
		{"missing_bookmark", "0191e9e0-0000-7000-8000-00000000dead"},
		{"foreign_bookmark", bobsBookmark.ID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Get(context.Background(), aliceID, tt.bookmarkID)

			require.Error(t, err)
			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, 404, appError.HTTPStatus)
		})
	}
}

// # List

func TestService_List_ScopedAndPaginated(t *testing.T) {
	service := bookmark.NewService(newFakeRepository())

	for i := 0; i < 5; i++ {
		seedBookmark(t, service, aliceID, fmt.Sprintf("alice-%d", i))
	}
	seedBookmark(t, service, bobID, "bobs-only")

	page, meta, err := service.List(context.Background(), aliceID, pagination.Params{Page: 1, Limit: 3})

	require.NoError(t, err)
	assert.Len(t, page, 3)
	assert.Equal(t, 5, meta.Total)
	assert.Equal(t, 2, meta.TotalPages)
	for _, b := range page {
		assert.Equal(t, aliceID, b.UserID)
	}
}

func TestService_List_EmptyCollection(t *testing.T) {
	service := bookmark.NewService(newFakeRepository())

	page, meta, err := service.List(context.Background(), aliceID, pagination.Params{Page: 1, Limit: 20})

	require.NoError(t, err)
	assert.Empty(t, page)
	assert.Zero(t, meta.Total)
}

// # Update

func TestService_Update(t *testing.T) {
	service := bookmark.NewService(newFakeRepository())
	created := seedBookmark(t, service, aliceID, "draft")

	updated, err := service.Update(context.Background(), aliceID, created.ID, bookmark.Update{
		Title: pointer.To("final"),
	})

	require.NoError(t, err)
	assert.Equal(t, "final", updated.Title)
	// Untouched fields survive a partial update.
	assert.Equal(t, created.Link, updated.Link)
}

func TestService_Update_AccessDenied(t *testing.T) {
	service := bookmark.NewService(newFakeRepository())
	bobsBookmark := seedBookmark(t, service, bobID, "bobs")

	tests := []struct {
		name       string
		bookmarkID string
	}{
		{"missing_bookmark", "0191e9e0-0000-7000-8000-00000000dead"},
		{"foreign_bookmark", bobsBookmark.ID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Update(context.Background(), aliceID, tt.bookmarkID, bookmark.Update{
				Title: pointer.To("hijacked"),
			})

			require.Error(t, err)
			assert.ErrorIs(t, err, bookmark.ErrAccessDenied)
		})
	}

	// Bob's bookmark is untouched.
	unchanged, err := service.Get(context.Background(), bobID, bobsBookmark.ID)
	require.NoError(t, err)
	assert.Equal(t, "bobs", unchanged.Title)
}

// # Delete

func TestService_Delete(t *testing.T) {
	service := bookmark.NewService(newFakeRepository())
	created := seedBookmark(t, service, aliceID, "ephemeral")

	require.NoError(t, service.Delete(context.Background(), aliceID, created.ID))

	_, err := service.Get(context.Background(), aliceID, created.ID)
	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, 404, appError.HTTPStatus)
}

func TestService_Delete_AccessDenied(t *testing.T) {
	service := bookmark.NewService(newFakeRepository())
	bobsBookmark := seedBookmark(t, service, bobID, "bobs")

	err := service.Delete(context.Background(), aliceID, bobsBookmark.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, bookmark.ErrAccessDenied)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, 403, appError.HTTPStatus)

	// Still there for its owner.
	_, err = service.Get(context.Background(), bobID, bobsBookmark.ID)
	assert.NoError(t, err)
}
