// Copyright (c) 2026 Linkstash. All rights reserved.

package account_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdvu/linkstash/internal/platform/apperr"
	"github.com/tdvu/linkstash/internal/platform/dberr"
	"github.com/tdvu/linkstash/internal/users/account"
	"github.com/tdvu/linkstash/internal/users/auth"
	"github.com/tdvu/linkstash/pkg/pointer"
)

// fakeRepository is an in-memory profile store keyed by account ID.
type fakeRepository struct {
	mu   sync.Mutex
	byID map[string]*auth.Account
}

func newFakeRepository(accounts ...*auth.Account) *fakeRepository {
	repo := &fakeRepository{byID: make(map[string]*auth.Account)}
	for _, a := range accounts {
		repo.byID[a.ID] = a
	}
	return repo
}

func (f *fakeRepository) FindByID(_ context.Context, accountID string) (*auth.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if a, ok := f.byID[accountID]; ok {
		return a, nil
	}
	return nil, dberr.ErrNotFound
}

func (f *fakeRepository) UpdateProfile(_ context.Context, accountID string, update account.ProfileUpdate) (*auth.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	existing, ok := f.byID[accountID]
	if !ok {
		return nil, dberr.ErrNotFound
	}

	if update.Email != nil {
		for id, other := range f.byID {
			if id != accountID && other.Email == *update.Email {
				return nil, auth.ErrDuplicateAccount
			}
		}
		existing.Email = *update.Email
	}
	if update.FirstName != nil {
		existing.FirstName = update.FirstName
	}
	if update.LastName != nil {
		existing.LastName = update.LastName
	}
	existing.UpdatedAt = time.Now()

	return existing, nil
}

func seededAccount() *auth.Account {
	return &auth.Account{
		ID:           "0191e9e0-0000-7000-8000-000000000001",
		Email:        "alice@example.com",
		PasswordHash: "$argon2id$fake",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

func TestService_Me(t *testing.T) {
	alice := seededAccount()
	service := account.NewService(newFakeRepository(alice))

	profile, err := service.Me(context.Background(), alice.ID)

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", profile.Email)
}

func TestService_Me_DeletedAccount(t *testing.T) {
	service := account.NewService(newFakeRepository())

	_, err := service.Me(context.Background(), "0191e9e0-0000-7000-8000-00000000dead")

	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, 404, appError.HTTPStatus)
}

/*
TestService_Me_HashNeverSerialized verifies that the profile JSON does not
contain the stored password hash.
*/
func TestService_Me_HashNeverSerialized(t *testing.T) {
	alice := seededAccount()
	service := account.NewService(newFakeRepository(alice))

	profile, err := service.Me(context.Background(), alice.ID)
	require.NoError(t, err)

	body, err := json.Marshal(profile)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "argon2id")
	assert.NotContains(t, string(body), "password")
}

func TestService_UpdateProfile(t *testing.T) {
	alice := seededAccount()
	service := account.NewService(newFakeRepository(alice))

	updated, err := service.UpdateProfile(context.Background(), alice.ID, account.ProfileUpdate{
		FirstName: pointer.To("Alice"),
	})

	require.NoError(t, err)
	require.NotNil(t, updated.FirstName)
	assert.Equal(t, "Alice", *updated.FirstName)
	// Untouched fields survive a partial update.
	assert.Equal(t, "alice@example.com", updated.Email)
	assert.Nil(t, updated.LastName)
}

func TestService_UpdateProfile_EmailNormalized(t *testing.T) {
	alice := seededAccount()
	service := account.NewService(newFakeRepository(alice))

	updated, err := service.UpdateProfile(context.Background(), alice.ID, account.ProfileUpdate{
		Email: pointer.To("  Alice.New@Example.COM "),
	})

	require.NoError(t, err)
	assert.Equal(t, "alice.new@example.com", updated.Email)
}

func TestService_UpdateProfile_DuplicateEmail(t *testing.T) {
	alice := seededAccount()
	bob := &auth.Account{
		ID:    "0191e9e0-0000-7000-8000-000000000002",
		Email: "bob@example.com",
	}
	service := account.NewService(newFakeRepository(alice, bob))

	_, err := service.UpdateProfile(context.Background(), alice.ID, account.ProfileUpdate{
		Email: pointer.To("bob@example.com"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, auth.ErrDuplicateAccount)
}

func TestService_UpdateProfile_EmptyUpdate(t *testing.T) {
	alice := seededAccount()
	service := account.NewService(newFakeRepository(alice))

	profile, err := service.UpdateProfile(context.Background(), alice.ID, account.ProfileUpdate{})

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", profile.Email)
}
