//go:build integration

package repository_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"activities-signup/internal/model"
	"activities-signup/internal/repository"
)

// newPostgresRepo подключается к TEST_DB_DSN и очищает таблицы каталога.
func newPostgresRepo(t *testing.T) *repository.ActivityRepo {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN is not set")
	}

	ctx := context.Background()
	db, err := repository.NewPostgres(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, db.EnsureSchema(ctx))
	_, err = db.Pool.Exec(ctx, `TRUNCATE activity_participants, activities RESTART IDENTITY`)
	require.NoError(t, err)

	return repository.NewActivityRepo(db, repository.NewTransactionManager(db))
}

func TestActivityRepo_SeedIfEmpty(t *testing.T) {
	ctx := context.Background()
	repo := newPostgresRepo(t)

	seeded, err := repo.SeedIfEmpty(ctx, smallCatalog())
	require.NoError(t, err)
	assert.True(t, seeded)

	seeded, err = repo.SeedIfEmpty(ctx, repository.DefaultCatalog())
	require.NoError(t, err)
	assert.False(t, seeded)

	catalog, err := repo.ListActivities(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Chess Club", "Gym Class"}, catalog.Names())
	assert.Equal(t, []string{"michael@mergington.edu"}, catalog[0].Participants)
	assert.NotNil(t, catalog[1].Participants)
	assert.Empty(t, catalog[1].Participants)
}

func TestActivityRepo_AddParticipant(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		activity string
		email    string
		wantErr  error
	}{
		{name: "Success", activity: "Chess Club", email: "new@mergington.edu"},
		{name: "Fail: unknown activity", activity: "Drama Club", email: "new@mergington.edu", wantErr: repository.ErrActivityNotFound},
		{name: "Fail: duplicate", activity: "Chess Club", email: "michael@mergington.edu", wantErr: repository.ErrAlreadySignedUp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newPostgresRepo(t)
			_, err := repo.SeedIfEmpty(ctx, smallCatalog())
			require.NoError(t, err)

			err = repo.AddParticipant(ctx, tt.activity, tt.email)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			catalog, err := repo.ListActivities(ctx)
			require.NoError(t, err)
			chess, _ := catalog.Lookup("Chess Club")
			assert.Equal(t, []string{"michael@mergington.edu", "new@mergington.edu"}, chess.Participants)
		})
	}
}

func TestActivityRepo_Capacity(t *testing.T) {
	ctx := context.Background()
	repo := newPostgresRepo(t)
	_, err := repo.SeedIfEmpty(ctx, smallCatalog())
	require.NoError(t, err)

	require.NoError(t, repo.AddParticipant(ctx, "Chess Club", "a@mergington.edu"))
	require.NoError(t, repo.AddParticipant(ctx, "Chess Club", "b@mergington.edu"))
	assert.ErrorIs(t, repo.AddParticipant(ctx, "Chess Club", "c@mergington.edu"), repository.ErrActivityFull)
}

func TestActivityRepo_ConcurrentSignupsRespectCapacity(t *testing.T) {
	ctx := context.Background()
	repo := newPostgresRepo(t)
	_, err := repo.SeedIfEmpty(ctx, model.Catalog{
		{Name: "Tiny Club", Activity: model.Activity{MaxParticipants: 5}},
	})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.AddParticipant(ctx, "Tiny Club", fmt.Sprintf("student%d@mergington.edu", i))
		}()
	}
	wg.Wait()

	catalog, err := repo.ListActivities(ctx)
	require.NoError(t, err)
	assert.Len(t, catalog[0].Participants, 5)
}

func TestActivityRepo_RemoveParticipant(t *testing.T) {
	ctx := context.Background()
	repo := newPostgresRepo(t)
	_, err := repo.SeedIfEmpty(ctx, smallCatalog())
	require.NoError(t, err)

	require.NoError(t, repo.RemoveParticipant(ctx, "Chess Club", "michael@mergington.edu"))
	assert.ErrorIs(t, repo.RemoveParticipant(ctx, "Chess Club", "michael@mergington.edu"), repository.ErrParticipantNotFound)
	assert.ErrorIs(t, repo.RemoveParticipant(ctx, "Drama Club", "michael@mergington.edu"), repository.ErrActivityNotFound)

	catalog, err := repo.ListActivities(ctx)
	require.NoError(t, err)
	assert.Empty(t, catalog[0].Participants)
}
