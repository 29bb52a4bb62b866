package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"skolmaten/internal/db"
	"skolmaten/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	gormDB, err := db.NewSQLite(fmt.Sprintf("file:repo_%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB))
	t.Cleanup(func() {
		if sqlDB, err := gormDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gormDB
}

func TestUserRepository_CreateAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	first := &model.User{Name: "adminacc", PasswordHash: "x", AuthLevel: model.LevelAdmin}
	require.NoError(t, repo.Create(ctx, first))
	assert.Equal(t, int64(0), first.ID)

	second := &model.User{Name: "anna", PasswordHash: "x"}
	require.NoError(t, repo.Create(ctx, second))
	assert.Equal(t, int64(1), second.ID)

	found, err := repo.FindByName(ctx, "anna")
	require.NoError(t, err)
	assert.Equal(t, int64(1), found.ID)
	assert.Equal(t, model.LevelUser, found.AuthLevel)
}

func TestUserRepository_DuplicateName(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	require.NoError(t, repo.Create(ctx, &model.User{Name: "anna", PasswordHash: "x"}))
	err := repo.Create(ctx, &model.User{Name: "anna", PasswordHash: "y"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestUserRepository_Tokens(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user := &model.User{Name: "anna", PasswordHash: "x"}
	require.NoError(t, repo.Create(ctx, user))

	require.NoError(t, repo.SetToken(ctx, user.ID, "tok-1", time.Now()))
	found, err := repo.FindByToken(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	// a new token replaces the old one
	require.NoError(t, repo.SetToken(ctx, user.ID, "tok-2", time.Now()))
	_, err = repo.FindByToken(ctx, "tok-1")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, repo.ClearToken(ctx, "tok-2"))
	require.NoError(t, repo.ClearToken(ctx, "tok-2"))
	found, err = repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, found.Token)
	assert.Nil(t, found.TokenIssuedAt)
}

func TestUserRepository_WithTransactionRollsBack(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	err := repo.WithTransaction(ctx, func(ctx context.Context, tx UserRepository) error {
		if err := tx.Create(ctx, &model.User{Name: "anna", PasswordHash: "x"}); err != nil {
			return err
		}
		return fmt.Errorf("abort")
	})
	require.Error(t, err)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestMenuRepository_UpsertDayKeepsOtherColumns(t *testing.T) {
	ctx := context.Background()
	repo := NewMenuRepository(newTestDB(t))

	require.NoError(t, repo.UpsertDay(ctx, 2025, 10, 1, "Pasta"))
	require.NoError(t, repo.UpsertDay(ctx, 2025, 10, 3, "Soup"))
	require.NoError(t, repo.UpsertDay(ctx, 2025, 10, 1, "Fish"))

	row, err := repo.Find(ctx, 2025, 10)
	require.NoError(t, err)
	assert.Equal(t, [5]string{"Fish", "", "Soup", "", ""}, row.Days())

	_, err = repo.Find(ctx, 2025, 11)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.Error(t, repo.UpsertDay(ctx, 2025, 10, 6, "Brunch"))
}

func TestMenuRepository_FindYear(t *testing.T) {
	ctx := context.Background()
	repo := NewMenuRepository(newTestDB(t))

	require.NoError(t, repo.UpsertDay(ctx, 2025, 12, 2, "b"))
	require.NoError(t, repo.UpsertDay(ctx, 2025, 3, 5, "a"))
	require.NoError(t, repo.UpsertDay(ctx, 2024, 3, 5, "other year"))

	rows, err := repo.FindYear(ctx, 2025)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 3, rows[0].Week)
	assert.Equal(t, 12, rows[1].Week)
}

func TestSequenceRepository_Next(t *testing.T) {
	ctx := context.Background()
	repo := NewSequenceRepository(newTestDB(t))

	for want := int64(0); want < 3; want++ {
		got, err := repo.Next(ctx, "things")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	other, err := repo.Next(ctx, "others")
	require.NoError(t, err)
	assert.Equal(t, int64(0), other)
}

func TestCommentRepository_ThreadAndIDs(t *testing.T) {
	ctx := context.Background()
	gormDB := newTestDB(t)
	users := NewUserRepository(gormDB)
	repo := NewCommentRepository(gormDB)

	author := &model.User{Name: "anna", DisplayName: "Anna", PasswordHash: "x"}
	require.NoError(t, users.Create(ctx, author))

	first := &model.Comment{Year: 2025, Week: 10, Weekday: 1, AuthorID: author.ID, Value: "tasty"}
	require.NoError(t, repo.Create(ctx, first))
	second := &model.Comment{Year: 2025, Week: 10, Weekday: 1, AuthorID: author.ID, Value: "again"}
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, &model.Comment{Year: 2025, Week: 10, Weekday: 4, AuthorID: author.ID, Value: "meh"}))

	assert.Equal(t, int64(0), first.ID)
	assert.Equal(t, int64(1), second.ID)

	views, err := repo.ListForDay(ctx, 2025, 10, 1)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "tasty", views[0].Value)
	assert.Equal(t, "again", views[1].Value)
	assert.Equal(t, "anna", views[0].AuthorName)
	assert.Equal(t, "Anna", views[0].AuthorDisplay)

	counts, err := repo.CountForWeek(ctx, 2025, 10)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{1: 2, 4: 1}, counts)

	deleted, err := repo.Delete(ctx, second.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	deleted, err = repo.Delete(ctx, second.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	// ids are never handed out twice
	third := &model.Comment{Year: 2025, Week: 10, Weekday: 1, AuthorID: author.ID, Value: "new"}
	require.NoError(t, repo.Create(ctx, third))
	assert.Equal(t, int64(3), third.ID)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestCommentRepository_AuthorRenameIsVisible(t *testing.T) {
	ctx := context.Background()
	gormDB := newTestDB(t)
	users := NewUserRepository(gormDB)
	repo := NewCommentRepository(gormDB)

	author := &model.User{Name: "anna", DisplayName: "Anna", PasswordHash: "x"}
	require.NoError(t, users.Create(ctx, author))
	require.NoError(t, repo.Create(ctx, &model.Comment{Year: 2025, Week: 1, Weekday: 2, AuthorID: author.ID, Value: "hi"}))

	require.NoError(t, users.Update(ctx, author.ID, map[string]interface{}{"display_name": "Anna B"}))

	views, err := repo.ListForDay(ctx, 2025, 1, 2)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Anna B", views[0].AuthorDisplay)

	require.NoError(t, repo.UpdateValue(ctx, views[0].ID, model.DeletedCommentText))
	comment, err := repo.FindByID(ctx, views[0].ID)
	require.NoError(t, err)
	assert.True(t, comment.IsDeleted())
}
