package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/phrazzld/avatar-api/internal/domain"
	"github.com/phrazzld/avatar-api/internal/platform/postgres"
	"github.com/phrazzld/avatar-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var skillTreeColumns = []string{
	"id", "name", "description", "image_url", "source_url",
	"type_id", "skill_id", "depth", "description",
}

var (
	earthID = uuid.MustParse("4844f47b-c8ec-4b6d-82ef-d4c86379eeea")
	waterID = uuid.MustParse("101bc91d-34b4-4e68-89b8-27f00603e276")
	metalID = uuid.MustParse("c4f1f8c0-f5b8-4d5f-b1c8-d1b2f4a0f0c2")
	lavaID  = uuid.MustParse("1326d26d-cf8b-4e60-8f89-5bb1cb76cc5d")
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func newMockSkillStore(t *testing.T) (*postgres.PostgresSkillStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t)
	return postgres.NewPostgresSkillStore(db, nil), mock
}

func TestSkillStoreListTopLevel(t *testing.T) {
	skills, mock := newMockSkillStore(t)

	rows := sqlmock.NewRows(skillTreeColumns).
		AddRow(earthID.String(), "Earthbending", "desc", nil, "https://src", 1, nil, 0, "Bending").
		AddRow(waterID.String(), "Waterbending", nil, nil, nil, 1, nil, 0, "Bending").
		AddRow(lavaID.String(), "Lavabending", nil, nil, nil, 1, earthID.String(), 1, "Bending").
		AddRow(metalID.String(), "Metalbending", nil, nil, nil, 1, earthID.String(), 1, "Bending")
	mock.ExpectQuery("WITH RECURSIVE roots AS").
		WithArgs(2, 0, domain.MaxSkillDepth).
		WillReturnRows(rows)

	got, err := skills.ListTopLevel(context.Background(), store.Page{Offset: 0, Limit: 2})
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "Earthbending", got[0].Name)
	require.NotNil(t, got[0].Description)
	assert.Equal(t, "desc", *got[0].Description)
	assert.Nil(t, got[0].ImageURL)
	require.NotNil(t, got[0].Type)
	assert.Equal(t, "Bending", got[0].Type.Description)
	require.Len(t, got[0].SubSkills, 2)
	assert.Equal(t, "Lavabending", got[0].SubSkills[0].Name)
	assert.Equal(t, "Metalbending", got[0].SubSkills[1].Name)
	assert.NotNil(t, got[0].SubSkills[0].SubSkills)
	assert.Empty(t, got[0].SubSkills[0].SubSkills)

	assert.Equal(t, "Waterbending", got[1].Name)
	assert.NotNil(t, got[1].SubSkills)
	assert.Empty(t, got[1].SubSkills)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSkillStoreListTopLevelUnbounded(t *testing.T) {
	skills, mock := newMockSkillStore(t)

	mock.ExpectQuery("WITH RECURSIVE roots AS").
		WithArgs(nil, 0, domain.MaxSkillDepth).
		WillReturnRows(sqlmock.NewRows(skillTreeColumns))

	got, err := skills.ListTopLevel(context.Background(), store.Page{})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSkillStoreListTopLevelQueryError(t *testing.T) {
	skills, mock := newMockSkillStore(t)

	mock.ExpectQuery("WITH RECURSIVE roots AS").
		WillReturnError(errors.New("connection reset"))

	_, err := skills.ListTopLevel(context.Background(), store.Page{Limit: 5})
	require.Error(t, err)

	var storeErr *store.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "list", storeErr.Operation)
	assert.Equal(t, "skill", storeErr.Entity)
}

func TestSkillStoreRejectsInvalidRows(t *testing.T) {
	skills, mock := newMockSkillStore(t)

	mock.ExpectQuery("WITH RECURSIVE roots AS").
		WillReturnRows(sqlmock.NewRows(skillTreeColumns).
			AddRow(earthID.String(), "", nil, nil, nil, 1, nil, 0, "Bending"))

	_, err := skills.ListTopLevel(context.Background(), store.Page{Limit: 5})
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSkillStoreDetectsDeepHierarchy(t *testing.T) {
	skills, mock := newMockSkillStore(t)

	rows := sqlmock.NewRows(skillTreeColumns)
	var parent any
	for depth := 0; depth <= domain.MaxSkillDepth+1; depth++ {
		id := uuid.New()
		rows.AddRow(id.String(), "level", nil, nil, nil, 1, parent, depth, "Bending")
		parent = id.String()
	}
	mock.ExpectQuery("WITH RECURSIVE roots AS").WillReturnRows(rows)

	_, err := skills.ListTopLevel(context.Background(), store.Page{Limit: 1})
	assert.ErrorIs(t, err, domain.ErrSkillHierarchyTooDeep)
}

func TestSkillStoreCountTopLevel(t *testing.T) {
	skills, mock := newMockSkillStore(t)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM skills WHERE skill_id IS NULL").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	count, err := skills.CountTopLevel(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSkillStoreGetByID(t *testing.T) {
	t.Run("sub-skill with its own tree", func(t *testing.T) {
		skills, mock := newMockSkillStore(t)

		mock.ExpectQuery("SELECT id FROM skills WHERE id = \\$1").
			WithArgs(metalID, domain.MaxSkillDepth).
			WillReturnRows(sqlmock.NewRows(skillTreeColumns).
				AddRow(metalID.String(), "Metalbending", nil, nil, nil, 1, earthID.String(), 0, "Bending"))

		got, err := skills.GetByID(context.Background(), metalID)
		require.NoError(t, err)
		assert.Equal(t, metalID, got.ID)
		require.NotNil(t, got.ParentID)
		assert.Equal(t, earthID, *got.ParentID)
		assert.False(t, got.IsTopLevel())
		assert.Empty(t, got.SubSkills)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		skills, mock := newMockSkillStore(t)

		missing := uuid.New()
		mock.ExpectQuery("SELECT id FROM skills WHERE id = \\$1").
			WithArgs(missing, domain.MaxSkillDepth).
			WillReturnRows(sqlmock.NewRows(skillTreeColumns))

		got, err := skills.GetByID(context.Background(), missing)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, store.ErrSkillNotFound)
		assert.True(t, store.IsNotFoundError(err))
	})
}

func TestSkillStoreWithTx(t *testing.T) {
	db, mock := newMockDB(t)
	skills := postgres.NewPostgresSkillStore(db, nil)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM skills").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectCommit()

	err := store.RunInTransaction(context.Background(), db, func(ctx context.Context, tx *sql.Tx) error {
		count, err := skills.WithTx(tx).CountTopLevel(ctx)
		assert.Equal(t, 2, count)
		return err
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
