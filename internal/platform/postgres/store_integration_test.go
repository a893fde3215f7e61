//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/avatar-api/internal/domain"
	"github.com/phrazzld/avatar-api/internal/platform/postgres"
	"github.com/phrazzld/avatar-api/internal/store"
	"github.com/phrazzld/avatar-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededSkills(t *testing.T) {
	db := testdb.Open(t)
	skills := postgres.NewPostgresSkillStore(db, nil)
	ctx := context.Background()

	count, err := skills.CountTopLevel(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	page, err := skills.ListTopLevel(ctx, store.Page{Offset: 0, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "Airbending", page[0].Name)
	assert.Equal(t, "Earthbending", page[1].Name)
	require.Len(t, page[1].SubSkills, 6)
	assert.Equal(t, "Glassbending", page[1].SubSkills[0].Name)

	all, err := skills.ListTopLevel(ctx, store.Page{})
	require.NoError(t, err)
	assert.Len(t, all, 5)

	metal, err := skills.GetByID(ctx, metalID)
	require.NoError(t, err)
	assert.Equal(t, "Metalbending", metal.Name)
	assert.False(t, metal.IsTopLevel())

	_, err = skills.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrSkillNotFound)
}

func TestSkillCycleIsReported(t *testing.T) {
	db := testdb.Open(t)
	skills := postgres.NewPostgresSkillStore(db, nil)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		a, b := uuid.New(), uuid.New()
		_, err := tx.Exec(`INSERT INTO skills (id, name, type_id) VALUES ($1, 'A', 1), ($2, 'B', 1)`, a, b)
		require.NoError(t, err)
		_, err = tx.Exec(`UPDATE skills SET skill_id = $2 WHERE id = $1`, a, b)
		require.NoError(t, err)
		_, err = tx.Exec(`UPDATE skills SET skill_id = $2 WHERE id = $1`, b, a)
		require.NoError(t, err)

		_, err = skills.WithTx(tx).GetByID(context.Background(), a)
		assert.ErrorIs(t, err, domain.ErrSkillHierarchyTooDeep)
	})
}

func TestSeededCharacters(t *testing.T) {
	db := testdb.Open(t)
	characters := postgres.NewPostgresCharacterStore(db, nil)
	ctx := context.Background()

	count, err := characters.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	var list []*domain.Character
	err = store.RunInSnapshot(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
		var err error
		list, err = characters.WithTx(tx).List(ctx, store.Page{Limit: 10})
		return err
	})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"Aang", "Katara", "Zuko"},
		[]string{list[0].Name, list[1].Name, list[2].Name})

	aang := list[0]
	require.Len(t, aang.Skills, 1)
	assert.Equal(t, "Airbending", aang.Skills[0].Name)
	require.Len(t, aang.Relations, 1)
	assert.Equal(t, domain.EdgeOutgoing, aang.Relations[0].Direction)
	assert.Equal(t, "Katara", aang.Relations[0].Other.Name)

	katara, err := characters.GetByID(ctx, kataraID)
	require.NoError(t, err)
	require.Len(t, katara.Relations, 1)
	assert.Equal(t, domain.EdgeIncoming, katara.Relations[0].Direction)
	assert.Equal(t, "Aang", katara.Relations[0].Other.Name)

	zuko := list[2]
	assert.NotNil(t, zuko.Relations)
	assert.Empty(t, zuko.Relations)

	_, err = characters.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrCharacterNotFound)
}
