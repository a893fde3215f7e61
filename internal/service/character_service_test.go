package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/avatar-api/internal/domain"
	"github.com/phrazzld/avatar-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCharacterServiceValidatesDependencies(t *testing.T) {
	runner := &recordingRunner{}

	_, err := NewCharacterService(nil, runner.run, nil)
	assert.ErrorIs(t, err, ErrNilDependency)

	_, err = NewCharacterService(&MockCharacterStore{}, nil, nil)
	assert.ErrorIs(t, err, ErrNilDependency)
}

func TestCharacterServiceFindAll(t *testing.T) {
	characters := &MockCharacterStore{}
	runner := &recordingRunner{}
	svc, err := NewCharacterService(characters, runner.run, nil)
	require.NoError(t, err)

	aang := &domain.Character{ID: uuid.New(), Name: "Aang"}
	katara := &domain.Character{ID: uuid.New(), Name: "Katara"}
	aang.Relations = []domain.RelationEdge{{
		ID: 1, CharacterID: aang.ID, RelatedID: katara.ID, TypeID: domain.RelationAlly,
		Direction: domain.EdgeOutgoing, Other: &domain.CharacterRef{ID: katara.ID, Name: katara.Name},
	}}
	katara.Relations = []domain.RelationEdge{{
		ID: 1, CharacterID: aang.ID, RelatedID: katara.ID, TypeID: domain.RelationAlly,
		Direction: domain.EdgeIncoming, Other: &domain.CharacterRef{ID: aang.ID, Name: aang.Name},
	}}

	characters.On("List", mock.Anything, store.Page{Offset: 0, Limit: 10}).
		Return([]*domain.Character{aang, katara}, nil)
	characters.On("Count", mock.Anything).Return(3, nil)

	got, err := svc.FindAll(context.Background(), testBaseURL, intPtr(1), intPtr(10))
	require.NoError(t, err)

	assert.Equal(t, 1, runner.calls)
	assert.Equal(t, 1, characters.txCalls)
	assert.Equal(t, 3, got.Info.Total)
	assert.Nil(t, got.Info.Page.Next)
	assert.Nil(t, got.Info.Page.Prev)
	require.Len(t, got.Data, 2)
	assert.Equal(t, []string{"Katara"}, got.Data[0].Allies)
	assert.Equal(t, []string{"Aang"}, got.Data[1].Allies)
	assert.Equal(t, []string{}, got.Data[1].Enemies)

	characters.AssertExpectations(t)
}

func TestCharacterServiceFindAllError(t *testing.T) {
	characters := &MockCharacterStore{}
	svc, _ := NewCharacterService(characters, (&recordingRunner{}).run, nil)

	characters.On("List", mock.Anything, mock.Anything).Return([]*domain.Character{}, nil)
	characters.On("Count", mock.Anything).Return(0, errors.New("timeout"))

	got, err := svc.FindAll(context.Background(), testBaseURL, nil, nil)
	assert.Nil(t, got)

	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "character", svcErr.Service)
}

func TestCharacterServiceFindOne(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		characters := &MockCharacterStore{}
		svc, _ := NewCharacterService(characters, (&recordingRunner{}).run, nil)

		zuko := &domain.Character{ID: uuid.New(), Name: "Zuko"}
		characters.On("GetByID", mock.Anything, zuko.ID).Return(zuko, nil)

		got, err := svc.FindOne(context.Background(), zuko.ID, testBaseURL)
		require.NoError(t, err)
		require.NotNil(t, got.Data)
		assert.Equal(t, testBaseURL+"/characters/"+zuko.ID.String(), got.Data.URL)
		assert.NotNil(t, got.Data.Allies)
		assert.NotNil(t, got.Data.Enemies)
	})

	t.Run("missing is data null", func(t *testing.T) {
		characters := &MockCharacterStore{}
		svc, _ := NewCharacterService(characters, (&recordingRunner{}).run, nil)

		id := uuid.New()
		characters.On("GetByID", mock.Anything, id).Return(nil, store.ErrCharacterNotFound)

		got, err := svc.FindOne(context.Background(), id, testBaseURL)
		require.NoError(t, err)
		assert.Nil(t, got.Data)
	})
}

func TestServiceErrorFormatting(t *testing.T) {
	assert.NoError(t, NewServiceError("skill", "find_all", "msg", nil))

	err := NewServiceError("skill", "find_all", "failed to load skills", errors.New("boom"))
	assert.Equal(t, "skill service find_all failed: failed to load skills: boom", err.Error())

	bare := &ServiceError{Service: "character", Operation: "find_one", Message: "nope"}
	assert.Equal(t, "character service find_one failed: nope", bare.Error())
}
