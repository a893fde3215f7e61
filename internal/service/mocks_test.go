package service

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/avatar-api/internal/domain"
	"github.com/phrazzld/avatar-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockSkillStore mocks the store.SkillStore interface
type MockSkillStore struct {
	mock.Mock
	txCalls int
}

func (m *MockSkillStore) ListTopLevel(ctx context.Context, page store.Page) ([]*domain.Skill, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Skill), args.Error(1)
}

func (m *MockSkillStore) CountTopLevel(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockSkillStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Skill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Skill), args.Error(1)
}

func (m *MockSkillStore) WithTx(tx *sql.Tx) store.SkillStore {
	m.txCalls++
	return m
}

// MockCharacterStore mocks the store.CharacterStore interface
type MockCharacterStore struct {
	mock.Mock
	txCalls int
}

func (m *MockCharacterStore) List(ctx context.Context, page store.Page) ([]*domain.Character, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Character), args.Error(1)
}

func (m *MockCharacterStore) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockCharacterStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Character, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}

func (m *MockCharacterStore) WithTx(tx *sql.Tx) store.CharacterStore {
	m.txCalls++
	return m
}

// recordingRunner is a store.TxRunner that runs fn without a database and
// counts invocations.
type recordingRunner struct {
	calls int
	err   error
}

func (r *recordingRunner) run(ctx context.Context, fn store.TxFn) error {
	r.calls++
	if r.err != nil {
		return r.err
	}
	return fn(ctx, nil)
}

func intPtr(v int) *int { return &v }
