package api

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/avatar-api/internal/resource"
)

type mockSkillService struct {
	FindAllFn func(ctx context.Context, baseURL string, page, limit *int) (*resource.List[resource.Skill], error)
	FindOneFn func(ctx context.Context, id uuid.UUID, baseURL string) (*resource.Detail[resource.Skill], error)
}

func (m *mockSkillService) FindAll(
	ctx context.Context,
	baseURL string,
	page, limit *int,
) (*resource.List[resource.Skill], error) {
	return m.FindAllFn(ctx, baseURL, page, limit)
}

func (m *mockSkillService) FindOne(
	ctx context.Context,
	id uuid.UUID,
	baseURL string,
) (*resource.Detail[resource.Skill], error) {
	return m.FindOneFn(ctx, id, baseURL)
}

type mockCharacterService struct {
	FindAllFn func(ctx context.Context, baseURL string, page, limit *int) (*resource.List[resource.Character], error)
	FindOneFn func(ctx context.Context, id uuid.UUID, baseURL string) (*resource.Detail[resource.Character], error)
}

func (m *mockCharacterService) FindAll(
	ctx context.Context,
	baseURL string,
	page, limit *int,
) (*resource.List[resource.Character], error) {
	return m.FindAllFn(ctx, baseURL, page, limit)
}

func (m *mockCharacterService) FindOne(
	ctx context.Context,
	id uuid.UUID,
	baseURL string,
) (*resource.Detail[resource.Character], error) {
	return m.FindOneFn(ctx, id, baseURL)
}
