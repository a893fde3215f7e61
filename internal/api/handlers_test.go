package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/avatar-api/internal/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(skills *mockSkillService, characters *mockCharacterService) http.Handler {
	skillHandler := NewSkillHandler(skills, nil)
	characterHandler := NewCharacterHandler(characters, nil)

	r := chi.NewRouter()
	r.Route("/v1", func(r chi.Router) {
		r.Get("/skills", skillHandler.ListSkills)
		r.Get("/skills/{id}", skillHandler.GetSkill)
		r.Get("/characters", characterHandler.ListCharacters)
		r.Get("/characters/{id}", characterHandler.GetCharacter)
	})
	return r
}

func serve(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestListSkillsPassesParams(t *testing.T) {
	var gotBase string
	var gotPage, gotLimit *int
	skills := &mockSkillService{
		FindAllFn: func(ctx context.Context, baseURL string, page, limit *int) (*resource.List[resource.Skill], error) {
			gotBase, gotPage, gotLimit = baseURL, page, limit
			return &resource.List[resource.Skill]{
				Info: resource.NewInfo(0, page, limit),
				Data: []*resource.Skill{},
			}, nil
		},
	}

	rec := serve(t, newTestRouter(skills, &mockCharacterService{}), "/v1/skills?page=3")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://example.com", gotBase)
	require.NotNil(t, gotPage)
	assert.Equal(t, 3, *gotPage)
	require.NotNil(t, gotLimit)
	assert.Equal(t, DefaultSkillLimit, *gotLimit)
	assert.JSONEq(t,
		`{"info":{"total":0,"limit":5,"page":{"current":3,"next":null,"prev":2}},"data":[]}`,
		rec.Body.String())
}

func TestListSkillsServiceError(t *testing.T) {
	skills := &mockSkillService{
		FindAllFn: func(ctx context.Context, baseURL string, page, limit *int) (*resource.List[resource.Skill], error) {
			return nil, errors.New("SELECT failed on postgres://user:pw@db/avatar")
		},
	}

	rec := serve(t, newTestRouter(skills, &mockCharacterService{}), "/v1/skills")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrorProcessingMessage, body["error"])
	assert.NotContains(t, rec.Body.String(), "postgres")
}

func TestGetSkill(t *testing.T) {
	id := uuid.New()
	skills := &mockSkillService{
		FindOneFn: func(ctx context.Context, got uuid.UUID, baseURL string) (*resource.Detail[resource.Skill], error) {
			if got != id {
				return &resource.Detail[resource.Skill]{}, nil
			}
			return &resource.Detail[resource.Skill]{Data: &resource.Skill{
				ID:        id.String(),
				Name:      "Airbending",
				URL:       resource.SkillURL(baseURL, id.String()),
				SubSkills: []*resource.Skill{},
			}}, nil
		},
	}
	router := newTestRouter(skills, &mockCharacterService{})

	t.Run("found", func(t *testing.T) {
		rec := serve(t, router, "/v1/skills/"+id.String())
		assert.Equal(t, http.StatusOK, rec.Code)

		var body resource.Detail[resource.Skill]
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.NotNil(t, body.Data)
		assert.Equal(t, "http://example.com/skills/"+id.String(), body.Data.URL)
	})

	t.Run("missing is 404", func(t *testing.T) {
		rec := serve(t, router, "/v1/skills/"+uuid.NewString())
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed is 404", func(t *testing.T) {
		called := false
		skills := &mockSkillService{
			FindOneFn: func(ctx context.Context, id uuid.UUID, baseURL string) (*resource.Detail[resource.Skill], error) {
				called = true
				return nil, nil
			},
		}
		rec := serve(t, newTestRouter(skills, &mockCharacterService{}), "/v1/skills/not-a-uuid")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.False(t, called)
	})

	t.Run("service error is 500", func(t *testing.T) {
		skills := &mockSkillService{
			FindOneFn: func(ctx context.Context, id uuid.UUID, baseURL string) (*resource.Detail[resource.Skill], error) {
				return nil, errors.New("boom")
			},
		}
		rec := serve(t, newTestRouter(skills, &mockCharacterService{}), "/v1/skills/"+uuid.NewString())
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestListCharactersDefaultLimit(t *testing.T) {
	var gotLimit *int
	characters := &mockCharacterService{
		FindAllFn: func(ctx context.Context, baseURL string, page, limit *int) (*resource.List[resource.Character], error) {
			gotLimit = limit
			return &resource.List[resource.Character]{Data: []*resource.Character{}}, nil
		},
	}

	rec := serve(t, newTestRouter(&mockSkillService{}, characters), "/v1/characters?page=1")
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, gotLimit)
	assert.Equal(t, DefaultCharacterLimit, *gotLimit)
}

func TestGetCharacter(t *testing.T) {
	t.Run("missing is data null", func(t *testing.T) {
		characters := &mockCharacterService{
			FindOneFn: func(ctx context.Context, id uuid.UUID, baseURL string) (*resource.Detail[resource.Character], error) {
				return &resource.Detail[resource.Character]{}, nil
			},
		}
		rec := serve(t, newTestRouter(&mockSkillService{}, characters), "/v1/characters/"+uuid.NewString())
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":null}`, rec.Body.String())
	})

	t.Run("malformed is data null", func(t *testing.T) {
		rec := serve(t, newTestRouter(&mockSkillService{}, &mockCharacterService{}), "/v1/characters/xyz")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":null}`, rec.Body.String())
	})

	t.Run("service error is 500", func(t *testing.T) {
		characters := &mockCharacterService{
			FindOneFn: func(ctx context.Context, id uuid.UUID, baseURL string) (*resource.Detail[resource.Character], error) {
				return nil, errors.New("boom")
			},
		}
		rec := serve(t, newTestRouter(&mockSkillService{}, characters), "/v1/characters/"+uuid.NewString())
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Error processing"}`, rec.Body.String())
	})
}
