package resource

import (
	"github.com/phrazzld/avatar-api/internal/domain"
)

// Skill is the public shape of a skill.
type Skill struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	ImageURL    *string  `json:"imageUrl,omitempty"`
	SourceURL   *string  `json:"sourceUrl,omitempty"`
	URL         string   `json:"url"`
	Type        *string  `json:"type"`
	SubSkills   []*Skill `json:"subSkills"`
}

// SkillURL returns the absolute URL of a skill resource.
func SkillURL(baseURL, id string) string {
	return baseURL + "/skills/" + id
}

// MapSkill converts a stored skill and its loaded descendants. A nil skill
// maps to nil so absent detail lookups propagate as null.
func MapSkill(s *domain.Skill, baseURL string) *Skill {
	if s == nil {
		return nil
	}

	id := s.ID.String()
	out := &Skill{
		ID:          id,
		Name:        s.Name,
		Description: s.Description,
		ImageURL:    s.ImageURL,
		SourceURL:   s.SourceURL,
		URL:         SkillURL(baseURL, id),
		SubSkills:   MapSkills(s.SubSkills, baseURL),
	}
	if s.Type != nil {
		desc := s.Type.Description
		out.Type = &desc
	}
	return out
}

// MapSkills maps every element in order. The result has the same length as
// the input and is never nil.
func MapSkills(skills []*domain.Skill, baseURL string) []*Skill {
	out := make([]*Skill, 0, len(skills))
	for _, s := range skills {
		out = append(out, MapSkill(s, baseURL))
	}
	return out
}
