package resource

import (
	"github.com/phrazzld/avatar-api/internal/domain"
)

// CharacterSkill is a skill embedded in a character. It omits the skill's
// type and sub-skills.
type CharacterSkill struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	SourceURL   *string `json:"sourceUrl,omitempty"`
	URL         string  `json:"url"`
}

// SkillBuckets groups a character's skills by skill type.
type SkillBuckets struct {
	Bending []*CharacterSkill `json:"bending"`
	Other   []*CharacterSkill `json:"other"`
}

// Character is the public shape of a character.
type Character struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description *string      `json:"description,omitempty"`
	ImageURL    *string      `json:"imageUrl,omitempty"`
	SourceURL   *string      `json:"sourceUrl,omitempty"`
	URL         string       `json:"url"`
	Skills      SkillBuckets `json:"skills"`
	Allies      []string     `json:"allies"`
	Enemies     []string     `json:"enemies"`
}

// CharacterURL returns the absolute URL of a character resource.
func CharacterURL(baseURL, id string) string {
	return baseURL + "/characters/" + id
}

// MapCharacter converts a stored character. Skills whose type is neither
// Bending nor Other are left out of both buckets. A nil character maps to nil.
func MapCharacter(c *domain.Character, baseURL string) *Character {
	if c == nil {
		return nil
	}

	id := c.ID.String()
	return &Character{
		ID:          id,
		Name:        c.Name,
		Description: c.Description,
		ImageURL:    c.ImageURL,
		SourceURL:   c.SourceURL,
		URL:         CharacterURL(baseURL, id),
		Skills: SkillBuckets{
			Bending: characterSkills(c.Skills, domain.SkillTypeBending, baseURL),
			Other:   characterSkills(c.Skills, domain.SkillTypeOther, baseURL),
		},
		Allies:  ReduceRelations(c.Relations, domain.RelationAlly),
		Enemies: ReduceRelations(c.Relations, domain.RelationEnemy),
	}
}

// MapCharacters maps every element in order without filtering.
func MapCharacters(characters []*domain.Character, baseURL string) []*Character {
	out := make([]*Character, 0, len(characters))
	for _, c := range characters {
		out = append(out, MapCharacter(c, baseURL))
	}
	return out
}

func characterSkills(skills []*domain.Skill, typ domain.SkillTypeID, baseURL string) []*CharacterSkill {
	matched := make([]*domain.Skill, 0, len(skills))
	for _, s := range skills {
		if s != nil && s.TypeID == typ {
			matched = append(matched, s)
		}
	}

	out := make([]*CharacterSkill, 0, len(matched))
	for _, s := range MapSkills(matched, baseURL) {
		out = append(out, &CharacterSkill{
			ID:          s.ID,
			Name:        s.Name,
			Description: s.Description,
			ImageURL:    s.ImageURL,
			SourceURL:   s.SourceURL,
			URL:         s.URL,
		})
	}
	return out
}
