package levels

import (
	"fmt"
	"strings"
)

// LevelContext is the retrieval result for one CEFR level. When a known
// skill was requested, Description holds that skill's text; otherwise
// Skills carries the full per-skill bundle.
type LevelContext struct {
	Level           string  `json:"level"`
	SkillType       string  `json:"skill_type,omitempty"`
	Description     string  `json:"description,omitempty"`
	FullDescription string  `json:"full_description,omitempty"`
	Skills          *Skills `json:"skills,omitempty"`
}

// Store serves read-only proficiency descriptions for prompt enrichment.
type Store struct {
	skills map[string]Skills
}

func NewStore() *Store {
	return &Store{skills: levelSkills}
}

// LevelContext returns the context for a level, narrowed to one skill
// when the skill is known. Returns nil for an unknown level; callers
// treat nil as an invalid-level error.
func (s *Store) LevelContext(level, skill string) *LevelContext {
	normalized := strings.ToUpper(strings.TrimSpace(level))
	sk, ok := s.skills[normalized]
	if !ok {
		return nil
	}

	switch strings.ToLower(strings.TrimSpace(skill)) {
	case "listening":
		return &LevelContext{Level: normalized, SkillType: "listening", Description: sk.Listening}
	case "reading":
		return &LevelContext{Level: normalized, SkillType: "reading", Description: sk.Reading}
	case "spoken_interaction":
		return &LevelContext{Level: normalized, SkillType: "spoken_interaction", Description: sk.SpokenInteraction}
	case "spoken_production":
		return &LevelContext{Level: normalized, SkillType: "spoken_production", Description: sk.SpokenProduction}
	case "writing":
		return &LevelContext{Level: normalized, SkillType: "writing", Description: sk.Writing}
	}

	full := sk
	return &LevelContext{
		Level:           normalized,
		FullDescription: fullDescription(normalized, sk),
		Skills:          &full,
	}
}

func fullDescription(level string, sk Skills) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Level %s proficiency description:\n", level)
	fmt.Fprintf(&sb, "Listening: %s\n", sk.Listening)
	fmt.Fprintf(&sb, "Reading: %s\n", sk.Reading)
	fmt.Fprintf(&sb, "Spoken Interaction: %s\n", sk.SpokenInteraction)
	fmt.Fprintf(&sb, "Spoken Production: %s\n", sk.SpokenProduction)
	fmt.Fprintf(&sb, "Writing: %s\n", sk.Writing)
	return sb.String()
}

// PromptText renders the context the way prompts embed it.
func (c *LevelContext) PromptText() string {
	if c == nil {
		return ""
	}
	if c.Description != "" {
		return fmt.Sprintf("%s (%s): %s", c.Level, c.SkillType, c.Description)
	}
	return c.FullDescription
}
