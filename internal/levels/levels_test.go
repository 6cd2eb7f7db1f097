package levels

import (
	"strings"
	"testing"
)

func TestIndex_KnownLevels(t *testing.T) {
	for i, level := range Order {
		if got := Index(level); got != i {
			t.Errorf("Index(%q) = %d, want %d", level, got, i)
		}
	}
	if got := Index("b1"); got != 2 {
		t.Errorf("Index should be case-insensitive, got %d", got)
	}
	if got := Index("D1"); got != -1 {
		t.Errorf("Index of unknown level = %d, want -1", got)
	}
}

func TestUp_ClampsAtC2(t *testing.T) {
	level := "B1"
	for i := 0; i < 10; i++ {
		level = Up(level)
	}
	if level != "C2" {
		t.Errorf("ten steps up from B1 = %q, want C2", level)
	}
}

func TestDown_ClampsAtA1(t *testing.T) {
	level := "B1"
	for i := 0; i < 10; i++ {
		level = Down(level)
	}
	if level != "A1" {
		t.Errorf("ten steps down from B1 = %q, want A1", level)
	}
}

func TestUpDown_NeverLeaveScale(t *testing.T) {
	level := DefaultLevel
	moves := []bool{true, true, false, true, false, false, false, false, true, false, false, false}
	for _, up := range moves {
		if up {
			level = Up(level)
		} else {
			level = Down(level)
		}
		if !Valid(level) {
			t.Fatalf("level %q left the CEFR scale", level)
		}
	}
}

func TestStore_SkillContext(t *testing.T) {
	store := NewStore()

	ctx := store.LevelContext("b2", "writing")
	if ctx == nil {
		t.Fatal("expected context for level b2")
	}
	if ctx.Level != "B2" {
		t.Errorf("level = %q, want B2", ctx.Level)
	}
	if ctx.SkillType != "writing" {
		t.Errorf("skill_type = %q, want writing", ctx.SkillType)
	}
	if ctx.Description == "" {
		t.Error("expected a non-empty skill description")
	}
	if ctx.Skills != nil {
		t.Error("skill-specific context should not carry the full bundle")
	}
}

func TestStore_FullBundleForUnknownSkill(t *testing.T) {
	store := NewStore()

	ctx := store.LevelContext("A1", "juggling")
	if ctx == nil {
		t.Fatal("expected context for level A1")
	}
	if ctx.Skills == nil {
		t.Fatal("expected the full per-skill bundle")
	}
	if !strings.Contains(ctx.FullDescription, "Level A1") {
		t.Errorf("full description missing level header: %q", ctx.FullDescription)
	}
}

func TestStore_UnknownLevelIsNil(t *testing.T) {
	store := NewStore()
	if ctx := store.LevelContext("Z9", "writing"); ctx != nil {
		t.Errorf("expected nil for unknown level, got %+v", ctx)
	}
}

func TestPromptText(t *testing.T) {
	store := NewStore()

	skill := store.LevelContext("C1", "writing").PromptText()
	if !strings.Contains(skill, "C1") || !strings.Contains(skill, "writing") {
		t.Errorf("skill prompt text missing level or skill: %q", skill)
	}

	full := store.LevelContext("C1", "").PromptText()
	if !strings.Contains(full, "Listening:") {
		t.Errorf("full prompt text missing skill sections: %q", full)
	}
}
