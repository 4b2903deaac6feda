package domain

import "fmt"

// QuestType identifies how a quest accrues progress per game played.
type QuestType string

const (
	QuestTypeWinGames   QuestType = "win_games"   // Win X games
	QuestTypeCastSpells QuestType = "cast_spells" // Cast X spells
	QuestTypePlayColors QuestType = "play_colors" // Play X games with matching colors
)

// AllQuestTypes lists every supported quest type, in stable order.
var AllQuestTypes = []QuestType{
	QuestTypeWinGames,
	QuestTypeCastSpells,
	QuestTypePlayColors,
}

// IsValid reports whether t is a member of the closed quest-type set.
func (t QuestType) IsValid() bool {
	switch t {
	case QuestTypeWinGames, QuestTypeCastSpells, QuestTypePlayColors:
		return true
	}
	return false
}

// ColorSensitive reports whether quests of this type carry a color filter.
func (t QuestType) ColorSensitive() bool {
	return t == QuestTypePlayColors
}

// Color is a single color tag on a color-sensitive quest.
type Color string

const (
	ColorWhite Color = "W"
	ColorBlue  Color = "U"
	ColorBlack Color = "B"
	ColorRed   Color = "R"
	ColorGreen Color = "G"
)

// IsValid reports whether c is a recognized color tag.
func (c Color) IsValid() bool {
	switch c {
	case ColorWhite, ColorBlue, ColorBlack, ColorRed, ColorGreen:
		return true
	}
	return false
}

// Quest is one unit of progress tracking supplied by the caller.
// The engine treats quests as read-only input per call.
type Quest struct {
	ID            string    `json:"id"`
	Type          QuestType `json:"type"`
	Description   string    `json:"description,omitempty"`
	Remaining     int       `json:"remaining"`
	ExpiresInDays int       `json:"expires_in_days"`
	Colors        []Color   `json:"colors,omitempty"` // required for color-sensitive types
}

// IsActive reports whether the quest still has progress remaining.
func (q Quest) IsActive() bool {
	return q.Remaining > 0
}

// Validate checks the quest invariants. Violations are reported as
// ErrInvalidInput wrapped with detail.
func (q Quest) Validate() error {
	if q.ID == "" {
		return fmt.Errorf("%w: quest id is required", ErrInvalidInput)
	}
	if !q.Type.IsValid() {
		return fmt.Errorf("%w: quest %s has unknown type %q", ErrInvalidInput, q.ID, q.Type)
	}
	if q.Remaining < 0 {
		return fmt.Errorf("%w: quest %s has negative remaining count", ErrInvalidInput, q.ID)
	}
	if q.ExpiresInDays < 0 {
		return fmt.Errorf("%w: quest %s has negative expiry", ErrInvalidInput, q.ID)
	}
	if q.Type.ColorSensitive() {
		if len(q.Colors) == 0 {
			return fmt.Errorf("%w: quest %s requires at least one color", ErrInvalidInput, q.ID)
		}
		for _, c := range q.Colors {
			if !c.IsValid() {
				return fmt.Errorf("%w: quest %s has unknown color %q", ErrInvalidInput, q.ID, c)
			}
		}
	}
	return nil
}
