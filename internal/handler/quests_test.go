package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arenatools/questplanner/internal/ev"
)

func TestHandleValidateQuests(t *testing.T) {
	src := testTableSource(t)
	h := NewQuestHandler(src, ev.NewCalculator(src))

	rec := postJSON(t, h.HandleValidateQuests, ValidateQuestsRequest{
		Quests: []QuestInput{
			{ID: "q-win", Type: "win_games", Remaining: 4, ExpiresInDays: 3},
			{ID: "q-done", Type: "cast_spells", Remaining: 0, ExpiresInDays: 3},
			{ID: "q-colorless", Type: "play_colors", Remaining: 2, ExpiresInDays: 1},
		},
		TimeBudgetMinutes: 90,
		WinRate:           0.5,
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ValidateQuestsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Reports, 3)

	// 4 wins at 0.5 needs 8 games of 8 minutes in the free queue.
	win := resp.Reports[0]
	assert.True(t, win.Valid)
	assert.True(t, win.Active)
	assert.Equal(t, "play", win.BestQueue)
	assert.InDelta(t, 64, win.MinutesNeeded, 0.001)
	require.NotNil(t, win.CanComplete)
	assert.True(t, *win.CanComplete)

	// Zero remaining is valid but inactive, so no feasibility verdict.
	done := resp.Reports[1]
	assert.True(t, done.Valid)
	assert.False(t, done.Active)
	assert.Empty(t, done.BestQueue)
	assert.Nil(t, done.CanComplete)

	// Color quests without colors fail structural validation.
	colorless := resp.Reports[2]
	assert.False(t, colorless.Valid)
	assert.Contains(t, colorless.Error, "requires at least one color")
}

func TestHandleValidateQuests_TightBudget(t *testing.T) {
	src := testTableSource(t)
	h := NewQuestHandler(src, ev.NewCalculator(src))

	rec := postJSON(t, h.HandleValidateQuests, ValidateQuestsRequest{
		Quests: []QuestInput{
			{ID: "q-big", Type: "win_games", Remaining: 20, ExpiresInDays: 1},
		},
		TimeBudgetMinutes: 30,
		WinRate:           0.5,
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ValidateQuestsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Reports, 1)
	require.NotNil(t, resp.Reports[0].CanComplete)
	assert.False(t, *resp.Reports[0].CanComplete)
}

func TestHandleValidateQuests_NoBudgetOmitsVerdict(t *testing.T) {
	src := testTableSource(t)
	h := NewQuestHandler(src, ev.NewCalculator(src))

	rec := postJSON(t, h.HandleValidateQuests, ValidateQuestsRequest{
		Quests: []QuestInput{
			{ID: "q-win", Type: "win_games", Remaining: 4, ExpiresInDays: 3},
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ValidateQuestsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Reports, 1)
	assert.Nil(t, resp.Reports[0].CanComplete)
	assert.Positive(t, resp.Reports[0].MinutesNeeded)
}
