package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateQuestInput(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name    string
		input   QuestInput
		wantErr bool
	}{
		{
			name:  "valid win quest",
			input: QuestInput{ID: "q1", Type: "win_games", Remaining: 4},
		},
		{
			name:  "valid color quest",
			input: QuestInput{ID: "q2", Type: "play_colors", Remaining: 3, Colors: []string{"W", "U"}},
		},
		{
			name:    "missing id",
			input:   QuestInput{Type: "win_games", Remaining: 4},
			wantErr: true,
		},
		{
			name:    "unknown type",
			input:   QuestInput{ID: "q1", Type: "collect_gems", Remaining: 4},
			wantErr: true,
		},
		{
			name:    "negative remaining",
			input:   QuestInput{ID: "q1", Type: "win_games", Remaining: -1},
			wantErr: true,
		},
		{
			name:    "unknown color",
			input:   QuestInput{ID: "q1", Type: "play_colors", Remaining: 3, Colors: []string{"X"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	v := GetValidator()

	err := v.ValidateStruct(QuestInput{Type: "collect_gems"})
	assert.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, "This field is required", fields["id"])
	assert.Equal(t, "Invalid quest type", fields["type"])
}

func TestFormatValidationError_NonValidatorError(t *testing.T) {
	fields := FormatValidationError(assert.AnError)
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, fields)
}
