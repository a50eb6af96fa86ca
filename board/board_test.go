package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name    string
		cells   Cells
		outcome Outcome
		winner  string
	}{
		{
			name:    "empty board in progress",
			cells:   Cells{},
			outcome: InProgress,
		},
		{
			name:    "top row win",
			cells:   Cells{"X", "X", "X", "O", "O", "", "", "", ""},
			outcome: Win,
			winner:  "X",
		},
		{
			name:    "middle column win",
			cells:   Cells{"X", "O", "", "X", "O", "", "", "O", "X"},
			outcome: Win,
			winner:  "O",
		},
		{
			name:    "main diagonal win",
			cells:   Cells{"X", "O", "O", "", "X", "", "", "", "X"},
			outcome: Win,
			winner:  "X",
		},
		{
			name:    "anti diagonal win",
			cells:   Cells{"X", "X", "O", "", "O", "", "O", "", "X"},
			outcome: Win,
			winner:  "O",
		},
		{
			name:    "bottom row win on full board",
			cells:   Cells{"X", "O", "X", "X", "O", "X", "O", "O", "O"},
			outcome: Win,
			winner:  "O",
		},
		{
			name:    "full board draw",
			cells:   Cells{"X", "O", "X", "X", "O", "O", "O", "X", "X"},
			outcome: Draw,
		},
		{
			name:    "partial board in progress",
			cells:   Cells{"X", "O", "X", "", "O", "", "", "", ""},
			outcome: InProgress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, winner := Evaluate(tt.cells)
			assert.Equal(t, tt.outcome, outcome)
			assert.Equal(t, tt.winner, winner)
		})
	}
}
