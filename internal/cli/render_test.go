package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"ctchen222/tictactoe/internal/game"
)

func TestRenderBoard(t *testing.T) {
	board := game.Snapshot{
		{game.PlayerX, game.PlayerO, game.None},
		{game.None, game.PlayerX, game.PlayerO},
		{game.None, game.None, game.PlayerX},
	}
	win := game.Outcome{Kind: game.Win, Winner: game.PlayerX, Line: game.Lines[6]}

	tests := []struct {
		name    string
		outcome game.Outcome
		color   bool
		want    string
	}{
		{
			name: "in progress",
			want: "     1   2   3\n" +
				"1    X | O |   \n" +
				"    ---+---+---\n" +
				"2      | X | O \n" +
				"    ---+---+---\n" +
				"3      |   | X \n",
		},
		{
			name:    "winning line bracketed",
			outcome: win,
			want: "     1   2   3\n" +
				"1   [X]| O |   \n" +
				"    ---+---+---\n" +
				"2      |[X]| O \n" +
				"    ---+---+---\n" +
				"3      |   |[X]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			renderBoard(&buf, board, tt.outcome, tt.color)
			assert.Equal(t, tt.want, buf.String())
		})
	}

	t.Run("winning line coloured", func(t *testing.T) {
		var buf bytes.Buffer
		renderBoard(&buf, board, win, true)
		assert.Contains(t, buf.String(), colorWin+"[X]"+colorReset)
	})
}

func TestOutcomeMessage(t *testing.T) {
	assert.Equal(t, "Player X wins!", outcomeMessage(game.Outcome{Kind: game.Win, Winner: game.PlayerX}, game.PlayerO))
	assert.Equal(t, "Computer (O) wins!", outcomeMessage(game.Outcome{Kind: game.Win, Winner: game.PlayerO}, game.PlayerO))
	assert.Equal(t, "Player O wins!", outcomeMessage(game.Outcome{Kind: game.Win, Winner: game.PlayerO}, game.None))
	assert.Equal(t, "It's a draw!", outcomeMessage(game.Outcome{Kind: game.Draw}, game.None))
	assert.Empty(t, outcomeMessage(game.Outcome{}, game.None))
}
