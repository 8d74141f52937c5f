package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/mnk-tictactoe/internal/entity"
)

func mustParseBoard(t *testing.T, text string) *entity.Board {
	t.Helper()

	board, err := entity.ParseBoard(text)
	require.NoError(t, err)

	return board
}

func TestCheckWinner(t *testing.T) {
	tests := []struct {
		name     string
		board    string
		lastMove entity.Coord
		winCount int
		want     entity.Winner
	}{
		{
			name:     "No winner - single mark",
			board:    "X..\n...\n...",
			lastMove: entity.Coord{X: 0, Y: 0},
			winCount: 3,
			want:     entity.Nobody,
		},
		{
			name:     "X wins - row",
			board:    "XXX\nOO.\n...",
			lastMove: entity.Coord{X: 1, Y: 0},
			winCount: 3,
			want:     entity.PlayerOneWins,
		},
		{
			name:     "X wins - column 0,0 0,1 0,2",
			board:    "XO.\nXO.\nX..",
			lastMove: entity.Coord{X: 0, Y: 2},
			winCount: 3,
			want:     entity.PlayerOneWins,
		},
		{
			name:     "O wins - down right diagonal",
			board:    "OX.\nXO.\nX.O",
			lastMove: entity.Coord{X: 2, Y: 2},
			winCount: 3,
			want:     entity.PlayerTwoWins,
		},
		{
			name:     "O wins - down left diagonal",
			board:    "X.O\nXO.\nO.X",
			lastMove: entity.Coord{X: 1, Y: 1},
			winCount: 3,
			want:     entity.PlayerTwoWins,
		},
		{
			name:     "Draw - full board",
			board:    "XOX\nXOO\nOXX",
			lastMove: entity.Coord{X: 2, Y: 2},
			winCount: 3,
			want:     entity.Draw,
		},
		{
			name:     "Win on the last free cell is not a draw",
			board:    "XOX\nOXO\nOXX",
			lastMove: entity.Coord{X: 2, Y: 2},
			winCount: 3,
			want:     entity.PlayerOneWins,
		},
		{
			name:     "Line not through the last move is ignored",
			board:    "XXX\n...\n..O",
			lastMove: entity.Coord{X: 2, Y: 2},
			winCount: 3,
			want:     entity.Nobody,
		},
		{
			name:     "Broken line does not win",
			board:    "XX.XX",
			lastMove: entity.Coord{X: 4, Y: 0},
			winCount: 4,
			want:     entity.Nobody,
		},
		{
			name:     "Four in a row on a wide board",
			board:    ".....\n.XXXX\n.OOO.",
			lastMove: entity.Coord{X: 2, Y: 1},
			winCount: 4,
			want:     entity.PlayerOneWins,
		},
		{
			name:     "Longer line still wins",
			board:    "OOOOO\n.....",
			lastMove: entity.Coord{X: 2, Y: 0},
			winCount: 3,
			want:     entity.PlayerTwoWins,
		},
		{
			name:     "Win count one wins on any mark",
			board:    "..\n.O",
			lastMove: entity.Coord{X: 1, Y: 1},
			winCount: 1,
			want:     entity.PlayerTwoWins,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: the board from the table
			board := mustParseBoard(t, tt.board)

			// When: checking the winner around the last move
			got := CheckWinner(board, tt.lastMove, tt.winCount)

			// Then: the expected result is reported
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckWinner_TwoLinesAtOnce(t *testing.T) {
	// Given: a centre move that completes a row and a column
	board := mustParseBoard(t, ".X.\nXXX\n.X.")

	// When: checking from the centre
	got := CheckWinner(board, entity.Coord{X: 1, Y: 1}, 3)

	// Then: player one is reported once
	assert.Equal(t, entity.PlayerOneWins, got)
}

func TestProbe(t *testing.T) {
	t.Run("Out of bounds positions read as empty", func(t *testing.T) {
		// Given: a 3x3 board with the corner marked
		board := mustParseBoard(t, "X..\n...\n...")

		// When: probing horizontally around the corner
		line := probe(board, entity.Coord{X: 0, Y: 0}, direction{dx: 1, dy: 0}, 3)

		// Then: the probe is centred and padded with empty marks
		assert.Equal(t, []entity.Mark{entity.Empty, entity.Empty, entity.Cross, entity.Empty, entity.Empty}, line)
	})

	t.Run("Down left diagonal walks from top right to bottom left", func(t *testing.T) {
		// Given: a board with an anti-diagonal of noughts
		board := mustParseBoard(t, "..O\n.X.\nO..")

		// When: probing the down left diagonal from the centre
		line := probe(board, entity.Coord{X: 1, Y: 1}, direction{dx: -1, dy: 1}, 2)

		// Then: top right comes first
		assert.Equal(t, []entity.Mark{entity.Nought, entity.Cross, entity.Nought}, line)
	})
}

func TestScanLine(t *testing.T) {
	x, o, e := entity.Cross, entity.Nought, entity.Empty

	assert.Equal(t, entity.PlayerOneWins, scanLine([]entity.Mark{o, x, x, x, e}, 3))
	assert.Equal(t, entity.Nobody, scanLine([]entity.Mark{x, x, o, x, x}, 3))
	assert.Equal(t, entity.Nobody, scanLine([]entity.Mark{x, x, e, x, x}, 3))
	assert.Equal(t, entity.PlayerTwoWins, scanLine([]entity.Mark{e, o, o, e, e}, 2))
}
