package service

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/mnk-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/mnk-tictactoe/internal/entity"
)

func TestBotService_PickCell(t *testing.T) {
	t.Run("Picks the only empty cell", func(t *testing.T) {
		// Given: a board with one free cell
		board, err := entity.ParseBoard("XOX\nO.X\nOXO")
		require.NoError(t, err)
		bot := NewBotService()

		// When: the bot picks a cell
		cell, err := bot.PickCell(board)

		// Then: the free cell is chosen
		require.NoError(t, err)
		assert.Equal(t, entity.Coord{X: 1, Y: 1}, cell)
	})

	t.Run("Returns ErrNoAvailableMoves on a full board", func(t *testing.T) {
		// Given: a full board
		board, err := entity.ParseBoard("XO\nOX")
		require.NoError(t, err)

		// When: the bot picks a cell
		_, err = NewBotService().PickCell(board)

		// Then: ErrNoAvailableMoves is returned
		require.ErrorIs(t, err, apperror.ErrNoAvailableMoves)
	})

	t.Run("Only picks empty cells and reaches all of them", func(t *testing.T) {
		// Given: a seeded bot and a board with three free cells
		board, err := entity.ParseBoard("X.O\n.X.\nOOX")
		require.NoError(t, err)
		bot := NewBotServiceWithSource(rand.NewSource(42))

		// When: picking many times
		seen := map[entity.Coord]int{}
		for i := 0; i < 300; i++ {
			cell, err := bot.PickCell(board)
			require.NoError(t, err)
			seen[cell]++
		}

		// Then: every pick is free and every free cell was picked
		require.Len(t, seen, 3)
		for cell := range seen {
			assert.Equal(t, entity.Empty, board.At(cell))
		}
	})

	t.Run("Same seed gives the same picks", func(t *testing.T) {
		board, err := entity.NewBoard(5, 5)
		require.NoError(t, err)

		first := NewBotServiceWithSource(rand.NewSource(7))
		second := NewBotServiceWithSource(rand.NewSource(7))

		for i := 0; i < 10; i++ {
			a, err := first.PickCell(board)
			require.NoError(t, err)
			b, err := second.PickCell(board)
			require.NoError(t, err)
			assert.Equal(t, a, b)
		}
	})
}
