package service

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rocketscienceinc/mnk-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/mnk-tictactoe/internal/entity"
)

type BotService interface {
	PickCell(board *entity.Board) (entity.Coord, error)
}

// botService picks uniformly among the empty cells.
type botService struct {
	rnd *rand.Rand
}

func NewBotService() BotService {
	return NewBotServiceWithSource(rand.NewSource(time.Now().UnixNano()))
}

func NewBotServiceWithSource(src rand.Source) BotService {
	return &botService{
		rnd: rand.New(src),
	}
}

func (that *botService) PickCell(board *entity.Board) (entity.Coord, error) {
	availableCells := board.EmptyCells()
	if len(availableCells) == 0 {
		return entity.Coord{}, fmt.Errorf("%w: board %dx%d is full", apperror.ErrNoAvailableMoves, board.Width(), board.Height())
	}

	return availableCells[that.rnd.Intn(len(availableCells))], nil //nolint: gosec // it's ok
}
