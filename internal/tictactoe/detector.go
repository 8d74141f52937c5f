package tictactoe

import "github.com/rocketscienceinc/mnk-tictactoe/internal/entity"

type direction struct {
	dx int
	dy int
}

// Probe order decides the winner reported when one move completes several lines.
var directions = [...]direction{
	{dx: 1, dy: 0},  // horizontal
	{dx: 0, dy: 1},  // vertical
	{dx: 1, dy: 1},  // diagonal, down right
	{dx: -1, dy: 1}, // diagonal, down left
}

// CheckWinner - looks for winCount identical marks in a row through the last move.
func CheckWinner(board *entity.Board, lastMove entity.Coord, winCount int) entity.Winner {
	for _, d := range directions {
		if winner := scanLine(probe(board, lastMove, d, winCount), winCount); winner != entity.Nobody {
			return winner
		}
	}

	if board.IsFull() {
		return entity.Draw
	}

	return entity.Nobody
}

// probe collects the 2*winCount-1 marks centred on c along d.
func probe(board *entity.Board, c entity.Coord, d direction, winCount int) []entity.Mark {
	offset := winCount - 1
	line := make([]entity.Mark, 2*winCount-1)
	for i := range line {
		step := i - offset
		line[i] = board.At(entity.Coord{X: c.X + step*d.dx, Y: c.Y + step*d.dy})
	}

	return line
}

func scanLine(line []entity.Mark, winCount int) entity.Winner {
	current := entity.Empty
	inRow := 0
	for _, mark := range line {
		switch {
		case mark == entity.Empty:
			current = entity.Empty
			inRow = 0
			continue
		case mark == current:
			inRow++
		default:
			current = mark
			inRow = 1
		}

		if inRow >= winCount {
			return entity.WinnerOf(current)
		}
	}

	return entity.Nobody
}
