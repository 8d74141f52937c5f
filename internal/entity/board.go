package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/mnk-tictactoe/internal/apperror"
)

const emptyCellSymbol = '.'

// Board is a fixed-size grid of marks stored row by row.
type Board struct {
	width  int
	height int
	cells  []Mark
}

func NewBoard(width, height int) (*Board, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", apperror.ErrInvalidDimensions, width, height)
	}

	return &Board{
		width:  width,
		height: height,
		cells:  make([]Mark, width*height),
	}, nil
}

// ParseBoard - builds a board from the text produced by Board.String.
func ParseBoard(s string) (*Board, error) {
	rows := strings.Split(strings.TrimSpace(s), "\n")

	board, err := NewBoard(len(strings.TrimSpace(rows[0])), len(rows))
	if err != nil {
		return nil, err
	}

	for y, row := range rows {
		row = strings.TrimSpace(row)
		if len(row) != board.width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d",
				apperror.ErrInvalidDimensions, y, len(row), board.width)
		}

		for x, symbol := range row {
			board.cells[board.index(Coord{X: x, Y: y})] = ParseMark(string(symbol))
		}
	}

	return board, nil
}

func (that *Board) Width() int {
	return that.width
}

func (that *Board) Height() int {
	return that.height
}

func (that *Board) Contains(c Coord) bool {
	return c.X >= 0 && c.X < that.width && c.Y >= 0 && c.Y < that.height
}

// At returns the mark at c. Positions outside the board read as Empty.
func (that *Board) At(c Coord) Mark {
	if !that.Contains(c) {
		return Empty
	}

	return that.cells[that.index(c)]
}

// Place - puts a mark on an empty cell. The board is left untouched on error.
func (that *Board) Place(c Coord, mark Mark) error {
	if !that.Contains(c) {
		return fmt.Errorf("%w: %s on %dx%d", apperror.ErrOutOfBounds, c, that.width, that.height)
	}

	if that.cells[that.index(c)] != Empty {
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, c)
	}

	that.cells[that.index(c)] = mark

	return nil
}

// EmptyCells lists free cells column by column.
func (that *Board) EmptyCells() []Coord {
	free := make([]Coord, 0, len(that.cells))
	for x := 0; x < that.width; x++ {
		for y := 0; y < that.height; y++ {
			c := Coord{X: x, Y: y}
			if that.At(c) == Empty {
				free = append(free, c)
			}
		}
	}

	return free
}

func (that *Board) IsFull() bool {
	for _, cell := range that.cells {
		if cell == Empty {
			return false
		}
	}

	return true
}

func (that *Board) IsClear() bool {
	for _, cell := range that.cells {
		if cell != Empty {
			return false
		}
	}

	return true
}

// Clear empties a single cell. Positions outside the board are ignored.
func (that *Board) Clear(c Coord) {
	if that.Contains(c) {
		that.cells[that.index(c)] = Empty
	}
}

func (that *Board) Reset() {
	for i := range that.cells {
		that.cells[i] = Empty
	}
}

func (that *Board) Clone() *Board {
	cells := make([]Mark, len(that.cells))
	copy(cells, that.cells)

	return &Board{
		width:  that.width,
		height: that.height,
		cells:  cells,
	}
}

// String renders one line per row, '.' for empty cells.
func (that *Board) String() string {
	var sb strings.Builder
	for y := 0; y < that.height; y++ {
		for x := 0; x < that.width; x++ {
			mark := that.At(Coord{X: x, Y: y})
			if mark == Empty {
				sb.WriteByte(emptyCellSymbol)
				continue
			}
			sb.WriteString(mark.String())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func (that *Board) index(c Coord) int {
	return c.Y*that.width + c.X
}
