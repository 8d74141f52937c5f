package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/mnk-tictactoe/internal/apperror"
)

type Coord struct {
	X int
	Y int
}

func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// ParseCoord - parses an "x,y" pair. Whitespace around each number is allowed, anything else is not.
func ParseCoord(s string) (Coord, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Coord{}, fmt.Errorf("%w: %q", apperror.ErrMalformedCoordinates, s)
	}

	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Coord{}, fmt.Errorf("%w: %q", apperror.ErrMalformedCoordinates, s)
	}

	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Coord{}, fmt.Errorf("%w: %q", apperror.ErrMalformedCoordinates, s)
	}

	return Coord{X: x, Y: y}, nil
}
