package apperror

import "errors"

var (
	ErrCellOccupied          = errors.New("cell is already occupied")
	ErrOutOfBounds           = errors.New("coordinates are out of the board")
	ErrMalformedCoordinates  = errors.New("malformed coordinates")
	ErrNoAvailableMoves      = errors.New("no available moves")
	ErrInvalidDimensions     = errors.New("invalid board dimensions")
	ErrUnsupportedAutoPlayer = errors.New("automated player must be player two or none")
)
