package game

import "errors"

var (
	ErrInvalidDimensions = errors.New("board width and height must be positive")
	ErrNegativeMines     = errors.New("number of mines must not be negative")
	ErrTooManyMines      = errors.New("number of mines exceeds number of cells")
	ErrInvalidSnapshot   = errors.New("invalid board snapshot")
)
