package errors

import "errors"

var (
	ErrGameNotFound   = errors.New("game not found")
	ErrGameOver       = errors.New("game is already over")
	ErrIllegalMove    = errors.New("illegal move")
	ErrWrongTurn      = errors.New("it is not this player's turn")
	ErrBadCoordinates = errors.New("malformed board coordinates")
	ErrBadBoardSize   = errors.New("unsupported board size")
	ErrBadColor       = errors.New("color must be black or white")
)
