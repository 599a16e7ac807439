package field

import "errors"

var (
	// ErrInvalidPosition is returned for positions outside the grid or malformed input
	ErrInvalidPosition = errors.New("invalid position")

	// ErrGameOver is returned by Reveal once the game has been won or lost
	ErrGameOver = errors.New("game is over")

	// ErrAlreadyRevealed is returned when revealing or flagging a revealed square
	ErrAlreadyRevealed = errors.New("square already revealed")
)
