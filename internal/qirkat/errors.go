package qirkat

import "errors"

var (
	ErrInvalidConfig = errors.New("invalid board configuration")
	ErrInvalidMove   = errors.New("invalid move geometry")
	ErrMalformedMove = errors.New("malformed move")
	ErrIllegalMove   = errors.New("illegal move")
)
