package apperror

import "errors"

var (
	ErrGameFinished        = errors.New("game is already finished")
	ErrNoActiveGames       = errors.New("no active games")
	ErrCellOccupied        = errors.New("cell is already occupied")
	ErrNoMovesAvailable    = errors.New("no available moves")
	ErrSessionNotFound     = errors.New("session not found")
	ErrUnknownSessionStore = errors.New("unknown session store")
)
