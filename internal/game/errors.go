package game

import "errors"

var (
	// ErrInsufficientPlayers is returned when a game is started with
	// fewer than two players.
	ErrInsufficientPlayers = errors.New("game: at least two players required")

	// ErrTooManyPlayers is returned when the table cannot guarantee
	// enough cards for every player to deal and fully exchange a hand.
	ErrTooManyPlayers = errors.New("game: too many players for one deck")

	// ErrGameOver is returned when a round is requested after the game
	// has ended.
	ErrGameOver = errors.New("game: game has ended")
)
