package entity

import (
	"time"

	"github.com/rocketscienceinc/tictactoe-bot/internal/tictactoe"
)

const (
	StatusPlaying  = "playing"
	StatusFinished = "finished"
)

// Session is the single game a player has open in a chat.
type Session struct {
	ID        string           `json:"id"`
	Player    Player           `json:"player"`
	ChatID    int64            `json:"chat_id"`
	Board     tictactoe.Board  `json:"board"`
	Status    string           `json:"status"`
	Result    tictactoe.Result `json:"result"`
	StartedAt time.Time        `json:"started_at"`
}

func NewSession(id string, player Player, chatID int64, startedAt time.Time) *Session {
	return &Session{
		ID:        id,
		Player:    player,
		ChatID:    chatID,
		Board:     tictactoe.NewBoard(),
		Status:    StatusPlaying,
		Result:    tictactoe.InProgress,
		StartedAt: startedAt,
	}
}

func (that *Session) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Session) IsPlaying() bool {
	return that.Status == StatusPlaying
}

// Finish - records a terminal result.
func (that *Session) Finish(result tictactoe.Result) {
	that.Result = result
	that.Status = StatusFinished
}
