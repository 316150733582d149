package entity

// Player is the Telegram user playing against the bot.
type Player struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name,omitempty"`
}
