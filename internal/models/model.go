package models

import "time"

// GameSession lifecycle states.
const (
	StatusWaiting    = "waiting"
	StatusInProgress = "in_progress"
)

// Bid represents a procurement listing open for price submissions
// between OpenDate and CloseDate.
type Bid struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	OpenDate    time.Time `json:"open_date"`
	CloseDate   time.Time `json:"close_date"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BidEntry is a single price submission against a listing. Append-only.
type BidEntry struct {
	ID        string    `json:"id"`
	BidID     string    `json:"bid_id"`
	UserID    string    `json:"user_id"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

// GameSession is one multi-round auction instance.
type GameSession struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Round     int       `json:"round"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Participant is a user's membership in a game session,
// unique per (game_session_id, user_id).
type Participant struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	GameSessionID string    `json:"game_session_id"`
	JoinedAt      time.Time `json:"joined_at"`
}

// GameItem is one catalog entry of a round. Read-only to players.
// Prices are integral currency units.
type GameItem struct {
	ID            string `json:"id"`
	GameSessionID string `json:"game_session_id"`
	Round         int    `json:"round"`
	ProjectNumber int    `json:"project_number"`
	Title         string `json:"title"`
	Cost          int64  `json:"cost"`
	MinPrice      int64  `json:"min_price"`
	MaxPrice      int64  `json:"max_price"`
}

// GameEntry is a sealed price submission, one per (participant, item).
type GameEntry struct {
	ID            string    `json:"id"`
	ParticipantID string    `json:"participant_id"`
	ItemID        string    `json:"item_id"`
	Price         int64     `json:"price"`
	CreatedAt     time.Time `json:"created_at"`
}

// RoundResult is the settlement outcome for one item of a round.
// ProfitLosers maps each losing participant to the profit they would
// have made had they won at their own bid. Immutable once written.
type RoundResult struct {
	GameSessionID       string           `json:"game_session_id"`
	Round               int              `json:"round"`
	ProjectNumber       int              `json:"project_number"`
	WinnerParticipantID string           `json:"winner_participant_id"`
	WinningPrice        int64            `json:"winning_price"`
	ProfitWinner        int64            `json:"profit_winner"`
	ProfitLosers        map[string]int64 `json:"profit_losers"`
}
