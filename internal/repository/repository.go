package repository

import (
	"context"

	model "auction-sim/internal/models"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// ListingDB defines storage for bid listings and their price entries.
type ListingDB interface {
	CreateBid(ctx context.Context, bid model.Bid) (model.Bid, error)
	GetBid(ctx context.Context, id string) (model.Bid, error)
	// ListBids returns all listings ordered by open_date ascending.
	ListBids(ctx context.Context) ([]model.Bid, error)
	UpdateBid(ctx context.Context, bid model.Bid) (model.Bid, error)
	DeleteBid(ctx context.Context, id string) error
	CreateBidEntry(ctx context.Context, entry model.BidEntry) (model.BidEntry, error)
	// ListBidEntries returns a listing's entries newest first.
	ListBidEntries(ctx context.Context, bidID string) ([]model.BidEntry, error)
}

// GameDB defines storage for game sessions, participants, the round
// catalog, sealed entries and settlement results.
//
// AddParticipant and AddGameEntry enforce uniqueness themselves and
// return ErrAlreadyJoined / ErrDuplicateEntry on conflict, so callers
// never need a check-then-insert round trip.
type GameDB interface {
	CreateSession(ctx context.Context, session model.GameSession) (model.GameSession, error)
	GetSession(ctx context.Context, id string) (model.GameSession, error)
	// ListWaitingSessions returns sessions with status=waiting ordered by
	// created_at ascending.
	ListWaitingSessions(ctx context.Context) ([]model.GameSession, error)

	AddParticipant(ctx context.Context, p model.Participant) (model.Participant, error)
	// ListParticipants returns a session's participants ordered by joined_at.
	ListParticipants(ctx context.Context, sessionID string) ([]model.Participant, error)

	AddRoundItems(ctx context.Context, items []model.GameItem) error
	GetItem(ctx context.Context, itemID string) (model.GameItem, error)
	// ListRoundItems returns the catalog ordered by project_number.
	ListRoundItems(ctx context.Context, sessionID string, round int) ([]model.GameItem, error)

	AddGameEntry(ctx context.Context, entry model.GameEntry) (model.GameEntry, error)
	ListRoundEntries(ctx context.Context, sessionID string, round int) ([]model.GameEntry, error)

	// SaveRoundResults persists the settlement outcome. Rows that already
	// exist for (session, round, project_number) are left untouched, so a
	// duplicate settlement pass is a no-op.
	SaveRoundResults(ctx context.Context, results []model.RoundResult) error
	// ListRoundResults returns settled rows ordered by project_number.
	ListRoundResults(ctx context.Context, sessionID string, round int) ([]model.RoundResult, error)
}
