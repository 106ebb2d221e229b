package repository

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"auction-sim/internal/auctionerrors"
	model "auction-sim/internal/models"
)

//go:embed schema.sql
var schema string

const connectTimeout = 3 * time.Second

// uniqueViolation is the SQLSTATE Postgres reports when a unique
// constraint rejects an insert.
const uniqueViolation = "23505"

// PostgresRepo implements ListingDB and GameDB on a pgx connection pool.
// Uniqueness invariants (participant per session, entry per item) live in
// the schema; this layer only translates constraint violations into
// domain errors.
type PostgresRepo struct {
	pool *pgxpool.Pool
}

// NewPostgresRepo connects to connStr and applies the schema.
func NewPostgresRepo(ctx context.Context, connStr string) (*PostgresRepo, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("repository: connect: %w", err)
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("repository: apply schema: %w", err)
	}
	return &PostgresRepo{pool: pool}, nil
}

// Close releases the underlying pool.
func (r *PostgresRepo) Close() {
	r.pool.Close()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// --- ListingDB ---

func (r *PostgresRepo) CreateBid(ctx context.Context, bid model.Bid) (model.Bid, error) {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO bids (id, title, description, open_date, close_date, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		bid.ID, bid.Title, bid.Description, bid.OpenDate, bid.CloseDate, bid.CreatedBy, bid.CreatedAt, bid.UpdatedAt)
	if err != nil {
		return model.Bid{}, fmt.Errorf("create bid: %w", err)
	}
	return bid, nil
}

func (r *PostgresRepo) GetBid(ctx context.Context, id string) (model.Bid, error) {
	var bid model.Bid
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, COALESCE(description, ''), open_date, close_date, created_by, created_at, updated_at
		 FROM bids WHERE id = $1`, id).
		Scan(&bid.ID, &bid.Title, &bid.Description, &bid.OpenDate, &bid.CloseDate, &bid.CreatedBy, &bid.CreatedAt, &bid.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", id, auctionerrors.ErrBidNotFound)
	}
	if err != nil {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", id, err)
	}
	return bid, nil
}

func (r *PostgresRepo) ListBids(ctx context.Context) ([]model.Bid, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, COALESCE(description, ''), open_date, close_date, created_by, created_at, updated_at
		 FROM bids ORDER BY open_date ASC`)
	if err != nil {
		return nil, fmt.Errorf("list bids: %w", err)
	}
	defer rows.Close()

	bids := make([]model.Bid, 0)
	for rows.Next() {
		var bid model.Bid
		if err := rows.Scan(&bid.ID, &bid.Title, &bid.Description, &bid.OpenDate, &bid.CloseDate, &bid.CreatedBy, &bid.CreatedAt, &bid.UpdatedAt); err != nil {
			return nil, fmt.Errorf("list bids: %w", err)
		}
		bids = append(bids, bid)
	}
	return bids, rows.Err()
}

func (r *PostgresRepo) UpdateBid(ctx context.Context, bid model.Bid) (model.Bid, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE bids SET title = $2, description = $3, open_date = $4, close_date = $5, updated_at = $6
		 WHERE id = $1`,
		bid.ID, bid.Title, bid.Description, bid.OpenDate, bid.CloseDate, bid.UpdatedAt)
	if err != nil {
		return model.Bid{}, fmt.Errorf("update bid %s: %w", bid.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return model.Bid{}, fmt.Errorf("update bid %s: %w", bid.ID, auctionerrors.ErrBidNotFound)
	}
	return bid, nil
}

func (r *PostgresRepo) DeleteBid(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM bids WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete bid %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete bid %s: %w", id, auctionerrors.ErrBidNotFound)
	}
	return nil
}

func (r *PostgresRepo) CreateBidEntry(ctx context.Context, entry model.BidEntry) (model.BidEntry, error) {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO bids_entries (id, bid_id, user_id, price, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		entry.ID, entry.BidID, entry.UserID, entry.Price, entry.CreatedAt)
	if err != nil {
		return model.BidEntry{}, fmt.Errorf("create entry for bid %s: %w", entry.BidID, err)
	}
	return entry, nil
}

func (r *PostgresRepo) ListBidEntries(ctx context.Context, bidID string) ([]model.BidEntry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, bid_id, user_id, price, created_at
		 FROM bids_entries WHERE bid_id = $1 ORDER BY created_at DESC`, bidID)
	if err != nil {
		return nil, fmt.Errorf("list entries for bid %s: %w", bidID, err)
	}
	defer rows.Close()

	entries := make([]model.BidEntry, 0)
	for rows.Next() {
		var e model.BidEntry
		if err := rows.Scan(&e.ID, &e.BidID, &e.UserID, &e.Price, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("list entries for bid %s: %w", bidID, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// --- GameDB ---

func (r *PostgresRepo) CreateSession(ctx context.Context, session model.GameSession) (model.GameSession, error) {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO game_sessions (id, status, round, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		session.ID, session.Status, session.Round, session.CreatedBy, session.CreatedAt, session.UpdatedAt)
	if err != nil {
		return model.GameSession{}, fmt.Errorf("create session: %w", err)
	}
	return session, nil
}

func (r *PostgresRepo) GetSession(ctx context.Context, id string) (model.GameSession, error) {
	var s model.GameSession
	err := r.pool.QueryRow(ctx,
		`SELECT id, status, round, created_by, created_at, updated_at
		 FROM game_sessions WHERE id = $1`, id).
		Scan(&s.ID, &s.Status, &s.Round, &s.CreatedBy, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.GameSession{}, fmt.Errorf("get session %s: %w", id, auctionerrors.ErrSessionNotFound)
	}
	if err != nil {
		return model.GameSession{}, fmt.Errorf("get session %s: %w", id, err)
	}
	return s, nil
}

func (r *PostgresRepo) ListWaitingSessions(ctx context.Context) ([]model.GameSession, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, status, round, created_by, created_at, updated_at
		 FROM game_sessions WHERE status = $1 ORDER BY created_at ASC`, model.StatusWaiting)
	if err != nil {
		return nil, fmt.Errorf("list waiting sessions: %w", err)
	}
	defer rows.Close()

	sessions := make([]model.GameSession, 0)
	for rows.Next() {
		var s model.GameSession
		if err := rows.Scan(&s.ID, &s.Status, &s.Round, &s.CreatedBy, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("list waiting sessions: %w", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (r *PostgresRepo) AddParticipant(ctx context.Context, p model.Participant) (model.Participant, error) {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO participants (id, user_id, game_session_id, joined_at)
		 VALUES ($1, $2, $3, $4)`,
		p.ID, p.UserID, p.GameSessionID, p.JoinedAt)
	if isUniqueViolation(err) {
		return model.Participant{}, fmt.Errorf("join session %s: %w", p.GameSessionID, auctionerrors.ErrAlreadyJoined)
	}
	if err != nil {
		return model.Participant{}, fmt.Errorf("join session %s: %w", p.GameSessionID, err)
	}
	return p, nil
}

func (r *PostgresRepo) ListParticipants(ctx context.Context, sessionID string) ([]model.Participant, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, game_session_id, joined_at
		 FROM participants WHERE game_session_id = $1 ORDER BY joined_at ASC`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list participants for session %s: %w", sessionID, err)
	}
	defer rows.Close()

	participants := make([]model.Participant, 0)
	for rows.Next() {
		var p model.Participant
		if err := rows.Scan(&p.ID, &p.UserID, &p.GameSessionID, &p.JoinedAt); err != nil {
			return nil, fmt.Errorf("list participants for session %s: %w", sessionID, err)
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

func (r *PostgresRepo) AddRoundItems(ctx context.Context, items []model.GameItem) error {
	for _, item := range items {
		_, err := r.pool.Exec(ctx,
			`INSERT INTO game_items (id, game_session_id, round, project_number, title, cost, min_price, max_price)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 ON CONFLICT (game_session_id, round, project_number) DO NOTHING`,
			item.ID, item.GameSessionID, item.Round, item.ProjectNumber, item.Title, item.Cost, item.MinPrice, item.MaxPrice)
		if err != nil {
			return fmt.Errorf("add round items: %w", err)
		}
	}
	return nil
}

func (r *PostgresRepo) GetItem(ctx context.Context, itemID string) (model.GameItem, error) {
	var item model.GameItem
	err := r.pool.QueryRow(ctx,
		`SELECT id, game_session_id, round, project_number, title, cost, min_price, max_price
		 FROM game_items WHERE id = $1`, itemID).
		Scan(&item.ID, &item.GameSessionID, &item.Round, &item.ProjectNumber, &item.Title, &item.Cost, &item.MinPrice, &item.MaxPrice)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.GameItem{}, fmt.Errorf("get item %s: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	if err != nil {
		return model.GameItem{}, fmt.Errorf("get item %s: %w", itemID, err)
	}
	return item, nil
}

func (r *PostgresRepo) ListRoundItems(ctx context.Context, sessionID string, round int) ([]model.GameItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, game_session_id, round, project_number, title, cost, min_price, max_price
		 FROM game_items WHERE game_session_id = $1 AND round = $2 ORDER BY project_number ASC`,
		sessionID, round)
	if err != nil {
		return nil, fmt.Errorf("list items for session %s round %d: %w", sessionID, round, err)
	}
	defer rows.Close()

	items := make([]model.GameItem, 0)
	for rows.Next() {
		var item model.GameItem
		if err := rows.Scan(&item.ID, &item.GameSessionID, &item.Round, &item.ProjectNumber, &item.Title, &item.Cost, &item.MinPrice, &item.MaxPrice); err != nil {
			return nil, fmt.Errorf("list items for session %s round %d: %w", sessionID, round, err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepo) AddGameEntry(ctx context.Context, entry model.GameEntry) (model.GameEntry, error) {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO game_entries (id, participant_id, item_id, price, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		entry.ID, entry.ParticipantID, entry.ItemID, entry.Price, entry.CreatedAt)
	if isUniqueViolation(err) {
		return model.GameEntry{}, fmt.Errorf("add entry for item %s: %w", entry.ItemID, auctionerrors.ErrDuplicateEntry)
	}
	if err != nil {
		return model.GameEntry{}, fmt.Errorf("add entry for item %s: %w", entry.ItemID, err)
	}
	return entry, nil
}

func (r *PostgresRepo) ListRoundEntries(ctx context.Context, sessionID string, round int) ([]model.GameEntry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT e.id, e.participant_id, e.item_id, e.price, e.created_at
		 FROM game_entries e
		 JOIN game_items i ON i.id = e.item_id
		 WHERE i.game_session_id = $1 AND i.round = $2
		 ORDER BY e.created_at ASC`,
		sessionID, round)
	if err != nil {
		return nil, fmt.Errorf("list entries for session %s round %d: %w", sessionID, round, err)
	}
	defer rows.Close()

	entries := make([]model.GameEntry, 0)
	for rows.Next() {
		var e model.GameEntry
		if err := rows.Scan(&e.ID, &e.ParticipantID, &e.ItemID, &e.Price, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("list entries for session %s round %d: %w", sessionID, round, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *PostgresRepo) SaveRoundResults(ctx context.Context, results []model.RoundResult) error {
	for _, res := range results {
		losers, err := json.Marshal(res.ProfitLosers)
		if err != nil {
			return fmt.Errorf("save round results: %w", err)
		}
		// ON CONFLICT DO NOTHING keeps settled rows immutable and makes a
		// duplicate settlement trigger a no-op
		_, err = r.pool.Exec(ctx,
			`INSERT INTO results (game_session_id, round, project_number, winner_participant_id, winning_price, profit_winner, profit_losers)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 ON CONFLICT (game_session_id, round, project_number) DO NOTHING`,
			res.GameSessionID, res.Round, res.ProjectNumber, res.WinnerParticipantID, res.WinningPrice, res.ProfitWinner, losers)
		if err != nil {
			return fmt.Errorf("save round results: %w", err)
		}
	}
	return nil
}

func (r *PostgresRepo) ListRoundResults(ctx context.Context, sessionID string, round int) ([]model.RoundResult, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT game_session_id, round, project_number, winner_participant_id, winning_price, profit_winner, profit_losers
		 FROM results WHERE game_session_id = $1 AND round = $2 ORDER BY project_number ASC`,
		sessionID, round)
	if err != nil {
		return nil, fmt.Errorf("list results for session %s round %d: %w", sessionID, round, err)
	}
	defer rows.Close()

	results := make([]model.RoundResult, 0)
	for rows.Next() {
		var res model.RoundResult
		var losers []byte
		if err := rows.Scan(&res.GameSessionID, &res.Round, &res.ProjectNumber, &res.WinnerParticipantID, &res.WinningPrice, &res.ProfitWinner, &losers); err != nil {
			return nil, fmt.Errorf("list results for session %s round %d: %w", sessionID, round, err)
		}
		if err := json.Unmarshal(losers, &res.ProfitLosers); err != nil {
			return nil, fmt.Errorf("list results for session %s round %d: %w", sessionID, round, err)
		}
		results = append(results, res)
	}
	return results, rows.Err()
}
