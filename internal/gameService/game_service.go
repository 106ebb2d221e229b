package game

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"

	"auction-sim/internal/auctionerrors"
	"auction-sim/internal/models"
	"auction-sim/internal/repository"
	"auction-sim/internal/settlement"
	"auction-sim/utils"
)

// GameService defines the business logic for game sessions: creation,
// joining, the round catalog, sealed entries and settlement.
type GameService struct {
	repo  repository.GameDB
	clock clockwork.Clock
}

// NewGameService creates a new GameService instance
func NewGameService(repo repository.GameDB, clock clockwork.Clock) *GameService {
	return &GameService{
		repo:  repo,
		clock: clock,
	}
}

// CreateSession opens a new waiting session at round 1, registers the
// creator as its first participant and seeds the round-1 catalog.
func (s *GameService) CreateSession(ctx context.Context, createdBy string) (models.GameSession, models.Participant, error) {
	if !utils.IsValidUUID(createdBy) {
		return models.GameSession{}, models.Participant{}, fmt.Errorf("service: %w - created_by is not a valid user ID", auctionerrors.ErrValidation)
	}

	now := s.clock.Now().UTC()
	session := models.GameSession{
		ID:        utils.GenerateID(),
		Status:    models.StatusWaiting,
		Round:     1,
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	session, err := s.repo.CreateSession(ctx, session)
	if err != nil {
		return models.GameSession{}, models.Participant{}, fmt.Errorf("service: failed to create session: %w", err)
	}

	participant := models.Participant{
		ID:            utils.GenerateID(),
		UserID:        createdBy,
		GameSessionID: session.ID,
		JoinedAt:      now,
	}
	participant, err = s.repo.AddParticipant(ctx, participant)
	if err != nil {
		return models.GameSession{}, models.Participant{}, fmt.Errorf("service: failed to register creator for session %s: %w", session.ID, err)
	}

	if err := s.repo.AddRoundItems(ctx, defaultRoundItems(session.ID, 1)); err != nil {
		return models.GameSession{}, models.Participant{}, fmt.Errorf("service: failed to seed catalog for session %s: %w", session.ID, err)
	}

	return session, participant, nil
}

// ListWaitingSessions returns joinable sessions, oldest first.
func (s *GameService) ListWaitingSessions(ctx context.Context) ([]models.GameSession, error) {
	sessions, err := s.repo.ListWaitingSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list waiting sessions: %w", err)
	}
	return sessions, nil
}

// GetSession returns a session along with its participants in join order.
func (s *GameService) GetSession(ctx context.Context, sessionID string) (models.GameSession, []models.Participant, error) {
	if !utils.IsValidUUID(sessionID) {
		return models.GameSession{}, nil, fmt.Errorf("service: %w - session ID is not a valid UUID", auctionerrors.ErrValidation)
	}
	session, err := s.repo.GetSession(ctx, sessionID)
	if err != nil {
		return models.GameSession{}, nil, fmt.Errorf("service: failed to get session %s: %w", sessionID, err)
	}
	participants, err := s.repo.ListParticipants(ctx, sessionID)
	if err != nil {
		return models.GameSession{}, nil, fmt.Errorf("service: failed to list participants for session %s: %w", sessionID, err)
	}
	return session, participants, nil
}

// Join registers a user as a participant. Duplicate joins surface as
// ErrAlreadyJoined from the store's uniqueness guarantee; there is no
// check-then-insert here.
func (s *GameService) Join(ctx context.Context, sessionID, userID string) (models.Participant, error) {
	if !utils.IsValidUUID(userID) {
		return models.Participant{}, fmt.Errorf("service: %w - user_id is not a valid UUID", auctionerrors.ErrValidation)
	}
	if _, err := s.repo.GetSession(ctx, sessionID); err != nil {
		return models.Participant{}, fmt.Errorf("service: failed to get session %s: %w", sessionID, err)
	}

	participant := models.Participant{
		ID:            utils.GenerateID(),
		UserID:        userID,
		GameSessionID: sessionID,
		JoinedAt:      s.clock.Now().UTC(),
	}
	participant, err := s.repo.AddParticipant(ctx, participant)
	if err != nil {
		return models.Participant{}, fmt.Errorf("service: failed to join session %s: %w", sessionID, err)
	}
	return participant, nil
}

// RoundItems returns the catalog of a round ordered by project number.
func (s *GameService) RoundItems(ctx context.Context, sessionID string, round int) ([]models.GameItem, error) {
	items, err := s.repo.ListRoundItems(ctx, sessionID, round)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list items for session %s round %d: %w", sessionID, round, err)
	}
	return items, nil
}

// RoundResults returns settled rows ordered by project number. The slice
// is empty until the round has been settled.
func (s *GameService) RoundResults(ctx context.Context, sessionID string, round int) ([]models.RoundResult, error) {
	results, err := s.repo.ListRoundResults(ctx, sessionID, round)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list results for session %s round %d: %w", sessionID, round, err)
	}
	return results, nil
}

// SubmitEntry records a sealed price for one (participant, item) pair.
// The submission that completes the round's entry grid triggers
// settlement inline; the results write ignores conflicts, so a racing
// duplicate trigger cannot produce a second set of rows.
func (s *GameService) SubmitEntry(ctx context.Context, sessionID string, round int, participantID, itemID string, price int64) (models.GameEntry, error) {
	if participantID == "" || itemID == "" {
		return models.GameEntry{}, fmt.Errorf("service: %w - missing participant_id or item_id", auctionerrors.ErrValidation)
	}
	if _, err := s.repo.GetSession(ctx, sessionID); err != nil {
		return models.GameEntry{}, fmt.Errorf("service: failed to get session %s: %w", sessionID, err)
	}

	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return models.GameEntry{}, fmt.Errorf("service: failed to get item %s: %w", itemID, err)
	}
	if item.GameSessionID != sessionID || item.Round != round {
		return models.GameEntry{}, fmt.Errorf("service: %w - item %s does not belong to session %s round %d",
			auctionerrors.ErrValidation, itemID, sessionID, round)
	}
	if price < item.MinPrice || price > item.MaxPrice {
		return models.GameEntry{}, fmt.Errorf("service: %w - price %d outside range [%d, %d]",
			auctionerrors.ErrValidation, price, item.MinPrice, item.MaxPrice)
	}

	participants, err := s.repo.ListParticipants(ctx, sessionID)
	if err != nil {
		return models.GameEntry{}, fmt.Errorf("service: failed to list participants for session %s: %w", sessionID, err)
	}
	if !containsParticipant(participants, participantID) {
		return models.GameEntry{}, fmt.Errorf("service: participant %s not in session %s: %w",
			participantID, sessionID, auctionerrors.ErrParticipantNotFound)
	}

	entry := models.GameEntry{
		ID:            utils.GenerateID(),
		ParticipantID: participantID,
		ItemID:        itemID,
		Price:         price,
		CreatedAt:     s.clock.Now().UTC(),
	}
	entry, err = s.repo.AddGameEntry(ctx, entry)
	if err != nil {
		return models.GameEntry{}, fmt.Errorf("service: failed to add entry for item %s: %w", itemID, err)
	}

	// The entry is stored either way; a settlement failure is logged, not
	// returned, so the client is not tricked into a resubmit that would
	// only hit the duplicate guard.
	if err := s.settleIfComplete(ctx, sessionID, round, participants); err != nil {
		utils.Error("settlement pass failed", map[string]any{
			"session_id": sessionID,
			"round":      round,
			"error":      err.Error(),
		})
	}

	return entry, nil
}

// settleIfComplete runs the settlement computation once every participant
// has an entry for every item of the round.
func (s *GameService) settleIfComplete(ctx context.Context, sessionID string, round int, participants []models.Participant) error {
	items, err := s.repo.ListRoundItems(ctx, sessionID, round)
	if err != nil {
		return fmt.Errorf("service: failed to list items for session %s round %d: %w", sessionID, round, err)
	}
	entries, err := s.repo.ListRoundEntries(ctx, sessionID, round)
	if err != nil {
		return fmt.Errorf("service: failed to list entries for session %s round %d: %w", sessionID, round, err)
	}
	if !settlement.Complete(items, participants, entries) {
		return nil
	}

	results, err := settlement.ComputeRoundResults(sessionID, round, items, entries)
	if err != nil {
		return fmt.Errorf("service: failed to compute results for session %s round %d: %w", sessionID, round, err)
	}
	if err := s.repo.SaveRoundResults(ctx, results); err != nil {
		return fmt.Errorf("service: failed to save results for session %s round %d: %w", sessionID, round, err)
	}

	utils.Info("round settled", map[string]any{
		"session_id": sessionID,
		"round":      round,
		"items":      len(results),
	})
	return nil
}

func containsParticipant(participants []models.Participant, id string) bool {
	for _, p := range participants {
		if p.ID == id {
			return true
		}
	}
	return false
}

// defaultRoundItems is the fixed catalog every new session starts with.
func defaultRoundItems(sessionID string, round int) []models.GameItem {
	specs := []struct {
		title    string
		cost     int64
		minPrice int64
		maxPrice int64
	}{
		{"道路補修工事", 100, 100, 300},
		{"学校改築工事", 200, 200, 500},
		{"公園整備工事", 150, 150, 400},
	}

	items := make([]models.GameItem, 0, len(specs))
	for i, spec := range specs {
		items = append(items, models.GameItem{
			ID:            utils.GenerateID(),
			GameSessionID: sessionID,
			Round:         round,
			ProjectNumber: i + 1,
			Title:         spec.title,
			Cost:          spec.cost,
			MinPrice:      spec.minPrice,
			MaxPrice:      spec.maxPrice,
		})
	}
	return items
}
