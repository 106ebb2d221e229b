package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"auction-sim/internal/auctionerrors"
	model "auction-sim/internal/models"
)

// MemoryRepo is a concurrency-safe in-memory implementation of both
// ListingDB and GameDB. It is the default store when no DATABASE_URL is
// configured and backs the test suites. Uniqueness of participants and
// game entries is enforced under the same lock as the insert, so the
// conflict answer is authoritative.
type MemoryRepo struct {
	mu           sync.RWMutex
	bids         map[string]model.Bid
	bidEntries   map[string][]model.BidEntry // key: bidID
	sessions     map[string]model.GameSession
	participants map[string][]model.Participant // key: sessionID, joined order
	items        map[string]model.GameItem
	gameEntries  map[string]model.GameEntry // key: participantID+"/"+itemID
	results      map[string][]model.RoundResult // key: sessionID/round
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		bids:         make(map[string]model.Bid),
		bidEntries:   make(map[string][]model.BidEntry),
		sessions:     make(map[string]model.GameSession),
		participants: make(map[string][]model.Participant),
		items:        make(map[string]model.GameItem),
		gameEntries:  make(map[string]model.GameEntry),
		results:      make(map[string][]model.RoundResult),
	}
}

func roundKey(sessionID string, round int) string {
	return fmt.Sprintf("%s/%d", sessionID, round)
}

func entryKey(participantID, itemID string) string {
	return participantID + "/" + itemID
}

// --- ListingDB ---

func (r *MemoryRepo) CreateBid(_ context.Context, bid model.Bid) (model.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bids[bid.ID] = bid
	return bid, nil
}

func (r *MemoryRepo) GetBid(_ context.Context, id string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	bid, ok := r.bids[id]
	if !ok {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", id, auctionerrors.ErrBidNotFound)
	}
	return bid, nil
}

func (r *MemoryRepo) ListBids(_ context.Context) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	bids := make([]model.Bid, 0, len(r.bids))
	for _, b := range r.bids {
		bids = append(bids, b)
	}
	sort.Slice(bids, func(i, j int) bool { return bids[i].OpenDate.Before(bids[j].OpenDate) })
	return bids, nil
}

func (r *MemoryRepo) UpdateBid(_ context.Context, bid model.Bid) (model.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bids[bid.ID]; !ok {
		return model.Bid{}, fmt.Errorf("update bid %s: %w", bid.ID, auctionerrors.ErrBidNotFound)
	}
	r.bids[bid.ID] = bid
	return bid, nil
}

func (r *MemoryRepo) DeleteBid(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bids[id]; !ok {
		return fmt.Errorf("delete bid %s: %w", id, auctionerrors.ErrBidNotFound)
	}
	delete(r.bids, id)
	delete(r.bidEntries, id)
	return nil
}

func (r *MemoryRepo) CreateBidEntry(_ context.Context, entry model.BidEntry) (model.BidEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bids[entry.BidID]; !ok {
		return model.BidEntry{}, fmt.Errorf("create entry for bid %s: %w", entry.BidID, auctionerrors.ErrBidNotFound)
	}
	r.bidEntries[entry.BidID] = append(r.bidEntries[entry.BidID], entry)
	return entry, nil
}

func (r *MemoryRepo) ListBidEntries(_ context.Context, bidID string) ([]model.BidEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := append([]model.BidEntry(nil), r.bidEntries[bidID]...)
	sort.Slice(entries, func(i, j int) bool { return entries[i].CreatedAt.After(entries[j].CreatedAt) })
	return entries, nil
}

// --- GameDB ---

func (r *MemoryRepo) CreateSession(_ context.Context, session model.GameSession) (model.GameSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = session
	return session, nil
}

func (r *MemoryRepo) GetSession(_ context.Context, id string) (model.GameSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return model.GameSession{}, fmt.Errorf("get session %s: %w", id, auctionerrors.ErrSessionNotFound)
	}
	return s, nil
}

func (r *MemoryRepo) ListWaitingSessions(_ context.Context) ([]model.GameSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sessions := make([]model.GameSession, 0)
	for _, s := range r.sessions {
		if s.Status == model.StatusWaiting {
			sessions = append(sessions, s)
		}
	}
	sort.Slice(sessions, func(i, j int) bool { return sessions[i].CreatedAt.Before(sessions[j].CreatedAt) })
	return sessions, nil
}

func (r *MemoryRepo) AddParticipant(_ context.Context, p model.Participant) (model.Participant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[p.GameSessionID]; !ok {
		return model.Participant{}, fmt.Errorf("join session %s: %w", p.GameSessionID, auctionerrors.ErrSessionNotFound)
	}
	for _, existing := range r.participants[p.GameSessionID] {
		if existing.UserID == p.UserID {
			return model.Participant{}, fmt.Errorf("join session %s: %w", p.GameSessionID, auctionerrors.ErrAlreadyJoined)
		}
	}
	r.participants[p.GameSessionID] = append(r.participants[p.GameSessionID], p)
	return p, nil
}

func (r *MemoryRepo) ListParticipants(_ context.Context, sessionID string) ([]model.Participant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	// insertion order is joined order
	return append([]model.Participant(nil), r.participants[sessionID]...), nil
}

func (r *MemoryRepo) AddRoundItems(_ context.Context, items []model.GameItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range items {
		r.items[item.ID] = item
	}
	return nil
}

func (r *MemoryRepo) GetItem(_ context.Context, itemID string) (model.GameItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[itemID]
	if !ok {
		return model.GameItem{}, fmt.Errorf("get item %s: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	return item, nil
}

func (r *MemoryRepo) ListRoundItems(_ context.Context, sessionID string, round int) ([]model.GameItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	items := make([]model.GameItem, 0)
	for _, item := range r.items {
		if item.GameSessionID == sessionID && item.Round == round {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ProjectNumber < items[j].ProjectNumber })
	return items, nil
}

func (r *MemoryRepo) AddGameEntry(_ context.Context, entry model.GameEntry) (model.GameEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[entry.ItemID]; !ok {
		return model.GameEntry{}, fmt.Errorf("add entry for item %s: %w", entry.ItemID, auctionerrors.ErrItemNotFound)
	}
	key := entryKey(entry.ParticipantID, entry.ItemID)
	if _, ok := r.gameEntries[key]; ok {
		return model.GameEntry{}, fmt.Errorf("add entry for item %s: %w", entry.ItemID, auctionerrors.ErrDuplicateEntry)
	}
	r.gameEntries[key] = entry
	return entry, nil
}

func (r *MemoryRepo) ListRoundEntries(_ context.Context, sessionID string, round int) ([]model.GameEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := make([]model.GameEntry, 0)
	for _, e := range r.gameEntries {
		item, ok := r.items[e.ItemID]
		if ok && item.GameSessionID == sessionID && item.Round == round {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].CreatedAt.Before(entries[j].CreatedAt) })
	return entries, nil
}

func (r *MemoryRepo) SaveRoundResults(_ context.Context, results []model.RoundResult) error {
	if len(results) == 0 {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	key := roundKey(results[0].GameSessionID, results[0].Round)
	if _, ok := r.results[key]; ok {
		// first writer wins, results are immutable
		return nil
	}
	r.results[key] = append([]model.RoundResult(nil), results...)
	return nil
}

func (r *MemoryRepo) ListRoundResults(_ context.Context, sessionID string, round int) ([]model.RoundResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	results := append([]model.RoundResult(nil), r.results[roundKey(sessionID, round)]...)
	sort.Slice(results, func(i, j int) bool { return results[i].ProjectNumber < results[j].ProjectNumber })
	return results, nil
}
