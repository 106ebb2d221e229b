package bidding

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"auction-sim/internal/auctionerrors"
	"auction-sim/internal/models"
	"auction-sim/internal/repository"
	"auction-sim/utils"
)

// NewBid carries the fields of a listing-creation request.
type NewBid struct {
	Title       string
	Description string
	OpenDate    string
	CloseDate   string
	CreatedBy   string
}

// BidUpdate carries the mutable fields of a listing.
type BidUpdate struct {
	Title       string
	Description string
	OpenDate    string
	CloseDate   string
}

// BiddingService defines the business logic for bid listings and their
// price entries.
type BiddingService struct {
	repo  repository.ListingDB
	clock clockwork.Clock
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(repo repository.ListingDB, clock clockwork.Clock) *BiddingService {
	return &BiddingService{
		repo:  repo,
		clock: clock,
	}
}

// CreateBid validates and stores a new listing.
func (s *BiddingService) CreateBid(ctx context.Context, req NewBid) (models.Bid, error) {
	if req.Title == "" || req.OpenDate == "" || req.CloseDate == "" || req.CreatedBy == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing required fields", auctionerrors.ErrValidation)
	}
	openDate, err := parseDate(req.OpenDate)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: %w - bad open_date: %v", auctionerrors.ErrValidation, err)
	}
	closeDate, err := parseDate(req.CloseDate)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: %w - bad close_date: %v", auctionerrors.ErrValidation, err)
	}

	now := s.clock.Now().UTC()
	bid := models.Bid{
		ID:          utils.GenerateID(),
		Title:       req.Title,
		Description: req.Description,
		OpenDate:    openDate,
		CloseDate:   closeDate,
		CreatedBy:   req.CreatedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.CreateBid(ctx, bid)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to create bid: %w", err)
	}
	return created, nil
}

// ListBids returns all listings ordered by open_date ascending.
func (s *BiddingService) ListBids(ctx context.Context) ([]models.Bid, error) {
	bids, err := s.repo.ListBids(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list bids: %w", err)
	}
	return bids, nil
}

// GetBid returns a listing along with its entries, newest first.
func (s *BiddingService) GetBid(ctx context.Context, id string) (models.Bid, []models.BidEntry, error) {
	if id == "" {
		return models.Bid{}, nil, fmt.Errorf("service: %w - empty bid ID", auctionerrors.ErrValidation)
	}
	bid, err := s.repo.GetBid(ctx, id)
	if err != nil {
		return models.Bid{}, nil, fmt.Errorf("service: failed to get bid %s: %w", id, err)
	}
	entries, err := s.repo.ListBidEntries(ctx, id)
	if err != nil {
		return models.Bid{}, nil, fmt.Errorf("service: failed to get entries for bid %s: %w", id, err)
	}
	return bid, entries, nil
}

// UpdateBid applies upd to a listing. Only the listing's creator may
// update it; anyone else gets ErrForbidden regardless of payload.
func (s *BiddingService) UpdateBid(ctx context.Context, id string, upd BidUpdate, updatedBy string) (models.Bid, error) {
	if id == "" || updatedBy == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing bid ID or updated_by", auctionerrors.ErrValidation)
	}

	existing, err := s.repo.GetBid(ctx, id)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get bid %s: %w", id, err)
	}
	if existing.CreatedBy != updatedBy {
		return models.Bid{}, fmt.Errorf("service: user %s may not update bid %s: %w", updatedBy, id, auctionerrors.ErrForbidden)
	}

	if upd.Title != "" {
		existing.Title = upd.Title
	}
	existing.Description = upd.Description
	if upd.OpenDate != "" {
		openDate, err := parseDate(upd.OpenDate)
		if err != nil {
			return models.Bid{}, fmt.Errorf("service: %w - bad open_date: %v", auctionerrors.ErrValidation, err)
		}
		existing.OpenDate = openDate
	}
	if upd.CloseDate != "" {
		closeDate, err := parseDate(upd.CloseDate)
		if err != nil {
			return models.Bid{}, fmt.Errorf("service: %w - bad close_date: %v", auctionerrors.ErrValidation, err)
		}
		existing.CloseDate = closeDate
	}
	existing.UpdatedAt = s.clock.Now().UTC()

	updated, err := s.repo.UpdateBid(ctx, existing)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to update bid %s: %w", id, err)
	}
	return updated, nil
}

// DeleteBid removes a listing. Owner-only, like UpdateBid.
func (s *BiddingService) DeleteBid(ctx context.Context, id, userID string) error {
	if id == "" || userID == "" {
		return fmt.Errorf("service: %w - missing bid ID or user ID", auctionerrors.ErrValidation)
	}

	existing, err := s.repo.GetBid(ctx, id)
	if err != nil {
		return fmt.Errorf("service: failed to get bid %s: %w", id, err)
	}
	if existing.CreatedBy != userID {
		return fmt.Errorf("service: user %s may not delete bid %s: %w", userID, id, auctionerrors.ErrForbidden)
	}

	if err := s.repo.DeleteBid(ctx, id); err != nil {
		return fmt.Errorf("service: failed to delete bid %s: %w", id, err)
	}
	return nil
}

// AddEntry records a price submission against an open listing. The
// open-window check runs server-side: submissions before open_date or at
// or after close_date are rejected.
func (s *BiddingService) AddEntry(ctx context.Context, bidID, userID string, price float64) (models.BidEntry, error) {
	if bidID == "" || userID == "" {
		return models.BidEntry{}, fmt.Errorf("service: %w - missing bid ID or user ID", auctionerrors.ErrValidation)
	}
	if price <= 0 {
		return models.BidEntry{}, fmt.Errorf("service: %w - non-positive price", auctionerrors.ErrValidation)
	}

	bid, err := s.repo.GetBid(ctx, bidID)
	if err != nil {
		return models.BidEntry{}, fmt.Errorf("service: failed to get bid %s: %w", bidID, err)
	}

	now := s.clock.Now().UTC()
	if now.Before(bid.OpenDate) || !now.Before(bid.CloseDate) {
		return models.BidEntry{}, fmt.Errorf("service: bid %s window is %s to %s: %w",
			bidID, bid.OpenDate.Format(time.RFC3339), bid.CloseDate.Format(time.RFC3339), auctionerrors.ErrBidClosed)
	}

	entry := models.BidEntry{
		ID:        utils.GenerateID(),
		BidID:     bidID,
		UserID:    userID,
		Price:     price,
		CreatedAt: now,
	}
	created, err := s.repo.CreateBidEntry(ctx, entry)
	if err != nil {
		return models.BidEntry{}, fmt.Errorf("service: failed to record entry for bid %s by user %s: %w", bidID, userID, err)
	}
	return created, nil
}

// parseDate accepts RFC3339 timestamps and bare dates.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
