package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"auction-sim/internal/auth"
	bidding "auction-sim/internal/biddingService"
	model "auction-sim/internal/models"
	"auction-sim/services/bidding/helpers"
	"auction-sim/utils"
)

type BiddingServiceInterface interface {
	CreateBid(ctx context.Context, req bidding.NewBid) (model.Bid, error)
	ListBids(ctx context.Context) ([]model.Bid, error)
	GetBid(ctx context.Context, id string) (model.Bid, []model.BidEntry, error)
	UpdateBid(ctx context.Context, id string, upd bidding.BidUpdate, updatedBy string) (model.Bid, error)
	DeleteBid(ctx context.Context, id, userID string) error
	AddEntry(ctx context.Context, bidID, userID string, price float64) (model.BidEntry, error)
}

type BiddingHandler struct {
	service BiddingServiceInterface
}

func NewBiddingHandler(service BiddingServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service}
}

// ListBidsHandler handles GET /bids
func (h *BiddingHandler) ListBidsHandler(c *gin.Context) {
	bids, err := h.service.ListBids(c.Request.Context())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Error("ListBidsHandler: failed to list bids", map[string]any{"error": err.Error()})
		return
	}
	utils.JSON(c, http.StatusOK, bids)
}

// CreateBidHandler handles POST /bids
func (h *BiddingHandler) CreateBidHandler(c *gin.Context) {
	var req helpers.CreateBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateBidHandler", err)
		return
	}
	if auth.Mismatch(c, req.CreatedBy) {
		utils.JSONError(c, http.StatusForbidden, "created_by does not match authenticated user")
		return
	}

	bid, err := h.service.CreateBid(c.Request.Context(), bidding.NewBid{
		Title:       req.Title,
		Description: req.Description,
		OpenDate:    req.OpenDate,
		CloseDate:   req.CloseDate,
		CreatedBy:   req.CreatedBy,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Error("CreateBidHandler: failed to create bid", map[string]any{
			"title": req.Title,
			"error": err.Error(),
		})
		return
	}

	utils.JSON(c, http.StatusCreated, gin.H{"success": true, "data": bid})
	helpers.LogSuccess("CreateBidHandler", "bid created", map[string]any{
		"bid_id":     bid.ID,
		"created_by": bid.CreatedBy,
	})
}

// GetBidHandler handles GET /bids/:id
func (h *BiddingHandler) GetBidHandler(c *gin.Context) {
	id := c.Param("id")
	bid, entries, err := h.service.GetBid(c.Request.Context(), id)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Warn("GetBidHandler: error retrieving bid", map[string]any{"bid_id": id, "error": err.Error()})
		return
	}

	if entries == nil {
		entries = []model.BidEntry{}
	}
	utils.JSON(c, http.StatusOK, gin.H{"bid": bid, "entries": entries})
}

// UpdateBidHandler handles PUT /bids/:id
func (h *BiddingHandler) UpdateBidHandler(c *gin.Context) {
	id := c.Param("id")

	var req helpers.UpdateBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateBidHandler", err)
		return
	}
	if auth.Mismatch(c, req.UpdatedBy) {
		utils.JSONError(c, http.StatusForbidden, "updated_by does not match authenticated user")
		return
	}

	bid, err := h.service.UpdateBid(c.Request.Context(), id, bidding.BidUpdate{
		Title:       req.Title,
		Description: req.Description,
		OpenDate:    req.OpenDate,
		CloseDate:   req.CloseDate,
	}, req.UpdatedBy)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Warn("UpdateBidHandler: failed to update bid", map[string]any{
			"bid_id":     id,
			"updated_by": req.UpdatedBy,
			"error":      err.Error(),
		})
		return
	}

	utils.JSON(c, http.StatusOK, bid)
	helpers.LogSuccess("UpdateBidHandler", "bid updated", map[string]any{"bid_id": bid.ID})
}

// DeleteBidHandler handles DELETE /bids/:id?user_id=
func (h *BiddingHandler) DeleteBidHandler(c *gin.Context) {
	id := c.Param("id")
	userID := c.Query("user_id")
	if auth.Mismatch(c, userID) {
		utils.JSONError(c, http.StatusForbidden, "user_id does not match authenticated user")
		return
	}

	if err := h.service.DeleteBid(c.Request.Context(), id, userID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Warn("DeleteBidHandler: failed to delete bid", map[string]any{
			"bid_id":  id,
			"user_id": userID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSON(c, http.StatusOK, gin.H{"message": "bid deleted"})
	helpers.LogSuccess("DeleteBidHandler", "bid deleted", map[string]any{"bid_id": id})
}

// AddEntryHandler handles POST /bids/entry
func (h *BiddingHandler) AddEntryHandler(c *gin.Context) {
	var req helpers.AddEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddEntryHandler", err)
		return
	}
	if auth.Mismatch(c, req.UserID) {
		utils.JSONError(c, http.StatusForbidden, "user_id does not match authenticated user")
		return
	}

	entry, err := h.service.AddEntry(c.Request.Context(), req.BidID, req.UserID, req.Price)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Error("AddEntryHandler: failed to record entry", map[string]any{
			"bid_id":  req.BidID,
			"user_id": req.UserID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSON(c, http.StatusCreated, entry)
	helpers.LogSuccess("AddEntryHandler", "entry recorded", map[string]any{
		"entry_id": entry.ID,
		"bid_id":   entry.BidID,
		"user_id":  entry.UserID,
		"price":    entry.Price,
	})
}
