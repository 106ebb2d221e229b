package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"auction-sim/internal/auth"
	model "auction-sim/internal/models"
	"auction-sim/services/games/helpers"
	"auction-sim/utils"
)

type GameServiceInterface interface {
	CreateSession(ctx context.Context, createdBy string) (model.GameSession, model.Participant, error)
	ListWaitingSessions(ctx context.Context) ([]model.GameSession, error)
	GetSession(ctx context.Context, sessionID string) (model.GameSession, []model.Participant, error)
	Join(ctx context.Context, sessionID, userID string) (model.Participant, error)
	RoundItems(ctx context.Context, sessionID string, round int) ([]model.GameItem, error)
	RoundResults(ctx context.Context, sessionID string, round int) ([]model.RoundResult, error)
	SubmitEntry(ctx context.Context, sessionID string, round int, participantID, itemID string, price int64) (model.GameEntry, error)
}

type GameHandler struct {
	service GameServiceInterface
}

func NewGameHandler(service GameServiceInterface) *GameHandler {
	return &GameHandler{service: service}
}

// CreateSessionHandler handles POST /games
func (h *GameHandler) CreateSessionHandler(c *gin.Context) {
	var req helpers.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateSessionHandler", err)
		return
	}
	if auth.Mismatch(c, req.CreatedBy) {
		utils.JSONError(c, http.StatusForbidden, "created_by does not match authenticated user")
		return
	}

	session, participant, err := h.service.CreateSession(c.Request.Context(), req.CreatedBy)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Error("CreateSessionHandler: failed to create session", map[string]any{
			"created_by": req.CreatedBy,
			"error":      err.Error(),
		})
		return
	}

	utils.JSON(c, http.StatusCreated, gin.H{"session": session, "participant": participant})
	helpers.LogSuccess("CreateSessionHandler", "session created", map[string]any{
		"session_id": session.ID,
		"created_by": session.CreatedBy,
	})
}

// ListWaitingSessionsHandler handles GET /games
func (h *GameHandler) ListWaitingSessionsHandler(c *gin.Context) {
	sessions, err := h.service.ListWaitingSessions(c.Request.Context())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Error("ListWaitingSessionsHandler: failed to list sessions", map[string]any{"error": err.Error()})
		return
	}
	utils.JSON(c, http.StatusOK, sessions)
}

// GetSessionHandler handles GET /games/:id
func (h *GameHandler) GetSessionHandler(c *gin.Context) {
	sessionID := c.Param("id")
	session, participants, err := h.service.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Warn("GetSessionHandler: error retrieving session", map[string]any{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		return
	}

	if participants == nil {
		participants = []model.Participant{}
	}
	utils.JSON(c, http.StatusOK, gin.H{"session": session, "participants": participants})
}

// JoinHandler handles POST /games/:id/join
func (h *GameHandler) JoinHandler(c *gin.Context) {
	sessionID := c.Param("id")

	var req helpers.JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "JoinHandler", err)
		return
	}
	if auth.Mismatch(c, req.UserID) {
		utils.JSONError(c, http.StatusForbidden, "user_id does not match authenticated user")
		return
	}

	participant, err := h.service.Join(c.Request.Context(), sessionID, req.UserID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Warn("JoinHandler: failed to join session", map[string]any{
			"session_id": sessionID,
			"user_id":    req.UserID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSON(c, http.StatusCreated, participant)
	helpers.LogSuccess("JoinHandler", "participant joined", map[string]any{
		"session_id":     sessionID,
		"participant_id": participant.ID,
	})
}

// RoundItemsHandler handles GET /games/:id/round/:round/items
func (h *GameHandler) RoundItemsHandler(c *gin.Context) {
	sessionID := c.Param("id")
	round, ok := parseRound(c)
	if !ok {
		return
	}

	items, err := h.service.RoundItems(c.Request.Context(), sessionID, round)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Error("RoundItemsHandler: failed to list items", map[string]any{
			"session_id": sessionID,
			"round":      round,
			"error":      err.Error(),
		})
		return
	}

	if items == nil {
		items = []model.GameItem{}
	}
	utils.JSON(c, http.StatusOK, gin.H{"items": items})
}

// RoundResultsHandler handles GET /games/:id/round/:round/result
func (h *GameHandler) RoundResultsHandler(c *gin.Context) {
	sessionID := c.Param("id")
	round, ok := parseRound(c)
	if !ok {
		return
	}

	results, err := h.service.RoundResults(c.Request.Context(), sessionID, round)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Error("RoundResultsHandler: failed to list results", map[string]any{
			"session_id": sessionID,
			"round":      round,
			"error":      err.Error(),
		})
		return
	}

	if results == nil {
		results = []model.RoundResult{}
	}
	utils.JSON(c, http.StatusOK, gin.H{"results": results})
}

// SubmitEntryHandler handles POST /games/:id/round/:round/entry
func (h *GameHandler) SubmitEntryHandler(c *gin.Context) {
	sessionID := c.Param("id")
	round, ok := parseRound(c)
	if !ok {
		return
	}

	var req helpers.SubmitEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SubmitEntryHandler", err)
		return
	}

	entry, err := h.service.SubmitEntry(c.Request.Context(), sessionID, round, req.ParticipantID, req.ItemID, req.Price)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Warn("SubmitEntryHandler: failed to submit entry", map[string]any{
			"session_id":     sessionID,
			"round":          round,
			"participant_id": req.ParticipantID,
			"item_id":        req.ItemID,
			"error":          err.Error(),
		})
		return
	}

	utils.JSON(c, http.StatusCreated, entry)
	helpers.LogSuccess("SubmitEntryHandler", "entry submitted", map[string]any{
		"session_id":     sessionID,
		"round":          round,
		"participant_id": entry.ParticipantID,
		"item_id":        entry.ItemID,
	})
}

func parseRound(c *gin.Context) (int, bool) {
	round, err := strconv.Atoi(c.Param("round"))
	if err != nil || round < 1 {
		utils.JSONError(c, http.StatusBadRequest, "round must be a positive integer")
		return 0, false
	}
	return round, true
}
