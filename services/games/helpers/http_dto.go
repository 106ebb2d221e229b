package helpers

// Request DTOs for the game surface.

type CreateSessionRequest struct {
	CreatedBy string `json:"created_by" binding:"required"`
}

type JoinRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

type SubmitEntryRequest struct {
	ParticipantID string `json:"participant_id" binding:"required"`
	ItemID        string `json:"item_id" binding:"required"`
	Price         int64  `json:"price" binding:"required,gt=0"`
}
