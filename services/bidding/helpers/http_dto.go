package helpers

// Request DTOs for the bid listing surface. Success responses reuse the
// domain models directly.

type CreateBidRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	OpenDate    string `json:"open_date" binding:"required"`
	CloseDate   string `json:"close_date" binding:"required"`
	CreatedBy   string `json:"created_by" binding:"required"`
}

type UpdateBidRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	OpenDate    string `json:"open_date" binding:"required"`
	CloseDate   string `json:"close_date" binding:"required"`
	UpdatedBy   string `json:"updated_by" binding:"required"`
}

type AddEntryRequest struct {
	BidID  string  `json:"bid_id" binding:"required"`
	UserID string  `json:"user_id" binding:"required"`
	Price  float64 `json:"price" binding:"required,gt=0"`
}
