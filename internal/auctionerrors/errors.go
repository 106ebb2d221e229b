package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrBidNotFound         = errors.New("bid not found")
	ErrSessionNotFound     = errors.New("game session not found")
	ErrItemNotFound        = errors.New("game item not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrAlreadyJoined       = errors.New("user already joined this session")
	ErrDuplicateEntry      = errors.New("entry already submitted for this item")
)

// business logic errors
var (
	ErrValidation      = errors.New("invalid input")
	ErrForbidden       = errors.New("requester is not the owner")
	ErrBidClosed       = errors.New("bid is not open for entries")
	ErrRoundIncomplete = errors.New("round entries incomplete")
)
