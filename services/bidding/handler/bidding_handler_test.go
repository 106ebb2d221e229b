package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"auction-sim/internal/auctionerrors"
	"auction-sim/internal/auth"
	bidding "auction-sim/internal/biddingService"
	model "auction-sim/internal/models"
)

func newHandler(t *testing.T) (*BiddingHandler, *MockBiddingServiceInterface) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := NewMockBiddingServiceInterface(ctrl)
	return NewBiddingHandler(mockService), mockService
}

func performJSON(t *testing.T, handlerFunc gin.HandlerFunc, method, target string, body any, identity string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, &buf)
	c.Request.Header.Set("Content-Type", "application/json")
	if identity != "" {
		auth.SetIdentity(c, identity)
	}
	handlerFunc(c)
	return w
}

func TestCreateBidHandler(t *testing.T) {
	validBody := gin.H{
		"title":      "road repair",
		"open_date":  "2025-06-01T00:00:00Z",
		"close_date": "2025-06-10T00:00:00Z",
		"created_by": "5b5c8b37-81a7-44d8-bfc4-52a6d1935ddf",
	}

	t.Run("created", func(t *testing.T) {
		h, mockService := newHandler(t)
		mockService.EXPECT().
			CreateBid(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req bidding.NewBid) (model.Bid, error) {
				return model.Bid{ID: "bid1", Title: req.Title, CreatedBy: req.CreatedBy}, nil
			})

		w := performJSON(t, h.CreateBidHandler, http.MethodPost, "/bids", validBody, "")
		require.Equal(t, http.StatusCreated, w.Code)

		var resp struct {
			Success bool      `json:"success"`
			Data    model.Bid `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.True(t, resp.Success)
		require.Equal(t, "bid1", resp.Data.ID)
	})

	t.Run("missing_fields_rejected_at_binding", func(t *testing.T) {
		h, _ := newHandler(t)
		w := performJSON(t, h.CreateBidHandler, http.MethodPost, "/bids", gin.H{"title": "no dates"}, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, w.Body.String(), `"error"`)
	})

	t.Run("identity_mismatch_forbidden", func(t *testing.T) {
		h, _ := newHandler(t)
		w := performJSON(t, h.CreateBidHandler, http.MethodPost, "/bids", validBody, "someone-else")
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("service_validation_maps_to_400", func(t *testing.T) {
		h, mockService := newHandler(t)
		mockService.EXPECT().CreateBid(gomock.Any(), gomock.Any()).
			Return(model.Bid{}, auctionerrors.ErrValidation)

		w := performJSON(t, h.CreateBidHandler, http.MethodPost, "/bids", validBody, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListBidsHandler(t *testing.T) {
	t.Run("empty_list_is_array", func(t *testing.T) {
		h, mockService := newHandler(t)
		mockService.EXPECT().ListBids(gomock.Any()).Return([]model.Bid{}, nil)

		w := performJSON(t, h.ListBidsHandler, http.MethodGet, "/bids", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("internal_error_maps_to_500", func(t *testing.T) {
		h, mockService := newHandler(t)
		mockService.EXPECT().ListBids(gomock.Any()).Return(nil, errors.New("db down"))

		w := performJSON(t, h.ListBidsHandler, http.MethodGet, "/bids", nil, "")
		require.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestGetBidHandler(t *testing.T) {
	t.Run("found_with_empty_entries", func(t *testing.T) {
		h, mockService := newHandler(t)
		mockService.EXPECT().GetBid(gomock.Any(), "bid1").
			Return(model.Bid{ID: "bid1"}, nil, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/bids/bid1", nil)
		c.Params = gin.Params{{Key: "id", Value: "bid1"}}
		h.GetBidHandler(c)

		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Bid     model.Bid        `json:"bid"`
			Entries []model.BidEntry `json:"entries"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, "bid1", resp.Bid.ID)
		require.NotNil(t, resp.Entries)
		require.Empty(t, resp.Entries)
	})

	t.Run("missing_maps_to_404", func(t *testing.T) {
		h, mockService := newHandler(t)
		mockService.EXPECT().GetBid(gomock.Any(), "ghost").
			Return(model.Bid{}, nil, auctionerrors.ErrBidNotFound)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/bids/ghost", nil)
		c.Params = gin.Params{{Key: "id", Value: "ghost"}}
		h.GetBidHandler(c)

		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUpdateBidHandler(t *testing.T) {
	body := gin.H{
		"title":      "new title",
		"open_date":  "2025-06-01T00:00:00Z",
		"close_date": "2025-06-10T00:00:00Z",
		"updated_by": "owner",
	}

	run := func(t *testing.T, h *BiddingHandler, identity string) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		require.NoError(t, json.NewEncoder(&buf).Encode(body))

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPut, "/bids/bid1", &buf)
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = gin.Params{{Key: "id", Value: "bid1"}}
		if identity != "" {
			auth.SetIdentity(c, identity)
		}
		h.UpdateBidHandler(c)
		return w
	}

	t.Run("updated", func(t *testing.T) {
		h, mockService := newHandler(t)
		mockService.EXPECT().
			UpdateBid(gomock.Any(), "bid1", gomock.Any(), "owner").
			Return(model.Bid{ID: "bid1", Title: "new title"}, nil)

		w := run(t, h, "")
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("non_owner_maps_to_403", func(t *testing.T) {
		h, mockService := newHandler(t)
		mockService.EXPECT().
			UpdateBid(gomock.Any(), "bid1", gomock.Any(), "owner").
			Return(model.Bid{}, auctionerrors.ErrForbidden)

		w := run(t, h, "")
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("identity_mismatch_forbidden", func(t *testing.T) {
		h, _ := newHandler(t)
		w := run(t, h, "intruder")
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestDeleteBidHandler(t *testing.T) {
	run := func(t *testing.T, h *BiddingHandler, userID, identity string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodDelete, "/bids/bid1?user_id="+userID, nil)
		c.Params = gin.Params{{Key: "id", Value: "bid1"}}
		if identity != "" {
			auth.SetIdentity(c, identity)
		}
		h.DeleteBidHandler(c)
		return w
	}

	t.Run("deleted", func(t *testing.T) {
		h, mockService := newHandler(t)
		mockService.EXPECT().DeleteBid(gomock.Any(), "bid1", "owner").Return(nil)

		w := run(t, h, "owner", "")
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"message": "bid deleted"}`, w.Body.String())
	})

	t.Run("missing_maps_to_404", func(t *testing.T) {
		h, mockService := newHandler(t)
		mockService.EXPECT().DeleteBid(gomock.Any(), "bid1", "owner").
			Return(auctionerrors.ErrBidNotFound)

		w := run(t, h, "owner", "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("identity_mismatch_forbidden", func(t *testing.T) {
		h, _ := newHandler(t)
		w := run(t, h, "owner", "intruder")
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestAddEntryHandler(t *testing.T) {
	validBody := gin.H{"bid_id": "bid1", "user_id": "user1", "price": 100.0}

	t.Run("created", func(t *testing.T) {
		h, mockService := newHandler(t)
		mockService.EXPECT().
			AddEntry(gomock.Any(), "bid1", "user1", 100.0).
			Return(model.BidEntry{ID: "e1", BidID: "bid1", UserID: "user1", Price: 100}, nil)

		w := performJSON(t, h.AddEntryHandler, http.MethodPost, "/bids/entry", validBody, "")
		require.Equal(t, http.StatusCreated, w.Code)

		var entry model.BidEntry
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entry))
		require.Equal(t, "e1", entry.ID)
	})

	t.Run("zero_price_rejected_at_binding", func(t *testing.T) {
		h, _ := newHandler(t)
		w := performJSON(t, h.AddEntryHandler, http.MethodPost, "/bids/entry",
			gin.H{"bid_id": "bid1", "user_id": "user1", "price": 0}, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("closed_bid_maps_to_400", func(t *testing.T) {
		h, mockService := newHandler(t)
		mockService.EXPECT().AddEntry(gomock.Any(), "bid1", "user1", 100.0).
			Return(model.BidEntry{}, auctionerrors.ErrBidClosed)

		w := performJSON(t, h.AddEntryHandler, http.MethodPost, "/bids/entry", validBody, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("identity_mismatch_forbidden", func(t *testing.T) {
		h, _ := newHandler(t)
		w := performJSON(t, h.AddEntryHandler, http.MethodPost, "/bids/entry", validBody, "someone-else")
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}
