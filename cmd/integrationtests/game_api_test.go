package integrationtests

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"auction-sim/services/games/helpers"
)

// startSession creates a session with ownerID and returns the session ID
// plus the creator's participant ID.
func startSession(t *testing.T, router *gin.Engine) (string, string) {
	t.Helper()
	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/games",
		helpers.CreateSessionRequest{CreatedBy: ownerID})
	require.Equal(t, http.StatusCreated, w.Code)

	session := resp["session"].(map[string]any)
	participant := resp["participant"].(map[string]any)
	return session["id"].(string), participant["id"].(string)
}

func joinSession(t *testing.T, router *gin.Engine, sessionID, userID string) string {
	t.Helper()
	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/games/"+sessionID+"/join",
		helpers.JoinRequest{UserID: userID})
	require.Equal(t, http.StatusCreated, w.Code)
	return resp["id"].(string)
}

// roundItemIDs returns the round catalog's item IDs in project order.
func roundItemIDs(t *testing.T, router *gin.Engine, sessionID string, round int) []string {
	t.Helper()
	resp, w := ExecuteRequestAndParse(t, router, http.MethodGet,
		fmt.Sprintf("/games/%s/round/%d/items", sessionID, round), nil)
	require.Equal(t, http.StatusOK, w.Code)

	items := resp["items"].([]any)
	ids := make([]string, 0, len(items))
	for _, raw := range items {
		item := raw.(map[string]any)
		ids = append(ids, item["id"].(string))
	}
	return ids
}

func submitEntry(t *testing.T, router *gin.Engine, sessionID, participantID, itemID string, price int64) int {
	t.Helper()
	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/games/"+sessionID+"/round/1/entry",
		helpers.SubmitEntryRequest{ParticipantID: participantID, ItemID: itemID, Price: price})
	return w.Code
}

func TestCreateSessionAPI(t *testing.T) {
	tests := []struct {
		name       string
		request    any
		wantStatus int
	}{
		{
			name:       "Valid_Session",
			request:    helpers.CreateSessionRequest{CreatedBy: ownerID},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "Missing_Created_By",
			request:    map[string]any{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Created_By_Not_A_UUID",
			request:    helpers.CreateSessionRequest{CreatedBy: "alice"},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := SetupTestRouter()
			resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/games", tt.request)
			require.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusCreated {
				session := resp["session"].(map[string]any)
				require.Equal(t, "waiting", session["status"])
				require.Equal(t, 1.0, session["round"])
				require.Equal(t, ownerID, session["created_by"])

				// the creator joined automatically
				participant := resp["participant"].(map[string]any)
				require.Equal(t, ownerID, participant["user_id"])
				require.Equal(t, session["id"], participant["game_session_id"])
			} else {
				require.Contains(t, resp, "error")
			}
		})
	}
}

func TestListWaitingSessionsAPI(t *testing.T) {
	router := SetupTestRouter()

	sessions, w := ExecuteRequestAndParseList(t, router, http.MethodGet, "/games")
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, sessions)

	sessionID, _ := startSession(t, router)

	sessions, w = ExecuteRequestAndParseList(t, router, http.MethodGet, "/games")
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, sessions, 1)
	require.Equal(t, sessionID, sessions[0].(map[string]any)["id"])
}

func TestJoinSessionAPI(t *testing.T) {
	router := SetupTestRouter()
	sessionID, _ := startSession(t, router)

	t.Run("Second_User_Joins", func(t *testing.T) {
		joinSession(t, router, sessionID, otherID)

		resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/games/"+sessionID, nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, resp["participants"].([]any), 2)
	})

	t.Run("Duplicate_Join_Conflict", func(t *testing.T) {
		_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/games/"+sessionID+"/join",
			helpers.JoinRequest{UserID: otherID})
		require.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Invalid_User_ID", func(t *testing.T) {
		_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/games/"+sessionID+"/join",
			helpers.JoinRequest{UserID: "bob"})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Missing_Session", func(t *testing.T) {
		_, w := ExecuteRequestAndParse(t, router, http.MethodPost,
			"/games/11111111-2222-4333-8444-555555555555/join",
			helpers.JoinRequest{UserID: otherID})
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRoundItemsAPI(t *testing.T) {
	router := SetupTestRouter()
	sessionID, _ := startSession(t, router)

	resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/games/"+sessionID+"/round/1/items", nil)
	require.Equal(t, http.StatusOK, w.Code)

	items := resp["items"].([]any)
	require.Len(t, items, 3)
	for i, raw := range items {
		item := raw.(map[string]any)
		require.Equal(t, float64(i+1), item["project_number"])
		require.NotEmpty(t, item["title"])
		require.LessOrEqual(t, item["min_price"].(float64), item["max_price"].(float64))
	}

	t.Run("Later_Round_Is_Empty", func(t *testing.T) {
		resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/games/"+sessionID+"/round/2/items", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Empty(t, resp["items"].([]any))
	})
}

// The whole round: create, join, submit the full grid, read the results.
func TestRoundSettlementFlow(t *testing.T) {
	router := SetupTestRouter()
	sessionID, creatorPID := startSession(t, router)
	joinerPID := joinSession(t, router, sessionID, otherID)
	itemIDs := roundItemIDs(t, router, sessionID, 1)
	require.Len(t, itemIDs, 3)

	// catalog: cost 100 range [100,300], cost 200 range [200,500],
	// cost 150 range [150,400]
	creatorPrices := []int64{150, 300, 200}
	joinerPrices := []int64{120, 400, 250}

	t.Run("Results_Empty_Before_Settlement", func(t *testing.T) {
		resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/games/"+sessionID+"/round/1/result", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Empty(t, resp["results"].([]any))
	})

	t.Run("Price_Outside_Range_Rejected", func(t *testing.T) {
		require.Equal(t, http.StatusBadRequest, submitEntry(t, router, sessionID, creatorPID, itemIDs[0], 99))
		require.Equal(t, http.StatusBadRequest, submitEntry(t, router, sessionID, creatorPID, itemIDs[0], 301))
	})

	t.Run("Unknown_Participant_Rejected", func(t *testing.T) {
		require.Equal(t, http.StatusNotFound, submitEntry(t, router, sessionID, "stranger", itemIDs[0], 150))
	})

	t.Run("Full_Grid_Settles", func(t *testing.T) {
		for i, itemID := range itemIDs {
			require.Equal(t, http.StatusCreated, submitEntry(t, router, sessionID, creatorPID, itemID, creatorPrices[i]))
			require.Equal(t, http.StatusCreated, submitEntry(t, router, sessionID, joinerPID, itemID, joinerPrices[i]))
		}

		resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/games/"+sessionID+"/round/1/result", nil)
		require.Equal(t, http.StatusOK, w.Code)
		results := resp["results"].([]any)
		require.Len(t, results, 3)

		// project 1: joiner underbids 120 vs 150, margin over cost 100
		first := results[0].(map[string]any)
		require.Equal(t, 1.0, first["project_number"])
		require.Equal(t, joinerPID, first["winner_participant_id"])
		require.Equal(t, 120.0, first["winning_price"])
		require.Equal(t, 20.0, first["profit_winner"])
		require.Equal(t, map[string]any{creatorPID: 50.0}, first["profit_losers"])

		// project 2: creator underbids 300 vs 400, cost 200
		second := results[1].(map[string]any)
		require.Equal(t, creatorPID, second["winner_participant_id"])
		require.Equal(t, 300.0, second["winning_price"])
		require.Equal(t, 100.0, second["profit_winner"])
		require.Equal(t, map[string]any{joinerPID: 200.0}, second["profit_losers"])

		// project 3: creator underbids 200 vs 250, cost 150
		third := results[2].(map[string]any)
		require.Equal(t, creatorPID, third["winner_participant_id"])
		require.Equal(t, 50.0, third["profit_winner"])
	})

	t.Run("Duplicate_Entry_Conflict", func(t *testing.T) {
		require.Equal(t, http.StatusConflict, submitEntry(t, router, sessionID, creatorPID, itemIDs[0], 200))
	})

	t.Run("Resubmission_Does_Not_Change_Results", func(t *testing.T) {
		resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/games/"+sessionID+"/round/1/result", nil)
		require.Equal(t, http.StatusOK, w.Code)
		first := resp["results"].([]any)[0].(map[string]any)
		require.Equal(t, 120.0, first["winning_price"])
	})
}
