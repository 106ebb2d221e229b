package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"

	"auction-sim/internal/auth"
	bidding "auction-sim/internal/biddingService"
	game "auction-sim/internal/gameService"
	"auction-sim/internal/repository"
	"auction-sim/internal/server"
)

// All requests run against a clock frozen at testNow so open/close
// windows are deterministic.
var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// SetupTestRouter initializes the router with the in-memory repository
// for integration testing. A nil verifier means identity checks are off.
func SetupTestRouter() *gin.Engine {
	return setupRouter(nil)
}

// SetupTestRouterWithAuth enables token verification with the given secret.
func SetupTestRouterWithAuth(secret string) *gin.Engine {
	return setupRouter(auth.NewVerifier(secret))
}

func setupRouter(verifier *auth.Verifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()
	clock := clockwork.NewFakeClockAt(testNow)
	biddingService := bidding.NewBiddingService(repo, clock)
	gameService := game.NewGameService(repo, clock)
	return server.SetupRouter(biddingService, gameService, verifier)
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// parses the JSON object it returns.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := ExecuteRequest(t, router, method, url, reqBody)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 && w.Body.Bytes()[0] == '{' {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// jsonMarshal renders body as a JSON request reader.
func jsonMarshal(body any) (*bytes.Reader, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(b), nil
}

// ExecuteRequestAndParseList is for endpoints returning a top-level array.
func ExecuteRequestAndParseList(t *testing.T, router *gin.Engine, method, url string) ([]any, *httptest.ResponseRecorder) {
	t.Helper()

	w := ExecuteRequest(t, router, method, url, nil)
	var resp []any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}
