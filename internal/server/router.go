package server

import (
	"github.com/gin-gonic/gin"

	"auction-sim/internal/auth"
	bidding "auction-sim/internal/biddingService"
	game "auction-sim/internal/gameService"
	biddinghandler "auction-sim/services/bidding/handler"
	gamehandler "auction-sim/services/games/handler"
)

// SetupRouter configures all Gin routes for the application. A nil
// verifier disables token verification.
func SetupRouter(biddingService *bidding.BiddingService, gameService *game.GameService, verifier *auth.Verifier) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(IdentityMiddleware(verifier))

	biddingHandler := biddinghandler.NewBiddingHandler(biddingService)
	gameHandler := gamehandler.NewGameHandler(gameService)

	bids := router.Group("/bids")
	{
		bids.GET("", biddingHandler.ListBidsHandler)
		bids.POST("", biddingHandler.CreateBidHandler)
		bids.POST("/entry", biddingHandler.AddEntryHandler)
		bids.GET("/:id", biddingHandler.GetBidHandler)
		bids.PUT("/:id", biddingHandler.UpdateBidHandler)
		bids.DELETE("/:id", biddingHandler.DeleteBidHandler)
	}

	games := router.Group("/games")
	{
		games.GET("", gameHandler.ListWaitingSessionsHandler)
		games.POST("", gameHandler.CreateSessionHandler)
		games.GET("/:id", gameHandler.GetSessionHandler)
		games.POST("/:id/join", gameHandler.JoinHandler)
		games.GET("/:id/round/:round/items", gameHandler.RoundItemsHandler)
		games.GET("/:id/round/:round/result", gameHandler.RoundResultsHandler)
		games.POST("/:id/round/:round/entry", gameHandler.SubmitEntryHandler)
	}

	return router
}
