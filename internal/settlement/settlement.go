// Package settlement computes round results for the auction game mode.
// This is a reverse (procurement) auction: for every item the lowest
// submitted price wins.
package settlement

import (
	"fmt"
	"sort"

	"auction-sim/internal/auctionerrors"
	model "auction-sim/internal/models"
)

// Complete reports whether every participant has submitted an entry for
// every item of the round. Settlement must not run before this holds.
func Complete(items []model.GameItem, participants []model.Participant, entries []model.GameEntry) bool {
	if len(items) == 0 || len(participants) == 0 {
		return false
	}
	submitted := make(map[string]bool, len(entries))
	for _, e := range entries {
		submitted[e.ParticipantID+"/"+e.ItemID] = true
	}
	for _, p := range participants {
		for _, item := range items {
			if !submitted[p.ID+"/"+item.ID] {
				return false
			}
		}
	}
	return true
}

// ComputeRoundResults produces one RoundResult per item.
//
// Per item: the winner is the entry with the lowest price; ties go to the
// earliest submission, and identical timestamps to the smallest
// participant ID, so recomputing over the same entries always yields the
// same rows. The winner's profit is winning_price - cost. Each loser is
// recorded with the profit they would have made had they won at their own
// bid (their price - cost), not a figure relative to the winning price.
//
// An item with no entries makes the whole round incomplete: the function
// returns ErrRoundIncomplete and no partial results.
func ComputeRoundResults(sessionID string, round int, items []model.GameItem, entries []model.GameEntry) ([]model.RoundResult, error) {
	byItem := make(map[string][]model.GameEntry, len(items))
	for _, e := range entries {
		byItem[e.ItemID] = append(byItem[e.ItemID], e)
	}

	results := make([]model.RoundResult, 0, len(items))
	for _, item := range items {
		itemEntries := byItem[item.ID]
		if len(itemEntries) == 0 {
			return nil, fmt.Errorf("settlement: item %d has no entries: %w",
				item.ProjectNumber, auctionerrors.ErrRoundIncomplete)
		}

		winner := itemEntries[0]
		for _, e := range itemEntries[1:] {
			if beats(e, winner) {
				winner = e
			}
		}

		losers := make(map[string]int64, len(itemEntries)-1)
		for _, e := range itemEntries {
			if e.ParticipantID == winner.ParticipantID {
				continue
			}
			losers[e.ParticipantID] = e.Price - item.Cost
		}

		results = append(results, model.RoundResult{
			GameSessionID:       sessionID,
			Round:               round,
			ProjectNumber:       item.ProjectNumber,
			WinnerParticipantID: winner.ParticipantID,
			WinningPrice:        winner.Price,
			ProfitWinner:        winner.Price - item.Cost,
			ProfitLosers:        losers,
		})
	}

	sort.Slice(results, func(i, j int) bool { return results[i].ProjectNumber < results[j].ProjectNumber })
	return results, nil
}

// beats reports whether entry a outranks entry b: lower price first, then
// earlier submission, then smaller participant ID.
func beats(a, b model.GameEntry) bool {
	if a.Price != b.Price {
		return a.Price < b.Price
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.ParticipantID < b.ParticipantID
}
