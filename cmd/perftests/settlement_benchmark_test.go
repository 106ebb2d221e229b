package perftests

import (
	"context"
	"fmt"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	model "auction-sim/internal/models"
	repository "auction-sim/internal/repository"
	"auction-sim/internal/settlement"
)

// buildRound builds a full (participants x items) entry grid for one round.
func buildRound(numParticipants, numItems int) ([]model.GameItem, []model.GameEntry) {
	now := time.Now().UTC()
	rnd := rand.New(rand.NewSource(42))

	items := make([]model.GameItem, 0, numItems)
	for i := 0; i < numItems; i++ {
		items = append(items, model.GameItem{
			ID:            fmt.Sprintf("item_%d", i),
			GameSessionID: "session_1",
			Round:         1,
			ProjectNumber: i + 1,
			Title:         fmt.Sprintf("project_%d", i),
			Cost:          100,
			MinPrice:      100,
			MaxPrice:      300,
		})
	}

	entries := make([]model.GameEntry, 0, numParticipants*numItems)
	for p := 0; p < numParticipants; p++ {
		for i := 0; i < numItems; i++ {
			entries = append(entries, model.GameEntry{
				ID:            fmt.Sprintf("entry_%d_%d", p, i),
				ParticipantID: fmt.Sprintf("participant_%d", p),
				ItemID:        fmt.Sprintf("item_%d", i),
				Price:         int64(100 + rnd.Intn(200)),
				CreatedAt:     now.Add(time.Duration(p*numItems+i) * time.Millisecond),
			})
		}
	}
	return items, entries
}

// Benchmark 1: ComputeRoundResults over growing grids
func Benchmark_ComputeRoundResults(b *testing.B) {
	grids := []struct {
		name         string
		participants int
		items        int
	}{
		{"2p_3items", 2, 3},
		{"10p_10items", 10, 10},
		{"100p_20items", 100, 20},
	}

	for _, g := range grids {
		b.Run(g.name, func(b *testing.B) {
			items, entries := buildRound(g.participants, g.items)

			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := settlement.ComputeRoundResults("session_1", 1, items, entries); err != nil {
					b.Fatalf("settlement failed: %v", err)
				}
			}
		})
	}
}

// Benchmark 2: Complete grid check on a large round
func Benchmark_Complete(b *testing.B) {
	items, entries := buildRound(100, 20)
	participants := make([]model.Participant, 0, 100)
	for p := 0; p < 100; p++ {
		participants = append(participants, model.Participant{
			ID:            fmt.Sprintf("participant_%d", p),
			UserID:        fmt.Sprintf("user_%d", p),
			GameSessionID: "session_1",
		})
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if !settlement.Complete(items, participants, entries) {
			b.Fatal("grid unexpectedly incomplete")
		}
	}
}

// Benchmark 3: concurrent joins against a single session (high contention)
func Benchmark_AddParticipant_ConcurrentSharedSession(b *testing.B) {
	ctx := context.Background()
	repo := repository.NewMemoryRepo()
	now := time.Now().UTC()

	_, err := repo.CreateSession(ctx, model.GameSession{
		ID:        "shared_session",
		Status:    model.StatusWaiting,
		Round:     1,
		CreatedBy: "creator",
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		b.Fatalf("failed to create session: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	var seq int64

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			n := atomic.AddInt64(&seq, 1)
			_, err := repo.AddParticipant(ctx, model.Participant{
				ID:            fmt.Sprintf("participant_%d", n),
				UserID:        fmt.Sprintf("user_%d", n),
				GameSessionID: "shared_session",
				JoinedAt:      now,
			})
			if err != nil {
				b.Fatalf("failed to add participant: %v", err)
			}
		}
	})
}

// Benchmark 4: mixed workload, entry writes against result reads
func Benchmark_GameEntries_MixedWorkload(b *testing.B) {
	ctx := context.Background()
	repo := repository.NewMemoryRepo()
	items, entries := buildRound(10, 10)

	if err := repo.AddRoundItems(ctx, items); err != nil {
		b.Fatalf("failed to seed items: %v", err)
	}
	for _, e := range entries {
		if _, err := repo.AddGameEntry(ctx, e); err != nil {
			b.Fatalf("failed to seed entry: %v", err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	var seq int64

	// Ratio: 70% readers, 30% writers
	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			if rnd.Intn(10) < 3 {
				n := atomic.AddInt64(&seq, 1)
				_, _ = repo.AddGameEntry(ctx, model.GameEntry{
					ID:            fmt.Sprintf("bench_entry_%d", n),
					ParticipantID: fmt.Sprintf("bench_participant_%d", n),
					ItemID:        "item_0",
					Price:         150,
					CreatedAt:     time.Now().UTC(),
				})
			} else {
				if _, err := repo.ListRoundEntries(ctx, "session_1", 1); err != nil {
					b.Fatalf("failed to list entries: %v", err)
				}
			}
		}
	})
}
