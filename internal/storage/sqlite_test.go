package storage

import (
	"testing"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
}

func TestStoresAreIndependent(t *testing.T) {
	a := openStore(t)
	b := openStore(t)

	if _, err := a.SaveGame(GameResult{Score: 100}); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}

	scores, err := b.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("Expected a fresh scoreboard, got %d scores", len(scores))
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openStore(t)

	results := []GameResult{
		{Seed: 1, Score: 100, Lines: 1, Level: 1, Pieces: 20},
		{Seed: 2, Score: 50, Lines: 0, Level: 1, Pieces: 12},
		{Seed: 3, Score: 1200, Lines: 11, Level: 2, Pieces: 60},
	}
	for _, r := range results {
		if _, err := store.SaveGame(r); err != nil {
			t.Fatalf("SaveGame() failed: %v", err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 1200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	top := scores[0]
	if top.Seed != 3 || top.Lines != 11 || top.Level != 2 || top.Pieces != 60 {
		t.Errorf("Top entry fields not preserved: %+v", top)
	}
	if top.CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be set")
	}
}

func TestStoreTopScoresTieOrder(t *testing.T) {
	store := openStore(t)

	first, _ := store.SaveGame(GameResult{Seed: 10, Score: 300})
	store.SaveGame(GameResult{Seed: 11, Score: 300})

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].ID != first {
		t.Errorf("Expected earlier game first on a tie, got ID %d", scores[0].ID)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openStore(t)

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveGame(GameResult{Score: (i + 1) * 100})
	}

	// Request only top 3
	scores, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limit falls back to 10
	scores, err = store.TopScores(0)
	if err != nil {
		t.Fatalf("TopScores(0) failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores with default limit, got %d", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openStore(t)

	// No scores yet
	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty session, got %d", high)
	}

	store.SaveGame(GameResult{Score: 100})
	store.SaveGame(GameResult{Score: 300})
	store.SaveGame(GameResult{Score: 200})

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreStats(t *testing.T) {
	store := openStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Games != 0 || stats.HighScore != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveGame(GameResult{Score: 100, Lines: 1, Level: 1})
	store.SaveGame(GameResult{Score: 300, Lines: 12, Level: 2})

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Games != 2 {
		t.Errorf("Expected 2 games, got %d", stats.Games)
	}
	if stats.HighScore != 300 {
		t.Errorf("Expected high score 300, got %d", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("Expected average 200, got %f", stats.AvgScore)
	}
	if stats.TotalLines != 13 {
		t.Errorf("Expected 13 lines, got %d", stats.TotalLines)
	}
	if stats.MaxLevel != 2 {
		t.Errorf("Expected max level 2, got %d", stats.MaxLevel)
	}
}

func TestStoreClosedErrors(t *testing.T) {
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.Close()

	if _, err := store.SaveGame(GameResult{Score: 1}); err == nil {
		t.Error("Expected error saving to a closed store")
	}
}
