package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Fatal("database file was not created")
	}
	return store
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("trailcut", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("trailcut_hardcore", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("trailcut", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("expected 3 scores, got %d", len(scores))
	}
	// Sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("scores not in descending order: %v", scores)
	}

	hardcore, err := store.TopScores("trailcut_hardcore", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(hardcore) != 1 {
		t.Errorf("expected 1 hardcore score, got %d", len(hardcore))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("trailcut", (i+1)*100)
	}

	scores, err := store.TopScores("trailcut", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("trailcut")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("expected high score of 0 for empty variant, got %d", high)
	}

	store.SaveScore("trailcut", 100)
	store.SaveScore("trailcut", 300)
	store.SaveScore("trailcut", 200)

	high, err = store.HighScore("trailcut")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("trailcut", 100)
	store.SaveScore("trailcut", 200)
	store.SaveScore("trailcut_hardcore", 300)

	if err := store.ClearScores("trailcut"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	classic, _ := store.TopScores("trailcut", 10)
	if len(classic) != 0 {
		t.Errorf("expected 0 classic scores after clear, got %d", len(classic))
	}

	hardcore, _ := store.TopScores("trailcut_hardcore", 10)
	if len(hardcore) != 1 {
		t.Error("hardcore scores must not be affected by clearing classic")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("trailcut", i*10)
	}

	scores, err := store.AllScores("trailcut")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("trailcut", 100)
	store.SaveScore("trailcut", 300)

	stats, err := store.GetGameStats("trailcut")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("games count = %d, want 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("high score = %d, want 300", stats.HighScore)
	}
	if stats.TotalScore != 400 {
		t.Errorf("total score = %d, want 400", stats.TotalScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("avg score = %v, want 200", stats.AvgScore)
	}
}

func TestStoreOpenNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created in nested directory")
	}
}
