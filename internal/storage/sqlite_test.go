package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arcadelab/bleed/internal/game"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testScore(levelID string, points int) game.Score {
	return game.Score{
		LevelID:           levelID,
		LevelName:         "Test Level",
		Difficulty:        "easy",
		Points:            points,
		TapsUsed:          5,
		CompletionPercent: 96.5,
		RecordedAt:        time.Now(),
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreCreatesNestedDirectories(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "deep", "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	// Save some scores
	for _, points := range []int{1800, 1500, 2740} {
		if _, err := store.SaveScore(testScore("level_a", points)); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	// Different level
	if _, err := store.SaveScore(testScore("level_b", 2000)); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Retrieve top scores for level_a
	scores, err := store.TopScores("level_a", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Points != 2740 {
		t.Errorf("Expected highest score to be 2740, got %d", scores[0].Points)
	}
	if scores[1].Points != 1800 {
		t.Errorf("Expected second score to be 1800, got %d", scores[1].Points)
	}
	if scores[2].Points != 1500 {
		t.Errorf("Expected third score to be 1500, got %d", scores[2].Points)
	}

	// Row fields should round-trip
	if scores[0].LevelID != "level_a" || scores[0].Difficulty != "easy" {
		t.Errorf("Unexpected row identity: %s / %s", scores[0].LevelID, scores[0].Difficulty)
	}
	if scores[0].TapsUsed != 5 {
		t.Errorf("Expected 5 taps used, got %d", scores[0].TapsUsed)
	}
	if scores[0].Completion != 96.5 {
		t.Errorf("Expected 96.5%% completion, got %.2f", scores[0].Completion)
	}

	// Other level is isolated
	bScores, err := store.TopScores("level_b", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(bScores) != 1 {
		t.Errorf("Expected 1 score for level_b, got %d", len(bScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		if _, err := store.SaveScore(testScore("level_a", 1000+i)); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("level_a", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores with limit 5, got %d", len(scores))
	}

	// Non-positive limit falls back to the default of 10
	scores, err = store.TopScores("level_a", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 10 {
		t.Errorf("Expected 10 scores with default limit, got %d", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("level_a")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for unplayed level, got %d", high)
	}

	for _, points := range []int{1200, 2500, 1700} {
		if _, err := store.SaveScore(testScore("level_a", points)); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	high, err = store.HighScore("level_a")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 2500 {
		t.Errorf("Expected high score 2500, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore(testScore("level_a", 1000)); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore(testScore("level_b", 1000)); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	if err := store.ClearScores("level_a"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, err := store.TopScores("level_a", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	// Other level untouched
	bScores, err := store.TopScores("level_b", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(bScores) != 1 {
		t.Errorf("Clearing level_a should not touch level_b, got %d scores", len(bScores))
	}
}

func TestStoreAsScoreSink(t *testing.T) {
	store := openTestStore(t)

	// A session wired to the store persists its terminal score directly.
	session, err := game.NewSession(game.Config{
		LevelID:     "sink_level",
		LevelName:   "Sink Level",
		Difficulty:  "easy",
		PaletteSize: 2,
		MaxTaps:     1,
		GridSize:    5,
	}, store)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}

	result := session.TapCell(2, 2)
	if !result.Ended {
		t.Fatal("Single center tap on a 5x5 board should end the session")
	}

	scores, err := store.TopScores("sink_level", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("Expected 1 persisted score, got %d", len(scores))
	}
	if scores[0].Points != session.LastScore().Points {
		t.Errorf("Persisted points %d should match the session score %d",
			scores[0].Points, session.LastScore().Points)
	}
}

func TestStoreLevelStats(t *testing.T) {
	store := openTestStore(t)

	for _, points := range []int{1000, 2000, 3000} {
		score := testScore("level_a", points)
		score.CompletionPercent = float64(points) / 40.0 // 25, 50, 75
		if _, err := store.SaveScore(score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	stats, err := store.GetLevelStats("level_a")
	if err != nil {
		t.Fatalf("GetLevelStats() failed: %v", err)
	}

	if stats.PlaysCount != 3 {
		t.Errorf("Expected 3 plays, got %d", stats.PlaysCount)
	}
	if stats.HighScore != 3000 {
		t.Errorf("Expected high score 3000, got %d", stats.HighScore)
	}
	if stats.AvgPoints != 2000 {
		t.Errorf("Expected average 2000, got %.1f", stats.AvgPoints)
	}
	if stats.BestCompletion != 75 {
		t.Errorf("Expected best completion 75, got %.1f", stats.BestCompletion)
	}
}

func TestStoreAllLevelStats(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore(testScore("level_a", 1500)); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore(testScore("level_a", 2500)); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore(testScore("level_b", 1800)); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	all, err := store.GetAllLevelStats()
	if err != nil {
		t.Fatalf("GetAllLevelStats() failed: %v", err)
	}

	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 levels, got %d", len(all))
	}
	if all["level_a"].PlaysCount != 2 || all["level_a"].HighScore != 2500 {
		t.Errorf("Unexpected level_a stats: %+v", all["level_a"])
	}
	if all["level_b"].PlaysCount != 1 || all["level_b"].HighScore != 1800 {
		t.Errorf("Unexpected level_b stats: %+v", all["level_b"])
	}
}
