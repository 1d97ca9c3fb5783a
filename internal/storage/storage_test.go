package storage

import (
	"os"
	"testing"

	"github.com/milnv/gobang/internal/board"
	"github.com/milnv/gobang/internal/engine"
)

func TestStorageStructs(t *testing.T) {
	t.Run("DefaultPreferences", func(t *testing.T) {
		prefs := DefaultPreferences()
		if prefs.Username != "Player" {
			t.Errorf("Expected username 'Player', got '%s'", prefs.Username)
		}
		if prefs.MachineColor != board.White {
			t.Errorf("Expected default machine color White")
		}
		if want := engine.DefaultAggressiveness(board.White); prefs.Aggressiveness != want {
			t.Errorf("Expected default aggressiveness %v for White, got %v", want, prefs.Aggressiveness)
		}
		if !prefs.SoundEnabled {
			t.Errorf("Expected sound enabled by default")
		}
	})

	t.Run("NewStats", func(t *testing.T) {
		stats := NewStats()
		if stats.GamesPlayed != 0 {
			t.Errorf("Expected 0 games played")
		}
		if stats.GetWinRate() != 0 {
			t.Errorf("Expected 0 win rate")
		}
	})

	t.Run("WinRate", func(t *testing.T) {
		stats := &Stats{
			GamesPlayed: 10,
			Wins:        5,
			Losses:      3,
			Draws:       2,
		}
		rate := stats.GetWinRate()
		if rate != 50 {
			t.Errorf("Expected 50%% win rate, got %.2f%%", rate)
		}
	})
}

func TestDataPaths(t *testing.T) {
	dataDir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir failed: %v", err)
	}
	if dataDir == "" {
		t.Error("GetDataDir returned empty path")
	}

	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		t.Errorf("Data directory was not created: %s", dataDir)
	}
}

func TestRecordGameUpdatesStreak(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "gobang-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	t.Setenv("XDG_DATA_HOME", tmpDir)

	s, err := NewStorage()
	if err != nil {
		t.Fatalf("NewStorage failed: %v", err)
	}
	defer s.Close()

	for i := 0; i < 3; i++ {
		if err := s.RecordGame(GameResult{HumanColor: board.Black, Won: true}); err != nil {
			t.Fatalf("RecordGame failed: %v", err)
		}
	}
	if err := s.RecordGame(GameResult{HumanColor: board.Black, Won: false}); err != nil {
		t.Fatalf("RecordGame failed: %v", err)
	}

	stats, err := s.LoadStats()
	if err != nil {
		t.Fatalf("LoadStats failed: %v", err)
	}
	if stats.LongestWinStrk != 3 {
		t.Errorf("LongestWinStrk = %d, want 3", stats.LongestWinStrk)
	}
	if stats.CurrentStreak != 0 {
		t.Errorf("CurrentStreak after a loss = %d, want 0", stats.CurrentStreak)
	}
	if stats.WinsAsBlack != 3 {
		t.Errorf("WinsAsBlack = %d, want 3", stats.WinsAsBlack)
	}
}
