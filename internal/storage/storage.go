package storage

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/milnv/gobang/internal/board"
	"github.com/milnv/gobang/internal/engine"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyStats       = "stats"
	keyFirstLaunch = "first_launch"
)

// Preferences stores user settings that survive across games.
type Preferences struct {
	Username       string      `json:"username"`
	MachineColor   board.Color `json:"machine_color"`
	Aggressiveness float64     `json:"aggressiveness"`
	// DepthOverride is stored and loaded with the other preferences.
	// Neither the engine nor the CLI reads it; the main-search depth
	// always comes from the engine's stone-count depth ladder.
	DepthOverride int       `json:"depth_override"`
	SoundEnabled  bool      `json:"sound_enabled"`
	LastPlayed    time.Time `json:"last_played"`
}

// DefaultPreferences returns the preferences used before anything has
// been persisted. Aggressiveness defaults by machine color per
// spec.md §3, via the same helper the engine itself uses.
func DefaultPreferences() *Preferences {
	machineColor := board.White
	return &Preferences{
		Username:       "Player",
		MachineColor:   machineColor,
		Aggressiveness: engine.DefaultAggressiveness(machineColor),
		DepthOverride:  0,
		SoundEnabled:   true,
		LastPlayed:     time.Now(),
	}
}

// Stats stores cumulative game statistics, broken down by which color
// the human played.
type Stats struct {
	GamesPlayed     int            `json:"games_played"`
	Wins            int            `json:"wins"`
	Losses          int            `json:"losses"`
	Draws           int            `json:"draws"`
	WinsAsBlack     int            `json:"wins_as_black"`
	WinsAsWhite     int            `json:"wins_as_white"`
	TotalPlayTime   time.Duration  `json:"total_play_time"`
	LongestWinStrk  int            `json:"longest_win_streak"`
	CurrentStreak   int            `json:"current_streak"`
	MovesByOutcome  map[string]int `json:"moves_by_outcome"`
}

// NewStats returns empty game statistics.
func NewStats() *Stats {
	return &Stats{
		MovesByOutcome: make(map[string]int),
	}
}

// GameResult is a single completed game, ready to fold into Stats.
type GameResult struct {
	HumanColor board.Color
	Won        bool
	Draw       bool
	Moves      int
	Duration   time.Duration
}

// GetWinRate returns the win rate as a percentage (0-100).
func (s *Stats) GetWinRate() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.GamesPlayed) * 100
}

// Storage wraps BadgerDB for persistent storage of preferences and
// statistics. Grounded on the teacher's storage.go, with chess game
// modes/difficulty/eval-mode fields replaced by Gomoku's
// aggressiveness/machine-color/depth-override fields.
type Storage struct {
	db *badger.DB
}

// NewStorage opens (creating if necessary) the BadgerDB database under
// the platform data directory.
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Storage{db: db}, nil
}

// Close closes the database.
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// IsFirstLaunch returns true if this is the first launch.
func (s *Storage) IsFirstLaunch() (bool, error) {
	firstLaunch := true

	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(keyFirstLaunch))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		firstLaunch = false
		return nil
	})

	return firstLaunch, err
}

// MarkFirstLaunchComplete marks that first launch setup is complete.
func (s *Storage) MarkFirstLaunchComplete() error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyFirstLaunch), []byte("done"))
	})
}

// SavePreferences persists prefs, stamping LastPlayed.
func (s *Storage) SavePreferences(prefs *Preferences) error {
	prefs.LastPlayed = time.Now()

	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPreferences), data)
	})
}

// LoadPreferences loads persisted preferences, or defaults if none
// have been saved yet.
func (s *Storage) LoadPreferences() (*Preferences, error) {
	prefs := DefaultPreferences()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPreferences))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, prefs)
		})
	})

	return prefs, err
}

// SaveStats persists stats.
func (s *Storage) SaveStats(stats *Stats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStats), data)
	})
}

// LoadStats loads persisted statistics, or an empty Stats if none
// have been saved yet.
func (s *Storage) LoadStats() (*Stats, error) {
	stats := NewStats()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, stats)
		})
	})

	return stats, err
}

// RecordGame folds a completed game into the persisted statistics.
func (s *Storage) RecordGame(result GameResult) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	stats.GamesPlayed++
	stats.TotalPlayTime += result.Duration

	switch {
	case result.Draw:
		stats.Draws++
		stats.CurrentStreak = 0
	case result.Won:
		stats.Wins++
		stats.CurrentStreak++
		if stats.CurrentStreak > stats.LongestWinStrk {
			stats.LongestWinStrk = stats.CurrentStreak
		}
		if result.HumanColor == board.Black {
			stats.WinsAsBlack++
		} else {
			stats.WinsAsWhite++
		}
	default:
		stats.Losses++
		stats.CurrentStreak = 0
	}

	return s.SaveStats(stats)
}
