package systems

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	cfg "github.com/automoto/lostpath/config"
	"github.com/automoto/lostpath/game"
	"github.com/quasilyte/gdata"
)

const (
	scoresKey   = "scores"
	settingsKey = "settings"
)

// ErrCorruptScores is returned by ListScores when the saved list cannot be
// decoded.
var ErrCorruptScores = errors.New("corrupt score list")

// ItemStore is the key/value surface of a gdata manager.
type ItemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Muted bool `json:"muted"`
}

// Store persists the high score list and settings as JSON items.
type Store struct {
	items ItemStore
	limit int
}

// OpenStore opens the gdata storage for appName.
func OpenStore(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open persistence: %w", err)
	}
	return NewStore(m), nil
}

// NewStore wraps items, keeping at most cfg.Session.HighScoreLimit scores.
func NewStore(items ItemStore) *Store {
	return &Store{items: items, limit: cfg.Session.HighScoreLimit}
}

// RecordScore inserts the score into the list, which stays ordered by
// score descending. Ties keep their recording order. A corrupt saved list
// is replaced by a fresh one.
func (s *Store) RecordScore(score, level int, at time.Time) error {
	scores, err := s.ListScores()
	if errors.Is(err, ErrCorruptScores) {
		log.Printf("Warning: discarding saved scores: %v", err)
		scores = nil
	} else if err != nil {
		return err
	}
	scores = append(scores, game.ScoreEntry{Score: score, Level: level, At: at})
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	if len(scores) > s.limit {
		scores = scores[:s.limit]
	}

	data, err := json.Marshal(scores)
	if err != nil {
		return fmt.Errorf("encode scores: %w", err)
	}
	if err := s.items.SaveItem(scoresKey, data); err != nil {
		return fmt.Errorf("save scores: %w", err)
	}
	return nil
}

// ListScores returns the saved list, best first. No saved list is an empty
// list.
func (s *Store) ListScores() ([]game.ScoreEntry, error) {
	data, err := s.items.LoadItem(scoresKey)
	if err != nil {
		return nil, fmt.Errorf("load scores: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var scores []game.ScoreEntry
	if err := json.Unmarshal(data, &scores); err != nil {
		return nil, fmt.Errorf("parse scores: %w: %w", ErrCorruptScores, err)
	}
	return scores, nil
}

// LoadSettings returns the saved settings, or the zero value when none
// were saved.
func (s *Store) LoadSettings() (SavedSettings, error) {
	var settings SavedSettings
	data, err := s.items.LoadItem(settingsKey)
	if err != nil {
		return settings, fmt.Errorf("load settings: %w", err)
	}
	if len(data) == 0 {
		return settings, nil
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("parse settings: %w", err)
	}
	return settings, nil
}

// SaveSettings saves settings to disk
func (s *Store) SaveSettings(settings SavedSettings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := s.items.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
