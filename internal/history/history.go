// Package history records completed rounds and persists them as JSON
// lines.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lox/fivedraw/internal/game"
)

// RoundAction is a single betting decision within a round.
type RoundAction struct {
	Player    string    `json:"player"`
	Action    string    `json:"action"`
	Amount    int       `json:"amount"`
	Pot       int       `json:"pot"`
	Timestamp time.Time `json:"timestamp"`
}

// RoundRecord captures one completed round.
type RoundRecord struct {
	Round    int               `json:"round"`
	Started  time.Time         `json:"started"`
	Ended    time.Time         `json:"ended"`
	Actions  []RoundAction     `json:"actions"`
	Rankings map[string]string `json:"rankings"`
	Winners  []int             `json:"winners"`
	Chips    map[string]int    `json:"chips"`
}

// Recorder subscribes to a game's event bus and accumulates round
// records. It implements game.Observer.
type Recorder struct {
	rounds  []RoundRecord
	current *RoundRecord
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Rounds returns the completed round records.
func (r *Recorder) Rounds() []RoundRecord {
	return r.rounds
}

// HandleEvent accumulates game events into round records.
func (r *Recorder) HandleEvent(e game.Event) {
	switch ev := e.(type) {
	case game.HandDealtEvent:
		if r.current == nil {
			r.current = &RoundRecord{
				Started:  ev.Timestamp(),
				Rankings: map[string]string{},
			}
		}
	case game.HandRankedEvent:
		if r.current != nil {
			r.current.Rankings[ev.Name] = ev.Category.String()
		}
	case game.BetPlacedEvent:
		if r.current != nil {
			r.current.Actions = append(r.current.Actions, RoundAction{
				Player:    ev.Name,
				Action:    ev.Action.String(),
				Amount:    ev.Amount,
				Pot:       ev.Pot,
				Timestamp: ev.Timestamp(),
			})
		}
	case game.RoundEndedEvent:
		if r.current != nil {
			r.current.Round = ev.Round
			r.current.Ended = ev.Timestamp()
			r.current.Winners = ev.Winners
			r.current.Chips = ev.Chips
			r.rounds = append(r.rounds, *r.current)
			r.current = nil
		}
	}
}

// SaveToFile writes the recorded rounds to path as JSON lines, one
// round per line, creating parent directories as needed.
func (r *Recorder) SaveToFile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create history directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create history file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	for _, round := range r.rounds {
		if err := enc.Encode(round); err != nil {
			return fmt.Errorf("failed to encode round %d: %w", round.Round, err)
		}
	}
	return nil
}
