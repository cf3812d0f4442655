package history

import (
	"bufio"
	"encoding/json"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/fivedraw/internal/game"
)

func TestRecorderBuildsRoundRecord(t *testing.T) {
	rec := NewRecorder()
	at := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	rec.HandleEvent(game.HandDealtEvent{
		BaseEvent: game.BaseEvent{Time: at},
		Seat:      0, Name: "a",
	})
	rec.HandleEvent(game.BetPlacedEvent{
		BaseEvent: game.BaseEvent{Time: at},
		Seat:      0, Name: "a",
		Action: game.Raise, Amount: 20, Pot: 20,
	})
	rec.HandleEvent(game.RoundEndedEvent{
		BaseEvent: game.BaseEvent{Time: at.Add(time.Minute)},
		Round:     1,
		Winners:   []int{0},
		Chips:     map[string]int{"a": 1020, "b": 980},
	})

	rounds := rec.Rounds()
	require.Len(t, rounds, 1)
	r := rounds[0]
	assert.Equal(t, 1, r.Round)
	assert.Equal(t, at, r.Started)
	assert.Equal(t, at.Add(time.Minute), r.Ended)
	require.Len(t, r.Actions, 1)
	assert.Equal(t, "raise", r.Actions[0].Action)
	assert.Equal(t, 20, r.Actions[0].Amount)
	assert.Equal(t, []int{0}, r.Winners)
	assert.Equal(t, 1020, r.Chips["a"])
}

func TestRecorderIgnoresEventsOutsideRounds(t *testing.T) {
	rec := NewRecorder()
	rec.HandleEvent(game.BetPlacedEvent{Name: "stray"})
	rec.HandleEvent(game.RoundEndedEvent{Round: 1})
	assert.Empty(t, rec.Rounds())
}

func TestRecorderFollowsGame(t *testing.T) {
	g := game.New(game.Options{
		StartingChips: 1000,
		Clock:         quartz.NewMock(t),
		Rand:          rand.New(rand.NewSource(1)),
	})
	rec := NewRecorder()
	g.Subscribe(rec)
	g.AddPlayer("a", false)
	g.AddPlayer("b", false)
	g.AddPlayer("c", false)

	require.NoError(t, g.Run(3))
	rounds := rec.Rounds()
	require.NotEmpty(t, rounds)
	for i, r := range rounds {
		assert.Equal(t, i+1, r.Round)
		assert.NotEmpty(t, r.Winners)
		assert.Len(t, r.Chips, 3)
	}
}

func TestSaveToFileWritesJSONLines(t *testing.T) {
	rec := NewRecorder()
	at := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	for round := 1; round <= 2; round++ {
		rec.HandleEvent(game.HandDealtEvent{BaseEvent: game.BaseEvent{Time: at}})
		rec.HandleEvent(game.RoundEndedEvent{
			BaseEvent: game.BaseEvent{Time: at},
			Round:     round,
			Winners:   []int{round - 1},
			Chips:     map[string]int{"a": 1000},
		})
	}

	path := filepath.Join(t.TempDir(), "history", "rounds.jsonl")
	require.NoError(t, rec.SaveToFile(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var lines int
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var r RoundRecord
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &r))
		lines++
		assert.Equal(t, lines, r.Round)
	}
	require.NoError(t, scanner.Err())
	assert.Equal(t, 2, lines)
}
