package simulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunValidatesOptions(t *testing.T) {
	_, err := Run(Options{Games: 0, Players: 4})
	require.Error(t, err)

	_, err = Run(Options{Games: 10, Players: 1})
	require.Error(t, err)
}

func TestRunAggregatesAllGames(t *testing.T) {
	result, err := Run(Options{
		Games:   20,
		Rounds:  3,
		Players: 4,
		Seed:    42,
		Workers: 4,
	})
	require.NoError(t, err)

	assert.Equal(t, 20, result.Games)
	assert.Greater(t, result.Rounds, 0)
	require.Len(t, result.WinsBySeat, 4)
	require.Len(t, result.ChipsBySeat, 4)

	wins := result.Ties
	for _, w := range result.WinsBySeat {
		wins += w
	}
	assert.Equal(t, 20, wins, "every game ends in a win or a tie")
}

func TestRunConservesChipsAcrossGames(t *testing.T) {
	const games, players, chips = 10, 3, 500
	result, err := Run(Options{
		Games:         games,
		Rounds:        4,
		Players:       players,
		StartingChips: chips,
		Seed:          7,
		Workers:       2,
	})
	require.NoError(t, err)

	total := 0
	for _, c := range result.ChipsBySeat {
		total += c
	}
	assert.Equal(t, games*players*chips, total)
}

func TestRunSingleWorkerIsDeterministic(t *testing.T) {
	opts := Options{
		Games:   5,
		Rounds:  3,
		Players: 3,
		Seed:    99,
		Workers: 1,
	}
	a, err := Run(opts)
	require.NoError(t, err)
	b, err := Run(opts)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
