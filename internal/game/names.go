package game

import "math/rand"

// aiNames is the pool of automated player names. Names are drawn
// without replacement per game.
var aiNames = []string{
	"Nick", "Alex", "Emily", "Chris", "Jordan", "Taylor",
	"Morgan", "Casey", "Riley", "Avery", "Quinn", "Dakota",
}

// PickNames draws n distinct automated player names. When the pool runs
// out, names get a numeric suffix.
func PickNames(rng *rand.Rand, n int) []string {
	pool := make([]string, len(aiNames))
	copy(pool, aiNames)
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	names := make([]string, n)
	for i := range names {
		if i < len(pool) {
			names[i] = pool[i]
		} else {
			names[i] = pool[i%len(pool)] + " II"
		}
	}
	return names
}
