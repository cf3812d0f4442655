// Package game implements the five-card-draw round engine: players,
// betting passes, the automated player policy, winner determination and
// pot distribution, driven through the phase protocol in internal/phase.
//
// The engine is single-threaded. One Game owns all round state; human
// decisions arrive through the blocking BetInput collaborator and state
// changes are broadcast to observers through the EventBus, which is
// notify-only.
package game
