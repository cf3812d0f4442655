package game

import (
	"testing"
)

func TestPolicyDeterminism(t *testing.T) {
	policy := DefaultPolicy()
	ctx := Context{Strength: 48, Chips: 350, Bet: 10, HighBet: 60, Pot: 200}
	first := policy.Decide(ctx)
	for i := 0; i < 100; i++ {
		if got := policy.Decide(ctx); got != first {
			t.Fatalf("decision %d = %+v, want %+v", i, got, first)
		}
	}
}

func TestPolicyFoldsWeakHandFacingSignificantBet(t *testing.T) {
	policy := DefaultPolicy()
	d := policy.Decide(Context{Strength: 5, Chips: 100, HighBet: 50})
	if d.Action != Fold {
		t.Errorf("decision = %+v, want fold", d)
	}
}

func TestPolicyRaisesStrongHand(t *testing.T) {
	policy := DefaultPolicy()
	d := policy.Decide(Context{Strength: 78, Chips: 200, HighBet: 10})
	if d.Action != Raise {
		t.Fatalf("decision = %+v, want raise", d)
	}
	// call 10 plus the full raise unit; chips/4 is 50 so no shrink
	if d.Amount != 30 {
		t.Errorf("raise amount = %d, want 30", d.Amount)
	}
}

func TestPolicyRaiseShrinksForShortStack(t *testing.T) {
	policy := DefaultPolicy()
	d := policy.Decide(Context{Strength: 78, Chips: 60, HighBet: 0})
	if d.Action != Raise {
		t.Fatalf("decision = %+v, want raise", d)
	}
	if d.Amount != 15 {
		t.Errorf("raise amount = %d, want chips/4 = 15", d.Amount)
	}
}

func TestPolicyStrongHandCallsSignificantBet(t *testing.T) {
	policy := DefaultPolicy()
	d := policy.Decide(Context{Strength: 78, Chips: 100, HighBet: 50})
	if d.Action != Call || d.Amount != 50 {
		t.Errorf("decision = %+v, want call 50", d)
	}
}

func TestPolicyChecksWhenNothingOwed(t *testing.T) {
	policy := DefaultPolicy()
	d := policy.Decide(Context{Strength: 30, Chips: 100, HighBet: 0})
	if d.Action != Check {
		t.Errorf("decision = %+v, want check", d)
	}
}

func TestPolicyCallsReasonableBet(t *testing.T) {
	policy := DefaultPolicy()
	d := policy.Decide(Context{Strength: 30, Chips: 100, HighBet: 40})
	if d.Action != Call || d.Amount != 40 {
		t.Errorf("decision = %+v, want call 40", d)
	}
}

func TestPolicyCallsExpensiveBetWithMiddlingHand(t *testing.T) {
	policy := DefaultPolicy()
	d := policy.Decide(Context{Strength: 30, Chips: 100, HighBet: 80})
	if d.Action != Call || d.Amount != 80 {
		t.Errorf("decision = %+v, want call 80", d)
	}
}

func TestContextCallAmountClamps(t *testing.T) {
	tests := []struct {
		name string
		ctx  Context
		want int
	}{
		{"nothing owed", Context{Chips: 100, Bet: 20, HighBet: 20}, 0},
		{"already above", Context{Chips: 100, Bet: 30, HighBet: 20}, 0},
		{"partial", Context{Chips: 100, Bet: 10, HighBet: 60}, 50},
		{"capped at stack", Context{Chips: 15, HighBet: 60}, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ctx.CallAmount(); got != tt.want {
				t.Errorf("call amount = %d, want %d", got, tt.want)
			}
		})
	}
}
