package validation

import (
	"testing"
	"time"

	"poolleague/internal/domain"
)

func TestCanChallenge(t *testing.T) {
	rules := domain.DefaultRules()
	tests := []struct {
		name           string
		challengerRank int
		opponentRank   int
		want           bool
		wantReason     string
	}{
		{
			name:           "self challenge",
			challengerRank: 3,
			opponentRank:   3,
			want:           false,
			wantReason:     "cannot challenge yourself",
		},
		{
			name:           "too far down",
			challengerRank: 2,
			opponentRank:   8,
			want:           false,
			wantReason:     "can only challenge within 5 spots",
		},
		{
			name:           "too far up",
			challengerRank: 10,
			opponentRank:   4,
			want:           false,
			wantReason:     "can only challenge within 5 spots",
		},
		{
			name:           "second may challenge the King",
			challengerRank: 2,
			opponentRank:   1,
			want:           true,
		},
		{
			name:           "third may not challenge the King",
			challengerRank: 3,
			opponentRank:   1,
			want:           false,
			wantReason:     "only #2 can challenge the King",
		},
		{
			name:           "one spot up",
			challengerRank: 5,
			opponentRank:   4,
			want:           true,
		},
		{
			name:           "challenge downwards",
			challengerRank: 4,
			opponentRank:   7,
			want:           true,
		},
		{
			name:           "exactly max distance",
			challengerRank: 7,
			opponentRank:   2,
			want:           true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := CanChallenge(tt.challengerRank, tt.opponentRank, rules)
			if got.CanChallenge != tt.want {
				t.Errorf("CanChallenge() = %v, want %v", got.CanChallenge, tt.want)
			}
			if got.Valid != tt.want {
				t.Errorf("Valid = %v, want %v", got.Valid, tt.want)
			}
			if got.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", got.Reason, tt.wantReason)
			}
		})
	}
}

func TestCooldown(t *testing.T) {
	rules := domain.DefaultRules()
	now := time.Date(2024, 2, 21, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		lastLossAt    time.Time
		wantOn        bool
		wantRemaining int
	}{
		{
			name: "never lost",
		},
		{
			name:          "one hour left",
			lastLossAt:    now.Add(-23 * time.Hour),
			wantOn:        true,
			wantRemaining: 1,
		},
		{
			name:       "cooldown passed",
			lastLossAt: now.Add(-25 * time.Hour),
		},
		{
			name:       "exactly at window end",
			lastLossAt: now.Add(-24 * time.Hour),
		},
		{
			name:          "partial hour rounds up",
			lastLossAt:    now.Add(-23*time.Hour - 30*time.Minute),
			wantOn:        true,
			wantRemaining: 1,
		},
		{
			name:          "just lost",
			lastLossAt:    now,
			wantOn:        true,
			wantRemaining: 24,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Cooldown(tt.lastLossAt, rules, now)
			if got.OnCooldown != tt.wantOn {
				t.Errorf("OnCooldown = %v, want %v", got.OnCooldown, tt.wantOn)
			}
			if got.HoursRemaining != tt.wantRemaining {
				t.Errorf("HoursRemaining = %d, want %d", got.HoursRemaining, tt.wantRemaining)
			}
			if tt.wantOn {
				wantEnd := tt.lastLossAt.Add(24 * time.Hour)
				if !got.EndsAt.Equal(wantEnd) {
					t.Errorf("EndsAt = %v, want %v", got.EndsAt, wantEnd)
				}
			}
		})
	}
}

func TestValidTargets(t *testing.T) {
	rules := domain.DefaultRules()
	players := []domain.Player{
		{Name: "king", Rank: 1},
		{Name: "second", Rank: 2},
		{Name: "third", Rank: 3},
		{Name: "fourth", Rank: 4},
		{Name: "ninth", Rank: 9},
	}
	got := ValidTargets(3, players, rules)
	want := []string{"second", "fourth"}
	if len(got) != len(want) {
		t.Fatalf("got %d targets, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Name != want[i] {
			t.Errorf("target[%d] = %q, want %q", i, got[i].Name, want[i])
		}
	}
}
