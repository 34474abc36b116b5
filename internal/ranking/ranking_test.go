package ranking

import (
	"testing"

	"pgregory.net/rapid"
)

func TestSwap(t *testing.T) {
	tests := []struct {
		name       string
		winnerRank int
		loserRank  int
		wantWinner int
		wantLoser  int
	}{
		{
			name:       "upset swaps ranks",
			winnerRank: 5,
			loserRank:  2,
			wantWinner: 2,
			wantLoser:  5,
		},
		{
			name:       "expected result keeps ranks",
			winnerRank: 1,
			loserRank:  5,
			wantWinner: 1,
			wantLoser:  5,
		},
		{
			name:       "second takes the throne",
			winnerRank: 2,
			loserRank:  1,
			wantWinner: 1,
			wantLoser:  2,
		},
		{
			name:       "adjacent expected result",
			winnerRank: 3,
			loserRank:  4,
			wantWinner: 3,
			wantLoser:  4,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			gotWinner, gotLoser := Swap(tt.winnerRank, tt.loserRank)
			if gotWinner != tt.wantWinner || gotLoser != tt.wantLoser {
				t.Errorf("Swap() = (%d, %d), want (%d, %d)",
					gotWinner, gotLoser, tt.wantWinner, tt.wantLoser)
			}
		})
	}
}

func TestSwapProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		winner := rapid.IntRange(1, 1000).Draw(t, "winner")
		loser := rapid.IntRange(1, 1000).Draw(t, "loser")

		newWinner, newLoser := Swap(winner, loser)

		// The pair of rank numbers is preserved, only ownership may change.
		if newWinner+newLoser != winner+loser {
			t.Fatalf("ranks not preserved: (%d, %d) -> (%d, %d)", winner, loser, newWinner, newLoser)
		}
		// The winner never ends up worse ranked than before.
		if newWinner > winner {
			t.Fatalf("winner demoted: %d -> %d", winner, newWinner)
		}
		// After the match the winner holds the better (or equal) rank.
		if Upset(winner, loser) && newWinner != loser {
			t.Fatalf("upset winner got %d, want %d", newWinner, loser)
		}
		if !Upset(winner, loser) && (newWinner != winner || newLoser != loser) {
			t.Fatal("expected result changed ranks")
		}
	})
}
