package validation

import (
	"fmt"
	"time"

	"poolleague/internal/domain"
)

// Result of a challenge legality check. Reason is set whenever
// CanChallenge is false.
type Result struct {
	Valid        bool
	CanChallenge bool
	Reason       string
}

func ok() Result {
	return Result{Valid: true, CanChallenge: true}
}

func invalid(reason string) Result {
	return Result{Reason: reason}
}

// CanChallenge decides whether a player at challengerRank may challenge a
// player at opponentRank. First matching rule wins:
// self, distance, King protection.
func CanChallenge(challengerRank int, opponentRank int, rules domain.Rules) Result {
	distance := challengerRank - opponentRank
	if distance < 0 {
		distance = -distance
	}
	if distance == 0 {
		return invalid("cannot challenge yourself")
	}
	if distance > rules.MaxChallengeDistance {
		return invalid(fmt.Sprintf("can only challenge within %d spots", rules.MaxChallengeDistance))
	}
	// Rank 1 is protected: only the immediate second may take the throne.
	if opponentRank == 1 && challengerRank != 2 {
		return invalid("only #2 can challenge the King")
	}
	return ok()
}

// ValidTargets filters players the given rank may challenge, preserving the
// order of the input slice.
func ValidTargets(playerRank int, players []domain.Player, rules domain.Rules) []domain.Player {
	var targets []domain.Player
	for _, p := range players {
		if p.Rank == playerRank {
			continue
		}
		if CanChallenge(playerRank, p.Rank, rules).CanChallenge {
			targets = append(targets, p)
		}
	}
	return targets
}

// Cooldown reports whether a player who last lost at lastLossAt may issue
// challenges at the given time. A zero lastLossAt means no prior loss.
// Remaining hours are rounded up so a partial hour still counts.
func Cooldown(lastLossAt time.Time, rules domain.Rules, now time.Time) domain.CooldownStatus {
	if lastLossAt.IsZero() {
		return domain.CooldownStatus{}
	}
	endsAt := lastLossAt.Add(time.Duration(rules.CooldownHoursAfterLoss) * time.Hour)
	if !now.Before(endsAt) {
		return domain.CooldownStatus{}
	}
	remaining := endsAt.Sub(now)
	hours := int(remaining / time.Hour)
	if remaining%time.Hour != 0 {
		hours++
	}
	return domain.CooldownStatus{
		OnCooldown:     true,
		EndsAt:         endsAt,
		HoursRemaining: hours,
	}
}
