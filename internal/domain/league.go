package domain

import (
	"time"

	"github.com/google/uuid"
)

// Rules is immutable per-league policy. Challenges copy the wager out of it
// at creation time.
type Rules struct {
	MaxChallengeDistance     int
	CooldownHoursAfterLoss   int
	MatchWagerAmount         int
	MonthlyMinimumFee        int
	ChallengeExpirationHours int
	InactiveDaysThreshold    int
	GamesPerMatch            int
}

func DefaultRules() Rules {
	return Rules{
		MaxChallengeDistance:     5,
		CooldownHoursAfterLoss:   24,
		MatchWagerAmount:         5,
		MonthlyMinimumFee:        10,
		ChallengeExpirationHours: 48,
		InactiveDaysThreshold:    30,
		GamesPerMatch:            3,
	}
}

// WinsRequired is the majority needed to clinch a match.
// GamesPerMatch is odd (1, 3 or 5), so there is no tie.
func (r Rules) WinsRequired() int {
	return r.GamesPerMatch/2 + 1
}

type League struct {
	ID                 uuid.UUID
	Name               string
	City               string
	CreatedAt          time.Time
	OwnerID            uuid.UUID
	Rules              Rules
	TotalPlayers       int
	ActivePlayers      int
	TotalMatchesPlayed int
	TotalPrizePool     int
}

type CooldownStatus struct {
	OnCooldown     bool
	EndsAt         time.Time
	HoursRemaining int
}
