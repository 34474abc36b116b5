package domain

import (
	"time"

	"github.com/google/uuid"
)

type ChallengeStatus string

// Transitions are forward only: pending -> accepted -> completed.
// Declined, expired and cancelled are terminal.
const (
	ChallengePending   ChallengeStatus = "pending"
	ChallengeAccepted  ChallengeStatus = "accepted"
	ChallengeCompleted ChallengeStatus = "completed"
	ChallengeDeclined  ChallengeStatus = "declined"
	ChallengeExpired   ChallengeStatus = "expired"
	ChallengeCancelled ChallengeStatus = "cancelled"
)

// Challenge snapshots both ranks and the wager at creation time so later
// rule changes or rank swaps don't rewrite history.
type Challenge struct {
	ID             uuid.UUID
	ChallengerID   uuid.UUID
	ChallengerRank int
	OpponentID     uuid.UUID
	OpponentRank   int
	Status         ChallengeStatus
	CreatedAt      time.Time
	ExpiresAt      time.Time
	AcceptedAt     time.Time
	CompletedAt    time.Time
	MatchID        uuid.UUID
	WagerAmount    int
}

func (c Challenge) Involves(playerID uuid.UUID) bool {
	return c.ChallengerID == playerID || c.OpponentID == playerID
}

func (c Challenge) ExpiredAt(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
