package domain

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentComplete PaymentStatus = "complete"
)

// Match is immutable after creation except for confirmation, dispute and
// payment fields.
type Match struct {
	ID            uuid.UUID
	ChallengeID   uuid.UUID
	WinnerID      uuid.UUID
	LoserID       uuid.UUID
	WinnerRank    int
	LoserRank     int
	WinnerScore   int
	LoserScore    int
	GamesPlayed   int
	PlayedAt      time.Time
	Venue         string
	VerifiedBy    uuid.UUID
	ConfirmedBy   uuid.UUID
	Disputed      bool
	DisputeReason string
	PaymentStatus PaymentStatus
}
