package domain

import (
	"time"

	"github.com/google/uuid"
)

type PlayerStatus string

const (
	StatusActive    PlayerStatus = "active"
	StatusInactive  PlayerStatus = "inactive"
	StatusSuspended PlayerStatus = "suspended"
)

// Player holds a ladder position. Rank 1 is the King.
type Player struct {
	ID             uuid.UUID
	Name           string
	Nickname       string
	Avatar         string
	Rank           int
	JoinedAt       time.Time
	Status         PlayerStatus
	LastMatchAt    time.Time
	MonthlyFeePaid bool
	Stats          PlayerStats
}

type PlayerStats struct {
	MatchesPlayed      int
	MatchesWon         int
	MatchesLost        int
	ChallengesIssued   int
	ChallengesReceived int
	WinStreak          int
	BestWinStreak      int
	TotalWagered       int
	TotalWon           int
	TotalLost          int
}

// DisplayName prefers the nickname when the player has one.
func (p Player) DisplayName() string {
	if p.Nickname != "" {
		return p.Nickname
	}
	return p.Name
}
