package storage

import (
	"errors"

	"poolleague/internal/domain"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a referenced id does not exist. It is a
// different failure kind from rule validation errors, which live in the
// service layer.
var ErrNotFound = errors.New("not found")

type PlayerStorage interface {
	ListPlayers() ([]domain.Player, error)
	GetPlayer(uuid.UUID) (domain.Player, error)
	GetPlayerByName(string) (domain.Player, error)
	AddPlayer(domain.Player) (domain.Player, error)
	UpdatePlayer(domain.Player) error
}

type ChallengeStorage interface {
	ListChallenges() ([]domain.Challenge, error)
	GetChallenge(uuid.UUID) (domain.Challenge, error)
	AddChallenge(domain.Challenge) (domain.Challenge, error)
	UpdateChallenge(domain.Challenge) error
}

type MatchStorage interface {
	ListMatches() ([]domain.Match, error)
	GetMatch(uuid.UUID) (domain.Match, error)
	AddMatch(domain.Match) (domain.Match, error)
	UpdateMatch(domain.Match) error
}
