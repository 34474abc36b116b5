package web

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrMissingOpponent  = errors.New("opponent id is required")
	ErrMissingChallenge = errors.New("challenge id is required")
	ErrMissingWinner    = errors.New("winner id is required")
	ErrBadScore         = errors.New("winner score must be greater than loser score")
	ErrMissingName      = errors.New("player name is required")
)

type createChallengeRequest struct {
	OpponentID uuid.UUID `json:"opponentId"`
}

func (r createChallengeRequest) Validate() error {
	if r.OpponentID == uuid.Nil {
		return ErrMissingOpponent
	}
	return nil
}

type reportMatchRequest struct {
	ChallengeID uuid.UUID `json:"challengeId"`
	WinnerID    uuid.UUID `json:"winnerId"`
	WinnerScore int       `json:"winnerScore"`
	LoserScore  int       `json:"loserScore"`
}

func (r reportMatchRequest) Validate() error {
	var err error
	if r.ChallengeID == uuid.Nil {
		err = errors.Join(err, ErrMissingChallenge)
	}
	if r.WinnerID == uuid.Nil {
		err = errors.Join(err, ErrMissingWinner)
	}
	if r.LoserScore < 0 || r.WinnerScore <= r.LoserScore {
		err = errors.Join(err, ErrBadScore)
	}
	return err
}

type createPlayerRequest struct {
	Name     string `json:"name"`
	Nickname string `json:"nickname"`
}

func (r createPlayerRequest) Validate() error {
	if r.Name == "" {
		return ErrMissingName
	}
	return nil
}

type disputeMatchRequest struct {
	Reason string `json:"reason"`
}

type setStatusRequest struct {
	Status string `json:"status"`
}
