package sqlite

import (
	"database/sql"
	"time"

	"poolleague/internal/domain"
	"poolleague/internal/normalize"

	"github.com/google/uuid"
)

type scanner interface {
	Scan(dest ...any) error
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

func nullUUID(id uuid.UUID) sql.NullString {
	return sql.NullString{String: id.String(), Valid: id != uuid.Nil}
}

func timeOf(t sql.NullTime) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

func uuidOf(s sql.NullString) (uuid.UUID, error) {
	if !s.Valid {
		return uuid.Nil, nil
	}
	return uuid.Parse(s.String)
}

func playerArgs(p domain.Player) []any {
	return []any{
		p.ID.String(), p.Name, normalize.Name(p.Name), p.Nickname, p.Avatar,
		p.Rank, p.JoinedAt, string(p.Status), nullTime(p.LastMatchAt),
		p.MonthlyFeePaid, p.Stats.MatchesPlayed, p.Stats.MatchesWon,
		p.Stats.MatchesLost, p.Stats.ChallengesIssued,
		p.Stats.ChallengesReceived, p.Stats.WinStreak,
		p.Stats.BestWinStreak, p.Stats.TotalWagered, p.Stats.TotalWon,
		p.Stats.TotalLost,
	}
}

func scanPlayer(row scanner) (domain.Player, error) {
	var (
		p           domain.Player
		id          string
		status      string
		lastMatchAt sql.NullTime
	)
	err := row.Scan(
		&id, &p.Name, &p.Nickname, &p.Avatar, &p.Rank, &p.JoinedAt,
		&status, &lastMatchAt, &p.MonthlyFeePaid, &p.Stats.MatchesPlayed,
		&p.Stats.MatchesWon, &p.Stats.MatchesLost,
		&p.Stats.ChallengesIssued, &p.Stats.ChallengesReceived,
		&p.Stats.WinStreak, &p.Stats.BestWinStreak, &p.Stats.TotalWagered,
		&p.Stats.TotalWon, &p.Stats.TotalLost,
	)
	if err != nil {
		return domain.Player{}, err
	}
	p.ID, err = uuid.Parse(id)
	if err != nil {
		return domain.Player{}, err
	}
	p.Status = domain.PlayerStatus(status)
	p.LastMatchAt = timeOf(lastMatchAt)
	return p, nil
}

func challengeArgs(c domain.Challenge) []any {
	return []any{
		c.ID.String(), c.ChallengerID.String(), c.ChallengerRank,
		c.OpponentID.String(), c.OpponentRank, string(c.Status),
		c.CreatedAt, c.ExpiresAt, nullTime(c.AcceptedAt),
		nullTime(c.CompletedAt), nullUUID(c.MatchID), c.WagerAmount,
	}
}

func scanChallenge(row scanner) (domain.Challenge, error) {
	var (
		c            domain.Challenge
		id           string
		challengerID string
		opponentID   string
		status       string
		acceptedAt   sql.NullTime
		completedAt  sql.NullTime
		matchID      sql.NullString
	)
	err := row.Scan(
		&id, &challengerID, &c.ChallengerRank, &opponentID,
		&c.OpponentRank, &status, &c.CreatedAt, &c.ExpiresAt, &acceptedAt,
		&completedAt, &matchID, &c.WagerAmount,
	)
	if err != nil {
		return domain.Challenge{}, err
	}
	if c.ID, err = uuid.Parse(id); err != nil {
		return domain.Challenge{}, err
	}
	if c.ChallengerID, err = uuid.Parse(challengerID); err != nil {
		return domain.Challenge{}, err
	}
	if c.OpponentID, err = uuid.Parse(opponentID); err != nil {
		return domain.Challenge{}, err
	}
	if c.MatchID, err = uuidOf(matchID); err != nil {
		return domain.Challenge{}, err
	}
	c.Status = domain.ChallengeStatus(status)
	c.AcceptedAt = timeOf(acceptedAt)
	c.CompletedAt = timeOf(completedAt)
	return c, nil
}

func matchArgs(m domain.Match) []any {
	return []any{
		m.ID.String(), m.ChallengeID.String(), m.WinnerID.String(),
		m.LoserID.String(), m.WinnerRank, m.LoserRank, m.WinnerScore,
		m.LoserScore, m.GamesPlayed, m.PlayedAt, m.Venue,
		m.VerifiedBy.String(), nullUUID(m.ConfirmedBy), m.Disputed,
		m.DisputeReason, string(m.PaymentStatus),
	}
}

func scanMatch(row scanner) (domain.Match, error) {
	var (
		m             domain.Match
		id            string
		challengeID   string
		winnerID      string
		loserID       string
		verifiedBy    string
		confirmedBy   sql.NullString
		paymentStatus string
	)
	err := row.Scan(
		&id, &challengeID, &winnerID, &loserID, &m.WinnerRank,
		&m.LoserRank, &m.WinnerScore, &m.LoserScore, &m.GamesPlayed,
		&m.PlayedAt, &m.Venue, &verifiedBy, &confirmedBy, &m.Disputed,
		&m.DisputeReason, &paymentStatus,
	)
	if err != nil {
		return domain.Match{}, err
	}
	if m.ID, err = uuid.Parse(id); err != nil {
		return domain.Match{}, err
	}
	if m.ChallengeID, err = uuid.Parse(challengeID); err != nil {
		return domain.Match{}, err
	}
	if m.WinnerID, err = uuid.Parse(winnerID); err != nil {
		return domain.Match{}, err
	}
	if m.LoserID, err = uuid.Parse(loserID); err != nil {
		return domain.Match{}, err
	}
	if m.VerifiedBy, err = uuid.Parse(verifiedBy); err != nil {
		return domain.Match{}, err
	}
	if m.ConfirmedBy, err = uuidOf(confirmedBy); err != nil {
		return domain.Match{}, err
	}
	m.PaymentStatus = domain.PaymentStatus(paymentStatus)
	return m, nil
}
