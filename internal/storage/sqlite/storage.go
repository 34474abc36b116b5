package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"poolleague/internal/domain"
	"poolleague/internal/normalize"
	"poolleague/internal/storage"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Storage persists league state in sqlite. Mutations here are
// per-statement; the service layer serializes callers, so cross-statement
// transactions are not taken.
type Storage struct {
	db *sql.DB
}

var _ storage.PlayerStorage = (*Storage)(nil)
var _ storage.ChallengeStorage = (*Storage)(nil)
var _ storage.MatchStorage = (*Storage)(nil)

func New(path string) (*Storage, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?cache=shared", path))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		return nil, err
	}
	return &Storage{db: db}, nil
}

func (s *Storage) DB() *sql.DB {
	return s.db
}

func (s *Storage) Close() error {
	return s.db.Close()
}

const playerColumns = `id, name, nickname, avatar, rank, joined_at, status,
	last_match_at, monthly_fee_paid, matches_played, matches_won,
	matches_lost, challenges_issued, challenges_received, win_streak,
	best_win_streak, total_wagered, total_won, total_lost`

func (s *Storage) ListPlayers() ([]domain.Player, error) {
	rows, err := s.db.Query(`SELECT ` + playerColumns + ` FROM players ORDER BY rank`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var players []domain.Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

func (s *Storage) GetPlayer(id uuid.UUID) (domain.Player, error) {
	row := s.db.QueryRow(`SELECT `+playerColumns+` FROM players WHERE id = ?`, id.String())
	return getPlayer(row)
}

func (s *Storage) GetPlayerByName(name string) (domain.Player, error) {
	row := s.db.QueryRow(`SELECT `+playerColumns+` FROM players WHERE normalized_name = ?`, normalize.Name(name))
	return getPlayer(row)
}

func getPlayer(row *sql.Row) (domain.Player, error) {
	p, err := scanPlayer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Player{}, storage.ErrNotFound
	}
	if err != nil {
		return domain.Player{}, err
	}
	return p, nil
}

func (s *Storage) AddPlayer(p domain.Player) (domain.Player, error) {
	_, err := s.db.Exec(`
		INSERT INTO players (
			id, name, normalized_name, nickname, avatar, rank, joined_at,
			status, last_match_at, monthly_fee_paid, matches_played,
			matches_won, matches_lost, challenges_issued,
			challenges_received, win_streak, best_win_streak,
			total_wagered, total_won, total_lost
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		playerArgs(p)...)
	if err != nil {
		return domain.Player{}, err
	}
	return p, nil
}

func (s *Storage) UpdatePlayer(p domain.Player) error {
	args := playerArgs(p)[1:]
	args = append(args, p.ID.String())
	res, err := s.db.Exec(`
		UPDATE players SET
			name = ?, normalized_name = ?, nickname = ?, avatar = ?,
			rank = ?, joined_at = ?, status = ?, last_match_at = ?,
			monthly_fee_paid = ?, matches_played = ?, matches_won = ?,
			matches_lost = ?, challenges_issued = ?,
			challenges_received = ?, win_streak = ?, best_win_streak = ?,
			total_wagered = ?, total_won = ?, total_lost = ?
		WHERE id = ?`, args...)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

const challengeColumns = `id, challenger_id, challenger_rank, opponent_id,
	opponent_rank, status, created_at, expires_at, accepted_at,
	completed_at, match_id, wager_amount`

func (s *Storage) ListChallenges() ([]domain.Challenge, error) {
	rows, err := s.db.Query(`SELECT ` + challengeColumns + ` FROM challenges ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var challenges []domain.Challenge
	for rows.Next() {
		c, err := scanChallenge(rows)
		if err != nil {
			return nil, err
		}
		challenges = append(challenges, c)
	}
	return challenges, rows.Err()
}

func (s *Storage) GetChallenge(id uuid.UUID) (domain.Challenge, error) {
	row := s.db.QueryRow(`SELECT `+challengeColumns+` FROM challenges WHERE id = ?`, id.String())
	c, err := scanChallenge(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Challenge{}, storage.ErrNotFound
	}
	if err != nil {
		return domain.Challenge{}, err
	}
	return c, nil
}

func (s *Storage) AddChallenge(c domain.Challenge) (domain.Challenge, error) {
	_, err := s.db.Exec(`
		INSERT INTO challenges (
			id, challenger_id, challenger_rank, opponent_id, opponent_rank,
			status, created_at, expires_at, accepted_at, completed_at,
			match_id, wager_amount
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		challengeArgs(c)...)
	if err != nil {
		return domain.Challenge{}, err
	}
	return c, nil
}

func (s *Storage) UpdateChallenge(c domain.Challenge) error {
	args := challengeArgs(c)[1:]
	args = append(args, c.ID.String())
	res, err := s.db.Exec(`
		UPDATE challenges SET
			challenger_id = ?, challenger_rank = ?, opponent_id = ?,
			opponent_rank = ?, status = ?, created_at = ?, expires_at = ?,
			accepted_at = ?, completed_at = ?, match_id = ?,
			wager_amount = ?
		WHERE id = ?`, args...)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

const matchColumns = `id, challenge_id, winner_id, loser_id, winner_rank,
	loser_rank, winner_score, loser_score, games_played, played_at, venue,
	verified_by, confirmed_by, disputed, dispute_reason, payment_status`

func (s *Storage) ListMatches() ([]domain.Match, error) {
	rows, err := s.db.Query(`SELECT ` + matchColumns + ` FROM matches ORDER BY played_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []domain.Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

func (s *Storage) GetMatch(id uuid.UUID) (domain.Match, error) {
	row := s.db.QueryRow(`SELECT `+matchColumns+` FROM matches WHERE id = ?`, id.String())
	m, err := scanMatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Match{}, storage.ErrNotFound
	}
	if err != nil {
		return domain.Match{}, err
	}
	return m, nil
}

func (s *Storage) AddMatch(m domain.Match) (domain.Match, error) {
	_, err := s.db.Exec(`
		INSERT INTO matches (
			id, challenge_id, winner_id, loser_id, winner_rank, loser_rank,
			winner_score, loser_score, games_played, played_at, venue,
			verified_by, confirmed_by, disputed, dispute_reason,
			payment_status
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		matchArgs(m)...)
	if err != nil {
		return domain.Match{}, err
	}
	return m, nil
}

func (s *Storage) UpdateMatch(m domain.Match) error {
	args := matchArgs(m)[1:]
	args = append(args, m.ID.String())
	res, err := s.db.Exec(`
		UPDATE matches SET
			challenge_id = ?, winner_id = ?, loser_id = ?, winner_rank = ?,
			loser_rank = ?, winner_score = ?, loser_score = ?,
			games_played = ?, played_at = ?, venue = ?, verified_by = ?,
			confirmed_by = ?, disputed = ?, dispute_reason = ?,
			payment_status = ?
		WHERE id = ?`, args...)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}
