package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"poolleague/internal/domain"
	"poolleague/internal/ranking"
	"poolleague/internal/storage"
	"poolleague/internal/validation"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// LeagueService owns the canonical league state. Mutations run under one
// mutex and validate fully before the first write, so a failed call leaves
// no partial state behind.
type LeagueService struct {
	mu sync.Mutex

	players    storage.PlayerStorage
	challenges storage.ChallengeStorage
	matches    storage.MatchStorage

	league domain.League
	log    *logrus.Entry

	now func() time.Time
}

func New(
	players storage.PlayerStorage,
	challenges storage.ChallengeStorage,
	matches storage.MatchStorage,
	league domain.League,
	log *logrus.Logger,
) *LeagueService {
	return &LeagueService{
		players:    players,
		challenges: challenges,
		matches:    matches,
		league:     league,
		log:        log.WithField("name", "league_service"),
		now:        time.Now,
	}
}

// League returns the aggregate with its derived counters.
func (s *LeagueService) League() domain.League {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.league
}

// CreatePlayer joins a new player at the bottom rank.
func (s *LeagueService) CreatePlayer(name string, nickname string) (domain.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name == "" {
		return domain.Player{}, validationErr("player name must not be empty")
	}
	_, err := s.players.GetPlayerByName(name)
	if err == nil {
		return domain.Player{}, validationErr("player %q already exists", name)
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return domain.Player{}, err
	}
	existing, err := s.players.ListPlayers()
	if err != nil {
		return domain.Player{}, err
	}
	player := domain.Player{
		ID:       uuid.New(),
		Name:     name,
		Nickname: nickname,
		Rank:     len(existing) + 1,
		JoinedAt: s.now(),
		Status:   domain.StatusActive,
	}
	player, err = s.players.AddPlayer(player)
	if err != nil {
		return domain.Player{}, err
	}
	s.league.TotalPlayers++
	s.league.ActivePlayers++
	s.log.WithField("player", player.Name).Info("player joined")
	return player, nil
}

// CreateChallenge validates ranks against league rules and appends a pending
// challenge with rank and wager snapshots.
func (s *LeagueService) CreateChallenge(challengerID uuid.UUID, opponentID uuid.UUID) (domain.Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	challenger, err := s.players.GetPlayer(challengerID)
	if err != nil {
		return domain.Challenge{}, fmt.Errorf("challenger: %w", err)
	}
	opponent, err := s.players.GetPlayer(opponentID)
	if err != nil {
		return domain.Challenge{}, fmt.Errorf("opponent: %w", err)
	}
	res := validation.CanChallenge(challenger.Rank, opponent.Rank, s.league.Rules)
	if !res.Valid {
		return domain.Challenge{}, &ValidationError{Reason: res.Reason}
	}
	now := s.now()
	challenge := domain.Challenge{
		ID:             uuid.New(),
		ChallengerID:   challenger.ID,
		ChallengerRank: challenger.Rank,
		OpponentID:     opponent.ID,
		OpponentRank:   opponent.Rank,
		Status:         domain.ChallengePending,
		CreatedAt:      now,
		ExpiresAt:      now.Add(time.Duration(s.league.Rules.ChallengeExpirationHours) * time.Hour),
		WagerAmount:    s.league.Rules.MatchWagerAmount,
	}
	challenge, err = s.challenges.AddChallenge(challenge)
	if err != nil {
		return domain.Challenge{}, err
	}
	s.log.WithFields(logrus.Fields{
		"challenger": challenger.Name,
		"opponent":   opponent.Name,
	}).Info("challenge created")
	return challenge, nil
}

// AcceptChallenge transitions pending -> accepted. A pending challenge past
// its expiration flips to expired instead and the call fails.
func (s *LeagueService) AcceptChallenge(id uuid.UUID) (domain.Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transitionPending(id, domain.ChallengeAccepted)
}

// DeclineChallenge transitions pending -> declined.
func (s *LeagueService) DeclineChallenge(id uuid.UUID) (domain.Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transitionPending(id, domain.ChallengeDeclined)
}

// CancelChallenge lets either participant withdraw a pending challenge.
func (s *LeagueService) CancelChallenge(id uuid.UUID, byPlayerID uuid.UUID) (domain.Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	challenge, err := s.challenges.GetChallenge(id)
	if err != nil {
		return domain.Challenge{}, err
	}
	if !challenge.Involves(byPlayerID) {
		return domain.Challenge{}, validationErr("only a participant can cancel a challenge")
	}
	return s.transitionPending(id, domain.ChallengeCancelled)
}

// transitionPending applies a forward transition out of the pending state.
// Caller must hold s.mu.
func (s *LeagueService) transitionPending(id uuid.UUID, to domain.ChallengeStatus) (domain.Challenge, error) {
	challenge, err := s.challenges.GetChallenge(id)
	if err != nil {
		return domain.Challenge{}, err
	}
	if challenge.Status != domain.ChallengePending {
		return domain.Challenge{}, validationErr("challenge is %s, not pending", challenge.Status)
	}
	now := s.now()
	if challenge.ExpiredAt(now) {
		challenge.Status = domain.ChallengeExpired
		if err := s.challenges.UpdateChallenge(challenge); err != nil {
			return domain.Challenge{}, err
		}
		return domain.Challenge{}, validationErr("challenge has expired")
	}
	challenge.Status = to
	if to == domain.ChallengeAccepted {
		challenge.AcceptedAt = now
	}
	if err := s.challenges.UpdateChallenge(challenge); err != nil {
		return domain.Challenge{}, err
	}
	s.log.WithFields(logrus.Fields{
		"challenge": challenge.ID,
		"status":    challenge.Status,
	}).Info("challenge transitioned")
	return challenge, nil
}

// ReportMatchResult records a finished match for an accepted challenge,
// completes the challenge and applies the rank swap on upsets.
func (s *LeagueService) ReportMatchResult(
	challengeID uuid.UUID,
	winnerID uuid.UUID,
	winnerScore int,
	loserScore int,
	reportedBy uuid.UUID,
) (domain.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	challenge, err := s.challenges.GetChallenge(challengeID)
	if err != nil {
		return domain.Match{}, err
	}
	if challenge.Status != domain.ChallengeAccepted {
		return domain.Match{}, validationErr("challenge is %s, not accepted", challenge.Status)
	}
	var loserID uuid.UUID
	switch winnerID {
	case challenge.ChallengerID:
		loserID = challenge.OpponentID
	case challenge.OpponentID:
		loserID = challenge.ChallengerID
	default:
		return domain.Match{}, validationErr("winner is not a participant of the challenge")
	}
	required := s.league.Rules.WinsRequired()
	if winnerScore != required {
		return domain.Match{}, validationErr("winner must take %d games in a best-of-%d match", required, s.league.Rules.GamesPerMatch)
	}
	if loserScore < 0 || loserScore >= winnerScore {
		return domain.Match{}, validationErr("loser score must be between 0 and %d", winnerScore-1)
	}
	winner, err := s.players.GetPlayer(winnerID)
	if err != nil {
		return domain.Match{}, fmt.Errorf("winner: %w", err)
	}
	loser, err := s.players.GetPlayer(loserID)
	if err != nil {
		return domain.Match{}, fmt.Errorf("loser: %w", err)
	}

	now := s.now()
	match := domain.Match{
		ID:            uuid.New(),
		ChallengeID:   challenge.ID,
		WinnerID:      winner.ID,
		LoserID:       loser.ID,
		WinnerRank:    winner.Rank,
		LoserRank:     loser.Rank,
		WinnerScore:   winnerScore,
		LoserScore:    loserScore,
		GamesPlayed:   winnerScore + loserScore,
		PlayedAt:      now,
		VerifiedBy:    reportedBy,
		PaymentStatus: domain.PaymentPending,
	}
	match, err = s.matches.AddMatch(match)
	if err != nil {
		return domain.Match{}, err
	}

	challenge.Status = domain.ChallengeCompleted
	challenge.CompletedAt = now
	challenge.MatchID = match.ID
	if err := s.challenges.UpdateChallenge(challenge); err != nil {
		return domain.Match{}, err
	}

	upset := ranking.Upset(winner.Rank, loser.Rank)
	if upset {
		winner.Rank, loser.Rank = ranking.Swap(winner.Rank, loser.Rank)
	}
	s.applyMatchStats(&winner, &loser, challenge, now)
	if err := s.players.UpdatePlayer(winner); err != nil {
		return domain.Match{}, err
	}
	if err := s.players.UpdatePlayer(loser); err != nil {
		return domain.Match{}, err
	}

	s.league.TotalMatchesPlayed++
	s.log.WithFields(logrus.Fields{
		"winner": winner.Name,
		"loser":  loser.Name,
		"score":  fmt.Sprintf("%d:%d", winnerScore, loserScore),
		"upset":  upset,
	}).Info("match reported")
	return match, nil
}

// applyMatchStats advances the cumulative counters of both players for one
// completed challenge.
func (s *LeagueService) applyMatchStats(winner, loser *domain.Player, challenge domain.Challenge, now time.Time) {
	wager := challenge.WagerAmount

	winner.Stats.MatchesPlayed++
	winner.Stats.MatchesWon++
	winner.Stats.WinStreak++
	if winner.Stats.WinStreak > winner.Stats.BestWinStreak {
		winner.Stats.BestWinStreak = winner.Stats.WinStreak
	}
	winner.Stats.TotalWagered += wager
	winner.Stats.TotalWon += wager
	winner.LastMatchAt = now

	loser.Stats.MatchesPlayed++
	loser.Stats.MatchesLost++
	loser.Stats.WinStreak = 0
	loser.Stats.TotalWagered += wager
	loser.Stats.TotalLost += wager
	loser.LastMatchAt = now

	if winner.ID == challenge.ChallengerID {
		winner.Stats.ChallengesIssued++
		loser.Stats.ChallengesReceived++
	} else {
		winner.Stats.ChallengesReceived++
		loser.Stats.ChallengesIssued++
	}
}

// ConfirmMatch records the counter-party attestation of a reported result.
func (s *LeagueService) ConfirmMatch(matchID uuid.UUID, byPlayerID uuid.UUID) (domain.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	match, err := s.matches.GetMatch(matchID)
	if err != nil {
		return domain.Match{}, err
	}
	if byPlayerID != match.WinnerID && byPlayerID != match.LoserID {
		return domain.Match{}, validationErr("only a participant can confirm a match")
	}
	if byPlayerID == match.VerifiedBy {
		return domain.Match{}, validationErr("reporter cannot confirm their own match")
	}
	if match.ConfirmedBy != uuid.Nil {
		return domain.Match{}, validationErr("match is already confirmed")
	}
	match.ConfirmedBy = byPlayerID
	if err := s.matches.UpdateMatch(match); err != nil {
		return domain.Match{}, err
	}
	return match, nil
}

// DisputeMatch flags a reported result.
func (s *LeagueService) DisputeMatch(matchID uuid.UUID, byPlayerID uuid.UUID, reason string) (domain.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	match, err := s.matches.GetMatch(matchID)
	if err != nil {
		return domain.Match{}, err
	}
	if byPlayerID != match.WinnerID && byPlayerID != match.LoserID {
		return domain.Match{}, validationErr("only a participant can dispute a match")
	}
	if reason == "" {
		return domain.Match{}, validationErr("dispute reason must not be empty")
	}
	match.Disputed = true
	match.DisputeReason = reason
	if err := s.matches.UpdateMatch(match); err != nil {
		return domain.Match{}, err
	}
	s.log.WithField("match", match.ID).Warn("match disputed")
	return match, nil
}

// MarkMatchPaid settles the wagers of a match and feeds the prize pool.
func (s *LeagueService) MarkMatchPaid(matchID uuid.UUID) (domain.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	match, err := s.matches.GetMatch(matchID)
	if err != nil {
		return domain.Match{}, err
	}
	if match.PaymentStatus == domain.PaymentComplete {
		return domain.Match{}, validationErr("match is already paid")
	}
	challenge, err := s.challenges.GetChallenge(match.ChallengeID)
	if err != nil {
		return domain.Match{}, err
	}
	match.PaymentStatus = domain.PaymentComplete
	if err := s.matches.UpdateMatch(match); err != nil {
		return domain.Match{}, err
	}
	s.league.TotalPrizePool += 2 * challenge.WagerAmount
	return match, nil
}

// PayMonthlyFee marks the player's monthly fee as paid.
func (s *LeagueService) PayMonthlyFee(playerID uuid.UUID) (domain.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	player, err := s.players.GetPlayer(playerID)
	if err != nil {
		return domain.Player{}, err
	}
	if player.MonthlyFeePaid {
		return domain.Player{}, validationErr("monthly fee is already paid")
	}
	player.MonthlyFeePaid = true
	if err := s.players.UpdatePlayer(player); err != nil {
		return domain.Player{}, err
	}
	s.league.TotalPrizePool += s.league.Rules.MonthlyMinimumFee
	return player, nil
}

// SetPlayerStatus soft-changes a player's lifecycle status. Players are
// never deleted.
func (s *LeagueService) SetPlayerStatus(playerID uuid.UUID, status domain.PlayerStatus) (domain.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch status {
	case domain.StatusActive, domain.StatusInactive, domain.StatusSuspended:
	default:
		return domain.Player{}, validationErr("unknown player status %q", status)
	}
	player, err := s.players.GetPlayer(playerID)
	if err != nil {
		return domain.Player{}, err
	}
	if player.Status == status {
		return player, nil
	}
	if player.Status == domain.StatusActive {
		s.league.ActivePlayers--
	}
	if status == domain.StatusActive {
		s.league.ActivePlayers++
	}
	player.Status = status
	if err := s.players.UpdatePlayer(player); err != nil {
		return domain.Player{}, err
	}
	return player, nil
}
