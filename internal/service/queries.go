package service

import (
	"sort"
	"time"

	"poolleague/internal/domain"
	"poolleague/internal/validation"

	"github.com/google/uuid"
)

// Derived read views. These are recomputed from store state on every call;
// the collections are small and in-memory, so no caching.

const recentActivityLimit = 10

const unknownPlayerName = "Unknown"

type PendingChallenges struct {
	Incoming []domain.Challenge
	Outgoing []domain.Challenge
}

// MatchSummary is a match enriched with resolved display names.
type MatchSummary struct {
	domain.Match
	WinnerName string
	LoserName  string
}

// PlayerCard bundles everything the player screen needs.
type PlayerCard struct {
	Player   domain.Player
	Cooldown domain.CooldownStatus
	Targets  []domain.Player
	History  []domain.Match
}

func (s *LeagueService) GetPlayer(id uuid.UUID) (domain.Player, error) {
	return s.players.GetPlayer(id)
}

func (s *LeagueService) GetPlayerByName(name string) (domain.Player, error) {
	return s.players.GetPlayerByName(name)
}

// RankedPlayers returns the full ladder, rank 1 first.
func (s *LeagueService) RankedPlayers() ([]domain.Player, error) {
	return s.players.ListPlayers()
}

// ValidChallengeTargets lists the players the given player may challenge
// right now, in ladder order.
func (s *LeagueService) ValidChallengeTargets(playerID uuid.UUID) ([]domain.Player, error) {
	player, err := s.players.GetPlayer(playerID)
	if err != nil {
		return nil, err
	}
	players, err := s.players.ListPlayers()
	if err != nil {
		return nil, err
	}
	return validation.ValidTargets(player.Rank, players, s.league.Rules), nil
}

// CooldownStatus derives the player's cooldown from their most recent loss.
func (s *LeagueService) CooldownStatus(playerID uuid.UUID) (domain.CooldownStatus, error) {
	if _, err := s.players.GetPlayer(playerID); err != nil {
		return domain.CooldownStatus{}, err
	}
	matches, err := s.matches.ListMatches()
	if err != nil {
		return domain.CooldownStatus{}, err
	}
	var lastLoss time.Time
	for _, m := range matches {
		if m.LoserID == playerID && m.PlayedAt.After(lastLoss) {
			lastLoss = m.PlayedAt
		}
	}
	return validation.Cooldown(lastLoss, s.league.Rules, s.now()), nil
}

// PendingChallenges splits the player's pending challenges into incoming and
// outgoing buckets. Expired-but-not-yet-flipped challenges are filtered out.
func (s *LeagueService) PendingChallenges(playerID uuid.UUID) (PendingChallenges, error) {
	challenges, err := s.challenges.ListChallenges()
	if err != nil {
		return PendingChallenges{}, err
	}
	now := s.now()
	var pending PendingChallenges
	for _, c := range challenges {
		if c.Status != domain.ChallengePending || c.ExpiredAt(now) {
			continue
		}
		switch playerID {
		case c.OpponentID:
			pending.Incoming = append(pending.Incoming, c)
		case c.ChallengerID:
			pending.Outgoing = append(pending.Outgoing, c)
		}
	}
	return pending, nil
}

// AcceptedChallenge returns the oldest accepted challenge the player is part
// of, if any.
func (s *LeagueService) AcceptedChallenge(playerID uuid.UUID) (domain.Challenge, bool, error) {
	challenges, err := s.challenges.ListChallenges()
	if err != nil {
		return domain.Challenge{}, false, err
	}
	for _, c := range challenges {
		if c.Status == domain.ChallengeAccepted && c.Involves(playerID) {
			return c, true, nil
		}
	}
	return domain.Challenge{}, false, nil
}

// ActiveMatch returns the match attached to the player's currently accepted
// challenge, if any.
func (s *LeagueService) ActiveMatch(playerID uuid.UUID) (domain.Match, bool, error) {
	challenges, err := s.challenges.ListChallenges()
	if err != nil {
		return domain.Match{}, false, err
	}
	var active domain.Challenge
	var found bool
	for _, c := range challenges {
		if c.Status == domain.ChallengeAccepted && c.Involves(playerID) {
			active = c
			found = true
			break
		}
	}
	if !found {
		return domain.Match{}, false, nil
	}
	matches, err := s.matches.ListMatches()
	if err != nil {
		return domain.Match{}, false, err
	}
	for _, m := range matches {
		if m.ChallengeID == active.ID {
			return m, true, nil
		}
	}
	return domain.Match{}, false, nil
}

// PlayerMatchHistory lists all matches the player took part in, most recent
// first.
func (s *LeagueService) PlayerMatchHistory(playerID uuid.UUID) ([]domain.Match, error) {
	matches, err := s.matches.ListMatches()
	if err != nil {
		return nil, err
	}
	var history []domain.Match
	for _, m := range matches {
		if m.WinnerID == playerID || m.LoserID == playerID {
			history = append(history, m)
		}
	}
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].PlayedAt.After(history[j].PlayedAt)
	})
	return history, nil
}

// RecentActivity returns the last matches played, most recent first, with
// display names resolved from the player collection.
func (s *LeagueService) RecentActivity() ([]MatchSummary, error) {
	matches, err := s.matches.ListMatches()
	if err != nil {
		return nil, err
	}
	players, err := s.players.ListPlayers()
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(players))
	for _, p := range players {
		names[p.ID] = p.DisplayName()
	}
	resolve := func(id uuid.UUID) string {
		if name, ok := names[id]; ok {
			return name
		}
		return unknownPlayerName
	}

	start := len(matches) - recentActivityLimit
	if start < 0 {
		start = 0
	}
	recent := matches[start:]
	activity := make([]MatchSummary, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		activity = append(activity, MatchSummary{
			Match:      recent[i],
			WinnerName: resolve(recent[i].WinnerID),
			LoserName:  resolve(recent[i].LoserID),
		})
	}
	return activity, nil
}

// GetPlayerCard assembles the player view: profile, cooldown, current
// targets and match history.
func (s *LeagueService) GetPlayerCard(playerID uuid.UUID) (PlayerCard, error) {
	player, err := s.players.GetPlayer(playerID)
	if err != nil {
		return PlayerCard{}, err
	}
	cooldown, err := s.CooldownStatus(playerID)
	if err != nil {
		return PlayerCard{}, err
	}
	targets, err := s.ValidChallengeTargets(playerID)
	if err != nil {
		return PlayerCard{}, err
	}
	history, err := s.PlayerMatchHistory(playerID)
	if err != nil {
		return PlayerCard{}, err
	}
	return PlayerCard{
		Player:   player,
		Cooldown: cooldown,
		Targets:  targets,
		History:  history,
	}, nil
}
