package memory

import (
	"sort"
	"sync"

	"poolleague/internal/domain"
	"poolleague/internal/normalize"
	"poolleague/internal/storage"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
)

// Storage is the authoritative in-memory store for league state.
type Storage struct {
	mu sync.RWMutex

	players     map[uuid.UUID]domain.Player
	playerNames map[string]uuid.UUID

	challenges     map[uuid.UUID]domain.Challenge
	challengeOrder []uuid.UUID

	matches    map[uuid.UUID]domain.Match
	matchOrder []uuid.UUID
}

var _ storage.PlayerStorage = (*Storage)(nil)
var _ storage.ChallengeStorage = (*Storage)(nil)
var _ storage.MatchStorage = (*Storage)(nil)

func New() *Storage {
	return &Storage{
		players:     make(map[uuid.UUID]domain.Player),
		playerNames: make(map[string]uuid.UUID),
		challenges:  make(map[uuid.UUID]domain.Challenge),
		matches:     make(map[uuid.UUID]domain.Match),
	}
}

// ListPlayers returns all players sorted ascending by rank.
func (s *Storage) ListPlayers() ([]domain.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	players := make([]domain.Player, 0, len(s.players))
	for _, p := range s.players {
		players = append(players, p)
	}
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Rank < players[j].Rank
	})
	return players, nil
}

func (s *Storage) GetPlayer(id uuid.UUID) (domain.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.players[id]
	if !ok {
		return domain.Player{}, storage.ErrNotFound
	}
	return p, nil
}

func (s *Storage) GetPlayerByName(name string) (domain.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.playerNames[normalize.Name(name)]
	if !ok {
		return domain.Player{}, storage.ErrNotFound
	}
	return s.players[id], nil
}

func (s *Storage) AddPlayer(p domain.Player) (domain.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.players[p.ID] = p
	s.playerNames[normalize.Name(p.Name)] = p.ID
	return p, nil
}

func (s *Storage) UpdatePlayer(p domain.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.players[p.ID]
	if !ok {
		return storage.ErrNotFound
	}
	if old.Name != p.Name {
		delete(s.playerNames, normalize.Name(old.Name))
		s.playerNames[normalize.Name(p.Name)] = p.ID
	}
	s.players[p.ID] = p
	return nil
}

// RanksUnique reports whether every active player holds a distinct rank.
// The pairwise swap on upsets keeps this true for adjacent challenges but
// can break it over longer distances; callers use this to surface ladder
// anomalies.
func (s *Storage) RanksUnique() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ranks := mapset.NewSetWithSize[int](len(s.players))
	for _, p := range s.players {
		if p.Status != domain.StatusActive {
			continue
		}
		if !ranks.Add(p.Rank) {
			return false
		}
	}
	return true
}

// ListChallenges returns challenges in creation order.
func (s *Storage) ListChallenges() ([]domain.Challenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	challenges := make([]domain.Challenge, 0, len(s.challengeOrder))
	for _, id := range s.challengeOrder {
		challenges = append(challenges, s.challenges[id])
	}
	return challenges, nil
}

func (s *Storage) GetChallenge(id uuid.UUID) (domain.Challenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.challenges[id]
	if !ok {
		return domain.Challenge{}, storage.ErrNotFound
	}
	return c, nil
}

func (s *Storage) AddChallenge(c domain.Challenge) (domain.Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.challenges[c.ID] = c
	s.challengeOrder = append(s.challengeOrder, c.ID)
	return c, nil
}

func (s *Storage) UpdateChallenge(c domain.Challenge) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.challenges[c.ID]; !ok {
		return storage.ErrNotFound
	}
	s.challenges[c.ID] = c
	return nil
}

// ListMatches returns matches in creation order.
func (s *Storage) ListMatches() ([]domain.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := make([]domain.Match, 0, len(s.matchOrder))
	for _, id := range s.matchOrder {
		matches = append(matches, s.matches[id])
	}
	return matches, nil
}

func (s *Storage) GetMatch(id uuid.UUID) (domain.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.matches[id]
	if !ok {
		return domain.Match{}, storage.ErrNotFound
	}
	return m, nil
}

func (s *Storage) AddMatch(m domain.Match) (domain.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.matches[m.ID] = m
	s.matchOrder = append(s.matchOrder, m.ID)
	return m, nil
}

func (s *Storage) UpdateMatch(m domain.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.matches[m.ID]; !ok {
		return storage.ErrNotFound
	}
	s.matches[m.ID] = m
	return nil
}
