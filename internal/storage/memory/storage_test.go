package memory

import (
	"testing"
	"time"

	"poolleague/internal/domain"
	"poolleague/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayers(t *testing.T) {
	s := New()

	_, err := s.GetPlayer(uuid.New())
	assert.ErrorIs(t, err, storage.ErrNotFound)

	p1 := domain.Player{ID: uuid.New(), Name: "Sarah Chen", Rank: 2, Status: domain.StatusActive}
	p2 := domain.Player{ID: uuid.New(), Name: "Marcus Johnson", Rank: 1, Status: domain.StatusActive}
	_, err = s.AddPlayer(p1)
	require.NoError(t, err)
	_, err = s.AddPlayer(p2)
	require.NoError(t, err)

	got, err := s.GetPlayerByName("sarah  chen")
	require.NoError(t, err)
	assert.Equal(t, p1.ID, got.ID)

	list, err := s.ListPlayers()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 1, list[0].Rank)
	assert.Equal(t, 2, list[1].Rank)

	p1.Rank = 1
	require.NoError(t, s.UpdatePlayer(p1))
	assert.False(t, s.RanksUnique())

	err = s.UpdatePlayer(domain.Player{ID: uuid.New()})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestChallengesOrder(t *testing.T) {
	s := New()

	first := domain.Challenge{ID: uuid.New(), CreatedAt: time.Now()}
	second := domain.Challenge{ID: uuid.New(), CreatedAt: time.Now()}
	_, err := s.AddChallenge(first)
	require.NoError(t, err)
	_, err = s.AddChallenge(second)
	require.NoError(t, err)

	list, err := s.ListChallenges()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)

	second.Status = domain.ChallengeAccepted
	require.NoError(t, s.UpdateChallenge(second))
	got, err := s.GetChallenge(second.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ChallengeAccepted, got.Status)

	err = s.UpdateChallenge(domain.Challenge{ID: uuid.New()})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestMatches(t *testing.T) {
	s := New()

	m := domain.Match{ID: uuid.New(), PlayedAt: time.Now()}
	_, err := s.AddMatch(m)
	require.NoError(t, err)

	got, err := s.GetMatch(m.ID)
	require.NoError(t, err)
	assert.Equal(t, m.ID, got.ID)

	m.Disputed = true
	require.NoError(t, s.UpdateMatch(m))
	got, err = s.GetMatch(m.ID)
	require.NoError(t, err)
	assert.True(t, got.Disputed)

	_, err = s.GetMatch(uuid.New())
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
