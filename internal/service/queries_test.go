package service

import (
	"testing"
	"time"

	"poolleague/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingChallengesRoundTrip(t *testing.T) {
	s, _ := newTestService(t)
	players := joinPlayers(t, s, 3)

	c, err := s.CreateChallenge(players[1].ID, players[0].ID)
	require.NoError(t, err)

	outgoing, err := s.PendingChallenges(players[1].ID)
	require.NoError(t, err)
	require.Len(t, outgoing.Outgoing, 1)
	assert.Equal(t, c.ID, outgoing.Outgoing[0].ID)
	assert.Empty(t, outgoing.Incoming)

	incoming, err := s.PendingChallenges(players[0].ID)
	require.NoError(t, err)
	require.Len(t, incoming.Incoming, 1)
	assert.Equal(t, c.ID, incoming.Incoming[0].ID)
	assert.Empty(t, incoming.Outgoing)

	bystander, err := s.PendingChallenges(players[2].ID)
	require.NoError(t, err)
	assert.Empty(t, bystander.Incoming)
	assert.Empty(t, bystander.Outgoing)

	// Accepted challenges leave the pending view.
	_, err = s.AcceptChallenge(c.ID)
	require.NoError(t, err)
	outgoing, err = s.PendingChallenges(players[1].ID)
	require.NoError(t, err)
	assert.Empty(t, outgoing.Outgoing)
}

func TestValidChallengeTargets(t *testing.T) {
	s, _ := newTestService(t)
	players := joinPlayers(t, s, 8)

	// Rank 3 can reach up to rank 2 and down to rank 8, but not the King.
	targets, err := s.ValidChallengeTargets(players[2].ID)
	require.NoError(t, err)
	ranks := make([]int, 0, len(targets))
	for _, p := range targets {
		ranks = append(ranks, p.Rank)
	}
	assert.Equal(t, []int{2, 4, 5, 6, 7, 8}, ranks)

	// Only #2 sees the King as a target.
	targets, err = s.ValidChallengeTargets(players[1].ID)
	require.NoError(t, err)
	require.NotEmpty(t, targets)
	assert.Equal(t, 1, targets[0].Rank)
}

func TestCooldownAfterLoss(t *testing.T) {
	s, _ := newTestService(t)
	players := joinPlayers(t, s, 2)

	status, err := s.CooldownStatus(players[0].ID)
	require.NoError(t, err)
	assert.False(t, status.OnCooldown)

	playMatch(t, s, players[1].ID, players[0].ID, players[1].ID)

	status, err = s.CooldownStatus(players[0].ID)
	require.NoError(t, err)
	assert.True(t, status.OnCooldown)
	assert.Equal(t, 24, status.HoursRemaining)

	// The winner is not on cooldown.
	status, err = s.CooldownStatus(players[1].ID)
	require.NoError(t, err)
	assert.False(t, status.OnCooldown)

	played := s.now()
	s.now = func() time.Time { return played.Add(23 * time.Hour) }
	status, err = s.CooldownStatus(players[0].ID)
	require.NoError(t, err)
	assert.True(t, status.OnCooldown)
	assert.Equal(t, 1, status.HoursRemaining)

	s.now = func() time.Time { return played.Add(25 * time.Hour) }
	status, err = s.CooldownStatus(players[0].ID)
	require.NoError(t, err)
	assert.False(t, status.OnCooldown)
	assert.Zero(t, status.HoursRemaining)
}

func TestActiveMatch(t *testing.T) {
	s, store := newTestService(t)
	players := joinPlayers(t, s, 2)

	_, found, err := s.ActiveMatch(players[0].ID)
	require.NoError(t, err)
	assert.False(t, found)

	c, err := s.CreateChallenge(players[1].ID, players[0].ID)
	require.NoError(t, err)
	_, err = s.AcceptChallenge(c.ID)
	require.NoError(t, err)

	// Accepted but nothing reported yet.
	_, found, err = s.ActiveMatch(players[0].ID)
	require.NoError(t, err)
	assert.False(t, found)

	// A match attached to the accepted challenge is the active one.
	m := domain.Match{ID: uuid.New(), ChallengeID: c.ID, WinnerID: players[0].ID, LoserID: players[1].ID}
	_, err = store.AddMatch(m)
	require.NoError(t, err)
	active, found, err := s.ActiveMatch(players[0].ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, m.ID, active.ID)
}

func TestPlayerMatchHistory(t *testing.T) {
	s, _ := newTestService(t)
	players := joinPlayers(t, s, 3)

	base := s.now()
	first := playMatch(t, s, players[1].ID, players[0].ID, players[0].ID)
	s.now = func() time.Time { return base.Add(30 * time.Hour) }
	second := playMatch(t, s, players[2].ID, players[1].ID, players[1].ID)

	history, err := s.PlayerMatchHistory(players[1].ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, second.ID, history[0].ID)
	assert.Equal(t, first.ID, history[1].ID)

	history, err = s.PlayerMatchHistory(players[0].ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
}

func TestRecentActivity(t *testing.T) {
	s, store := newTestService(t)
	players := joinPlayers(t, s, 2)

	m := playMatch(t, s, players[1].ID, players[0].ID, players[0].ID)

	// A match referencing players who cannot be resolved.
	ghost := domain.Match{
		ID:          uuid.New(),
		ChallengeID: uuid.New(),
		WinnerID:    uuid.New(),
		LoserID:     uuid.New(),
		PlayedAt:    s.now().Add(time.Hour),
	}
	_, err := store.AddMatch(ghost)
	require.NoError(t, err)

	activity, err := s.RecentActivity()
	require.NoError(t, err)
	require.Len(t, activity, 2)

	// Most recent first.
	assert.Equal(t, ghost.ID, activity[0].ID)
	assert.Equal(t, "Unknown", activity[0].WinnerName)
	assert.Equal(t, "Unknown", activity[0].LoserName)
	assert.Equal(t, m.ID, activity[1].ID)
	assert.Equal(t, "player 1", activity[1].WinnerName)
	assert.Equal(t, "player 2", activity[1].LoserName)
}

func TestGetPlayerCard(t *testing.T) {
	s, _ := newTestService(t)
	players := joinPlayers(t, s, 3)

	playMatch(t, s, players[1].ID, players[0].ID, players[1].ID)

	card, err := s.GetPlayerCard(players[0].ID)
	require.NoError(t, err)
	assert.Equal(t, players[0].ID, card.Player.ID)
	assert.Equal(t, 2, card.Player.Rank)
	assert.True(t, card.Cooldown.OnCooldown)
	require.Len(t, card.History, 1)
	assert.NotEmpty(t, card.Targets)
}
