package tgbot

import (
	"errors"
	"strconv"
	"strings"

	"poolleague/bot/model"
	"poolleague/internal/service"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
)

type ResultCommand struct {
	leagueService *service.LeagueService
	notify        func(msg string)
}

const (
	winnerIndex int = iota
	winnerScoreIndex
	loserScoreIndex
	resultArgCount
)

func (c *ResultCommand) Run(_ model.User, args string) (string, error) {
	fields := strings.Fields(args)
	if len(fields) < resultArgCount {
		return "", errors.New(`bad request. Example: "/result Ronnie 2 1" - Ronnie won his match 2:1`)
	}
	winnerName := fields[winnerIndex]
	winner, err := c.leagueService.GetPlayerByName(winnerName)
	if err != nil {
		return "", errors.New(winnerName + " not found")
	}
	winnerScore, err := strconv.Atoi(fields[winnerScoreIndex])
	if err != nil {
		return "", errors.New("bad winner score: " + fields[winnerScoreIndex])
	}
	loserScore, err := strconv.Atoi(fields[loserScoreIndex])
	if err != nil {
		return "", errors.New("bad loser score: " + fields[loserScoreIndex])
	}

	challenge, found, err := c.leagueService.AcceptedChallenge(winner.ID)
	if err != nil {
		return "", err
	}
	if !found {
		return "", errors.New(winner.DisplayName() + " has no accepted challenge")
	}

	match, err := c.leagueService.ReportMatchResult(challenge.ID, winner.ID, winnerScore, loserScore, winner.ID)
	if err != nil {
		return "", err
	}
	c.sendMatchNotification(match.ID)
	return "match recorded", nil
}

func (c *ResultCommand) Help() string {
	return `Records a finished match. Usage: /result <winner name> <winner score> <loser score>`
}

func (c *ResultCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator)
}

func (c *ResultCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator)
}

func (c *ResultCommand) sendMatchNotification(matchID uuid.UUID) {
	activity, err := c.leagueService.RecentActivity()
	if err != nil {
		return
	}
	for i := range activity {
		if activity[i].ID == matchID {
			c.notify(formatMatchLine(activity[i]))
			return
		}
	}
}
