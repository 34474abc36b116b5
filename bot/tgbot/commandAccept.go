package tgbot

import (
	"errors"

	"poolleague/bot/botstorage"
	"poolleague/bot/model"
	"poolleague/internal/service"

	mapset "github.com/deckarep/golang-set/v2"
)

type AcceptCommand struct {
	leagueService *service.LeagueService
	botStorage    botstorage.BotStorage
}

func (c *AcceptCommand) Run(user model.User, _ string) (string, error) {
	playerID, err := c.botStorage.GetMyPlayer(user)
	if err != nil {
		return "", err
	}
	pending, err := c.leagueService.PendingChallenges(playerID)
	if err != nil {
		return "", err
	}
	if len(pending.Incoming) == 0 {
		return "", errors.New("you have no incoming challenges")
	}
	challenge, err := c.leagueService.AcceptChallenge(pending.Incoming[0].ID)
	if err != nil {
		return "", err
	}
	challenger, err := c.leagueService.GetPlayer(challenge.ChallengerID)
	if err != nil {
		return "", err
	}
	return "challenge from " + challenger.DisplayName() + " accepted, rack them up", nil
}

func (c *AcceptCommand) Help() string {
	return `Accepts your oldest incoming challenge`
}

func (c *AcceptCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}

func (c *AcceptCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}
