package tgbot

import (
	"errors"

	"poolleague/bot/botstorage"
	"poolleague/bot/model"
	"poolleague/internal/service"

	mapset "github.com/deckarep/golang-set/v2"
)

type DeclineCommand struct {
	leagueService *service.LeagueService
	botStorage    botstorage.BotStorage
}

func (c *DeclineCommand) Run(user model.User, _ string) (string, error) {
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
	challenge, err := c.leagueService.DeclineChallenge(pending.Incoming[0].ID)
	if err != nil {
		return "", err
	}
	challenger, err := c.leagueService.GetPlayer(challenge.ChallengerID)
	if err != nil {
		return "", err
	}
	return "challenge from " + challenger.DisplayName() + " declined", nil
}

func (c *DeclineCommand) Help() string {
	return `Declines your oldest incoming challenge`
}

func (c *DeclineCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}

func (c *DeclineCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}
