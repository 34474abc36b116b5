package tgbot

import (
	"errors"

	"poolleague/bot/botstorage"
	"poolleague/bot/model"
	"poolleague/internal/service"

	mapset "github.com/deckarep/golang-set/v2"
)

type ChallengeCommand struct {
	leagueService *service.LeagueService
	botStorage    botstorage.BotStorage
}

func (c *ChallengeCommand) Run(user model.User, args string) (string, error) {
	if args == "" {
		return "", errors.New("who do you want to challenge? Use /challenge <player name>")
	}
	challengerID, err := c.botStorage.GetMyPlayer(user)
	if err != nil {
		return "", err
	}
	opponent, err := c.leagueService.GetPlayerByName(args)
	if err != nil {
		return "", errors.New(args + " not found")
	}
	challenge, err := c.leagueService.CreateChallenge(challengerID, opponent.ID)
	if err != nil {
		return "", err
	}
	return "challenge sent to " + opponent.DisplayName() +
		", it expires " + challenge.ExpiresAt.Format("02.01.2006 15:04"), nil
}

func (c *ChallengeCommand) Help() string {
	return `Challenges a player above you. Usage: /challenge <player name>`
}

func (c *ChallengeCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}

func (c *ChallengeCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}
