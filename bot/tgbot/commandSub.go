package tgbot

import (
	"poolleague/bot/botstorage"
	"poolleague/bot/model"

	mapset "github.com/deckarep/golang-set/v2"
)

type SubCommand struct {
	botStorage botstorage.BotStorage
	sub        func(int)
}

func (c *SubCommand) Run(user model.User, _ string) (string, error) {
	err := c.botStorage.Subscribe(user)
	if err != nil {
		return "", err
	}
	c.sub(user.ID)
	return "subscribed to match results, to opt out: /unsub", nil
}

func (c *SubCommand) Help() string {
	return `Subscribes you to match result notifications`
}

func (c *SubCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}

func (c *SubCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}
