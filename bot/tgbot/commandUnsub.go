package tgbot

import (
	"poolleague/bot/botstorage"
	"poolleague/bot/model"

	mapset "github.com/deckarep/golang-set/v2"
)

type UnsubCommand struct {
	botStorage botstorage.BotStorage
	unsub      func(int)
}

func (c *UnsubCommand) Run(user model.User, _ string) (string, error) {
	err := c.botStorage.Unsubscribe(user)
	if err != nil {
		return "", err
	}
	c.unsub(user.ID)
	return "unsubscribed, to opt back in: /sub", nil
}

func (c *UnsubCommand) Help() string {
	return `Unsubscribes you from match result notifications`
}

func (c *UnsubCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}

func (c *UnsubCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}
