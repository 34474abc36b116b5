package tgbot

import (
	"strconv"
	"strings"

	"poolleague/bot/model"
	"poolleague/internal/service"

	mapset "github.com/deckarep/golang-set/v2"
)

type TopCommand struct {
	leagueService *service.LeagueService
}

func (c *TopCommand) Run(_ model.User, _ string) (string, error) {
	players, err := c.leagueService.RankedPlayers()
	if err != nil {
		return "", err
	}
	var buffer strings.Builder
	for i := range players {
		if i > 9 {
			break
		}
		if players[i].Rank == 1 {
			buffer.WriteString("👑 ")
		}
		buffer.WriteString(strconv.Itoa(players[i].Rank))
		buffer.WriteString(". ")
		buffer.WriteString(players[i].DisplayName())
		buffer.WriteString(" (")
		buffer.WriteString(strconv.Itoa(players[i].Stats.MatchesWon))
		buffer.WriteString("-")
		buffer.WriteString(strconv.Itoa(players[i].Stats.MatchesLost))
		buffer.WriteString(")\n")
	}
	return buffer.String(), nil
}

func (c *TopCommand) Help() string {
	return `Shows the ladder, the King on top`
}

func (c *TopCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}

func (c *TopCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}
