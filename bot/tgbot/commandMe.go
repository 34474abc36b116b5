package tgbot

import (
	"strconv"
	"strings"

	"poolleague/bot/botstorage"
	"poolleague/bot/model"
	"poolleague/internal/service"

	mapset "github.com/deckarep/golang-set/v2"
)

type MeCommand struct {
	leagueService *service.LeagueService
	botStorage    botstorage.BotStorage
}

func (c *MeCommand) Run(user model.User, args string) (string, error) {
	if args == "" {
		return c.processMe(user)
	}
	return c.connectMe(user, args)
}

func (c *MeCommand) Help() string {
	return `Shows your ladder standing. Use /me <player name> to link your player first.`
}

func (c *MeCommand) processMe(user model.User) (string, error) {
	playerID, err := c.botStorage.GetMyPlayer(user)
	if err != nil {
		return "", err
	}
	card, err := c.leagueService.GetPlayerCard(playerID)
	if err != nil {
		return "", err
	}
	return printPlayerCard(card), nil
}

func (c *MeCommand) connectMe(user model.User, playerName string) (string, error) {
	player, err := c.leagueService.GetPlayerByName(playerName)
	if err != nil {
		return "", err
	}
	err = c.botStorage.LinkPlayer(user, player)
	if err != nil {
		return "", err
	}
	return "player " + player.DisplayName() + " linked, now you can use /me", nil
}

func printPlayerCard(card service.PlayerCard) string {
	var buf strings.Builder
	if card.Player.Rank == 1 {
		buf.WriteString("👑 ")
	}
	buf.WriteString("#")
	buf.WriteString(strconv.Itoa(card.Player.Rank))
	buf.WriteString(" ")
	buf.WriteString(card.Player.DisplayName())
	buf.WriteString("\n")
	buf.WriteString("record: ")
	buf.WriteString(strconv.Itoa(card.Player.Stats.MatchesWon))
	buf.WriteString("-")
	buf.WriteString(strconv.Itoa(card.Player.Stats.MatchesLost))
	buf.WriteString(", streak ")
	buf.WriteString(strconv.Itoa(card.Player.Stats.WinStreak))
	buf.WriteString("\n")
	if card.Cooldown.OnCooldown {
		buf.WriteString("on cooldown, ")
		buf.WriteString(strconv.Itoa(card.Cooldown.HoursRemaining))
		buf.WriteString("h remaining\n")
	}
	if len(card.Targets) > 0 {
		buf.WriteString("can challenge: ")
		names := make([]string, 0, len(card.Targets))
		for _, t := range card.Targets {
			names = append(names, t.DisplayName())
		}
		buf.WriteString(strings.Join(names, ", "))
		buf.WriteString("\n")
	}
	return buf.String()
}

func (c *MeCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}

func (c *MeCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}
