package tgbot

import (
	"strconv"
	"strings"

	"poolleague/bot/model"
	"poolleague/internal/service"

	mapset "github.com/deckarep/golang-set/v2"
)

type RecentCommand struct {
	leagueService *service.LeagueService
}

func (c *RecentCommand) Run(_ model.User, _ string) (string, error) {
	activity, err := c.leagueService.RecentActivity()
	if err != nil {
		return "", err
	}
	if len(activity) == 0 {
		return "no matches played yet", nil
	}
	var buffer strings.Builder
	for _, m := range activity {
		buffer.WriteString(formatMatchLine(m))
		buffer.WriteString("\n")
	}
	return buffer.String(), nil
}

func formatMatchLine(m service.MatchSummary) string {
	var buf strings.Builder
	buf.WriteString("🏆 ")
	buf.WriteString(m.WinnerName)
	buf.WriteString(" def. ")
	buf.WriteString(m.LoserName)
	buf.WriteString(" ")
	buf.WriteString(strconv.Itoa(m.WinnerScore))
	buf.WriteString(":")
	buf.WriteString(strconv.Itoa(m.LoserScore))
	if m.WinnerRank > m.LoserRank {
		buf.WriteString(" (upset, ranks swapped)")
	}
	return buf.String()
}

func (c *RecentCommand) Help() string {
	return `Shows the latest match results`
}

func (c *RecentCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}

func (c *RecentCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}
