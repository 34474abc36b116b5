package tgbot

import (
	"poolleague/bot/botstorage"
	"poolleague/bot/model"
	"poolleague/internal/service"

	mapset "github.com/deckarep/golang-set/v2"
)

type Command interface {
	Run(user model.User, args string) (string, error)
	Help() string
	Permission() mapset.Set[model.UserRole]
	Visibility() mapset.Set[model.UserRole]
}

type Commands struct {
	list map[string]Command
}

func NewCommands(
	ls *service.LeagueService,
	bs botstorage.BotStorage,
	adminPass string,
	subFn func(id int),
	unsubFn func(id int),
	sendNotifFn func(msg string),
) *Commands {
	hc := &HelpCommand{}
	uc := Commands{
		list: map[string]Command{
			"help":  hc,
			"start": hc,
			"top": &TopCommand{
				leagueService: ls,
			},
			"recent": &RecentCommand{
				leagueService: ls,
			},
			"me": &MeCommand{
				leagueService: ls,
				botStorage:    bs,
			},
			"challenge": &ChallengeCommand{
				leagueService: ls,
				botStorage:    bs,
			},
			"accept": &AcceptCommand{
				leagueService: ls,
				botStorage:    bs,
			},
			"decline": &DeclineCommand{
				leagueService: ls,
				botStorage:    bs,
			},
			"result": &ResultCommand{
				leagueService: ls,
				notify:        sendNotifFn,
			},
			"role": &RoleCommand{
				adminPassword: adminPass,
				botStorage:    bs,
			},
			"sub": &SubCommand{
				botStorage: bs,
				sub:        subFn,
			},
			"unsub": &UnsubCommand{
				botStorage: bs,
				unsub:      unsubFn,
			},
		},
	}
	hc.commands = uc.list
	return &uc
}

func (uc *Commands) RunCommand(user model.User, cmd string, args string) (string, error) {
	for s, command := range uc.list {
		if cmd == s {
			if command.Permission().Contains(user.Role) {
				return command.Run(user, args)
			}
		}
	}
	return "", ErrBadRequest
}
