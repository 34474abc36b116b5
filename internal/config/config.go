package config

import (
	"os"

	"poolleague/internal/domain"

	"github.com/BurntSushi/toml"
)

type TgBot struct {
	TelegramApiToken string `toml:"telegram_apitoken"`
	AdminPass        string `toml:"admin_pass"`
	SqliteFile       string `toml:"sqlite_file"`
}

type Server struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	TgBotEnabled bool   `toml:"tg_bot_enabled"`
	Debug        bool   `toml:"debug_mode"`
	SqlitePath   string `toml:"sqlite_path"`
}

type LeagueRules struct {
	MaxChallengeDistance     int `toml:"max_challenge_distance"`
	CooldownHoursAfterLoss   int `toml:"cooldown_hours_after_loss"`
	MatchWagerAmount         int `toml:"match_wager_amount"`
	MonthlyMinimumFee        int `toml:"monthly_minimum_fee"`
	ChallengeExpirationHours int `toml:"challenge_expiration_hours"`
	InactiveDaysThreshold    int `toml:"inactive_days_threshold"`
	GamesPerMatch            int `toml:"games_per_match"`
}

type League struct {
	Name  string      `toml:"name"`
	City  string      `toml:"city"`
	Rules LeagueRules `toml:"rules"`
}

type Config struct {
	TgBot  TgBot
	Server Server
	League League
}

func New() (Config, error) {
	var botCfg TgBot
	_, err := toml.DecodeFile("configs/bot.toml", &botCfg)
	if err != nil {
		return Config{}, err
	}
	token := os.Getenv("TELEGRAM_APITOKEN")
	if token != "" {
		botCfg.TelegramApiToken = token
	}

	var serverCfg Server
	_, err = toml.DecodeFile("configs/server.toml", &serverCfg)
	if err != nil {
		return Config{}, err
	}

	leagueCfg := League{Rules: defaultRules()}
	_, err = toml.DecodeFile("configs/league.toml", &leagueCfg)
	if err != nil {
		return Config{}, err
	}

	return Config{
		TgBot:  botCfg,
		Server: serverCfg,
		League: leagueCfg,
	}, nil
}

func defaultRules() LeagueRules {
	return LeagueRules(domain.DefaultRules())
}

// Domain converts the file representation into league policy.
func (l League) Domain() domain.Rules {
	return domain.Rules(l.Rules)
}
