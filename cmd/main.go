package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	botsqlite "poolleague/bot/botstorage/sqlite"
	"poolleague/bot/tgbot"
	"poolleague/internal/config"
	"poolleague/internal/domain"
	"poolleague/internal/logger"
	sqlite3 "poolleague/internal/migrate"
	"poolleague/internal/service"
	"poolleague/internal/storage/sqlite"
	"poolleague/internal/web"

	"github.com/google/uuid"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Server.Debug)

	store, err := sqlite.New(cfg.Server.SqlitePath)
	if err != nil {
		return err
	}
	defer store.Close()
	err = sqlite3.UpServerDB(store.DB())
	if err != nil {
		return err
	}

	league, err := buildLeague(cfg, store)
	if err != nil {
		return err
	}
	leagueService := service.New(store, store, store, league, log)

	if cfg.Server.TgBotEnabled {
		botStorage, err := botsqlite.New(log, cfg.TgBot)
		if err != nil {
			return err
		}
		bot, err := tgbot.New(leagueService, botStorage, cfg, log)
		if err != nil {
			return err
		}
		go bot.Run()
		defer bot.Stop()
	}

	server, err := web.New(leagueService, cfg.Server, log)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		log.WithField("signal", sig.String()).Info("shutting down")
		return server.Shutdown()
	}
}

// buildLeague rebuilds the aggregate counters from persisted state. The
// counters are derived data, only the players, challenges and matches are
// stored.
func buildLeague(cfg config.Config, store *sqlite.Storage) (domain.League, error) {
	league := domain.League{
		ID:        uuid.New(),
		Name:      cfg.League.Name,
		City:      cfg.League.City,
		CreatedAt: time.Now(),
		Rules:     cfg.League.Domain(),
	}
	players, err := store.ListPlayers()
	if err != nil {
		return domain.League{}, err
	}
	league.TotalPlayers = len(players)
	for _, p := range players {
		if p.Status == domain.StatusActive {
			league.ActivePlayers++
		}
		if p.MonthlyFeePaid {
			league.TotalPrizePool += league.Rules.MonthlyMinimumFee
		}
	}
	matches, err := store.ListMatches()
	if err != nil {
		return domain.League{}, err
	}
	league.TotalMatchesPlayed = len(matches)
	for _, m := range matches {
		if m.PaymentStatus == domain.PaymentComplete {
			league.TotalPrizePool += 2 * league.Rules.MatchWagerAmount
		}
	}
	return league, nil
}
