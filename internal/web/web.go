package web

import (
	"errors"
	"io/fs"
	"net/http"
	"strconv"
	"time"

	embedded "poolleague"
	"poolleague/internal/config"
	"poolleague/internal/domain"
	"poolleague/internal/service"
	"poolleague/internal/storage"
	"poolleague/internal/web/webpath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const playerHeader = "X-Player-ID"

// Server is a thin presentation adapter over the league service. The acting
// player identity arrives as a header and is treated as an external fact.
type Server struct {
	league *service.LeagueService
	app    *fiber.App
	cfg    config.Server
	log    *logrus.Entry
}

func New(ls *service.LeagueService, cfg config.Server, log *logrus.Logger) (*Server, error) {
	server := Server{
		league: ls,
		cfg:    cfg,
		log:    log.WithField("name", "web"),
	}

	fsFS, err := fs.Sub(embedded.Views, "views")
	if err != nil {
		return nil, err
	}
	engine := html.NewFileSystem(http.FS(fsFS), ".html")
	engine.Reload(cfg.Debug)
	engine.Debug(cfg.Debug)
	engine.AddFunc("FormatDate", formatDate)

	app := fiber.New(fiber.Config{
		Views: engine,
	})

	app.Get(webpath.Home, server.handleMain)

	app.Get(webpath.ApiLeague, server.handleLeague)
	app.Get(webpath.ApiActivity, server.handleActivity)

	app.Get(webpath.ApiPlayers, server.handleListPlayers)
	app.Post(webpath.ApiPlayers, server.handleCreatePlayer)
	app.Get(webpath.ApiGetPlayer, server.handlePlayerCard)
	app.Get(webpath.ApiPlayerTargets, server.handlePlayerTargets)
	app.Get(webpath.ApiPlayerCooldown, server.handlePlayerCooldown)
	app.Get(webpath.ApiPlayerMatches, server.handlePlayerMatches)
	app.Post(webpath.ApiPlayerStatus, server.handleSetStatus)
	app.Post(webpath.ApiPlayerFee, server.handlePayFee)

	app.Get(webpath.ApiMyChallenges, server.handleMyChallenges)
	app.Get(webpath.ApiMyMatch, server.handleMyMatch)

	app.Post(webpath.ApiChallenges, server.handleCreateChallenge)
	app.Post(webpath.ApiAcceptChallenge, server.handleAcceptChallenge)
	app.Post(webpath.ApiDeclineChallenge, server.handleDeclineChallenge)
	app.Post(webpath.ApiCancelChallenge, server.handleCancelChallenge)

	app.Post(webpath.ApiMatches, server.handleReportMatch)
	app.Post(webpath.ApiConfirmMatch, server.handleConfirmMatch)
	app.Post(webpath.ApiDisputeMatch, server.handleDisputeMatch)
	app.Post(webpath.ApiMatchPayment, server.handleMatchPayment)

	server.app = app
	return &server, nil
}

func (s *Server) Serve() error {
	return s.app.Listen(s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port))
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) handleMain(ctx *fiber.Ctx) error {
	players, err := s.league.RankedPlayers()
	if err != nil {
		return err
	}
	activity, err := s.league.RecentActivity()
	if err != nil {
		return err
	}
	return ctx.Render("index", fiber.Map{
		"Title":    s.league.League().Name,
		"Players":  players,
		"Activity": activity,
	}, "layouts/main")
}

func (s *Server) handleLeague(ctx *fiber.Ctx) error {
	return ctx.JSON(s.league.League())
}

func (s *Server) handleActivity(ctx *fiber.Ctx) error {
	activity, err := s.league.RecentActivity()
	if err != nil {
		return s.respondErr(ctx, err)
	}
	return ctx.JSON(activity)
}

func (s *Server) handleListPlayers(ctx *fiber.Ctx) error {
	players, err := s.league.RankedPlayers()
	if err != nil {
		return s.respondErr(ctx, err)
	}
	return ctx.JSON(players)
}

func (s *Server) handleCreatePlayer(ctx *fiber.Ctx) error {
	var req createPlayerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, err)
	}
	if err := req.Validate(); err != nil {
		return badRequest(ctx, err)
	}
	player, err := s.league.CreatePlayer(req.Name, req.Nickname)
	if err != nil {
		return s.respondErr(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(player)
}

func (s *Server) handlePlayerCard(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return badRequest(ctx, err)
	}
	card, err := s.league.GetPlayerCard(id)
	if err != nil {
		return s.respondErr(ctx, err)
	}
	return ctx.JSON(card)
}

func (s *Server) handlePlayerTargets(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return badRequest(ctx, err)
	}
	targets, err := s.league.ValidChallengeTargets(id)
	if err != nil {
		return s.respondErr(ctx, err)
	}
	return ctx.JSON(targets)
}

func (s *Server) handlePlayerCooldown(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return badRequest(ctx, err)
	}
	status, err := s.league.CooldownStatus(id)
	if err != nil {
		return s.respondErr(ctx, err)
	}
	return ctx.JSON(status)
}

func (s *Server) handlePlayerMatches(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return badRequest(ctx, err)
	}
	history, err := s.league.PlayerMatchHistory(id)
	if err != nil {
		return s.respondErr(ctx, err)
	}
	return ctx.JSON(history)
}

func (s *Server) handleSetStatus(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return badRequest(ctx, err)
	}
	var req setStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, err)
	}
	player, err := s.league.SetPlayerStatus(id, domain.PlayerStatus(req.Status))
	if err != nil {
		return s.respondErr(ctx, err)
	}
	return ctx.JSON(player)
}

func (s *Server) handlePayFee(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return badRequest(ctx, err)
	}
	player, err := s.league.PayMonthlyFee(id)
	if err != nil {
		return s.respondErr(ctx, err)
	}
	return ctx.JSON(player)
}

func (s *Server) handleMyChallenges(ctx *fiber.Ctx) error {
	playerID, err := currentPlayer(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	pending, err := s.league.PendingChallenges(playerID)
	if err != nil {
		return s.respondErr(ctx, err)
	}
	return ctx.JSON(pending)
}

func (s *Server) handleMyMatch(ctx *fiber.Ctx) error {
	playerID, err := currentPlayer(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	match, found, err := s.league.ActiveMatch(playerID)
	if err != nil {
		return s.respondErr(ctx, err)
	}
	if !found {
		return ctx.SendStatus(fiber.StatusNoContent)
	}
	return ctx.JSON(match)
}

func (s *Server) handleCreateChallenge(ctx *fiber.Ctx) error {
	challengerID, err := currentPlayer(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	var req createChallengeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, err)
	}
	if err := req.Validate(); err != nil {
		return badRequest(ctx, err)
	}
	challenge, err := s.league.CreateChallenge(challengerID, req.OpponentID)
	if err != nil {
		return s.respondErr(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(challenge)
}

func (s *Server) handleAcceptChallenge(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return badRequest(ctx, err)
	}
	challenge, err := s.league.AcceptChallenge(id)
	if err != nil {
		return s.respondErr(ctx, err)
	}
	return ctx.JSON(challenge)
}

func (s *Server) handleDeclineChallenge(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return badRequest(ctx, err)
	}
	challenge, err := s.league.DeclineChallenge(id)
	if err != nil {
		return s.respondErr(ctx, err)
	}
	return ctx.JSON(challenge)
}

func (s *Server) handleCancelChallenge(ctx *fiber.Ctx) error {
	playerID, err := currentPlayer(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return badRequest(ctx, err)
	}
	challenge, err := s.league.CancelChallenge(id, playerID)
	if err != nil {
		return s.respondErr(ctx, err)
	}
	return ctx.JSON(challenge)
}

func (s *Server) handleReportMatch(ctx *fiber.Ctx) error {
	reporterID, err := currentPlayer(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	var req reportMatchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, err)
	}
	if err := req.Validate(); err != nil {
		return badRequest(ctx, err)
	}
	match, err := s.league.ReportMatchResult(req.ChallengeID, req.WinnerID, req.WinnerScore, req.LoserScore, reporterID)
	if err != nil {
		return s.respondErr(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(match)
}

func (s *Server) handleConfirmMatch(ctx *fiber.Ctx) error {
	playerID, err := currentPlayer(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return badRequest(ctx, err)
	}
	match, err := s.league.ConfirmMatch(id, playerID)
	if err != nil {
		return s.respondErr(ctx, err)
	}
	return ctx.JSON(match)
}

func (s *Server) handleDisputeMatch(ctx *fiber.Ctx) error {
	playerID, err := currentPlayer(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return badRequest(ctx, err)
	}
	var req disputeMatchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, err)
	}
	match, err := s.league.DisputeMatch(id, playerID, req.Reason)
	if err != nil {
		return s.respondErr(ctx, err)
	}
	return ctx.JSON(match)
}

func (s *Server) handleMatchPayment(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return badRequest(ctx, err)
	}
	match, err := s.league.MarkMatchPaid(id)
	if err != nil {
		return s.respondErr(ctx, err)
	}
	return ctx.JSON(match)
}

func currentPlayer(ctx *fiber.Ctx) (uuid.UUID, error) {
	header := ctx.Get(playerHeader)
	if header == "" {
		return uuid.Nil, errors.New("missing " + playerHeader + " header")
	}
	return uuid.Parse(header)
}

// respondErr maps service failures onto status codes: unknown ids are 404,
// rule violations 422, everything else 500.
func (s *Server) respondErr(ctx *fiber.Ctx, err error) error {
	var verr *service.ValidationError
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &verr):
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": verr.Reason})
	default:
		s.log.WithError(err).Error("request failed")
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
}

func badRequest(ctx *fiber.Ctx, err error) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}

func formatDate(t time.Time) string {
	return t.Format("02.01.2006")
}
