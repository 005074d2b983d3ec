package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/goserg/scoreboard/internal/domain"
	"github.com/goserg/scoreboard/internal/web/webpath"
)

const title = "Scoreboard"

func (s *Server) renderMain(ctx *fiber.Ctx, d data) error {
	players, err := s.playerService.ListPlayers(ctx.UserContext())
	if err != nil {
		ctx.Status(statusFor(err))
		d = d.WithErrors(err)
	}
	return ctx.Render("index", d.With("Players", convertRanking(players)), "layouts/main")
}

func (s *Server) handleMain(ctx *fiber.Ctx) error {
	return s.renderMain(ctx, newData(title))
}

func (s *Server) handleNewPlayerPost(ctx *fiber.Ctx) error {
	req, err := parseNewPlayerForm(ctx)
	if err != nil {
		ctx.Status(fiber.StatusBadRequest)
		return s.renderMain(ctx, newData(title).WithErrors(err))
	}
	if _, err := s.playerService.CreatePlayer(ctx.UserContext(), req.convertToDomain()); err != nil {
		ctx.Status(statusFor(err))
		return s.renderMain(ctx, newData(title).WithErrors(err))
	}
	return ctx.Redirect(webpath.Home)
}

func (s *Server) handleDeletePlayerPost(ctx *fiber.Ctx) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}
	if _, err := s.playerService.DeletePlayer(ctx.UserContext(), id); err != nil {
		ctx.Status(statusFor(err))
		return s.renderMain(ctx, newData(title).WithErrors(err))
	}
	return ctx.Redirect(webpath.Home)
}

func (s *Server) handleMatchPost(ctx *fiber.Ctx) error {
	req, err := parseMatchForm(ctx)
	if err != nil {
		ctx.Status(fiber.StatusBadRequest)
		return s.renderMain(ctx, newData(title).WithErrors(err))
	}
	result, err := s.playerService.SimulateMatch(ctx.UserContext(), req.Player1, req.Player2)
	d := newData(title).With("Match", matchView(result))
	if err != nil {
		ctx.Status(statusFor(err))
		d = d.WithErrors(err)
	}
	return s.renderMain(ctx, d)
}

type matchResult struct {
	Winner  string
	Applied bool
}

func matchView(result domain.MatchResult) matchResult {
	view := matchResult{Applied: result.Applied}
	for _, p := range result.Ranking {
		if p.ID == result.Winner {
			view.Winner = p.Username
		}
	}
	return view
}
