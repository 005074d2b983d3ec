package web

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/goserg/scoreboard/internal/storage"
)

func missingParam(name string) error {
	return fiber.NewError(fiber.StatusBadRequest, "Missing "+name+" parameter")
}

func idParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid player id "+strconv.Quote(ctx.Params("id")))
	}
	return id, nil
}

func queryID(ctx *fiber.Ctx, name string) (uuid.UUID, error) {
	value := ctx.Query(name)
	if value == "" {
		return uuid.Nil, missingParam(name)
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid "+name+" parameter")
	}
	return id, nil
}

func (s *Server) handleCreatePlayer(ctx *fiber.Ctx) error {
	var req createPlayer
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	id, err := s.playerService.CreatePlayer(ctx.UserContext(), req.convertToDomain())
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(createdMessage{
		Message: "Player created successfully",
		ID:      id.String(),
	})
}

func (s *Server) handleGetPlayer(ctx *fiber.Ctx) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}
	player, err := s.playerService.GetPlayer(ctx.UserContext(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(message{
				Message: "No records found for id " + id.String(),
			})
		}
		return err
	}
	return ctx.JSON(convertRankedPlayer(player))
}

func (s *Server) handleUpdatePoints(ctx *fiber.Ctx) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}
	raw := ctx.Query("points")
	if raw == "" {
		return missingParam("points")
	}
	delta, err := strconv.Atoi(raw)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, ErrBadPoints.Error())
	}
	n, err := s.playerService.AddPoints(ctx.UserContext(), id, delta)
	if err != nil {
		return err
	}
	if n == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(updatedMessage{
			Message: "Player not found",
		})
	}
	return ctx.JSON(updatedMessage{
		Message: "Player updated successfully",
		Success: true,
	})
}

func (s *Server) handleDeletePlayer(ctx *fiber.Ctx) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}
	n, err := s.playerService.DeletePlayer(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(message{Message: "Player not found"})
	}
	return ctx.JSON(message{Message: "Player deleted successfully"})
}

func (s *Server) handleListPlayers(ctx *fiber.Ctx) error {
	players, err := s.playerService.ListPlayers(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(convertRanking(players))
}

func (s *Server) handleDeleteAll(ctx *fiber.Ctx) error {
	n, err := s.playerService.DeleteAll(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(deletedMessage{
		Message: "Players deleted successfully",
		Count:   n,
	})
}

// handleSimulateMatch accepts any two ids, including equal or unknown ones.
// An unknown winner leaves the ranking unchanged.
func (s *Server) handleSimulateMatch(ctx *fiber.Ctx) error {
	player1, err := queryID(ctx, "player1Id")
	if err != nil {
		return err
	}
	player2, err := queryID(ctx, "player2Id")
	if err != nil {
		return err
	}
	result, err := s.playerService.SimulateMatch(ctx.UserContext(), player1, player2)
	if err != nil {
		return err
	}
	return ctx.JSON(convertRanking(result.Ranking))
}
