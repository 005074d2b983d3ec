package web

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var ErrBadPoints = errors.New("points must be a whole number")

func parseNewPlayerForm(ctx *fiber.Ctx) (createPlayer, error) {
	req := createPlayer{
		Username: ctx.FormValue("username", ""),
	}
	var err error
	if points := strings.TrimSpace(ctx.FormValue("points", "")); points != "" {
		n, convErr := strconv.Atoi(points)
		if convErr != nil {
			err = errors.Join(err, ErrBadPoints)
		}
		req.Points = n
	}
	if avatar := strings.TrimSpace(ctx.FormValue("avatar", "")); avatar != "" {
		req.Avatar = &avatar
	}
	err = errors.Join(err, req.Validate())
	if err != nil {
		return createPlayer{}, err
	}
	return req, nil
}

func parseMatchForm(ctx *fiber.Ctx) (createMatch, error) {
	var req createMatch
	var err error
	for _, f := range []struct {
		name string
		dst  *uuid.UUID
	}{
		{name: "player1Id", dst: &req.Player1},
		{name: "player2Id", dst: &req.Player2},
	} {
		value := ctx.FormValue(f.name, "")
		if value == "" {
			continue
		}
		id, parseErr := uuid.Parse(value)
		if parseErr != nil {
			err = errors.Join(err, errors.New("unknown player "+strconv.Quote(value)))
			continue
		}
		*f.dst = id
	}
	if err != nil {
		return createMatch{}, err
	}
	if err := req.Validate(); err != nil {
		return createMatch{}, err
	}
	return req, nil
}
