package web

import (
	"errors"
	"net/url"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"

	"github.com/goserg/scoreboard/internal/domain"
	"github.com/goserg/scoreboard/internal/normalize"
)

var (
	ErrMissingUsername = errors.New("username is required")
	ErrBadAvatar       = errors.New("avatar must be an http or https URL")
	ErrMissingPlayer   = errors.New("select two players")
	ErrSamePlayer      = errors.New("select two different players")
)

type playerResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Points   int    `json:"points"`
	Ranking  int    `json:"ranking"`
	Avatar   string `json:"avatar"`
}

func convertRankedPlayer(p domain.RankedPlayer) playerResponse {
	return playerResponse{
		ID:       p.ID.String(),
		Username: p.Username,
		Points:   p.Points,
		Ranking:  p.Rank,
		Avatar:   p.Avatar,
	}
}

func convertRanking(players []domain.RankedPlayer) []playerResponse {
	converted := make([]playerResponse, 0, len(players))
	for i := range players {
		converted = append(converted, convertRankedPlayer(players[i]))
	}
	return converted
}

type createPlayer struct {
	Username string  `json:"username" form:"username"`
	Points   int     `json:"points" form:"points"`
	Avatar   *string `json:"avatar" form:"avatar"`
}

func (c createPlayer) Validate() error {
	var err error
	if normalize.Name(c.Username) == "" {
		err = errors.Join(err, ErrMissingUsername)
	}
	if c.Avatar != nil && *c.Avatar != "" {
		u, parseErr := url.Parse(*c.Avatar)
		if parseErr != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			err = errors.Join(err, ErrBadAvatar)
		}
	}
	return err
}

func (c createPlayer) convertToDomain() domain.NewPlayer {
	p := domain.NewPlayer{
		Username: c.Username,
		Points:   c.Points,
	}
	if c.Avatar != nil {
		p.Avatar = *c.Avatar
	}
	return p
}

type createMatch struct {
	Player1 uuid.UUID
	Player2 uuid.UUID
}

// Validate is used by the page form only. The API hands any two ids to the
// simulator as they are.
func (c createMatch) Validate() error {
	if c.Player1 == uuid.Nil || c.Player2 == uuid.Nil {
		return ErrMissingPlayer
	}
	if mapset.NewSet(c.Player1, c.Player2).Cardinality() != 2 {
		return ErrSamePlayer
	}
	return nil
}

type message struct {
	Message string `json:"message"`
}

type createdMessage struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type updatedMessage struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

type deletedMessage struct {
	Message string `json:"message"`
	Count   int64  `json:"count"`
}
