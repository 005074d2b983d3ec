package web

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/goserg/scoreboard/internal/domain"
)

func strPtr(s string) *string {
	return &s
}

func Test_createMatch_Validate(t *testing.T) {
	tests := []struct {
		name    string
		match   createMatch
		wantErr error
	}{
		{
			name: "two players",
			match: createMatch{
				Player1: uuid.NameSpaceDNS,
				Player2: uuid.NameSpaceURL,
			},
			wantErr: nil,
		},
		{
			name: "same player",
			match: createMatch{
				Player1: uuid.NameSpaceDNS,
				Player2: uuid.NameSpaceDNS,
			},
			wantErr: ErrSamePlayer,
		},
		{
			name: "missing first",
			match: createMatch{
				Player1: uuid.Nil,
				Player2: uuid.NameSpaceURL,
			},
			wantErr: ErrMissingPlayer,
		},
		{
			name: "missing both",
			match: createMatch{
				Player1: uuid.Nil,
				Player2: uuid.Nil,
			},
			wantErr: ErrMissingPlayer,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.match.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func Test_createPlayer_Validate(t *testing.T) {
	tests := []struct {
		name     string
		player   createPlayer
		wantErrs []error
	}{
		{name: "username only", player: createPlayer{Username: "alice"}},
		{name: "empty avatar", player: createPlayer{Username: "alice", Avatar: strPtr("")}},
		{name: "avatar url", player: createPlayer{Username: "alice", Avatar: strPtr("https://example.com/a.png")}},
		{name: "blank username", player: createPlayer{Username: "  "}, wantErrs: []error{ErrMissingUsername}},
		{name: "relative avatar", player: createPlayer{Username: "alice", Avatar: strPtr("a.png")}, wantErrs: []error{ErrBadAvatar}},
		{
			name:     "both wrong",
			player:   createPlayer{Avatar: strPtr("ftp://example.com/a.png")},
			wantErrs: []error{ErrMissingUsername, ErrBadAvatar},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.player.Validate()
			if len(tt.wantErrs) == 0 {
				assert.NoError(t, err)
				return
			}
			for _, want := range tt.wantErrs {
				assert.ErrorIs(t, err, want)
			}
			assert.Len(t, unwrap(err), len(tt.wantErrs))
		})
	}
}

func Test_convertRankedPlayer(t *testing.T) {
	id := uuid.New()
	got := convertRankedPlayer(domain.RankedPlayer{
		Player: domain.Player{ID: id, Username: "alice", Points: 7},
		Rank:   2,
	})
	assert.Equal(t, playerResponse{
		ID:       id.String(),
		Username: "alice",
		Points:   7,
		Ranking:  2,
		Avatar:   "",
	}, got)
	assert.NotNil(t, convertRanking(nil))
}
