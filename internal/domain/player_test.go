package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMedal(t *testing.T) {
	t.Parallel()
	tests := []struct {
		rank int
		want string
	}{
		{rank: 1, want: "🥇"},
		{rank: 2, want: "🥈"},
		{rank: 3, want: "🥉"},
		{rank: 4, want: "4"},
		{rank: 11, want: "11"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Medal(tt.rank))
		})
	}
}
