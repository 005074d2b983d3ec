// Package ranking orders players by points. Ranks are 1-based positions in
// the sorted list: equal points get consecutive ranks in whatever order the
// stable sort leaves them.
package ranking

import (
	"sort"

	"github.com/goserg/scoreboard/internal/domain"
)

// RankAll returns every player exactly once, most points first.
// The input slice is left untouched.
func RankAll(players []domain.Player) []domain.RankedPlayer {
	sorted := make([]domain.Player, len(players))
	copy(sorted, players)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Points > sorted[j].Points
	})
	ranked := make([]domain.RankedPlayer, 0, len(sorted))
	for i := range sorted {
		ranked = append(ranked, domain.RankedPlayer{
			Player: sorted[i],
			Rank:   i + 1,
		})
	}
	return ranked
}

// RankOne finds target by ID in the ranking of all. The returned entry carries
// the data from all, not from target.
func RankOne(target domain.Player, all []domain.Player) (domain.RankedPlayer, bool) {
	for _, p := range RankAll(all) {
		if p.ID == target.ID {
			return p, true
		}
	}
	return domain.RankedPlayer{}, false
}
