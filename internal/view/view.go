// Package view shapes resolver output into render-ready structures:
// per-player season aggregates, display dates, and result badges.
package view

import (
	"time"

	"github.com/newfriendscc/clubsite/internal/model"
)

// PlayerView is a player with the current season's derived aggregate
// attached. SeasonStats is nil when no current season exists — distinct
// from an all-zero aggregate, which means the season exists but the
// player has no stat lines in it.
type PlayerView struct {
	model.Player
	SeasonStats *model.SeasonStats `json:"seasonStats,omitempty"`
}

// AggregateSeason folds a player's stat lines into the twelve-counter
// season summary. Missing numeric fields were already zeroed at scan
// time, so plain sums are safe. No averaging happens here; batting
// average and strike rate are career figures stored on the player.
func AggregateSeason(lines []model.PlayerSeasonStat) model.SeasonStats {
	agg := model.SeasonStats{Matches: len(lines)}
	for _, l := range lines {
		agg.Runs += l.Runs
		agg.BallsPlayed += l.BallsPlayed
		agg.Wickets += l.Wickets
		agg.Catches += l.Catches
		agg.Stumpings += l.Stumpings
		agg.Runouts += l.Runouts
		if l.IsFifty {
			agg.Fifties++
		}
		if l.IsHundred {
			agg.Hundreds++
		}
		if l.NotOut {
			agg.NotOuts++
		}
		if l.IsFiveWkt {
			agg.FiveWickets++
		}
		if l.IsTenWkt {
			agg.TenWickets++
		}
	}
	return agg
}

// AttachSeasonStats pairs each player with their aggregate from the
// given stat lines. A nil lines slice means "no current season": players
// come back with SeasonStats absent. Per-player selection is a linear
// filter; per-season row counts are small enough that nothing smarter
// is warranted.
func AttachSeasonStats(players []model.Player, lines []model.PlayerSeasonStat) []PlayerView {
	views := make([]PlayerView, 0, len(players))

	if lines == nil {
		for _, p := range players {
			views = append(views, PlayerView{Player: p})
		}
		return views
	}

	for _, p := range players {
		var mine []model.PlayerSeasonStat
		for _, l := range lines {
			if l.PlayerID == p.ID {
				mine = append(mine, l)
			}
		}
		agg := AggregateSeason(mine)
		views = append(views, PlayerView{Player: p, SeasonStats: &agg})
	}
	return views
}

// PlayerGroup is one role section of the roster.
type PlayerGroup struct {
	Role    model.Role   `json:"role"`
	Players []PlayerView `json:"players"`
}

// GroupByRole splits players into the four roster sections in display
// order. Every section is present even when empty.
func GroupByRole(players []PlayerView) []PlayerGroup {
	groups := make([]PlayerGroup, 0, len(model.Roles))
	for _, role := range model.Roles {
		g := PlayerGroup{Role: role, Players: []PlayerView{}}
		for _, p := range players {
			if p.Role == role {
				g.Players = append(g.Players, p)
			}
		}
		groups = append(groups, g)
	}
	return groups
}

// FilterByRole returns the players with the given role, in input order.
func FilterByRole(players []PlayerView, role model.Role) []PlayerView {
	out := []PlayerView{}
	for _, p := range players {
		if p.Role == role {
			out = append(out, p)
		}
	}
	return out
}

// --------------------------------------------------------------------------
// Display formatting
// --------------------------------------------------------------------------

// FormatMatchDate renders the long form used on fixture cards.
func FormatMatchDate(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}

// FormatShortDate renders the compact form used on result cards.
func FormatShortDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// FormatMatchTime renders the kick-off time.
func FormatMatchTime(t time.Time) string {
	return t.Format("3:04 PM")
}

// Badge is the css class and label for a result pill.
type Badge struct {
	Class string `json:"class"`
	Label string `json:"label"`
}

// ResultBadge classifies a match outcome for display. Unknown results
// get a neutral badge rather than an error.
func ResultBadge(result model.MatchResult) Badge {
	switch result {
	case model.ResultWon:
		return Badge{Class: "badge-won", Label: "Won"}
	case model.ResultLost:
		return Badge{Class: "badge-lost", Label: "Lost"}
	case model.ResultDraw:
		return Badge{Class: "badge-draw", Label: "Draw"}
	case model.ResultTie:
		return Badge{Class: "badge-tie", Label: "Tie"}
	default:
		return Badge{Class: "badge-neutral", Label: string(result)}
	}
}
