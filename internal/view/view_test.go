package view_test

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/newfriendscc/clubsite/internal/model"
	"github.com/newfriendscc/clubsite/internal/view"
)

func TestAggregateSeason(t *testing.T) {
	Convey("Given a player with three stat lines", t, func() {
		lines := []model.PlayerSeasonStat{
			{Runs: 40, BallsPlayed: 35, Wickets: 2, Catches: 1},
			{Runs: 55, BallsPlayed: 48, IsFifty: true, NotOut: true, Catches: 2},
			{Runs: 10, BallsPlayed: 12, Wickets: 5, IsFiveWkt: true, Runouts: 1},
		}

		Convey("The aggregate sums and counts every counter", func() {
			agg := view.AggregateSeason(lines)
			So(agg, ShouldResemble, model.SeasonStats{
				Matches:     3,
				Runs:        105,
				BallsPlayed: 95,
				Fifties:     1,
				Hundreds:    0,
				NotOuts:     1,
				Wickets:     7,
				FiveWickets: 1,
				TenWickets:  0,
				Catches:     3,
				Stumpings:   0,
				Runouts:     1,
			})
		})
	})

	Convey("Given no stat lines", t, func() {
		Convey("The aggregate is all zeros with zero matches", func() {
			So(view.AggregateSeason(nil), ShouldResemble, model.SeasonStats{})
		})
	})
}

func TestAttachSeasonStats(t *testing.T) {
	players := []model.Player{
		{ID: "p1", Name: "John Smith", Role: model.RoleBatsman},
		{ID: "p2", Name: "Mike Johnson", Role: model.RoleBowler},
	}

	Convey("Given stat lines for only one of two players", t, func() {
		lines := []model.PlayerSeasonStat{
			{PlayerID: "p1", Runs: 40},
			{PlayerID: "p1", Runs: 55, IsFifty: true},
		}

		views := view.AttachSeasonStats(players, lines)

		Convey("The player with lines gets the summed aggregate", func() {
			So(views, ShouldHaveLength, 2)
			So(views[0].SeasonStats, ShouldNotBeNil)
			So(views[0].SeasonStats.Matches, ShouldEqual, 2)
			So(views[0].SeasonStats.Runs, ShouldEqual, 95)
			So(views[0].SeasonStats.Fifties, ShouldEqual, 1)
		})

		Convey("The player without lines gets an all-zero aggregate, not an absent one", func() {
			So(views[1].SeasonStats, ShouldNotBeNil)
			So(*views[1].SeasonStats, ShouldResemble, model.SeasonStats{})
		})
	})

	Convey("Given nil lines, meaning no current season", t, func() {
		views := view.AttachSeasonStats(players, nil)

		Convey("SeasonStats is absent on every player", func() {
			So(views, ShouldHaveLength, 2)
			So(views[0].SeasonStats, ShouldBeNil)
			So(views[1].SeasonStats, ShouldBeNil)
		})
	})

	Convey("Given an empty but non-nil lines slice", t, func() {
		views := view.AttachSeasonStats(players, []model.PlayerSeasonStat{})

		Convey("Every player carries an all-zero aggregate", func() {
			So(views[0].SeasonStats, ShouldNotBeNil)
			So(*views[0].SeasonStats, ShouldResemble, model.SeasonStats{})
		})
	})
}

func TestGroupByRole(t *testing.T) {
	Convey("Given a roster across three of the four roles", t, func() {
		players := []view.PlayerView{
			{Player: model.Player{Name: "A", Role: model.RoleBowler}},
			{Player: model.Player{Name: "B", Role: model.RoleBatsman}},
			{Player: model.Player{Name: "C", Role: model.RoleBatsman}},
			{Player: model.Player{Name: "D", Role: model.RoleAllRounder}},
		}

		groups := view.GroupByRole(players)

		Convey("All four sections are present in display order", func() {
			So(groups, ShouldHaveLength, 4)
			So(groups[0].Role, ShouldEqual, model.RoleBatsman)
			So(groups[1].Role, ShouldEqual, model.RoleBowler)
			So(groups[2].Role, ShouldEqual, model.RoleAllRounder)
			So(groups[3].Role, ShouldEqual, model.RoleWicketKeeper)
		})

		Convey("Players land in their section keeping input order", func() {
			So(groups[0].Players, ShouldHaveLength, 2)
			So(groups[0].Players[0].Name, ShouldEqual, "B")
			So(groups[0].Players[1].Name, ShouldEqual, "C")
		})

		Convey("The empty section is an empty slice, not nil", func() {
			So(groups[3].Players, ShouldNotBeNil)
			So(groups[3].Players, ShouldBeEmpty)
		})
	})
}

func TestFilterByRole(t *testing.T) {
	players := []view.PlayerView{
		{Player: model.Player{Name: "A", Role: model.RoleBowler}},
		{Player: model.Player{Name: "B", Role: model.RoleBatsman}},
	}

	Convey("Filtering keeps only the requested role", t, func() {
		out := view.FilterByRole(players, model.RoleBowler)
		So(out, ShouldHaveLength, 1)
		So(out[0].Name, ShouldEqual, "A")
	})

	Convey("No matches yields an empty non-nil slice", t, func() {
		out := view.FilterByRole(players, model.RoleWicketKeeper)
		So(out, ShouldNotBeNil)
		So(out, ShouldBeEmpty)
	})
}

func TestDisplayFormatting(t *testing.T) {
	at := time.Date(2026, time.June, 6, 14, 30, 0, 0, time.UTC)

	Convey("Dates render in the site's display forms", t, func() {
		So(view.FormatMatchDate(at), ShouldEqual, "Saturday, June 6, 2026")
		So(view.FormatShortDate(at), ShouldEqual, "June 6, 2026")
		So(view.FormatMatchTime(at), ShouldEqual, "2:30 PM")
	})
}

func TestResultBadge(t *testing.T) {
	Convey("Known results map to their badge class and label", t, func() {
		So(view.ResultBadge(model.ResultWon), ShouldResemble, view.Badge{Class: "badge-won", Label: "Won"})
		So(view.ResultBadge(model.ResultLost), ShouldResemble, view.Badge{Class: "badge-lost", Label: "Lost"})
		So(view.ResultBadge(model.ResultDraw), ShouldResemble, view.Badge{Class: "badge-draw", Label: "Draw"})
		So(view.ResultBadge(model.ResultTie), ShouldResemble, view.Badge{Class: "badge-tie", Label: "Tie"})
	})

	Convey("An unknown result degrades to the neutral badge", t, func() {
		So(view.ResultBadge(model.MatchResult("abandoned")), ShouldResemble,
			view.Badge{Class: "badge-neutral", Label: "abandoned"})
	})
}
