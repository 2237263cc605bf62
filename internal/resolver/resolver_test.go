package resolver_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/newfriendscc/clubsite/internal/model"
	"github.com/newfriendscc/clubsite/internal/resolver"
	"github.com/newfriendscc/clubsite/internal/store"
)

var errBoom = errors.New("connection refused")

// fakeStore implements the read subset with overridable funcs. Anything
// the test doesn't stub panics via the embedded nil interface.
type fakeStore struct {
	store.Store

	settings     func() (*model.Settings, error)
	players      func() ([]model.Player, error)
	featured     func(limit int) ([]model.Player, error)
	matchesFrom  func(from time.Time) ([]model.Match, error)
	nextFrom     func(from time.Time) (*model.Match, error)
	previous     func() ([]model.PreviousMatch, error)
	recent       func(limit int) ([]model.PreviousMatch, error)
	featuredNews func(limit int) ([]model.NewsArticle, error)

	countPlayers  func() (int, error)
	countUpcoming func(from time.Time) (int, error)
	countPrevious func() (int, error)
	countByResult func(result model.MatchResult) (int, error)

	currentSeason func() (*model.Season, error)
	seasonStats   func(seasonID string) ([]model.PlayerSeasonStat, error)
}

func (f *fakeStore) GetSettings(ctx context.Context) (*model.Settings, error) {
	return f.settings()
}

func (f *fakeStore) ListPlayers(ctx context.Context) ([]model.Player, error) {
	return f.players()
}

func (f *fakeStore) ListFeaturedPlayers(ctx context.Context, limit int) ([]model.Player, error) {
	return f.featured(limit)
}

func (f *fakeStore) ListMatchesFrom(ctx context.Context, from time.Time) ([]model.Match, error) {
	return f.matchesFrom(from)
}

func (f *fakeStore) NextMatchFrom(ctx context.Context, from time.Time) (*model.Match, error) {
	return f.nextFrom(from)
}

func (f *fakeStore) ListPreviousMatches(ctx context.Context) ([]model.PreviousMatch, error) {
	return f.previous()
}

func (f *fakeStore) ListRecentMatches(ctx context.Context, limit int) ([]model.PreviousMatch, error) {
	return f.recent(limit)
}

func (f *fakeStore) ListFeaturedNews(ctx context.Context, limit int) ([]model.NewsArticle, error) {
	return f.featuredNews(limit)
}

func (f *fakeStore) CountPlayers(ctx context.Context) (int, error) {
	return f.countPlayers()
}

func (f *fakeStore) CountMatchesFrom(ctx context.Context, from time.Time) (int, error) {
	return f.countUpcoming(from)
}

func (f *fakeStore) CountPreviousMatches(ctx context.Context) (int, error) {
	return f.countPrevious()
}

func (f *fakeStore) CountPreviousMatchesByResult(ctx context.Context, result model.MatchResult) (int, error) {
	return f.countByResult(result)
}

func (f *fakeStore) CurrentSeason(ctx context.Context) (*model.Season, error) {
	return f.currentSeason()
}

func (f *fakeStore) ListSeasonStats(ctx context.Context, seasonID string) ([]model.PlayerSeasonStat, error) {
	return f.seasonStats(seasonID)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestResolverDemoMode(t *testing.T) {
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	Convey("Given a resolver with no store configured", t, func() {
		r := resolver.New(nil, testLogger(), resolver.WithClock(fixedClock(now)))

		So(r.Configured(), ShouldBeFalse)

		Convey("Settings returns the hardcoded default", func() {
			s := r.Settings(ctx)
			So(s, ShouldNotBeNil)
			So(s.TeamName, ShouldEqual, "New Friends Cricket Club")
			So(s.ContactEmail, ShouldEqual, "info@nfcc.com")
			So(s.SocialLinks, ShouldContainKey, "facebook")
		})

		Convey("Players returns the demo sample, name-ordered", func() {
			players := r.Players(ctx)
			So(players, ShouldHaveLength, 3)
			So(players[0].Name, ShouldEqual, "John Smith")
			So(players[0].Slug, ShouldEqual, "john-smith")
		})

		Convey("Stats returns the demo counters", func() {
			So(r.Stats(ctx), ShouldResemble, model.DerivedStats{
				TotalPlayers:    15,
				MatchesWon:      12,
				TotalMatches:    20,
				UpcomingMatches: 3,
			})
		})

		Convey("NextMatch returns the demo fixture seven days out", func() {
			m := r.NextMatch(ctx)
			So(m, ShouldNotBeNil)
			So(m.Opponent, ShouldEqual, "City Stars")
			So(m.MatchDate.Equal(now.Add(7*24*time.Hour)), ShouldBeTrue)
		})

		Convey("RecentMatches returns three demo results, newest first", func() {
			matches := r.RecentMatches(ctx)
			So(matches, ShouldHaveLength, 3)
			So(matches[0].Result, ShouldEqual, model.ResultWon)
			So(matches[2].Result, ShouldEqual, model.ResultLost)
			So(matches[0].MatchDate.After(matches[1].MatchDate), ShouldBeTrue)
		})

		Convey("FeaturedNews returns three demo articles", func() {
			So(r.FeaturedNews(ctx), ShouldHaveLength, 3)
		})

		Convey("UpcomingMatches is empty, not demo content", func() {
			So(r.UpcomingMatches(ctx), ShouldBeEmpty)
		})

		Convey("Detail lookups return nil", func() {
			So(r.PlayerBySlug(ctx, "john-smith"), ShouldBeNil)
			So(r.NewsBySlug(ctx, "anything"), ShouldBeNil)
		})

		Convey("CurrentSeasonStats reports no season", func() {
			season, lines := r.CurrentSeasonStats(ctx)
			So(season, ShouldBeNil)
			So(lines, ShouldBeNil)
		})
	})
}

func TestResolverErrorFallbacks(t *testing.T) {
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	Convey("Given a configured store where every read fails", t, func() {
		st := &fakeStore{
			settings:     func() (*model.Settings, error) { return nil, errBoom },
			players:      func() ([]model.Player, error) { return nil, errBoom },
			featured:     func(int) ([]model.Player, error) { return nil, errBoom },
			matchesFrom:  func(time.Time) ([]model.Match, error) { return nil, errBoom },
			nextFrom:     func(time.Time) (*model.Match, error) { return nil, errBoom },
			previous:     func() ([]model.PreviousMatch, error) { return nil, errBoom },
			recent:       func(int) ([]model.PreviousMatch, error) { return nil, errBoom },
			featuredNews: func(int) ([]model.NewsArticle, error) { return nil, errBoom },
		}
		r := resolver.New(st, testLogger(), resolver.WithClock(fixedClock(now)))

		Convey("Settings still degrades to the default", func() {
			So(r.Settings(ctx).TeamName, ShouldEqual, "New Friends Cricket Club")
		})

		Convey("Collection reads degrade to empty, not demo content", func() {
			So(r.Players(ctx), ShouldBeEmpty)
			So(r.FeaturedPlayers(ctx), ShouldBeEmpty)
			So(r.UpcomingMatches(ctx), ShouldBeEmpty)
			So(r.PreviousMatches(ctx), ShouldBeEmpty)
			So(r.RecentMatches(ctx), ShouldBeEmpty)
			So(r.FeaturedNews(ctx), ShouldBeEmpty)
		})

		Convey("NextMatch returns nil, not the demo fixture", func() {
			So(r.NextMatch(ctx), ShouldBeNil)
		})
	})

	Convey("Given a store where the settings row is missing", t, func() {
		st := &fakeStore{
			settings: func() (*model.Settings, error) { return nil, store.ErrNotFound },
		}
		r := resolver.New(st, testLogger())

		Convey("Settings degrades to the default", func() {
			So(r.Settings(ctx).TeamName, ShouldEqual, "New Friends Cricket Club")
		})
	})
}

func TestResolverStats(t *testing.T) {
	ctx := context.Background()

	Convey("Given a store with 15 players, 3 upcoming, 12 won of 20 matches", t, func(c C) {
		st := &fakeStore{
			countPlayers:  func() (int, error) { return 15, nil },
			countUpcoming: func(time.Time) (int, error) { return 3, nil },
			countPrevious: func() (int, error) { return 20, nil },
			countByResult: func(result model.MatchResult) (int, error) {
				c.So(result, ShouldEqual, model.ResultWon)
				return 12, nil
			},
		}
		r := resolver.New(st, testLogger())

		Convey("Stats assembles the exact counters", func() {
			So(r.Stats(ctx), ShouldResemble, model.DerivedStats{
				TotalPlayers:    15,
				UpcomingMatches: 3,
				MatchesWon:      12,
				TotalMatches:    20,
			})
		})
	})

	Convey("Given a store where one count fails", t, func() {
		st := &fakeStore{
			countPlayers:  func() (int, error) { return 15, nil },
			countUpcoming: func(time.Time) (int, error) { return 0, errBoom },
			countPrevious: func() (int, error) { return 20, nil },
			countByResult: func(model.MatchResult) (int, error) { return 12, nil },
		}
		r := resolver.New(st, testLogger())

		Convey("The failed count contributes zero without aborting the rest", func() {
			So(r.Stats(ctx), ShouldResemble, model.DerivedStats{
				TotalPlayers:    15,
				UpcomingMatches: 0,
				MatchesWon:      12,
				TotalMatches:    20,
			})
		})
	})
}

func TestResolverMatchWindow(t *testing.T) {
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	// Candidate fixtures straddling the clock.
	all := []model.Match{
		{ID: "past", MatchDate: now.Add(-48 * time.Hour)},
		{ID: "soon", MatchDate: now.Add(24 * time.Hour)},
		{ID: "later", MatchDate: now.Add(72 * time.Hour)},
	}

	fromWindow := func(from time.Time) []model.Match {
		var out []model.Match
		for _, m := range all {
			if !m.MatchDate.Before(from) {
				out = append(out, m)
			}
		}
		return out
	}

	Convey("Given fixtures with mixed past and future dates", t, func() {
		st := &fakeStore{
			matchesFrom: func(from time.Time) ([]model.Match, error) {
				return fromWindow(from), nil
			},
			nextFrom: func(from time.Time) (*model.Match, error) {
				window := fromWindow(from)
				if len(window) == 0 {
					return nil, store.ErrNotFound
				}
				return &window[0], nil
			},
		}
		r := resolver.New(st, testLogger(), resolver.WithClock(fixedClock(now)))

		Convey("UpcomingMatches never includes a fixture before now", func() {
			matches := r.UpcomingMatches(ctx)
			So(matches, ShouldHaveLength, 2)
			for _, m := range matches {
				So(m.MatchDate.Before(now), ShouldBeFalse)
			}
		})

		Convey("Repeated calls against unchanged data give the same set in the same order", func() {
			first := r.UpcomingMatches(ctx)
			second := r.UpcomingMatches(ctx)
			So(second, ShouldResemble, first)
		})

		Convey("NextMatch picks the chronologically earliest future fixture", func() {
			m := r.NextMatch(ctx)
			So(m, ShouldNotBeNil)
			So(m.ID, ShouldEqual, "soon")
		})
	})
}

func TestResolverCurrentSeasonStats(t *testing.T) {
	ctx := context.Background()
	season := &model.Season{ID: "s1", Name: "2026 Season", IsCurrent: true}

	Convey("Given a current season with stat lines", t, func() {
		st := &fakeStore{
			currentSeason: func() (*model.Season, error) { return season, nil },
			seasonStats: func(seasonID string) ([]model.PlayerSeasonStat, error) {
				So(seasonID, ShouldEqual, "s1")
				return []model.PlayerSeasonStat{{PlayerID: "p1", SeasonID: "s1", Runs: 40}}, nil
			},
		}
		r := resolver.New(st, testLogger())

		Convey("Both season and lines come back", func() {
			got, lines := r.CurrentSeasonStats(ctx)
			So(got, ShouldResemble, season)
			So(lines, ShouldHaveLength, 1)
		})
	})

	Convey("Given a current season with no stat lines yet", t, func() {
		st := &fakeStore{
			currentSeason: func() (*model.Season, error) { return season, nil },
			seasonStats:   func(string) ([]model.PlayerSeasonStat, error) { return nil, nil },
		}
		r := resolver.New(st, testLogger())

		Convey("Lines is empty but non-nil, distinct from the no-season case", func() {
			got, lines := r.CurrentSeasonStats(ctx)
			So(got, ShouldNotBeNil)
			So(lines, ShouldNotBeNil)
			So(lines, ShouldBeEmpty)
		})
	})

	Convey("Given no season is flagged current", t, func() {
		st := &fakeStore{
			currentSeason: func() (*model.Season, error) { return nil, store.ErrNotFound },
		}
		r := resolver.New(st, testLogger())

		Convey("Both return values are nil", func() {
			got, lines := r.CurrentSeasonStats(ctx)
			So(got, ShouldBeNil)
			So(lines, ShouldBeNil)
		})
	})
}
