// Package seed writes a starter content set through the store's write
// capabilities so a fresh database renders a complete site.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/newfriendscc/clubsite/internal/model"
	"github.com/newfriendscc/clubsite/internal/slug"
	"github.com/newfriendscc/clubsite/internal/store"
)

// Result tracks counts and errors from a seeding run.
type Result struct {
	Players   int
	Matches   int
	Results   int
	Articles  int
	StatLines int
	Errors    []string
}

// AddErrorf records a formatted error message.
func (r *Result) AddErrorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Summary returns a human-readable summary of the run.
func (r *Result) Summary() string {
	return fmt.Sprintf(
		"players=%d matches=%d results=%d articles=%d stat_lines=%d errors=%d",
		r.Players, r.Matches, r.Results, r.Articles, r.StatLines, len(r.Errors),
	)
}

// Demo seeds settings, a current season, a small squad with stat lines,
// fixtures, results, and news. Dates are relative to now so the content
// reads as live regardless of when it runs.
func Demo(ctx context.Context, st store.Store, log *slog.Logger) Result {
	var res Result
	now := time.Now()

	if err := st.UpsertSettings(ctx, model.Settings{
		TeamName:     "New Friends Cricket Club",
		Tagline:      "Excellence in Cricket",
		Description:  "A passionate cricket team dedicated to excellence both on and off the field.",
		ContactEmail: "info@nfcc.com",
		SocialLinks: map[string]string{
			"facebook":  "https://facebook.com",
			"twitter":   "https://twitter.com",
			"instagram": "https://instagram.com",
		},
	}); err != nil {
		res.AddErrorf("settings: %v", err)
	}

	// Inserted not-current, then promoted through SetCurrentSeason so its
	// transaction clears any season already flagged current.
	season := model.Season{
		Name:      fmt.Sprintf("%d Season", now.Year()),
		StartDate: time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(now.Year(), 12, 31, 0, 0, 0, 0, time.UTC),
	}
	if err := st.InsertSeason(ctx, &season); err != nil {
		res.AddErrorf("season: %v", err)
	} else if err := st.SetCurrentSeason(ctx, season.ID); err != nil {
		res.AddErrorf("season: %v", err)
	}

	players := demoPlayers()
	for i := range players {
		if err := st.InsertPlayer(ctx, &players[i]); err != nil {
			res.AddErrorf("player %q: %v", players[i].Name, err)
			continue
		}
		res.Players++
	}

	// Stat lines for the first few players in the current season.
	if season.ID != "" {
		for _, line := range demoStatLines(season.ID, players) {
			line := line
			if err := st.InsertSeasonStat(ctx, &line); err != nil {
				res.AddErrorf("stat line: %v", err)
				continue
			}
			res.StatLines++
		}
	}

	for _, m := range demoMatches(now) {
		m := m
		if err := st.InsertMatch(ctx, &m); err != nil {
			res.AddErrorf("match %q: %v", m.Title, err)
			continue
		}
		res.Matches++
	}

	for _, m := range demoResults(now, season.ID) {
		m := m
		if err := st.InsertPreviousMatch(ctx, &m); err != nil {
			res.AddErrorf("result %q: %v", m.Title, err)
			continue
		}
		res.Results++
	}

	for _, a := range demoArticles(now) {
		a := a
		if err := st.InsertNews(ctx, &a); err != nil {
			res.AddErrorf("article %q: %v", a.Title, err)
			continue
		}
		res.Articles++
	}

	log.Info("Seed finished", "summary", res.Summary())
	return res
}

func demoPlayers() []model.Player {
	specs := []struct {
		name     string
		role     model.Role
		featured bool
		matches  int
		runs     int
	}{
		{"John Smith", model.RoleBatsman, true, 45, 2340},
		{"Mike Johnson", model.RoleBowler, true, 42, 890},
		{"David Brown", model.RoleAllRounder, true, 50, 1560},
		{"Chris Taylor", model.RoleWicketKeeper, false, 38, 1120},
		{"Sam Wilson", model.RoleBatsman, false, 27, 980},
		{"Adil Khan", model.RoleBowler, false, 33, 240},
	}
	players := make([]model.Player, 0, len(specs))
	for i, s := range specs {
		players = append(players, model.Player{
			Name:         s.name,
			Slug:         slug.Make(s.name),
			Role:         s.role,
			IsFeatured:   s.featured,
			JerseyNumber: i + 1,
			Stats:        model.CareerStats{Matches: s.matches, Runs: s.runs},
		})
	}
	return players
}

func demoStatLines(seasonID string, players []model.Player) []model.PlayerSeasonStat {
	if len(players) < 3 {
		return nil
	}
	return []model.PlayerSeasonStat{
		{PlayerID: players[0].ID, SeasonID: seasonID, Runs: 40, BallsPlayed: 38},
		{PlayerID: players[0].ID, SeasonID: seasonID, Runs: 55, BallsPlayed: 41, IsFifty: true},
		{PlayerID: players[0].ID, SeasonID: seasonID, Runs: 10, BallsPlayed: 12, NotOut: true},
		{PlayerID: players[1].ID, SeasonID: seasonID, Runs: 8, BallsPlayed: 15, Wickets: 5, IsFiveWkt: true, Catches: 1},
		{PlayerID: players[1].ID, SeasonID: seasonID, Runs: 2, BallsPlayed: 6, Wickets: 3},
		{PlayerID: players[2].ID, SeasonID: seasonID, Runs: 112, BallsPlayed: 98, IsHundred: true, Wickets: 2, Catches: 2},
	}
}

func demoMatches(now time.Time) []model.Match {
	return []model.Match{
		{
			Title:     "League Championship Match",
			Slug:      "league-championship-match",
			Opponent:  "City Stars",
			MatchDate: now.Add(7 * 24 * time.Hour),
			Venue:     "Central Cricket Ground",
			MatchType: "T20",
		},
		{
			Title:     "Weekend Friendly",
			Slug:      "weekend-friendly",
			Opponent:  "Riverside CC",
			MatchDate: now.Add(14 * 24 * time.Hour),
			Venue:     "Riverside Oval",
			MatchType: "ODI",
		},
	}
}

func demoResults(now time.Time, seasonID string) []model.PreviousMatch {
	return []model.PreviousMatch{
		{
			Title:         "Quarter Final",
			Slug:          "quarter-final",
			Opponent:      "Eagles CC",
			Result:        model.ResultWon,
			OurScore:      "185/7",
			OpponentScore: "178/9",
			MatchDate:     now.Add(-5 * 24 * time.Hour),
			SeasonID:      seasonID,
			Highlights:    []string{"John Smith 55 (41)", "Mike Johnson 5/32"},
		},
		{
			Title:         "League Match",
			Slug:          "league-match",
			Opponent:      "Warriors XI",
			Result:        model.ResultWon,
			OurScore:      "220/6",
			OpponentScore: "215/8",
			MatchDate:     now.Add(-12 * 24 * time.Hour),
			SeasonID:      seasonID,
		},
		{
			Title:         "Friendly Match",
			Slug:          "friendly-match",
			Opponent:      "Lions CC",
			Result:        model.ResultLost,
			OurScore:      "165/9",
			OpponentScore: "168/5",
			MatchDate:     now.Add(-20 * 24 * time.Hour),
			SeasonID:      seasonID,
		},
	}
}

func demoArticles(now time.Time) []model.NewsArticle {
	return []model.NewsArticle{
		{
			Title:       "Team Wins Championship Quarter Final",
			Slug:        "championship-quarter-final",
			Excerpt:     "A thrilling victory in the quarter finals with an outstanding team performance.",
			IsFeatured:  true,
			PublishedAt: now.Add(-3 * 24 * time.Hour),
		},
		{
			Title:       "New Players Join the Squad",
			Slug:        "new-players-announcement",
			Excerpt:     "We are excited to welcome three talented players to our squad for the upcoming season.",
			IsFeatured:  true,
			PublishedAt: now.Add(-10 * 24 * time.Hour),
		},
		{
			Title:       "Training Camp Schedule Announced",
			Slug:        "training-camp-schedule",
			Excerpt:     "Pre-season training camp dates have been finalized. All players are expected to attend.",
			IsFeatured:  true,
			PublishedAt: now.Add(-15 * 24 * time.Hour),
		},
	}
}
