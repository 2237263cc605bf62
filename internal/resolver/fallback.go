package resolver

import (
	"time"

	"github.com/newfriendscc/clubsite/internal/model"
)

// Demo content served when no database is configured. Each function
// returns a fresh value so callers can never mutate shared state.

func fallbackSettings() *model.Settings {
	return &model.Settings{
		TeamName:     "New Friends Cricket Club",
		TeamLogoURL:  "https://res.cloudinary.com/dfy225ucr/image/upload/v1763752913/NFCC_qrgele.jpg",
		Tagline:      "Excellence in Cricket",
		Description:  "A passionate cricket team dedicated to excellence both on and off the field.",
		ContactEmail: "info@nfcc.com",
		SocialLinks: map[string]string{
			"facebook":  "https://facebook.com",
			"twitter":   "https://twitter.com",
			"instagram": "https://instagram.com",
		},
	}
}

func fallbackPlayers() []model.Player {
	return []model.Player{
		{
			ID:    "1",
			Name:  "John Smith",
			Slug:  "john-smith",
			Role:  model.RoleBatsman,
			Stats: model.CareerStats{Matches: 45, Runs: 2340},
		},
		{
			ID:    "2",
			Name:  "Mike Johnson",
			Slug:  "mike-johnson",
			Role:  model.RoleBowler,
			Stats: model.CareerStats{Matches: 42, Runs: 890},
		},
		{
			ID:    "3",
			Name:  "David Brown",
			Slug:  "david-brown",
			Role:  model.RoleAllRounder,
			Stats: model.CareerStats{Matches: 50, Runs: 1560},
		},
	}
}

func fallbackStats() model.DerivedStats {
	return model.DerivedStats{
		TotalPlayers:    15,
		MatchesWon:      12,
		TotalMatches:    20,
		UpcomingMatches: 3,
	}
}

func fallbackNextMatch(now time.Time) *model.Match {
	return &model.Match{
		ID:        "1",
		Title:     "League Championship Match",
		Slug:      "league-championship-match",
		Opponent:  "City Stars",
		MatchDate: now.Add(7 * 24 * time.Hour),
		Venue:     "Central Cricket Ground",
		MatchType: "T20",
	}
}

func fallbackRecentMatches(now time.Time) []model.PreviousMatch {
	return []model.PreviousMatch{
		{
			ID:            "1",
			Title:         "Quarter Final",
			Slug:          "quarter-final",
			Opponent:      "Eagles CC",
			Result:        model.ResultWon,
			OurScore:      "185/7",
			OpponentScore: "178/9",
			MatchDate:     now.Add(-5 * 24 * time.Hour),
		},
		{
			ID:            "2",
			Title:         "League Match",
			Slug:          "league-match",
			Opponent:      "Warriors XI",
			Result:        model.ResultWon,
			OurScore:      "220/6",
			OpponentScore: "215/8",
			MatchDate:     now.Add(-12 * 24 * time.Hour),
		},
		{
			ID:            "3",
			Title:         "Friendly Match",
			Slug:          "friendly-match",
			Opponent:      "Lions CC",
			Result:        model.ResultLost,
			OurScore:      "165/9",
			OpponentScore: "168/5",
			MatchDate:     now.Add(-20 * 24 * time.Hour),
		},
	}
}

func fallbackFeaturedNews(now time.Time) []model.NewsArticle {
	return []model.NewsArticle{
		{
			ID:          "1",
			Title:       "Team Wins Championship Quarter Final",
			Slug:        "championship-quarter-final",
			Excerpt:     "Thunder Cricket Club secures a thrilling victory in the quarter finals with an outstanding team performance.",
			PublishedAt: now.Add(-3 * 24 * time.Hour),
		},
		{
			ID:          "2",
			Title:       "New Players Join the Squad",
			Slug:        "new-players-announcement",
			Excerpt:     "We are excited to welcome three talented players to our squad for the upcoming season.",
			PublishedAt: now.Add(-10 * 24 * time.Hour),
		},
		{
			ID:          "3",
			Title:       "Training Camp Schedule Announced",
			Slug:        "training-camp-schedule",
			Excerpt:     "Pre-season training camp dates have been finalized. All players are expected to attend.",
			PublishedAt: now.Add(-15 * 24 * time.Hour),
		},
	}
}
