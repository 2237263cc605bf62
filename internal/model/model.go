// Package model defines the domain entities shared by the store, the
// resolver, and the API layer. All persisted entities are owned by the
// database; within a single request they are treated as immutable inputs.
package model

import "time"

// Role is a player's on-field role.
type Role string

const (
	RoleBatsman      Role = "batsman"
	RoleBowler       Role = "bowler"
	RoleAllRounder   Role = "all-rounder"
	RoleWicketKeeper Role = "wicket-keeper"
)

// Roles lists all roles in display order.
var Roles = []Role{RoleBatsman, RoleBowler, RoleAllRounder, RoleWicketKeeper}

// MatchResult is the outcome of a completed match.
type MatchResult string

const (
	ResultWon  MatchResult = "won"
	ResultLost MatchResult = "lost"
	ResultDraw MatchResult = "draw"
	ResultTie  MatchResult = "tie"
)

// Settings is the singleton site configuration record. The resolver
// guarantees callers always receive a non-nil value.
type Settings struct {
	TeamName     string            `json:"team_name"`
	TeamLogoURL  string            `json:"team_logo_url,omitempty"`
	Tagline      string            `json:"tagline,omitempty"`
	Description  string            `json:"description,omitempty"`
	ContactEmail string            `json:"contact_email,omitempty"`
	SocialLinks  map[string]string `json:"social_links,omitempty"`
}

// CareerStats are pre-computed career totals stored directly on the
// player row. They are distinct from per-season aggregates, which are
// derived fresh from match records.
type CareerStats struct {
	Matches    int     `json:"matches"`
	Runs       int     `json:"runs"`
	Wickets    int     `json:"wickets,omitempty"`
	Average    float64 `json:"average,omitempty"`
	StrikeRate float64 `json:"strike_rate,omitempty"`
}

// Player is a club squad member.
type Player struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Slug         string      `json:"slug"`
	Role         Role        `json:"role"`
	PhotoURL     string      `json:"photo_url,omitempty"`
	BattingStyle string      `json:"batting_style,omitempty"`
	BowlingStyle string      `json:"bowling_style,omitempty"`
	Age          int         `json:"age,omitempty"`
	JerseyNumber int         `json:"jersey_number,omitempty"`
	IsFeatured   bool        `json:"is_featured"`
	Stats        CareerStats `json:"stats"`
}

// Season is a club-defined period used to scope statistic aggregation.
// At most one season is current at a time; SetCurrentSeason clears the
// previous flag in the same transaction that sets the new one.
type Season struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	IsCurrent bool      `json:"is_current"`
}

// PlayerSeasonStat is one player's line from one match within a season.
type PlayerSeasonStat struct {
	ID          string `json:"id"`
	PlayerID    string `json:"player_id"`
	SeasonID    string `json:"season_id"`
	Runs        int    `json:"runs"`
	BallsPlayed int    `json:"balls_played"`
	IsFifty     bool   `json:"is_fifty"`
	IsHundred   bool   `json:"is_hundred"`
	NotOut      bool   `json:"not_out"`
	Wickets     int    `json:"wickets"`
	IsFiveWkt   bool   `json:"is_five_wicket"`
	IsTenWkt    bool   `json:"is_ten_wicket"`
	Catches     int    `json:"catches"`
	Stumpings   int    `json:"stumpings"`
	Runouts     int    `json:"runouts"`
}

// SeasonStats is the derived per-player aggregate for the current
// season. It is never persisted.
type SeasonStats struct {
	Matches     int `json:"matches"`
	Runs        int `json:"runs"`
	BallsPlayed int `json:"ballsPlayed"`
	Fifties     int `json:"fifties"`
	Hundreds    int `json:"hundreds"`
	NotOuts     int `json:"notOuts"`
	Wickets     int `json:"wickets"`
	FiveWickets int `json:"fiveWickets"`
	TenWickets  int `json:"tenWickets"`
	Catches     int `json:"catches"`
	Stumpings   int `json:"stumpings"`
	Runouts     int `json:"runouts"`
}

// Match is a scheduled (upcoming) fixture.
type Match struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Opponent    string    `json:"opponent"`
	MatchDate   time.Time `json:"match_date"`
	Venue       string    `json:"venue"`
	MatchType   string    `json:"match_type"` // T20, ODI, Test
	Description string    `json:"description,omitempty"`
}

// PreviousMatch is a completed match with its result. Scores are
// free-text ("185/7") since cricket scorelines don't reduce to a number.
type PreviousMatch struct {
	ID            string      `json:"id"`
	Title         string      `json:"title"`
	Slug          string      `json:"slug"`
	Opponent      string      `json:"opponent"`
	MatchDate     time.Time   `json:"match_date"`
	Venue         string      `json:"venue,omitempty"`
	MatchType     string      `json:"match_type,omitempty"`
	Result        MatchResult `json:"result"`
	OurScore      string      `json:"our_score"`
	OpponentScore string      `json:"opponent_score"`
	Summary       string      `json:"summary,omitempty"`
	Highlights    []string    `json:"highlights,omitempty"`
	SeasonID      string      `json:"season_id,omitempty"`
}

// NewsArticle is a club news post.
type NewsArticle struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Excerpt     string    `json:"excerpt"`
	Body        string    `json:"body,omitempty"`
	IsFeatured  bool      `json:"is_featured"`
	PublishedAt time.Time `json:"published_at"`
}

// DerivedStats is the four-counter home page summary, computed fresh on
// every request from four independent count queries.
type DerivedStats struct {
	TotalPlayers    int `json:"totalPlayers"`
	MatchesWon      int `json:"matchesWon"`
	TotalMatches    int `json:"totalMatches"`
	UpcomingMatches int `json:"upcomingMatches"`
}
