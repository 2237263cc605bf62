package seed_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/newfriendscc/clubsite/internal/model"
	"github.com/newfriendscc/clubsite/internal/seed"
	"github.com/newfriendscc/clubsite/internal/store"
)

// writeStore records the write calls Demo makes. It assigns IDs the way
// the Postgres store does so downstream inserts can reference them.
type writeStore struct {
	store.Store

	nextID          int
	insertedSeasons []model.Season
	currentSetTo    []string
	players         int
	statLines       int
	matches         int
	results         int
	articles        int
	settingsUpserts int
}

func (s *writeStore) id() string {
	s.nextID++
	return fmt.Sprintf("id-%d", s.nextID)
}

func (s *writeStore) UpsertSettings(ctx context.Context, _ model.Settings) error {
	s.settingsUpserts++
	return nil
}

func (s *writeStore) InsertSeason(ctx context.Context, season *model.Season) error {
	season.ID = s.id()
	s.insertedSeasons = append(s.insertedSeasons, *season)
	return nil
}

func (s *writeStore) SetCurrentSeason(ctx context.Context, id string) error {
	s.currentSetTo = append(s.currentSetTo, id)
	return nil
}

func (s *writeStore) InsertPlayer(ctx context.Context, p *model.Player) error {
	p.ID = s.id()
	s.players++
	return nil
}

func (s *writeStore) InsertSeasonStat(ctx context.Context, line *model.PlayerSeasonStat) error {
	line.ID = s.id()
	s.statLines++
	return nil
}

func (s *writeStore) InsertMatch(ctx context.Context, m *model.Match) error {
	m.ID = s.id()
	s.matches++
	return nil
}

func (s *writeStore) InsertPreviousMatch(ctx context.Context, m *model.PreviousMatch) error {
	m.ID = s.id()
	s.results++
	return nil
}

func (s *writeStore) InsertNews(ctx context.Context, a *model.NewsArticle) error {
	a.ID = s.id()
	s.articles++
	return nil
}

func TestDemoSeedCounts(t *testing.T) {
	st := &writeStore{}
	res := seed.Demo(context.Background(), st, slog.New(slog.NewTextHandler(io.Discard, nil)))

	if len(res.Errors) != 0 {
		t.Fatalf("Demo errors = %v, want none", res.Errors)
	}
	if st.settingsUpserts != 1 {
		t.Errorf("settings upserts = %d, want 1", st.settingsUpserts)
	}
	if res.Players != st.players || res.Players == 0 {
		t.Errorf("player count = %d (store saw %d)", res.Players, st.players)
	}
	if res.StatLines != st.statLines || res.StatLines == 0 {
		t.Errorf("stat line count = %d (store saw %d)", res.StatLines, st.statLines)
	}
	if res.Matches != st.matches || res.Results != st.results || res.Articles != st.articles {
		t.Errorf("counts = %+v, store saw matches=%d results=%d articles=%d",
			res, st.matches, st.results, st.articles)
	}
}

func TestDemoSeedPromotesSeasonSafely(t *testing.T) {
	st := &writeStore{}
	seed.Demo(context.Background(), st, slog.New(slog.NewTextHandler(io.Discard, nil)))

	if len(st.insertedSeasons) != 1 {
		t.Fatalf("seasons inserted = %d, want 1", len(st.insertedSeasons))
	}

	// The insert itself must not claim the current flag; only the
	// flag-clearing SetCurrentSeason transaction may grant it, so a
	// database that already has a current season ends up with one.
	if st.insertedSeasons[0].IsCurrent {
		t.Error("season was inserted already flagged current")
	}
	if len(st.currentSetTo) != 1 || st.currentSetTo[0] != st.insertedSeasons[0].ID {
		t.Errorf("SetCurrentSeason calls = %v, want exactly [%s]",
			st.currentSetTo, st.insertedSeasons[0].ID)
	}
}
