// Command clubctl is the club site operations CLI.
//
// Usage:
//
//	clubctl seed demo
//	clubctl season create --name "2026 Season" --start 2026-01-01 --end 2026-12-31
//	clubctl season set-current --id <uuid>
//	clubctl season list
//	clubctl admin add --email captain@nfcc.com
//	clubctl admin remove --email captain@nfcc.com
//	clubctl admin list
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/newfriendscc/clubsite/internal/config"
	"github.com/newfriendscc/clubsite/internal/db"
	"github.com/newfriendscc/clubsite/internal/model"
	"github.com/newfriendscc/clubsite/internal/seed"
	"github.com/newfriendscc/clubsite/internal/store"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "clubctl",
		Short: "Club site operations CLI",
	}

	root.AddCommand(seedCmd())
	root.AddCommand(seasonCmd())
	root.AddCommand(adminCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// withStore connects to the database and runs fn. Unlike the API server,
// clubctl has nothing useful to do without a database.
func withStore(fn func(ctx context.Context, st store.Store) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if !cfg.StoreConfigured() {
		return fmt.Errorf("DATABASE_URL must be set")
	}

	pool, err := db.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer pool.Close()

	return fn(ctx, store.NewPostgres(pool))
}

// --------------------------------------------------------------------------
// seed command
// --------------------------------------------------------------------------

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed content into the database",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "demo",
		Short: "Seed the starter demo content set",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(ctx context.Context, st store.Store) error {
				start := time.Now()
				result := seed.Demo(ctx, st, logger)
				logger.Info("Demo seed finished",
					"duration", time.Since(start).Round(time.Millisecond),
					"summary", result.Summary())
				for _, e := range result.Errors {
					logger.Error("seed error", "error", e)
				}
				return nil
			})
		},
	})
	return cmd
}

// --------------------------------------------------------------------------
// season commands
// --------------------------------------------------------------------------

func seasonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "season",
		Short: "Manage seasons",
	}
	cmd.AddCommand(seasonCreateCmd())
	cmd.AddCommand(seasonSetCurrentCmd())
	cmd.AddCommand(seasonListCmd())
	return cmd
}

func seasonCreateCmd() *cobra.Command {
	var name, start, end string
	var current bool
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a season",
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := time.Parse("2006-01-02", start)
			if err != nil {
				return fmt.Errorf("parse --start: %w", err)
			}
			endDate, err := time.Parse("2006-01-02", end)
			if err != nil {
				return fmt.Errorf("parse --end: %w", err)
			}
			return withStore(func(ctx context.Context, st store.Store) error {
				season := model.Season{Name: name, StartDate: startDate, EndDate: endDate}
				if err := st.InsertSeason(ctx, &season); err != nil {
					return err
				}
				if current {
					if err := st.SetCurrentSeason(ctx, season.ID); err != nil {
						return err
					}
				}
				logger.Info("Season created", "id", season.ID, "name", season.Name, "current", current)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Season name")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&current, "current", false, "Flag the new season as current")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("start")
	cmd.MarkFlagRequired("end")
	return cmd
}

func seasonSetCurrentCmd() *cobra.Command {
	var id string
	cmd := &cobra.Command{
		Use:   "set-current",
		Short: "Flag a season as current, clearing the flag everywhere else",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(ctx context.Context, st store.Store) error {
				if err := st.SetCurrentSeason(ctx, id); err != nil {
					return err
				}
				logger.Info("Current season set", "id", id)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "Season ID")
	cmd.MarkFlagRequired("id")
	return cmd
}

func seasonListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List seasons",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(ctx context.Context, st store.Store) error {
				seasons, err := st.ListSeasons(ctx)
				if err != nil {
					return err
				}
				for _, s := range seasons {
					marker := " "
					if s.IsCurrent {
						marker = "*"
					}
					fmt.Printf("%s %s  %s  %s → %s\n", marker, s.ID, s.Name,
						s.StartDate.Format("2006-01-02"), s.EndDate.Format("2006-01-02"))
				}
				return nil
			})
		},
	}
}

// --------------------------------------------------------------------------
// admin commands
// --------------------------------------------------------------------------

func adminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage the admin allow-list",
	}

	var email string
	add := &cobra.Command{
		Use:   "add",
		Short: "Add an email to the allow-list",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(ctx context.Context, st store.Store) error {
				if err := st.AddAdmin(ctx, email); err != nil {
					return err
				}
				logger.Info("Admin added", "email", email)
				return nil
			})
		},
	}
	add.Flags().StringVar(&email, "email", "", "Admin email")
	add.MarkFlagRequired("email")

	var removeEmail string
	remove := &cobra.Command{
		Use:   "remove",
		Short: "Remove an email from the allow-list",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(ctx context.Context, st store.Store) error {
				if err := st.RemoveAdmin(ctx, removeEmail); err != nil {
					return err
				}
				logger.Info("Admin removed", "email", removeEmail)
				return nil
			})
		},
	}
	remove.Flags().StringVar(&removeEmail, "email", "", "Admin email")
	remove.MarkFlagRequired("email")

	list := &cobra.Command{
		Use:   "list",
		Short: "List allow-listed admins",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(ctx context.Context, st store.Store) error {
				emails, err := st.ListAdmins(ctx)
				if err != nil {
					return err
				}
				for _, e := range emails {
					fmt.Println(e)
				}
				return nil
			})
		},
	}

	cmd.AddCommand(add, remove, list)
	return cmd
}
