// Command fieldctl is the Fielddex operations CLI.
//
// Usage:
//
//	fieldctl migrate
//	fieldctl token --sub dev-user --role admin --ttl 24h
//	fieldctl seed
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

	"github.com/oakhq/fielddex/internal/auth"
	"github.com/oakhq/fielddex/internal/config"
	"github.com/oakhq/fielddex/internal/model"
	"github.com/oakhq/fielddex/internal/pokeapi"
	"github.com/oakhq/fielddex/internal/service"
	"github.com/oakhq/fielddex/internal/store"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "fieldctl",
		Short: "Fielddex operations CLI",
	}

	root.AddCommand(migrateCmd())
	root.AddCommand(tokenCmd())
	root.AddCommand(seedCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// withStore loads config, connects to Postgres, and runs fn with both.
func withStore(fn func(ctx context.Context, cfg *config.Config, pg *store.Postgres) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	pg, err := store.NewPostgres(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pg.Close()

	return fn(ctx, cfg, pg)
}

// --------------------------------------------------------------------------
// migrate command
// --------------------------------------------------------------------------

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the document store schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(ctx context.Context, _ *config.Config, pg *store.Postgres) error {
				start := time.Now()
				if err := pg.Migrate(ctx); err != nil {
					return err
				}
				logger.Info("Migration finished", "duration", time.Since(start).Round(time.Millisecond))
				return nil
			})
		},
	}
}

// --------------------------------------------------------------------------
// token command
// --------------------------------------------------------------------------

func tokenCmd() *cobra.Command {
	var (
		sub  string
		role string
		ttl  time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a signed bearer token for development",
		RunE: func(cmd *cobra.Command, args []string) error {
			if sub == "" {
				return fmt.Errorf("--sub is required")
			}
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			// Claims store is unused for minting.
			provider := auth.NewJWTProvider(cfg, store.NewMemory())
			token, err := provider.Mint(sub, role, ttl)
			if err != nil {
				return err
			}
			fmt.Println(token)
			return nil
		},
	}
	cmd.Flags().StringVar(&sub, "sub", "", "Subject id")
	cmd.Flags().StringVar(&role, "role", "", "Role claim (admin, officer, manager, user)")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Token lifetime")
	return cmd
}

// --------------------------------------------------------------------------
// seed command
// --------------------------------------------------------------------------

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create sample locations and trainers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(ctx context.Context, cfg *config.Config, pg *store.Postgres) error {
				lookup := pokeapi.NewClient(cfg.PokeAPIBaseURL, cfg.PokeAPIRequestsMin, logger)
				locations := service.NewLocationService(pg, lookup, logger)
				trainers := service.NewTrainerService(pg, lookup, logger)

				start := time.Now()

				seedLocations := []model.LocationInput{
					{AddressName: "Viridian Forest", Terrain: "forest", Pokemon: []string{"caterpie", "pikachu"}},
					{AddressName: "Mt. Moon", Terrain: "cave", Pokemon: []string{"zubat", "clefairy"}},
					{AddressName: "Cerulean Cape", Terrain: "coast", Pokemon: []string{"krabby"}},
				}
				for _, in := range seedLocations {
					loc, err := locations.Create(ctx, in)
					if err != nil {
						return fmt.Errorf("seed location %q: %w", in.AddressName, err)
					}
					logger.Info("Seeded location", "id", loc.ID, "addressName", loc.AddressName)
				}

				age := 10
				region := "Kanto"
				seedTrainers := []model.TrainerInput{
					{Name: "Ash", Age: &age, Region: &region, Team: []string{"pikachu"}},
					{Name: "Misty", Region: &region, Team: []string{"staryu", "psyduck"}},
				}
				for _, in := range seedTrainers {
					trainer, err := trainers.Create(ctx, in)
					if err != nil {
						return fmt.Errorf("seed trainer %q: %w", in.Name, err)
					}
					logger.Info("Seeded trainer", "id", trainer.ID, "name", trainer.Name)
				}

				logger.Info("Seed finished", "duration", time.Since(start).Round(time.Millisecond))
				return nil
			})
		},
	}
}
