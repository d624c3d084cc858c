package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/udisondev/stavka/internal/config"
	"github.com/udisondev/stavka/internal/data"
	"github.com/udisondev/stavka/internal/db"
	"github.com/udisondev/stavka/internal/model"
	"github.com/udisondev/stavka/internal/report"
)

const ConfigPath = "config/staff.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// .env может переопределять окружение (DSN секреты и т.п.)
	_ = godotenv.Load()

	cfgPath := ConfigPath
	if p := os.Getenv("STAVKA_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadStaff(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	slog.Info("roster tool starting", "log_level", cfg.LogLevel)

	if err := data.LoadSkillTree(); err != nil {
		return fmt.Errorf("loading skill tree: %w", err)
	}

	if cfg.Roster.RunMigrations {
		if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		slog.Info("migrations applied")
	}

	database, err := db.New(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()

	officers, err := generateRoster(cfg)
	if err != nil {
		return fmt.Errorf("generating roster: %w", err)
	}

	// Сохраняем офицеров конкурентно; каждый Save — своя транзакция.
	repo := db.NewOfficerRepository(database.Pool())
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for _, o := range officers {
		g.Go(func() error {
			return repo.Save(gctx, o)
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("saving roster: %w", err)
	}
	slog.Info("roster saved", "officers", len(officers))

	if cfg.Roster.PDFOutput != "" {
		f, err := os.Create(cfg.Roster.PDFOutput)
		if err != nil {
			return fmt.Errorf("creating PDF file: %w", err)
		}
		defer f.Close()
		if err := report.WriteRoster(f, officers); err != nil {
			return err
		}
		slog.Info("dossiers exported", "path", cfg.Roster.PDFOutput)
	}

	return nil
}

// generateRoster создаёт случайных офицеров со стартовой репутацией и
// открывает им доступные Leadership-навыки.
func generateRoster(cfg config.Staff) ([]*model.Officer, error) {
	seed := cfg.Roster.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed))
	names := data.NewNameGenerator(rng)
	idgen := model.NewOfficerIDGenerator()
	policy := cfg.Progression.TreePolicy()

	officers := make([]*model.Officer, 0, cfg.Roster.OfficerCount)
	for i := 0; i < cfg.Roster.OfficerCount; i++ {
		nat := data.Nationality(rng.Int32N(data.NationalityCount))
		o, err := model.NewRandomOfficer(idgen.NextOfficerID(), nat, model.SideAI, names, rng)
		if err != nil {
			return nil, err
		}
		o.SkillTree().SetPolicy(policy)

		if cfg.Roster.SeedReputation > 0 {
			o.AwardReputation(rng.Int32N(cfg.Roster.SeedReputation) + 1)
		}

		// Открываем Leadership-цепочку, пока хватает репутации.
		for _, id := range data.BranchSkills[data.BranchLeadership] {
			ok, err := o.UnlockSkill(id)
			if err != nil || !ok {
				break
			}
		}

		officers = append(officers, o)
	}

	return officers, nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
