package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"talent-hub/internal/config"
	"talent-hub/internal/database"
	"talent-hub/internal/database/migration"
	dbpostgres "talent-hub/internal/database/postgres"
	"talent-hub/internal/database/seeder"
	v1 "talent-hub/internal/delivery/http/routes/v1"
	"talent-hub/internal/domain/application"
	"talent-hub/internal/domain/job"
	"talent-hub/internal/domain/user"
	"talent-hub/internal/infrastructure/cache"
	"talent-hub/internal/pkg/jwt"
	"talent-hub/internal/repository/memory"
	repopostgres "talent-hub/internal/repository/postgres"
	"talent-hub/internal/usecase"
	"talent-hub/internal/workflow"
	"talent-hub/internal/ws"
)

// Container wires the store driver, cache, usecases and websocket hub.
// With STORE_DRIVER=memory everything runs in-process against the
// latency-simulating store; postgres is the production path.
type Container struct {
	Config config.Config
	DB     database.DB
	Deps   v1.Deps
	Hub    *ws.Hub
}

func NewContainer(cfg config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	var (
		users    user.Repository
		profiles user.ProfileRepository
		jobs     job.Repository
		apps     application.Repository
	)

	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		db, err := dbpostgres.Connect(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		c.DB = db

		if cfg.Store.RunMigrations {
			runner := migration.Runner{Dir: cfg.Store.MigrationsDir}
			if err := runner.Run(ctx, db.SQLDB()); err != nil {
				_ = db.Close()
				return nil, fmt.Errorf("migrations: %w", err)
			}
		}
		if cfg.Store.SeedDemoData {
			seeds := seeder.Runner{Seeders: seeder.Defaults()}
			if err := seeds.Run(ctx, db); err != nil {
				_ = db.Close()
				return nil, fmt.Errorf("seed: %w", err)
			}
		}

		users = repopostgres.NewUserRepository(db)
		profiles = repopostgres.NewProfileRepository(db)
		jobs = repopostgres.NewJobRepository(db)
		apps = repopostgres.NewApplicationRepository(db)

	case config.StoreDriverMemory:
		store := memory.NewStore(cfg.Store.MemLatencyMin, cfg.Store.MemLatencyMax)
		users = store.Users()
		profiles = store.Profiles()
		jobs = store.Jobs()
		apps = store.Applications()

	default:
		return nil, fmt.Errorf("unknown store driver: %q", cfg.Store.Driver)
	}

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	// degrades to a no-op when Redis is unreachable
	searchCache := cache.NewRedis(log.Default())

	c.Hub = ws.NewHub(log.Default())
	notifier := ws.NewNotifier(c.Hub)

	engine := workflow.NewEngine(apps)
	profileUC := usecase.NewProfileUsecase(profiles)

	c.Deps = v1.Deps{
		JWT:          jwtSvc,
		Auth:         usecase.NewAuthUsecase(users, jwtSvc),
		Jobs:         usecase.NewJobUsecase(jobs, searchCache, cache.DefaultTTLFromEnv()),
		Applications: usecase.NewApplicationUsecase(apps, jobs, engine, notifier),
		Dashboards:   usecase.NewDashboardUsecase(users, jobs, apps, profileUC),
		Profiles:     profileUC,
		Users:        usecase.NewUserUsecase(users),
	}

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
