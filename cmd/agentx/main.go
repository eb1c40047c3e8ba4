package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mfell/agentx/internal/cards"
	"github.com/mfell/agentx/internal/common/clock"
	"github.com/mfell/agentx/internal/common/uuid"
	"github.com/mfell/agentx/internal/config"
	"github.com/mfell/agentx/internal/handlers/httpapi"
	sessionRepo "github.com/mfell/agentx/internal/repositories/session"
	gameSvc "github.com/mfell/agentx/internal/services/game"
	syncSvc "github.com/mfell/agentx/internal/services/session"
)

const releaseVersion = "0.1.0"

func main() {
	// A missing .env file is fine; environment variables still apply
	_ = godotenv.Load()

	cfg := &config.Config{}
	cobra.CheckErr(newCmd(cfg).Execute())
}

func newCmd(cfg *config.Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("AGENTX")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "agentx",
		Short:         "Session engine for the Agent-X social deduction party game.",
		Args:          cobra.ExactArgs(0),
		Version:       releaseVersion,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.Bind, "bind", "b", "0.0.0.0", "address to bind to (env: AGENTX_BIND)")
	fs.IntVarP(&cfg.Port, "port", "p", 8080, "port to listen on (env: AGENTX_PORT)")
	fs.StringVar(&cfg.Store, "store", config.StoreMemory, "session store backend: memory, disk or redis (env: AGENTX_STORE)")
	fs.StringVar(&cfg.SaveDir, "save-dir", "saves", "directory for the disk store (env: AGENTX_SAVE_DIR)")
	fs.StringVar(&cfg.RedisAddr, "redis-addr", "localhost:6379", "redis address for the redis store (env: AGENTX_REDIS_ADDR)")
	fs.StringVar(&cfg.RedisPassword, "redis-password", "", "redis password (env: AGENTX_REDIS_PASSWORD)")
	fs.IntVar(&cfg.MaxRounds, "max-rounds", gameSvc.DefaultMaxRounds, "voting rounds before an uncaught imposter wins (env: AGENTX_MAX_ROUNDS)")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "enable debug logging (env: AGENTX_VERBOSE)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("agentx v{{.Version}}\n")

	return cmd
}

func run(ctx context.Context, cfg *config.Config) error {
	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	repo, err := newRepository(cfg)
	if err != nil {
		return fmt.Errorf("failed to create session repository: %w", err)
	}

	syncService, err := syncSvc.New(&syncSvc.Config{
		Repo:    repo,
		UUIDGen: uuid.New(),
		Clock:   &clock.DefaultClock{},
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create sync service: %w", err)
	}

	gameService, err := gameSvc.New(&gameSvc.Config{
		Sync:      syncService,
		Dealer:    cards.New(&cards.Config{}),
		Logger:    logger,
		MaxRounds: cfg.MaxRounds,
	})
	if err != nil {
		return fmt.Errorf("failed to create game service: %w", err)
	}

	server, err := httpapi.NewServer(&httpapi.Config{
		GameService: gameService,
		SyncService: syncService,
		Repo:        repo,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create http server: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:    cfg.ListenAddr(),
		Handler: httpapi.SetupRoutes(server),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	logger.Info("listening",
		zap.String("addr", cfg.ListenAddr()),
		zap.String("store", cfg.Store))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	logger.Info("server stopped")
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func newRepository(cfg *config.Config) (sessionRepo.Repository, error) {
	switch cfg.Store {
	case config.StoreDisk:
		return sessionRepo.NewDisk(&sessionRepo.DiskConfig{Dir: cfg.SaveDir})
	case config.StoreRedis:
		return sessionRepo.NewRedis(&sessionRepo.RedisConfig{
			RedisClient: redis.NewClient(&redis.Options{
				Addr:     cfg.RedisAddr,
				Password: cfg.RedisPassword,
			}),
		})
	default:
		return sessionRepo.NewMemory(), nil
	}
}
