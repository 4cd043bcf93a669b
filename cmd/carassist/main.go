// cmd/carassist/main.go
package main

import (
	"context"
	"os"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"carassist/internal/ai"
	"carassist/internal/common/config"
	"carassist/internal/common/database"
	"carassist/internal/common/logger"
	"carassist/internal/dialogue"
	"carassist/internal/inventory"
	"carassist/internal/notify"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// No logger yet; a bare exit message is all we have.
		bootstrap := logger.New("info", "console")
		bootstrap.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	ctx := context.Background()

	pg, err := database.NewPostgres(cfg.Database.Postgres)
	if err != nil {
		zapLog.Fatal("postgres init failed", zap.Error(err))
	}
	defer pg.Close()
	if err := pg.Ping(ctx); err != nil {
		zapLog.Fatal("postgres unreachable", zap.Error(err))
	}

	var redisClient *database.RedisClient
	if cfg.Database.Redis.Enabled {
		redisClient, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			zapLog.Fatal("redis init failed", zap.Error(err))
		}
		defer redisClient.Close()
		if err := redisClient.Ping(ctx); err != nil {
			// The cache is an accelerator, not a dependency.
			zapLog.Warn("redis unreachable, running without cache", zap.Error(err))
			redisClient = nil
		}
	}

	gemini, err := ai.NewGeminiProvider(ctx, cfg.GenAI)
	if err != nil {
		zapLog.Fatal("gemini init failed", zap.Error(err))
	}
	defer gemini.Close()

	var notifier notify.Notifier = notify.NoopNotifier{}
	if cfg.Notifications.Enabled {
		n, err := notify.NewAWSNotifier(ctx, cfg.Notifications, log)
		if err != nil {
			zapLog.Fatal("notifier init failed", zap.Error(err))
		}
		notifier = n
	}

	store := inventory.NewStore(pg.DB, rawRedis(redisClient), cfg.Database.Redis.CacheTTL(), log)

	console := dialogue.NewConsole(os.Stdin, os.Stdout)
	questionnaire := dialogue.NewQuestionnaire(cfg.Dialogue, gemini, console, log)
	selection := dialogue.NewSelectionFlow(console, notifier, log)
	company := dialogue.NewCompanyFlow(cfg.Dialogue, gemini, store, console, log)

	controller := dialogue.NewController(cfg.Dialogue, console, store, questionnaire, selection, company, log)
	if err := controller.Run(ctx); err != nil {
		zapLog.Fatal("session ended with error", zap.Error(err))
	}
}

// rawRedis unwraps the client wrapper; nil disables the store cache.
func rawRedis(c *database.RedisClient) *redis.Client {
	if c == nil {
		return nil
	}
	return c.Client
}
