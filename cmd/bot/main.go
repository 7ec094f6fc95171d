package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/kits/internal/common/clock"
	"github.com/KirkDiggler/kits/internal/common/logging"
	"github.com/KirkDiggler/kits/internal/common/uuid"
	"github.com/KirkDiggler/kits/internal/config"
	"github.com/KirkDiggler/kits/internal/handlers/discord"
	kitRepo "github.com/KirkDiggler/kits/internal/repositories/kit"
	permissionRepo "github.com/KirkDiggler/kits/internal/repositories/permission"
	playerRepo "github.com/KirkDiggler/kits/internal/repositories/player"
	redemptionRepo "github.com/KirkDiggler/kits/internal/repositories/redemption"
	"github.com/KirkDiggler/kits/internal/services/autoredeem"
	"github.com/KirkDiggler/kits/internal/services/catalog"
	"github.com/KirkDiggler/kits/internal/services/command"
	"github.com/KirkDiggler/kits/internal/services/eligibility"
	"github.com/KirkDiggler/kits/internal/services/events"
	"github.com/KirkDiggler/kits/internal/services/grant"
	"github.com/KirkDiggler/kits/internal/services/kit"
	"github.com/KirkDiggler/kits/internal/services/ledger"
	"github.com/KirkDiggler/kits/internal/services/messaging"
	"github.com/KirkDiggler/kits/internal/services/permission"
	"github.com/KirkDiggler/kits/internal/services/player"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	logger := logging.New(&logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	var kits kitRepo.Repository
	switch cfg.Catalog.Backend {
	case config.CatalogBackendFile:
		kits, err = kitRepo.NewFile(&kitRepo.FileConfig{Path: cfg.Catalog.Path})
	default:
		kits, err = kitRepo.NewRedis(&kitRepo.Config{RedisClient: redisClient})
	}
	if err != nil {
		logger.Fatalf("Failed to create kit repository: %v", err)
	}

	redemptions, err := redemptionRepo.NewRedis(&redemptionRepo.Config{RedisClient: redisClient})
	if err != nil {
		logger.Fatalf("Failed to create redemption repository: %v", err)
	}

	players, err := playerRepo.NewRedis(&playerRepo.Config{RedisClient: redisClient})
	if err != nil {
		logger.Fatalf("Failed to create player repository: %v", err)
	}

	grants, err := permissionRepo.NewRedis(&permissionRepo.Config{RedisClient: redisClient})
	if err != nil {
		logger.Fatalf("Failed to create permission repository: %v", err)
	}

	// Initialize services
	clk := &clock.DefaultClock{}

	permissions, err := permission.New(&permission.Config{
		Repository: grants,
		Logger:     logger.WithField("component", "permission"),
	})
	if err != nil {
		logger.Fatalf("Failed to create permission service: %v", err)
	}

	ledgerSvc, err := ledger.New(&ledger.Config{
		Repository: redemptions,
		Logger:     logger.WithField("component", "ledger"),
	})
	if err != nil {
		logger.Fatalf("Failed to create cooldown ledger: %v", err)
	}

	eligibilitySvc, err := eligibility.New(&eligibility.Config{
		Permissions: permissions,
		Clock:       clk,
	})
	if err != nil {
		logger.Fatalf("Failed to create eligibility checker: %v", err)
	}

	granter := grant.New(&grant.Config{
		ProcessTokens: cfg.Kit.ProcessTokens,
		Logger:        logger.WithField("component", "grant"),
	})

	pipeline := events.New(&events.Config{Logger: logger.WithField("component", "events")})
	eventLog := events.LogListener(logger.WithField("component", "redemptions"))
	pipeline.OnPostRedeem(eventLog)
	pipeline.OnFailedRedeem(eventLog)

	var notifier *events.MQTTNotifier
	var mqttClient mqtt.Client
	if cfg.MQTT.Broker != "" {
		mqttClient, err = events.NewMQTTClient(&events.MQTTClientConfig{
			Broker:         cfg.MQTT.Broker,
			ClientID:       cfg.MQTT.ClientID,
			Username:       cfg.MQTT.Username,
			Password:       cfg.MQTT.Password,
			ConnectTimeout: cfg.MQTT.ConnectTimeout,
			Logger:         logger.WithField("component", "mqtt"),
		})
		if err != nil {
			logger.Fatalf("Failed to connect to MQTT broker: %v", err)
		}

		notifier, err = events.NewMQTTNotifier(&events.MQTTNotifierConfig{
			Publisher:   mqttClient,
			TopicPrefix: cfg.MQTT.TopicPrefix,
			Clock:       clk,
			Logger:      logger.WithField("component", "mqtt"),
		})
		if err != nil {
			logger.Fatalf("Failed to create MQTT notifier: %v", err)
		}
		pipeline.OnPostRedeem(notifier.Listen)
		pipeline.OnFailedRedeem(notifier.Listen)
	}

	dispatcher := command.NewDispatcher(&command.Config{Logger: logger.WithField("component", "commands")})

	catalogSvc, err := catalog.New(&catalog.Config{
		Repository: kits,
		Logger:     logger.WithField("component", "catalog"),
	})
	if err != nil {
		logger.Fatalf("Failed to create kit catalog: %v", err)
	}

	if err := catalogSvc.Load(ctx); err != nil {
		logger.Fatalf("Failed to load kits: %v", err)
	}

	kitSvc, err := kit.New(&kit.Config{
		Ledger:      ledgerSvc,
		Eligibility: eligibilitySvc,
		Granter:     granter,
		Events:      pipeline,
		Commands:    dispatcher,
		Clock:       clk,
		UUID:        uuid.New(),
		Logger:      logger.WithField("component", "kit"),
		MustGetAll:  cfg.Kit.MustGetAll,
	})
	if err != nil {
		logger.Fatalf("Failed to create kit service: %v", err)
	}

	playerSvc, err := player.New(&player.Config{
		Repository:    players,
		Clock:         clk,
		InventorySize: cfg.Kit.InventorySize,
	})
	if err != nil {
		logger.Fatalf("Failed to create player service: %v", err)
	}

	autoRedeemSvc, err := autoredeem.New(&autoredeem.Config{
		Kits:              kitSvc,
		Catalog:           catalogSvc,
		Players:           playerSvc,
		Joins:             players,
		Permissions:       permissions,
		Clock:             clk,
		Logger:            logger.WithField("component", "autoredeem"),
		MustGetAll:        cfg.Kit.MustGetAll,
		AutoRedeemEnabled: cfg.Kit.AutoRedeemEnabled,
		LogAutoRedeem:     cfg.Kit.LogAutoRedeem,
	})
	if err != nil {
		logger.Fatalf("Failed to create auto-redeem service: %v", err)
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		logger.Fatalf("Failed to create messaging service: %v", err)
	}

	if cfg.Discord.Token == "" {
		logger.Fatal("KITS_DISCORD_TOKEN environment variable is required")
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:         cfg.Discord.Token,
		ApplicationID: cfg.Discord.ApplicationID,
		GuildID:       cfg.Discord.GuildID,
		Catalog:       catalogSvc,
		Kits:          kitSvc,
		Players:       playerSvc,
		Permissions:   permissions,
		Messaging:     messagingSvc,
		Joins:         autoRedeemSvc,
		Sessions:      ledgerSvc,
		Logger:        logger.WithField("component", "discord"),
	})
	if err != nil {
		logger.Fatalf("Failed to create Discord bot: %v", err)
	}

	if cfg.Discord.AnnounceChannelID != "" {
		dispatcher.Register("say", command.SayHandler(bot.Announce(cfg.Discord.AnnounceChannelID)))
	} else {
		dispatcher.Register("say", command.SayHandler(func(_ context.Context, message string) error {
			logger.WithField("component", "commands").Info(message)
			return nil
		}))
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		logger.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		logger.WithError(err).Error("Error stopping bot")
	}

	ledgerSvc.Flush()
	if notifier != nil {
		notifier.Wait()
	}
	if mqttClient != nil {
		mqttClient.Disconnect(250)
	}

	logger.Info("Bot has been shut down")
}
