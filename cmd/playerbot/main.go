package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	tele "gopkg.in/telebot.v3"

	"github.com/tamilred/playerbot/internal/bot"
	"github.com/tamilred/playerbot/internal/repository"
	"github.com/tamilred/playerbot/internal/utils"
)

const (
	SEVERITY    = "severity"
	MESSAGE     = "message"
	TIMESTAMP   = "timestamp"
	COMPONENT   = "component"
	SERVICENAME = "playerbot"
)

type EnvVars struct {
	botToken      string
	adminID       int64
	providerToken string
	mongoURI      string
	mongoDatabase string
}

func getEnvironmentVariables() (envVars *EnvVars, err error) {
	botToken := os.Getenv("BOT_TOKEN")
	if botToken == "" {
		return nil, errors.New("BOT_TOKEN is not set")
	}

	adminIDStr := os.Getenv("ADMIN_ID")
	if adminIDStr == "" {
		return nil, errors.New("ADMIN_ID is not set")
	}
	adminID, err := strconv.ParseInt(adminIDStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("ADMIN_ID is not a valid user id: %w", err)
	}

	providerToken := os.Getenv("PAYMENT_PROVIDER_TOKEN")
	if providerToken == "" {
		return nil, errors.New("PAYMENT_PROVIDER_TOKEN is not set")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		return nil, errors.New("MONGO_URI is not set")
	}

	mongoDatabase := os.Getenv("MONGO_DATABASE")
	if mongoDatabase == "" {
		mongoDatabase = "audio_bot"
	}

	return &EnvVars{
		botToken:      botToken,
		adminID:       adminID,
		providerToken: providerToken,
		mongoURI:      mongoURI,
		mongoDatabase: mongoDatabase,
	}, nil
}

func main() {
	// Local development convenience; in production the vars come from the
	// environment and the missing .env is fine.
	_ = godotenv.Load()

	logrus.SetFormatter(&logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  TIMESTAMP,
			logrus.FieldKeyLevel: SEVERITY,
			logrus.FieldKeyMsg:   MESSAGE,
		},
	})
	logger := logrus.WithField(COMPONENT, SERVICENAME)

	envVars, err := getEnvironmentVariables()
	if err != nil {
		logger.WithError(err).Error("Failed to get environment variables")
		panic(err)
	}

	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(connectCtx, options.Client().ApplyURI(envVars.mongoURI))
	if err != nil {
		logger.WithError(err).Error("Failed to connect to MongoDB")
		panic(err)
	}
	if err := mongoClient.Ping(connectCtx, nil); err != nil {
		logger.WithError(err).Error("Failed to ping MongoDB")
		panic(err)
	}
	db := mongoClient.Database(envVars.mongoDatabase)

	b, err := tele.NewBot(tele.Settings{
		Token:  envVars.botToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		logger.WithError(err).Error("Failed to initialize Telegram bot")
		panic(err)
	}

	userRepo := repository.NewUserRepository(logger, db.Collection("users"))
	playlistRepo := repository.NewPlaylistRepository(logger, db.Collection("playlist"))
	telegramClient := utils.NewTelegramClient(b)

	handler := bot.NewHandler(logger, telegramClient, userRepo, playlistRepo, envVars.adminID, envVars.providerToken)
	bot.Register(b, handler)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		logger.Info("Shutting down")
		b.Stop()
	}()

	logger.WithField("adminId", envVars.adminID).Info("Bot started")
	b.Start()

	if err := mongoClient.Disconnect(context.Background()); err != nil {
		logger.WithError(err).Error("Failed to disconnect from MongoDB")
	}
}
