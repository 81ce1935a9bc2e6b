package protocal

import (
	"crypto/sha256"
	"encoding/base64"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"weather-insight/configs"
	httpAdapter "weather-insight/internal/adapters/input/http"
	"weather-insight/internal/adapters/input/scheduler"
	badgerStore "weather-insight/internal/adapters/output/badger"
	"weather-insight/internal/adapters/output/gemini"
	"weather-insight/internal/adapters/output/google"
	"weather-insight/internal/adapters/output/lmstudio"
	"weather-insight/internal/adapters/output/memory"
	"weather-insight/internal/adapters/output/openweather"
	"weather-insight/internal/adapters/output/postgres"
	"weather-insight/internal/application"
	"weather-insight/internal/ports/output"
	"weather-insight/pkg/database_driver/gorm"

	swagger "github.com/arsmn/fiber-swagger/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type config struct {
	ENV string `mapstructure:"env"`
}

// ServeHTTP func
func ServeHTTP() error {
	var cfg config
	flag.StringVar(&cfg.ENV, "env", "", "the environment to use")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using environment and config files only")
	}
	configs.InitViper("./configs", cfg.ENV)
	conf := configs.GetViper()
	setupLogger(conf.App)
	logrus.Info(conf.App.Env)

	app := fiber.New(fiber.Config{
		AppName: "weather-insight",
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     conf.App.ClientOrigin,
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: true,
	}))
	app.Use(encryptcookie.New(encryptcookie.Config{
		Key: cookieKey(conf.Session.Secret),
	}))

	sessionTimeout := minutes(conf.Session.Timeout, 24*60)
	sessions := session.New(session.Config{
		Expiration:     sessionTimeout,
		KeyLookup:      "cookie:" + httpAdapter.SessionCookie,
		KeyGenerator:   uuid.NewString,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		CookieSecure:   conf.Session.CookieSecure,
	})

	// Wire up the hexagonal architecture layers
	// Output adapters
	store, closeStore, err := newCredentialStore(conf, sessionTimeout)
	if err != nil {
		return err
	}
	oauthProvider := google.NewOAuthProviderAdapter(conf.Google)
	calendarClient := google.NewCalendarClientAdapter(conf.Google)
	weatherClient := openweather.NewWeatherClientAdapter(conf.OpenWeather)
	generator := newInsightGenerator(conf)

	// Application services (use cases)
	srv := httpAdapter.Services{
		Auth:     application.NewAuthService(oauthProvider, store),
		Calendar: application.NewCalendarService(store, calendarClient),
		Weather:  application.NewWeatherService(weatherClient),
		Insight:  application.NewInsightService(generator, time.Local),
	}
	purgeSrv := application.NewCredentialPurgeService(store, sessionTimeout)

	// Input adapters
	hdl := httpAdapter.New(srv, sessions, store, conf.App.ClientOrigin)
	purgeJob := scheduler.New(purgeSrv, minutes(conf.Session.PurgeInterval, 15*time.Minute))
	if err := purgeJob.Start(); err != nil {
		logrus.Errorf("Failed to start credential purge: %v", err)
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		for range c {
			logrus.Println("Gracefull shut down ...")
			purgeJob.Stop()
			if err := app.Shutdown(); err != nil {
				logrus.Println("Error when shutdown server: ", err)
			}
			closeStore()
		}
	}()

	app.Get("/swagger/*", swagger.HandlerDefault) // default
	hdl.Register(app)

	logrus.Println("Listerning on port: ", conf.App.Port)
	return app.Listen(":" + conf.App.Port)
}

func setupLogger(app configs.App) {
	if app.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if strings.EqualFold(app.Env, "production") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

// newCredentialStore picks the storage backend named by credential_store.driver
func newCredentialStore(conf *configs.Config, timeout time.Duration) (output.CredentialStore, func(), error) {
	switch strings.ToLower(conf.CredentialStore.Driver) {
	case "", "memory":
		logrus.Info("Using in-memory credential store")
		return memory.NewMemoryCredentialStore(timeout), func() {}, nil
	case "postgres":
		dbConGorm, err := gorm.ConnectToPostgreSQL(conf.Postgres)
		if err != nil {
			return nil, nil, err
		}
		repo, err := postgres.NewCredentialRepository(dbConGorm.Postgres)
		if err != nil {
			gorm.DisconnectPostgres(dbConGorm.Postgres)
			return nil, nil, err
		}
		return repo, func() { gorm.DisconnectPostgres(dbConGorm.Postgres) }, nil
	case "badger":
		store, err := badgerStore.NewCredentialStore(conf.CredentialStore.BadgerPath, timeout)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {
			if err := store.Close(); err != nil {
				logrus.Error(err)
			}
		}, nil
	default:
		return nil, nil, fmt.Errorf("unknown credential store driver %q", conf.CredentialStore.Driver)
	}
}

// newInsightGenerator picks the generative-text backend named by insight.provider
func newInsightGenerator(conf *configs.Config) output.InsightGenerator {
	switch strings.ToLower(conf.Insight.Provider) {
	case "lmstudio":
		logrus.Info("Using LM Studio for insights")
		return lmstudio.NewLMStudioClientAdapter(conf.LMStudio)
	default:
		return gemini.NewGeminiClientAdapter(conf.Gemini)
	}
}

// cookieKey derives the cookie encryption key from the session secret.
// Without a secret a random key is used, so cookies do not survive restarts.
func cookieKey(secret string) string {
	if secret == "" {
		logrus.Warn("session.secret is empty, generating a random cookie key")
		return encryptcookie.GenerateKey()
	}
	sum := sha256.Sum256([]byte(secret))
	return base64.StdEncoding.EncodeToString(sum[:])
}

func minutes(value int, fallback time.Duration) time.Duration {
	if value <= 0 {
		return fallback
	}
	return time.Duration(value) * time.Minute
}
