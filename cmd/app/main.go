package main

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"time"

	"github.com/sushihentaime/blogsite/internal/activityservice"
	"github.com/sushihentaime/blogsite/internal/blogservice"
	"github.com/sushihentaime/blogsite/internal/common"
	"github.com/sushihentaime/blogsite/internal/sessionservice"
	"github.com/sushihentaime/blogsite/internal/userservice"
)

type application struct {
	config          *Config
	logger          *slog.Logger
	userService     *userservice.UserService
	blogService     *blogservice.BlogService
	activityService *activityservice.ActivityService
	sessions        sessionservice.Store
	templates       map[string]*template.Template
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := loadConfig(".env")
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db, err := common.NewDB(cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Password, cfg.DB.Name, 25, 25, 15*time.Minute)
	if err != nil {
		logger.Error("failed to connect to the database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer common.CloseDB(db)

	err = common.MigrateUp(common.DSN(cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Password, cfg.DB.Name))
	if err != nil {
		logger.Error("failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	sessions, closeSessions, err := openSessionStore(cfg)
	if err != nil {
		logger.Error("failed to open the session store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeSessions()

	// Without a broker, activity events are dropped and nothing is consumed.
	var (
		producer common.MessageProducer = common.DiscardProducer{}
		consumer common.MessageConsumer
	)

	if cfg.RabbitMQ.Host != "" {
		URI := fmt.Sprintf("amqp://%s:%s@%s:%s/", cfg.RabbitMQ.User, cfg.RabbitMQ.Password, cfg.RabbitMQ.Host, cfg.RabbitMQ.Port)

		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		broker, err := common.DialMessageBroker(ctx, URI, 5)
		cancel()
		if err != nil {
			logger.Error("failed to connect to the message broker", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer broker.Close()

		err = common.SetupActivityExchange(broker)
		if err != nil {
			logger.Error("failed to setup the activity exchange", slog.String("error", err.Error()))
			os.Exit(1)
		}

		producer, consumer = broker, broker
	} else {
		logger.Warn("RABBITMQ_HOST is not set, activity events will be discarded")
	}

	templates, err := newTemplateCache()
	if err != nil {
		logger.Error("failed to parse templates", slog.String("error", err.Error()))
		os.Exit(1)
	}

	app := &application{
		config:          cfg,
		logger:          logger,
		userService:     userservice.NewUserService(db),
		blogService:     blogservice.NewBlogService(db),
		activityService: activityservice.NewActivityService(db, producer, consumer, logger),
		sessions:        sessions,
		templates:       templates,
	}

	app.activityService.RecordActivities()
	defer app.activityService.Close()

	err = app.serve(cfg.Port)
	if err != nil {
		logger.Error("failed to start the server", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// openSessionStore returns the configured session backend and a function that releases it.
func openSessionStore(cfg *Config) (sessionservice.Store, func(), error) {
	switch cfg.Session.Store {
	case "memory":
		return sessionservice.NewMemoryStore(cfg.Session.TTL), func() {}, nil
	case "redis":
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		rdb, err := sessionservice.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, nil, err
		}

		return sessionservice.NewRedisStore(rdb, cfg.Session.TTL), func() { rdb.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown session store %q", cfg.Session.Store)
	}
}
