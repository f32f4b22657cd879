// Package storefront wires the cart, pricing, validation, and order
// placement pipeline together with its persistence, notification, and
// history backends. The web frontend embeds this package; it owns no
// transport of its own.
package storefront

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Dannyjar1/AgriConnect-sub000/internal/cart"
	"github.com/Dannyjar1/AgriConnect-sub000/internal/checkout"
	"github.com/Dannyjar1/AgriConnect-sub000/internal/kv"
	"github.com/Dannyjar1/AgriConnect-sub000/internal/notification"
	"github.com/Dannyjar1/AgriConnect-sub000/internal/ordercache"
	"github.com/Dannyjar1/AgriConnect-sub000/internal/repository"
	"github.com/redis/go-redis/v9"
)

type Config struct {
	// PersistenceBackend selects where orders are written: "mongo",
	// "postgres", or "memory".
	PersistenceBackend string

	MongoURI      string
	MongoDatabase string

	Postgres repository.Credentials

	// RedisAddr backs the order history; empty means in-memory.
	RedisAddr     string
	RedisPassword string

	// KafkaBrokers feed the confirmation topic; empty means log-only.
	KafkaBrokers []string
}

// ConfigFromEnv reads the configuration the same way the services do.
func ConfigFromEnv() Config {
	pgPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		pgPort = 5432
	}

	var brokers []string
	if raw := os.Getenv("KAFKA_BROKERS"); raw != "" {
		brokers = strings.Split(raw, ",")
	}

	return Config{
		PersistenceBackend: getEnv("PERSISTENCE_BACKEND", "mongo"),
		MongoURI:           getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:      getEnv("MONGO_DB_NAME", "storefront"),
		Postgres: repository.Credentials{
			Host:              getEnv("DB_HOST", "localhost"),
			Port:              pgPort,
			User:              getEnv("DB_USER", "postgres"),
			Password:          getEnv("DB_PASSWORD", "postgres"),
			DBName:            getEnv("DB_NAME", "storefront"),
			MigrationsDirPath: getEnv("MIGRATIONS_PATH", "./internal/repository/migrations"),
		},
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		KafkaBrokers:  brokers,
	}
}

// Storefront is one user session's storefront core: a cart, the placement
// coordinator, and the order history.
type Storefront struct {
	Cart    *cart.Store
	Orders  *checkout.Coordinator
	History *ordercache.History

	closers []func() error
}

func New(ctx context.Context, cfg Config) (*Storefront, error) {
	s := &Storefront{Cart: cart.NewStore()}

	persistence, err := s.buildPersistence(ctx, cfg)
	if err != nil {
		return nil, err
	}

	history, err := s.buildHistory(cfg)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.History = history

	var notifier notification.Notifier
	if len(cfg.KafkaBrokers) > 0 {
		kafkaNotifier := notification.NewKafkaNotifier(cfg.KafkaBrokers...)
		s.closers = append(s.closers, kafkaNotifier.Close)
		notifier = notification.NewBreakerNotifier(kafkaNotifier)
	} else {
		notifier = notification.NewLogNotifier()
	}

	s.Orders = checkout.NewCoordinator(s.Cart, persistence, notifier, history)
	return s, nil
}

func (s *Storefront) buildPersistence(ctx context.Context, cfg Config) (repository.Persistence, error) {
	switch cfg.PersistenceBackend {
	case "postgres":
		persistence, err := repository.NewPostgresPersistence(&cfg.Postgres)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		if err := persistence.RunMigrations(&cfg.Postgres); err != nil {
			persistence.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		s.closers = append(s.closers, persistence.Close)
		return persistence, nil
	case "mongo":
		persistence, err := repository.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, persistence.Close)
		return persistence, nil
	case "memory":
		return repository.NewMemoryPersistence(), nil
	default:
		return nil, fmt.Errorf("unknown persistence backend %q", cfg.PersistenceBackend)
	}
}

func (s *Storefront) buildHistory(cfg Config) (*ordercache.History, error) {
	if cfg.RedisAddr == "" {
		return ordercache.NewHistory(kv.NewMemoryStore()), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}
	s.closers = append(s.closers, client.Close)
	return ordercache.NewHistory(kv.NewRedisStore(client)), nil
}

// Close releases every backend connection the storefront opened.
func (s *Storefront) Close() error {
	var firstErr error
	for _, closeFn := range s.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
